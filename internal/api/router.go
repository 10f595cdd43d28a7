package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lmoreno/courtbook/internal/api/handler"
	"github.com/lmoreno/courtbook/internal/api/middleware"
	"github.com/lmoreno/courtbook/internal/services/player"
	"github.com/lmoreno/courtbook/internal/services/reservation"
	"github.com/lmoreno/courtbook/internal/services/schedule"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger             *slog.Logger
	PlayerService      *player.Service
	ReservationService *reservation.Service
	ScheduleService    *schedule.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.PlayerService)
	reservationHandler := handler.NewReservationHandler(cfg.ReservationService)
	scheduleHandler := handler.NewScheduleHandler(cfg.ScheduleService)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Player routes
	api.HandleFunc("/players", playerHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/players", playerHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/players/{id}", playerHandler.Update).Methods(http.MethodPatch)
	api.HandleFunc("/players/{id}", playerHandler.Delete).Methods(http.MethodDelete)

	// Reservation routes
	api.HandleFunc("/reservations", reservationHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/reservations", reservationHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{id}", reservationHandler.Update).Methods(http.MethodPatch)
	api.HandleFunc("/reservations/{id}", reservationHandler.Delete).Methods(http.MethodDelete)

	// Availability routes
	api.HandleFunc("/schedule/dates", scheduleHandler.Dates).Methods(http.MethodGet)
	api.HandleFunc("/schedule/slots", scheduleHandler.Slots).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
