package handler

import (
	"net/http"

	"github.com/lmoreno/courtbook/internal/api/response"
	"github.com/lmoreno/courtbook/internal/services/schedule"
)

// ScheduleHandler handles availability endpoints
type ScheduleHandler struct {
	scheduleService *schedule.Service
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(scheduleService *schedule.Service) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: scheduleService,
	}
}

// Dates handles GET /api/v1/schedule/dates
func (h *ScheduleHandler) Dates(w http.ResponseWriter, r *http.Request) {
	options := h.scheduleService.AvailableDates(r.Context())
	response.JSON(w, http.StatusOK, response.DateOptionsFromModel(options))
}

// Slots handles GET /api/v1/schedule/slots?date=YYYY-MM-DD
func (h *ScheduleHandler) Slots(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		WriteError(w, NewInvalidRequestError("date query parameter is required"))
		return
	}

	slots, err := h.scheduleService.SlotsForDate(r.Context(), date)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TimeSlotsFromModel(slots))
}
