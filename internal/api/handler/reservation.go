package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lmoreno/courtbook/internal/api/request"
	"github.com/lmoreno/courtbook/internal/api/response"
	"github.com/lmoreno/courtbook/internal/model"
	"github.com/lmoreno/courtbook/internal/services/reservation"
)

// ReservationHandler handles reservation-related endpoints
type ReservationHandler struct {
	reservationService *reservation.Service
}

// NewReservationHandler creates a new reservation handler
func NewReservationHandler(reservationService *reservation.Service) *ReservationHandler {
	return &ReservationHandler{
		reservationService: reservationService,
	}
}

// List handles GET /api/v1/reservations
func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.reservationService.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ReservationsFromModel(reservations))
}

// Create handles POST /api/v1/reservations
func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, err := decodeReservation(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	created, err := h.reservationService.Create(r.Context(), reservationDraft(req))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.ReservationFromModel(created))
}

// Update handles PATCH /api/v1/reservations/{id}
func (h *ReservationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	req, err := decodeReservation(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	updated, err := h.reservationService.Update(r.Context(), model.ReservationID(id), reservationDraft(req))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ReservationFromModel(updated))
}

// Delete handles DELETE /api/v1/reservations/{id}
func (h *ReservationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	removed, err := h.reservationService.Delete(r.Context(), model.ReservationID(id))
	if err != nil {
		WriteError(w, err)
		return
	}
	if !removed {
		WriteError(w, model.ErrReservationNotFound)
		return
	}

	response.NoContent(w)
}

func decodeReservation(r *http.Request) (request.ReservationRequest, error) {
	var req request.ReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, NewInvalidRequestError("invalid request body")
	}
	if req.PlayerID == "" {
		return req, NewInvalidRequestError("jugador is required")
	}
	if req.Date == "" {
		return req, NewInvalidRequestError("fecha is required")
	}
	if req.Time == "" {
		return req, NewInvalidRequestError("hora is required")
	}
	return req, nil
}

func reservationDraft(req request.ReservationRequest) reservation.Draft {
	return reservation.Draft{
		PlayerID: model.PlayerID(req.PlayerID),
		Date:     req.Date,
		Time:     req.Time,
	}
}
