package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lmoreno/courtbook/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeValidationFailed    = "VALIDATION_FAILED"
	CodePlayerNotFound      = "PLAYER_NOT_FOUND"
	CodeReservationNotFound = "RESERVATION_NOT_FOUND"
	CodeDuplicateEmail      = "DUPLICATE_EMAIL"
	CodeDuplicatePhone      = "DUPLICATE_PHONE"
	CodeSlotTaken           = "SLOT_TAKEN"
	CodeSlotPast            = "SLOT_PAST"
	CodeSlotInvalid         = "SLOT_INVALID"
	CodeInternalError       = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Per-field validation failures keep their messages
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		return &httpError{http.StatusBadRequest, APIError{
			Code:    CodeValidationFailed,
			Message: "One or more fields are invalid",
			Fields:  verr.Fields,
		}}
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{Code: CodePlayerNotFound, Message: "Player not found"}}
	case errors.Is(err, model.ErrReservationNotFound):
		return &httpError{http.StatusNotFound, APIError{Code: CodeReservationNotFound, Message: "Reservation not found"}}
	case errors.Is(err, model.ErrDuplicateEmail):
		return &httpError{http.StatusConflict, APIError{Code: CodeDuplicateEmail, Message: "A player with that email already exists"}}
	case errors.Is(err, model.ErrDuplicatePhone):
		return &httpError{http.StatusConflict, APIError{Code: CodeDuplicatePhone, Message: "A player with that phone already exists"}}
	case errors.Is(err, model.ErrSlotTaken):
		return &httpError{http.StatusConflict, APIError{Code: CodeSlotTaken, Message: "That slot is already reserved"}}
	case errors.Is(err, model.ErrSlotPast):
		return &httpError{http.StatusConflict, APIError{Code: CodeSlotPast, Message: "That slot is in the past"}}
	case errors.Is(err, model.ErrSlotInvalid):
		return &httpError{http.StatusBadRequest, APIError{Code: CodeSlotInvalid, Message: "That date and time is not a bookable slot"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{Code: CodeInternalError, Message: "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{Code: CodeInvalidRequest, Message: message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{Code: CodeInternalError, Message: "Internal server error"}}
}
