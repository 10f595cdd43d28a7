package model

// ReservationID uniquely identifies a reservation
type ReservationID string

// DateLayout is the wire and storage format for calendar dates
const DateLayout = "2006-01-02"

// TimeLayout is the wire and storage format for slot start times
const TimeLayout = "15:04"

// Reservation represents a booked time slot.
// JSON field names match the persisted "reservas" collection layout.
//
// PlayerName is a snapshot of the player's full name taken when the
// reservation is created or edited. It is not refreshed when the player
// is renamed or deleted afterwards.
type Reservation struct {
	ID         ReservationID `json:"id"`
	PlayerID   PlayerID      `json:"jugador"`
	PlayerName string        `json:"nombreJugador"`
	Date       string        `json:"fecha"`
	Time       string        `json:"hora"`
}

// TimeSlot is a bookable 30-minute window on a given day.
// Derived on every query, never persisted.
type TimeSlot struct {
	Time      string `json:"hora"`
	Available bool   `json:"disponible"`
}

// DateOption is one entry of the rolling booking window.
// Derived on every query, never persisted.
type DateOption struct {
	Date  string `json:"fecha"`
	Label string `json:"etiqueta"`
}
