package response

import (
	"github.com/lmoreno/courtbook/internal/model"
)

// Player represents a player in API responses
type Player struct {
	ID        string `json:"id"`
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido"`
	Email     string `json:"email"`
	Phone     string `json:"telefono"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:        string(p.ID),
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Phone:     p.Phone,
	}
}

// PlayersFromModel converts a player list, preserving storage order
func PlayersFromModel(players []model.Player) []Player {
	result := make([]Player, len(players))
	for i := range players {
		result[i] = PlayerFromModel(&players[i])
	}
	return result
}

// Reservation represents a reservation in API responses
type Reservation struct {
	ID         string `json:"id"`
	PlayerID   string `json:"jugador"`
	PlayerName string `json:"nombreJugador"`
	Date       string `json:"fecha"`
	Time       string `json:"hora"`
}

// ReservationFromModel converts a model.Reservation
func ReservationFromModel(r *model.Reservation) Reservation {
	return Reservation{
		ID:         string(r.ID),
		PlayerID:   string(r.PlayerID),
		PlayerName: r.PlayerName,
		Date:       r.Date,
		Time:       r.Time,
	}
}

// ReservationsFromModel converts a reservation list, preserving storage order
func ReservationsFromModel(reservations []model.Reservation) []Reservation {
	result := make([]Reservation, len(reservations))
	for i := range reservations {
		result[i] = ReservationFromModel(&reservations[i])
	}
	return result
}

// DateOption represents one bookable date of the rolling window
type DateOption struct {
	Date  string `json:"fecha"`
	Label string `json:"etiqueta"`
}

// DateOptionsFromModel converts the date window
func DateOptionsFromModel(options []model.DateOption) []DateOption {
	result := make([]DateOption, len(options))
	for i, o := range options {
		result[i] = DateOption{Date: o.Date, Label: o.Label}
	}
	return result
}

// TimeSlot represents one slot of a day's schedule with its availability
type TimeSlot struct {
	Time      string `json:"hora"`
	Available bool   `json:"disponible"`
}

// TimeSlotsFromModel converts a resolved slot list
func TimeSlotsFromModel(slots []model.TimeSlot) []TimeSlot {
	result := make([]TimeSlot, len(slots))
	for i, s := range slots {
		result[i] = TimeSlot{Time: s.Time, Available: s.Available}
	}
	return result
}
