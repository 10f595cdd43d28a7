package request

// PlayerRequest is the request body for creating or updating a player.
// Field names match the original form layout.
type PlayerRequest struct {
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido"`
	Email     string `json:"email"`
	Phone     string `json:"telefono"`
}

// ReservationRequest is the request body for creating or updating a
// reservation
type ReservationRequest struct {
	PlayerID string `json:"jugador"`
	Date     string `json:"fecha"`
	Time     string `json:"hora"`
}
