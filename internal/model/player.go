package model

// PlayerID uniquely identifies a player across the system
type PlayerID string

// Player represents a registered venue member.
// JSON field names match the persisted "jugadores" collection layout.
type Player struct {
	ID        PlayerID `json:"id"`
	FirstName string   `json:"nombre"`
	LastName  string   `json:"apellido"`
	Email     string   `json:"email"`
	Phone     string   `json:"telefono"`
}

// FullName returns the player's display name as shown on reservations
func (p Player) FullName() string {
	return p.FirstName + " " + p.LastName
}
