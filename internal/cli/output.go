package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case []Player:
		o.printPlayers(v)
	case Reservation:
		o.printReservation(v)
	case []Reservation:
		o.printReservations(v)
	case []DateOption:
		o.printDateOptions(v)
	case []TimeSlot:
		o.printTimeSlots(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID        string `json:"id"`
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido"`
	Email     string `json:"email"`
	Phone     string `json:"telefono"`
}

// Reservation response type
type Reservation struct {
	ID         string `json:"id"`
	PlayerID   string `json:"jugador"`
	PlayerName string `json:"nombreJugador"`
	Date       string `json:"fecha"`
	Time       string `json:"hora"`
}

// DateOption response type
type DateOption struct {
	Date  string `json:"fecha"`
	Label string `json:"etiqueta"`
}

// TimeSlot response type
type TimeSlot struct {
	Time      string `json:"hora"`
	Available bool   `json:"disponible"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s %s (%s)\n", p.FirstName, p.LastName, p.ID)
	fmt.Printf("Email: %s\n", p.Email)
	fmt.Printf("Phone: %s\n", p.Phone)
}

func (o *Output) printPlayers(players []Player) {
	if len(players) == 0 {
		fmt.Println("No players registered")
		return
	}
	fmt.Printf("Players (%d):\n", len(players))
	for _, p := range players {
		fmt.Printf("  - %s %s <%s> %s (%s)\n", p.FirstName, p.LastName, p.Email, p.Phone, p.ID)
	}
}

func (o *Output) printReservation(r Reservation) {
	fmt.Printf("Reservation: %s\n", r.ID)
	fmt.Printf("Player: %s (%s)\n", r.PlayerName, r.PlayerID)
	fmt.Printf("Date: %s\n", r.Date)
	fmt.Printf("Time: %s\n", r.Time)
}

func (o *Output) printReservations(reservations []Reservation) {
	if len(reservations) == 0 {
		fmt.Println("No reservations")
		return
	}
	fmt.Printf("Reservations (%d):\n", len(reservations))
	for _, r := range reservations {
		fmt.Printf("  - %s %s - %s (%s)\n", r.Date, r.Time, r.PlayerName, r.ID)
	}
}

func (o *Output) printDateOptions(options []DateOption) {
	fmt.Printf("Available dates (%d):\n", len(options))
	for _, d := range options {
		fmt.Printf("  - %s (%s)\n", d.Date, d.Label)
	}
}

func (o *Output) printTimeSlots(slots []TimeSlot) {
	fmt.Printf("Slots (%d):\n", len(slots))
	for _, s := range slots {
		marker := ""
		if !s.Available {
			marker = " (no disponible)"
		}
		fmt.Printf("  - %s%s\n", s.Time, marker)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
