// Package schedule generates the bookable calendar and decides per-slot
// availability. It is the only subsystem with time arithmetic: everything
// else trusts its verdicts, including the commit-time re-check that the
// reservation service runs instead of locking.
package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lmoreno/courtbook/internal/dependencies/clock"
	"github.com/lmoreno/courtbook/internal/model"
	"github.com/lmoreno/courtbook/internal/storage"
)

const (
	// WindowDays is the rolling booking horizon exposed to users
	WindowDays = 7

	// Slots run from openingHour inclusive to closingHour exclusive
	openingHour = 8
	closingHour = 23
	slotMinutes = 30
)

// Spanish short-form labels matching the original "ddd D MMMM" format
var (
	weekdayLabels = [...]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"}
	monthLabels   = [...]string{
		"enero", "febrero", "marzo", "abril", "mayo", "junio",
		"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
	}
)

// Service generates date windows and day slots, and resolves slot
// availability against existing reservations and the current time
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new schedule service
func New(storage storage.Storage, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clk,
		logger:  logger,
	}
}

// DateWindow produces the rolling booking window: exactly WindowDays
// entries, one per day starting at today, in ascending order
func (s *Service) DateWindow(today time.Time) []model.DateOption {
	options := make([]model.DateOption, 0, WindowDays)
	for i := 0; i < WindowDays; i++ {
		day := today.AddDate(0, 0, i)
		options = append(options, model.DateOption{
			Date:  day.Format(model.DateLayout),
			Label: dateLabel(day),
		})
	}
	return options
}

// DaySlots produces the raw slot list for any day: every slotMinutes
// from openingHour inclusive to closingHour exclusive, all available
func (s *Service) DaySlots() []model.TimeSlot {
	var slots []model.TimeSlot
	for minute := openingHour * 60; minute < closingHour*60; minute += slotMinutes {
		slots = append(slots, model.TimeSlot{
			Time:      fmt.Sprintf("%02d:%02d", minute/60, minute%60),
			Available: true,
		})
	}
	return slots
}

// ResolveAvailability marks each slot of the given date available or not:
//   - a date before now's calendar day has no available slots;
//   - on now's calendar day a slot is available iff it starts strictly
//     after now (a slot starting exactly at now is NOT available) and is
//     not reserved;
//   - on a future date a slot is available iff it is not reserved.
//
// The input slice is not mutated; a resolved copy is returned. Calling
// twice with the same inputs yields the same result.
func (s *Service) ResolveAvailability(slots []model.TimeSlot, date string, now time.Time, reservations []model.Reservation) []model.TimeSlot {
	resolved := make([]model.TimeSlot, len(slots))
	copy(resolved, slots)

	day, err := time.ParseInLocation(model.DateLayout, date, now.Location())
	if err != nil {
		for i := range resolved {
			resolved[i].Available = false
		}
		return resolved
	}

	reserved := make(map[string]bool)
	for _, r := range reservations {
		if r.Date == date {
			reserved[r.Time] = true
		}
	}

	today := startOfDay(now)
	isToday := day.Equal(today)
	isPast := day.Before(today)

	for i, slot := range resolved {
		switch {
		case isPast:
			resolved[i].Available = false
		case isToday:
			start := slotStart(day, slot.Time)
			resolved[i].Available = start.After(now) && !reserved[slot.Time]
		default:
			resolved[i].Available = !reserved[slot.Time]
		}
	}
	return resolved
}

// SlotsForDate resolves the full day's slots for date against the
// current store contents and clock. This is the select-time path; the
// reservation service re-runs CheckBookable at commit time.
func (s *Service) SlotsForDate(ctx context.Context, date string) ([]model.TimeSlot, error) {
	reservations, err := s.storage.GetReservations(ctx)
	if err != nil {
		return nil, err
	}
	return s.ResolveAvailability(s.DaySlots(), date, s.clock.Now(), reservations), nil
}

// AvailableDates returns the booking window starting at the current day
func (s *Service) AvailableDates(ctx context.Context) []model.DateOption {
	return s.DateWindow(s.clock.Now())
}

// CheckBookable re-validates a single (date, hora) pair at commit time
// against the given reservations, excluding excludeID so a reservation
// can keep its own slot on edit. It returns ErrSlotInvalid when the pair
// is not a slot the venue offers, ErrSlotTaken when another reservation
// occupies it, and ErrSlotPast when it is not strictly after now.
func (s *Service) CheckBookable(date, hora string, now time.Time, reservations []model.Reservation, excludeID model.ReservationID) error {
	day, err := time.ParseInLocation(model.DateLayout, date, now.Location())
	if err != nil {
		return model.ErrSlotInvalid
	}
	if !s.offeredSlot(hora) {
		return model.ErrSlotInvalid
	}

	for _, r := range reservations {
		if r.ID != excludeID && r.Date == date && r.Time == hora {
			return model.ErrSlotTaken
		}
	}

	today := startOfDay(now)
	if day.Before(today) {
		return model.ErrSlotPast
	}
	if day.Equal(today) && !slotStart(day, hora).After(now) {
		return model.ErrSlotPast
	}
	return nil
}

// offeredSlot reports whether hora is one of the venue's slot start times
func (s *Service) offeredSlot(hora string) bool {
	for _, slot := range s.DaySlots() {
		if slot.Time == hora {
			return true
		}
	}
	return false
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// slotStart combines a calendar day with an "HH:mm" start time
func slotStart(day time.Time, hora string) time.Time {
	t, err := time.Parse(model.TimeLayout, hora)
	if err != nil {
		return day
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location())
}

// dateLabel formats a day as the Spanish short form, e.g. "lun 10 junio"
func dateLabel(day time.Time) string {
	return fmt.Sprintf("%s %d %s", weekdayLabels[day.Weekday()], day.Day(), monthLabels[day.Month()-1])
}
