package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/lmoreno/courtbook/internal/dependencies/mocks"
	"github.com/lmoreno/courtbook/internal/model"
	"github.com/lmoreno/courtbook/internal/storage/memory"
	"github.com/lmoreno/courtbook/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	// Monday 2024-06-10, 10:15 local
	s.clock = mocks.NewMockClock(time.Date(2024, 6, 10, 10, 15, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) reservation(id, date, hora string) model.Reservation {
	return model.Reservation{
		ID:         model.ReservationID(id),
		PlayerID:   "player-1",
		PlayerName: "Ana García",
		Date:       date,
		Time:       hora,
	}
}

// DateWindow tests

func (s *ServiceSuite) TestDateWindowHasSevenAscendingDays() {
	options := s.service.DateWindow(time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))

	s.Require().Len(options, 7)
	expected := []string{
		"2024-06-10", "2024-06-11", "2024-06-12", "2024-06-13",
		"2024-06-14", "2024-06-15", "2024-06-16",
	}
	for i, opt := range options {
		s.Equal(expected[i], opt.Date)
	}
}

func (s *ServiceSuite) TestDateWindowLabelsAreSpanishShortForm() {
	options := s.service.DateWindow(time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))

	s.Equal("lun 10 junio", options[0].Label)
	s.Equal("mar 11 junio", options[1].Label)
	s.Equal("dom 16 junio", options[6].Label)
}

func (s *ServiceSuite) TestDateWindowCrossesMonthBoundary() {
	options := s.service.DateWindow(time.Date(2024, 6, 28, 0, 0, 0, 0, time.UTC))

	s.Equal("2024-06-30", options[2].Date)
	s.Equal("2024-07-01", options[3].Date)
	s.Equal("lun 1 julio", options[3].Label)
}

// DaySlots tests

func (s *ServiceSuite) TestDaySlotsCoversOpeningHours() {
	slots := s.service.DaySlots()

	s.Require().Len(slots, 30)
	s.Equal("08:00", slots[0].Time)
	s.Equal("08:30", slots[1].Time)
	s.Equal("22:30", slots[29].Time)
}

func (s *ServiceSuite) TestDaySlotsAllInitiallyAvailable() {
	for _, slot := range s.service.DaySlots() {
		s.True(slot.Available, "slot %s", slot.Time)
	}
}

// ResolveAvailability tests

func (s *ServiceSuite) TestPastDateHasNoAvailableSlots() {
	now := s.clock.Now()
	reservations := []model.Reservation{}

	resolved := s.service.ResolveAvailability(s.service.DaySlots(), "2024-06-09", now, reservations)

	for _, slot := range resolved {
		s.False(slot.Available, "slot %s", slot.Time)
	}
}

func (s *ServiceSuite) TestPastDateUnavailableEvenWithoutReservations() {
	now := s.clock.Now()

	resolved := s.service.ResolveAvailability(s.service.DaySlots(), "2023-01-01", now, nil)

	for _, slot := range resolved {
		s.False(slot.Available)
	}
}

func (s *ServiceSuite) TestTodaySlotsBeforeNowUnavailable() {
	// now is 10:15
	resolved := s.service.ResolveAvailability(s.service.DaySlots(), "2024-06-10", s.clock.Now(), nil)

	byTime := slotMap(resolved)
	s.False(byTime["08:00"])
	s.False(byTime["10:00"])
	s.True(byTime["10:30"])
	s.True(byTime["22:30"])
}

func (s *ServiceSuite) TestTodaySlotExactlyAtNowUnavailable() {
	// A slot starting exactly at now counts as not available
	s.clock.Set(time.Date(2024, 6, 10, 10, 30, 0, 0, time.UTC))

	resolved := s.service.ResolveAvailability(s.service.DaySlots(), "2024-06-10", s.clock.Now(), nil)

	byTime := slotMap(resolved)
	s.False(byTime["10:30"])
	s.True(byTime["11:00"])
}

func (s *ServiceSuite) TestTodayReservedSlotUnavailableEvenIfFuture() {
	reservations := []model.Reservation{s.reservation("r1", "2024-06-10", "18:00")}

	resolved := s.service.ResolveAvailability(s.service.DaySlots(), "2024-06-10", s.clock.Now(), reservations)

	byTime := slotMap(resolved)
	s.False(byTime["18:00"])
	s.True(byTime["18:30"])
}

func (s *ServiceSuite) TestFutureDateAvailableUnlessReserved() {
	reservations := []model.Reservation{
		s.reservation("r1", "2024-06-12", "08:00"),
		s.reservation("r2", "2024-06-12", "22:30"),
	}

	resolved := s.service.ResolveAvailability(s.service.DaySlots(), "2024-06-12", s.clock.Now(), reservations)

	byTime := slotMap(resolved)
	s.False(byTime["08:00"])
	s.False(byTime["22:30"])
	s.True(byTime["08:30"])
	s.True(byTime["12:00"])
}

func (s *ServiceSuite) TestReservationsOnOtherDatesIgnored() {
	reservations := []model.Reservation{s.reservation("r1", "2024-06-11", "18:00")}

	resolved := s.service.ResolveAvailability(s.service.DaySlots(), "2024-06-12", s.clock.Now(), reservations)

	s.True(slotMap(resolved)["18:00"])
}

func (s *ServiceSuite) TestResolveAvailabilityIsIdempotent() {
	reservations := []model.Reservation{s.reservation("r1", "2024-06-10", "18:00")}
	slots := s.service.DaySlots()
	now := s.clock.Now()

	first := s.service.ResolveAvailability(slots, "2024-06-10", now, reservations)
	second := s.service.ResolveAvailability(first, "2024-06-10", now, reservations)

	s.Equal(first, second)
}

func (s *ServiceSuite) TestResolveAvailabilityDoesNotMutateInput() {
	slots := s.service.DaySlots()

	_ = s.service.ResolveAvailability(slots, "2024-06-09", s.clock.Now(), nil)

	for _, slot := range slots {
		s.True(slot.Available)
	}
}

func (s *ServiceSuite) TestUnparseableDateHasNoAvailableSlots() {
	resolved := s.service.ResolveAvailability(s.service.DaySlots(), "not-a-date", s.clock.Now(), nil)

	for _, slot := range resolved {
		s.False(slot.Available)
	}
}

// SlotsForDate tests

func (s *ServiceSuite) TestSlotsForDateUsesStoredReservations() {
	err := s.storage.SaveReservations(s.ctx, []model.Reservation{
		s.reservation("r1", "2024-06-12", "09:00"),
	})
	s.Require().NoError(err)

	resolved, err := s.service.SlotsForDate(s.ctx, "2024-06-12")
	s.Require().NoError(err)

	byTime := slotMap(resolved)
	s.False(byTime["09:00"])
	s.True(byTime["09:30"])
}

// AvailableDates tests

func (s *ServiceSuite) TestAvailableDatesStartsAtClockDay() {
	options := s.service.AvailableDates(s.ctx)

	s.Require().Len(options, 7)
	s.Equal("2024-06-10", options[0].Date)
	s.Equal("2024-06-16", options[6].Date)
}

// CheckBookable tests

func (s *ServiceSuite) TestCheckBookableAcceptsFreeFutureSlot() {
	err := s.service.CheckBookable("2024-06-12", "18:00", s.clock.Now(), nil, "")
	s.NoError(err)
}

func (s *ServiceSuite) TestCheckBookableRejectsTakenSlot() {
	reservations := []model.Reservation{s.reservation("r1", "2024-06-12", "18:00")}

	err := s.service.CheckBookable("2024-06-12", "18:00", s.clock.Now(), reservations, "")
	s.ErrorIs(err, model.ErrSlotTaken)
}

func (s *ServiceSuite) TestCheckBookableExcludesOwnReservation() {
	reservations := []model.Reservation{s.reservation("r1", "2024-06-12", "18:00")}

	err := s.service.CheckBookable("2024-06-12", "18:00", s.clock.Now(), reservations, "r1")
	s.NoError(err)
}

func (s *ServiceSuite) TestCheckBookableRejectsPastDate() {
	err := s.service.CheckBookable("2024-06-09", "18:00", s.clock.Now(), nil, "")
	s.ErrorIs(err, model.ErrSlotPast)
}

func (s *ServiceSuite) TestCheckBookableRejectsEarlierSlotToday() {
	err := s.service.CheckBookable("2024-06-10", "10:00", s.clock.Now(), nil, "")
	s.ErrorIs(err, model.ErrSlotPast)
}

func (s *ServiceSuite) TestCheckBookableRejectsSlotExactlyAtNow() {
	s.clock.Set(time.Date(2024, 6, 10, 10, 30, 0, 0, time.UTC))

	err := s.service.CheckBookable("2024-06-10", "10:30", s.clock.Now(), nil, "")
	s.ErrorIs(err, model.ErrSlotPast)
}

func (s *ServiceSuite) TestCheckBookableRejectsOffScheduleTime() {
	err := s.service.CheckBookable("2024-06-12", "08:15", s.clock.Now(), nil, "")
	s.ErrorIs(err, model.ErrSlotInvalid)
}

func (s *ServiceSuite) TestCheckBookableRejectsMalformedDate() {
	err := s.service.CheckBookable("12/06/2024", "18:00", s.clock.Now(), nil, "")
	s.ErrorIs(err, model.ErrSlotInvalid)
}

func (s *ServiceSuite) TestCheckBookableConflictBeatsPastCheck() {
	// A taken slot reports the conflict even when it is also past
	reservations := []model.Reservation{s.reservation("r1", "2024-06-10", "08:00")}

	err := s.service.CheckBookable("2024-06-10", "08:00", s.clock.Now(), reservations, "")
	s.ErrorIs(err, model.ErrSlotTaken)
}

func slotMap(slots []model.TimeSlot) map[string]bool {
	byTime := make(map[string]bool, len(slots))
	for _, slot := range slots {
		byTime[slot.Time] = slot.Available
	}
	return byTime
}
