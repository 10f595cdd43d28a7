package reservation

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lmoreno/courtbook/internal/dependencies/clock"
	"github.com/lmoreno/courtbook/internal/model"
	"github.com/lmoreno/courtbook/internal/services/schedule"
	"github.com/lmoreno/courtbook/internal/storage"
)

// Draft carries the fields of a reservation to create or apply on edit
type Draft struct {
	PlayerID model.PlayerID
	Date     string
	Time     string
}

// Service manages the reservation collection. Every mutation re-checks
// slot availability against the current store contents immediately
// before persisting; that commit-time re-check is the design's guard
// against stale picker state, not locking.
type Service struct {
	storage  storage.Storage
	schedule *schedule.Service
	clock    clock.Clock
	logger   *slog.Logger
}

// New creates a new reservation service
func New(storage storage.Storage, sched *schedule.Service, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage:  storage,
		schedule: sched,
		clock:    clk,
		logger:   logger,
	}
}

// List returns all reservations in storage order
func (s *Service) List(ctx context.Context) ([]model.Reservation, error) {
	return s.storage.GetReservations(ctx)
}

// Create books a slot for a player. The player must exist; the slot must
// be offered, unoccupied and strictly in the future at commit time. The
// player's full name is copied onto the reservation as a display
// snapshot and is never refreshed afterwards.
func (s *Service) Create(ctx context.Context, draft Draft) (*model.Reservation, error) {
	player, err := s.lookupPlayer(ctx, draft.PlayerID)
	if err != nil {
		return nil, err
	}

	reservations, err := s.storage.GetReservations(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.schedule.CheckBookable(draft.Date, draft.Time, s.clock.Now(), reservations, ""); err != nil {
		return nil, err
	}

	created := model.Reservation{
		ID:         model.ReservationID(uuid.NewString()),
		PlayerID:   player.ID,
		PlayerName: player.FullName(),
		Date:       draft.Date,
		Time:       draft.Time,
	}
	reservations = append(reservations, created)
	if err := s.storage.SaveReservations(ctx, reservations); err != nil {
		return nil, err
	}

	s.logger.Info("reservation created",
		slog.String("reservation_id", string(created.ID)),
		slog.String("fecha", created.Date),
		slog.String("hora", created.Time),
	)
	return &created, nil
}

// Update moves or reassigns an existing reservation. The occupancy check
// excludes the reservation's own prior slot, so keeping the current slot
// while changing the player is not a conflict. The name snapshot is
// retaken from the player's current record.
func (s *Service) Update(ctx context.Context, id model.ReservationID, draft Draft) (*model.Reservation, error) {
	reservations, err := s.storage.GetReservations(ctx)
	if err != nil {
		return nil, err
	}

	index := -1
	for i := range reservations {
		if reservations[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, model.ErrReservationNotFound
	}

	player, err := s.lookupPlayer(ctx, draft.PlayerID)
	if err != nil {
		return nil, err
	}

	if err := s.schedule.CheckBookable(draft.Date, draft.Time, s.clock.Now(), reservations, id); err != nil {
		return nil, err
	}

	updated := model.Reservation{
		ID:         id,
		PlayerID:   player.ID,
		PlayerName: player.FullName(),
		Date:       draft.Date,
		Time:       draft.Time,
	}
	reservations[index] = updated
	if err := s.storage.SaveReservations(ctx, reservations); err != nil {
		return nil, err
	}

	s.logger.Info("reservation updated",
		slog.String("reservation_id", string(id)),
		slog.String("fecha", updated.Date),
		slog.String("hora", updated.Time),
	)
	return &updated, nil
}

// Delete removes a reservation by id, reporting whether a record was
// removed
func (s *Service) Delete(ctx context.Context, id model.ReservationID) (bool, error) {
	reservations, err := s.storage.GetReservations(ctx)
	if err != nil {
		return false, err
	}

	remaining := make([]model.Reservation, 0, len(reservations))
	for _, r := range reservations {
		if r.ID != id {
			remaining = append(remaining, r)
		}
	}
	if len(remaining) == len(reservations) {
		return false, nil
	}

	if err := s.storage.SaveReservations(ctx, remaining); err != nil {
		return false, err
	}

	s.logger.Info("reservation deleted", slog.String("reservation_id", string(id)))
	return true, nil
}

func (s *Service) lookupPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	players, err := s.storage.GetPlayers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range players {
		if players[i].ID == id {
			return &players[i], nil
		}
	}
	return nil, model.ErrPlayerNotFound
}
