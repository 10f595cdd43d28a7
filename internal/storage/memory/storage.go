package memory

import (
	"context"
	"sync"

	"github.com/lmoreno/courtbook/internal/model"
	"github.com/lmoreno/courtbook/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	players      []model.Player
	reservations []model.Reservation
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player collection operations

func (s *Storage) GetPlayers(ctx context.Context) ([]model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]model.Player, len(s.players))
	copy(result, s.players)
	return result, nil
}

func (s *Storage) SavePlayers(ctx context.Context, players []model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players = make([]model.Player, len(players))
	copy(s.players, players)
	return nil
}

// Reservation collection operations

func (s *Storage) GetReservations(ctx context.Context) ([]model.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]model.Reservation, len(s.reservations))
	copy(result, s.reservations)
	return result, nil
}

func (s *Storage) SaveReservations(ctx context.Context, reservations []model.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reservations = make([]model.Reservation, len(reservations))
	copy(s.reservations, reservations)
	return nil
}
