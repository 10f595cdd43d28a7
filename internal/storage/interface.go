package storage

import (
	"context"

	"github.com/lmoreno/courtbook/internal/model"
)

// Storage defines the interface for data persistence.
//
// Each collection lives as one document under a fixed key and is always
// read and written whole; there are no partial or transactional write
// semantics beyond the full-collection replace. A missing collection
// reads as empty, not as an error.
type Storage interface {
	// Player collection operations
	GetPlayers(ctx context.Context) ([]model.Player, error)
	SavePlayers(ctx context.Context, players []model.Player) error

	// Reservation collection operations
	GetReservations(ctx context.Context) ([]model.Reservation, error)
	SaveReservations(ctx context.Context, reservations []model.Reservation) error
}
