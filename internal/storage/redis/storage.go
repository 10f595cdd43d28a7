package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lmoreno/courtbook/internal/model"
	"github.com/lmoreno/courtbook/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Each collection is stored whole as a JSON array under a fixed key,
// mirroring the original localStorage layout.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player collection operations

func (s *Storage) GetPlayers(ctx context.Context) ([]model.Player, error) {
	var players []model.Player
	if err := s.getCollection(ctx, playersKey(), &players); err != nil {
		return nil, err
	}
	return players, nil
}

func (s *Storage) SavePlayers(ctx context.Context, players []model.Player) error {
	return s.saveCollection(ctx, playersKey(), players)
}

// Reservation collection operations

func (s *Storage) GetReservations(ctx context.Context) ([]model.Reservation, error) {
	var reservations []model.Reservation
	if err := s.getCollection(ctx, reservationsKey(), &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

func (s *Storage) SaveReservations(ctx context.Context, reservations []model.Reservation) error {
	return s.saveCollection(ctx, reservationsKey(), reservations)
}

// getCollection unmarshals the JSON array stored under key into dest.
// A missing key leaves dest empty.
func (s *Storage) getCollection(ctx context.Context, key string, dest any) error {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return err
	}
	return json.Unmarshal(data, dest)
}

// saveCollection replaces the JSON array stored under key
func (s *Storage) saveCollection(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, 0).Err()
}
