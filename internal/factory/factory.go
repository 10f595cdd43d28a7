package factory

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/lmoreno/courtbook/internal/dependencies/clock"
	"github.com/lmoreno/courtbook/internal/services/player"
	"github.com/lmoreno/courtbook/internal/services/reservation"
	"github.com/lmoreno/courtbook/internal/services/schedule"
	"github.com/lmoreno/courtbook/internal/storage"
	"github.com/lmoreno/courtbook/internal/storage/memory"
	redisstorage "github.com/lmoreno/courtbook/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// Config holds the factory's wiring options
type Config struct {
	Logger      *slog.Logger
	StorageType string
	RedisConfig *redisstorage.Config
}

// App contains all wired application components
type App struct {
	Storage storage.Storage
	Clock   clock.Clock

	ScheduleService    *schedule.Service
	PlayerService      *player.Service
	ReservationService *reservation.Service
}

// New creates a fully wired application
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	switch cfg.StorageType {
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, fmt.Errorf("redis storage requires a redis config")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, fmt.Errorf("create redis storage: %w", err)
		}
		store = redisStore
	case StorageTypeMemory, "":
		store = memory.New()
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.StorageType)
	}

	return newWithDependencies(store, clock.New(), logger), nil
}

// newWithDependencies wires services over explicit dependencies.
// Used directly by the test factory.
func newWithDependencies(store storage.Storage, clk clock.Clock, logger *slog.Logger) *App {
	scheduleService := schedule.New(store, clk, logger)
	playerService := player.New(store, logger)
	reservationService := reservation.New(store, scheduleService, clk, logger)

	return &App{
		Storage:            store,
		Clock:              clk,
		ScheduleService:    scheduleService,
		PlayerService:      playerService,
		ReservationService: reservationService,
	}
}
