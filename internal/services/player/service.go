package player

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lmoreno/courtbook/internal/model"
	"github.com/lmoreno/courtbook/internal/storage"
	"github.com/lmoreno/courtbook/internal/validate"
)

// Input carries raw form values for creating or editing a player.
// Values are normalized and validated before any mutation.
type Input struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// Service manages the player collection: CRUD with normalization,
// validation and duplicate detection on email and phone
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new player service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// List returns all players in storage order
func (s *Service) List(ctx context.Context) ([]model.Player, error) {
	return s.storage.GetPlayers(ctx)
}

// Get returns a single player by id
func (s *Service) Get(ctx context.Context, id model.PlayerID) (*model.Player, error) {
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

// Create validates the input, rejects email/phone collisions with other
// players, assigns a fresh id and persists the updated collection
func (s *Service) Create(ctx context.Context, in Input) (*model.Player, error) {
	candidate := normalize(in)
	if verr := check(candidate); verr != nil {
		return nil, verr
	}

	players, err := s.storage.GetPlayers(ctx)
	if err != nil {
		return nil, err
	}
	if err := findDuplicate(players, candidate, ""); err != nil {
		return nil, err
	}

	candidate.ID = model.PlayerID(uuid.NewString())
	players = append(players, candidate)
	if err := s.storage.SavePlayers(ctx, players); err != nil {
		return nil, err
	}

	s.logger.Info("player created", slog.String("player_id", string(candidate.ID)))
	return &candidate, nil
}

// Update replaces the stored fields of an existing player after
// re-normalizing and re-validating, rejecting collisions with a
// different player's email or phone
func (s *Service) Update(ctx context.Context, id model.PlayerID, in Input) (*model.Player, error) {
	edited := normalize(in)
	if verr := check(edited); verr != nil {
		return nil, verr
	}

	players, err := s.storage.GetPlayers(ctx)
	if err != nil {
		return nil, err
	}

	index := -1
	for i := range players {
		if players[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, model.ErrPlayerNotFound
	}

	if err := findDuplicate(players, edited, id); err != nil {
		return nil, err
	}

	edited.ID = id
	players[index] = edited
	if err := s.storage.SavePlayers(ctx, players); err != nil {
		return nil, err
	}

	s.logger.Info("player updated", slog.String("player_id", string(id)))
	return &edited, nil
}

// Delete removes a player by id, reporting whether a record was removed.
// Reservations referencing the player are left untouched; they keep the
// name snapshot taken when they were booked.
func (s *Service) Delete(ctx context.Context, id model.PlayerID) (bool, error) {
	players, err := s.storage.GetPlayers(ctx)
	if err != nil {
		return false, err
	}

	remaining := make([]model.Player, 0, len(players))
	for _, p := range players {
		if p.ID != id {
			remaining = append(remaining, p)
		}
	}
	if len(remaining) == len(players) {
		return false, nil
	}

	if err := s.storage.SavePlayers(ctx, remaining); err != nil {
		return false, err
	}

	s.logger.Info("player deleted", slog.String("player_id", string(id)))
	return true, nil
}

// normalize cleans every field of the raw input
func normalize(in Input) model.Player {
	return model.Player{
		FirstName: validate.Normalize(validate.KindName, in.FirstName),
		LastName:  validate.Normalize(validate.KindName, in.LastName),
		Email:     validate.Normalize(validate.KindEmail, in.Email),
		Phone:     validate.Normalize(validate.KindPhone, in.Phone),
	}
}

// check validates every normalized field, returning nil when all pass
func check(p model.Player) error {
	verr := model.NewValidationError(map[string]string{
		"nombre":   validate.Message(validate.KindName, "nombre", p.FirstName),
		"apellido": validate.Message(validate.KindName, "apellido", p.LastName),
		"email":    validate.Message(validate.KindEmail, "email", p.Email),
		"telefono": validate.Message(validate.KindPhone, "telefono", p.Phone),
	})
	if verr != nil {
		return verr
	}
	return nil
}

// findDuplicate rejects email or phone collisions with any player other
// than excludeID
func findDuplicate(players []model.Player, candidate model.Player, excludeID model.PlayerID) error {
	for _, p := range players {
		if p.ID == excludeID {
			continue
		}
		if p.Email == candidate.Email {
			return model.ErrDuplicateEmail
		}
		if p.Phone == candidate.Phone {
			return model.ErrDuplicatePhone
		}
	}
	return nil
}
