package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/lmoreno/courtbook/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) TestEmptyReads() {
	players, err := s.storage.GetPlayers(s.ctx)
	s.Require().NoError(err)
	s.Empty(players)

	reservations, err := s.storage.GetReservations(s.ctx)
	s.Require().NoError(err)
	s.Empty(reservations)
}

func (s *StorageSuite) TestPlayersRoundTrip() {
	players := []model.Player{
		{ID: "p1", FirstName: "Ana", LastName: "García", Email: "ana@example.com", Phone: "1112223333"},
		{ID: "p2", FirstName: "Luis", LastName: "Pérez", Email: "luis@example.com", Phone: "4445556666"},
	}
	s.Require().NoError(s.storage.SavePlayers(s.ctx, players))

	got, err := s.storage.GetPlayers(s.ctx)
	s.Require().NoError(err)
	s.Equal(players, got)
}

func (s *StorageSuite) TestSaveReplacesCollection() {
	s.Require().NoError(s.storage.SavePlayers(s.ctx, []model.Player{
		{ID: "p1"}, {ID: "p2"},
	}))
	s.Require().NoError(s.storage.SavePlayers(s.ctx, []model.Player{
		{ID: "p3"},
	}))

	got, err := s.storage.GetPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal(model.PlayerID("p3"), got[0].ID)
}

func (s *StorageSuite) TestReservationsRoundTrip() {
	reservations := []model.Reservation{
		{ID: "r1", PlayerID: "p1", PlayerName: "Ana García", Date: "2024-06-12", Time: "18:00"},
	}
	s.Require().NoError(s.storage.SaveReservations(s.ctx, reservations))

	got, err := s.storage.GetReservations(s.ctx)
	s.Require().NoError(err)
	s.Equal(reservations, got)
}

func (s *StorageSuite) TestCollectionsAreIndependent() {
	s.Require().NoError(s.storage.SavePlayers(s.ctx, []model.Player{{ID: "p1"}}))
	s.Require().NoError(s.storage.SaveReservations(s.ctx, nil))

	players, err := s.storage.GetPlayers(s.ctx)
	s.Require().NoError(err)
	s.Len(players, 1)
}

func (s *StorageSuite) TestReadsAreCopies() {
	s.Require().NoError(s.storage.SavePlayers(s.ctx, []model.Player{
		{ID: "p1", FirstName: "Ana"},
	}))

	got, err := s.storage.GetPlayers(s.ctx)
	s.Require().NoError(err)
	got[0].FirstName = "mutated"

	again, err := s.storage.GetPlayers(s.ctx)
	s.Require().NoError(err)
	s.Equal("Ana", again[0].FirstName)
}

func (s *StorageSuite) TestSaveCopiesInput() {
	players := []model.Player{{ID: "p1", FirstName: "Ana"}}
	s.Require().NoError(s.storage.SavePlayers(s.ctx, players))
	players[0].FirstName = "mutated"

	got, err := s.storage.GetPlayers(s.ctx)
	s.Require().NoError(err)
	s.Equal("Ana", got[0].FirstName)
}
