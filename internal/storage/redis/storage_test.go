package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/lmoreno/courtbook/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())
	client := goredis.NewClient(&goredis.Options{Addr: s.mini.Addr()})
	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	s.Require().NoError(s.storage.Close())
}

func (s *StorageSuite) TestMissingKeysReadAsEmpty() {
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

func (s *StorageSuite) TestReservationsRoundTrip() {
	reservations := []model.Reservation{
		{ID: "r1", PlayerID: "p1", PlayerName: "Ana García", Date: "2024-06-12", Time: "18:00"},
	}
	s.Require().NoError(s.storage.SaveReservations(s.ctx, reservations))

	got, err := s.storage.GetReservations(s.ctx)
	s.Require().NoError(err)
	s.Equal(reservations, got)
}

func (s *StorageSuite) TestSaveReplacesCollection() {
	s.Require().NoError(s.storage.SavePlayers(s.ctx, []model.Player{{ID: "p1"}, {ID: "p2"}}))
	s.Require().NoError(s.storage.SavePlayers(s.ctx, []model.Player{{ID: "p3"}}))

	got, err := s.storage.GetPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal(model.PlayerID("p3"), got[0].ID)
}

func (s *StorageSuite) TestCollectionsStoredUnderPrefixedKeys() {
	s.Require().NoError(s.storage.SavePlayers(s.ctx, []model.Player{{ID: "p1"}}))
	s.Require().NoError(s.storage.SaveReservations(s.ctx, []model.Reservation{{ID: "r1"}}))

	s.True(s.mini.Exists("courtbook:jugadores"))
	s.True(s.mini.Exists("courtbook:reservas"))
}

func (s *StorageSuite) TestStoredValueIsJSONArray() {
	s.Require().NoError(s.storage.SaveReservations(s.ctx, []model.Reservation{
		{ID: "r1", PlayerID: "p1", PlayerName: "Ana García", Date: "2024-06-12", Time: "18:00"},
	}))

	raw, err := s.mini.Get("courtbook:reservas")
	s.Require().NoError(err)
	s.JSONEq(`[{"id":"r1","jugador":"p1","nombreJugador":"Ana García","fecha":"2024-06-12","hora":"18:00"}]`, raw)
}

func (s *StorageSuite) TestCorruptDataReturnsError() {
	s.Require().NoError(s.mini.Set("courtbook:jugadores", "not json"))

	_, err := s.storage.GetPlayers(s.ctx)
	s.Error(err)
}
