package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/emberhollow/realmd/internal/entities"
	"github.com/emberhollow/realmd/internal/errors"
	"github.com/emberhollow/realmd/internal/redis"
	"github.com/emberhollow/realmd/internal/repositories/inventory"
	"github.com/emberhollow/realmd/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	client  redis.Client
	cleanup func()
	repo    inventory.Repository
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.client, s.cleanup = testutils.CreateTestRedisClient(s.T())
	repo, err := inventory.NewRedis(&inventory.RedisConfig{Client: s.client})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestRoundTrip() {
	slots := entities.NewInventory()
	slots[0] = &entities.Slot{Type: "wood", Quantity: 12}
	slots[7] = &entities.Slot{Type: "iron", Quantity: 1}
	slots[39] = &entities.Slot{Type: "herb", Quantity: entities.MaxStackSize}

	_, err := s.repo.Save(s.ctx, inventory.SaveInput{CharacterID: "char_1", Slots: slots})
	s.Require().NoError(err)

	output, err := s.repo.Get(s.ctx, inventory.GetInput{CharacterID: "char_1"})
	s.Require().NoError(err)
	s.Equal(slots, output.Slots)
}

func (s *RedisRepositoryTestSuite) TestGetUnknownCharacterIsEmpty() {
	output, err := s.repo.Get(s.ctx, inventory.GetInput{CharacterID: "char_new"})
	s.Require().NoError(err)
	s.Len(output.Slots, entities.InventorySize)
	s.Zero(output.Slots.Total())
}

func (s *RedisRepositoryTestSuite) TestSaveReplacesClearedSlots() {
	slots := entities.NewInventory()
	slots[0] = &entities.Slot{Type: "wood", Quantity: 5}
	slots[1] = &entities.Slot{Type: "stone", Quantity: 2}

	_, err := s.repo.Save(s.ctx, inventory.SaveInput{CharacterID: "char_1", Slots: slots})
	s.Require().NoError(err)

	// Slot 1 was emptied in memory; the rewrite must drop its row.
	slots[1] = nil
	_, err = s.repo.Save(s.ctx, inventory.SaveInput{CharacterID: "char_1", Slots: slots})
	s.Require().NoError(err)

	output, err := s.repo.Get(s.ctx, inventory.GetInput{CharacterID: "char_1"})
	s.Require().NoError(err)
	s.Nil(output.Slots[1])
	s.Equal(5, output.Slots[0].Quantity)
}

func (s *RedisRepositoryTestSuite) TestSaveEmptyInventory() {
	slots := entities.NewInventory()
	slots[3] = &entities.Slot{Type: "herb", Quantity: 1}
	_, err := s.repo.Save(s.ctx, inventory.SaveInput{CharacterID: "char_1", Slots: slots})
	s.Require().NoError(err)

	_, err = s.repo.Save(s.ctx, inventory.SaveInput{CharacterID: "char_1", Slots: entities.NewInventory()})
	s.Require().NoError(err)

	output, err := s.repo.Get(s.ctx, inventory.GetInput{CharacterID: "char_1"})
	s.Require().NoError(err)
	s.Zero(output.Slots.Total())
}

func (s *RedisRepositoryTestSuite) TestValidation() {
	_, err := s.repo.Get(s.ctx, inventory.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, inventory.SaveInput{CharacterID: "char_1"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, inventory.SaveInput{Slots: entities.NewInventory()})
	s.True(errors.IsInvalidArgument(err))
}
