package character_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/emberhollow/realmd/internal/entities"
	"github.com/emberhollow/realmd/internal/errors"
	"github.com/emberhollow/realmd/internal/redis"
	"github.com/emberhollow/realmd/internal/repositories/character"
	"github.com/emberhollow/realmd/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	client  redis.Client
	cleanup func()
	repo    character.Repository
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.client, s.cleanup = testutils.CreateTestRedisClient(s.T())
	repo, err := character.NewRedis(&character.RedisConfig{Client: s.client})
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

func (s *RedisRepositoryTestSuite) testCharacter() *entities.Character {
	return &entities.Character{
		ID:       "char_1",
		UserID:   "user_1",
		Name:     "Thessaly",
		Class:    "ranger",
		Gender:   "female",
		Model:    "ranger_f",
		Color:    "#2a9d8f",
		Level:    3,
		Health:   100,
		Mana:     50,
		Position: entities.Position{X: 4, Y: 0, Z: -2},
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	char := s.testCharacter()

	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: char})
	s.Require().NoError(err)

	output, err := s.repo.Get(s.ctx, character.GetInput{ID: char.ID})
	s.Require().NoError(err)
	s.Equal(char, output.Character)
}

func (s *RedisRepositoryTestSuite) TestCreateDuplicate() {
	char := s.testCharacter()

	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: char})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, character.CreateInput{Character: char})
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestCreateValidation() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, character.CreateInput{Character: &entities.Character{ID: "char_1"}})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, character.GetInput{ID: "char_missing"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestBelongsToUser() {
	char := s.testCharacter()
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: char})
	s.Require().NoError(err)

	output, err := s.repo.BelongsToUser(s.ctx, character.BelongsToUserInput{
		CharacterID: char.ID,
		UserID:      char.UserID,
	})
	s.Require().NoError(err)
	s.True(output.OK)

	output, err = s.repo.BelongsToUser(s.ctx, character.BelongsToUserInput{
		CharacterID: char.ID,
		UserID:      "user_other",
	})
	s.Require().NoError(err)
	s.False(output.OK)
}

func (s *RedisRepositoryTestSuite) TestBelongsToUserMissingCharacter() {
	_, err := s.repo.BelongsToUser(s.ctx, character.BelongsToUserInput{
		CharacterID: "char_missing",
		UserID:      "user_1",
	})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestUpdateState() {
	char := s.testCharacter()
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: char})
	s.Require().NoError(err)

	newState := entities.CharacterState{
		Position: entities.Position{X: 12.5, Y: 0.5, Z: -7.25},
		Level:    4,
		Health:   80,
		Mana:     35,
	}
	_, err = s.repo.UpdateState(s.ctx, character.UpdateStateInput{
		CharacterID: char.ID,
		State:       newState,
	})
	s.Require().NoError(err)

	output, err := s.repo.Get(s.ctx, character.GetInput{ID: char.ID})
	s.Require().NoError(err)
	s.Equal(newState.Position, output.Character.Position)
	s.Equal(int32(4), output.Character.Level)
	s.Equal(int32(80), output.Character.Health)
	s.Equal(int32(35), output.Character.Mana)
	// Identity fields survive the state write-back.
	s.Equal("Thessaly", output.Character.Name)
	s.Equal("user_1", output.Character.UserID)
}

func (s *RedisRepositoryTestSuite) TestUpdateStateNotFound() {
	_, err := s.repo.UpdateState(s.ctx, character.UpdateStateInput{
		CharacterID: "char_missing",
		State:       entities.CharacterState{},
	})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestListByUserID() {
	first := s.testCharacter()
	second := s.testCharacter()
	second.ID = "char_2"
	second.Name = "Corvin"

	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: first})
	s.Require().NoError(err)
	_, err = s.repo.Create(s.ctx, character.CreateInput{Character: second})
	s.Require().NoError(err)

	output, err := s.repo.ListByUserID(s.ctx, character.ListByUserIDInput{UserID: "user_1"})
	s.Require().NoError(err)
	s.Len(output.Characters, 2)
}

func (s *RedisRepositoryTestSuite) TestListByUserIDCleansStaleIndex() {
	char := s.testCharacter()
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: char})
	s.Require().NoError(err)

	// Drop the record but leave the index entry behind.
	s.Require().NoError(s.client.Del(s.ctx, "character:char_1").Err())

	output, err := s.repo.ListByUserID(s.ctx, character.ListByUserIDInput{UserID: "user_1"})
	s.Require().NoError(err)
	s.Empty(output.Characters)

	members, err := s.client.SMembers(s.ctx, "character:user:user_1").Result()
	s.Require().NoError(err)
	s.Empty(members)
}
