package user

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/emberhollow/realmd/internal/entities"
	"github.com/emberhollow/realmd/internal/errors"
	redisclient "github.com/emberhollow/realmd/internal/redis"
)

const (
	userKeyPrefix = "user:"

	errUserIDEmpty = "user ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis user repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed user repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	key := userKeyPrefix + input.ID
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("user with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get user")
	}

	var user entities.User
	if err := json.Unmarshal([]byte(result), &user); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal user data")
	}

	return &GetOutput{User: &user}, nil
}
