package inventory

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/emberhollow/realmd/internal/entities"
	"github.com/emberhollow/realmd/internal/errors"
	redisclient "github.com/emberhollow/realmd/internal/redis"
)

const (
	inventoryKeyPrefix = "inventory:"

	errCharacterIDEmpty = "character ID cannot be empty"
	errSlotsNil         = "slots cannot be nil"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis inventory repository.
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

// NewRedis creates a new Redis-backed inventory repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	key := inventoryKeyPrefix + input.CharacterID
	fields, err := r.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get inventory")
	}

	slots := entities.NewInventory()
	for field, raw := range fields {
		index, err := strconv.Atoi(field)
		if err != nil || index < 0 || index >= len(slots) {
			return nil, errors.Internalf("corrupt inventory slot key %q for character %s", field, input.CharacterID)
		}
		var slot entities.Slot
		if err := json.Unmarshal([]byte(raw), &slot); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal inventory slot %d", index)
		}
		slots[index] = &slot
	}

	return &GetOutput{Slots: slots}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if input.Slots == nil {
		return nil, errors.InvalidArgument(errSlotsNil)
	}

	key := inventoryKeyPrefix + input.CharacterID

	fields := make([]interface{}, 0, len(input.Slots)*2)
	for index, slot := range input.Slots {
		if slot == nil {
			continue
		}
		raw, err := json.Marshal(slot)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal inventory slot %d", index)
		}
		fields = append(fields, strconv.Itoa(index), string(raw))
	}

	// Full rewrite inside one transaction: either the old inventory
	// survives intact or the new one replaces it completely.
	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	if len(fields) > 0 {
		pipe.HSet(ctx, key, fields...)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to save inventory")
	}

	return &SaveOutput{}, nil
}
