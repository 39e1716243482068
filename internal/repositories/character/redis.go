package character

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/paranormal-api/internal/entities/paranormal"
	"github.com/KirkDiggler/paranormal-api/internal/errors"
	"github.com/KirkDiggler/paranormal-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/paranormal-api/internal/redis"
)

const (
	characterKeyPrefix = "character:"
	allIndexKey        = "character:all"
	playerIndexPrefix  = "character:player:"

	defaultMaxRetries = 5

	// Error messages
	errCharacterNil     = "character cannot be nil"
	errCharacterIDEmpty = "character ID cannot be empty"
	errPlayerIDEmpty    = "player ID cannot be empty"
	errMutateNil        = "mutate function cannot be nil"
)

type redisRepository struct {
	client     redisclient.Client
	clock      clock.Clock
	maxRetries int
}

// RedisConfig contains configuration for the Redis character repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
	// MaxRetries bounds optimistic retries in Mutate, 5 when zero
	MaxRetries int
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if cfg.Client == nil {
		vb.RequiredField("client")
	}
	errors.ValidateMin("max_retries", cfg.MaxRetries, 0, vb)
	return vb.Build()
}

// NewRedis creates a new Redis-backed character repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	retries := cfg.MaxRetries
	if retries == 0 {
		retries = defaultMaxRetries
	}

	return &redisRepository{
		client:     cfg.Client,
		clock:      c,
		maxRetries: retries,
	}, nil
}

func characterKey(id string) string {
	return characterKeyPrefix + id
}

func playerKey(playerID string) string {
	return playerIndexPrefix + playerID
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	key := characterKey(input.Character.ID)

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("character with ID %s already exists", input.Character.ID)
	}

	data, err := json.Marshal(input.Character)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, allIndexKey, input.Character.ID)
	if input.Character.PlayerID != "" {
		pipe.SAdd(ctx, playerKey(input.Character.PlayerID), input.Character.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create character")
	}

	return &CreateOutput{Character: input.Character}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	raw, err := r.client.Get(ctx, characterKey(input.ID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("character with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get character")
	}

	char, err := DecodeRecord(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode character %s", input.ID)
	}
	// Older records may carry a numeric or missing id
	char.ID = input.ID

	return &GetOutput{Character: char}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	existing, err := r.Get(ctx, GetInput{ID: input.Character.ID})
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Character)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, characterKey(input.Character.ID), data, 0)
	pipe.SAdd(ctx, allIndexKey, input.Character.ID)
	reindexPlayer(ctx, pipe, input.Character.ID, existing.Character.PlayerID, input.Character.PlayerID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update character")
	}

	return &UpdateOutput{Character: input.Character}, nil
}

// reindexPlayer keeps the player index in step with the record. The add is
// unconditional so records written before the index existed get picked up.
func reindexPlayer(ctx context.Context, pipe redis.Pipeliner, id, previous, current string) {
	if previous != "" && previous != current {
		pipe.SRem(ctx, playerKey(previous), id)
	}
	if current != "" {
		pipe.SAdd(ctx, playerKey(current), id)
	}
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	existing, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, characterKey(input.ID))
	pipe.SRem(ctx, allIndexKey, input.ID)
	if existing.Character.PlayerID != "" {
		pipe.SRem(ctx, playerKey(existing.Character.PlayerID), input.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	characters, err := r.listByIndex(ctx, allIndexKey)
	if err != nil {
		return nil, err
	}
	return &ListOutput{Characters: characters}, nil
}

func (r *redisRepository) ListByPlayerID(
	ctx context.Context,
	input ListByPlayerIDInput,
) (*ListByPlayerIDOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	characters, err := r.listByIndex(ctx, playerKey(input.PlayerID))
	if err != nil {
		slog.ErrorContext(ctx, "failed to list characters by player index",
			"player_id", input.PlayerID,
			"error", err.Error())
		return nil, err
	}

	slog.DebugContext(ctx, "listed characters by player",
		"player_id", input.PlayerID,
		"count", len(characters))

	return &ListByPlayerIDOutput{Characters: characters}, nil
}

// listByIndex loads every character in an index set, dropping ids whose
// record has gone
func (r *redisRepository) listByIndex(ctx context.Context, indexKey string) ([]*paranormal.Character, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get characters from index %s", indexKey)
	}

	characters := make([]*paranormal.Character, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "character not found, cleaning up index",
					"character_id", id,
					"index_key", indexKey)
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get character %s", id)
		}
		characters = append(characters, out.Character)
	}

	return characters, nil
}

func (r *redisRepository) Mutate(ctx context.Context, input MutateInput) (*MutateOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if input.Mutate == nil {
		return nil, errors.InvalidArgument(errMutateNil)
	}

	key := characterKey(input.ID)
	var written *paranormal.Character

	txf := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if err == redis.Nil {
				return errors.NotFoundf("character with ID %s not found", input.ID)
			}
			return errors.Wrapf(err, "failed to get character")
		}

		char, err := DecodeRecord(raw)
		if err != nil {
			return errors.Wrapf(err, "failed to decode character %s", input.ID)
		}
		char.ID = input.ID
		previousPlayer := char.PlayerID

		if err := input.Mutate(char); err != nil {
			return err
		}
		char.ID = input.ID
		char.UpdatedAt = r.clock.Now()

		data, err := json.Marshal(char)
		if err != nil {
			return errors.Wrapf(err, "failed to marshal character")
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			pipe.SAdd(ctx, allIndexKey, input.ID)
			reindexPlayer(ctx, pipe, input.ID, previousPlayer, char.PlayerID)
			return nil
		})
		if err != nil {
			return err
		}

		written = char
		return nil
	}

	for attempt := 1; attempt <= r.maxRetries; attempt++ {
		err := r.client.Watch(ctx, txf, key)
		if err == nil {
			return &MutateOutput{Character: written}, nil
		}
		if errors.Is(err, redisclient.TxFailedErr) {
			slog.DebugContext(ctx, "character changed during mutation, retrying",
				"character_id", input.ID,
				"attempt", attempt)
			continue
		}

		var domainErr *errors.Error
		if errors.As(err, &domainErr) {
			return nil, err
		}
		return nil, errors.Wrapf(err, "failed to mutate character %s", input.ID)
	}

	return nil, errors.Abortedf("character %s kept changing, gave up after %d attempts", input.ID, r.maxRetries)
}
