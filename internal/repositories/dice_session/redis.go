package dicesession

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/paranormal-api/internal/errors"
	"github.com/KirkDiggler/paranormal-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/paranormal-api/internal/redis"
)

const (
	// Key pattern: dice_session:{entity_id}:{context}
	sessionKeyPrefix = "dice_session:"

	// DefaultTTL applies when neither the config nor the call sets one
	DefaultTTL = 15 * time.Minute
	// DefaultMaxRolls bounds the history kept per session
	DefaultMaxRolls = 50

	appendRetries = 5

	// Error messages
	errSessionNil     = "session cannot be nil"
	errEntityIDEmpty  = "entity ID cannot be empty"
	errContextEmpty   = "context cannot be empty"
	errSessionExpired = "session has already expired"
	errNoRolls        = "at least one roll is required"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
	// TTL for new sessions, DefaultTTL when zero
	TTL time.Duration
	// MaxRolls kept per session, DefaultMaxRolls when zero
	MaxRolls int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("client")
	}
	if c.Clock == nil {
		vb.RequiredField("clock")
	}
	if c.TTL < 0 {
		vb.Field("ttl", "must not be negative")
	}
	errors.ValidateMin("max_rolls", c.MaxRolls, 0, vb)
	return vb.Build()
}

type redisRepository struct {
	client   redisclient.Client
	clock    clock.Clock
	ttl      time.Duration
	maxRolls int
}

// NewRedisRepository creates a new Redis repository for dice sessions
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}
	maxRolls := cfg.MaxRolls
	if maxRolls == 0 {
		maxRolls = DefaultMaxRolls
	}

	return &redisRepository{
		client:   cfg.Client,
		clock:    cfg.Clock,
		ttl:      ttl,
		maxRolls: maxRolls,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

func validateKey(entityID, sessionContext string) error {
	if entityID == "" {
		return errors.InvalidArgument(errEntityIDEmpty)
	}
	if sessionContext == "" {
		return errors.InvalidArgument(errContextEmpty)
	}
	return nil
}

func (r *redisRepository) ttlOr(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return r.ttl
	}
	return ttl
}

func (r *redisRepository) trim(rolls []DiceRoll) []DiceRoll {
	if len(rolls) <= r.maxRolls {
		return rolls
	}
	return append([]DiceRoll(nil), rolls[len(rolls)-r.maxRolls:]...)
}

// Create stores a new dice session with the specified TTL
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}

	now := r.clock.Now()
	ttl := r.ttlOr(input.TTL)

	session := &DiceSession{
		EntityID:  input.EntityID,
		Context:   input.Context,
		Rolls:     r.trim(input.Rolls),
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal session")
	}

	key := r.buildKey(input.EntityID, input.Context)
	if err := r.client.Set(ctx, key, sessionJSON, ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store session in Redis")
	}

	return &CreateOutput{
		Session: session,
	}, nil
}

// Get retrieves a dice session by entity ID and context
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}

	key := r.buildKey(input.EntityID, input.Context)
	sessionJSON, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("dice session not found")
		}
		return nil, errors.Wrapf(err, "failed to get session from Redis")
	}

	session, err := r.decode(sessionJSON)
	if err != nil {
		return nil, err
	}

	// Redis expiry and the stored expiry can drift apart under a test clock
	if !r.clock.Now().Before(session.ExpiresAt) {
		_ = r.client.Del(ctx, key)
		return nil, errors.NotFound("dice session has expired")
	}

	return &GetOutput{
		Session: session,
	}, nil
}

func (r *redisRepository) decode(data []byte) (*DiceSession, error) {
	var session DiceSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal session")
	}
	return &session, nil
}

// Delete removes a dice session
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}

	var rollsDeleted int
	if out, err := r.Get(ctx, GetInput(input)); err == nil {
		rollsDeleted = len(out.Session.Rolls)
	}

	key := r.buildKey(input.EntityID, input.Context)
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to delete session from Redis")
	}

	return &DeleteOutput{
		RollsDeleted: rollsDeleted,
	}, nil
}

// Update replaces an existing dice session (used for adding rolls)
func (r *redisRepository) Update(ctx context.Context, session *DiceSession) error {
	if session == nil {
		return errors.InvalidArgument(errSessionNil)
	}
	if err := validateKey(session.EntityID, session.Context); err != nil {
		return err
	}

	now := r.clock.Now()
	if !now.Before(session.ExpiresAt) {
		return errors.FailedPrecondition(errSessionExpired)
	}
	session.Rolls = r.trim(session.Rolls)

	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal session")
	}

	key := r.buildKey(session.EntityID, session.Context)
	if err := r.client.Set(ctx, key, sessionJSON, session.ExpiresAt.Sub(now)).Err(); err != nil {
		return errors.Wrapf(err, "failed to update session in Redis")
	}

	return nil
}

// Append adds rolls under WATCH so concurrent appends are not lost
func (r *redisRepository) Append(ctx context.Context, input AppendInput) (*AppendOutput, error) {
	if err := validateKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}
	if len(input.Rolls) == 0 {
		return nil, errors.InvalidArgument(errNoRolls)
	}

	key := r.buildKey(input.EntityID, input.Context)
	var written *DiceSession

	txf := func(tx *redis.Tx) error {
		now := r.clock.Now()

		var session *DiceSession
		raw, err := tx.Get(ctx, key).Bytes()
		switch {
		case err == redis.Nil:
		case err != nil:
			return errors.Wrapf(err, "failed to get session from Redis")
		default:
			session, err = r.decode(raw)
			if err != nil {
				return err
			}
			if !now.Before(session.ExpiresAt) {
				session = nil
			}
		}

		if session == nil {
			session = &DiceSession{
				EntityID:  input.EntityID,
				Context:   input.Context,
				CreatedAt: now,
				ExpiresAt: now.Add(r.ttlOr(input.TTL)),
			}
		}
		session.Rolls = r.trim(append(session.Rolls, input.Rolls...))

		data, err := json.Marshal(session)
		if err != nil {
			return errors.Wrapf(err, "failed to marshal session")
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, session.ExpiresAt.Sub(now))
			return nil
		})
		if err != nil {
			return err
		}

		written = session
		return nil
	}

	for attempt := 1; attempt <= appendRetries; attempt++ {
		err := r.client.Watch(ctx, txf, key)
		if err == nil {
			return &AppendOutput{Session: written}, nil
		}
		if errors.Is(err, redisclient.TxFailedErr) {
			slog.DebugContext(ctx, "dice session changed during append, retrying",
				"entity_id", input.EntityID,
				"context", input.Context,
				"attempt", attempt)
			continue
		}
		return nil, errors.Wrapf(err, "failed to append to dice session")
	}

	return nil, errors.Abortedf("dice session %s:%s kept changing", input.EntityID, input.Context)
}

// buildKey creates the Redis key for a dice session
func (r *redisRepository) buildKey(entityID, sessionContext string) string {
	return fmt.Sprintf("%s%s:%s", sessionKeyPrefix, entityID, sessionContext)
}
