package catalog

import (
	"context"
	"encoding/json"
	"log/slog"
	"reflect"
	"sort"
	"strings"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/paranormal-api/internal/entities/paranormal"
	"github.com/KirkDiggler/paranormal-api/internal/errors"
	redisclient "github.com/KirkDiggler/paranormal-api/internal/redis"
)

const (
	catalogKeyPrefix = "catalog:"

	// Error messages
	errNameEmpty  = "entry name cannot be empty"
	errEntryNil   = "entry cannot be nil"
	errWrongEntry = "entry type does not match kind %s"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis catalog repository.
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

// NewRedis creates a new Redis-backed catalog repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

// Key returns the Redis hash holding a kind
func Key(kind paranormal.CatalogKind) string {
	return catalogKeyPrefix + string(kind)
}

func field(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func checkKind(kind paranormal.CatalogKind) error {
	if parsed, ok := paranormal.ParseCatalogKind(string(kind)); !ok || parsed != kind {
		return errors.InvalidArgumentf("unknown catalog kind %q", kind)
	}
	return nil
}

// checkEntry makes sure entry is the concrete type stored under kind
func checkEntry(kind paranormal.CatalogKind, entry paranormal.CatalogEntry) error {
	if entry == nil {
		return errors.InvalidArgument(errEntryNil)
	}
	blank, err := paranormal.NewCatalogEntry(kind)
	if err != nil {
		return err
	}
	if reflect.TypeOf(blank) != reflect.TypeOf(entry) {
		return errors.InvalidArgumentf(errWrongEntry, kind)
	}
	return entry.Validate()
}

func decodeEntry(kind paranormal.CatalogKind, raw string) (paranormal.CatalogEntry, error) {
	entry, err := paranormal.NewCatalogEntry(kind)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(raw), entry); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal %s entry", kind)
	}
	return entry, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if err := checkKind(input.Kind); err != nil {
		return nil, err
	}

	rows, err := r.client.HGetAll(ctx, Key(input.Kind)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", input.Kind)
	}

	entries := make([]paranormal.CatalogEntry, 0, len(rows))
	for name, raw := range rows {
		entry, err := decodeEntry(input.Kind, raw)
		if err != nil {
			slog.WarnContext(ctx, "skipping unreadable catalog entry",
				"kind", input.Kind,
				"name", name,
				"error", err.Error())
			continue
		}
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return field(entries[i].EntryName()) < field(entries[j].EntryName())
	})

	return &ListOutput{Entries: entries}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := checkKind(input.Kind); err != nil {
		return nil, err
	}
	if field(input.Name) == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	raw, err := r.client.HGet(ctx, Key(input.Kind), field(input.Name)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("%s entry %q not found", input.Kind, input.Name)
		}
		return nil, errors.Wrapf(err, "failed to get %s entry", input.Kind)
	}

	entry, err := decodeEntry(input.Kind, raw)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Entry: entry}, nil
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if err := checkKind(input.Kind); err != nil {
		return nil, err
	}
	if err := checkEntry(input.Kind, input.Entry); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Entry)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal %s entry", input.Kind)
	}

	if err := r.client.HSet(ctx, Key(input.Kind), field(input.Entry.EntryName()), data).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store %s entry", input.Kind)
	}

	return &PutOutput{Entry: input.Entry}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := checkKind(input.Kind); err != nil {
		return nil, err
	}
	if field(input.Name) == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	removed, err := r.client.HDel(ctx, Key(input.Kind), field(input.Name)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete %s entry", input.Kind)
	}
	if removed == 0 {
		return nil, errors.NotFoundf("%s entry %q not found", input.Kind, input.Name)
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) Seed(ctx context.Context, input SeedInput) (*SeedOutput, error) {
	counts := make(map[paranormal.CatalogKind]int, len(input.Entries))

	pipe := r.client.TxPipeline()
	for kind, entries := range input.Entries {
		if err := checkKind(kind); err != nil {
			return nil, err
		}
		if input.Replace {
			pipe.Del(ctx, Key(kind))
		}

		for i, entry := range entries {
			if err := checkEntry(kind, entry); err != nil {
				return nil, errors.Wrapf(err, "%s entry %d", kind, i)
			}
			data, err := json.Marshal(entry)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to marshal %s entry %q", kind, entry.EntryName())
			}
			pipe.HSet(ctx, Key(kind), field(entry.EntryName()), data)
		}
		counts[kind] = len(entries)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to seed catalog")
	}

	slog.InfoContext(ctx, "seeded catalog", "counts", counts)
	return &SeedOutput{Counts: counts}, nil
}
