// Package catalog implements the orchestrator over the reference tables that
// character sheets draw from
package catalog

//go:generate mockgen -destination=mock/mock_service.go -package=catalogmock github.com/KirkDiggler/paranormal-api/internal/orchestrators/catalog Service

import (
	"context"
	"log/slog"
	"reflect"
	"strings"

	"github.com/KirkDiggler/paranormal-api/internal/entities/paranormal"
	"github.com/KirkDiggler/paranormal-api/internal/errors"
	catalogrepo "github.com/KirkDiggler/paranormal-api/internal/repositories/catalog"
)

// Service defines the interface for catalog operations
type Service interface {
	ListEntries(ctx context.Context, input *ListEntriesInput) (*ListEntriesOutput, error)
	GetEntry(ctx context.Context, input *GetEntryInput) (*GetEntryOutput, error)

	// Game master only
	PutEntry(ctx context.Context, input *PutEntryInput) (*PutEntryOutput, error)
	DeleteEntry(ctx context.Context, input *DeleteEntryInput) (*DeleteEntryOutput, error)
	Seed(ctx context.Context, input *SeedInput) (*SeedOutput, error)
}

// Config holds the dependencies for the catalog orchestrator
type Config struct {
	CatalogRepo catalogrepo.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CatalogRepo == nil {
		vb.RequiredField("CatalogRepo")
	}

	return vb.Build()
}

type orchestrator struct {
	catalogRepo catalogrepo.Repository
}

// NewOrchestrator creates a new catalog orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{catalogRepo: cfg.CatalogRepo}, nil
}

func parseKind(raw string) (paranormal.CatalogKind, error) {
	kind, ok := paranormal.ParseCatalogKind(raw)
	if !ok {
		return "", errors.InvalidArgumentf("unknown catalog kind %q", raw)
	}
	return kind, nil
}

// ListEntries returns a table ordered by name
func (o *orchestrator) ListEntries(ctx context.Context, input *ListEntriesInput) (*ListEntriesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	kind, err := parseKind(input.Kind)
	if err != nil {
		return nil, err
	}

	listed, err := o.catalogRepo.List(ctx, catalogrepo.ListInput{Kind: kind})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", kind)
	}

	return &ListEntriesOutput{Kind: kind, Entries: listed.Entries}, nil
}

// GetEntry returns one entry by name
func (o *orchestrator) GetEntry(ctx context.Context, input *GetEntryInput) (*GetEntryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	kind, err := parseKind(input.Kind)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.InvalidArgument("name is required")
	}

	got, err := o.catalogRepo.Get(ctx, catalogrepo.GetInput{Kind: kind, Name: input.Name})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get %s", input.Name)
	}

	return &GetEntryOutput{Kind: kind, Entry: got.Entry}, nil
}

// PutEntry validates and stores an entry. Weapons that name an attack skill
// must name one the skills table knows.
func (o *orchestrator) PutEntry(ctx context.Context, input *PutEntryInput) (*PutEntryOutput, error) {
	if input == nil || input.Entry == nil || reflect.ValueOf(input.Entry).IsNil() {
		return nil, errors.InvalidArgument("entry is required")
	}
	kind, err := parseKind(input.Kind)
	if err != nil {
		return nil, err
	}

	if err := input.Entry.Validate(); err != nil {
		return nil, err
	}
	if weapon, ok := input.Entry.(*paranormal.Weapon); ok && weapon.Skill != "" {
		if err := o.requireSkill(ctx, weapon.Skill); err != nil {
			return nil, err
		}
	}

	stored, err := o.catalogRepo.Put(ctx, catalogrepo.PutInput{Kind: kind, Entry: input.Entry})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store %s", input.Entry.EntryName())
	}

	slog.InfoContext(ctx, "catalog entry stored",
		"kind", kind,
		"name", stored.Entry.EntryName(),
	)

	return &PutEntryOutput{Kind: kind, Entry: stored.Entry}, nil
}

func (o *orchestrator) requireSkill(ctx context.Context, skill string) error {
	_, err := o.catalogRepo.Get(ctx, catalogrepo.GetInput{Kind: paranormal.KindSkills, Name: skill})
	switch {
	case err == nil:
		return nil
	case errors.IsNotFound(err):
		return errors.InvalidArgumentf("weapon skill %q is not in the skills table", skill)
	default:
		return errors.Wrap(err, "failed to check weapon skill")
	}
}

// DeleteEntry removes an entry
func (o *orchestrator) DeleteEntry(ctx context.Context, input *DeleteEntryInput) (*DeleteEntryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	kind, err := parseKind(input.Kind)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.InvalidArgument("name is required")
	}

	if _, err := o.catalogRepo.Delete(ctx, catalogrepo.DeleteInput{Kind: kind, Name: input.Name}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete %s", input.Name)
	}

	slog.InfoContext(ctx, "catalog entry deleted", "kind", kind, "name", input.Name)

	return &DeleteEntryOutput{}, nil
}

// Seed loads every seed file in a directory in one write
func (o *orchestrator) Seed(ctx context.Context, input *SeedInput) (*SeedOutput, error) {
	if input == nil || input.Dir == "" {
		return nil, errors.InvalidArgument("seed directory is required")
	}

	seeds, err := catalogrepo.LoadSeeds(input.Dir)
	if err != nil {
		return nil, err
	}

	seeded, err := o.catalogRepo.Seed(ctx, catalogrepo.SeedInput{Entries: seeds, Replace: input.Replace})
	if err != nil {
		return nil, errors.Wrap(err, "failed to seed catalog")
	}

	for kind, count := range seeded.Counts {
		slog.InfoContext(ctx, "catalog seeded", "kind", kind, "entries", count, "replace", input.Replace)
	}

	return &SeedOutput{Counts: seeded.Counts}, nil
}
