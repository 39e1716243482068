package character

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/paranormal-api/internal/engine/stats"
	"github.com/KirkDiggler/paranormal-api/internal/entities/paranormal"
	"github.com/KirkDiggler/paranormal-api/internal/errors"
	catalogrepo "github.com/KirkDiggler/paranormal-api/internal/repositories/catalog"
	characterrepo "github.com/KirkDiggler/paranormal-api/internal/repositories/character"
	"github.com/KirkDiggler/paranormal-api/internal/services/character"
)

// SetAttribute changes one attribute and recomputes the derived stats
func (o *Orchestrator) SetAttribute(
	ctx context.Context,
	input *character.SetAttributeInput,
) (*character.SetAttributeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("character_id", input.CharacterID, vb)
	attr, ok := paranormal.ParseAttribute(input.Attribute)
	if !ok {
		vb.Fieldf("attribute", "unknown attribute %q", input.Attribute)
	}
	errors.ValidateMin("value", input.Value, 0, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	var fallback bool
	mutated, err := o.characterRepo.Mutate(ctx, characterrepo.MutateInput{
		ID: input.CharacterID,
		Mutate: func(c *paranormal.Character) error {
			if c.Attributes == nil {
				c.Attributes = paranormal.BaseAttributeSet()
			}
			c.Attributes[attr] = input.Value

			var derived stats.DerivedStats
			derived, fallback = stats.ComputeWithFallback(c.Attributes, c.Archetype)
			stats.Apply(c, derived)
			return nil
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to set attribute")
	}

	if fallback {
		slog.WarnContext(ctx, "unknown archetype, stats derived as specialist",
			"character_id", input.CharacterID,
			"archetype", mutated.Character.Archetype,
		)
	}

	return &character.SetAttributeOutput{
		Character:         mutated.Character,
		ArchetypeFallback: fallback,
	}, nil
}

// ChangeArchetype moves the character to a known archetype and recomputes
// the derived stats. Current pools are clamped, never refilled.
func (o *Orchestrator) ChangeArchetype(
	ctx context.Context,
	input *character.ChangeArchetypeInput,
) (*character.ChangeArchetypeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	archetype := paranormal.ParseArchetype(input.Archetype)
	if !archetype.Known() {
		return nil, errors.UnknownArchetype(input.Archetype)
	}

	mutated, err := o.characterRepo.Mutate(ctx, characterrepo.MutateInput{
		ID: input.CharacterID,
		Mutate: func(c *paranormal.Character) error {
			derived, err := stats.Compute(c.Attributes, archetype)
			if err != nil {
				return err
			}
			c.Archetype = archetype
			stats.Apply(c, derived)
			return nil
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to change archetype")
	}

	return &character.ChangeArchetypeOutput{Character: mutated.Character}, nil
}

// AdjustPool applies damage, healing or spending to one pool, clamped to
// [0, max]
func (o *Orchestrator) AdjustPool(
	ctx context.Context,
	input *character.AdjustPoolInput,
) (*character.AdjustPoolOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	kind := paranormal.PoolKind(strings.ToLower(strings.TrimSpace(input.Pool)))
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("character_id", input.CharacterID, vb)
	errors.ValidateEnum("pool", string(kind), []string{
		string(paranormal.PoolHealth),
		string(paranormal.PoolSanity),
		string(paranormal.PoolEffort),
	}, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	var result paranormal.Pool
	mutated, err := o.characterRepo.Mutate(ctx, characterrepo.MutateInput{
		ID: input.CharacterID,
		Mutate: func(c *paranormal.Character) error {
			pool, _ := c.Pool(kind)
			*pool = pool.Adjust(input.Delta)
			result = *pool
			return nil
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to adjust pool")
	}

	slog.DebugContext(ctx, "pool adjusted",
		"character_id", input.CharacterID,
		"pool", kind,
		"delta", input.Delta,
		"current", result.Current,
		"max", result.Max,
	)

	return &character.AdjustPoolOutput{
		Character: mutated.Character,
		Pool:      result,
	}, nil
}

// TrainSkill moves a skill one level up or down the numeric scale. A skill
// lowered to zero is dropped from the sheet.
func (o *Orchestrator) TrainSkill(
	ctx context.Context,
	input *character.TrainSkillInput,
) (*character.TrainSkillOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("character_id", input.CharacterID, vb)
	errors.ValidateRequired("skill", input.Skill, vb)
	errors.ValidateEnum("direction", string(input.Direction), []string{
		string(character.TrainUp),
		string(character.TrainDown),
	}, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	// Skills off the catalog may still be trained if the sheet already has them
	catalogName := ""
	got, err := o.catalogRepo.Get(ctx, catalogrepo.GetInput{Kind: paranormal.KindSkills, Name: input.Skill})
	switch {
	case err == nil:
		catalogName = got.Entry.EntryName()
	case !errors.IsNotFound(err):
		return nil, errors.Wrap(err, "failed to get skill")
	}

	var level paranormal.TrainingLevel
	mutated, err := o.characterRepo.Mutate(ctx, characterrepo.MutateInput{
		ID: input.CharacterID,
		Mutate: func(c *paranormal.Character) error {
			name := sheetSkill(c, input.Skill)
			if name == "" {
				if catalogName == "" {
					return errors.NotFoundf("skill %q not found", input.Skill)
				}
				name = catalogName
			}

			current := c.Training(name)
			switch input.Direction {
			case character.TrainUp:
				if current.Level() >= paranormal.MaxTrainingLevel {
					return errors.FailedPreconditionf("%s is already at level %d", name, paranormal.MaxTrainingLevel)
				}
				level = current.Raise()
			case character.TrainDown:
				if current.Level() <= paranormal.MinTrainingLevel {
					return errors.FailedPreconditionf("%s is not trained", name)
				}
				level = current.Lower()
			}

			if c.Skills == nil {
				c.Skills = make(map[string]paranormal.TrainingLevel)
			}
			if level.Level() == 0 {
				delete(c.Skills, name)
				return nil
			}
			c.Skills[name] = level
			return nil
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to train skill")
	}

	return &character.TrainSkillOutput{
		Character: mutated.Character,
		Level:     level,
	}, nil
}

// sheetSkill finds the key the sheet stores a skill under
func sheetSkill(c *paranormal.Character, skill string) string {
	want := skillKey(skill)
	for name := range c.Skills {
		if skillKey(name) == want {
			return name
		}
	}
	return ""
}
