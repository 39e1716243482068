// Package dice implements the dice orchestrator: free rolls, tests made from a
// character sheet, and the display-only session that records them
package dice

//go:generate mockgen -destination=mock/mock_service.go -package=dicemock github.com/KirkDiggler/paranormal-api/internal/orchestrators/dice Service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/KirkDiggler/paranormal-api/internal/engine/check"
	"github.com/KirkDiggler/paranormal-api/internal/engine/dice"
	"github.com/KirkDiggler/paranormal-api/internal/entities/paranormal"
	"github.com/KirkDiggler/paranormal-api/internal/errors"
	"github.com/KirkDiggler/paranormal-api/internal/pkg/clock"
	"github.com/KirkDiggler/paranormal-api/internal/pkg/idgen"
	catalogrepo "github.com/KirkDiggler/paranormal-api/internal/repositories/catalog"
	characterrepo "github.com/KirkDiggler/paranormal-api/internal/repositories/character"
	dicesession "github.com/KirkDiggler/paranormal-api/internal/repositories/dice_session"
)

const (
	// DefaultContext groups rolls made from a character sheet
	DefaultContext = "sheet"

	// DefaultAttackSkill is used by weapons that name no skill
	DefaultAttackSkill = "Luta"
)

// Service defines the interface for dice operations
type Service interface {
	// Free rolls
	RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error)
	RollCustom(ctx context.Context, input *RollCustomInput) (*RollCustomOutput, error)

	// Tests made from a character sheet
	RollAttribute(ctx context.Context, input *RollAttributeInput) (*RollAttributeOutput, error)
	RollSkill(ctx context.Context, input *RollSkillInput) (*RollSkillOutput, error)
	RollAttack(ctx context.Context, input *RollAttackInput) (*RollAttackOutput, error)

	// Session history
	GetRollSession(ctx context.Context, input *GetRollSessionInput) (*GetRollSessionOutput, error)
	ClearRollSession(ctx context.Context, input *ClearRollSessionInput) (*ClearRollSessionOutput, error)
}

// Config holds the dependencies for the dice orchestrator
type Config struct {
	DiceSessionRepo dicesession.Repository
	CharacterRepo   characterrepo.Repository
	CatalogRepo     catalogrepo.Repository
	IDGenerator     idgen.Generator
	Clock           clock.Clock
	// Evaluator draws the dice; the toolkit's default roller when nil
	Evaluator *dice.Evaluator
	// SessionTTL for new sessions; zero leaves it to the repository
	SessionTTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.DiceSessionRepo == nil {
		vb.RequiredField("DiceSessionRepo")
	}
	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.CatalogRepo == nil {
		vb.RequiredField("CatalogRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.SessionTTL < 0 {
		vb.Field("SessionTTL", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	diceSessionRepo dicesession.Repository
	characterRepo   characterrepo.Repository
	catalogRepo     catalogrepo.Repository
	idGen           idgen.Generator
	clock           clock.Clock
	dice            *dice.Evaluator
	checks          *check.Evaluator
	ttl             time.Duration
}

// NewOrchestrator creates a new dice orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	evaluator := cfg.Evaluator
	if evaluator == nil {
		evaluator = dice.NewEvaluator(nil)
	}
	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &orchestrator{
		diceSessionRepo: cfg.DiceSessionRepo,
		characterRepo:   cfg.CharacterRepo,
		catalogRepo:     cfg.CatalogRepo,
		idGen:           cfg.IDGenerator,
		clock:           clk,
		dice:            evaluator,
		checks:          check.NewEvaluator(evaluator),
		ttl:             cfg.SessionTTL,
	}, nil
}

func contextOrDefault(c string) string {
	if c == "" {
		return DefaultContext
	}
	return c
}

// RollDice rolls a notation and records the roll in the entity's session
func (o *orchestrator) RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.EntityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}
	if strings.TrimSpace(input.Notation) == "" {
		return nil, errors.InvalidArgument("dice notation is required")
	}

	req, ok := dice.Parse(input.Notation)
	if !ok {
		return nil, dice.ParseError(input.Notation)
	}

	roll, session, err := o.rollRequest(ctx, input.EntityID, input.Context, dicesession.RollKindNotation, req, input.Description)
	if err != nil {
		return nil, err
	}

	return &RollDiceOutput{Roll: roll, Session: session}, nil
}

// RollCustom rolls quantity dice of sides faces plus modifier
func (o *orchestrator) RollCustom(ctx context.Context, input *RollCustomInput) (*RollCustomOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.EntityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}

	req := dice.NewRollRequest(input.Quantity, input.Sides, input.Modifier)
	if err := req.Validate(); err != nil {
		return nil, err
	}

	roll, session, err := o.rollRequest(ctx, input.EntityID, input.Context, dicesession.RollKindCustom, req, input.Description)
	if err != nil {
		return nil, err
	}

	return &RollCustomOutput{Roll: roll, Session: session}, nil
}

func (o *orchestrator) rollRequest(
	ctx context.Context,
	entityID, rollContext string,
	kind dicesession.RollKind,
	req dice.RollRequest,
	description string,
) (*dicesession.DiceRoll, *dicesession.DiceSession, error) {
	outcome, err := o.dice.Evaluate(req)
	if err != nil {
		return nil, nil, err
	}

	roll := o.outcomeRoll(kind, outcome, description)
	session, err := o.record(ctx, entityID, rollContext, roll)
	if err != nil {
		return nil, nil, err
	}

	slog.InfoContext(ctx, "dice rolled",
		"entity_id", entityID,
		"notation", roll.Notation,
		"total", roll.Total,
		"roll_id", roll.RollID,
	)

	return &roll, session, nil
}

// RollAttribute makes a d20 test with one of the character's attributes
func (o *orchestrator) RollAttribute(ctx context.Context, input *RollAttributeInput) (*RollAttributeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("character_id", input.CharacterID, vb)
	attr, ok := paranormal.ParseAttribute(input.Attribute)
	if !ok {
		vb.Fieldf("attribute", "unknown attribute %q", input.Attribute)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	char, err := o.character(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	test, err := o.checks.Test(char.Attributes.Get(attr), input.Bonus)
	if err != nil {
		return nil, err
	}

	roll := o.testRoll(dicesession.RollKindAttribute, test, string(attr))
	session, err := o.record(ctx, char.ID, input.Context, roll)
	if err != nil {
		return nil, err
	}

	return &RollAttributeOutput{Test: test, Roll: &roll, Session: session}, nil
}

// RollSkill makes a d20 test with the skill's attribute plus its training bonus
func (o *orchestrator) RollSkill(ctx context.Context, input *RollSkillInput) (*RollSkillOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("character_id", input.CharacterID, vb)
	errors.ValidateRequired("skill", input.Skill, vb)
	var override paranormal.Attribute
	if input.Attribute != "" {
		parsed, ok := paranormal.ParseAttribute(input.Attribute)
		if !ok {
			vb.Fieldf("attribute", "unknown attribute %q", input.Attribute)
		}
		override = parsed
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	char, err := o.character(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	name, attr, err := o.skill(ctx, input.Skill)
	if err != nil {
		return nil, err
	}
	if override != "" {
		attr = override
	}

	level := training(char, name)
	test, err := o.checks.SkillTest(char.Attributes.Get(attr), level, input.Bonus)
	if err != nil {
		return nil, err
	}

	roll := o.testRoll(dicesession.RollKindSkill, test, name)
	session, err := o.record(ctx, char.ID, input.Context, roll)
	if err != nil {
		return nil, err
	}

	return &RollSkillOutput{
		Test:      test,
		Skill:     name,
		Attribute: attr,
		Level:     level,
		Roll:      &roll,
		Session:   session,
	}, nil
}

// RollAttack attacks with a carried weapon, or a catalog weapon when the
// character carries nothing by that name, and rolls damage when the weapon's
// formula is rollable
func (o *orchestrator) RollAttack(ctx context.Context, input *RollAttackInput) (*RollAttackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("character_id", input.CharacterID, vb)
	errors.ValidateRequired("weapon", input.Weapon, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	char, err := o.character(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	weaponName, stats, mods, err := o.weapon(ctx, char, input.Weapon)
	if err != nil {
		return nil, err
	}

	skillName := stats.Skill
	if skillName == "" {
		skillName = DefaultAttackSkill
	}
	attr := stats.Attribute
	if resolved, skillAttr, err := o.skill(ctx, skillName); err == nil {
		skillName = resolved
		if attr == "" {
			attr = skillAttr
		}
	} else if !errors.IsNotFound(err) || attr == "" {
		return nil, err
	}

	result, err := o.checks.Attack(check.AttackInput{
		AttributeValue: char.Attributes.Get(attr),
		Training:       training(char, skillName),
		Weapon:         stats,
		Modifications:  mods,
		ExtraBonus:     input.Bonus,
	})
	if err != nil {
		return nil, err
	}

	rolls := []dicesession.DiceRoll{o.testRoll(dicesession.RollKindAttack, result.Test, weaponName)}
	if result.Damage != nil {
		rolls = append(rolls, o.outcomeRoll(dicesession.RollKindDamage, *result.Damage, weaponName))
	}
	session, err := o.record(ctx, char.ID, input.Context, rolls...)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "attack rolled",
		"character_id", char.ID,
		"weapon", weaponName,
		"total", result.Test.Total,
		"is_critical", result.Test.IsCritical,
		"in_threat_range", result.InThreatRange,
		"damage_rolled", result.Damage != nil,
	)

	return &RollAttackOutput{
		Attack:  result,
		Weapon:  weaponName,
		Skill:   skillName,
		Rolls:   rolls,
		Session: session,
	}, nil
}

// weapon resolves the stats and modifications an attack uses
func (o *orchestrator) weapon(
	ctx context.Context,
	char *paranormal.Character,
	name string,
) (string, paranormal.WeaponStats, []paranormal.Modification, error) {
	var carried *paranormal.InventoryItem
	for i := range char.Inventory {
		if strings.EqualFold(strings.TrimSpace(char.Inventory[i].Name), strings.TrimSpace(name)) {
			carried = &char.Inventory[i]
			break
		}
	}
	if carried != nil && carried.Weapon != nil {
		return carried.Name, *carried.Weapon, carried.Modifications, nil
	}

	got, err := o.catalogRepo.Get(ctx, catalogrepo.GetInput{Kind: paranormal.KindWeapons, Name: name})
	if err != nil {
		return "", paranormal.WeaponStats{}, nil, errors.Wrapf(err, "failed to find weapon %s", name)
	}
	def, ok := got.Entry.(*paranormal.Weapon)
	if !ok {
		return "", paranormal.WeaponStats{}, nil, errors.Internalf("unexpected weapon entry %T", got.Entry)
	}

	// A carried item without stats still contributes its modifications
	var mods []paranormal.Modification
	if carried != nil {
		mods = carried.Modifications
	}
	return def.Name, *def.ItemStats(), mods, nil
}

// skill resolves a skill's display name and attribute from the catalog
func (o *orchestrator) skill(ctx context.Context, name string) (string, paranormal.Attribute, error) {
	got, err := o.catalogRepo.Get(ctx, catalogrepo.GetInput{Kind: paranormal.KindSkills, Name: name})
	if err != nil {
		return "", "", errors.Wrapf(err, "failed to find skill %s", name)
	}
	def, ok := got.Entry.(*paranormal.Skill)
	if !ok {
		return "", "", errors.Internalf("unexpected skill entry %T", got.Entry)
	}
	return def.Name, def.Attribute, nil
}

// training finds the skill on the sheet regardless of how its key was cased
func training(char *paranormal.Character, skill string) paranormal.TrainingLevel {
	if level, ok := char.Skills[skill]; ok {
		return level
	}
	for name, level := range char.Skills {
		if strings.EqualFold(name, skill) {
			return level
		}
	}
	return paranormal.Numeric(0)
}

func (o *orchestrator) character(ctx context.Context, id string) (*paranormal.Character, error) {
	got, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: id})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get character")
	}
	return got.Character, nil
}

func (o *orchestrator) outcomeRoll(kind dicesession.RollKind, outcome dice.RollOutcome, description string) dicesession.DiceRoll {
	return dicesession.DiceRoll{
		RollID:      o.idGen.Generate(),
		Kind:        kind,
		Notation:    outcome.Notation,
		Results:     append([]int(nil), outcome.Results...),
		Modifier:    outcome.Modifier,
		Total:       outcome.Total,
		Description: description,
		RolledAt:    o.clock.Now(),
	}
}

func (o *orchestrator) testRoll(kind dicesession.RollKind, test check.AttributeTestResult, description string) dicesession.DiceRoll {
	modifier := test.AttributeValue + test.Bonus
	return dicesession.DiceRoll{
		RollID:      o.idGen.Generate(),
		Kind:        kind,
		Notation:    dice.NewRollRequest(1, check.TestDie, modifier).String(),
		Results:     []int{test.Die},
		Modifier:    modifier,
		Total:       test.Total,
		Description: description,
		IsCritical:  test.IsCritical,
		IsFumble:    test.IsFumble,
		RolledAt:    o.clock.Now(),
	}
}

func (o *orchestrator) record(
	ctx context.Context,
	entityID, rollContext string,
	rolls ...dicesession.DiceRoll,
) (*dicesession.DiceSession, error) {
	appended, err := o.diceSessionRepo.Append(ctx, dicesession.AppendInput{
		EntityID: entityID,
		Context:  contextOrDefault(rollContext),
		Rolls:    rolls,
		TTL:      o.ttl,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to record roll")
	}
	return appended.Session, nil
}

// GetRollSession retrieves an existing dice roll session
func (o *orchestrator) GetRollSession(ctx context.Context, input *GetRollSessionInput) (*GetRollSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.EntityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}

	got, err := o.diceSessionRepo.Get(ctx, dicesession.GetInput{
		EntityID: input.EntityID,
		Context:  contextOrDefault(input.Context),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get dice session")
	}

	return &GetRollSessionOutput{Session: got.Session}, nil
}

// ClearRollSession removes a dice roll session
func (o *orchestrator) ClearRollSession(ctx context.Context, input *ClearRollSessionInput) (*ClearRollSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.EntityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}

	deleted, err := o.diceSessionRepo.Delete(ctx, dicesession.DeleteInput{
		EntityID: input.EntityID,
		Context:  contextOrDefault(input.Context),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete dice session")
	}

	slog.InfoContext(ctx, "dice session cleared",
		"entity_id", input.EntityID,
		"context", contextOrDefault(input.Context),
		"rolls_deleted", deleted.RollsDeleted,
	)

	return &ClearRollSessionOutput{RollsDeleted: deleted.RollsDeleted}, nil
}
