package dice_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	enginedice "github.com/KirkDiggler/paranormal-api/internal/engine/dice"
	"github.com/KirkDiggler/paranormal-api/internal/entities/paranormal"
	"github.com/KirkDiggler/paranormal-api/internal/errors"
	"github.com/KirkDiggler/paranormal-api/internal/orchestrators/dice"
	"github.com/KirkDiggler/paranormal-api/internal/pkg/clock"
	"github.com/KirkDiggler/paranormal-api/internal/pkg/idgen"
	catalogrepo "github.com/KirkDiggler/paranormal-api/internal/repositories/catalog"
	catalogmock "github.com/KirkDiggler/paranormal-api/internal/repositories/catalog/mock"
	characterrepo "github.com/KirkDiggler/paranormal-api/internal/repositories/character"
	characterrepomock "github.com/KirkDiggler/paranormal-api/internal/repositories/character/mock"
	dicesession "github.com/KirkDiggler/paranormal-api/internal/repositories/dice_session"
	dicesessionmock "github.com/KirkDiggler/paranormal-api/internal/repositories/dice_session/mock"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockSessionRepo *dicesessionmock.MockRepository
	mockCharRepo    *characterrepomock.MockRepository
	mockCatalog     *catalogmock.MockRepository
	ctx             context.Context
	now             time.Time
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockSessionRepo = dicesessionmock.NewMockRepository(s.ctrl)
	s.mockCharRepo = characterrepomock.NewMockRepository(s.ctrl)
	s.mockCatalog = catalogmock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()
	s.now = time.Date(2024, 10, 31, 22, 0, 0, 0, time.UTC)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// orchestrator builds a service whose dice land on faces, in order
func (s *OrchestratorTestSuite) orchestrator(faces ...int) dice.Service {
	svc, err := dice.NewOrchestrator(&dice.Config{
		DiceSessionRepo: s.mockSessionRepo,
		CharacterRepo:   s.mockCharRepo,
		CatalogRepo:     s.mockCatalog,
		IDGenerator:     idgen.NewSequential("roll"),
		Clock:           clock.Fixed{T: s.now},
		Evaluator:       enginedice.NewEvaluator(enginedice.NewPrimitive(enginedice.NewScriptedRoller(faces...))),
	})
	s.Require().NoError(err)
	return svc
}

// expectAppend echoes the appended rolls back as a fresh session
func (s *OrchestratorTestSuite) expectAppend(entityID, rollContext string) {
	s.mockSessionRepo.EXPECT().
		Append(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input dicesession.AppendInput) (*dicesession.AppendOutput, error) {
			s.Equal(entityID, input.EntityID)
			s.Equal(rollContext, input.Context)
			return &dicesession.AppendOutput{Session: &dicesession.DiceSession{
				EntityID:  input.EntityID,
				Context:   input.Context,
				Rolls:     input.Rolls,
				CreatedAt: s.now,
				ExpiresAt: s.now.Add(dicesession.DefaultTTL),
			}}, nil
		})
}

func (s *OrchestratorTestSuite) expectCharacter(char *paranormal.Character) {
	s.mockCharRepo.EXPECT().
		Get(s.ctx, characterrepo.GetInput{ID: char.ID}).
		Return(&characterrepo.GetOutput{Character: char}, nil)
}

func (s *OrchestratorTestSuite) expectSkill(name string, skill *paranormal.Skill) {
	s.mockCatalog.EXPECT().
		Get(s.ctx, catalogrepo.GetInput{Kind: paranormal.KindSkills, Name: name}).
		Return(&catalogrepo.GetOutput{Entry: skill}, nil)
}

func (s *OrchestratorTestSuite) agent() *paranormal.Character {
	return &paranormal.Character{
		ID:         "char-1",
		PlayerID:   "player-1",
		Name:       "Arthur Cervero",
		Archetype:  paranormal.Combatant,
		Attributes: paranormal.NewAttributeSet(3, 2, 1, 2, 2),
		Skills: map[string]paranormal.TrainingLevel{
			"Pontaria": paranormal.Numeric(1),
			"reflexos": paranormal.Legacy(paranormal.Veteran),
		},
		Inventory: []paranormal.InventoryItem{
			{
				Name:      "Revólver",
				SpaceCost: 1,
				Quantity:  1,
				Weapon:    &paranormal.WeaponStats{Damage: "2d6", Threat: 19, Multiplier: 3, Skill: "Pontaria"},
				Modifications: []paranormal.Modification{
					{Name: "Certeira", Effects: []paranormal.Effect{{Kind: paranormal.EffectAttack, Value: 2}}},
					{Name: "Perigosa", Effects: []paranormal.Effect{{Kind: paranormal.EffectThreat, Value: 2}}},
				},
			},
			{Name: "Lâmina amaldiçoada", SpaceCost: 1, Quantity: 1},
		},
		Capacity: 10,
	}
}

func (s *OrchestratorTestSuite) TestNewOrchestrator_MissingDependencies() {
	_, err := dice.NewOrchestrator(&dice.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestRollDice() {
	s.expectAppend("char-1", dice.DefaultContext)

	output, err := s.orchestrator(4, 5).RollDice(s.ctx, &dice.RollDiceInput{
		EntityID:    "char-1",
		Notation:    " 2D6+3 ",
		Description: "dano",
	})
	s.Require().NoError(err)
	s.Equal("2d6+3", output.Roll.Notation)
	s.Equal([]int{4, 5}, output.Roll.Results)
	s.Equal(3, output.Roll.Modifier)
	s.Equal(12, output.Roll.Total)
	s.Equal(dicesession.RollKindNotation, output.Roll.Kind)
	s.Equal("roll-1", output.Roll.RollID)
	s.Equal(s.now, output.Roll.RolledAt)
	s.Require().Len(output.Session.Rolls, 1)
}

func (s *OrchestratorTestSuite) TestRollDice_Unparsable() {
	for _, notation := range []string{"d6", "2d6+", "1d1", "0d6", "two dice"} {
		s.Run(notation, func() {
			output, err := s.orchestrator().RollDice(s.ctx, &dice.RollDiceInput{
				EntityID: "char-1",
				Notation: notation,
			})
			s.Require().Error(err)
			s.Nil(output)
			s.True(errors.IsFormulaParseFailure(err))
		})
	}
}

func (s *OrchestratorTestSuite) TestRollCustom() {
	s.expectAppend("char-1", "combat")

	output, err := s.orchestrator(8, 1, 3).RollCustom(s.ctx, &dice.RollCustomInput{
		EntityID: "char-1",
		Context:  "combat",
		Quantity: 3,
		Sides:    8,
		Modifier: -2,
	})
	s.Require().NoError(err)
	s.Equal("3d8-2", output.Roll.Notation)
	s.Equal(10, output.Roll.Total)
}

func (s *OrchestratorTestSuite) TestRollCustom_InvalidDieSpec() {
	testCases := []struct {
		name     string
		quantity int
		sides    int
	}{
		{name: "no dice", quantity: 0, sides: 6},
		{name: "one-sided", quantity: 1, sides: 1},
		{name: "negative", quantity: -1, sides: 20},
		{name: "too many dice", quantity: 1_000_000_000, sides: 6},
		{name: "too many sides", quantity: 1, sides: 1_000_000},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.orchestrator().RollCustom(s.ctx, &dice.RollCustomInput{
				EntityID: "char-1",
				Quantity: tc.quantity,
				Sides:    tc.sides,
			})
			s.Require().Error(err)
			s.True(errors.IsInvalidDieSpec(err))
		})
	}
}

func (s *OrchestratorTestSuite) TestRollAttribute_Critical() {
	s.expectCharacter(s.agent())
	s.expectAppend("char-1", dice.DefaultContext)

	output, err := s.orchestrator(20).RollAttribute(s.ctx, &dice.RollAttributeInput{
		CharacterID: "char-1",
		Attribute:   "agi",
		Bonus:       1,
	})
	s.Require().NoError(err)
	s.Equal(23, output.Test.Total)
	s.True(output.Test.IsCritical)
	s.False(output.Test.IsFumble)
	s.Equal("1d20+3", output.Roll.Notation)
	s.Equal([]int{20}, output.Roll.Results)
	s.True(output.Roll.IsCritical)
	s.Equal(dicesession.RollKindAttribute, output.Roll.Kind)
}

func (s *OrchestratorTestSuite) TestRollAttribute_UnknownAttribute() {
	_, err := s.orchestrator().RollAttribute(s.ctx, &dice.RollAttributeInput{
		CharacterID: "char-1",
		Attribute:   "SORTE",
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestRollAttribute_CharacterNotFound() {
	s.mockCharRepo.EXPECT().
		Get(s.ctx, characterrepo.GetInput{ID: "missing"}).
		Return(nil, errors.NotFound("character not found"))

	_, err := s.orchestrator().RollAttribute(s.ctx, &dice.RollAttributeInput{
		CharacterID: "missing",
		Attribute:   "FOR",
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestRollSkill_LegacyTierFumble() {
	s.expectCharacter(s.agent())
	s.expectSkill("Reflexos", &paranormal.Skill{Name: "Reflexos", Attribute: paranormal.Agility})
	s.expectAppend("char-1", dice.DefaultContext)

	output, err := s.orchestrator(1).RollSkill(s.ctx, &dice.RollSkillInput{
		CharacterID: "char-1",
		Skill:       "Reflexos",
	})
	s.Require().NoError(err)
	s.Equal("Reflexos", output.Skill)
	s.Equal(paranormal.Agility, output.Attribute)
	s.Equal(paranormal.Legacy(paranormal.Veteran), output.Level)
	// 1 + AGI 2 + veteran 10
	s.Equal(13, output.Test.Total)
	s.True(output.Test.IsFumble)
	s.Equal(dicesession.RollKindSkill, output.Roll.Kind)
}

func (s *OrchestratorTestSuite) TestRollSkill_AttributeOverride() {
	s.expectCharacter(s.agent())
	s.expectSkill("Pontaria", &paranormal.Skill{Name: "Pontaria", Attribute: paranormal.Agility})
	s.expectAppend("char-1", dice.DefaultContext)

	output, err := s.orchestrator(10).RollSkill(s.ctx, &dice.RollSkillInput{
		CharacterID: "char-1",
		Skill:       "Pontaria",
		Attribute:   "FOR",
	})
	s.Require().NoError(err)
	s.Equal(paranormal.Strength, output.Attribute)
	s.Equal(18, output.Test.Total)
}

func (s *OrchestratorTestSuite) TestRollSkill_UntrainedSkill() {
	s.expectCharacter(s.agent())
	s.expectSkill("Ocultismo", &paranormal.Skill{Name: "Ocultismo", Attribute: paranormal.Intellect})
	s.expectAppend("char-1", dice.DefaultContext)

	output, err := s.orchestrator(10).RollSkill(s.ctx, &dice.RollSkillInput{
		CharacterID: "char-1",
		Skill:       "Ocultismo",
	})
	s.Require().NoError(err)
	s.Equal(0, output.Test.Bonus)
	s.Equal(11, output.Test.Total)
}

func (s *OrchestratorTestSuite) TestRollAttack_CarriedWeaponWithModifications() {
	s.expectCharacter(s.agent())
	s.expectSkill("Pontaria", &paranormal.Skill{Name: "Pontaria", Attribute: paranormal.Agility})
	s.expectAppend("char-1", dice.DefaultContext)

	output, err := s.orchestrator(18, 3, 4).RollAttack(s.ctx, &dice.RollAttackInput{
		CharacterID: "char-1",
		Weapon:      "revólver",
	})
	s.Require().NoError(err)

	s.Equal("Revólver", output.Weapon)
	s.Equal("Pontaria", output.Skill)
	// trained 5 + Certeira 2
	s.Equal(7, output.Attack.AttackBonus)
	s.Equal(27, output.Attack.Test.Total)
	s.Equal(17, output.Attack.ThreatRange)
	s.True(output.Attack.InThreatRange)
	s.False(output.Attack.Test.IsCritical)
	s.Require().NotNil(output.Attack.Damage)
	s.Equal(7, output.Attack.Damage.Total)

	s.Require().Len(output.Rolls, 2)
	s.Equal(dicesession.RollKindAttack, output.Rolls[0].Kind)
	s.Equal(dicesession.RollKindDamage, output.Rolls[1].Kind)
	s.Equal("2d6", output.Rolls[1].Notation)
	s.Len(output.Session.Rolls, 2)
}

func (s *OrchestratorTestSuite) TestRollAttack_CatalogPlaceholderWeapon() {
	s.expectCharacter(s.agent())
	s.mockCatalog.EXPECT().
		Get(s.ctx, catalogrepo.GetInput{Kind: paranormal.KindWeapons, Name: "Lâmina amaldiçoada"}).
		Return(&catalogrepo.GetOutput{Entry: &paranormal.Weapon{
			Name:        "Lâmina amaldiçoada",
			WeaponStats: paranormal.WeaponStats{Damage: "varia com o ritual"},
			Placeholder: true,
		}}, nil)
	s.expectSkill(dice.DefaultAttackSkill, &paranormal.Skill{Name: "Luta", Attribute: paranormal.Strength})
	s.expectAppend("char-1", dice.DefaultContext)

	output, err := s.orchestrator(10).RollAttack(s.ctx, &dice.RollAttackInput{
		CharacterID: "char-1",
		Weapon:      "Lâmina amaldiçoada",
	})
	s.Require().NoError(err)
	s.Nil(output.Attack.Damage)
	s.Equal("varia com o ritual", output.Attack.DamageFormula)
	s.Equal(13, output.Attack.Test.Total)
	s.Len(output.Rolls, 1)
}

func (s *OrchestratorTestSuite) TestRollAttack_UnknownWeapon() {
	s.expectCharacter(s.agent())
	s.mockCatalog.EXPECT().
		Get(s.ctx, catalogrepo.GetInput{Kind: paranormal.KindWeapons, Name: "Bazuca"}).
		Return(nil, errors.NotFound("entry not found"))

	_, err := s.orchestrator().RollAttack(s.ctx, &dice.RollAttackInput{
		CharacterID: "char-1",
		Weapon:      "Bazuca",
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestGetRollSession() {
	session := &dicesession.DiceSession{EntityID: "char-1", Context: dice.DefaultContext}
	s.mockSessionRepo.EXPECT().
		Get(s.ctx, dicesession.GetInput{EntityID: "char-1", Context: dice.DefaultContext}).
		Return(&dicesession.GetOutput{Session: session}, nil)

	output, err := s.orchestrator().GetRollSession(s.ctx, &dice.GetRollSessionInput{EntityID: "char-1"})
	s.Require().NoError(err)
	s.Equal(session, output.Session)
}

func (s *OrchestratorTestSuite) TestClearRollSession() {
	s.mockSessionRepo.EXPECT().
		Delete(s.ctx, dicesession.DeleteInput{EntityID: "char-1", Context: "combat"}).
		Return(&dicesession.DeleteOutput{RollsDeleted: 4}, nil)

	output, err := s.orchestrator().ClearRollSession(s.ctx, &dice.ClearRollSessionInput{
		EntityID: "char-1",
		Context:  "combat",
	})
	s.Require().NoError(err)
	s.Equal(4, output.RollsDeleted)
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
