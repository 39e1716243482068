package character_test

import (
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/paranormal-api/internal/entities/paranormal"
	"github.com/KirkDiggler/paranormal-api/internal/errors"
	catalogrepo "github.com/KirkDiggler/paranormal-api/internal/repositories/catalog"
	charactersvc "github.com/KirkDiggler/paranormal-api/internal/services/character"
)

func (s *OrchestratorTestSuite) TestSetAttribute_RecomputesDerivedStats() {
	stored := s.storedAgent()
	s.expectMutate(stored)

	output, err := s.orchestrator.SetAttribute(s.ctx, &charactersvc.SetAttributeInput{
		CharacterID: "char-1",
		Attribute:   "agi",
		Value:       7,
	})
	s.Require().NoError(err)
	s.Equal(7, output.Character.Attributes[paranormal.Agility])
	s.Equal(17, output.Character.Defense)
	s.Equal(16, output.Character.Movement)
	// Unbounded after creation, current pools untouched
	s.Equal(15, output.Character.Health.Current)
}

func (s *OrchestratorTestSuite) TestSetAttribute_LoweringVigorClampsHealth() {
	stored := s.storedAgent()
	stored.Health = paranormal.Full(22)
	s.expectMutate(stored)

	output, err := s.orchestrator.SetAttribute(s.ctx, &charactersvc.SetAttributeInput{
		CharacterID: "char-1",
		Attribute:   "VIG",
		Value:       0,
	})
	s.Require().NoError(err)
	s.Equal(paranormal.Full(20), output.Character.Health)
}

func (s *OrchestratorTestSuite) TestSetAttribute_Invalid() {
	_, err := s.orchestrator.SetAttribute(s.ctx, &charactersvc.SetAttributeInput{
		CharacterID: "char-1",
		Attribute:   "SORTE",
		Value:       -1,
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestChangeArchetype() {
	stored := s.storedAgent()
	stored.Health = paranormal.Full(22)
	s.expectMutate(stored)

	output, err := s.orchestrator.ChangeArchetype(s.ctx, &charactersvc.ChangeArchetypeInput{
		CharacterID: "char-1",
		Archetype:   "occultist",
	})
	s.Require().NoError(err)
	s.Equal(paranormal.Occultist, output.Character.Archetype)
	s.Equal(paranormal.Full(14), output.Character.Health)
	s.Equal(paranormal.Pool{Current: 12, Max: 20}, output.Character.Sanity)
	s.Equal(paranormal.Pool{Current: 1, Max: 6}, output.Character.Effort)
}

func (s *OrchestratorTestSuite) TestChangeArchetype_Unknown() {
	_, err := s.orchestrator.ChangeArchetype(s.ctx, &charactersvc.ChangeArchetypeInput{
		CharacterID: "char-1",
		Archetype:   "Bardo",
	})
	s.Require().Error(err)
	s.True(errors.IsUnknownArchetype(err))
}

func (s *OrchestratorTestSuite) TestAdjustPool() {
	testCases := []struct {
		name     string
		pool     string
		delta    int
		expected paranormal.Pool
	}{
		{name: "damage", pool: "health", delta: -5, expected: paranormal.Pool{Current: 10, Max: 22}},
		{name: "damage past zero", pool: "health", delta: -40, expected: paranormal.Pool{Current: 0, Max: 22}},
		{name: "healing past max", pool: "HEALTH", delta: 30, expected: paranormal.Full(22)},
		{name: "spend effort", pool: "effort", delta: -1, expected: paranormal.Pool{Current: 0, Max: 4}},
		{name: "sanity", pool: "sanity", delta: -3, expected: paranormal.Pool{Current: 9, Max: 12}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.expectMutate(s.storedAgent())

			output, err := s.orchestrator.AdjustPool(s.ctx, &charactersvc.AdjustPoolInput{
				CharacterID: "char-1",
				Pool:        tc.pool,
				Delta:       tc.delta,
			})
			s.Require().NoError(err)
			s.Equal(tc.expected, output.Pool)
		})
	}
}

func (s *OrchestratorTestSuite) TestAdjustPool_UnknownPool() {
	_, err := s.orchestrator.AdjustPool(s.ctx, &charactersvc.AdjustPoolInput{
		CharacterID: "char-1",
		Pool:        "mana",
		Delta:       1,
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestAdjustPool_NotFound() {
	s.mockCharRepo.EXPECT().
		Mutate(s.ctx, gomock.Any()).
		Return(nil, errors.NotFound("character not found"))

	_, err := s.orchestrator.AdjustPool(s.ctx, &charactersvc.AdjustPoolInput{
		CharacterID: "missing",
		Pool:        "health",
		Delta:       -1,
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) expectSkill(name string) {
	s.mockCatalog.EXPECT().
		Get(s.ctx, catalogrepo.GetInput{Kind: paranormal.KindSkills, Name: name}).
		Return(&catalogrepo.GetOutput{Entry: &paranormal.Skill{Name: name, Attribute: paranormal.Agility}}, nil)
}

func (s *OrchestratorTestSuite) TestTrainSkill_Up() {
	s.expectSkill("Luta")
	s.expectMutate(s.storedAgent())

	output, err := s.orchestrator.TrainSkill(s.ctx, &charactersvc.TrainSkillInput{
		CharacterID: "char-1",
		Skill:       "Luta",
		Direction:   charactersvc.TrainUp,
	})
	s.Require().NoError(err)
	s.Equal(paranormal.Numeric(2), output.Level)
	s.Equal(paranormal.Numeric(2), output.Character.Skills["Luta"])
}

func (s *OrchestratorTestSuite) TestTrainSkill_NewSkillFromCatalog() {
	s.expectSkill("Furtividade")
	s.expectMutate(s.storedAgent())

	output, err := s.orchestrator.TrainSkill(s.ctx, &charactersvc.TrainSkillInput{
		CharacterID: "char-1",
		Skill:       "Furtividade",
		Direction:   charactersvc.TrainUp,
	})
	s.Require().NoError(err)
	s.Equal(1, output.Character.Skills["Furtividade"].Level())
}

func (s *OrchestratorTestSuite) TestTrainSkill_LegacyTierMovesToNumericScale() {
	s.expectSkill("reflexos")
	s.expectMutate(s.storedAgent())

	output, err := s.orchestrator.TrainSkill(s.ctx, &charactersvc.TrainSkillInput{
		CharacterID: "char-1",
		Skill:       "reflexos",
		Direction:   charactersvc.TrainDown,
	})
	s.Require().NoError(err)
	s.Equal(paranormal.Numeric(1), output.Character.Skills["Reflexos"])
	s.False(output.Character.Skills["Reflexos"].IsLegacy())
}

func (s *OrchestratorTestSuite) TestTrainSkill_LoweredToZeroIsDropped() {
	s.expectSkill("Luta")
	s.expectMutate(s.storedAgent())

	output, err := s.orchestrator.TrainSkill(s.ctx, &charactersvc.TrainSkillInput{
		CharacterID: "char-1",
		Skill:       "Luta",
		Direction:   charactersvc.TrainDown,
	})
	s.Require().NoError(err)
	s.NotContains(output.Character.Skills, "Luta")
}

func (s *OrchestratorTestSuite) TestTrainSkill_Limits() {
	s.Run("at maximum", func() {
		stored := s.storedAgent()
		stored.Skills["Luta"] = paranormal.Numeric(paranormal.MaxTrainingLevel)
		s.expectSkill("Luta")
		s.expectMutate(stored)

		_, err := s.orchestrator.TrainSkill(s.ctx, &charactersvc.TrainSkillInput{
			CharacterID: "char-1",
			Skill:       "Luta",
			Direction:   charactersvc.TrainUp,
		})
		s.Require().Error(err)
		s.True(errors.IsFailedPrecondition(err))
	})

	s.Run("untrained", func() {
		s.expectSkill("Crime")
		s.expectMutate(s.storedAgent())

		_, err := s.orchestrator.TrainSkill(s.ctx, &charactersvc.TrainSkillInput{
			CharacterID: "char-1",
			Skill:       "Crime",
			Direction:   charactersvc.TrainDown,
		})
		s.Require().Error(err)
		s.True(errors.IsFailedPrecondition(err))
	})
}

func (s *OrchestratorTestSuite) TestTrainSkill_UnknownSkill() {
	s.mockCatalog.EXPECT().
		Get(s.ctx, catalogrepo.GetInput{Kind: paranormal.KindSkills, Name: "Voar"}).
		Return(nil, errors.NotFound("entry not found"))
	s.expectMutate(s.storedAgent())

	_, err := s.orchestrator.TrainSkill(s.ctx, &charactersvc.TrainSkillInput{
		CharacterID: "char-1",
		Skill:       "Voar",
		Direction:   charactersvc.TrainUp,
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestTrainSkill_BadDirection() {
	_, err := s.orchestrator.TrainSkill(s.ctx, &charactersvc.TrainSkillInput{
		CharacterID: "char-1",
		Skill:       "Luta",
		Direction:   "sideways",
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}
