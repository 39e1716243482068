package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/paranormal-api/internal/entities/paranormal"
	"github.com/KirkDiggler/paranormal-api/internal/errors"
	"github.com/KirkDiggler/paranormal-api/internal/orchestrators/catalog"
	catalogrepo "github.com/KirkDiggler/paranormal-api/internal/repositories/catalog"
	catalogrepomock "github.com/KirkDiggler/paranormal-api/internal/repositories/catalog/mock"
)

const seedDir = "../../../data/catalog"

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *catalogrepomock.MockRepository
	orchestrator catalog.Service
	ctx          context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = catalogrepomock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	orchestrator, err := catalog.NewOrchestrator(&catalog.Config{CatalogRepo: s.mockRepo})
	s.Require().NoError(err)
	s.orchestrator = orchestrator
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) TestListEntries() {
	entries := []paranormal.CatalogEntry{
		&paranormal.Skill{Name: "Luta", Attribute: paranormal.Strength},
		&paranormal.Skill{Name: "Pontaria", Attribute: paranormal.Agility},
	}
	s.mockRepo.EXPECT().
		List(s.ctx, catalogrepo.ListInput{Kind: paranormal.KindSkills}).
		Return(&catalogrepo.ListOutput{Entries: entries}, nil)

	output, err := s.orchestrator.ListEntries(s.ctx, &catalog.ListEntriesInput{Kind: "Skills"})
	s.Require().NoError(err)
	s.Equal(paranormal.KindSkills, output.Kind)
	s.Equal(entries, output.Entries)
}

func (s *OrchestratorTestSuite) TestListEntries_UnknownKind() {
	_, err := s.orchestrator.ListEntries(s.ctx, &catalog.ListEntriesInput{Kind: "spells"})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGetEntry_NotFound() {
	s.mockRepo.EXPECT().
		Get(s.ctx, catalogrepo.GetInput{Kind: paranormal.KindRituals, Name: "Decadência"}).
		Return(nil, errors.NotFound("entry not found"))

	_, err := s.orchestrator.GetEntry(s.ctx, &catalog.GetEntryInput{Kind: "rituals", Name: "Decadência"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestPutEntry_Weapon() {
	weapon := &paranormal.Weapon{
		Name:        "Machadinha",
		WeaponStats: paranormal.WeaponStats{Damage: "1d6", Multiplier: 3, Skill: "Luta"},
		Space:       1,
	}
	s.mockRepo.EXPECT().
		Get(s.ctx, catalogrepo.GetInput{Kind: paranormal.KindSkills, Name: "Luta"}).
		Return(&catalogrepo.GetOutput{Entry: &paranormal.Skill{Name: "Luta", Attribute: paranormal.Strength}}, nil)
	s.mockRepo.EXPECT().
		Put(s.ctx, catalogrepo.PutInput{Kind: paranormal.KindWeapons, Entry: weapon}).
		Return(&catalogrepo.PutOutput{Entry: weapon}, nil)

	output, err := s.orchestrator.PutEntry(s.ctx, &catalog.PutEntryInput{Kind: "weapons", Entry: weapon})
	s.Require().NoError(err)
	s.Equal(weapon, output.Entry)
}

func (s *OrchestratorTestSuite) TestPutEntry_WeaponSkillMissing() {
	weapon := &paranormal.Weapon{
		Name:        "Arco",
		WeaponStats: paranormal.WeaponStats{Damage: "1d6", Skill: "Arquearia"},
	}
	s.mockRepo.EXPECT().
		Get(s.ctx, catalogrepo.GetInput{Kind: paranormal.KindSkills, Name: "Arquearia"}).
		Return(nil, errors.NotFound("entry not found"))

	_, err := s.orchestrator.PutEntry(s.ctx, &catalog.PutEntryInput{Kind: "weapons", Entry: weapon})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestPutEntry_Invalid() {
	testCases := []struct {
		name  string
		kind  string
		entry paranormal.CatalogEntry
	}{
		{
			name:  "unrollable damage",
			kind:  "weapons",
			entry: &paranormal.Weapon{Name: "Rede", WeaponStats: paranormal.WeaponStats{Damage: "especial"}},
		},
		{
			name:  "skill with bad attribute",
			kind:  "skills",
			entry: &paranormal.Skill{Name: "Sorte", Attribute: "LCK"},
		},
		{
			name:  "unknown effect kind",
			kind:  "modifications",
			entry: &paranormal.ModificationDef{Name: "Brilhante", Effects: []paranormal.Effect{{Kind: "shine", Value: 1}}},
		},
		{
			name:  "nil entry",
			kind:  "skills",
			entry: (*paranormal.Skill)(nil),
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.orchestrator.PutEntry(s.ctx, &catalog.PutEntryInput{Kind: tc.kind, Entry: tc.entry})
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *OrchestratorTestSuite) TestDeleteEntry() {
	s.mockRepo.EXPECT().
		Delete(s.ctx, catalogrepo.DeleteInput{Kind: paranormal.KindAmmunition, Name: "Balas curtas"}).
		Return(&catalogrepo.DeleteOutput{}, nil)

	_, err := s.orchestrator.DeleteEntry(s.ctx, &catalog.DeleteEntryInput{Kind: "ammunition", Name: "Balas curtas"})
	s.NoError(err)
}

func (s *OrchestratorTestSuite) TestSeed_FromRepositoryData() {
	s.mockRepo.EXPECT().
		Seed(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input catalogrepo.SeedInput) (*catalogrepo.SeedOutput, error) {
			s.True(input.Replace)
			counts := make(map[paranormal.CatalogKind]int, len(input.Entries))
			for kind, entries := range input.Entries {
				counts[kind] = len(entries)
			}
			return &catalogrepo.SeedOutput{Counts: counts}, nil
		})

	output, err := s.orchestrator.Seed(s.ctx, &catalog.SeedInput{Dir: seedDir, Replace: true})
	s.Require().NoError(err)
	s.Len(output.Counts, len(paranormal.CatalogKinds))
	s.Equal(28, output.Counts[paranormal.KindSkills])
}

func (s *OrchestratorTestSuite) TestSeed_MissingDirectory() {
	_, err := s.orchestrator.Seed(s.ctx, &catalog.SeedInput{Dir: "does/not/exist"})
	s.Require().Error(err)
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
