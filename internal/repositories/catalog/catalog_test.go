package catalog_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/paranormal-api/internal/entities/paranormal"
	"github.com/KirkDiggler/paranormal-api/internal/errors"
	"github.com/KirkDiggler/paranormal-api/internal/repositories/catalog"
	"github.com/KirkDiggler/paranormal-api/internal/testutils"
)

const seedDir = "../../../data/catalog"

type CatalogTestSuite struct {
	suite.Suite
	mr   *miniredis.Miniredis
	repo catalog.Repository
	ctx  context.Context
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (s *CatalogTestSuite) SetupTest() {
	client, mr := testutils.CreateTestRedisClient(s.T())
	s.mr = mr

	repo, err := catalog.NewRedis(&catalog.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *CatalogTestSuite) TestNewRedisRequiresClient() {
	_, err := catalog.NewRedis(&catalog.RedisConfig{})
	s.True(errors.IsInvalidArgument(err))
	_, err = catalog.NewRedis(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *CatalogTestSuite) TestPutGetListDelete() {
	faca := &paranormal.Weapon{
		Name:        "Faca",
		WeaponStats: paranormal.WeaponStats{Damage: "1d4", Threat: 19, Skill: "Luta"},
		Space:       1,
	}
	_, err := s.repo.Put(s.ctx, catalog.PutInput{Kind: paranormal.KindWeapons, Entry: faca})
	s.Require().NoError(err)
	_, err = s.repo.Put(s.ctx, catalog.PutInput{
		Kind:  paranormal.KindWeapons,
		Entry: &paranormal.Weapon{Name: "Bastão", WeaponStats: paranormal.WeaponStats{Damage: "1d6"}, Space: 1},
	})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, catalog.GetInput{Kind: paranormal.KindWeapons, Name: "FACA"})
	s.Require().NoError(err)
	s.Equal(faca, got.Entry)

	list, err := s.repo.List(s.ctx, catalog.ListInput{Kind: paranormal.KindWeapons})
	s.Require().NoError(err)
	s.Require().Len(list.Entries, 2)
	s.Equal("Bastão", list.Entries[0].EntryName())
	s.Equal("Faca", list.Entries[1].EntryName())

	_, err = s.repo.Delete(s.ctx, catalog.DeleteInput{Kind: paranormal.KindWeapons, Name: "faca"})
	s.Require().NoError(err)
	_, err = s.repo.Get(s.ctx, catalog.GetInput{Kind: paranormal.KindWeapons, Name: "faca"})
	s.True(errors.IsNotFound(err))
	_, err = s.repo.Delete(s.ctx, catalog.DeleteInput{Kind: paranormal.KindWeapons, Name: "faca"})
	s.True(errors.IsNotFound(err))
}

func (s *CatalogTestSuite) TestPutValidates() {
	_, err := s.repo.Put(s.ctx, catalog.PutInput{
		Kind:  paranormal.KindWeapons,
		Entry: &paranormal.Weapon{Name: "Quebrada", WeaponStats: paranormal.WeaponStats{Damage: "muito"}},
	})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Put(s.ctx, catalog.PutInput{
		Kind:  paranormal.KindWeapons,
		Entry: &paranormal.Skill{Name: "Luta", Attribute: paranormal.Strength},
	})
	s.True(errors.IsInvalidArgument(err), "skill stored as weapon")

	_, err = s.repo.Put(s.ctx, catalog.PutInput{
		Kind:  paranormal.KindSkills,
		Entry: &paranormal.Skill{Name: "Luta", Attribute: "XYZ"},
	})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.List(s.ctx, catalog.ListInput{Kind: "spells"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *CatalogTestSuite) TestSeedFromDataDirectory() {
	seeds, err := catalog.LoadSeeds(seedDir)
	s.Require().NoError(err)
	for _, kind := range paranormal.CatalogKinds {
		s.NotEmpty(seeds[kind], "seed file for %s", kind)
	}

	out, err := s.repo.Seed(s.ctx, catalog.SeedInput{Entries: seeds, Replace: true})
	s.Require().NoError(err)
	s.Equal(len(seeds[paranormal.KindSkills]), out.Counts[paranormal.KindSkills])

	got, err := s.repo.Get(s.ctx, catalog.GetInput{Kind: paranormal.KindSkills, Name: "Ocultismo"})
	s.Require().NoError(err)
	s.Equal(paranormal.Intellect, got.Entry.(*paranormal.Skill).Attribute)

	weapon, err := s.repo.Get(s.ctx, catalog.GetInput{Kind: paranormal.KindWeapons, Name: "Revólver"})
	s.Require().NoError(err)
	s.Equal("2d6", weapon.Entry.(*paranormal.Weapon).Damage)
	s.Equal(19, weapon.Entry.(*paranormal.Weapon).Threat)

	mod, err := s.repo.Get(s.ctx, catalog.GetInput{Kind: paranormal.KindModifications, Name: "Perigosa"})
	s.Require().NoError(err)
	s.Equal(2, mod.Entry.(*paranormal.ModificationDef).Modification().Total(paranormal.EffectThreat))
}

func (s *CatalogTestSuite) TestSeedReplaceDropsStaleEntries() {
	_, err := s.repo.Put(s.ctx, catalog.PutInput{Kind: paranormal.KindAmmunition, Entry: &paranormal.Ammunition{Name: "Velha", Space: 1}})
	s.Require().NoError(err)

	seeds := catalog.Seeds{paranormal.KindAmmunition: {&paranormal.Ammunition{Name: "Nova", Space: 1}}}

	_, err = s.repo.Seed(s.ctx, catalog.SeedInput{Entries: seeds})
	s.Require().NoError(err)
	list, err := s.repo.List(s.ctx, catalog.ListInput{Kind: paranormal.KindAmmunition})
	s.Require().NoError(err)
	s.Len(list.Entries, 2)

	_, err = s.repo.Seed(s.ctx, catalog.SeedInput{Entries: seeds, Replace: true})
	s.Require().NoError(err)
	list, err = s.repo.List(s.ctx, catalog.ListInput{Kind: paranormal.KindAmmunition})
	s.Require().NoError(err)
	s.Require().Len(list.Entries, 1)
	s.Equal("Nova", list.Entries[0].EntryName())
}

func (s *CatalogTestSuite) TestListSkipsUnreadableRows() {
	s.mr.HSet(catalog.Key(paranormal.KindEquipment), "corda", `{"name":"Corda","space":1}`, "lixo", `not json`)

	list, err := s.repo.List(s.ctx, catalog.ListInput{Kind: paranormal.KindEquipment})
	s.Require().NoError(err)
	s.Require().Len(list.Entries, 1)
	s.Equal("Corda", list.Entries[0].EntryName())
}

func TestDecodeSeedsErrors(t *testing.T) {
	cases := map[string]string{
		"not a list":       "name: Faca\n",
		"bad formula":      "- {name: Faca, damage: um monte}\n",
		"duplicate names":  "- {name: Faca, damage: 1d4}\n- {name: faca, damage: 1d4}\n",
		"wrong field type": "- {name: Faca, damage: 1d4, space: muito}\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := catalog.DecodeSeeds(paranormal.KindWeapons, []byte(doc))
			if !errors.IsInvalidArgument(err) {
				t.Fatalf("expected invalid argument, got %v", err)
			}
		})
	}
}

func TestDecodeSeedsEmpty(t *testing.T) {
	entries, err := catalog.DecodeSeeds(paranormal.KindWeapons, []byte("\n"))
	if err != nil || entries != nil {
		t.Fatalf("expected no entries, got %v %v", entries, err)
	}
}

func TestLoadSeedsMissingDir(t *testing.T) {
	if _, err := catalog.LoadSeeds("does/not/exist"); err == nil {
		t.Fatal("expected error")
	}
}
