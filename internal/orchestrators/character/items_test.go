package character_test

import (
	"github.com/KirkDiggler/paranormal-api/internal/engine/inventory"
	"github.com/KirkDiggler/paranormal-api/internal/entities/paranormal"
	"github.com/KirkDiggler/paranormal-api/internal/errors"
	catalogrepo "github.com/KirkDiggler/paranormal-api/internal/repositories/catalog"
	charactersvc "github.com/KirkDiggler/paranormal-api/internal/services/character"
)

func (s *OrchestratorTestSuite) packedAgent() *paranormal.Character {
	char := s.storedAgent()
	char.Inventory = []paranormal.InventoryItem{
		{Name: "Lanterna", SpaceCost: 1, Quantity: 1},
		{Name: "Faca", SpaceCost: 1, Quantity: 1, Weapon: &paranormal.WeaponStats{Damage: "1d4", Threat: 19}},
		{Name: "Balas curtas", SpaceCost: 1, Quantity: 2},
	}
	return char
}

func (s *OrchestratorTestSuite) TestAddItem_Freeform() {
	s.expectMutate(s.packedAgent())

	output, err := s.orchestrator.AddItem(s.ctx, &charactersvc.AddItemInput{
		CharacterID: "char-1",
		Item:        paranormal.InventoryItem{Name: "Corda", SpaceCost: 2},
	})
	s.Require().NoError(err)
	s.Require().Len(output.Character.Inventory, 4)
	s.Equal(1, output.Character.Inventory[3].Quantity)
	s.Equal(6, inventory.TotalSpace(output.Character.Inventory))
}

func (s *OrchestratorTestSuite) TestAddItem_FromCatalogWeapon() {
	s.mockCatalog.EXPECT().
		Get(s.ctx, catalogrepo.GetInput{Kind: paranormal.KindWeapons, Name: "revólver"}).
		Return(&catalogrepo.GetOutput{Entry: &paranormal.Weapon{
			Name:        "Revólver",
			WeaponStats: paranormal.WeaponStats{Damage: "2d6", Threat: 19, Multiplier: 3, Skill: "Pontaria"},
			Space:       1,
		}}, nil)
	s.expectMutate(s.packedAgent())

	output, err := s.orchestrator.AddItem(s.ctx, &charactersvc.AddItemInput{
		CharacterID: "char-1",
		Item:        paranormal.InventoryItem{Name: "revólver", Notes: "herdado"},
		FromCatalog: paranormal.KindWeapons,
	})
	s.Require().NoError(err)

	added := output.Character.Inventory[3]
	s.Equal("Revólver", added.Name)
	s.Equal("weapons", added.Category)
	s.Equal(1, added.SpaceCost)
	s.Equal("herdado", added.Notes)
	s.Require().NotNil(added.Weapon)
	s.Equal("2d6", added.Weapon.Damage)
	s.Equal(19, added.Weapon.Threat)
}

func (s *OrchestratorTestSuite) TestAddItem_CapacityExceeded() {
	s.expectMutate(s.packedAgent())

	_, err := s.orchestrator.AddItem(s.ctx, &charactersvc.AddItemInput{
		CharacterID: "char-1",
		Item:        paranormal.InventoryItem{Name: "Baú", SpaceCost: 7, Quantity: 1},
	})
	s.Require().Error(err)
	s.True(errors.IsCapacityExceeded(err))
	meta := errors.GetMeta(err)
	s.Equal(10, meta["capacity"])
	s.Equal(11, meta["required"])
}

func (s *OrchestratorTestSuite) TestAddItem_BadCatalogKind() {
	_, err := s.orchestrator.AddItem(s.ctx, &charactersvc.AddItemInput{
		CharacterID: "char-1",
		Item:        paranormal.InventoryItem{Name: "Ocultismo"},
		FromCatalog: paranormal.KindSkills,
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) expectCompacta() {
	s.mockCatalog.EXPECT().
		Get(s.ctx, catalogrepo.GetInput{Kind: paranormal.KindModifications, Name: "Compacta"}).
		Return(&catalogrepo.GetOutput{Entry: &paranormal.ModificationDef{
			Name:    "Compacta",
			Effects: []paranormal.Effect{{Kind: paranormal.EffectSpace, Value: 1}},
		}}, nil)
}

func (s *OrchestratorTestSuite) TestAddItem_ModificationEffectsComeFromCatalog() {
	forged := []paranormal.Modification{{
		Name: "Compacta",
		Effects: []paranormal.Effect{
			{Kind: paranormal.EffectSpace, Value: 1000},
			{Kind: paranormal.EffectDamage, Value: 50},
		},
	}}

	s.Run("free form", func() {
		s.expectCompacta()
		s.expectMutate(s.packedAgent())

		_, err := s.orchestrator.AddItem(s.ctx, &charactersvc.AddItemInput{
			CharacterID: "char-1",
			Item:        paranormal.InventoryItem{Name: "Baú", SpaceCost: 8, Quantity: 1, Modifications: forged},
		})
		s.Require().Error(err)
		s.True(errors.IsCapacityExceeded(err))
		s.Equal(11, errors.GetMeta(err)["required"])
	})

	s.Run("from catalog", func() {
		s.mockCatalog.EXPECT().
			Get(s.ctx, catalogrepo.GetInput{Kind: paranormal.KindWeapons, Name: "Faca"}).
			Return(&catalogrepo.GetOutput{Entry: &paranormal.Weapon{
				Name:        "Faca",
				WeaponStats: paranormal.WeaponStats{Damage: "1d4", Threat: 19},
				Space:       1,
			}}, nil)
		s.expectCompacta()
		s.expectMutate(s.packedAgent())

		output, err := s.orchestrator.AddItem(s.ctx, &charactersvc.AddItemInput{
			CharacterID: "char-1",
			Item:        paranormal.InventoryItem{Name: "Faca", Modifications: forged},
			FromCatalog: paranormal.KindWeapons,
		})
		s.Require().NoError(err)

		added := output.Character.Inventory[3]
		s.Require().Len(added.Modifications, 1)
		s.Equal(1, added.EffectTotal(paranormal.EffectSpace))
		s.Equal(0, added.EffectTotal(paranormal.EffectDamage))
	})
}

func (s *OrchestratorTestSuite) TestAddItem_UnknownModificationRejected() {
	s.mockCatalog.EXPECT().
		Get(s.ctx, catalogrepo.GetInput{Kind: paranormal.KindModifications, Name: "Leve como pluma"}).
		Return(nil, errors.NotFound("entry not found"))

	_, err := s.orchestrator.AddItem(s.ctx, &charactersvc.AddItemInput{
		CharacterID: "char-1",
		Item: paranormal.InventoryItem{
			Name: "Baú", SpaceCost: 7, Quantity: 1,
			Modifications: []paranormal.Modification{{
				Name:    "Leve como pluma",
				Effects: []paranormal.Effect{{Kind: paranormal.EffectSpace, Value: 1000}},
			}},
		},
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	s.expectCompacta()
	_, err = s.orchestrator.AddItem(s.ctx, &charactersvc.AddItemInput{
		CharacterID: "char-1",
		Item: paranormal.InventoryItem{
			Name: "Baú", SpaceCost: 7, Quantity: 1,
			Modifications: []paranormal.Modification{{Name: "Compacta"}, {Name: "Compacta"}},
		},
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestIncrementItem() {
	s.Run("grow", func() {
		s.expectMutate(s.packedAgent())

		output, err := s.orchestrator.IncrementItem(s.ctx, &charactersvc.IncrementItemInput{
			CharacterID: "char-1",
			Index:       2,
			Delta:       3,
		})
		s.Require().NoError(err)
		s.Equal(5, output.Character.Inventory[2].Quantity)
	})

	s.Run("to zero removes", func() {
		s.expectMutate(s.packedAgent())

		output, err := s.orchestrator.IncrementItem(s.ctx, &charactersvc.IncrementItemInput{
			CharacterID: "char-1",
			Index:       2,
			Delta:       -2,
		})
		s.Require().NoError(err)
		s.Len(output.Character.Inventory, 2)
	})

	s.Run("out of range", func() {
		s.expectMutate(s.packedAgent())

		_, err := s.orchestrator.IncrementItem(s.ctx, &charactersvc.IncrementItemInput{
			CharacterID: "char-1",
			Index:       9,
			Delta:       1,
		})
		s.Require().Error(err)
		s.Equal(errors.CodeOutOfRange, errors.GetCode(err))
	})

	s.Run("over capacity", func() {
		s.expectMutate(s.packedAgent())

		_, err := s.orchestrator.IncrementItem(s.ctx, &charactersvc.IncrementItemInput{
			CharacterID: "char-1",
			Index:       0,
			Delta:       7,
		})
		s.Require().Error(err)
		s.True(errors.IsCapacityExceeded(err))
	})
}

func (s *OrchestratorTestSuite) TestModifyItem() {
	s.mockCatalog.EXPECT().
		Get(s.ctx, catalogrepo.GetInput{Kind: paranormal.KindModifications, Name: "Perigosa"}).
		Return(&catalogrepo.GetOutput{Entry: &paranormal.ModificationDef{
			Name:    "Perigosa",
			Effects: []paranormal.Effect{{Kind: paranormal.EffectThreat, Value: 2}},
		}}, nil)
	s.expectMutate(s.packedAgent())

	output, err := s.orchestrator.ModifyItem(s.ctx, &charactersvc.ModifyItemInput{
		CharacterID:      "char-1",
		Index:            1,
		ModificationName: "Perigosa",
	})
	s.Require().NoError(err)

	knife := output.Character.Inventory[1]
	s.Require().Len(knife.Modifications, 1)
	s.Equal(2, knife.EffectTotal(paranormal.EffectThreat))
}

func (s *OrchestratorTestSuite) TestModifyItem_UnknownModification() {
	s.mockCatalog.EXPECT().
		Get(s.ctx, catalogrepo.GetInput{Kind: paranormal.KindModifications, Name: "Dourada"}).
		Return(nil, errors.NotFound("entry not found"))

	_, err := s.orchestrator.ModifyItem(s.ctx, &charactersvc.ModifyItemInput{
		CharacterID:      "char-1",
		Index:            1,
		ModificationName: "Dourada",
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestRemoveItem() {
	s.expectMutate(s.packedAgent())

	output, err := s.orchestrator.RemoveItem(s.ctx, &charactersvc.RemoveItemInput{
		CharacterID: "char-1",
		Index:       0,
	})
	s.Require().NoError(err)
	s.Require().Len(output.Character.Inventory, 2)
	s.Equal("Faca", output.Character.Inventory[0].Name)
}
