// Package v1alpha1 handles the character and catalog grpc service interfaces
package v1alpha1

import (
	"context"

	apiv1alpha1 "github.com/KirkDiggler/paranormal-api/internal/api/v1alpha1"
	"github.com/KirkDiggler/paranormal-api/internal/entities/paranormal"
	"github.com/KirkDiggler/paranormal-api/internal/errors"
	"github.com/KirkDiggler/paranormal-api/internal/services/character"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	CharacterService character.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.CharacterService == nil {
		return errors.InvalidArgument("character service is required")
	}
	return nil
}

// Handler implements the character gRPC service
type Handler struct {
	apiv1alpha1.UnimplementedCharacterServiceServer
	characterService character.Service
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		characterService: cfg.CharacterService,
	}, nil
}

// CreateCharacter creates a character from a point buy
func (h *Handler) CreateCharacter(
	ctx context.Context,
	req *apiv1alpha1.CreateCharacterRequest,
) (*apiv1alpha1.CreateCharacterResponse, error) {
	if req.PlayerId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}
	if req.Name == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("name is required"))
	}

	attributes, err := convertProtoAttributes(req.Attributes)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.characterService.CreateCharacter(ctx, &character.CreateCharacterInput{
		PlayerID:    req.PlayerId,
		Name:        req.Name,
		Origin:      req.Origin,
		Archetype:   req.Archetype,
		Class:       req.Class,
		Rank:        req.Rank,
		Attributes:  attributes,
		Skills:      req.Skills,
		Description: req.Description,
		Backstory:   req.Backstory,
		Details:     convertProtoDetails(req.Details),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.CreateCharacterResponse{
		Character: convertCharacterToProto(output.Character),
	}, nil
}

// GetCharacter retrieves a character
func (h *Handler) GetCharacter(
	ctx context.Context,
	req *apiv1alpha1.GetCharacterRequest,
) (*apiv1alpha1.GetCharacterResponse, error) {
	if req.CharacterId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	output, err := h.characterService.GetCharacter(ctx, &character.GetCharacterInput{
		CharacterID: req.CharacterId,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.GetCharacterResponse{
		Character: convertCharacterToProto(output.Character),
	}, nil
}

// ListCharacters lists a player's characters, or all of them
func (h *Handler) ListCharacters(
	ctx context.Context,
	req *apiv1alpha1.ListCharactersRequest,
) (*apiv1alpha1.ListCharactersResponse, error) {
	output, err := h.characterService.ListCharacters(ctx, &character.ListCharactersInput{
		PlayerID: req.PlayerId,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.ListCharactersResponse{
		Characters: convertCharactersToProto(output.Characters),
	}, nil
}

// DeleteCharacter removes a character
func (h *Handler) DeleteCharacter(
	ctx context.Context,
	req *apiv1alpha1.DeleteCharacterRequest,
) (*apiv1alpha1.DeleteCharacterResponse, error) {
	if req.CharacterId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	if _, err := h.characterService.DeleteCharacter(ctx, &character.DeleteCharacterInput{
		CharacterID: req.CharacterId,
	}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.DeleteCharacterResponse{
		Message: "Character deleted successfully",
	}, nil
}

// UpdateCharacter replaces a sheet on behalf of the game master
func (h *Handler) UpdateCharacter(
	ctx context.Context,
	req *apiv1alpha1.UpdateCharacterRequest,
) (*apiv1alpha1.UpdateCharacterResponse, error) {
	char, err := convertProtoCharacter(req.Character)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if char.ID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character.id is required"))
	}

	output, err := h.characterService.UpdateCharacter(ctx, &character.UpdateCharacterInput{
		Character: char,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.UpdateCharacterResponse{
		Character:         convertCharacterToProto(output.Character),
		ArchetypeFallback: output.ArchetypeFallback,
	}, nil
}

// SetAttribute sets one attribute and recomputes the sheet
func (h *Handler) SetAttribute(
	ctx context.Context,
	req *apiv1alpha1.SetAttributeRequest,
) (*apiv1alpha1.SetAttributeResponse, error) {
	if req.CharacterId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	output, err := h.characterService.SetAttribute(ctx, &character.SetAttributeInput{
		CharacterID: req.CharacterId,
		Attribute:   req.Attribute,
		Value:       int(req.Value),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.SetAttributeResponse{
		Character:         convertCharacterToProto(output.Character),
		ArchetypeFallback: output.ArchetypeFallback,
	}, nil
}

// ChangeArchetype moves a character to another archetype
func (h *Handler) ChangeArchetype(
	ctx context.Context,
	req *apiv1alpha1.ChangeArchetypeRequest,
) (*apiv1alpha1.ChangeArchetypeResponse, error) {
	if req.CharacterId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	output, err := h.characterService.ChangeArchetype(ctx, &character.ChangeArchetypeInput{
		CharacterID: req.CharacterId,
		Archetype:   req.Archetype,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.ChangeArchetypeResponse{
		Character: convertCharacterToProto(output.Character),
	}, nil
}

// AdjustPool damages, heals or spends a pool
func (h *Handler) AdjustPool(
	ctx context.Context,
	req *apiv1alpha1.AdjustPoolRequest,
) (*apiv1alpha1.AdjustPoolResponse, error) {
	if req.CharacterId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	output, err := h.characterService.AdjustPool(ctx, &character.AdjustPoolInput{
		CharacterID: req.CharacterId,
		Pool:        req.Pool,
		Delta:       int(req.Delta),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.AdjustPoolResponse{
		Character: convertCharacterToProto(output.Character),
		Pool:      convertPoolToProto(output.Pool),
	}, nil
}

// TrainSkill raises or lowers a skill one level
func (h *Handler) TrainSkill(
	ctx context.Context,
	req *apiv1alpha1.TrainSkillRequest,
) (*apiv1alpha1.TrainSkillResponse, error) {
	if req.CharacterId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	output, err := h.characterService.TrainSkill(ctx, &character.TrainSkillInput{
		CharacterID: req.CharacterId,
		Skill:       req.Skill,
		Direction:   character.TrainDirection(req.Direction),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.TrainSkillResponse{
		Character: convertCharacterToProto(output.Character),
		Level:     output.Level.String(),
	}, nil
}

// AddItem adds a stack to the inventory
func (h *Handler) AddItem(
	ctx context.Context,
	req *apiv1alpha1.AddItemRequest,
) (*apiv1alpha1.AddItemResponse, error) {
	if req.CharacterId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	item, err := convertProtoItem(req.Item)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	var fromCatalog paranormal.CatalogKind
	if req.FromCatalog != "" {
		kind, ok := paranormal.ParseCatalogKind(req.FromCatalog)
		if !ok {
			return nil, errors.ToGRPCError(errors.InvalidArgumentf("unknown catalog kind %q", req.FromCatalog))
		}
		fromCatalog = kind
	}

	output, err := h.characterService.AddItem(ctx, &character.AddItemInput{
		CharacterID: req.CharacterId,
		Item:        item,
		FromCatalog: fromCatalog,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.AddItemResponse{
		Character: convertCharacterToProto(output.Character),
	}, nil
}

// IncrementItem changes a stack's quantity
func (h *Handler) IncrementItem(
	ctx context.Context,
	req *apiv1alpha1.IncrementItemRequest,
) (*apiv1alpha1.IncrementItemResponse, error) {
	if req.CharacterId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	output, err := h.characterService.IncrementItem(ctx, &character.IncrementItemInput{
		CharacterID: req.CharacterId,
		Index:       int(req.Index),
		Delta:       int(req.Delta),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.IncrementItemResponse{
		Character: convertCharacterToProto(output.Character),
	}, nil
}

// ModifyItem applies a modification to a stack
func (h *Handler) ModifyItem(
	ctx context.Context,
	req *apiv1alpha1.ModifyItemRequest,
) (*apiv1alpha1.ModifyItemResponse, error) {
	if req.CharacterId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}
	if req.Modification == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("modification is required"))
	}

	output, err := h.characterService.ModifyItem(ctx, &character.ModifyItemInput{
		CharacterID:      req.CharacterId,
		Index:            int(req.Index),
		ModificationName: req.Modification,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.ModifyItemResponse{
		Character: convertCharacterToProto(output.Character),
	}, nil
}

// RemoveItem removes a stack
func (h *Handler) RemoveItem(
	ctx context.Context,
	req *apiv1alpha1.RemoveItemRequest,
) (*apiv1alpha1.RemoveItemResponse, error) {
	if req.CharacterId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	output, err := h.characterService.RemoveItem(ctx, &character.RemoveItemInput{
		CharacterID: req.CharacterId,
		Index:       int(req.Index),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.RemoveItemResponse{
		Character: convertCharacterToProto(output.Character),
	}, nil
}
