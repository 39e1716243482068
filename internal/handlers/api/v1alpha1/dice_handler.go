// Package v1alpha1 handles the dice grpc service interface
package v1alpha1

import (
	"context"

	apiv1alpha1 "github.com/KirkDiggler/paranormal-api/internal/api/v1alpha1"
	"github.com/KirkDiggler/paranormal-api/internal/engine/check"
	"github.com/KirkDiggler/paranormal-api/internal/errors"
	"github.com/KirkDiggler/paranormal-api/internal/orchestrators/dice"
	dicesession "github.com/KirkDiggler/paranormal-api/internal/repositories/dice_session"
)

// DiceHandlerConfig holds dependencies for the dice handler
type DiceHandlerConfig struct {
	DiceService dice.Service
}

// Validate ensures all required dependencies are present
func (c *DiceHandlerConfig) Validate() error {
	if c.DiceService == nil {
		return errors.InvalidArgument("dice service is required")
	}
	return nil
}

// DiceHandler implements the dice gRPC service
type DiceHandler struct {
	apiv1alpha1.UnimplementedDiceServiceServer
	diceService dice.Service
}

// NewDiceHandler creates a new dice handler with the given configuration
func NewDiceHandler(cfg *DiceHandlerConfig) (*DiceHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &DiceHandler{
		diceService: cfg.DiceService,
	}, nil
}

// RollDice rolls a notation and stores the result in a session
func (h *DiceHandler) RollDice(
	ctx context.Context,
	req *apiv1alpha1.RollDiceRequest,
) (*apiv1alpha1.RollDiceResponse, error) {
	if req.EntityId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("entity_id is required"))
	}
	if req.Notation == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("notation is required"))
	}

	diceOutput, err := h.diceService.RollDice(ctx, &dice.RollDiceInput{
		EntityID:    req.EntityId,
		Context:     req.Context,
		Notation:    req.Notation,
		Description: req.Description,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.RollDiceResponse{
		Roll:    convertRollToProto(diceOutput.Roll),
		Session: convertSessionToProto(diceOutput.Session),
	}, nil
}

// RollCustom rolls dice built from quantity, sides and modifier
func (h *DiceHandler) RollCustom(
	ctx context.Context,
	req *apiv1alpha1.RollCustomRequest,
) (*apiv1alpha1.RollCustomResponse, error) {
	if req.EntityId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("entity_id is required"))
	}

	diceOutput, err := h.diceService.RollCustom(ctx, &dice.RollCustomInput{
		EntityID:    req.EntityId,
		Context:     req.Context,
		Quantity:    int(req.Quantity),
		Sides:       int(req.Sides),
		Modifier:    int(req.Modifier),
		Description: req.Description,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.RollCustomResponse{
		Roll:    convertRollToProto(diceOutput.Roll),
		Session: convertSessionToProto(diceOutput.Session),
	}, nil
}

// RollAttribute makes an attribute test
func (h *DiceHandler) RollAttribute(
	ctx context.Context,
	req *apiv1alpha1.RollAttributeRequest,
) (*apiv1alpha1.RollAttributeResponse, error) {
	if req.CharacterId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}
	if req.Attribute == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("attribute is required"))
	}

	diceOutput, err := h.diceService.RollAttribute(ctx, &dice.RollAttributeInput{
		CharacterID: req.CharacterId,
		Context:     req.Context,
		Attribute:   req.Attribute,
		Bonus:       int(req.Bonus),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.RollAttributeResponse{
		Test:    convertTestToProto(diceOutput.Test),
		Roll:    convertRollToProto(diceOutput.Roll),
		Session: convertSessionToProto(diceOutput.Session),
	}, nil
}

// RollSkill makes a skill test
func (h *DiceHandler) RollSkill(
	ctx context.Context,
	req *apiv1alpha1.RollSkillRequest,
) (*apiv1alpha1.RollSkillResponse, error) {
	if req.CharacterId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}
	if req.Skill == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("skill is required"))
	}

	diceOutput, err := h.diceService.RollSkill(ctx, &dice.RollSkillInput{
		CharacterID: req.CharacterId,
		Context:     req.Context,
		Skill:       req.Skill,
		Attribute:   req.Attribute,
		Bonus:       int(req.Bonus),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.RollSkillResponse{
		Test:      convertTestToProto(diceOutput.Test),
		Skill:     diceOutput.Skill,
		Attribute: string(diceOutput.Attribute),
		Level:     diceOutput.Level.String(),
		Roll:      convertRollToProto(diceOutput.Roll),
		Session:   convertSessionToProto(diceOutput.Session),
	}, nil
}

// RollAttack attacks with a weapon and rolls its damage
func (h *DiceHandler) RollAttack(
	ctx context.Context,
	req *apiv1alpha1.RollAttackRequest,
) (*apiv1alpha1.RollAttackResponse, error) {
	if req.CharacterId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}
	if req.Weapon == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("weapon is required"))
	}

	diceOutput, err := h.diceService.RollAttack(ctx, &dice.RollAttackInput{
		CharacterID: req.CharacterId,
		Context:     req.Context,
		Weapon:      req.Weapon,
		Bonus:       int(req.Bonus),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	rolls := make([]*apiv1alpha1.DiceRoll, 0, len(diceOutput.Rolls))
	for i := range diceOutput.Rolls {
		rolls = append(rolls, convertRollToProto(&diceOutput.Rolls[i]))
	}

	resp := &apiv1alpha1.RollAttackResponse{
		Test:          convertTestToProto(diceOutput.Attack.Test),
		Weapon:        diceOutput.Weapon,
		Skill:         diceOutput.Skill,
		AttackBonus:   int32(diceOutput.Attack.AttackBonus),
		ThreatRange:   int32(diceOutput.Attack.ThreatRange),
		InThreatRange: diceOutput.Attack.InThreatRange,
		DamageFormula: diceOutput.Attack.DamageFormula,
		Rolls:         rolls,
		Session:       convertSessionToProto(diceOutput.Session),
	}
	for _, roll := range rolls {
		if roll.Kind == string(dicesession.RollKindDamage) {
			resp.Damage = roll
		}
	}

	return resp, nil
}

// GetRollSession retrieves an existing dice roll session
func (h *DiceHandler) GetRollSession(
	ctx context.Context,
	req *apiv1alpha1.GetRollSessionRequest,
) (*apiv1alpha1.GetRollSessionResponse, error) {
	if req.EntityId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("entity_id is required"))
	}

	diceOutput, err := h.diceService.GetRollSession(ctx, &dice.GetRollSessionInput{
		EntityID: req.EntityId,
		Context:  req.Context,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.GetRollSessionResponse{
		Session: convertSessionToProto(diceOutput.Session),
	}, nil
}

// ClearRollSession removes a dice roll session
func (h *DiceHandler) ClearRollSession(
	ctx context.Context,
	req *apiv1alpha1.ClearRollSessionRequest,
) (*apiv1alpha1.ClearRollSessionResponse, error) {
	if req.EntityId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("entity_id is required"))
	}

	diceOutput, err := h.diceService.ClearRollSession(ctx, &dice.ClearRollSessionInput{
		EntityID: req.EntityId,
		Context:  req.Context,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.ClearRollSessionResponse{
		Message:      "Roll session cleared successfully",
		RollsCleared: int32(diceOutput.RollsDeleted),
	}, nil
}

func convertRollToProto(roll *dicesession.DiceRoll) *apiv1alpha1.DiceRoll {
	if roll == nil {
		return nil
	}

	faces := make([]int32, len(roll.Results))
	for i, face := range roll.Results {
		faces[i] = int32(face)
	}

	return &apiv1alpha1.DiceRoll{
		RollId:      roll.RollID,
		Kind:        string(roll.Kind),
		Notation:    roll.Notation,
		Dice:        faces,
		Modifier:    int32(roll.Modifier),
		Total:       int32(roll.Total),
		Description: roll.Description,
		IsCritical:  roll.IsCritical,
		IsFumble:    roll.IsFumble,
		RolledAt:    roll.RolledAt.Unix(),
	}
}

func convertSessionToProto(session *dicesession.DiceSession) *apiv1alpha1.RollSession {
	if session == nil {
		return nil
	}

	rolls := make([]*apiv1alpha1.DiceRoll, 0, len(session.Rolls))
	for i := range session.Rolls {
		rolls = append(rolls, convertRollToProto(&session.Rolls[i]))
	}

	return &apiv1alpha1.RollSession{
		EntityId:  session.EntityID,
		Context:   session.Context,
		Rolls:     rolls,
		CreatedAt: session.CreatedAt.Unix(),
		ExpiresAt: session.ExpiresAt.Unix(),
	}
}

func convertTestToProto(test check.AttributeTestResult) *apiv1alpha1.TestResult {
	return &apiv1alpha1.TestResult{
		Die:            int32(test.Die),
		AttributeValue: int32(test.AttributeValue),
		Bonus:          int32(test.Bonus),
		Total:          int32(test.Total),
		IsCritical:     test.IsCritical,
		IsFumble:       test.IsFumble,
	}
}
