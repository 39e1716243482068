package client

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	apiv1alpha1 "github.com/KirkDiggler/paranormal-api/internal/api/v1alpha1"
)

var (
	rollContext     string
	rollDescription string
	rollBonus       int
	rollAttribute   string
)

var diceCmd = &cobra.Command{
	Use:   "dice",
	Short: "Dice and roll session commands",
}

var rollDiceCmd = &cobra.Command{
	Use:   "roll [entity-id] [notation]",
	Short: "Roll dice using dice notation",
	Long: `Roll dice and see individual results. Examples:

  dice roll char-123 1d20
  dice roll char-123 2d6+3 --context combat
  dice roll char-123 3d8-1 --description "Dano de fogo"`,
	Args: cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		client, cleanup, err := createDiceClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := requestContext()
		defer cancel()

		resp, err := client.RollDice(ctx, &apiv1alpha1.RollDiceRequest{
			EntityId:    args[0],
			Context:     rollContext,
			Notation:    args[1],
			Description: rollDescription,
		})
		if err != nil {
			return fmt.Errorf("failed to roll dice: %w", err)
		}

		printRoll(resp.Roll)
		return nil
	},
}

var rollCustomCmd = &cobra.Command{
	Use:   "custom [entity-id] [quantity] [sides] [modifier]",
	Short: "Roll dice built from parts",
	Args:  cobra.ExactArgs(4),
	RunE: func(_ *cobra.Command, args []string) error {
		parts := make([]int32, 3)
		for i, raw := range args[1:] {
			n, err := strconv.Atoi(raw)
			if err != nil {
				return fmt.Errorf("%q is not a number: %w", raw, err)
			}
			parts[i] = int32(n)
		}

		client, cleanup, err := createDiceClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := requestContext()
		defer cancel()

		resp, err := client.RollCustom(ctx, &apiv1alpha1.RollCustomRequest{
			EntityId:    args[0],
			Context:     rollContext,
			Quantity:    parts[0],
			Sides:       parts[1],
			Modifier:    parts[2],
			Description: rollDescription,
		})
		if err != nil {
			return fmt.Errorf("failed to roll dice: %w", err)
		}

		printRoll(resp.Roll)
		return nil
	},
}

var rollAttributeCmd = &cobra.Command{
	Use:   "attribute [character-id] [attribute]",
	Short: "Make an attribute test",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		client, cleanup, err := createDiceClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := requestContext()
		defer cancel()

		resp, err := client.RollAttribute(ctx, &apiv1alpha1.RollAttributeRequest{
			CharacterId: args[0],
			Context:     rollContext,
			Attribute:   args[1],
			Bonus:       int32(rollBonus),
		})
		if err != nil {
			return fmt.Errorf("failed to roll attribute: %w", err)
		}

		printTest(resp.Test)
		return nil
	},
}

var rollSkillCmd = &cobra.Command{
	Use:   "skill [character-id] [skill]",
	Short: "Make a skill test",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		client, cleanup, err := createDiceClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := requestContext()
		defer cancel()

		resp, err := client.RollSkill(ctx, &apiv1alpha1.RollSkillRequest{
			CharacterId: args[0],
			Context:     rollContext,
			Skill:       args[1],
			Attribute:   rollAttribute,
			Bonus:       int32(rollBonus),
		})
		if err != nil {
			return fmt.Errorf("failed to roll skill: %w", err)
		}

		fmt.Printf("%s (%s, level %s)\n", resp.Skill, resp.Attribute, resp.Level)
		printTest(resp.Test)
		return nil
	},
}

var rollAttackCmd = &cobra.Command{
	Use:   "attack [character-id] [weapon]",
	Short: "Attack with a carried or catalog weapon",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		client, cleanup, err := createDiceClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := requestContext()
		defer cancel()

		resp, err := client.RollAttack(ctx, &apiv1alpha1.RollAttackRequest{
			CharacterId: args[0],
			Context:     rollContext,
			Weapon:      args[1],
			Bonus:       int32(rollBonus),
		})
		if err != nil {
			return fmt.Errorf("failed to roll attack: %w", err)
		}

		if jsonOutput {
			return printJSON(resp)
		}

		fmt.Printf("⚔️  %s with %s (attack bonus %+d)\n", resp.Weapon, resp.Skill, resp.AttackBonus)
		printTest(resp.Test)
		if resp.InThreatRange {
			fmt.Printf("  Threat! (range %d-20)\n", resp.ThreatRange)
		}
		if resp.Damage != nil {
			fmt.Printf("Damage:\n")
			printRoll(resp.Damage)
		} else {
			fmt.Printf("Damage %q is not rollable\n", resp.DamageFormula)
		}
		return nil
	},
}

var getRollSessionCmd = &cobra.Command{
	Use:   "session [entity-id]",
	Short: "Show recent rolls",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		client, cleanup, err := createDiceClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := requestContext()
		defer cancel()

		resp, err := client.GetRollSession(ctx, &apiv1alpha1.GetRollSessionRequest{EntityId: args[0], Context: rollContext})
		if err != nil {
			return fmt.Errorf("failed to get roll session: %w", err)
		}

		if jsonOutput {
			return printJSON(resp.Session)
		}

		fmt.Printf("🎲 %d rolls for %s (%s)\n", len(resp.Session.Rolls), resp.Session.EntityId, resp.Session.Context)
		for _, roll := range resp.Session.Rolls {
			printRoll(roll)
		}
		fmt.Printf("\nSession expires at: %d\n", resp.Session.ExpiresAt)
		return nil
	},
}

var clearRollSessionCmd = &cobra.Command{
	Use:   "clear [entity-id]",
	Short: "Clear recent rolls",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		client, cleanup, err := createDiceClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := requestContext()
		defer cancel()

		resp, err := client.ClearRollSession(ctx, &apiv1alpha1.ClearRollSessionRequest{EntityId: args[0], Context: rollContext})
		if err != nil {
			return fmt.Errorf("failed to clear roll session: %w", err)
		}
		fmt.Printf("%s (%d rolls)\n", resp.Message, resp.RollsCleared)
		return nil
	},
}

func init() {
	diceCmd.PersistentFlags().StringVar(&rollContext, "context", "", "Roll context, sheet when empty")
	diceCmd.PersistentFlags().IntVar(&rollBonus, "bonus", 0, "Situational bonus")

	rollDiceCmd.Flags().StringVar(&rollDescription, "description", "", "Label for the roll")
	rollCustomCmd.Flags().StringVar(&rollDescription, "description", "", "Label for the roll")
	rollSkillCmd.Flags().StringVar(&rollAttribute, "attribute", "", "Test the skill with another attribute")

	diceCmd.AddCommand(
		rollDiceCmd,
		rollCustomCmd,
		rollAttributeCmd,
		rollSkillCmd,
		rollAttackCmd,
		getRollSessionCmd,
		clearRollSessionCmd,
	)
}

func printRoll(roll *apiv1alpha1.DiceRoll) {
	if roll == nil {
		return
	}
	if jsonOutput {
		_ = printJSON(roll) // nolint:errcheck // printing only
		return
	}

	fmt.Printf("\n  Roll ID: %s\n", roll.RollId)
	fmt.Printf("  Notation: %s\n", roll.Notation)
	fmt.Printf("  Individual Dice: %v\n", roll.Dice)
	if roll.Modifier != 0 {
		fmt.Printf("  Modifier: %+d\n", roll.Modifier)
	}
	fmt.Printf("  Total: %d\n", roll.Total)
	if roll.Description != "" {
		fmt.Printf("  Description: %s\n", roll.Description)
	}
}

func printTest(test *apiv1alpha1.TestResult) {
	if test == nil {
		return
	}
	fmt.Printf("  d20: %d  attribute: %d  bonus: %+d  total: %d\n", test.Die, test.AttributeValue, test.Bonus, test.Total)
	switch {
	case test.IsCritical:
		fmt.Printf("  💥 Natural 20\n")
	case test.IsFumble:
		fmt.Printf("  💀 Natural 1\n")
	}
}
