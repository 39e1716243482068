package client

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	apiv1alpha1 "github.com/KirkDiggler/paranormal-api/internal/api/v1alpha1"
)

var (
	createPlayerID   string
	createName       string
	createOrigin     string
	createArchetype  string
	createClass      string
	createRank       string
	createAttributes map[string]int
	createSkills     []string
	listPlayerID     string
	updateSheetFile  string
	addItemCatalog   string
	addItemSpace     int
	addItemQuantity  int
	addItemCategory  string
	addItemDamage    string
	addItemSkill     string
)

var characterCmd = &cobra.Command{
	Use:   "character",
	Short: "Character sheet commands",
}

var createCharacterCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a character from a point buy",
	Long: `Create a character. Attributes must total 10 with each between 1 and 5.
Exactly the archetype allowance of skills must be picked; a Combatente picks one
of Luta/Pontaria and one of Fortitude/Reflexos among them:

  character create --player p1 --name "Arthur Cervero" --archetype combatente \
    --attributes FOR=3,AGI=2,INT=1,PRE=2,VIG=2 \
    --skills Luta,Fortitude,Atletismo,Percepção`,
	RunE: runCreateCharacter,
}

var getCharacterCmd = &cobra.Command{
	Use:   "get [character-id]",
	Short: "Show a character sheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		client, cleanup, err := createCharacterClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := requestContext()
		defer cancel()

		resp, err := client.GetCharacter(ctx, &apiv1alpha1.GetCharacterRequest{CharacterId: args[0]})
		if err != nil {
			return fmt.Errorf("failed to get character: %w", err)
		}
		printCharacter(resp.Character)
		return nil
	},
}

var listCharactersCmd = &cobra.Command{
	Use:   "list",
	Short: "List characters, optionally for one player",
	RunE: func(_ *cobra.Command, _ []string) error {
		client, cleanup, err := createCharacterClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := requestContext()
		defer cancel()

		resp, err := client.ListCharacters(ctx, &apiv1alpha1.ListCharactersRequest{PlayerId: listPlayerID})
		if err != nil {
			return fmt.Errorf("failed to list characters: %w", err)
		}

		fmt.Printf("Found %d characters\n\n", len(resp.Characters))
		for _, char := range resp.Characters {
			fmt.Printf("  %s  %s (%s, NEX %d%%) player %s\n", char.Id, char.Name, char.Archetype, char.Nex, char.PlayerId)
		}
		return nil
	},
}

var deleteCharacterCmd = &cobra.Command{
	Use:   "delete [character-id]",
	Short: "Delete a character",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		client, cleanup, err := createCharacterClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := requestContext()
		defer cancel()

		resp, err := client.DeleteCharacter(ctx, &apiv1alpha1.DeleteCharacterRequest{CharacterId: args[0]})
		if err != nil {
			return fmt.Errorf("failed to delete character: %w", err)
		}
		fmt.Println(resp.Message)
		return nil
	},
}

var updateCharacterCmd = &cobra.Command{
	Use:   "update",
	Short: "Replace a sheet from a JSON file (game master)",
	RunE: func(_ *cobra.Command, _ []string) error {
		data, err := os.ReadFile(updateSheetFile)
		if err != nil {
			return fmt.Errorf("failed to read sheet: %w", err)
		}
		sheet := &apiv1alpha1.Character{}
		if err := json.Unmarshal(data, sheet); err != nil {
			return fmt.Errorf("failed to parse sheet: %w", err)
		}

		client, cleanup, err := createCharacterClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := requestContext()
		defer cancel()

		resp, err := client.UpdateCharacter(ctx, &apiv1alpha1.UpdateCharacterRequest{Character: sheet})
		if err != nil {
			return fmt.Errorf("failed to update character: %w", err)
		}
		if resp.ArchetypeFallback {
			fmt.Println("⚠️  Unknown archetype, stats derived as Especialista")
		}
		printCharacter(resp.Character)
		return nil
	},
}

var setAttributeCmd = &cobra.Command{
	Use:   "set-attribute [character-id] [attribute] [value]",
	Short: "Set one attribute and recompute the sheet",
	Args:  cobra.ExactArgs(3),
	RunE: func(_ *cobra.Command, args []string) error {
		value, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("value must be a number: %w", err)
		}

		client, cleanup, err := createCharacterClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := requestContext()
		defer cancel()

		resp, err := client.SetAttribute(ctx, &apiv1alpha1.SetAttributeRequest{
			CharacterId: args[0],
			Attribute:   args[1],
			Value:       int32(value),
		})
		if err != nil {
			return fmt.Errorf("failed to set attribute: %w", err)
		}
		printCharacter(resp.Character)
		return nil
	},
}

var changeArchetypeCmd = &cobra.Command{
	Use:   "archetype [character-id] [archetype]",
	Short: "Change a character's archetype",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		client, cleanup, err := createCharacterClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := requestContext()
		defer cancel()

		resp, err := client.ChangeArchetype(ctx, &apiv1alpha1.ChangeArchetypeRequest{CharacterId: args[0], Archetype: args[1]})
		if err != nil {
			return fmt.Errorf("failed to change archetype: %w", err)
		}
		printCharacter(resp.Character)
		return nil
	},
}

var adjustPoolCmd = &cobra.Command{
	Use:   "pool [character-id] [health|sanity|effort] [delta]",
	Short: "Damage, heal or spend a pool",
	Args:  cobra.ExactArgs(3),
	RunE: func(_ *cobra.Command, args []string) error {
		delta, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("delta must be a number: %w", err)
		}

		client, cleanup, err := createCharacterClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := requestContext()
		defer cancel()

		resp, err := client.AdjustPool(ctx, &apiv1alpha1.AdjustPoolRequest{
			CharacterId: args[0],
			Pool:        args[1],
			Delta:       int32(delta),
		})
		if err != nil {
			return fmt.Errorf("failed to adjust pool: %w", err)
		}
		fmt.Printf("%s: %d/%d\n", args[1], resp.Pool.Current, resp.Pool.Max)
		return nil
	},
}

var trainSkillCmd = &cobra.Command{
	Use:   "train [character-id] [skill] [up|down]",
	Short: "Raise or lower a skill one level",
	Args:  cobra.ExactArgs(3),
	RunE: func(_ *cobra.Command, args []string) error {
		client, cleanup, err := createCharacterClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := requestContext()
		defer cancel()

		resp, err := client.TrainSkill(ctx, &apiv1alpha1.TrainSkillRequest{
			CharacterId: args[0],
			Skill:       args[1],
			Direction:   args[2],
		})
		if err != nil {
			return fmt.Errorf("failed to train skill: %w", err)
		}
		fmt.Printf("%s is now level %s\n", args[1], resp.Level)
		return nil
	},
}

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Inventory commands",
}

var addItemCmd = &cobra.Command{
	Use:   "add [character-id] [name]",
	Short: "Add a stack, optionally from a catalog table",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		item := &apiv1alpha1.InventoryItem{
			Name:     args[1],
			Category: addItemCategory,
			Space:    int32(addItemSpace),
			Quantity: int32(addItemQuantity),
		}
		if addItemDamage != "" {
			item.Weapon = &apiv1alpha1.WeaponStats{Damage: addItemDamage, Skill: addItemSkill}
		}

		client, cleanup, err := createCharacterClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := requestContext()
		defer cancel()

		resp, err := client.AddItem(ctx, &apiv1alpha1.AddItemRequest{
			CharacterId: args[0],
			Item:        item,
			FromCatalog: addItemCatalog,
		})
		if err != nil {
			return fmt.Errorf("failed to add item: %w", err)
		}
		printInventory(resp.Character)
		return nil
	},
}

var incrementItemCmd = &cobra.Command{
	Use:   "inc [character-id] [index] [delta]",
	Short: "Change a stack's quantity",
	Args:  cobra.ExactArgs(3),
	RunE: func(_ *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("index must be a number: %w", err)
		}
		delta, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("delta must be a number: %w", err)
		}

		client, cleanup, err := createCharacterClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := requestContext()
		defer cancel()

		resp, err := client.IncrementItem(ctx, &apiv1alpha1.IncrementItemRequest{
			CharacterId: args[0],
			Index:       int32(index),
			Delta:       int32(delta),
		})
		if err != nil {
			return fmt.Errorf("failed to change quantity: %w", err)
		}
		printInventory(resp.Character)
		return nil
	},
}

var modifyItemCmd = &cobra.Command{
	Use:   "mod [character-id] [index] [modification]",
	Short: "Apply a catalog modification to a stack",
	Args:  cobra.ExactArgs(3),
	RunE: func(_ *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("index must be a number: %w", err)
		}

		client, cleanup, err := createCharacterClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := requestContext()
		defer cancel()

		resp, err := client.ModifyItem(ctx, &apiv1alpha1.ModifyItemRequest{
			CharacterId:  args[0],
			Index:        int32(index),
			Modification: args[2],
		})
		if err != nil {
			return fmt.Errorf("failed to modify item: %w", err)
		}
		printInventory(resp.Character)
		return nil
	},
}

var removeItemCmd = &cobra.Command{
	Use:   "remove [character-id] [index]",
	Short: "Remove a stack",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("index must be a number: %w", err)
		}

		client, cleanup, err := createCharacterClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := requestContext()
		defer cancel()

		resp, err := client.RemoveItem(ctx, &apiv1alpha1.RemoveItemRequest{CharacterId: args[0], Index: int32(index)})
		if err != nil {
			return fmt.Errorf("failed to remove item: %w", err)
		}
		printInventory(resp.Character)
		return nil
	},
}

func init() {
	createCharacterCmd.Flags().StringVar(&createPlayerID, "player", "", "Player ID (required)")
	createCharacterCmd.Flags().StringVar(&createName, "name", "", "Character name (required)")
	createCharacterCmd.Flags().StringVar(&createOrigin, "origin", "", "Origin")
	createCharacterCmd.Flags().StringVar(&createArchetype, "archetype", "", "Archetype: combatente, especialista or ocultista (required)")
	createCharacterCmd.Flags().StringVar(&createClass, "class", "", "Class")
	createCharacterCmd.Flags().StringVar(&createRank, "rank", "", "Rank, Recruta when empty")
	createCharacterCmd.Flags().StringToIntVar(&createAttributes, "attributes", nil, "Point buy, e.g. FOR=3,AGI=2,INT=1,PRE=2,VIG=2")
	createCharacterCmd.Flags().StringSliceVar(&createSkills, "skills", nil, "Chosen skills")
	_ = createCharacterCmd.MarkFlagRequired("player")    // nolint:errcheck // safe to ignore in init
	_ = createCharacterCmd.MarkFlagRequired("name")      // nolint:errcheck // safe to ignore in init
	_ = createCharacterCmd.MarkFlagRequired("archetype") // nolint:errcheck // safe to ignore in init

	listCharactersCmd.Flags().StringVar(&listPlayerID, "player", "", "Only this player's characters")

	updateCharacterCmd.Flags().StringVar(&updateSheetFile, "file", "", "JSON sheet, as printed by character get --json (required)")
	_ = updateCharacterCmd.MarkFlagRequired("file") // nolint:errcheck // safe to ignore in init

	addItemCmd.Flags().StringVar(&addItemCatalog, "catalog", "", "Look the item up in weapons, equipment, protections or ammunition")
	addItemCmd.Flags().IntVar(&addItemSpace, "space", 0, "Space per unit")
	addItemCmd.Flags().IntVar(&addItemQuantity, "quantity", 1, "Quantity")
	addItemCmd.Flags().StringVar(&addItemCategory, "category", "", "Category")
	addItemCmd.Flags().StringVar(&addItemDamage, "damage", "", "Damage notation, for improvised weapons")
	addItemCmd.Flags().StringVar(&addItemSkill, "skill", "", "Attack skill, for improvised weapons")

	itemCmd.AddCommand(addItemCmd, incrementItemCmd, modifyItemCmd, removeItemCmd)

	characterCmd.AddCommand(
		createCharacterCmd,
		getCharacterCmd,
		listCharactersCmd,
		deleteCharacterCmd,
		updateCharacterCmd,
		setAttributeCmd,
		changeArchetypeCmd,
		adjustPoolCmd,
		trainSkillCmd,
		itemCmd,
	)
}

func runCreateCharacter(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createCharacterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	attributes := make(map[string]int32, len(createAttributes))
	for attr, value := range createAttributes {
		attributes[attr] = int32(value)
	}

	resp, err := client.CreateCharacter(ctx, &apiv1alpha1.CreateCharacterRequest{
		PlayerId:   createPlayerID,
		Name:       createName,
		Origin:     createOrigin,
		Archetype:  createArchetype,
		Class:      createClass,
		Rank:       createRank,
		Attributes: attributes,
		Skills:     createSkills,
	})
	if err != nil {
		return fmt.Errorf("failed to create character: %w", err)
	}

	fmt.Printf("✅ Character created\n\n")
	printCharacter(resp.Character)
	return nil
}

func printCharacter(char *apiv1alpha1.Character) {
	if char == nil {
		return
	}
	if jsonOutput {
		_ = printJSON(char) // nolint:errcheck // printing only
		return
	}

	fmt.Printf("📋 %s (%s)\n", char.Name, char.Id)
	fmt.Printf("Player: %s\n", char.PlayerId)
	fmt.Printf("Archetype: %s  Rank: %s  NEX: %d%%\n", char.Archetype, char.Rank, char.Nex)
	if char.Origin != "" {
		fmt.Printf("Origin: %s\n", char.Origin)
	}
	fmt.Printf("Attributes: FOR %d  AGI %d  INT %d  PRE %d  VIG %d\n",
		char.Attributes["FOR"], char.Attributes["AGI"], char.Attributes["INT"], char.Attributes["PRE"], char.Attributes["VIG"])
	fmt.Printf("PV %s  SAN %s  PE %s\n", formatPool(char.Health), formatPool(char.Sanity), formatPool(char.Effort))
	fmt.Printf("Defense: %d  Movement: %d\n", char.Defense, char.Movement)

	if len(char.Skills) > 0 {
		names := make([]string, 0, len(char.Skills))
		for name := range char.Skills {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Printf("Skills:\n")
		for _, name := range names {
			fmt.Printf("  - %s: %s\n", name, char.Skills[name])
		}
	}

	printInventory(char)
}

func printInventory(char *apiv1alpha1.Character) {
	if char == nil {
		return
	}
	fmt.Printf("Inventory (%d/%d space):\n", char.SpaceUsed, char.Capacity)
	for i, item := range char.Inventory {
		fmt.Printf("  [%d] %s x%d (space %d)", i, item.Name, item.Quantity, item.Space)
		if item.Weapon != nil {
			fmt.Printf(" damage %s", item.Weapon.Damage)
		}
		for _, mod := range item.Modifications {
			fmt.Printf(" +%s", mod.Name)
		}
		fmt.Println()
	}
}

func formatPool(pool *apiv1alpha1.Pool) string {
	if pool == nil {
		return "-"
	}
	return fmt.Sprintf("%d/%d", pool.Current, pool.Max)
}
