package client

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	apiv1alpha1 "github.com/KirkDiggler/paranormal-api/internal/api/v1alpha1"
)

var (
	entryFile   string
	seedReplace bool
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Reference table commands",
}

var listEntriesCmd = &cobra.Command{
	Use:   "list [kind]",
	Short: "List a table: skills, weapons, rituals, equipment, protections, ammunition, modifications, origins",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		client, cleanup, err := createCatalogClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := requestContext()
		defer cancel()

		resp, err := client.ListEntries(ctx, &apiv1alpha1.ListEntriesRequest{Kind: args[0]})
		if err != nil {
			return fmt.Errorf("failed to list %s: %w", args[0], err)
		}

		if jsonOutput {
			return printJSON(resp.Entries)
		}

		fmt.Printf("Found %d %s\n\n", len(resp.Entries), args[0])
		for _, entry := range resp.Entries {
			fmt.Printf("  - %s\n", entry.Name)
		}
		return nil
	},
}

var getEntryCmd = &cobra.Command{
	Use:   "get [kind] [name]",
	Short: "Show one row",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		client, cleanup, err := createCatalogClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := requestContext()
		defer cancel()

		resp, err := client.GetEntry(ctx, &apiv1alpha1.GetEntryRequest{Kind: args[0], Name: args[1]})
		if err != nil {
			return fmt.Errorf("failed to get %s: %w", args[1], err)
		}
		return printJSON(resp.Entry.Entry)
	},
}

var putEntryCmd = &cobra.Command{
	Use:   "put [kind]",
	Short: "Create or replace a row from a JSON file (game master)",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		data, err := os.ReadFile(entryFile)
		if err != nil {
			return fmt.Errorf("failed to read entry: %w", err)
		}
		if !json.Valid(data) {
			return fmt.Errorf("%s is not valid JSON", entryFile)
		}

		client, cleanup, err := createCatalogClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := requestContext()
		defer cancel()

		resp, err := client.PutEntry(ctx, &apiv1alpha1.PutEntryRequest{Kind: args[0], Entry: data})
		if err != nil {
			return fmt.Errorf("failed to store entry: %w", err)
		}
		fmt.Printf("✅ Stored %s in %s\n", resp.Entry.Name, resp.Entry.Kind)
		return nil
	},
}

var deleteEntryCmd = &cobra.Command{
	Use:   "delete [kind] [name]",
	Short: "Remove a row (game master)",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		client, cleanup, err := createCatalogClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := requestContext()
		defer cancel()

		resp, err := client.DeleteEntry(ctx, &apiv1alpha1.DeleteEntryRequest{Kind: args[0], Name: args[1]})
		if err != nil {
			return fmt.Errorf("failed to delete entry: %w", err)
		}
		fmt.Println(resp.Message)
		return nil
	},
}

var seedCatalogCmd = &cobra.Command{
	Use:   "seed",
	Short: "Reload the server's seed files (game master)",
	RunE: func(_ *cobra.Command, _ []string) error {
		client, cleanup, err := createCatalogClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := requestContext()
		defer cancel()

		resp, err := client.SeedCatalog(ctx, &apiv1alpha1.SeedCatalogRequest{Replace: seedReplace})
		if err != nil {
			return fmt.Errorf("failed to seed catalog: %w", err)
		}

		kinds := make([]string, 0, len(resp.Counts))
		for kind := range resp.Counts {
			kinds = append(kinds, kind)
		}
		sort.Strings(kinds)
		for _, kind := range kinds {
			fmt.Printf("  %s: %d\n", kind, resp.Counts[kind])
		}
		return nil
	},
}

func init() {
	putEntryCmd.Flags().StringVar(&entryFile, "file", "", "JSON file holding the row (required)")
	_ = putEntryCmd.MarkFlagRequired("file") // nolint:errcheck // safe to ignore in init

	seedCatalogCmd.Flags().BoolVar(&seedReplace, "replace", false, "Clear each seeded table first")

	catalogCmd.AddCommand(listEntriesCmd, getEntryCmd, putEntryCmd, deleteEntryCmd, seedCatalogCmd)
}
