package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/alpkeskin/gotoon"
	"github.com/spf13/cobra"

	"github.com/pders01/mealplan/internal/engine"
)

var (
	syncSource string
	syncJSON   bool
	syncToon   bool
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reconcile the markdown and JSON files",
	Long: `Bring the week's markdown and JSON files back in sync after one of
them was edited by hand. The more recently modified file wins and the
other is regenerated from it; nothing is merged field by field.

Examples:
  mealplan sync
  mealplan sync --source markdown
  mealplan sync --json`,
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)

	syncCmd.Flags().StringVar(&syncSource, "source", "auto", "Source of truth: auto|json|markdown")
	syncCmd.Flags().BoolVar(&syncJSON, "json", false, "Output as JSON")
	syncCmd.Flags().BoolVar(&syncToon, "toon", false, "Output in LLM-friendly toon format")
}

func runSync(cmd *cobra.Command, args []string) error {
	eng, err := newEngine()
	if err != nil {
		return err
	}

	source, err := engine.ParseSource(syncSource)
	if err != nil {
		return err
	}

	status, err := eng.Sync(source)
	if err != nil {
		return err
	}

	if syncJSON {
		output, err := json.MarshalIndent(status, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	if syncToon {
		output, err := gotoon.Encode(status)
		if err != nil {
			return fmt.Errorf("failed to encode Toon: %w", err)
		}
		fmt.Println(output)
		return nil
	}

	switch {
	case status.Regenerated != "":
		fmt.Printf("✓ Synced week of %s: regenerated %s from %s\n", status.WeekStart, status.Regenerated, status.Authority)
	default:
		fmt.Printf("✓ Week of %s is already in sync\n", status.WeekStart)
	}

	return nil
}
