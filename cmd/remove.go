package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pders01/mealplan/internal/models"
)

var (
	removeMealType string
	removeDay      string
	removeYes      bool
)

var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a meal from the week's plan",
	Long: `Remove the meal matching a meal type and day.

Removing the last remaining meal of the week asks for confirmation.

Examples:
  mealplan remove -t dinner -d tuesday
  mealplan remove -t snack -d 2026-08-26 --yes`,
	RunE: runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)

	removeCmd.Flags().StringVarP(&removeMealType, "meal-type", "t", "", "Meal type: breakfast|lunch|dinner|snack")
	removeCmd.Flags().StringVarP(&removeDay, "day", "d", "", "Day name or YYYY-MM-DD date")
	removeCmd.Flags().BoolVarP(&removeYes, "yes", "y", false, "Answer yes to confirmation prompts")
	removeCmd.MarkFlagRequired("meal-type")
	removeCmd.MarkFlagRequired("day")
}

func runRemove(cmd *cobra.Command, args []string) error {
	eng, err := newEngine()
	if err != nil {
		return err
	}

	mealType, err := models.ParseMealType(removeMealType)
	if err != nil {
		return err
	}

	day, err := models.ResolveDay(removeDay, eng.Week)
	if err != nil {
		return err
	}

	result, err := eng.Remove(mealType, day, removeYes)
	if err != nil {
		return err
	}

	if result.NeedsConfirmation {
		if !confirm(result.Prompt) {
			return fmt.Errorf("meal not removed")
		}
		if result, err = eng.Remove(mealType, day, true); err != nil {
			return err
		}
	}

	fmt.Printf("✓ Removed %s meal on %s\n", mealType, day.Format(models.DateFormat))
	fmt.Printf("  Week now has %d meal(s)\n", len(result.Plan.Meals))

	return nil
}
