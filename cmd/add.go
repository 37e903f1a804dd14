package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pders01/mealplan/internal/models"
)

var (
	addMealType string
	addDay      string
	addCook     string
	addYes      bool
)

var addCmd = &cobra.Command{
	Use:   "add <description>",
	Short: "Add a meal to the week's plan",
	Long: `Add a meal to the current week. The day can be a weekday name,
resolved against the configured week start, or an explicit date.

Examples:
  mealplan add "Bacon and Eggs" --meal-type breakfast --day monday --cook Erik
  mealplan add "Tomato Soup" -t lunch -d 2026-08-28 -c Bob

Adding a second meal for the same day and meal type asks before
replacing the existing entry.`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVarP(&addMealType, "meal-type", "t", "", "Meal type: breakfast|lunch|dinner|snack")
	addCmd.Flags().StringVarP(&addDay, "day", "d", "", "Day name or YYYY-MM-DD date")
	addCmd.Flags().StringVarP(&addCook, "cook", "c", "", "Person responsible for the meal")
	addCmd.Flags().BoolVarP(&addYes, "yes", "y", false, "Answer yes to confirmation prompts")
	addCmd.MarkFlagRequired("meal-type")
	addCmd.MarkFlagRequired("day")
	addCmd.MarkFlagRequired("cook")
}

func runAdd(cmd *cobra.Command, args []string) error {
	eng, err := newEngine()
	if err != nil {
		return err
	}

	mealType, err := models.ParseMealType(addMealType)
	if err != nil {
		return err
	}

	day, err := models.ResolveDay(addDay, eng.Week)
	if err != nil {
		return err
	}

	meal, err := models.NewMeal(mealType, day, addCook, args[0])
	if err != nil {
		return err
	}

	result, err := eng.Add(meal, addYes)
	if err != nil {
		return err
	}

	if result.NeedsConfirmation {
		if !confirm(result.Prompt) {
			return fmt.Errorf("meal not added")
		}
		if result, err = eng.Add(meal, true); err != nil {
			return err
		}
	}

	fmt.Printf("✓ Added %s\n", meal)
	fmt.Printf("  Week now has %d meal(s)\n", len(result.Plan.Meals))

	return nil
}
