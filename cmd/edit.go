package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pders01/mealplan/internal/models"
)

var (
	editMealType    string
	editDay         string
	editCook        string
	editDescription string
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit an existing meal",
	Long: `Update the cook and/or description of a meal. The meal is located
by meal type and day; fields you don't pass keep their current values.

Examples:
  mealplan edit -t lunch -d friday --description "New dish"
  mealplan edit -t dinner -d 2026-08-25 --cook Alice`,
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().StringVarP(&editMealType, "meal-type", "t", "", "Meal type: breakfast|lunch|dinner|snack")
	editCmd.Flags().StringVarP(&editDay, "day", "d", "", "Day name or YYYY-MM-DD date")
	editCmd.Flags().StringVarP(&editCook, "cook", "c", "", "New cook")
	editCmd.Flags().StringVar(&editDescription, "description", "", "New description")
	editCmd.MarkFlagRequired("meal-type")
	editCmd.MarkFlagRequired("day")
}

func runEdit(cmd *cobra.Command, args []string) error {
	eng, err := newEngine()
	if err != nil {
		return err
	}

	mealType, err := models.ParseMealType(editMealType)
	if err != nil {
		return err
	}

	day, err := models.ResolveDay(editDay, eng.Week)
	if err != nil {
		return err
	}

	var cook, description *string
	if cmd.Flags().Changed("cook") {
		cook = &editCook
	}
	if cmd.Flags().Changed("description") {
		description = &editDescription
	}
	if cook == nil && description == nil {
		return fmt.Errorf("nothing to edit (pass --cook and/or --description)")
	}

	result, err := eng.Edit(mealType, day, cook, description)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Updated %s\n", *result.Plan.Find(mealType, day))

	return nil
}
