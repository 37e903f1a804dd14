package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/alpkeskin/gotoon"
	"github.com/spf13/cobra"

	"github.com/pders01/mealplan/internal/models"
)

var (
	showJSON bool
	showToon bool
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current week's meal plan",
	Long: `Display the week's meals grouped by day.

Examples:
  mealplan show
  mealplan show --json
  mealplan show --toon`,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")
	showCmd.Flags().BoolVar(&showToon, "toon", false, "Output in LLM-friendly toon format")
}

type planSummary struct {
	WeekStart  string       `json:"week_start_date"`
	TotalMeals int          `json:"total_meals"`
	Days       []daySummary `json:"days"`
}

type daySummary struct {
	Date    string        `json:"date"`
	Weekday string        `json:"weekday"`
	Meals   []mealSummary `json:"meals"`
}

type mealSummary struct {
	MealType    string `json:"meal_type"`
	Cook        string `json:"cook"`
	Description string `json:"description"`
}

func runShow(cmd *cobra.Command, args []string) error {
	eng, err := newEngine()
	if err != nil {
		return err
	}

	plan, err := eng.Plan()
	if err != nil {
		return err
	}

	summary := planSummary{
		WeekStart:  plan.WeekStart.Format(models.DateFormat),
		TotalMeals: len(plan.Meals),
	}
	for _, day := range plan.Days() {
		ds := daySummary{
			Date:    day.Format(models.DateFormat),
			Weekday: day.Weekday().String(),
			Meals:   []mealSummary{},
		}
		for _, m := range plan.MealsOn(day) {
			ds.Meals = append(ds.Meals, mealSummary{
				MealType:    string(m.Type),
				Cook:        m.Cook,
				Description: m.Description,
			})
		}
		summary.Days = append(summary.Days, ds)
	}

	if showJSON {
		output, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	if showToon {
		output, err := gotoon.Encode(summary)
		if err != nil {
			return fmt.Errorf("failed to encode Toon: %w", err)
		}
		fmt.Println(output)
		return nil
	}

	fmt.Printf("Meal Plan for Week of %s\n", summary.WeekStart)
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println()

	if summary.TotalMeals == 0 {
		fmt.Println("No meals planned yet. Add one with: mealplan add")
		return nil
	}

	for _, ds := range summary.Days {
		if len(ds.Meals) == 0 {
			continue
		}
		fmt.Printf("%s (%s):\n", ds.Weekday, ds.Date)
		for _, m := range ds.Meals {
			fmt.Printf("  %-10s %s (Cook: %s)\n", m.MealType+":", m.Description, m.Cook)
		}
		fmt.Println()
	}

	fmt.Printf("Total meals: %d\n", summary.TotalMeals)

	return nil
}
