package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pders01/mealplan/internal/ical"
)

var (
	exportIcalOutput string
	exportJSONOutput string
)

var exportIcalCmd = &cobra.Command{
	Use:   "export-ical",
	Short: "Export the week's plan as an iCalendar file",
	Long: `Write one calendar event per meal. Breakfast, lunch, snack, and
dinner get fixed one-hour slots at 08:00, 12:00, 15:00, and 18:00.

The export is one-way: the .ics file is never read back.

Examples:
  mealplan export-ical
  mealplan export-ical --output ~/week.ics`,
	RunE: runExportIcal,
}

var exportJSONCmd = &cobra.Command{
	Use:   "export-json",
	Short: "Export the week's plan as JSON to a chosen path",
	Long: `Write a copy of the week's plan in JSON form outside the storage
root, for sharing or scripting.

Example:
  mealplan export-json --output /tmp/week.json`,
	RunE: runExportJSON,
}

func init() {
	rootCmd.AddCommand(exportIcalCmd)
	rootCmd.AddCommand(exportJSONCmd)

	exportIcalCmd.Flags().StringVarP(&exportIcalOutput, "output", "o", "", "Output file path (default: <week dir>/mealplan.ics)")
	exportJSONCmd.Flags().StringVarP(&exportJSONOutput, "output", "o", "", "Output file path")
	exportJSONCmd.MarkFlagRequired("output")
}

func runExportIcal(cmd *cobra.Command, args []string) error {
	eng, err := newEngine()
	if err != nil {
		return err
	}

	plan, err := eng.Plan()
	if err != nil {
		return err
	}

	output := exportIcalOutput
	if output == "" {
		output = eng.Store.ICalPath(eng.Week)
	}

	if err := eng.Store.Write(output, ical.NewExporter().Render(plan)); err != nil {
		return err
	}

	fmt.Printf("✓ Exported %d meal(s) to %s\n", len(plan.Meals), output)

	return nil
}

func runExportJSON(cmd *cobra.Command, args []string) error {
	eng, err := newEngine()
	if err != nil {
		return err
	}

	plan, err := eng.Plan()
	if err != nil {
		return err
	}

	data, err := eng.JSONCodec().Render(plan)
	if err != nil {
		return err
	}

	if err := eng.Store.Write(exportJSONOutput, data); err != nil {
		return err
	}

	fmt.Printf("✓ Exported %d meal(s) to %s\n", len(plan.Meals), exportJSONOutput)

	return nil
}
