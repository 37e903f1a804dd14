package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExportIcalCommand(t *testing.T) {
	dir := setupCmdTest(t)

	if err := addTestMeal(t, "dinner", "monday", "John", "Pasta", false); err != nil {
		t.Fatal(err)
	}

	exportIcalOutput = filepath.Join(dir, "week.ics")
	if err := runExportIcal(exportIcalCmd, nil); err != nil {
		t.Fatalf("export-ical failed: %v", err)
	}

	data, err := os.ReadFile(exportIcalOutput)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	for _, want := range []string{"BEGIN:VCALENDAR", "VERSION:2.0", "BEGIN:VEVENT", "SUMMARY:Dinner: Pasta", "DESCRIPTION:Cook: John", "END:VCALENDAR"} {
		if !strings.Contains(out, want) {
			t.Errorf("ical output missing %q", want)
		}
	}
}

func TestExportIcalDefaultPath(t *testing.T) {
	dir := setupCmdTest(t)

	if err := addTestMeal(t, "lunch", "tuesday", "Bob", "Soup", false); err != nil {
		t.Fatal(err)
	}

	exportIcalOutput = ""
	if err := runExportIcal(exportIcalCmd, nil); err != nil {
		t.Fatalf("export-ical failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "2026-08-23", "mealplan.ics")); err != nil {
		t.Errorf("default export path missing: %v", err)
	}
}

func TestExportJSONCommand(t *testing.T) {
	dir := setupCmdTest(t)

	if err := addTestMeal(t, "snack", "wednesday", "Ann", "Fruit", false); err != nil {
		t.Fatal(err)
	}

	exportJSONOutput = filepath.Join(dir, "exported.json")
	if err := runExportJSON(exportJSONCmd, nil); err != nil {
		t.Fatalf("export-json failed: %v", err)
	}

	data, err := os.ReadFile(exportJSONOutput)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Fruit") {
		t.Errorf("exported json missing meal:\n%s", data)
	}
}
