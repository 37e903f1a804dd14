package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigInitWritesFile(t *testing.T) {
	dir := setupCmdTest(t)

	cfgFile = filepath.Join(dir, "config.toml")
	configInitYes = true
	t.Cleanup(func() {
		cfgFile = ""
		configInitYes = false
	})

	if err := runConfigInit(configInitCmd, nil); err != nil {
		t.Fatalf("config init failed: %v", err)
	}

	data, err := os.ReadFile(cfgFile)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	for _, want := range []string{"meal_plan_storage_path", "current_week_start_date", "reject_past_dates"} {
		if !strings.Contains(content, want) {
			t.Errorf("config missing key %q:\n%s", want, content)
		}
	}

	if _, err := os.Stat(dir); err != nil {
		t.Errorf("storage root should exist: %v", err)
	}
}

func TestConfigInitDeclinedOverwrite(t *testing.T) {
	dir := setupCmdTest(t)

	cfgFile = filepath.Join(dir, "config.toml")
	configInitYes = false
	t.Cleanup(func() {
		cfgFile = ""
	})

	if err := os.WriteFile(cfgFile, []byte("# existing\n"), 0644); err != nil {
		t.Fatal(err)
	}

	confirmInput = strings.NewReader("n\n")
	if err := runConfigInit(configInitCmd, nil); err == nil {
		t.Fatal("declined overwrite should error")
	}

	data, _ := os.ReadFile(cfgFile)
	if string(data) != "# existing\n" {
		t.Error("declined overwrite must leave the file untouched")
	}
}
