package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/pders01/mealplan/internal/config"
)

var configInitYes bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the mealplan configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Create the configuration file and the meal plan storage root.

The config file holds the storage root path and the current week's
start date (a Sunday). Re-running asks before overwriting an existing
file.`,
	RunE: runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)

	configInitCmd.Flags().BoolVarP(&configInitYes, "yes", "y", false, "Answer yes to confirmation prompts")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	configPath := cfgFile
	if configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		configPath = filepath.Join(home, ".config", "mealplan", "config.toml")
	}

	if _, err := os.Stat(configPath); err == nil {
		if !configInitYes && !confirm(fmt.Sprintf("Configuration file already exists at %s. Overwrite?", configPath)) {
			return fmt.Errorf("configuration initialization cancelled")
		}
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	storagePath := config.StoragePath()
	if pathOverride != "" {
		storagePath = pathOverride
	}
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return fmt.Errorf("failed to create storage directory: %w", err)
	}

	weekStart := config.DefaultWeekStart(time.Now())
	content := config.DefaultTOML(storagePath, weekStart)
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("✓ Created config: %s\n", configPath)
	fmt.Printf("  Storage path:    %s\n", storagePath)
	fmt.Printf("  Week start date: %s\n", weekStart.Format("2006-01-02"))

	return nil
}
