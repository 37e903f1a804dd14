package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pders01/mealplan/internal/config"
	"github.com/pders01/mealplan/internal/engine"
	"github.com/pders01/mealplan/internal/store"
)

var (
	cfgFile      string
	pathOverride string
)

// confirmInput is swapped out by tests that exercise prompt paths.
var confirmInput io.Reader = os.Stdin

var rootCmd = &cobra.Command{
	Use:   "mealplan",
	Short: "Manage a weekly meal plan stored as a markdown/JSON file pair",
	Long: `mealplan organizes one week of meals in two independently editable
files, a markdown document and a JSON document, and keeps them in sync:
  - add, edit, and remove meals from the command line
  - edit either file by hand and reconcile with 'mealplan sync'
  - export the week to an iCalendar file

Both files live under the configured storage root, one directory per
week. The more recently modified file wins when they disagree.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/mealplan/config.toml)")
	rootCmd.PersistentFlags().StringVar(&pathOverride, "path", "", "override the meal plan storage root for this invocation")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		configDir := filepath.Join(home, ".config", "mealplan")
		viper.AddConfigPath(configDir)
		viper.SetConfigType("toml")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()

	// Set defaults
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	viper.SetDefault("meal_plan_storage_path", filepath.Join(home, ".config", "mealplan", "plans"))
	viper.SetDefault("current_week_start_date", "")
	viper.SetDefault("policy.reject_past_dates", false)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	if pathOverride != "" {
		viper.Set("meal_plan_storage_path", pathOverride)
	}
}

// newEngine builds the reconciliation engine for the configured week
// and storage root.
func newEngine() (*engine.Engine, error) {
	week, err := config.WeekStart()
	if err != nil {
		return nil, err
	}

	st := store.New(afero.NewOsFs(), config.StoragePath())
	eng := engine.New(st, week)
	eng.RejectPastDates = config.RejectPastDates()
	return eng, nil
}

// confirm asks a y/n question on the terminal.
func confirm(prompt string) bool {
	fmt.Printf("%s (y/n) ", prompt)
	reader := bufio.NewReader(confirmInput)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(line), "y")
}
