// Package config exposes the viper-backed settings for the tool.
// Values are read once per invocation and passed down; nothing here
// mutates configuration except the rendered default for config init.
package config

import (
	"fmt"
	"time"

	"github.com/pders01/mealplan/internal/models"
	"github.com/spf13/viper"
)

// StoragePath returns the root directory for all plan files.
func StoragePath() string {
	return viper.GetString("meal_plan_storage_path")
}

// RejectPastDates reports whether add should refuse days before today.
func RejectPastDates() bool {
	return viper.GetBool("policy.reject_past_dates")
}

// WeekStart returns the Sunday that begins the current plan week. An
// unset value defaults to the most recent Sunday on or before today.
func WeekStart() (time.Time, error) {
	raw := viper.GetString("current_week_start_date")
	if raw == "" {
		return DefaultWeekStart(time.Now()), nil
	}
	week, err := models.ParseDate(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid current_week_start_date %q: %w", raw, err)
	}
	return week, nil
}

// DefaultWeekStart returns the most recent Sunday on or before now.
func DefaultWeekStart(now time.Time) time.Time {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// DefaultTOML renders the config file written by `mealplan config init`.
func DefaultTOML(storagePath string, weekStart time.Time) string {
	return fmt.Sprintf(`meal_plan_storage_path = %q
current_week_start_date = %q

[policy]
reject_past_dates = false
`, storagePath, weekStart.Format(models.DateFormat))
}
