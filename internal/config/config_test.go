package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestDefaultWeekStart(t *testing.T) {
	tests := []struct {
		now  string
		want string
	}{
		{"2026-08-23", "2026-08-23"}, // Sunday maps to itself
		{"2026-08-24", "2026-08-23"}, // Monday
		{"2026-08-29", "2026-08-23"}, // Saturday
		{"2026-08-30", "2026-08-30"}, // next Sunday
	}

	for _, tt := range tests {
		now, err := time.ParseInLocation("2006-01-02", tt.now, time.UTC)
		if err != nil {
			t.Fatal(err)
		}
		got := DefaultWeekStart(now.Add(13 * time.Hour))
		if got.Format("2006-01-02") != tt.want {
			t.Errorf("DefaultWeekStart(%s) = %s, want %s", tt.now, got.Format("2006-01-02"), tt.want)
		}
	}
}

func TestWeekStartFromViper(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("current_week_start_date", "2026-08-23")
	week, err := WeekStart()
	if err != nil {
		t.Fatalf("WeekStart: %v", err)
	}
	if week.Format("2006-01-02") != "2026-08-23" {
		t.Errorf("WeekStart = %s", week.Format("2006-01-02"))
	}

	viper.Set("current_week_start_date", "not a date")
	if _, err := WeekStart(); err == nil {
		t.Error("invalid configured date should error")
	}
}

func TestDefaultTOML(t *testing.T) {
	week, _ := time.ParseInLocation("2006-01-02", "2026-08-23", time.UTC)
	content := DefaultTOML("/data/plans", week)

	for _, want := range []string{
		`meal_plan_storage_path = "/data/plans"`,
		`current_week_start_date = "2026-08-23"`,
		"[policy]",
		"reject_past_dates = false",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("default config missing %q:\n%s", want, content)
		}
	}
}
