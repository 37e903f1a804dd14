package models

import (
	"errors"
	"testing"
	"time"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func TestParseMealType(t *testing.T) {
	tests := []struct {
		input string
		want  MealType
		ok    bool
	}{
		{"breakfast", Breakfast, true},
		{"Breakfast", Breakfast, true},
		{"LUNCH", Lunch, true},
		{"dinner", Dinner, true},
		{"Snack", Snack, true},
		{"brunch", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, err := ParseMealType(tt.input)
		if tt.ok {
			if err != nil {
				t.Errorf("ParseMealType(%q): unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseMealType(%q) = %q, want %q", tt.input, got, tt.want)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidMealType) {
			t.Errorf("ParseMealType(%q): want ErrInvalidMealType, got %v", tt.input, err)
		}
	}
}

func TestMealTypeRankOrder(t *testing.T) {
	if Breakfast.Rank() >= Lunch.Rank() || Lunch.Rank() >= Dinner.Rank() || Dinner.Rank() >= Snack.Rank() {
		t.Errorf("meal type ranks out of order: %d %d %d %d",
			Breakfast.Rank(), Lunch.Rank(), Dinner.Rank(), Snack.Rank())
	}
}

func TestResolveDayWeekdayNames(t *testing.T) {
	weekStart := date(t, "2026-08-23") // a Sunday

	tests := []struct {
		input string
		want  string
	}{
		{"sunday", "2026-08-23"},
		{"Monday", "2026-08-24"},
		{"WEDNESDAY", "2026-08-26"},
		{"saturday", "2026-08-29"},
	}

	for _, tt := range tests {
		got, err := ResolveDay(tt.input, weekStart)
		if err != nil {
			t.Fatalf("ResolveDay(%q): %v", tt.input, err)
		}
		if !got.Equal(date(t, tt.want)) {
			t.Errorf("ResolveDay(%q) = %s, want %s", tt.input, got.Format(DateFormat), tt.want)
		}
	}
}

func TestResolveDayNonSundayWeekStart(t *testing.T) {
	// Day names still resolve within the week beginning at weekStart,
	// even when that start is not a Sunday.
	weekStart := date(t, "2026-08-26") // a Wednesday

	got, err := ResolveDay("monday", weekStart)
	if err != nil {
		t.Fatalf("ResolveDay: %v", err)
	}
	if want := date(t, "2026-08-31"); !got.Equal(want) {
		t.Errorf("ResolveDay(monday) = %s, want %s", got.Format(DateFormat), want.Format(DateFormat))
	}
}

func TestResolveDayExplicitDate(t *testing.T) {
	weekStart := date(t, "2026-08-23")

	got, err := ResolveDay("2026-08-28", weekStart)
	if err != nil {
		t.Fatalf("ResolveDay: %v", err)
	}
	if !got.Equal(date(t, "2026-08-28")) {
		t.Errorf("ResolveDay(2026-08-28) = %s", got.Format(DateFormat))
	}
}

func TestResolveDayInvalid(t *testing.T) {
	weekStart := date(t, "2026-08-23")

	for _, input := range []string{"someday", "2026-13-40", "", "mon day"} {
		if _, err := ResolveDay(input, weekStart); !errors.Is(err, ErrInvalidDay) {
			t.Errorf("ResolveDay(%q): want ErrInvalidDay, got %v", input, err)
		}
	}
}

func TestNewMeal(t *testing.T) {
	day := date(t, "2026-08-24")

	meal, err := NewMeal(Breakfast, day, "  Erik  ", " Bacon and Eggs ")
	if err != nil {
		t.Fatalf("NewMeal: %v", err)
	}
	if meal.Cook != "Erik" || meal.Description != "Bacon and Eggs" {
		t.Errorf("NewMeal did not trim fields: %q / %q", meal.Cook, meal.Description)
	}

	if _, err := NewMeal(Breakfast, day, "", "Bacon"); !errors.Is(err, ErrEmptyField) {
		t.Errorf("empty cook: want ErrEmptyField, got %v", err)
	}
	if _, err := NewMeal(Breakfast, day, "Erik", "   "); !errors.Is(err, ErrEmptyField) {
		t.Errorf("blank description: want ErrEmptyField, got %v", err)
	}
}

func TestNewMealRejectsControlCharacters(t *testing.T) {
	day := date(t, "2026-08-24")

	tests := []struct {
		name        string
		cook        string
		description string
	}{
		{"newline in description", "Erik", "Tacos\nwith salsa"},
		{"newline in cook", "Erik\nand Alice", "Tacos"},
		{"carriage return", "Erik", "Tacos\rwith salsa"},
		{"tab", "Erik", "Tacos\twith salsa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewMeal(Dinner, day, tt.cook, tt.description); !errors.Is(err, ErrInvalidField) {
				t.Errorf("want ErrInvalidField, got %v", err)
			}
		})
	}
}
