// Package testutil provides an in-memory meal plan store and plan
// fixtures for tests.
package testutil

import (
	"testing"
	"time"

	"github.com/spf13/afero"

	"github.com/pders01/mealplan/internal/models"
	"github.com/pders01/mealplan/internal/store"
)

// Week is the fixture week start used across tests (a Sunday).
const Week = "2026-08-23"

// TempStore wraps a store over an in-memory filesystem.
type TempStore struct {
	Fs    afero.Fs
	Store *store.Store
	Week  time.Time
	T     *testing.T
}

// NewTempStore creates a store over afero's memory filesystem rooted
// at /plans, with the fixture week selected.
func NewTempStore(t *testing.T) *TempStore {
	t.Helper()

	fs := afero.NewMemMapFs()
	return &TempStore{
		Fs:    fs,
		Store: store.New(fs, "/plans"),
		Week:  Date(t, Week),
		T:     t,
	}
}

// WriteMarkdown writes content as the week's markdown file.
func (ts *TempStore) WriteMarkdown(content string) {
	ts.T.Helper()
	if err := ts.Store.Write(ts.Store.MarkdownPath(ts.Week), []byte(content)); err != nil {
		ts.T.Fatalf("failed to write markdown: %v", err)
	}
}

// WriteJSON writes content as the week's JSON file.
func (ts *TempStore) WriteJSON(content string) {
	ts.T.Helper()
	if err := ts.Store.Write(ts.Store.JSONPath(ts.Week), []byte(content)); err != nil {
		ts.T.Fatalf("failed to write json: %v", err)
	}
}

// Touch sets a file's modification time so tests can control which
// side of the pair is newer.
func (ts *TempStore) Touch(path string, mtime time.Time) {
	ts.T.Helper()
	if err := ts.Fs.Chtimes(path, mtime, mtime); err != nil {
		ts.T.Fatalf("failed to set mtime on %s: %v", path, err)
	}
}

// ReadFile returns a file's content.
func (ts *TempStore) ReadFile(path string) string {
	ts.T.Helper()
	data, err := ts.Store.Read(path)
	if err != nil {
		ts.T.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

// Date parses a YYYY-MM-DD date or fails the test.
func Date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := models.ParseDate(s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

// MustMeal builds a meal or fails the test.
func MustMeal(t *testing.T, mealType models.MealType, day, cook, description string) models.Meal {
	t.Helper()
	meal, err := models.NewMeal(mealType, Date(t, day), cook, description)
	if err != nil {
		t.Fatalf("bad test meal: %v", err)
	}
	return meal
}

// SamplePlan returns a plan for the fixture week with three meals.
func SamplePlan(t *testing.T) *models.MealPlan {
	t.Helper()
	plan := models.NewPlan(Date(t, Week))
	plan.Insert(MustMeal(t, models.Breakfast, "2026-08-24", "Erik", "Bacon and Eggs"))
	plan.Insert(MustMeal(t, models.Dinner, "2026-08-25", "Alice", "Spaghetti Bolognese"))
	plan.Insert(MustMeal(t, models.Lunch, "2026-08-28", "Bob", "Tomato Soup"))
	return plan
}
