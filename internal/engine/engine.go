// Package engine keeps the markdown and JSON representations of a
// week's meal plan consistent, and applies add/edit/remove mutations
// against whichever side is authoritative.
package engine

import (
	"fmt"
	"time"

	"github.com/pders01/mealplan/internal/codec"
	"github.com/pders01/mealplan/internal/models"
	"github.com/pders01/mealplan/internal/store"
)

// Source selects which file drives a sync.
type Source string

const (
	SourceAuto     Source = "auto"
	SourceJSON     Source = "json"
	SourceMarkdown Source = "markdown"
)

// ParseSource validates a user-supplied source name. "md" is accepted
// as shorthand for markdown.
func ParseSource(s string) (Source, error) {
	switch Source(s) {
	case SourceAuto, SourceJSON, SourceMarkdown:
		return Source(s), nil
	case "md":
		return SourceMarkdown, nil
	default:
		return "", fmt.Errorf("invalid source %q (must be auto, json, or markdown)", s)
	}
}

// State describes the file pair before a sync.
type State string

const (
	StateBothMissing  State = "both-missing"
	StateMarkdownOnly State = "markdown-only"
	StateJSONOnly     State = "json-only"
	StateInSync       State = "in-sync"
	StateConflicting  State = "conflicting"
)

// SyncStatus reports what a sync found and did.
type SyncStatus struct {
	WeekStart   string `json:"week_start_date"`
	State       State  `json:"state"`
	Authority   string `json:"authority,omitempty"`
	Regenerated string `json:"regenerated,omitempty"`
}

// Result is the outcome of a mutation. When NeedsConfirmation is set
// the mutation was not applied; the caller prompts and retries with
// confirmed=true. Separating the decision from the prompt keeps the
// engine free of any I/O beyond the plan files.
type Result struct {
	Plan              *models.MealPlan
	NeedsConfirmation bool
	Prompt            string
	Conflict          *models.Meal
}

// Engine reconciles one week's file pair. State is rebuilt from the
// files on every call; nothing persists across invocations.
type Engine struct {
	Store *store.Store
	Week  time.Time

	// RejectPastDates makes Add fail for days before today.
	RejectPastDates bool

	// Now is the clock used for past-date policing; nil means time.Now.
	Now func() time.Time

	md codec.Codec
	js codec.Codec
}

func New(st *store.Store, week time.Time) *Engine {
	return &Engine{Store: st, Week: week, md: codec.Markdown{}, js: codec.JSON{}}
}

// JSONCodec exposes the engine's JSON codec for export commands.
func (e *Engine) JSONCodec() codec.Codec { return e.js }

func (e *Engine) clock() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// Plan loads the authoritative plan for the week. When both files are
// missing it returns a fresh empty plan; when both exist the more
// recently modified file wins. A parse failure on either side aborts,
// so a mutation never overwrites a document it could not read.
func (e *Engine) Plan() (*models.MealPlan, error) {
	mdPath := e.Store.MarkdownPath(e.Week)
	jsPath := e.Store.JSONPath(e.Week)

	mdExists, err := e.Store.Exists(mdPath)
	if err != nil {
		return nil, err
	}
	jsExists, err := e.Store.Exists(jsPath)
	if err != nil {
		return nil, err
	}

	switch {
	case !mdExists && !jsExists:
		return models.NewPlan(e.Week), nil
	case mdExists && !jsExists:
		return e.parse(e.md, mdPath)
	case jsExists && !mdExists:
		return e.parse(e.js, jsPath)
	}

	mdPlan, err := e.parse(e.md, mdPath)
	if err != nil {
		return nil, err
	}
	jsPlan, err := e.parse(e.js, jsPath)
	if err != nil {
		return nil, err
	}

	mdTime, err := e.Store.ModTime(mdPath)
	if err != nil {
		return nil, err
	}
	jsTime, err := e.Store.ModTime(jsPath)
	if err != nil {
		return nil, err
	}
	if mdTime.After(jsTime) {
		return mdPlan, nil
	}
	// Timestamp tie: JSON wins for reads. Sync treats the same state
	// as in sync and rewrites nothing.
	return jsPlan, nil
}

// Sync regenerates the stale side of the file pair from the
// authoritative side. With SourceAuto the newer file wins; identical
// timestamps or semantically equal plans mean nothing is rewritten.
// An explicit source skips timestamp comparison entirely, which also
// repairs a stale side that no longer parses.
func (e *Engine) Sync(source Source) (*SyncStatus, error) {
	mdPath := e.Store.MarkdownPath(e.Week)
	jsPath := e.Store.JSONPath(e.Week)

	status := &SyncStatus{WeekStart: e.Week.Format(models.DateFormat)}

	mdExists, err := e.Store.Exists(mdPath)
	if err != nil {
		return nil, err
	}
	jsExists, err := e.Store.Exists(jsPath)
	if err != nil {
		return nil, err
	}

	if !mdExists && !jsExists {
		status.State = StateBothMissing
		return status, fmt.Errorf("no meal plan files for week of %s: %w", status.WeekStart, store.ErrNotFound)
	}

	regenerate := func(from codec.Codec, fromPath string, to codec.Codec, toPath string) error {
		plan, err := e.parse(from, fromPath)
		if err != nil {
			return err
		}
		data, err := to.Render(plan)
		if err != nil {
			return fmt.Errorf("failed to render %s: %w", to.Name(), err)
		}
		status.Authority = from.Name()
		status.Regenerated = to.Name()
		return e.Store.Write(toPath, data)
	}

	switch source {
	case SourceJSON:
		if !jsExists {
			return status, fmt.Errorf("cannot sync from json: %w", store.ErrNotFound)
		}
		status.State = e.detectState(mdExists, jsExists)
		return status, regenerate(e.js, jsPath, e.md, mdPath)
	case SourceMarkdown:
		if !mdExists {
			return status, fmt.Errorf("cannot sync from markdown: %w", store.ErrNotFound)
		}
		status.State = e.detectState(mdExists, jsExists)
		return status, regenerate(e.md, mdPath, e.js, jsPath)
	}

	switch {
	case mdExists && !jsExists:
		status.State = StateMarkdownOnly
		return status, regenerate(e.md, mdPath, e.js, jsPath)
	case jsExists && !mdExists:
		status.State = StateJSONOnly
		return status, regenerate(e.js, jsPath, e.md, mdPath)
	}

	// Both present. Parse both up front: a sync never writes anything
	// derived from a document it could not fully parse.
	mdPlan, err := e.parse(e.md, mdPath)
	if err != nil {
		return nil, err
	}
	jsPlan, err := e.parse(e.js, jsPath)
	if err != nil {
		return nil, err
	}

	if mdPlan.Equal(jsPlan) {
		status.State = StateInSync
		return status, nil
	}

	mdTime, err := e.Store.ModTime(mdPath)
	if err != nil {
		return nil, err
	}
	jsTime, err := e.Store.ModTime(jsPath)
	if err != nil {
		return nil, err
	}

	// Identical timestamps with differing content: treat as in sync
	// rather than guess an authority and rewrite.
	if mdTime.Equal(jsTime) {
		status.State = StateInSync
		return status, nil
	}

	status.State = StateConflicting
	if mdTime.After(jsTime) {
		return status, regenerate(e.md, mdPath, e.js, jsPath)
	}
	return status, regenerate(e.js, jsPath, e.md, mdPath)
}

func (e *Engine) detectState(mdExists, jsExists bool) State {
	switch {
	case mdExists && jsExists:
		return StateConflicting
	case mdExists:
		return StateMarkdownOnly
	case jsExists:
		return StateJSONOnly
	default:
		return StateBothMissing
	}
}

// Add inserts a meal into the authoritative plan and writes both
// files. A meal sharing (type, day) with an existing entry needs
// confirmation; once confirmed it replaces the old entry.
func (e *Engine) Add(meal models.Meal, confirmed bool) (*Result, error) {
	if !meal.Type.Valid() {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidMealType, meal.Type)
	}

	plan, err := e.Plan()
	if err != nil {
		return nil, err
	}

	if !plan.ContainsDay(meal.Day) {
		return nil, fmt.Errorf("%w: %s is outside the week of %s", models.ErrInvalidDay,
			meal.Day.Format(models.DateFormat), plan.WeekStart.Format(models.DateFormat))
	}

	if e.RejectPastDates {
		today := truncateToDay(e.clock())
		if meal.Day.Before(today) {
			return nil, fmt.Errorf("%w: %s is in the past", models.ErrInvalidDay, meal.Day.Format(models.DateFormat))
		}
	}

	if existing := plan.Find(meal.Type, meal.Day); existing != nil && !confirmed {
		conflict := *existing
		return &Result{
			NeedsConfirmation: true,
			Conflict:          &conflict,
			Prompt: fmt.Sprintf("A %s meal already exists for %s (%s by %s). Replace it?",
				meal.Type, meal.Day.Format(models.DateFormat), conflict.Description, conflict.Cook),
		}, nil
	}

	plan.Insert(meal)
	if err := e.writeBoth(plan); err != nil {
		return nil, err
	}
	return &Result{Plan: plan}, nil
}

// Edit updates the cook and/or description of the meal matching
// (mealType, day). Nil fields keep their prior values. There is no
// create-on-edit: a missing meal is an error.
func (e *Engine) Edit(mealType models.MealType, day time.Time, cook, description *string) (*Result, error) {
	plan, err := e.Plan()
	if err != nil {
		return nil, err
	}

	meal := plan.Find(mealType, day)
	if meal == nil {
		return nil, fmt.Errorf("%w: no %s meal for %s", models.ErrMealNotFound, mealType, day.Format(models.DateFormat))
	}

	newCook := meal.Cook
	if cook != nil {
		newCook = *cook
	}
	newDescription := meal.Description
	if description != nil {
		newDescription = *description
	}

	updated, err := models.NewMeal(mealType, day, newCook, newDescription)
	if err != nil {
		return nil, err
	}
	*meal = updated

	if err := e.writeBoth(plan); err != nil {
		return nil, err
	}
	return &Result{Plan: plan}, nil
}

// Remove deletes the meal matching (mealType, day). Removing the last
// meal of the week needs confirmation.
func (e *Engine) Remove(mealType models.MealType, day time.Time, confirmed bool) (*Result, error) {
	plan, err := e.Plan()
	if err != nil {
		return nil, err
	}

	meal := plan.Find(mealType, day)
	if meal == nil {
		return nil, fmt.Errorf("%w: no %s meal for %s", models.ErrMealNotFound, mealType, day.Format(models.DateFormat))
	}

	if len(plan.Meals) == 1 && !confirmed {
		return &Result{
			NeedsConfirmation: true,
			Prompt:            "This is the last meal in the plan. Remove it anyway?",
		}, nil
	}

	plan.Remove(mealType, day)
	if err := e.writeBoth(plan); err != nil {
		return nil, err
	}
	return &Result{Plan: plan}, nil
}

// writeBoth renders both representations before touching either file,
// so a render failure leaves the pair untouched.
func (e *Engine) writeBoth(plan *models.MealPlan) error {
	mdData, err := e.md.Render(plan)
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}
	jsData, err := e.js.Render(plan)
	if err != nil {
		return fmt.Errorf("failed to render json: %w", err)
	}
	if err := e.Store.Write(e.Store.MarkdownPath(e.Week), mdData); err != nil {
		return err
	}
	return e.Store.Write(e.Store.JSONPath(e.Week), jsData)
}

func (e *Engine) parse(c codec.Codec, path string) (*models.MealPlan, error) {
	data, err := e.Store.Read(path)
	if err != nil {
		return nil, err
	}
	plan, err := c.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return plan, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
