package codec

import (
	"bufio"
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/pders01/mealplan/internal/models"
)

const noMealsMarker = "_No meals planned._"

var (
	mdHeaderRe = regexp.MustCompile(`^# Meal Plan for Week of (\d{4}-\d{2}-\d{2})$`)
	mdDayRe    = regexp.MustCompile(`^## ([A-Za-z]+) \((\d{4}-\d{2}-\d{2})\)$`)
	mdMealRe   = regexp.MustCompile(`^### (.+)$`)
)

// Markdown renders a plan as a structured text document and parses it
// back. The document always has exactly seven day sections in week
// order, with meals in meal type order, so output is deterministic.
type Markdown struct{}

func (Markdown) Name() string { return "markdown" }

func (Markdown) Render(plan *models.MealPlan) ([]byte, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "# Meal Plan for Week of %s\n\n", plan.WeekStart.Format(models.DateFormat))

	for _, day := range plan.Days() {
		fmt.Fprintf(&b, "## %s (%s)\n\n", day.Weekday(), day.Format(models.DateFormat))

		meals := plan.MealsOn(day)
		if len(meals) == 0 {
			b.WriteString(noMealsMarker + "\n\n")
			continue
		}
		for _, m := range meals {
			fmt.Fprintf(&b, "### %s\n\n", m.Type)
			fmt.Fprintf(&b, "- Cook: %s\n", m.Cook)
			fmt.Fprintf(&b, "- Description: %s\n\n", m.Description)
		}
	}

	return []byte(b.String()), nil
}

func (Markdown) Parse(data []byte) (*models.MealPlan, error) {
	var (
		plan     *models.MealPlan
		day      time.Time
		haveDay  bool
		mealType models.MealType
		haveMeal bool
		cook     string
		haveCook bool
		lineNo   int
	)

	fail := func(format string, args ...any) error {
		return fmt.Errorf("%w: line %d: %s", models.ErrMalformedDocument, lineNo, fmt.Sprintf(format, args...))
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" {
			continue
		}

		switch {
		case plan == nil:
			m := mdHeaderRe.FindStringSubmatch(line)
			if m == nil {
				return nil, fail("expected week header, got %q", line)
			}
			weekStart, err := models.ParseDate(m[1])
			if err != nil {
				return nil, fail("bad week start date %q", m[1])
			}
			plan = models.NewPlan(weekStart)

		case mdDayRe.MatchString(line):
			if haveMeal {
				return nil, fail("meal section for %s has no description", mealType)
			}
			m := mdDayRe.FindStringSubmatch(line)
			if _, ok := models.ParseWeekday(m[1]); !ok {
				return nil, fail("unknown weekday %q", m[1])
			}
			d, err := models.ParseDate(m[2])
			if err != nil {
				return nil, fail("bad date %q", m[2])
			}
			if !plan.ContainsDay(d) {
				return nil, fail("date %s is outside the week of %s", m[2], plan.WeekStart.Format(models.DateFormat))
			}
			day, haveDay = d, true

		case mdMealRe.MatchString(line):
			if !haveDay {
				return nil, fail("meal section before any day section")
			}
			if haveMeal {
				return nil, fail("meal section for %s has no description", mealType)
			}
			name := mdMealRe.FindStringSubmatch(line)[1]
			mt, err := models.ParseMealType(name)
			if err != nil {
				return nil, fail("unknown meal type %q", name)
			}
			mealType, haveMeal = mt, true
			haveCook = false

		case strings.HasPrefix(line, "- Cook: "):
			if !haveMeal {
				return nil, fail("cook entry outside a meal section")
			}
			cook = strings.TrimPrefix(line, "- Cook: ")
			haveCook = true

		case strings.HasPrefix(line, "- Description: "):
			if !haveMeal || !haveCook {
				return nil, fail("description entry without a cook entry")
			}
			meal, err := models.NewMeal(mealType, day, cook, strings.TrimPrefix(line, "- Description: "))
			if err != nil {
				return nil, fail("invalid meal entry: %v", err)
			}
			plan.Meals = append(plan.Meals, meal)
			haveMeal, haveCook = false, false

		case line == noMealsMarker:
			if !haveDay {
				return nil, fail("placeholder before any day section")
			}

		default:
			return nil, fail("unrecognized content %q", line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrMalformedDocument, err)
	}
	if plan == nil {
		return nil, fmt.Errorf("%w: missing week header", models.ErrMalformedDocument)
	}
	if haveMeal {
		lineNo++
		return nil, fail("meal section for %s has no description", mealType)
	}

	plan.Normalize()
	return plan, nil
}
