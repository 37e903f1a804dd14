package codec

import (
	"errors"
	"strings"
	"testing"

	"github.com/pders01/mealplan/internal/models"
	"github.com/pders01/mealplan/internal/testutil"
)

func TestMarkdownRenderSevenDaySections(t *testing.T) {
	plan := testutil.SamplePlan(t)

	data, err := Markdown{}.Render(plan)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	doc := string(data)

	if !strings.HasPrefix(doc, "# Meal Plan for Week of 2026-08-23\n") {
		t.Errorf("missing week header:\n%s", doc)
	}
	if got := strings.Count(doc, "\n## "); got != 7 {
		t.Errorf("expected 7 day sections, found %d", got)
	}
	for _, want := range []string{
		"## Sunday (2026-08-23)",
		"## Saturday (2026-08-29)",
		"### Breakfast",
		"- Cook: Erik",
		"- Description: Bacon and Eggs",
		"_No meals planned._",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q:\n%s", want, doc)
		}
	}
}

func TestMarkdownRenderDeterministic(t *testing.T) {
	plan := testutil.SamplePlan(t)

	first, _ := Markdown{}.Render(plan)
	second, _ := Markdown{}.Render(plan)
	if string(first) != string(second) {
		t.Error("render is not deterministic")
	}
}

func TestMarkdownRoundTrip(t *testing.T) {
	plan := testutil.SamplePlan(t)

	data, err := Markdown{}.Render(plan)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	parsed, err := Markdown{}.Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !parsed.Equal(plan) {
		t.Errorf("round trip lost data:\n got %+v\nwant %+v", parsed, plan)
	}
}

func TestMarkdownRoundTripEmptyPlan(t *testing.T) {
	plan := models.NewPlan(testutil.Date(t, testutil.Week))

	data, err := Markdown{}.Render(plan)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	parsed, err := Markdown{}.Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !parsed.Equal(plan) || len(parsed.Meals) != 0 {
		t.Errorf("empty plan did not survive the round trip: %+v", parsed)
	}
}

func TestMarkdownParseMultipleMealsPerDay(t *testing.T) {
	doc := `# Meal Plan for Week of 2026-08-23

## Monday (2026-08-24)

### Breakfast

- Cook: Erik
- Description: Bacon and Eggs

### Dinner

- Cook: Alice
- Description: Pasta
`
	plan, err := Markdown{}.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(plan.Meals) != 2 {
		t.Fatalf("expected 2 meals, got %d", len(plan.Meals))
	}
	if plan.Meals[0].Type != models.Breakfast || plan.Meals[1].Type != models.Dinner {
		t.Errorf("meals out of canonical order: %s, %s", plan.Meals[0].Type, plan.Meals[1].Type)
	}
}

func TestMarkdownParseMalformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing header", "## Monday (2026-08-24)\n"},
		{"empty document", ""},
		{"meal before day section", "# Meal Plan for Week of 2026-08-23\n\n### Breakfast\n"},
		{"unknown meal type", "# Meal Plan for Week of 2026-08-23\n\n## Monday (2026-08-24)\n\n### Brunch\n\n- Cook: A\n- Description: B\n"},
		{"unknown weekday", "# Meal Plan for Week of 2026-08-23\n\n## Monnday (2026-08-24)\n"},
		{"cook outside meal section", "# Meal Plan for Week of 2026-08-23\n\n## Monday (2026-08-24)\n\n- Cook: A\n"},
		{"description without cook", "# Meal Plan for Week of 2026-08-23\n\n## Monday (2026-08-24)\n\n### Lunch\n\n- Description: B\n"},
		{"meal without description", "# Meal Plan for Week of 2026-08-23\n\n## Monday (2026-08-24)\n\n### Lunch\n\n- Cook: A\n"},
		{"stray prose", "# Meal Plan for Week of 2026-08-23\n\nremember to buy milk\n"},
		{"day outside week", "# Meal Plan for Week of 2026-08-23\n\n## Thursday (2026-09-10)\n"},
		{"day before week", "# Meal Plan for Week of 2026-08-23\n\n## Saturday (2026-08-22)\n"},
		{"bad week date", "# Meal Plan for Week of 2026-99-99\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Markdown{}.Parse([]byte(tt.doc))
			if !errors.Is(err, models.ErrMalformedDocument) {
				t.Errorf("want ErrMalformedDocument, got %v", err)
			}
		})
	}
}
