package codec

import (
	"encoding/json"
	"fmt"

	"github.com/pders01/mealplan/internal/models"
)

type jsonPlan struct {
	WeekStartDate string     `json:"week_start_date"`
	Meals         []jsonMeal `json:"meals"`
}

type jsonMeal struct {
	MealType    string `json:"meal_type"`
	Day         string `json:"day"`
	Cook        string `json:"cook"`
	Description string `json:"description"`
}

// JSON is the structural serialization of a meal plan. Every field
// survives the round trip; meals are written in canonical order.
type JSON struct{}

func (JSON) Name() string { return "json" }

func (JSON) Render(plan *models.MealPlan) ([]byte, error) {
	doc := jsonPlan{
		WeekStartDate: plan.WeekStart.Format(models.DateFormat),
		Meals:         make([]jsonMeal, 0, len(plan.Meals)),
	}

	ordered := *plan
	ordered.Meals = append([]models.Meal(nil), plan.Meals...)
	ordered.Normalize()

	for _, m := range ordered.Meals {
		doc.Meals = append(doc.Meals, jsonMeal{
			MealType:    string(m.Type),
			Day:         m.Day.Format(models.DateFormat),
			Cook:        m.Cook,
			Description: m.Description,
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func (JSON) Parse(data []byte) (*models.MealPlan, error) {
	var doc jsonPlan
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrMalformedJSON, err)
	}

	weekStart, err := models.ParseDate(doc.WeekStartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: week_start_date %q", models.ErrMalformedJSON, doc.WeekStartDate)
	}

	plan := models.NewPlan(weekStart)
	for i, jm := range doc.Meals {
		mt := models.MealType(jm.MealType)
		if !mt.Valid() {
			return nil, fmt.Errorf("%w: meals[%d]: meal_type %q", models.ErrMalformedJSON, i, jm.MealType)
		}
		day, err := models.ParseDate(jm.Day)
		if err != nil {
			return nil, fmt.Errorf("%w: meals[%d]: day %q", models.ErrMalformedJSON, i, jm.Day)
		}
		if !plan.ContainsDay(day) {
			return nil, fmt.Errorf("%w: meals[%d]: day %q is outside the week of %s", models.ErrMalformedJSON, i, jm.Day, doc.WeekStartDate)
		}
		meal, err := models.NewMeal(mt, day, jm.Cook, jm.Description)
		if err != nil {
			return nil, fmt.Errorf("%w: meals[%d]: %v", models.ErrMalformedJSON, i, err)
		}
		plan.Meals = append(plan.Meals, meal)
	}

	plan.Normalize()
	return plan, nil
}
