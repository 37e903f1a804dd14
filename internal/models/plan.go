package models

import (
	"sort"
	"time"
)

// MealPlan holds all meals for the week beginning at WeekStart (a
// Sunday). Meals are kept in canonical order: by day, then by meal
// type rank, so renders are deterministic and round-trip equality is
// plain slice equality.
type MealPlan struct {
	WeekStart time.Time
	Meals     []Meal
}

// NewPlan creates an empty plan for the given week.
func NewPlan(weekStart time.Time) *MealPlan {
	return &MealPlan{WeekStart: weekStart}
}

// Days returns the seven dates of the plan's week in order.
func (p *MealPlan) Days() []time.Time {
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = p.WeekStart.AddDate(0, 0, i)
	}
	return days
}

// ContainsDay reports whether day falls within the plan's week.
func (p *MealPlan) ContainsDay(day time.Time) bool {
	return !day.Before(p.WeekStart) && day.Before(p.WeekStart.AddDate(0, 0, 7))
}

// Find returns the meal matching (mealType, day), or nil.
func (p *MealPlan) Find(mealType MealType, day time.Time) *Meal {
	for i := range p.Meals {
		if p.Meals[i].Type == mealType && p.Meals[i].Day.Equal(day) {
			return &p.Meals[i]
		}
	}
	return nil
}

// MealsOn returns the meals scheduled for day, in meal type order.
func (p *MealPlan) MealsOn(day time.Time) []Meal {
	var meals []Meal
	for _, m := range p.Meals {
		if m.Day.Equal(day) {
			meals = append(meals, m)
		}
	}
	return meals
}

// Insert adds a meal and restores canonical order. Any existing meal
// with the same (type, day) pair is replaced.
func (p *MealPlan) Insert(meal Meal) {
	p.Remove(meal.Type, meal.Day)
	p.Meals = append(p.Meals, meal)
	p.Normalize()
}

// Remove deletes the meal matching (mealType, day) and reports whether
// one was found.
func (p *MealPlan) Remove(mealType MealType, day time.Time) bool {
	for i := range p.Meals {
		if p.Meals[i].Type == mealType && p.Meals[i].Day.Equal(day) {
			p.Meals = append(p.Meals[:i], p.Meals[i+1:]...)
			return true
		}
	}
	return false
}

// Normalize sorts meals into canonical (day, meal type) order.
func (p *MealPlan) Normalize() {
	sort.SliceStable(p.Meals, func(i, j int) bool {
		if !p.Meals[i].Day.Equal(p.Meals[j].Day) {
			return p.Meals[i].Day.Before(p.Meals[j].Day)
		}
		return p.Meals[i].Type.Rank() < p.Meals[j].Type.Rank()
	})
}

// Equal reports whether two plans hold the same week and the same
// meals. Both sides are compared in canonical order.
func (p *MealPlan) Equal(o *MealPlan) bool {
	if !p.WeekStart.Equal(o.WeekStart) || len(p.Meals) != len(o.Meals) {
		return false
	}
	a, b := *p, *o
	a.Meals = append([]Meal(nil), p.Meals...)
	b.Meals = append([]Meal(nil), o.Meals...)
	a.Normalize()
	b.Normalize()
	for i := range a.Meals {
		if !a.Meals[i].Equal(b.Meals[i]) {
			return false
		}
	}
	return true
}
