package models

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// DateFormat is the wire format for all dates (config, JSON, markdown).
const DateFormat = "2006-01-02"

// MealType is one of the four meal slots in a day.
type MealType string

const (
	Breakfast MealType = "Breakfast"
	Lunch     MealType = "Lunch"
	Dinner    MealType = "Dinner"
	Snack     MealType = "Snack"
)

// MealTypes lists all meal types in their canonical day order.
var MealTypes = []MealType{Breakfast, Lunch, Dinner, Snack}

// Valid reports whether m is one of the four canonical meal types.
func (m MealType) Valid() bool {
	switch m {
	case Breakfast, Lunch, Dinner, Snack:
		return true
	default:
		return false
	}
}

// Rank returns the position of m in the canonical day order.
func (m MealType) Rank() int {
	for i, t := range MealTypes {
		if t == m {
			return i
		}
	}
	return len(MealTypes)
}

// ParseMealType matches user input against the canonical meal types,
// case-insensitively.
func ParseMealType(s string) (MealType, error) {
	for _, t := range MealTypes {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q (must be breakfast, lunch, dinner, or snack)", ErrInvalidMealType, s)
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday matches a weekday name, case-insensitively.
func ParseWeekday(s string) (time.Weekday, bool) {
	wd, ok := weekdays[strings.ToLower(s)]
	return wd, ok
}

// ResolveDay turns user input into a concrete date. A weekday name
// resolves to that weekday within the week beginning at weekStart; an
// explicit YYYY-MM-DD date is returned as-is. Day names are never
// persisted, only the resolved date.
func ResolveDay(s string, weekStart time.Time) (time.Time, error) {
	if wd, ok := ParseWeekday(s); ok {
		offset := (int(wd) - int(weekStart.Weekday()) + 7) % 7
		return weekStart.AddDate(0, 0, offset), nil
	}
	if d, err := time.ParseInLocation(DateFormat, s, time.UTC); err == nil {
		return d, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q (use YYYY-MM-DD or a day name)", ErrInvalidDay, s)
}

// ParseDate parses a YYYY-MM-DD date at UTC midnight.
func ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(DateFormat, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDay, s)
	}
	return d, nil
}

// Meal is a single entry in a week's plan. Day is always a concrete
// date at UTC midnight.
type Meal struct {
	Type        MealType
	Day         time.Time
	Cook        string
	Description string
}

// NewMeal builds a meal, rejecting empty cook or description. Control
// characters are rejected too: both documents are line oriented, so a
// field with an embedded newline could never survive a round trip.
func NewMeal(mealType MealType, day time.Time, cook, description string) (Meal, error) {
	cook = strings.TrimSpace(cook)
	description = strings.TrimSpace(description)
	if cook == "" {
		return Meal{}, fmt.Errorf("%w: cook", ErrEmptyField)
	}
	if description == "" {
		return Meal{}, fmt.Errorf("%w: description", ErrEmptyField)
	}
	if strings.ContainsFunc(cook, unicode.IsControl) {
		return Meal{}, fmt.Errorf("%w: cook contains control characters", ErrInvalidField)
	}
	if strings.ContainsFunc(description, unicode.IsControl) {
		return Meal{}, fmt.Errorf("%w: description contains control characters", ErrInvalidField)
	}
	return Meal{Type: mealType, Day: day, Cook: cook, Description: description}, nil
}

// Equal reports field-for-field equality.
func (m Meal) Equal(o Meal) bool {
	return m.Type == o.Type && m.Day.Equal(o.Day) && m.Cook == o.Cook && m.Description == o.Description
}

func (m Meal) String() string {
	return fmt.Sprintf("%s on %s: %s (Cook: %s)", m.Type, m.Day.Format(DateFormat), m.Description, m.Cook)
}
