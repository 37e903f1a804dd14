// Package ical writes a meal plan as an iCalendar document. Export is
// one-way: the .ics file is never read back.
package ical

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pders01/mealplan/internal/models"
)

// Meals map to fixed one-hour time slots.
var mealHours = map[models.MealType]int{
	models.Breakfast: 8,
	models.Lunch:     12,
	models.Snack:     15,
	models.Dinner:    18,
}

// Exporter renders meal plans as RFC 5545 calendars. Now and NewUID
// exist so tests can fix timestamps and identifiers; the zero values
// fall back to the real clock and random UUIDs.
type Exporter struct {
	Now    func() time.Time
	NewUID func() string
}

func NewExporter() *Exporter {
	return &Exporter{
		Now: time.Now,
		NewUID: func() string {
			return uuid.NewString() + "@mealplan"
		},
	}
}

// Render produces one VEVENT per meal. Every event carries the
// mandatory fields: UID, DTSTAMP, DTSTART, and SUMMARY.
func (e *Exporter) Render(plan *models.MealPlan) []byte {
	stamp := e.Now().UTC().Format("20060102T150405Z")

	ordered := *plan
	ordered.Meals = append([]models.Meal(nil), plan.Meals...)
	ordered.Normalize()

	var b strings.Builder
	writeLine := func(s string) {
		b.WriteString(s)
		b.WriteString("\r\n")
	}

	writeLine("BEGIN:VCALENDAR")
	writeLine("VERSION:2.0")
	writeLine("PRODID:-//mealplan//mealplan CLI//EN")
	writeLine("CALSCALE:GREGORIAN")

	for _, m := range ordered.Meals {
		start := time.Date(m.Day.Year(), m.Day.Month(), m.Day.Day(), mealHours[m.Type], 0, 0, 0, time.UTC)
		end := start.Add(time.Hour)

		writeLine("BEGIN:VEVENT")
		writeLine("UID:" + e.NewUID())
		writeLine("DTSTAMP:" + stamp)
		writeLine("DTSTART:" + start.Format("20060102T150405"))
		writeLine("DTEND:" + end.Format("20060102T150405"))
		writeLine("SUMMARY:" + escapeText(fmt.Sprintf("%s: %s", m.Type, m.Description)))
		writeLine("DESCRIPTION:" + escapeText("Cook: "+m.Cook))
		writeLine("END:VEVENT")
	}

	writeLine("END:VCALENDAR")
	return []byte(b.String())
}

// escapeText escapes TEXT values per RFC 5545 section 3.3.11.
func escapeText(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		";", `\;`,
		",", `\,`,
		"\n", `\n`,
	)
	return r.Replace(s)
}
