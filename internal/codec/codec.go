// Package codec translates meal plans to and from their two stored
// representations. Codecs are pure: they never touch the filesystem.
package codec

import "github.com/pders01/mealplan/internal/models"

// Codec converts a meal plan to bytes and back. Render(Parse(b)) must
// reproduce an equal plan for every document Render produced.
type Codec interface {
	Name() string
	Render(plan *models.MealPlan) ([]byte, error)
	Parse(data []byte) (*models.MealPlan, error)
}
