package models

import (
	"time"

	"github.com/google/uuid"
)

// DietaryType is the diet chosen in the meal preferences screen.
type DietaryType string

const (
	DietaryOmnivore    DietaryType = "omnivore"
	DietaryVegetarian  DietaryType = "vegetarian"
	DietaryVegan       DietaryType = "vegan"
	DietaryPescatarian DietaryType = "pescatarian"
)

// CatalogDiet tags catalog meals. It overlaps with DietaryType but is a
// separate vocabulary; use DietaryType.CatalogDiet to go from one to the other.
type CatalogDiet string

const (
	CatalogStandard    CatalogDiet = "standard"
	CatalogVegetarian  CatalogDiet = "vegetarian"
	CatalogVegan       CatalogDiet = "vegan"
	CatalogPescatarian CatalogDiet = "pescatarian"
	CatalogGlutenFree  CatalogDiet = "gluten_free"
	CatalogHalal       CatalogDiet = "halal"
	CatalogKeto        CatalogDiet = "keto"  // Accepted, no catalog entries tagged
	CatalogPaleo       CatalogDiet = "paleo" // Accepted, no catalog entries tagged
)

// CatalogDiet maps a preference diet onto the catalog vocabulary.
// Unknown values map to CatalogStandard.
func (d DietaryType) CatalogDiet() CatalogDiet {
	switch d {
	case DietaryVegetarian:
		return CatalogVegetarian
	case DietaryVegan:
		return CatalogVegan
	case DietaryPescatarian:
		return CatalogPescatarian
	default:
		return CatalogStandard
	}
}

// CookingTime is the preferred preparation effort.
type CookingTime string

const (
	CookingQuick     CookingTime = "quick"
	CookingMedium    CookingTime = "medium"
	CookingElaborate CookingTime = "elaborate"
)

// BudgetLevel is the grocery budget.
type BudgetLevel string

const (
	BudgetLow    BudgetLevel = "low"
	BudgetMedium BudgetLevel = "medium"
	BudgetHigh   BudgetLevel = "high"
)

// MealPreferences represents the 'meal_preferences' table (one row per user, upserted).
type MealPreferences struct {
	ID                    uuid.UUID   `json:"id" db:"id"`
	UserID                uuid.UUID   `json:"user_id" db:"user_id"`
	DietaryType           DietaryType `json:"dietary_type" db:"dietary_type"`
	Allergies             []string    `json:"allergies" db:"allergies"`           // TEXT[]
	Dislikes              []string    `json:"dislikes" db:"dislikes"`             // TEXT[]
	DailyMeals            int         `json:"daily_meals" db:"daily_meals"`       // 2-5
	SnacksPerDay          int         `json:"snacks_per_day" db:"snacks_per_day"` // 0-3
	CookingTimePreference CookingTime `json:"cooking_time_preference" db:"cooking_time_preference"`
	BudgetLevel           BudgetLevel `json:"budget_level" db:"budget_level"`
	CreatedAt             time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt             time.Time   `json:"updated_at" db:"updated_at"`
}

// DefaultMealPreferences is used when the user never saved preferences.
func DefaultMealPreferences(userID uuid.UUID) MealPreferences {
	return MealPreferences{
		UserID:                userID,
		DietaryType:           DietaryOmnivore,
		Allergies:             []string{},
		Dislikes:              []string{},
		DailyMeals:            3,
		SnacksPerDay:          1,
		CookingTimePreference: CookingMedium,
		BudgetLevel:           BudgetMedium,
	}
}

// --- DTOs ---

// UpsertMealPreferencesRequest replaces the user's preferences wholesale.
type UpsertMealPreferencesRequest struct {
	DietaryType           DietaryType `json:"dietary_type" validate:"required,oneof=omnivore vegetarian vegan pescatarian"`
	Allergies             []string    `json:"allergies" validate:"omitempty,dive,required,max=100"`
	Dislikes              []string    `json:"dislikes" validate:"omitempty,dive,required,max=100"`
	DailyMeals            int         `json:"daily_meals" validate:"required,min=2,max=5"`
	SnacksPerDay          int         `json:"snacks_per_day" validate:"min=0,max=3"`
	CookingTimePreference CookingTime `json:"cooking_time_preference" validate:"required,oneof=quick medium elaborate"`
	BudgetLevel           BudgetLevel `json:"budget_level" validate:"required,oneof=low medium high"`
}
