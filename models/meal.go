package models

import (
	"time"

	"github.com/google/uuid"
)

// Meal is a catalog entry or a meal generated by the AI service.
// Nutrition values are per serving. JSON keys follow the AI response contract.
type Meal struct {
	Name         string        `json:"name"`
	Emoji        string        `json:"emoji"`
	Calories     int           `json:"calories"`
	Protein      int           `json:"protein"`
	Carbs        int           `json:"carbs"`
	Fats         int           `json:"fats"`
	Ingredients  []string      `json:"ingredients"`
	Instructions []string      `json:"instructions"`
	PrepTime     int           `json:"prepTime"` // minutes
	Diets        []CatalogDiet `json:"-"`        // Catalog only
}

// SuitsDiet reports whether the meal is tagged for the given catalog diet.
// Every meal suits CatalogStandard.
func (m Meal) SuitsDiet(diet CatalogDiet) bool {
	if diet == CatalogStandard || diet == "" {
		return true
	}
	for _, d := range m.Diets {
		if d == diet {
			return true
		}
	}
	return false
}

// DayPlan holds the meals of one day. Snacks may be empty.
type DayPlan struct {
	Breakfast *Meal  `json:"breakfast"`
	Lunch     *Meal  `json:"lunch"`
	Dinner    *Meal  `json:"dinner"`
	Snacks    []Meal `json:"snacks"`
}

// Meals returns every meal of the day in slot order, skipping nil slots.
func (d DayPlan) Meals() []Meal {
	meals := make([]Meal, 0, 3+len(d.Snacks))
	for _, m := range []*Meal{d.Breakfast, d.Lunch, d.Dinner} {
		if m != nil {
			meals = append(meals, *m)
		}
	}
	return append(meals, d.Snacks...)
}

// WeeklyPlan maps a day label to its meals.
type WeeklyPlan map[string]DayPlan

// ShoppingList maps a category name to unique ingredient strings.
type ShoppingList map[string][]string

// Macros holds the gram split of a calorie target.
type Macros struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fats    int `json:"fats"`
}

// NutritionalTarget is derived from the profile and latest weight on every
// request. It is never persisted.
type NutritionalTarget struct {
	Calories int    `json:"calories"`
	Protein  int    `json:"protein"`
	Carbs    int    `json:"carbs"`
	Fats     int    `json:"fats"`
	Strategy string `json:"strategy"`
}

// Macros returns the gram split of the target.
func (t NutritionalTarget) Macros() Macros {
	return Macros{Protein: t.Protein, Carbs: t.Carbs, Fats: t.Fats}
}

// AIPlanResponse is the JSON document requested from the completion service.
type AIPlanResponse struct {
	WeeklyPlan   WeeklyPlan   `json:"weeklyPlan"`
	ShoppingList ShoppingList `json:"shoppingList"`
}

// PlanSource tells the user which path produced a plan.
type PlanSource string

const (
	PlanSourceAI    PlanSource = "ai"
	PlanSourceLocal PlanSource = "local"
)

// GeneratedPlan is the result of one generation request and the value kept
// as the user's latest plan.
type GeneratedPlan struct {
	RequestID      uuid.UUID         `json:"request_id"`
	UserID         uuid.UUID         `json:"user_id"`
	Source         PlanSource        `json:"source"`
	FallbackReason string            `json:"fallback_reason,omitempty"` // Why the AI path was abandoned
	Superseded     bool              `json:"superseded,omitempty"`      // A newer request for the same user was started
	Target         NutritionalTarget `json:"target"`
	WeeklyPlan     WeeklyPlan        `json:"weekly_plan"`
	ShoppingList   ShoppingList      `json:"shopping_list"`
	GeneratedAt    time.Time         `json:"generated_at"`
}

// DailyPlan is the single-day closest-match selection.
type DailyPlan struct {
	Diet      CatalogDiet       `json:"diet"`
	Target    NutritionalTarget `json:"target"`
	Breakfast Meal              `json:"breakfast"`
	Lunch     Meal              `json:"lunch"`
	Dinner    Meal              `json:"dinner"`
	Snack     Meal              `json:"snack"`
	Totals    NutritionalTarget `json:"totals"` // Sum of the four selected meals
}

// --- DTOs ---

// LocalPlanRequest asks for a weekly plan from the local generator only.
type LocalPlanRequest struct {
	DailyCalories int         `json:"daily_calories" validate:"required,gt=0,lt=10000"`
	DailyMeals    int         `json:"daily_meals" validate:"omitempty,min=2,max=5"`
	SnacksPerDay  int         `json:"snacks_per_day" validate:"min=0,max=3"`
	DietaryType   DietaryType `json:"dietary_type" validate:"omitempty,oneof=omnivore vegetarian vegan pescatarian"`
	Allergies     []string    `json:"allergies"`
	Dislikes      []string    `json:"dislikes"`
}

// DailyPlanRequest asks for the single-day plan of the authenticated user.
type DailyPlanRequest struct {
	Diet CatalogDiet `json:"diet" validate:"omitempty,oneof=standard vegetarian vegan pescatarian gluten_free halal keto paleo"`
}

// LocalPlanResponse bundles a locally generated week with its shopping list.
type LocalPlanResponse struct {
	WeeklyPlan   WeeklyPlan   `json:"weekly_plan"`
	ShoppingList ShoppingList `json:"shopping_list"`
}
