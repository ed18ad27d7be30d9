// Package mealplan builds weekly and daily meal plans from the built-in
// catalog and derives shopping lists from them.
package mealplan

import (
	"log"

	"fittrack/backend/models"
	"fittrack/backend/nutrition"
)

// Share of the daily calories given to each slot. The snack share is split
// between the day's snacks.
const (
	breakfastShare = 0.25
	lunchShare     = 0.35
	dinnerShare    = 0.30
	snackShare     = 0.10
)

// Generator is the local, offline meal plan generator.
type Generator struct {
	catalog Catalog
}

// NewGenerator creates a Generator over the built-in catalog.
func NewGenerator() *Generator {
	return NewGeneratorWithCatalog(DefaultCatalog())
}

// NewGeneratorWithCatalog creates a Generator over a custom catalog.
func NewGeneratorWithCatalog(catalog Catalog) *Generator {
	return &Generator{catalog: catalog}
}

// Catalog returns the generator's catalog.
func (g *Generator) Catalog() Catalog {
	return g.catalog
}

// GenerateWeeklyMealPlan builds a seven-day plan with breakfast, lunch, dinner
// and numSnacks snacks per day. numMeals is accepted for parity with the
// preferences record; the day structure does not depend on it.
func (g *Generator) GenerateWeeklyMealPlan(dailyCalories, numMeals, numSnacks int, dietaryType models.DietaryType) models.WeeklyPlan {
	return g.GenerateWeeklyMealPlanExcluding(dailyCalories, numMeals, numSnacks, dietaryType, nil)
}

// GenerateWeeklyMealPlanExcluding is GenerateWeeklyMealPlan with allergy and
// dislike terms removed from the candidate meals where possible.
func (g *Generator) GenerateWeeklyMealPlanExcluding(dailyCalories, numMeals, numSnacks int, dietaryType models.DietaryType, exclusions []string) models.WeeklyPlan {
	if numSnacks < 0 {
		numSnacks = 0
	}
	diet := dietaryType.CatalogDiet()
	breakfastTarget, lunchTarget, dinnerTarget, snackTarget := slotTargets(dailyCalories, numSnacks)

	breakfasts := newRotation(candidates(g.catalog.Breakfast, diet, exclusions))
	lunches := newRotation(candidates(g.catalog.Lunch, diet, exclusions))
	dinners := newRotation(candidates(g.catalog.Dinner, diet, exclusions))
	snacks := newRotation(candidates(g.catalog.Snacks, diet, exclusions))

	plan := make(models.WeeklyPlan, len(Days))
	for _, day := range Days {
		dayPlan := models.DayPlan{
			Breakfast: breakfasts.next(breakfastTarget),
			Lunch:     lunches.next(lunchTarget),
			Dinner:    dinners.next(dinnerTarget),
			Snacks:    make([]models.Meal, 0, numSnacks),
		}
		for i := 0; i < numSnacks; i++ {
			if s := snacks.next(snackTarget); s != nil {
				dayPlan.Snacks = append(dayPlan.Snacks, *s)
			}
		}
		plan[day] = dayPlan
	}

	log.Printf("Local weekly plan generated: %d kcal/day, %d meals, %d snacks, diet %s", dailyCalories, numMeals, numSnacks, dietaryType)
	return plan
}

// slotTargets returns per-slot calorie targets. Without snacks the three main
// shares are rescaled to cover the whole day.
func slotTargets(dailyCalories, numSnacks int) (breakfast, lunch, dinner, snack float64) {
	total := float64(dailyCalories)
	mainScale := 1.0
	if numSnacks == 0 {
		mainScale = 1 / (breakfastShare + lunchShare + dinnerShare)
	} else {
		snack = total * snackShare / float64(numSnacks)
	}
	return total * breakfastShare * mainScale, total * lunchShare * mainScale, total * dinnerShare * mainScale, snack
}

// GenerateDailyPlan picks one meal per slot for a single day. The target comes
// from the weight-based strategy and each slot takes the catalog entry closest
// to its share of the calories. Diets without tagged meals use the full catalog.
func (g *Generator) GenerateDailyPlan(profile models.UserProfile, currentWeight float64, diet models.CatalogDiet) models.DailyPlan {
	if diet == "" {
		diet = models.CatalogStandard
	}
	target := nutrition.WeightBased{}.Target(profile, currentWeight)
	calories := float64(target.Calories)

	pick := func(meals []models.Meal, share float64) models.Meal {
		m, ok := SelectClosest(candidates(meals, diet, nil), calories*share)
		if !ok {
			return models.Meal{}
		}
		return cloneMeal(m)
	}

	plan := models.DailyPlan{
		Diet:      diet,
		Target:    target,
		Breakfast: pick(g.catalog.Breakfast, breakfastShare),
		Lunch:     pick(g.catalog.Lunch, lunchShare),
		Dinner:    pick(g.catalog.Dinner, dinnerShare),
		Snack:     pick(g.catalog.Snacks, snackShare),
	}
	for _, m := range []models.Meal{plan.Breakfast, plan.Lunch, plan.Dinner, plan.Snack} {
		plan.Totals.Calories += m.Calories
		plan.Totals.Protein += m.Protein
		plan.Totals.Carbs += m.Carbs
		plan.Totals.Fats += m.Fats
	}
	plan.Totals.Strategy = target.Strategy
	return plan
}
