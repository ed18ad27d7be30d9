// Package nutrition computes daily calorie targets and macro splits from a
// user profile and the latest weight.
package nutrition

import (
	"errors"
	"math"

	"fittrack/backend/models"
)

// ActivityMultiplier is the fixed "moderate activity" TDEE factor.
const ActivityMultiplier = 1.55

const (
	kcalPerGramProtein = 4.0
	kcalPerGramCarbs   = 4.0
	kcalPerGramFat     = 9.0

	loseWeightDeficit = 500
	gainMuscleSurplus = 300
)

// Offsets of the Mifflin-St Jeor equation. The "other" value is the mean of
// the male and female offsets and is a placeholder pending product input.
const (
	maleOffset   = 5.0
	femaleOffset = -161.0
	otherOffset  = -78.0
)

// macroSplit holds protein/carbs/fats as fractions of total calories.
type macroSplit struct {
	protein, carbs, fats float64
}

var macroSplits = map[models.Goal]macroSplit{
	models.GoalLoseWeight: {protein: 0.35, carbs: 0.35, fats: 0.30},
	models.GoalGainMuscle: {protein: 0.30, carbs: 0.45, fats: 0.25},
	models.GoalMaintain:   {protein: 0.25, carbs: 0.45, fats: 0.30},
}

// ErrInvalidInputs is returned by ValidateInputs. The calculators themselves
// never validate.
var ErrInvalidInputs = errors.New("weight, height and age must be greater than zero")

// ValidateInputs guards the calculators: weight, height and age must be positive.
func ValidateInputs(profile models.UserProfile, currentWeight float64) error {
	if currentWeight <= 0 || profile.Height <= 0 || profile.Age <= 0 {
		return ErrInvalidInputs
	}
	return nil
}

// BMR returns the Mifflin-St Jeor basal metabolic rate.
func BMR(gender models.Gender, weight, height float64, age int) float64 {
	base := 10*weight + 6.25*height - 5*float64(age)
	switch gender {
	case models.GenderMale:
		return base + maleOffset
	case models.GenderFemale:
		return base + femaleOffset
	default:
		return base + otherOffset
	}
}

// TDEE scales the BMR by the moderate activity multiplier.
func TDEE(bmr float64) float64 {
	return bmr * ActivityMultiplier
}

// CalculateDailyCalories returns the rounded calorie target for the profile's goal.
func CalculateDailyCalories(profile models.UserProfile, currentWeight float64) int {
	tdee := TDEE(BMR(profile.Gender, currentWeight, profile.Height, profile.Age))
	switch profile.Goal {
	case models.GoalLoseWeight:
		return round(tdee - loseWeightDeficit)
	case models.GoalGainMuscle:
		return round(tdee + gainMuscleSurplus)
	default:
		return round(tdee)
	}
}

// CalculateMacros splits calories into grams using the goal's percentages.
// Unknown goals use the maintain split.
func CalculateMacros(calories int, goal models.Goal) models.Macros {
	split, ok := macroSplits[goal]
	if !ok {
		split = macroSplits[models.GoalMaintain]
	}
	kcal := float64(calories)
	return models.Macros{
		Protein: round(kcal * split.protein / kcalPerGramProtein),
		Carbs:   round(kcal * split.carbs / kcalPerGramCarbs),
		Fats:    round(kcal * split.fats / kcalPerGramFat),
	}
}

func round(v float64) int {
	return int(math.Round(v))
}
