package nutrition

import (
	"errors"
	"fmt"
	"math"

	"fittrack/backend/models"
)

// Strategy turns a profile and a weight into a nutritional target.
type Strategy interface {
	Name() string
	Target(profile models.UserProfile, currentWeight float64) models.NutritionalTarget
}

const (
	StrategyMifflinStJeor = "mifflin_st_jeor"
	StrategyWeightBased   = "weight_based"
)

// MifflinStJeor is the canonical strategy.
type MifflinStJeor struct{}

func (MifflinStJeor) Name() string { return StrategyMifflinStJeor }

func (MifflinStJeor) Target(profile models.UserProfile, currentWeight float64) models.NutritionalTarget {
	calories := CalculateDailyCalories(profile, currentWeight)
	macros := CalculateMacros(calories, profile.Goal)
	return models.NutritionalTarget{
		Calories: calories,
		Protein:  macros.Protein,
		Carbs:    macros.Carbs,
		Fats:     macros.Fats,
		Strategy: StrategyMifflinStJeor,
	}
}

// WeightBased estimates needs from body weight alone: 24 kcal/kg scaled by the
// activity multiplier, a 300 or 500 kcal adjustment depending on how far the
// target weight is, and protein set per kg of body weight.
type WeightBased struct{}

const (
	kcalPerKg          = 24.0
	largeGapKg         = 10.0
	smallAdjustment    = 300
	largeAdjustment    = 500
	weightBasedFatPart = 0.25
)

var proteinPerKg = map[models.Goal]float64{
	models.GoalLoseWeight: 2.2,
	models.GoalGainMuscle: 2.0,
	models.GoalMaintain:   1.8,
}

func (WeightBased) Name() string { return StrategyWeightBased }

func (WeightBased) Target(profile models.UserProfile, currentWeight float64) models.NutritionalTarget {
	maintenance := currentWeight * kcalPerKg * ActivityMultiplier

	adjustment := float64(smallAdjustment)
	if math.Abs(profile.TargetWeight-currentWeight) >= largeGapKg {
		adjustment = largeAdjustment
	}

	calories := maintenance
	switch profile.Goal {
	case models.GoalLoseWeight:
		calories -= adjustment
	case models.GoalGainMuscle:
		calories += adjustment
	}
	total := round(calories)

	perKg, ok := proteinPerKg[profile.Goal]
	if !ok {
		perKg = proteinPerKg[models.GoalMaintain]
	}
	protein := round(currentWeight * perKg)
	fats := round(float64(total) * weightBasedFatPart / kcalPerGramFat)
	remaining := float64(total) - float64(protein)*kcalPerGramProtein - float64(fats)*kcalPerGramFat
	carbs := round(math.Max(remaining, 0) / kcalPerGramCarbs)

	return models.NutritionalTarget{
		Calories: total,
		Protein:  protein,
		Carbs:    carbs,
		Fats:     fats,
		Strategy: StrategyWeightBased,
	}
}

var ErrUnknownStrategy = errors.New("unknown nutrition strategy")

// Lookup resolves a strategy by name. An empty name yields the canonical one.
func Lookup(name string) (Strategy, error) {
	switch name {
	case "", StrategyMifflinStJeor:
		return MifflinStJeor{}, nil
	case StrategyWeightBased:
		return WeightBased{}, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownStrategy, name)
	}
}
