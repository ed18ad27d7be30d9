package nutrition

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fittrack/backend/models"
)

func profile(goal models.Goal, gender models.Gender, height float64, age int) models.UserProfile {
	return models.UserProfile{Goal: goal, Gender: gender, Height: height, Age: age, TargetWeight: 70}
}

func TestCalculateDailyCalories_WorkedExample(t *testing.T) {
	p := profile(models.GoalLoseWeight, models.GenderMale, 175, 30)

	assert.InDelta(t, 1748.75, BMR(p.Gender, 80, p.Height, p.Age), 1e-9)
	assert.Equal(t, 2211, CalculateDailyCalories(p, 80))

	macros := CalculateMacros(2211, models.GoalLoseWeight)
	assert.Equal(t, models.Macros{Protein: 193, Carbs: 193, Fats: 74}, macros)
}

func TestCalculateDailyCalories_GenderOffsets(t *testing.T) {
	female := profile(models.GoalMaintain, models.GenderFemale, 165, 25)
	other := profile(models.GoalMaintain, models.GenderOther, 165, 25)

	assert.Equal(t, 2085, CalculateDailyCalories(female, 60))
	assert.Equal(t, 2214, CalculateDailyCalories(other, 60))
}

func TestCalculateDailyCalories_GoalOffsets(t *testing.T) {
	cases := []struct {
		gender models.Gender
		weight float64
		height float64
		age    int
	}{
		{models.GenderMale, 80, 175, 30},
		{models.GenderFemale, 62.5, 168, 41},
		{models.GenderOther, 95.3, 182.4, 57},
		{models.GenderMale, 54, 158, 19},
	}

	for _, tc := range cases {
		maintain := CalculateDailyCalories(profile(models.GoalMaintain, tc.gender, tc.height, tc.age), tc.weight)
		lose := CalculateDailyCalories(profile(models.GoalLoseWeight, tc.gender, tc.height, tc.age), tc.weight)
		gain := CalculateDailyCalories(profile(models.GoalGainMuscle, tc.gender, tc.height, tc.age), tc.weight)

		assert.Equal(t, maintain-500, lose, "lose_weight for %+v", tc)
		assert.Equal(t, maintain+300, gain, "gain_muscle for %+v", tc)
	}
}

func TestCalculateMacros_EnergyMatchesCalories(t *testing.T) {
	goals := []models.Goal{models.GoalLoseWeight, models.GoalGainMuscle, models.GoalMaintain}
	for _, goal := range goals {
		for calories := 1200; calories <= 4000; calories += 137 {
			m := CalculateMacros(calories, goal)
			energy := m.Protein*4 + m.Carbs*4 + m.Fats*9
			assert.LessOrEqual(t, math.Abs(float64(energy-calories)), 9.0, "goal %s calories %d", goal, calories)
		}
	}
}

func TestCalculateMacros_GainMuscle(t *testing.T) {
	calories := CalculateDailyCalories(profile(models.GoalGainMuscle, models.GenderMale, 175, 30), 80)
	require.Equal(t, 3011, calories)
	assert.Equal(t, models.Macros{Protein: 226, Carbs: 339, Fats: 84}, CalculateMacros(calories, models.GoalGainMuscle))
}

func TestCalculator_IsPure(t *testing.T) {
	p := profile(models.GoalGainMuscle, models.GenderFemale, 170, 35)
	first := MifflinStJeor{}.Target(p, 66)
	second := MifflinStJeor{}.Target(p, 66)
	assert.Equal(t, first, second)
}

func TestCalculator_DegenerateInputsDoNotPanic(t *testing.T) {
	p := profile(models.GoalLoseWeight, models.GenderFemale, 0, 0)
	assert.NotPanics(t, func() {
		calories := CalculateDailyCalories(p, 0)
		assert.Less(t, calories, 0)
		CalculateMacros(calories, p.Goal)
	})
	assert.ErrorIs(t, ValidateInputs(p, 0), ErrInvalidInputs)
	assert.NoError(t, ValidateInputs(profile(models.GoalMaintain, models.GenderMale, 180, 40), 75))
}
