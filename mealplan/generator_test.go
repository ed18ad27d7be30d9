package mealplan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fittrack/backend/models"
)

func meal(name string, calories int, ingredients ...string) models.Meal {
	return models.Meal{Name: name, Calories: calories, Ingredients: ingredients}
}

func namesSuiting(meals []models.Meal, diet models.CatalogDiet) map[string]bool {
	names := make(map[string]bool)
	for _, m := range meals {
		if m.SuitsDiet(diet) {
			names[m.Name] = true
		}
	}
	return names
}

func TestGenerateWeeklyMealPlan_Structure(t *testing.T) {
	g := NewGenerator()
	diets := []models.DietaryType{models.DietaryOmnivore, models.DietaryVegetarian, models.DietaryVegan, models.DietaryPescatarian}

	for _, diet := range diets {
		for snacks := 0; snacks <= 3; snacks++ {
			plan := g.GenerateWeeklyMealPlan(2000, 3, snacks, diet)

			require.Len(t, plan, 7, "diet %s snacks %d", diet, snacks)
			for _, day := range Days {
				d, ok := plan[day]
				require.True(t, ok, "missing %s", day)
				assert.NotNil(t, d.Breakfast)
				assert.NotNil(t, d.Lunch)
				assert.NotNil(t, d.Dinner)
				assert.Len(t, d.Snacks, snacks)
			}
			assert.NoError(t, ValidateWeeklyPlan(plan))
		}
	}
}

func TestGenerateWeeklyMealPlan_NegativeSnacksMeansNone(t *testing.T) {
	plan := NewGenerator().GenerateWeeklyMealPlan(2000, 3, -2, models.DietaryOmnivore)
	for _, day := range Days {
		assert.Empty(t, plan[day].Snacks)
	}
}

func TestGenerateWeeklyMealPlan_RespectsDiet(t *testing.T) {
	catalog := DefaultCatalog()
	g := NewGeneratorWithCatalog(catalog)

	cases := map[models.DietaryType]models.CatalogDiet{
		models.DietaryVegan:       models.CatalogVegan,
		models.DietaryVegetarian:  models.CatalogVegetarian,
		models.DietaryPescatarian: models.CatalogPescatarian,
	}
	for dietary, catalogDiet := range cases {
		plan := g.GenerateWeeklyMealPlan(2200, 3, 2, dietary)
		breakfasts := namesSuiting(catalog.Breakfast, catalogDiet)
		lunches := namesSuiting(catalog.Lunch, catalogDiet)
		dinners := namesSuiting(catalog.Dinner, catalogDiet)
		snacks := namesSuiting(catalog.Snacks, catalogDiet)

		for day, d := range plan {
			assert.True(t, breakfasts[d.Breakfast.Name], "%s %s breakfast %s", dietary, day, d.Breakfast.Name)
			assert.True(t, lunches[d.Lunch.Name], "%s %s lunch %s", dietary, day, d.Lunch.Name)
			assert.True(t, dinners[d.Dinner.Name], "%s %s dinner %s", dietary, day, d.Dinner.Name)
			for _, s := range d.Snacks {
				assert.True(t, snacks[s.Name], "%s %s snack %s", dietary, day, s.Name)
			}
		}
	}
}

func TestGenerateWeeklyMealPlan_ClosestWithRotation(t *testing.T) {
	g := NewGeneratorWithCatalog(Catalog{
		Breakfast: []models.Meal{meal("A", 300, "x"), meal("B", 500, "x"), meal("C", 800, "x")},
		Lunch:     []models.Meal{meal("L", 700, "x")},
		Dinner:    []models.Meal{meal("D", 600, "x")},
		Snacks:    []models.Meal{meal("S", 200, "x")},
	})

	// 2000 kcal with one snack: breakfast target is 500.
	plan := g.GenerateWeeklyMealPlan(2000, 3, 1, models.DietaryOmnivore)

	got := make([]string, 0, len(Days))
	for _, day := range Days {
		got = append(got, plan[day].Breakfast.Name)
	}
	assert.Equal(t, []string{"B", "A", "C", "B", "A", "C", "B"}, got)
	assert.Equal(t, "L", plan["Dimanche"].Lunch.Name)
}

func TestSlotTargets(t *testing.T) {
	b, l, d, s := slotTargets(2000, 2)
	assert.InDelta(t, 500, b, 1e-9)
	assert.InDelta(t, 700, l, 1e-9)
	assert.InDelta(t, 600, d, 1e-9)
	assert.InDelta(t, 100, s, 1e-9)

	b, l, d, s = slotTargets(1800, 0)
	assert.InDelta(t, 500, b, 1e-9)
	assert.InDelta(t, 700, l, 1e-9)
	assert.InDelta(t, 600, d, 1e-9)
	assert.Zero(t, s)
}

func TestGenerateWeeklyMealPlanExcluding_DropsAllergens(t *testing.T) {
	plan := NewGenerator().GenerateWeeklyMealPlanExcluding(2000, 3, 2, models.DietaryVegetarian, []string{"Œuf", " "})

	for day, d := range plan {
		for _, m := range d.Meals() {
			assert.NotContains(t, strings.ToLower(m.Name), "œuf", "%s %s", day, m.Name)
			for _, ing := range m.Ingredients {
				assert.NotContains(t, strings.ToLower(ing), "œuf", "%s %s", day, m.Name)
			}
		}
	}
}

func TestGenerateWeeklyMealPlanExcluding_KeepsStructureWhenEverythingIsExcluded(t *testing.T) {
	g := NewGeneratorWithCatalog(Catalog{
		Breakfast: []models.Meal{meal("Arachides", 400, "cacahuète")},
		Lunch:     []models.Meal{meal("Satay", 600, "cacahuète")},
		Dinner:    []models.Meal{meal("Mafé", 600, "cacahuète")},
		Snacks:    []models.Meal{meal("Beurre", 150, "cacahuète")},
	})

	plan := g.GenerateWeeklyMealPlanExcluding(1800, 3, 1, models.DietaryOmnivore, []string{"cacahuète"})

	require.Len(t, plan, 7)
	assert.NoError(t, ValidateWeeklyPlan(plan))
}

func TestGenerateWeeklyMealPlan_DoesNotAliasCatalog(t *testing.T) {
	g := NewGenerator()
	plan := g.GenerateWeeklyMealPlan(2000, 3, 1, models.DietaryOmnivore)

	plan["Lundi"].Breakfast.Ingredients[0] = "modifié"

	for _, m := range g.Catalog().Breakfast {
		assert.NotEqual(t, "modifié", m.Ingredients[0])
	}
}

func TestGenerateDailyPlan_Standard(t *testing.T) {
	profile := models.UserProfile{Goal: models.GoalLoseWeight, TargetWeight: 70, Height: 180, Age: 30, Gender: models.GenderMale}

	plan := NewGenerator().GenerateDailyPlan(profile, 80, models.CatalogStandard)

	assert.Equal(t, 2476, plan.Target.Calories)
	assert.Equal(t, "Pancakes à la banane", plan.Breakfast.Name)
	assert.Equal(t, "Pâtes complètes au pesto et poulet", plan.Lunch.Name)
	assert.Equal(t, "Steak haché et purée maison", plan.Dinner.Name)
	assert.Equal(t, "Mix de fruits secs", plan.Snack.Name)
	assert.Equal(t, 2120, plan.Totals.Calories)
}

func TestGenerateDailyPlan_Vegan(t *testing.T) {
	profile := models.UserProfile{Goal: models.GoalLoseWeight, TargetWeight: 70, Height: 180, Age: 30, Gender: models.GenderMale}

	plan := NewGenerator().GenerateDailyPlan(profile, 80, models.CatalogVegan)

	assert.Equal(t, "Porridge aux fruits rouges", plan.Breakfast.Name)
	assert.Equal(t, "Chili sin carne", plan.Lunch.Name)
	assert.Equal(t, "Wok de tofu et nouilles", plan.Dinner.Name)
	assert.Equal(t, "Mix de fruits secs", plan.Snack.Name)
}

func TestGenerateDailyPlan_UntaggedDietUsesFullCatalog(t *testing.T) {
	profile := models.UserProfile{Goal: models.GoalLoseWeight, TargetWeight: 70, Height: 180, Age: 30, Gender: models.GenderMale}
	g := NewGenerator()

	keto := g.GenerateDailyPlan(profile, 80, models.CatalogKeto)
	standard := g.GenerateDailyPlan(profile, 80, models.CatalogStandard)

	assert.Equal(t, standard.Breakfast.Name, keto.Breakfast.Name)
	assert.Equal(t, standard.Totals.Calories, keto.Totals.Calories)
	assert.Equal(t, models.CatalogKeto, keto.Diet)
}

func TestSelectClosest(t *testing.T) {
	catalog := []models.Meal{meal("A", 400), meal("B", 600), meal("C", 520)}

	m, ok := SelectClosest(catalog, 500)
	require.True(t, ok)
	assert.Equal(t, "C", m.Name)

	m, ok = SelectClosest(catalog[:2], 500)
	require.True(t, ok)
	assert.Equal(t, "A", m.Name, "ties go to the first entry")

	_, ok = SelectClosest(nil, 500)
	assert.False(t, ok)
}
