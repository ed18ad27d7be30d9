package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"fittrack/backend/mealplan"
	"fittrack/backend/models"
)

var (
	generateCalories int
	generateMeals    int
	generateSnacks   int
	generateDiet     string
	generateExclude  []string
)

func weeklyPlanFromFlags() (models.WeeklyPlan, error) {
	if generateCalories <= 0 {
		return nil, errors.New("--calories must be greater than zero")
	}
	switch models.DietaryType(generateDiet) {
	case models.DietaryOmnivore, models.DietaryVegetarian, models.DietaryVegan, models.DietaryPescatarian:
	default:
		return nil, fmt.Errorf("unknown diet %q", generateDiet)
	}
	gen := mealplan.NewGenerator()
	return gen.GenerateWeeklyMealPlanExcluding(generateCalories, generateMeals, generateSnacks, models.DietaryType(generateDiet), generateExclude), nil
}

func printMeal(w io.Writer, slot string, m *models.Meal) {
	if m == nil {
		return
	}
	fmt.Fprintf(w, "  %-10s %s %s (%d kcal, P%d C%d F%d)\n", slot, m.Emoji, m.Name, m.Calories, m.Protein, m.Carbs, m.Fats)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a weekly meal plan from the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := weeklyPlanFromFlags()
		if err != nil {
			return err
		}
		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), models.LocalPlanResponse{
				WeeklyPlan:   plan,
				ShoppingList: mealplan.GenerateShoppingList(plan),
			})
		}
		out := cmd.OutOrStdout()
		for _, day := range mealplan.Days {
			d := plan[day]
			fmt.Fprintln(out, day)
			printMeal(out, "breakfast", d.Breakfast)
			printMeal(out, "lunch", d.Lunch)
			printMeal(out, "dinner", d.Dinner)
			for i := range d.Snacks {
				printMeal(out, "snack", &d.Snacks[i])
			}
		}
		return nil
	},
}

var shoppingCmd = &cobra.Command{
	Use:   "shopping",
	Short: "Print the shopping list of a generated weekly plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := weeklyPlanFromFlags()
		if err != nil {
			return err
		}
		list := mealplan.GenerateShoppingList(plan)
		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), list)
		}
		out := cmd.OutOrStdout()
		for _, category := range []string{
			mealplan.CategoryProteins, mealplan.CategoryVegetables, mealplan.CategoryFruits,
			mealplan.CategoryStarches, mealplan.CategoryDairy, mealplan.CategoryOther,
		} {
			items, ok := list[category]
			if !ok {
				continue
			}
			fmt.Fprintf(out, "%s: %s\n", category, strings.Join(items, ", "))
		}
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{generateCmd, shoppingCmd} {
		cmd.Flags().IntVar(&generateCalories, "calories", 2000, "Daily calories")
		cmd.Flags().IntVar(&generateMeals, "meals", 3, "Meals per day")
		cmd.Flags().IntVar(&generateSnacks, "snacks", 1, "Snacks per day")
		cmd.Flags().StringVar(&generateDiet, "diet", string(models.DietaryOmnivore), "omnivore, vegetarian, vegan or pescatarian")
		cmd.Flags().StringSliceVar(&generateExclude, "exclude", nil, "Ingredients to avoid (allergies, dislikes)")
		rootCmd.AddCommand(cmd)
	}
}
