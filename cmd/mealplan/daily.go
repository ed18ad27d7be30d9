package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"fittrack/backend/mealplan"
	"fittrack/backend/models"
)

var (
	dailyProfile profileFlags
	dailyDiet    string
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Pick the closest catalog meal per slot for one day",
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := dailyProfile.profile()
		if err != nil {
			return err
		}
		plan := mealplan.NewGenerator().GenerateDailyPlan(profile, profile.CurrentWeight, models.CatalogDiet(dailyDiet))
		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), plan)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Target: %d kcal (P%d C%d F%d)\n", plan.Target.Calories, plan.Target.Protein, plan.Target.Carbs, plan.Target.Fats)
		printMeal(out, "breakfast", &plan.Breakfast)
		printMeal(out, "lunch", &plan.Lunch)
		printMeal(out, "dinner", &plan.Dinner)
		printMeal(out, "snack", &plan.Snack)
		fmt.Fprintf(out, "Total: %d kcal (P%d C%d F%d)\n", plan.Totals.Calories, plan.Totals.Protein, plan.Totals.Carbs, plan.Totals.Fats)
		return nil
	},
}

func init() {
	dailyProfile.register(dailyCmd)
	dailyCmd.Flags().StringVar(&dailyDiet, "diet", string(models.CatalogStandard), "Catalog diet: standard, vegetarian, vegan, pescatarian, gluten_free, halal, keto, paleo")
	rootCmd.AddCommand(dailyCmd)
}
