package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"fittrack/backend/nutrition"
)

var (
	targetsProfile  profileFlags
	targetsStrategy string
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "Compute daily calories and macros",
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := targetsProfile.profile()
		if err != nil {
			return err
		}
		strategy, err := nutrition.Lookup(targetsStrategy)
		if err != nil {
			return err
		}
		target := strategy.Target(profile, profile.CurrentWeight)
		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), target)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Strategy: %s\nCalories: %d\nProtein: %dg\nCarbs: %dg\nFats: %dg\n",
			target.Strategy, target.Calories, target.Protein, target.Carbs, target.Fats)
		return nil
	},
}

func init() {
	targetsProfile.register(targetsCmd)
	targetsCmd.Flags().StringVar(&targetsStrategy, "strategy", nutrition.StrategyMifflinStJeor, "mifflin_st_jeor or weight_based")
	rootCmd.AddCommand(targetsCmd)
}
