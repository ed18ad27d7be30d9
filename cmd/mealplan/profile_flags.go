package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"fittrack/backend/models"
	"fittrack/backend/nutrition"
)

type profileFlags struct {
	goal         string
	weight       float64
	targetWeight float64
	height       float64
	age          int
	gender       string
}

func (p *profileFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.goal, "goal", string(models.GoalMaintain), "Goal: lose_weight, gain_muscle or maintain")
	cmd.Flags().Float64Var(&p.weight, "weight", 0, "Current weight in kg")
	cmd.Flags().Float64Var(&p.targetWeight, "target-weight", 0, "Target weight in kg (defaults to current weight)")
	cmd.Flags().Float64Var(&p.height, "height", 0, "Height in cm")
	cmd.Flags().IntVar(&p.age, "age", 0, "Age in years")
	cmd.Flags().StringVar(&p.gender, "gender", string(models.GenderOther), "Gender: male, female or other")
	_ = cmd.MarkFlagRequired("weight")
	_ = cmd.MarkFlagRequired("height")
	_ = cmd.MarkFlagRequired("age")
}

func (p *profileFlags) profile() (models.UserProfile, error) {
	switch models.Goal(p.goal) {
	case models.GoalLoseWeight, models.GoalGainMuscle, models.GoalMaintain:
	default:
		return models.UserProfile{}, fmt.Errorf("unknown goal %q", p.goal)
	}
	switch models.Gender(p.gender) {
	case models.GenderMale, models.GenderFemale, models.GenderOther:
	default:
		return models.UserProfile{}, fmt.Errorf("unknown gender %q", p.gender)
	}

	target := p.targetWeight
	if target == 0 {
		target = p.weight
	}
	profile := models.UserProfile{
		Goal:          models.Goal(p.goal),
		CurrentWeight: p.weight,
		TargetWeight:  target,
		Height:        p.height,
		Age:           p.age,
		Gender:        models.Gender(p.gender),
	}
	if err := nutrition.ValidateInputs(profile, p.weight); err != nil {
		return profile, err
	}
	return profile, nil
}
