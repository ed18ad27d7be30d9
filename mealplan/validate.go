package mealplan

import (
	"errors"
	"fmt"

	"fittrack/backend/models"
)

// ErrInvalidPlan wraps every shape problem found by ValidateWeeklyPlan.
var ErrInvalidPlan = errors.New("invalid weekly plan")

// ValidateWeeklyPlan checks that plan has seven days, that breakfast, lunch and
// dinner are present on each, and that every meal has a name, positive
// calories and at least one ingredient. The number of snacks is not checked.
func ValidateWeeklyPlan(plan models.WeeklyPlan) error {
	if len(plan) != len(Days) {
		return fmt.Errorf("%w: expected %d days, got %d", ErrInvalidPlan, len(Days), len(plan))
	}
	for _, day := range orderedDays(plan) {
		d := plan[day]
		slots := []struct {
			name string
			meal *models.Meal
		}{
			{"breakfast", d.Breakfast},
			{"lunch", d.Lunch},
			{"dinner", d.Dinner},
		}
		for _, s := range slots {
			if s.meal == nil {
				return fmt.Errorf("%w: %s has no %s", ErrInvalidPlan, day, s.name)
			}
			if err := validateMeal(*s.meal); err != nil {
				return fmt.Errorf("%w: %s %s: %v", ErrInvalidPlan, day, s.name, err)
			}
		}
		for i, snack := range d.Snacks {
			if err := validateMeal(snack); err != nil {
				return fmt.Errorf("%w: %s snack %d: %v", ErrInvalidPlan, day, i+1, err)
			}
		}
	}
	return nil
}

func validateMeal(m models.Meal) error {
	switch {
	case m.Name == "":
		return errors.New("missing name")
	case m.Calories <= 0:
		return errors.New("calories must be positive")
	case len(m.Ingredients) == 0:
		return errors.New("no ingredients")
	}
	return nil
}
