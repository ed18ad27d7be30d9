package mealplan

import (
	"math"
	"strings"

	"fittrack/backend/models"
)

// SelectClosest returns the meal whose calories are nearest to target.
// Ties go to the first meal in catalog order. ok is false for an empty catalog.
func SelectClosest(catalog []models.Meal, target float64) (meal models.Meal, ok bool) {
	i := closestIndex(catalog, target, nil)
	if i < 0 {
		return models.Meal{}, false
	}
	return catalog[i], true
}

// closestIndex is SelectClosest over the entries not rejected by skip.
func closestIndex(catalog []models.Meal, target float64, skip func(models.Meal) bool) int {
	best := -1
	bestDiff := math.Inf(1)
	for i, m := range catalog {
		if skip != nil && skip(m) {
			continue
		}
		diff := math.Abs(float64(m.Calories) - target)
		if diff < bestDiff {
			best, bestDiff = i, diff
		}
	}
	return best
}

// filterByDiet keeps the meals tagged for diet.
func filterByDiet(meals []models.Meal, diet models.CatalogDiet) []models.Meal {
	out := make([]models.Meal, 0, len(meals))
	for _, m := range meals {
		if m.SuitsDiet(diet) {
			out = append(out, m)
		}
	}
	return out
}

// filterExcluded drops meals whose name or ingredients mention any of terms.
func filterExcluded(meals []models.Meal, terms []string) []models.Meal {
	lowered := make([]string, 0, len(terms))
	for _, t := range terms {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			lowered = append(lowered, t)
		}
	}
	if len(lowered) == 0 {
		return meals
	}

	out := make([]models.Meal, 0, len(meals))
	for _, m := range meals {
		if !mentionsAny(m, lowered) {
			out = append(out, m)
		}
	}
	return out
}

func mentionsAny(m models.Meal, terms []string) bool {
	texts := append([]string{m.Name}, m.Ingredients...)
	for _, text := range texts {
		text = strings.ToLower(text)
		for _, t := range terms {
			if strings.Contains(text, t) {
				return true
			}
		}
	}
	return false
}

// candidates narrows a slot catalog by diet then exclusions. When a step
// leaves nothing, the previous, wider list is used so every slot stays filled.
func candidates(meals []models.Meal, diet models.CatalogDiet, exclusions []string) []models.Meal {
	byDiet := filterByDiet(meals, diet)
	if len(byDiet) == 0 {
		byDiet = meals
	}
	allowed := filterExcluded(byDiet, exclusions)
	if len(allowed) == 0 {
		return byDiet
	}
	return allowed
}

// rotation picks the closest meal not yet used in its slot this week. Once
// every candidate has been used the slot starts over.
type rotation struct {
	meals []models.Meal
	used  map[string]bool
}

func newRotation(meals []models.Meal) *rotation {
	return &rotation{meals: meals, used: make(map[string]bool)}
}

func (r *rotation) next(target float64) *models.Meal {
	if len(r.meals) == 0 {
		return nil
	}
	i := closestIndex(r.meals, target, func(m models.Meal) bool { return r.used[m.Name] })
	if i < 0 {
		r.used = make(map[string]bool)
		i = closestIndex(r.meals, target, nil)
	}
	r.used[r.meals[i].Name] = true
	m := cloneMeal(r.meals[i])
	return &m
}

func cloneMeal(m models.Meal) models.Meal {
	m.Ingredients = append([]string(nil), m.Ingredients...)
	m.Instructions = append([]string(nil), m.Instructions...)
	m.Diets = nil
	return m
}
