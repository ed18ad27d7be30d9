package mealplan

import (
	"sort"
	"strings"

	"fittrack/backend/models"
)

// Shopping list categories, in classification priority order.
const (
	CategoryProteins   = "Proteins"
	CategoryVegetables = "Vegetables"
	CategoryFruits     = "Fruits"
	CategoryStarches   = "Starches"
	CategoryDairy      = "Dairy"
	CategoryOther      = "Other"
)

type categoryKeywords struct {
	name     string
	keywords []string
}

// Order matters: the first category with a matching keyword wins, so
// "pommes de terre" sits in Vegetables ahead of the "pomme" fruit keyword.
var categories = []categoryKeywords{
	{CategoryProteins, []string{
		"poulet", "dinde", "bœuf", "boeuf", "steak", "porc", "jambon", "saumon", "thon", "cabillaud",
		"poisson", "crevette", "œuf", "oeuf", "tofu", "tempeh", "seitan", "lentille", "pois chiche",
		"protéine", "chicken", "beef", "turkey", "salmon", "tuna", "egg",
	}},
	{CategoryVegetables, []string{
		"pomme de terre", "pommes de terre", "épinard", "epinard", "brocoli", "tomate", "carotte",
		"courgette", "poivron", "concombre", "oignon", "champignon", "salade", "haricot", "maïs",
		"pois gourmand", "edamame", "aubergine", "chou", "laitue", "légume", "spinach", "broccoli", "tomato",
		"carrot", "onion",
	}},
	{CategoryFruits, []string{
		"banane", "pomme", "fruits rouges", "fraise", "myrtille", "framboise", "mangue", "orange",
		"citron", "kiwi", "ananas", "poire", "raisin", "avocat", "banana", "apple", "berries",
	}},
	{CategoryStarches, []string{
		"riz", "pâte", "pate", "pain", "quinoa", "avoine", "granola", "patate douce", "nouille",
		"galette", "bagel", "farine", "semoule", "boulgour", "rice", "pasta", "bread", "oat",
	}},
	{CategoryDairy, []string{
		"lait", "yaourt", "fromage", "feta", "mozzarella", "parmesan", "emmental", "beurre", "crème",
		"skyr", "milk", "yogurt", "cheese",
	}},
}

// Categorize returns the shopping category of one ingredient string.
func Categorize(ingredient string) string {
	lowered := strings.ToLower(ingredient)
	for _, c := range categories {
		for _, k := range c.keywords {
			if strings.Contains(lowered, k) {
				return c.name
			}
		}
	}
	return CategoryOther
}

// GenerateShoppingList classifies every ingredient of every meal of the plan.
// Entries are deduplicated by exact string within a category; textual variants
// of the same food stay separate. Empty categories are omitted.
func GenerateShoppingList(plan models.WeeklyPlan) models.ShoppingList {
	list := make(models.ShoppingList)
	seen := make(map[string]map[string]bool)

	for _, day := range orderedDays(plan) {
		for _, meal := range plan[day].Meals() {
			for _, ingredient := range meal.Ingredients {
				category := Categorize(ingredient)
				if seen[category] == nil {
					seen[category] = make(map[string]bool)
				}
				if seen[category][ingredient] {
					continue
				}
				seen[category][ingredient] = true
				list[category] = append(list[category], ingredient)
			}
		}
	}
	return list
}

// orderedDays lists the plan's keys: known days Monday first, then any other
// keys alphabetically.
func orderedDays(plan models.WeeklyPlan) []string {
	days := make([]string, 0, len(plan))
	known := make(map[string]bool, len(Days))
	for _, d := range Days {
		known[d] = true
		if _, ok := plan[d]; ok {
			days = append(days, d)
		}
	}
	var others []string
	for d := range plan {
		if !known[d] {
			others = append(others, d)
		}
	}
	sort.Strings(others)
	return append(days, others...)
}
