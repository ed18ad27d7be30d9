package aiclient

import (
	"fmt"
	"strings"
)

const systemPrompt = "You are a professional nutritionist and meal planning expert. " +
	"You answer with a single JSON object and nothing else."

const responseSchema = `{
  "weeklyPlan": {
    "Lundi": {
      "breakfast": {"name": "string", "emoji": "string", "calories": 0, "protein": 0, "carbs": 0, "fats": 0,
                    "ingredients": ["string"], "instructions": ["string"], "prepTime": 0},
      "lunch": { same fields as breakfast },
      "dinner": { same fields as breakfast },
      "snacks": [ { same fields as breakfast } ]
    },
    "Mardi": { ... }, "Mercredi": { ... }, "Jeudi": { ... }, "Vendredi": { ... }, "Samedi": { ... }, "Dimanche": { ... }
  },
  "shoppingList": {
    "Proteins": ["string"], "Vegetables": ["string"], "Fruits": ["string"],
    "Starches": ["string"], "Dairy": ["string"], "Other": ["string"]
  }
}`

func listOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}

// buildPrompt turns the request into the user message sent to the model.
func buildPrompt(req PlanRequest) string {
	var b strings.Builder

	b.WriteString("Create a 7-day meal plan (Lundi to Dimanche) for the following person.\n\n")

	b.WriteString("USER PROFILE:\n")
	fmt.Fprintf(&b, "- Goal: %s\n", req.Goal)
	fmt.Fprintf(&b, "- Current weight: %.1f kg\n", req.CurrentWeight)
	fmt.Fprintf(&b, "- Target weight: %.1f kg\n", req.TargetWeight)
	fmt.Fprintf(&b, "- Height: %.0f cm\n", req.Height)
	fmt.Fprintf(&b, "- Age: %d years\n", req.Age)
	fmt.Fprintf(&b, "- Gender: %s\n\n", req.Gender)

	b.WriteString("DAILY TARGETS:\n")
	fmt.Fprintf(&b, "- Calories: %d kcal\n", req.DailyCalories)
	fmt.Fprintf(&b, "- Protein: %dg\n", req.Protein)
	fmt.Fprintf(&b, "- Carbs: %dg\n", req.Carbs)
	fmt.Fprintf(&b, "- Fats: %dg\n\n", req.Fats)

	b.WriteString("PREFERENCES:\n")
	fmt.Fprintf(&b, "- Dietary type: %s\n", req.DietaryType)
	fmt.Fprintf(&b, "- Allergies (never use): %s\n", listOrNone(req.Allergies))
	fmt.Fprintf(&b, "- Dislikes (avoid): %s\n", listOrNone(req.Dislikes))
	fmt.Fprintf(&b, "- Meals per day: %d\n", req.DailyMeals)
	fmt.Fprintf(&b, "- Snacks per day: %d\n", req.SnacksPerDay)
	fmt.Fprintf(&b, "- Cooking time: %s\n", req.CookingTime)
	fmt.Fprintf(&b, "- Budget: %s\n\n", req.BudgetLevel)

	b.WriteString("RULES:\n")
	b.WriteString("- Every day has a breakfast, a lunch, a dinner and exactly the requested number of snacks.\n")
	b.WriteString("- The meals of a day should add up to the daily targets.\n")
	b.WriteString("- Ingredients include quantities. Instructions are short steps.\n")
	b.WriteString("- prepTime is in minutes. calories, protein, carbs and fats are integers.\n")
	b.WriteString("- The shopping list groups every ingredient of the week by category.\n\n")

	b.WriteString("Respond ONLY with JSON matching this structure:\n")
	b.WriteString(responseSchema)
	b.WriteString("\n")
	return b.String()
}

// cleanResponse strips markdown fences and anything outside the outermost
// JSON object.
func cleanResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}
