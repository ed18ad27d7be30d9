package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"fittrack/backend/mealplan"
	"fittrack/backend/models"
	"fittrack/backend/services"
)

// MealPlanHandler serves nutrition targets and meal plans.
type MealPlanHandler struct {
	planService *services.PlanService
	generator   *mealplan.Generator
	validator   *validator.Validate
}

func NewMealPlanHandler(planService *services.PlanService, generator *mealplan.Generator) *MealPlanHandler {
	return &MealPlanHandler{
		planService: planService,
		generator:   generator,
		validator:   validator.New(),
	}
}

// GetTarget handles GET /api/v1/nutrition/target?strategy=
func (h *MealPlanHandler) GetTarget(c *fiber.Ctx) error {
	userID, err := getUserIDFromContext(c, "GetTarget")
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, err.Error())
	}

	target, err := h.planService.Target(c.Context(), userID, c.Query("strategy"))
	if err != nil {
		log.Printf("Error computing nutrition target for user %s: %v", userID, err)
		return serviceError(c, err, "Failed to compute nutrition target")
	}
	return success(c, fiber.StatusOK, "Nutrition target computed successfully", target)
}

// Generate handles POST /api/v1/meal-plans/generate. AI failures never
// surface here; the response carries source and fallback_reason instead.
func (h *MealPlanHandler) Generate(c *fiber.Ctx) error {
	userID, err := getUserIDFromContext(c, "Generate")
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, err.Error())
	}

	plan, err := h.planService.Generate(c.Context(), userID)
	if err != nil {
		log.Printf("Error generating meal plan for user %s: %v", userID, err)
		return serviceError(c, err, "Failed to generate meal plan")
	}

	message := "Meal plan generated successfully"
	if plan.Source == models.PlanSourceLocal {
		message = "Meal plan generated locally"
	}
	return success(c, fiber.StatusOK, message, plan)
}

// GenerateAI handles POST /api/v1/meal-plans/ai, the raw AI path without
// fallback. Failures answer {"error", "details"}.
func (h *MealPlanHandler) GenerateAI(c *fiber.Ctx) error {
	userID, err := getUserIDFromContext(c, "GenerateAI")
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, err.Error())
	}

	resp, err := h.planService.GenerateAIOnly(c.Context(), userID)
	if err != nil {
		log.Printf("Error generating AI meal plan for user %s: %v", userID, err)
		// Missing profile or unusable inputs are client errors, not AI failures
		if !errors.Is(err, services.ErrAIPlanFailed) {
			return serviceError(c, err, "Failed to generate meal plan")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to generate meal plan",
			"details": err.Error(),
		})
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

// GenerateLocal handles POST /api/v1/meal-plans/local
func (h *MealPlanHandler) GenerateLocal(c *fiber.Ctx) error {
	var req models.LocalPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return fail(c, fiber.StatusBadRequest, fmt.Sprintf("Invalid data: %v", err))
	}
	if req.DailyMeals == 0 {
		req.DailyMeals = 3
	}
	if req.DietaryType == "" {
		req.DietaryType = models.DietaryOmnivore
	}

	exclusions := append(append([]string{}, req.Allergies...), req.Dislikes...)
	week := h.generator.GenerateWeeklyMealPlanExcluding(req.DailyCalories, req.DailyMeals, req.SnacksPerDay, req.DietaryType, exclusions)

	return success(c, fiber.StatusOK, "Meal plan generated locally", models.LocalPlanResponse{
		WeeklyPlan:   week,
		ShoppingList: mealplan.GenerateShoppingList(week),
	})
}

// GenerateDaily handles POST /api/v1/meal-plans/daily
func (h *MealPlanHandler) GenerateDaily(c *fiber.Ctx) error {
	userID, err := getUserIDFromContext(c, "GenerateDaily")
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, err.Error())
	}

	var req models.DailyPlanRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badBody(c, err)
		}
	}
	if err := h.validator.Struct(req); err != nil {
		return fail(c, fiber.StatusBadRequest, fmt.Sprintf("Invalid data: %v", err))
	}

	plan, err := h.planService.DailyPlan(c.Context(), userID, req.Diet)
	if err != nil {
		return serviceError(c, err, "Failed to generate daily plan")
	}
	return success(c, fiber.StatusOK, "Daily plan generated successfully", plan)
}

// Latest handles GET /api/v1/meal-plans/latest
func (h *MealPlanHandler) Latest(c *fiber.Ctx) error {
	userID, err := getUserIDFromContext(c, "Latest")
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, err.Error())
	}

	plan, err := h.planService.Latest(c.Context(), userID)
	if err != nil {
		return serviceError(c, err, "Failed to retrieve meal plan")
	}
	return success(c, fiber.StatusOK, "Meal plan retrieved successfully", plan)
}

// LatestShoppingList handles GET /api/v1/meal-plans/latest/shopping-list
func (h *MealPlanHandler) LatestShoppingList(c *fiber.Ctx) error {
	userID, err := getUserIDFromContext(c, "LatestShoppingList")
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, err.Error())
	}

	plan, err := h.planService.Latest(c.Context(), userID)
	if err != nil {
		return serviceError(c, err, "Failed to retrieve shopping list")
	}
	return success(c, fiber.StatusOK, "Shopping list retrieved successfully", plan.ShoppingList)
}

// SetupMealPlanRoutes registers the nutrition and meal plan endpoints.
func SetupMealPlanRoutes(api fiber.Router, planService *services.PlanService, generator *mealplan.Generator, authMiddleware fiber.Handler) {
	h := NewMealPlanHandler(planService, generator)

	api.Get("/nutrition/target", authMiddleware, h.GetTarget)

	plans := api.Group("/meal-plans", authMiddleware)
	plans.Post("/generate", h.Generate)
	plans.Post("/ai", h.GenerateAI)
	plans.Post("/local", h.GenerateLocal)
	plans.Post("/daily", h.GenerateDaily)
	plans.Get("/latest", h.Latest)
	plans.Get("/latest/shopping-list", h.LatestShoppingList)
	log.Println("Meal plan routes setup complete.")
}
