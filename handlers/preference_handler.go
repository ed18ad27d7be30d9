package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"fittrack/backend/models"
	"fittrack/backend/services"
)

type PreferenceHandler struct {
	preferenceService *services.PreferenceService
}

func NewPreferenceHandler(preferenceService *services.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{preferenceService: preferenceService}
}

// GetPreferences handles GET /api/v1/preferences
func (h *PreferenceHandler) GetPreferences(c *fiber.Ctx) error {
	userID, err := getUserIDFromContext(c, "GetPreferences")
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, err.Error())
	}

	prefs, err := h.preferenceService.GetPreferences(c.Context(), userID)
	if err != nil {
		return serviceError(c, err, "Failed to retrieve preferences")
	}
	return success(c, fiber.StatusOK, "Preferences retrieved successfully", prefs)
}

// UpsertPreferences handles PUT /api/v1/preferences
func (h *PreferenceHandler) UpsertPreferences(c *fiber.Ctx) error {
	userID, err := getUserIDFromContext(c, "UpsertPreferences")
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, err.Error())
	}

	var req models.UpsertMealPreferencesRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing preferences body for user %s: %v", userID, err)
		return badBody(c, err)
	}

	prefs, err := h.preferenceService.UpsertPreferences(c.Context(), userID, req)
	if err != nil {
		return serviceError(c, err, "Failed to save preferences")
	}
	return success(c, fiber.StatusOK, "Preferences saved successfully", prefs)
}

func SetupPreferenceRoutes(api fiber.Router, preferenceService *services.PreferenceService, authMiddleware fiber.Handler) {
	h := NewPreferenceHandler(preferenceService)
	prefs := api.Group("/preferences", authMiddleware)
	prefs.Get("/", h.GetPreferences)
	prefs.Put("/", h.UpsertPreferences)
	log.Println("Preference routes setup complete.")
}
