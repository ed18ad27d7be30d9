package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"fittrack/backend/models"
	"fittrack/backend/services"
)

// ProfileHandler handles onboarding and profile settings.
type ProfileHandler struct {
	profileService *services.ProfileService
}

func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// CompleteOnboarding handles POST /api/v1/profile/onboarding
func (h *ProfileHandler) CompleteOnboarding(c *fiber.Ctx) error {
	userID, err := getUserIDFromContext(c, "CompleteOnboarding")
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, err.Error())
	}

	var req models.OnboardingRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing onboarding request body for user %s: %v", userID, err)
		return badBody(c, err)
	}
	log.Printf("Received onboarding request from user %s: %+v", userID, req)

	profile, err := h.profileService.CompleteOnboarding(c.Context(), userID, req)
	if err != nil {
		log.Printf("Error completing onboarding for user %s: %v", userID, err)
		return serviceError(c, err, "Failed to complete onboarding")
	}
	return success(c, fiber.StatusCreated, "Onboarding completed successfully", profile)
}

// GetProfile handles GET /api/v1/profile
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := getUserIDFromContext(c, "GetProfile")
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, err.Error())
	}

	profile, err := h.profileService.GetProfile(c.Context(), userID)
	if err != nil {
		log.Printf("Error fetching profile for user %s: %v", userID, err)
		return serviceError(c, err, "Failed to retrieve profile")
	}
	return success(c, fiber.StatusOK, "Profile retrieved successfully", profile)
}

// UpdateProfile handles PUT /api/v1/profile
func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, err := getUserIDFromContext(c, "UpdateProfile")
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, err.Error())
	}

	var req models.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update profile request body for user %s: %v", userID, err)
		return badBody(c, err)
	}

	profile, err := h.profileService.UpdateProfile(c.Context(), userID, req)
	if err != nil {
		log.Printf("Error updating profile for user %s: %v", userID, err)
		return serviceError(c, err, "Failed to update profile")
	}
	return success(c, fiber.StatusOK, "Profile updated successfully", profile)
}

// SetupProfileRoutes registers the profile endpoints.
func SetupProfileRoutes(api fiber.Router, profileService *services.ProfileService, authMiddleware fiber.Handler) {
	h := NewProfileHandler(profileService)
	profile := api.Group("/profile", authMiddleware)
	profile.Post("/onboarding", h.CompleteOnboarding)
	profile.Get("/", h.GetProfile)
	profile.Put("/", h.UpdateProfile)
	log.Println("Profile routes setup complete.")
}
