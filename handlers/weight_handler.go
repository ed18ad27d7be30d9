package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"fittrack/backend/models"
	"fittrack/backend/services"
)

// WeightHandler exposes the weight history.
type WeightHandler struct {
	weightService *services.WeightService
}

func NewWeightHandler(weightService *services.WeightService) *WeightHandler {
	return &WeightHandler{weightService: weightService}
}

// AddEntry handles POST /api/v1/weights
func (h *WeightHandler) AddEntry(c *fiber.Ctx) error {
	userID, err := getUserIDFromContext(c, "AddEntry")
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, err.Error())
	}

	var req models.CreateWeightEntryRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing weight entry body for user %s: %v", userID, err)
		return badBody(c, err)
	}

	entry, err := h.weightService.AddEntry(c.Context(), userID, req)
	if err != nil {
		return serviceError(c, err, "Failed to add weight entry")
	}
	return success(c, fiber.StatusCreated, "Weight entry added successfully", entry)
}

// ListEntries handles GET /api/v1/weights
func (h *WeightHandler) ListEntries(c *fiber.Ctx) error {
	userID, err := getUserIDFromContext(c, "ListEntries")
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, err.Error())
	}

	entries, err := h.weightService.ListEntries(c.Context(), userID)
	if err != nil {
		return serviceError(c, err, "Failed to retrieve weight history")
	}
	return success(c, fiber.StatusOK, "Weight history retrieved successfully", entries)
}

// LatestEntry handles GET /api/v1/weights/latest
func (h *WeightHandler) LatestEntry(c *fiber.Ctx) error {
	userID, err := getUserIDFromContext(c, "LatestEntry")
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, err.Error())
	}

	entry, err := h.weightService.LatestEntry(c.Context(), userID)
	if err != nil {
		return serviceError(c, err, "Failed to retrieve latest weight")
	}
	return success(c, fiber.StatusOK, "Latest weight retrieved successfully", entry)
}

func entryIDParam(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		log.Printf("Invalid weight entry ID format in URL parameter: %s", c.Params("id"))
	}
	return id, err
}

// UpdateEntry handles PUT /api/v1/weights/:id
func (h *WeightHandler) UpdateEntry(c *fiber.Ctx) error {
	userID, err := getUserIDFromContext(c, "UpdateEntry")
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, err.Error())
	}
	entryID, err := entryIDParam(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid weight entry ID format")
	}

	var req models.UpdateWeightEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}

	entry, err := h.weightService.UpdateEntry(c.Context(), userID, entryID, req)
	if err != nil {
		return serviceError(c, err, "Failed to update weight entry")
	}
	return success(c, fiber.StatusOK, "Weight entry updated successfully", entry)
}

// DeleteEntry handles DELETE /api/v1/weights/:id
func (h *WeightHandler) DeleteEntry(c *fiber.Ctx) error {
	userID, err := getUserIDFromContext(c, "DeleteEntry")
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, err.Error())
	}
	entryID, err := entryIDParam(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid weight entry ID format")
	}

	if err := h.weightService.DeleteEntry(c.Context(), userID, entryID); err != nil {
		return serviceError(c, err, "Failed to delete weight entry")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success", "message": "Weight entry deleted successfully",
	})
}

// SetupWeightRoutes registers the weight history endpoints.
func SetupWeightRoutes(api fiber.Router, weightService *services.WeightService, authMiddleware fiber.Handler) {
	h := NewWeightHandler(weightService)
	weights := api.Group("/weights", authMiddleware)
	weights.Post("/", h.AddEntry)
	weights.Get("/", h.ListEntries)
	weights.Get("/latest", h.LatestEntry)
	weights.Put("/:id", h.UpdateEntry)
	weights.Delete("/:id", h.DeleteEntry)
	log.Println("Weight routes setup complete.")
}
