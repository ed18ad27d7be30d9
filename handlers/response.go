package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"fittrack/backend/nutrition"
	"fittrack/backend/planstore"
	"fittrack/backend/services"
)

// getUserIDFromContext reads the id stored by middleware.Protected.
func getUserIDFromContext(c *fiber.Ctx, handlerName string) (uuid.UUID, error) {
	userIDLocal := c.Locals("userID")
	if userIDLocal == nil {
		log.Printf("Error: User ID not found in context (%s)", handlerName)
		return uuid.Nil, errors.New("unauthorized: Missing user identification")
	}

	switch id := userIDLocal.(type) {
	case uuid.UUID:
		return id, nil
	case string:
		parsedID, err := uuid.Parse(id)
		if err != nil {
			log.Printf("Error: Invalid User ID format in context (%s): %s", handlerName, id)
			return uuid.Nil, errors.New("unauthorized: Invalid user identification format")
		}
		return parsedID, nil
	default:
		log.Printf("Error: Unexpected User ID type in context (%s): %T", handlerName, userIDLocal)
		return uuid.Nil, errors.New("unauthorized: Unexpected user identification type")
	}
}

func success(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(fiber.Map{
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"status":  "error",
		"message": message,
	})
}

func badBody(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"status":  "error",
		"message": "Invalid request body",
		"details": err.Error(),
	})
}

// serviceError maps service errors to a status code and a client message.
// Unknown errors become a 500 with the generic fallback message.
func serviceError(c *fiber.Ctx, err error, fallback string) error {
	var validationErrors validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrors):
		return fail(c, fiber.StatusBadRequest, fmt.Sprintf("Invalid data: %v", validationErrors))
	case errors.Is(err, services.ErrProfileNotFound),
		errors.Is(err, services.ErrWeightEntryNotFound),
		errors.Is(err, planstore.ErrPlanNotFound):
		return fail(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrProfileAlreadyExists):
		return fail(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, services.ErrNoUpdateData),
		errors.Is(err, nutrition.ErrInvalidInputs),
		errors.Is(err, nutrition.ErrUnknownStrategy):
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	return fail(c, fiber.StatusInternalServerError, fallback)
}
