package handlers

import (
	"errors"
	"log"

	"katalog/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errorStatus maps catalog errors onto HTTP statuses.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, models.ErrProductNotFound),
		errors.Is(err, models.ErrCityNotFound),
		errors.Is(err, models.ErrSubcategoryNotFound),
		errors.Is(err, models.ErrTagNotFound),
		errors.Is(err, models.ErrCurrencyNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, models.ErrInconsistentCityFilter):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, models.ErrUnknownSortField),
		errors.Is(err, models.ErrInvalidSortDirection),
		errors.Is(err, models.ErrInvalidPageRequest),
		errors.Is(err, models.ErrBlankSearchName),
		errors.Is(err, models.ErrInvalidRating),
		errors.Is(err, models.ErrInvalidProduct):
		return fiber.StatusBadRequest
	case errors.Is(err, models.ErrLikeCountMaximumExceeded),
		errors.Is(err, models.ErrLikeCountMinimumExceeded):
		return fiber.StatusConflict
	case errors.Is(err, models.ErrProductMemberMismatch):
		return fiber.StatusForbidden
	case errors.Is(err, models.ErrInvalidToken):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError writes err with the status its class maps to.
func respondError(c *fiber.Ctx, message string, err error) error {
	status := errorStatus(err)
	if status == fiber.StatusInternalServerError {
		log.Printf("%s: %v", message, err)
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   err.Error(),
	})
}

func badRequest(c *fiber.Ctx, message string, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": message,
		"error":   err.Error(),
	})
}
