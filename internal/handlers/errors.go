package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"equihire/screening-engine/internal/logging"
	"equihire/screening-engine/internal/services"
)

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": message,
	})
}

// upstreamError maps a collaborator failure to 503 when it is not configured
// and 500 otherwise, keeping the underlying message.
func upstreamError(c *fiber.Ctx, op string, err error) error {
	if errors.Is(err, services.ErrUnavailable) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": op + ": service not configured",
		})
	}

	logging.GetLogger().WithError(err).WithField("op", op).Error("Upstream call failed")

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": op + ": " + err.Error(),
	})
}
