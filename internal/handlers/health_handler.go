package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	collaborators map[string]bool
}

// NewHealthHandler takes the availability of each optional collaborator.
func NewHealthHandler(collaborators map[string]bool) *HealthHandler {
	return &HealthHandler{collaborators: collaborators}
}

func (h *HealthHandler) HandleRoot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "online",
		"service": "EquiHire Intelligence Engine",
		"mode":    "Firewall",
	})
}

func (h *HealthHandler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":        "healthy",
		"time":          time.Now(),
		"collaborators": h.collaborators,
	})
}
