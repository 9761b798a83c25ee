package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"equihire/screening-engine/internal/logging"
	"equihire/screening-engine/internal/models"
	"equihire/screening-engine/internal/repositories"
	"equihire/screening-engine/internal/services"
)

type RevealHandler struct {
	storage  services.StorageService
	profiles repositories.ProfileRepository
}

// NewRevealHandler creates the reveal handler. storage is nil when R2 is not
// configured; profiles is nil when there is no datastore, in which case the
// candidate lookup is skipped.
func NewRevealHandler(storage services.StorageService, profiles repositories.ProfileRepository) *RevealHandler {
	return &RevealHandler{
		storage:  storage,
		profiles: profiles,
	}
}

// HandleReveal handles GET /reveal/:candidate_id and returns a short-lived
// link to the candidate's original CV.
func (h *RevealHandler) HandleReveal(c *fiber.Ctx) error {
	if h.storage == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Secure Setup Not Configured",
		})
	}

	candidateID := strings.TrimSpace(c.Params("candidate_id"))
	if candidateID == "" || strings.ContainsAny(candidateID, "/\\") {
		return badRequest(c, "Invalid candidate_id")
	}

	if h.profiles != nil {
		if _, err := h.profiles.FindByCandidateID(c.UserContext(), candidateID); err != nil {
			if errors.Is(err, repositories.ErrProfileNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": "Candidate not found",
				})
			}

			logging.GetLogger().WithError(err).WithField("candidate_id", candidateID).Error("Failed to look up candidate")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to verify candidate",
			})
		}
	}

	url, err := h.storage.PresignDownload(c.UserContext(), services.CandidateResumeKey(candidateID))
	if err != nil {
		logging.GetLogger().WithError(err).WithField("candidate_id", candidateID).Error("Failed to generate link")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate secure link",
		})
	}

	return c.JSON(models.RevealResponse{
		URL:       &url,
		Status:    "generated",
		ExpiresIn: int(h.storage.Expiry().Seconds()),
	})
}
