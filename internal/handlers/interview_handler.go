package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"equihire/screening-engine/internal/models"
	"equihire/screening-engine/internal/services"
)

type InterviewHandler struct {
	intelligence services.IntelligenceService
}

func NewInterviewHandler(intelligence services.IntelligenceService) *InterviewHandler {
	return &InterviewHandler{intelligence: intelligence}
}

// HandleEvaluate handles POST /evaluate
func (h *InterviewHandler) HandleEvaluate(c *fiber.Ctx) error {
	var req models.EvaluateAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request payload")
	}

	if strings.TrimSpace(req.Question) == "" {
		return badRequest(c, "question is required")
	}

	if strings.TrimSpace(req.CandidateAnswer) == "" {
		return badRequest(c, "candidate_answer is required")
	}

	result, err := h.intelligence.EvaluateAnswer(c.UserContext(), &req)
	if err != nil {
		return upstreamError(c, "Failed to evaluate answer", err)
	}

	return c.JSON(result)
}

// HandleRejectionEmail handles POST /rejection-email
func (h *InterviewHandler) HandleRejectionEmail(c *fiber.Ctx) error {
	var req models.RejectionEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request payload")
	}

	if strings.TrimSpace(req.CandidateName) == "" {
		return badRequest(c, "candidate_name is required")
	}

	if strings.TrimSpace(req.JobTitle) == "" {
		return badRequest(c, "job_title is required")
	}

	html, err := h.intelligence.GenerateRejectionEmail(c.UserContext(), &req)
	if err != nil {
		return upstreamError(c, "Failed to generate rejection email", err)
	}

	return c.JSON(models.RejectionEmailResponse{HTML: html})
}
