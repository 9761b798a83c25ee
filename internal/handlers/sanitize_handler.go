package handlers

import (
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"equihire/screening-engine/internal/logging"
	"equihire/screening-engine/internal/models"
	"equihire/screening-engine/internal/ner"
)

type SanitizeHandler struct {
	redactor *ner.Redactor
}

func NewSanitizeHandler(redactor *ner.Redactor) *SanitizeHandler {
	return &SanitizeHandler{redactor: redactor}
}

// HandleSanitize handles POST /sanitize
func (h *SanitizeHandler) HandleSanitize(c *fiber.Ctx) error {
	var req models.SanitizeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request payload")
	}

	result := h.redactor.Redact(req.Text)

	logging.GetLogger().WithFields(logrus.Fields{
		"context":    req.Context,
		"redactions": len(result.Redactions),
	}).Info("Sanitized text")

	return c.JSON(models.SanitizeResponse{
		OriginalTextLength: utf8.RuneCountInString(req.Text),
		SanitizedText:      result.Text,
		PIIDetected:        result.PIIDetected,
		Redactions:         result.Redactions,
	})
}
