package handlers

import (
	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Health    *HealthHandler
	Sanitize  *SanitizeHandler
	Screening *ScreeningHandler
	Interview *InterviewHandler
	Reveal    *RevealHandler
}

// RegisterRoutes mounts every endpoint on app.
func RegisterRoutes(app *fiber.App, h *Handlers) {
	app.Get("/", h.Health.HandleRoot)

	app.Post("/sanitize", h.Sanitize.HandleSanitize)
	app.Post("/parse/cv", h.Screening.HandleParseCV)
	app.Post("/evaluate", h.Interview.HandleEvaluate)
	app.Post("/rejection-email", h.Interview.HandleRejectionEmail)
	app.Get("/reveal/:candidate_id", h.Reveal.HandleReveal)
	app.Get("/profiles/search", h.Screening.HandleSearchProfiles)

	api := app.Group("/api/v1")
	api.Get("/health", h.Health.HandleHealth)
}
