package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"equihire/screening-engine/internal/models"
	"equihire/screening-engine/internal/services"
)

type ScreeningHandler struct {
	screening services.ScreeningService
	index     services.ProfileIndex
}

// NewScreeningHandler creates the CV handlers. index may be nil.
func NewScreeningHandler(screening services.ScreeningService, index services.ProfileIndex) *ScreeningHandler {
	return &ScreeningHandler{
		screening: screening,
		index:     index,
	}
}

// HandleParseCV handles POST /parse/cv
func (h *ScreeningHandler) HandleParseCV(c *fiber.Ctx) error {
	var req models.CVParseRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request payload")
	}

	req.CandidateID = strings.TrimSpace(req.CandidateID)
	if req.CandidateID == "" {
		return badRequest(c, "candidate_id is required")
	}

	resp, err := h.screening.ParseCV(c.UserContext(), &req)
	if err != nil {
		return upstreamError(c, "Failed to parse CV", err)
	}

	return c.JSON(resp)
}

// HandleSearchProfiles handles GET /profiles/search?q=&limit=
func (h *ScreeningHandler) HandleSearchProfiles(c *fiber.Ctx) error {
	if h.index == nil {
		return upstreamError(c, "Profile search", services.ErrUnavailable)
	}

	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		return badRequest(c, "q is required")
	}

	limit := 10
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 || v > 50 {
			return badRequest(c, "limit must be between 1 and 50")
		}
		limit = v
	}

	matches, err := h.index.Search(c.UserContext(), query, limit)
	if err != nil {
		return upstreamError(c, "Profile search", err)
	}

	return c.JSON(models.ProfileSearchResponse{
		Query:   query,
		Results: matches,
	})
}
