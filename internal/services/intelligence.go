package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"equihire/screening-engine/internal/logging"
	"equihire/screening-engine/internal/models"
	"equihire/screening-engine/internal/ner"
)

// ErrUnavailable is returned when a collaborator is not configured.
var ErrUnavailable = errors.New("service unavailable")

const (
	minScore = 0
	maxScore = 10

	fallbackFeedback = "Error generating feedback."
)

type IntelligenceService interface {
	Available() bool
	ExtractProfile(ctx context.Context, cvText string) (*ExtractedProfile, error)
	EvaluateAnswer(ctx context.Context, req *models.EvaluateAnswerRequest) (*models.EvaluateAnswerResponse, error)
	GenerateRejectionEmail(ctx context.Context, req *models.RejectionEmailRequest) (string, error)
}

type ExtractedProfile struct {
	ExperienceLevel string   `json:"experience_level"`
	Skills          []string `json:"skills"`
}

// answerEvaluation mirrors the LLM payload; nil fields were missing.
type answerEvaluation struct {
	RedactedAnswer *string  `json:"redacted_answer"`
	Score          *float64 `json:"score"`
	Feedback       *string  `json:"feedback"`
	PIIDetected    *bool    `json:"pii_detected"`
}

type intelligenceService struct {
	gemini        GeminiService
	redactor      *ner.Redactor
	promptBuilder *PromptBuilder
}

func NewIntelligenceService(gemini GeminiService, redactor *ner.Redactor) IntelligenceService {
	if redactor == nil {
		redactor = ner.NewDefaultRedactor()
	}
	return &intelligenceService{
		gemini:        gemini,
		redactor:      redactor,
		promptBuilder: NewPromptBuilder(),
	}
}

// Available reports whether an LLM client is configured.
func (s *intelligenceService) Available() bool {
	return s.gemini != nil
}

// ExtractProfile implements IntelligenceService.
func (s *intelligenceService) ExtractProfile(ctx context.Context, cvText string) (*ExtractedProfile, error) {
	if s.gemini == nil {
		return nil, ErrUnavailable
	}

	prompt := s.promptBuilder.BuildProfileExtractionPrompt(cvText)
	response, err := s.gemini.GenerateText(ctx, prompt, GenerateOptions{Temperature: 0.1, JSON: true})
	if err != nil {
		return nil, fmt.Errorf("failed to extract profile: %w", err)
	}

	var profile ExtractedProfile
	if err := parseJSONResponse(response, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile response: %w", err)
	}

	profile.ExperienceLevel = strings.TrimSpace(profile.ExperienceLevel)
	profile.Skills = normalizeSkills(profile.Skills)

	return &profile, nil
}

// EvaluateAnswer implements IntelligenceService. A malformed LLM payload is
// not an error: missing fields fall back to score 0, a placeholder feedback and
// pii_detected false. The redacted answer always passes the local redactor.
func (s *intelligenceService) EvaluateAnswer(ctx context.Context, req *models.EvaluateAnswerRequest) (*models.EvaluateAnswerResponse, error) {
	if s.gemini == nil {
		return nil, ErrUnavailable
	}
	log := logging.GetLogger()

	prompt := s.promptBuilder.BuildAnswerEvaluationPrompt(
		req.Question,
		req.ModelAnswer,
		req.CandidateAnswer,
		req.ExperienceLevel,
		req.Strictness,
	)

	response, err := s.gemini.GenerateText(ctx, prompt, GenerateOptions{Temperature: 0.2, JSON: true})
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate answer: %w", err)
	}

	var parsed answerEvaluation
	if err := parseJSONResponse(response, &parsed); err != nil {
		log.WithError(err).Warn("Answer evaluation returned malformed JSON, using defaults")
		parsed = answerEvaluation{}
	}

	result := &models.EvaluateAnswerResponse{
		RedactedAnswer: req.CandidateAnswer,
		Score:          minScore,
		Feedback:       fallbackFeedback,
	}
	if parsed.RedactedAnswer != nil && strings.TrimSpace(*parsed.RedactedAnswer) != "" {
		result.RedactedAnswer = *parsed.RedactedAnswer
	}
	if parsed.Score != nil {
		result.Score = clampScore(*parsed.Score)
	}
	if parsed.Feedback != nil && strings.TrimSpace(*parsed.Feedback) != "" {
		result.Feedback = strings.TrimSpace(*parsed.Feedback)
	}
	if parsed.PIIDetected != nil {
		result.PIIDetected = *parsed.PIIDetected
	}

	local := s.redactor.Redact(result.RedactedAnswer)
	result.RedactedAnswer = local.Text
	result.PIIDetected = result.PIIDetected || local.PIIDetected

	return result, nil
}

// GenerateRejectionEmail implements IntelligenceService.
func (s *intelligenceService) GenerateRejectionEmail(ctx context.Context, req *models.RejectionEmailRequest) (string, error) {
	if s.gemini == nil {
		return "", ErrUnavailable
	}

	prompt := s.promptBuilder.BuildRejectionEmailPrompt(req.CandidateName, req.JobTitle, req.Feedback)
	response, err := s.gemini.GenerateText(ctx, prompt, GenerateOptions{Temperature: 0.6})
	if err != nil {
		return "", fmt.Errorf("failed to generate rejection email: %w", err)
	}

	return stripCodeFence(response), nil
}

func clampScore(score float64) float64 {
	if math.IsNaN(score) {
		return minScore
	}
	return math.Max(minScore, math.Min(maxScore, score))
}

func normalizeSkills(skills []string) []string {
	seen := make(map[string]bool)
	out := make([]string, 0, len(skills))
	for _, skill := range skills {
		skill = strings.TrimSpace(skill)
		key := strings.ToLower(skill)
		if skill == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, skill)
	}
	return out
}

func parseJSONResponse(response string, target interface{}) error {
	// LLM might wrap JSON in markdown
	jsonStr := extractJSON(response)

	if err := json.Unmarshal([]byte(jsonStr), target); err != nil {
		return fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return nil
}

// extractJSON pulls the outermost JSON object or array out of free text.
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	startObj := strings.Index(text, "{")
	startArr := strings.Index(text, "[")
	endObj := strings.LastIndex(text, "}")
	endArr := strings.LastIndex(text, "]")

	if startObj != -1 && endObj > startObj {
		return text[startObj : endObj+1]
	} else if startArr != -1 && endArr > startArr {
		return text[startArr : endArr+1]
	}

	return text
}

// stripCodeFence removes a ```html ... ``` wrapper if present.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	if nl := strings.Index(text, "\n"); nl != -1 {
		text = text[nl+1:]
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
