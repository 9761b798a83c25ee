package models

import "equihire/screening-engine/internal/ner"

type SanitizeRequest struct {
	Text    string `json:"text"`
	Context string `json:"context"`
}

type SanitizeResponse struct {
	OriginalTextLength int             `json:"original_text_length"`
	SanitizedText      string          `json:"sanitized_text"`
	PIIDetected        bool            `json:"pii_detected"`
	Redactions         []ner.Redaction `json:"redactions"`
}

type CVParseRequest struct {
	CandidateID    string   `json:"candidate_id"`
	R2ObjectKey    string   `json:"r2_object_key"`
	JobID          *string  `json:"job_id,omitempty"`
	RequiredSkills []string `json:"required_skills"`
}

type CVParseResponse struct {
	Status          string   `json:"status"`
	Message         string   `json:"message"`
	Skills          []string `json:"skills"`
	ExperienceLevel string   `json:"experience_level,omitempty"`
}

type EvaluateAnswerRequest struct {
	Question        string `json:"question"`
	ModelAnswer     string `json:"model_answer"`
	CandidateAnswer string `json:"candidate_answer"`
	ExperienceLevel string `json:"experience_level"`
	Strictness      string `json:"strictness"`
}

type EvaluateAnswerResponse struct {
	RedactedAnswer string  `json:"redacted_answer"`
	Score          float64 `json:"score"`
	Feedback       string  `json:"feedback"`
	PIIDetected    bool    `json:"pii_detected"`
}

type RejectionEmailRequest struct {
	CandidateName string `json:"candidate_name"`
	JobTitle      string `json:"job_title"`
	Feedback      string `json:"feedback"`
}

type RejectionEmailResponse struct {
	HTML string `json:"html"`
}

type RevealResponse struct {
	URL       *string `json:"url"`
	Status    string  `json:"status"`
	ExpiresIn int     `json:"expires_in"`
}

type ProfileMatch struct {
	CandidateID string  `json:"candidate_id"`
	Score       float32 `json:"score"`
	Snippet     string  `json:"snippet"`
}

type ProfileSearchResponse struct {
	Query   string         `json:"query"`
	Results []ProfileMatch `json:"results"`
}
