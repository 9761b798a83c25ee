package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"equihire/screening-engine/internal/logging"
	"equihire/screening-engine/internal/models"
	"equihire/screening-engine/internal/ner"
	"equihire/screening-engine/internal/repositories"
)

// demoSkills stand in for extraction when storage or the LLM is not configured.
var demoSkills = []string{"Python", "Communication", "Teamwork", "SQL"}

type ScreeningService interface {
	ParseCV(ctx context.Context, req *models.CVParseRequest) (*models.CVParseResponse, error)
}

// ScreeningDeps lists the collaborators of the screening service. Profiles,
// Storage and Index may be nil when not configured. Redactor defaults to
// ner.NewDefaultRedactor.
type ScreeningDeps struct {
	Profiles     repositories.ProfileRepository
	Storage      StorageService
	PDFParser    PDFParserService
	Intelligence IntelligenceService
	Index        ProfileIndex
	Redactor     *ner.Redactor
}

type screeningService struct {
	deps ScreeningDeps
}

func NewScreeningService(deps ScreeningDeps) ScreeningService {
	if deps.PDFParser == nil {
		deps.PDFParser = NewPDFParserService()
	}
	if deps.Redactor == nil {
		deps.Redactor = ner.NewDefaultRedactor()
	}
	return &screeningService{deps: deps}
}

// ParseCV extracts the candidate's skills, runs the matcher and records the
// outcome on the anonymous profile.
func (s *screeningService) ParseCV(ctx context.Context, req *models.CVParseRequest) (*models.CVParseResponse, error) {
	log := logging.GetLogger().WithField("candidate_id", req.CandidateID)
	log.WithField("object_key", req.R2ObjectKey).Info("Parsing CV")

	// Step 1: Extract skills
	var (
		cvText  string
		profile *ExtractedProfile
	)
	if s.deps.Storage != nil && s.deps.Intelligence != nil && s.deps.Intelligence.Available() {
		key := req.R2ObjectKey
		if key == "" {
			key = CandidateResumeKey(req.CandidateID)
		}

		data, err := s.deps.Storage.Download(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("failed to download CV: %w", err)
		}

		content, err := s.deps.PDFParser.ExtractText(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse CV: %w", err)
		}
		cvText = content.Text

		// The LLM only ever sees the anonymized CV.
		redacted := s.deps.Redactor.Redact(cvText)
		profile, err = s.deps.Intelligence.ExtractProfile(ctx, redacted.Text)
		if err != nil {
			return nil, err
		}
	} else {
		log.Warn("CV extraction collaborators not configured, using demo skills")
		profile = &ExtractedProfile{Skills: append([]string(nil), demoSkills...)}
	}

	// Step 2: Run the matcher
	status := models.StatusApplied
	reason := "Pending"
	if len(req.RequiredSkills) > 0 {
		result := CheckEligibility(profile.Skills, req.RequiredSkills)
		status = result.Status
		reason = result.Reason
	}

	log.WithFields(logrus.Fields{
		"status": status,
		"reason": reason,
	}).Info("Matcher result")

	// Step 3: Update the datastore
	if s.deps.Profiles != nil {
		err := s.deps.Profiles.UpdateScreening(ctx, req.CandidateID, &repositories.ScreeningUpdateData{
			Skills:          profile.Skills,
			Status:          status,
			ExperienceLevel: profile.ExperienceLevel,
		})
		switch {
		case errors.Is(err, repositories.ErrProfileNotFound):
			log.Warn("No anonymous profile to update")
		case err != nil:
			log.WithError(err).Error("Failed to update profile")
		default:
			log.Info("Profile updated")
		}
	}

	// Step 4: Index the redacted CV
	if s.deps.Index != nil && cvText != "" {
		if _, err := s.deps.Index.IndexCandidate(ctx, req.CandidateID, cvText); err != nil {
			log.WithError(err).Warn("Failed to index profile")
		}
	}

	return &models.CVParseResponse{
		Status:          string(status),
		Message:         reason,
		Skills:          profile.Skills,
		ExperienceLevel: profile.ExperienceLevel,
	}, nil
}
