package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"equihire/screening-engine/internal/models"
)

func TestCheckEligibility(t *testing.T) {
	tests := []struct {
		name     string
		have     []string
		required []string
		status   models.ScreeningStatus
		reason   string
	}{
		{"no requirements", []string{"Go"}, nil, models.StatusScreening, "No requirements set"},
		{"all present", []string{"Python", "SQL"}, []string{"sql", "python"}, models.StatusScreening, "Skills Match"},
		{"missing one", []string{"Python", "SQL"}, []string{"Java", "SQL"}, models.StatusAutoRejected, "Missing: [Java]"},
		{"missing several", nil, []string{"Go", "Kafka"}, models.StatusAutoRejected, "Missing: [Go Kafka]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckEligibility(tt.have, tt.required)
			assert.Equal(t, tt.status, got.Status)
			assert.Equal(t, tt.reason, got.Reason)
		})
	}
}

func TestParseCV_DemoFallback(t *testing.T) {
	profiles := &fakeProfiles{}
	svc := NewScreeningService(ScreeningDeps{
		Profiles:     profiles,
		Intelligence: NewIntelligenceService(nil, nil),
	})

	t.Run("no requirements", func(t *testing.T) {
		resp, err := svc.ParseCV(context.Background(), &models.CVParseRequest{CandidateID: "c-1"})
		require.NoError(t, err)
		assert.Equal(t, "applied", resp.Status)
		assert.Equal(t, "Pending", resp.Message)
		assert.Equal(t, []string{"Python", "Communication", "Teamwork", "SQL"}, resp.Skills)
		assert.Equal(t, models.StatusApplied, profiles.updates["c-1"].Status)
	})

	t.Run("missing requirement", func(t *testing.T) {
		resp, err := svc.ParseCV(context.Background(), &models.CVParseRequest{
			CandidateID:    "c-2",
			RequiredSkills: []string{"Java"},
		})
		require.NoError(t, err)
		assert.Equal(t, "auto-rejected", resp.Status)
		assert.Equal(t, "Missing: [Java]", resp.Message)
	})
}

func TestParseCV_Extraction(t *testing.T) {
	storage := &fakeStorage{objects: map[string][]byte{
		"candidates/c-9/resume.pdf": []byte("%PDF-1.4"),
	}}
	gemini := &fakeGemini{response: `{"experience_level": "Mid-Level", "skills": ["Go", "PostgreSQL"]}`}
	profiles := &fakeProfiles{}
	index := &fakeIndex{}

	svc := NewScreeningService(ScreeningDeps{
		Profiles:     profiles,
		Storage:      storage,
		PDFParser:    &fakeParser{text: "Kasun Perera, Go developer at WSO2"},
		Intelligence: NewIntelligenceService(gemini, nil),
		Index:        index,
	})

	resp, err := svc.ParseCV(context.Background(), &models.CVParseRequest{
		CandidateID:    "c-9",
		RequiredSkills: []string{"go"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"candidates/c-9/resume.pdf"}, storage.keys)
	assert.Equal(t, "screening", resp.Status)
	assert.Equal(t, "Skills Match", resp.Message)
	assert.Equal(t, "Mid-Level", resp.ExperienceLevel)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, profiles.updates["c-9"].Skills)
	assert.Equal(t, "Mid-Level", profiles.updates["c-9"].ExperienceLevel)
	assert.Equal(t, "Kasun Perera, Go developer at WSO2", index.indexed["c-9"])

	require.Len(t, gemini.prompts, 1)
	assert.Contains(t, gemini.prompts[0], "Go developer at [Company]")
	assert.NotContains(t, gemini.prompts[0], "WSO2")
}

func TestParseCV_UpstreamFailures(t *testing.T) {
	gemini := &fakeGemini{response: `{"skills": []}`}

	t.Run("download", func(t *testing.T) {
		svc := NewScreeningService(ScreeningDeps{
			Storage:      &fakeStorage{},
			Intelligence: NewIntelligenceService(gemini, nil),
		})
		_, err := svc.ParseCV(context.Background(), &models.CVParseRequest{CandidateID: "c", R2ObjectKey: "missing.pdf"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "NoSuchKey")
	})

	t.Run("pdf", func(t *testing.T) {
		svc := NewScreeningService(ScreeningDeps{
			Storage:      &fakeStorage{objects: map[string][]byte{"k": []byte("x")}},
			PDFParser:    &fakeParser{err: errors.New("no text content found in PDF")},
			Intelligence: NewIntelligenceService(gemini, nil),
		})
		_, err := svc.ParseCV(context.Background(), &models.CVParseRequest{CandidateID: "c", R2ObjectKey: "k"})
		require.Error(t, err)
	})
}

func TestParseCV_DatastoreFailureIsNotFatal(t *testing.T) {
	svc := NewScreeningService(ScreeningDeps{
		Profiles:     &fakeProfiles{err: errors.New("connection refused")},
		Intelligence: NewIntelligenceService(nil, nil),
	})

	resp, err := svc.ParseCV(context.Background(), &models.CVParseRequest{CandidateID: "c"})
	require.NoError(t, err)
	assert.Equal(t, "applied", resp.Status)
}
