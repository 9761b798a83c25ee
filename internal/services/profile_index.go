package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"equihire/screening-engine/internal/logging"
	"equihire/screening-engine/internal/models"
	"equihire/screening-engine/internal/ner"
)

const (
	chunkWords   = 200
	chunkOverlap = 40
)

// ProfileIndex makes redacted CV text searchable by meaning.
type ProfileIndex interface {
	IndexCandidate(ctx context.Context, candidateID, cvText string) (int, error)
	Search(ctx context.Context, query string, limit int) ([]models.ProfileMatch, error)
}

type profileIndex struct {
	gemini   GeminiService
	qdrant   QdrantService
	chunker  TextChunker
	redactor *ner.Redactor
}

func NewProfileIndex(gemini GeminiService, qdrant QdrantService, redactor *ner.Redactor) ProfileIndex {
	if redactor == nil {
		redactor = ner.NewDefaultRedactor()
	}
	return &profileIndex{
		gemini:   gemini,
		qdrant:   qdrant,
		chunker:  NewTextChunker(),
		redactor: redactor,
	}
}

// IndexCandidate replaces the candidate's points with embeddings of the
// redacted CV. It returns the number of chunks stored.
func (p *profileIndex) IndexCandidate(ctx context.Context, candidateID, cvText string) (int, error) {
	redacted := p.redactor.Redact(cvText).Text
	chunks := p.chunker.ChunkText(redacted, chunkWords, chunkOverlap)

	if err := p.qdrant.DeleteCandidate(ctx, candidateID); err != nil {
		return 0, err
	}

	for i, chunk := range chunks {
		embedding, err := p.gemini.GenerateEmbedding(ctx, chunk)
		if err != nil {
			return i, fmt.Errorf("failed to embed chunk %d: %w", i, err)
		}
		if err := p.qdrant.UpsertChunk(ctx, candidateID, i, chunk, embedding); err != nil {
			return i, err
		}
	}

	logging.GetLogger().WithFields(logrus.Fields{
		"candidate_id": candidateID,
		"chunks":       len(chunks),
	}).Info("Indexed candidate profile")

	return len(chunks), nil
}

// Search returns the best chunk per candidate, best first.
func (p *profileIndex) Search(ctx context.Context, query string, limit int) ([]models.ProfileMatch, error) {
	if limit <= 0 {
		limit = 10
	}

	embedding, err := p.gemini.GenerateEmbedding(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	// Over-fetch since several chunks can belong to one candidate.
	results, err := p.qdrant.SearchSimilar(ctx, embedding, limit*3)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	matches := make([]models.ProfileMatch, 0, limit)
	for _, r := range results {
		if r.CandidateID == "" || seen[r.CandidateID] {
			continue
		}
		seen[r.CandidateID] = true
		matches = append(matches, models.ProfileMatch{
			CandidateID: r.CandidateID,
			Score:       r.Score,
			Snippet:     snippet(r.Text, 240),
		})
		if len(matches) == limit {
			break
		}
	}

	return matches, nil
}

func snippet(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}
