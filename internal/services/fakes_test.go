package services

import (
	"context"
	"errors"
	"time"

	"equihire/screening-engine/internal/models"
	"equihire/screening-engine/internal/repositories"
)

type fakeGemini struct {
	response string
	err      error
	prompts  []string
	embedErr error
}

func (f *fakeGemini) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	if f.embedErr != nil {
		return nil, f.embedErr
	}
	return []float32{float32(len(text)), 1}, nil
}

func (f *fakeGemini) GenerateText(ctx context.Context, prompt string, opts GenerateOptions) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

type fakeStorage struct {
	objects map[string][]byte
	keys    []string
}

func (f *fakeStorage) PresignDownload(ctx context.Context, key string) (string, error) {
	return "https://example.invalid/" + key + "?sig=abc", nil
}

func (f *fakeStorage) Download(ctx context.Context, key string) ([]byte, error) {
	f.keys = append(f.keys, key)
	data, ok := f.objects[key]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return data, nil
}

func (f *fakeStorage) Expiry() time.Duration {
	return 5 * time.Minute
}

type fakeParser struct {
	text string
	err  error
}

func (f *fakeParser) ExtractText(data []byte) (*PDFContent, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &PDFContent{Text: f.text, PageCount: 1}, nil
}

type fakeProfiles struct {
	updates map[string]*repositories.ScreeningUpdateData
	err     error
}

func (f *fakeProfiles) FindByCandidateID(ctx context.Context, candidateID string) (*models.AnonymousProfile, error) {
	return nil, repositories.ErrProfileNotFound
}

func (f *fakeProfiles) UpdateScreening(ctx context.Context, candidateID string, data *repositories.ScreeningUpdateData) error {
	if f.err != nil {
		return f.err
	}
	if f.updates == nil {
		f.updates = make(map[string]*repositories.ScreeningUpdateData)
	}
	f.updates[candidateID] = data
	return nil
}

type fakeIndex struct {
	indexed map[string]string
}

func (f *fakeIndex) IndexCandidate(ctx context.Context, candidateID, cvText string) (int, error) {
	if f.indexed == nil {
		f.indexed = make(map[string]string)
	}
	f.indexed[candidateID] = cvText
	return 1, nil
}

func (f *fakeIndex) Search(ctx context.Context, query string, limit int) ([]models.ProfileMatch, error) {
	return nil, nil
}

type fakeQdrant struct {
	points  map[string]SearchResult
	deleted []string
	results []SearchResult
}

func (f *fakeQdrant) InitCollection(ctx context.Context) error { return nil }

func (f *fakeQdrant) UpsertChunk(ctx context.Context, candidateID string, chunk int, text string, embedding []float32) error {
	if f.points == nil {
		f.points = make(map[string]SearchResult)
	}
	f.points[ProfilePointID(candidateID, chunk)] = SearchResult{CandidateID: candidateID, Chunk: chunk, Text: text}
	return nil
}

func (f *fakeQdrant) SearchSimilar(ctx context.Context, queryEmbedding []float32, limit int) ([]SearchResult, error) {
	if len(f.results) > limit {
		return f.results[:limit], nil
	}
	return f.results, nil
}

func (f *fakeQdrant) DeleteCandidate(ctx context.Context, candidateID string) error {
	f.deleted = append(f.deleted, candidateID)
	return nil
}
