package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkText(t *testing.T) {
	chunker := NewTextChunker()

	t.Run("paragraphs grouped with overlap", func(t *testing.T) {
		chunks := chunker.ChunkText("a b c\n\nd e f", 4, 1)
		assert.Equal(t, []string{"a b c", "c d e f"}, chunks)
	})

	t.Run("long paragraph split on words", func(t *testing.T) {
		chunks := chunker.ChunkText("w1 w2 w3 w4 w5 w6 w7 w8 w9 w10", 4, 1)
		assert.Equal(t, []string{"w1 w2 w3 w4", "w4 w5 w6 w7", "w7 w8 w9 w10"}, chunks)
	})

	t.Run("no overlap", func(t *testing.T) {
		chunks := chunker.ChunkText("a b c d e", 2, 0)
		assert.Equal(t, []string{"a b", "c d", "e"}, chunks)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, chunker.ChunkText(" \n\n ", 10, 2))
	})
}

func TestProfilePointID_Stable(t *testing.T) {
	assert.Equal(t, ProfilePointID("c-1", 0), ProfilePointID("c-1", 0))
	assert.NotEqual(t, ProfilePointID("c-1", 0), ProfilePointID("c-1", 1))
	assert.NotEqual(t, ProfilePointID("c-1", 0), ProfilePointID("c-2", 0))
}

func TestProfileIndex_IndexCandidateRedacts(t *testing.T) {
	qdrant := &fakeQdrant{}
	index := NewProfileIndex(&fakeGemini{}, qdrant, nil)

	cv := "Hasitha worked at WSO2 in Colombo.\n\n" + strings.Repeat("Built Go services. ", 150)
	n, err := index.IndexCandidate(context.Background(), "c-1", cv)
	require.NoError(t, err)
	assert.Greater(t, n, 1)
	assert.Equal(t, []string{"c-1"}, qdrant.deleted)
	assert.Len(t, qdrant.points, n)

	first := qdrant.points[ProfilePointID("c-1", 0)]
	assert.True(t, strings.HasPrefix(first.Text, "[Before: Candidate] worked at [Company] in [Location]."))
	assert.NotContains(t, first.Text, "Hasitha")
}

func TestProfileIndex_SearchOneMatchPerCandidate(t *testing.T) {
	qdrant := &fakeQdrant{results: []SearchResult{
		{CandidateID: "c-1", Score: 0.9, Text: "Go and Kafka"},
		{CandidateID: "c-1", Score: 0.8, Text: "More Go"},
		{CandidateID: "c-2", Score: 0.7, Text: "Python"},
		{CandidateID: "", Score: 0.6},
	}}
	index := NewProfileIndex(&fakeGemini{}, qdrant, nil)

	matches, err := index.Search(context.Background(), "go developer", 5)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "c-1", matches[0].CandidateID)
	assert.Equal(t, "Go and Kafka", matches[0].Snippet)
	assert.Equal(t, "c-2", matches[1].CandidateID)
}
