package services

import (
	"strings"
)

type TextChunker interface {
	ChunkText(text string, maxWords int, overlapWords int) []string
}

type textChunker struct{}

func NewTextChunker() TextChunker {
	return &textChunker{}
}

// ChunkText groups the paragraphs of a CV into windows of at most maxWords
// words. Consecutive windows share overlapWords trailing words. A paragraph
// longer than the window is split on word boundaries.
func (tc *textChunker) ChunkText(text string, maxWords int, overlapWords int) []string {
	if maxWords <= 0 {
		maxWords = 200
	}
	if overlapWords < 0 {
		overlapWords = 0
	}
	if overlapWords >= maxWords {
		overlapWords = maxWords / 4
	}

	var chunks []string
	var window []string

	flush := func() {
		if len(window) == 0 {
			return
		}
		chunks = append(chunks, strings.Join(window, " "))
		if overlapWords > 0 && len(window) > overlapWords {
			window = append([]string(nil), window[len(window)-overlapWords:]...)
		} else {
			window = nil
		}
	}

	for _, para := range splitParagraphs(text) {
		words := strings.Fields(para)
		if len(window)+len(words) > maxWords && len(window) > overlapWords {
			flush()
		}

		for _, word := range words {
			if len(window) >= maxWords {
				flush()
			}
			window = append(window, word)
		}
	}

	if len(chunks) == 0 || len(window) > overlapWords {
		flush()
	}

	return chunks
}

func splitParagraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var paragraphs []string
	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if para != "" {
			paragraphs = append(paragraphs, para)
		}
	}
	return paragraphs
}
