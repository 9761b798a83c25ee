package ner

import (
	"regexp"
	"strings"
)

var punctuation = regexp.MustCompile(`([.,!?()])`)

// Tokenize splits text on whitespace and isolates the characters . , ! ? ( )
// as their own tokens. Empty tokens are dropped.
func Tokenize(text string) []string {
	spaced := punctuation.ReplaceAllString(text, " $1 ")
	return strings.Fields(spaced)
}
