package ner

import (
	"regexp"
	"sort"
)

// redactionScore is the confidence reported for dictionary matches.
const redactionScore = 0.99

// Replacement maps a PII surface string to the placeholder that replaces it.
type Replacement struct {
	Entity      string
	Placeholder string
	Category    Category
}

// Redaction describes one entity removed from a text.
type Redaction struct {
	Entity string  `json:"entity"`
	Label  string  `json:"label"`
	Score  float64 `json:"score"`
}

// RedactionResult is the output of Redactor.Redact.
type RedactionResult struct {
	Text        string
	Redactions  []Redaction
	PIIDetected bool
}

type compiledReplacement struct {
	Replacement
	pattern *regexp.Regexp
}

// Redactor replaces known PII strings with category placeholders.
type Redactor struct {
	entries []compiledReplacement
}

// NewRedactor compiles the replacements. Longer entities are matched first so
// "University of Colombo" is redacted as one organization rather than leaving
// "University of [Location]". Duplicate entities keep their first definition.
func NewRedactor(replacements ...Replacement) *Redactor {
	seen := make(map[string]bool)
	entries := make([]compiledReplacement, 0, len(replacements))
	for _, rep := range replacements {
		if rep.Entity == "" || seen[rep.Entity] {
			continue
		}
		seen[rep.Entity] = true
		entries = append(entries, compiledReplacement{
			Replacement: rep,
			pattern:     regexp.MustCompile(`\b` + regexp.QuoteMeta(rep.Entity) + `\b`),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return len(entries[i].Entity) > len(entries[j].Entity)
	})

	return &Redactor{entries: entries}
}

// NewDefaultRedactor builds a Redactor from the fixed firewall entries plus the
// organizations and locations of the default catalog.
func NewDefaultRedactor() *Redactor {
	reps := DefaultRedactions()
	reps = append(reps, CatalogRedactions(DefaultCatalog())...)
	return NewRedactor(reps...)
}

// DefaultRedactions is the fixed entry set of the firewall.
func DefaultRedactions() []Replacement {
	return []Replacement{
		{Entity: "Hasitha", Placeholder: "[Before: Candidate]", Category: CategoryPerson},
		{Entity: "John Doe", Placeholder: "[Candidate]", Category: CategoryPerson},
		{Entity: "Google", Placeholder: "[Company]", Category: CategoryOrganization},
		{Entity: "Sabaragamuwa University", Placeholder: "[University]", Category: CategoryOrganization},
		{Entity: "Malabe", Placeholder: "[Location]", Category: CategoryLocation},
		{Entity: "Colombo", Placeholder: "[Location]", Category: CategoryLocation},
	}
}

// CatalogRedactions derives organization and location entries from a catalog.
func CatalogRedactions(c *Catalog) []Replacement {
	var reps []Replacement
	for _, uni := range c.Universities {
		reps = append(reps, Replacement{Entity: uni, Placeholder: "[University]", Category: CategoryOrganization})
	}
	for _, company := range c.Companies {
		reps = append(reps, Replacement{Entity: company, Placeholder: "[Company]", Category: CategoryOrganization})
	}
	for _, loc := range c.Locations {
		reps = append(reps, Replacement{Entity: loc, Placeholder: "[Location]", Category: CategoryLocation})
	}
	return reps
}

// Redact replaces every known entity in text.
func (r *Redactor) Redact(text string) RedactionResult {
	result := RedactionResult{
		Text:       text,
		Redactions: []Redaction{},
	}

	for _, entry := range r.entries {
		if !entry.pattern.MatchString(result.Text) {
			continue
		}
		result.Text = entry.pattern.ReplaceAllLiteralString(result.Text, entry.Placeholder)
		result.Redactions = append(result.Redactions, Redaction{
			Entity: entry.Entity,
			Label:  string(entry.Category),
			Score:  redactionScore,
		})
		result.PIIDetected = true
	}

	return result
}
