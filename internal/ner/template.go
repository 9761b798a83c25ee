package ner

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// Kind names a placeholder in a template, written as "{kind}".
type Kind string

const (
	KindName       Kind = "name"
	KindUniversity Kind = "uni"
	KindCompany    Kind = "company"
	KindLocation   Kind = "loc"
	KindJob        Kind = "job"
	KindDegree     Kind = "degree"
	KindSkill      Kind = "skill"
)

// maxSkillRetries bounds the re-draws used to avoid repeating a skill
// within one example. After that the duplicate is accepted.
const maxSkillRetries = 5

// fullNameProbability is the chance a {name} resolves to "First Last".
const fullNameProbability = 0.8

// Slot is either a literal token (Kind empty) or a placeholder.
type Slot struct {
	Text string
	Kind Kind
}

// IsPlaceholder reports whether the slot is resolved from a catalog.
func (s Slot) IsPlaceholder() bool {
	return s.Kind != ""
}

// Template is an ordered sequence of slots.
type Template []Slot

// ParseTemplate builds a template from literal tokens and "{kind}" placeholders.
func ParseTemplate(parts ...string) (Template, error) {
	tmpl := make(Template, 0, len(parts))
	for _, part := range parts {
		if strings.HasPrefix(part, "{") && strings.HasSuffix(part, "}") && len(part) > 2 {
			kind := Kind(part[1 : len(part)-1])
			if _, ok := kindCategory[kind]; !ok {
				return nil, fmt.Errorf("unknown placeholder %q", part)
			}
			tmpl = append(tmpl, Slot{Text: part, Kind: kind})
			continue
		}
		tmpl = append(tmpl, Slot{Text: part})
	}
	return tmpl, nil
}

// MustParseTemplate is like ParseTemplate but panics on an unknown placeholder.
func MustParseTemplate(parts ...string) Template {
	tmpl, err := ParseTemplate(parts...)
	if err != nil {
		panic(err)
	}
	return tmpl
}

var kindCategory = map[Kind]Category{
	KindName:       CategoryPerson,
	KindUniversity: CategoryOrganization,
	KindCompany:    CategoryOrganization,
	KindLocation:   CategoryLocation,
	KindJob:        CategoryOther,
	KindDegree:     CategoryOther,
	KindSkill:      CategorySkill,
}

// Rand is the random source used by the Engine. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// NewRand returns a Rand seeded with seed, or with the current time when seed is 0.
func NewRand(seed int64) Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Engine expands templates into labeled examples.
type Engine struct {
	templates []Template
	catalog   *Catalog
	rng       Rand
}

// NewEngine creates an Engine. Nil or empty arguments fall back to the
// default templates, the default catalog and a time-seeded source.
func NewEngine(templates []Template, catalog *Catalog, rng Rand) *Engine {
	if len(templates) == 0 {
		templates = DefaultTemplates()
	}
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	if rng == nil {
		rng = NewRand(0)
	}
	return &Engine{
		templates: templates,
		catalog:   catalog,
		rng:       rng,
	}
}

// Generate expands one randomly chosen template into an example with the given id.
func (e *Engine) Generate(id int) LabeledExample {
	tmpl := e.templates[e.rng.Intn(len(e.templates))]
	return e.Expand(tmpl, id)
}

// Expand resolves every placeholder of tmpl and returns the aligned tokens and labels.
func (e *Engine) Expand(tmpl Template, id int) LabeledExample {
	example := LabeledExample{
		ID:      strconv.Itoa(id),
		Tokens:  make([]string, 0, len(tmpl)),
		NERTags: make([]Label, 0, len(tmpl)),
	}

	// Skills already emitted in this example.
	used := make(map[string]bool)

	for _, slot := range tmpl {
		if !slot.IsPlaceholder() {
			example.Tokens = append(example.Tokens, slot.Text)
			example.NERTags = append(example.NERTags, LabelO)
			continue
		}

		value, category := e.resolve(slot)

		if category == CategorySkill {
			for attempt := 0; attempt < maxSkillRetries; attempt++ {
				if !used[value] {
					break
				}
				value, _ = e.resolve(slot)
			}
			used[value] = true
		}

		begin, inside := category.Labels()
		for i, token := range Tokenize(value) {
			example.Tokens = append(example.Tokens, token)
			if i == 0 {
				example.NERTags = append(example.NERTags, begin)
			} else {
				example.NERTags = append(example.NERTags, inside)
			}
		}
	}

	return example
}

func (e *Engine) resolve(slot Slot) (string, Category) {
	category, ok := kindCategory[slot.Kind]
	if !ok {
		return slot.Text, CategoryOther
	}

	switch slot.Kind {
	case KindName:
		first := e.choose(e.catalog.FirstNames)
		last := e.choose(e.catalog.LastNames)
		if e.rng.Float64() < fullNameProbability && last != "" {
			return first + " " + last, category
		}
		return first, category
	case KindUniversity:
		return e.choose(e.catalog.Universities), category
	case KindCompany:
		return e.choose(e.catalog.Companies), category
	case KindLocation:
		return e.choose(e.catalog.Locations), category
	case KindJob:
		return e.choose(e.catalog.Jobs), category
	case KindDegree:
		return e.choose(e.catalog.Degrees), category
	case KindSkill:
		return e.choose(e.catalog.Skills), category
	}
	return slot.Text, CategoryOther
}

func (e *Engine) choose(pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	return pool[e.rng.Intn(len(pool))]
}

// DefaultTemplates returns the biography and skill templates used for the corpus.
func DefaultTemplates() []Template {
	return []Template{
		// Biography
		MustParseTemplate("I", "studied", "at", "{uni}", "."),
		MustParseTemplate("I", "graduated", "from", "{uni}", "with", "a", "degree", "in", "{degree}", "."),
		MustParseTemplate("Currently", "working", "as", "a", "{job}", "at", "{company}", "."),
		MustParseTemplate("I", "am", "a", "{job}", "at", "{company}", "in", "{loc}", "."),
		MustParseTemplate("{name}", "works", "at", "{company}", "as", "a", "{job}", "."),
		MustParseTemplate("{name}", "lives", "in", "{loc}", "."),
		MustParseTemplate("I", "completed", "my", "{degree}", "at", "{uni}", "."),
		MustParseTemplate("Meet", "{name}", ",", "a", "{job}", "from", "{loc}", "."),
		MustParseTemplate("I", "joined", "{company}", "after", "graduating", "from", "{uni}", "."),
		MustParseTemplate("My", "name", "is", "{name}", "and", "I", "am", "from", "{loc}", "."),
		MustParseTemplate("{name}", "is", "a", "{job}", "at", "{company}", "."),
		MustParseTemplate("Studied", "{degree}", "at", "{uni}", "and", "now", "working", "at", "{company}", "."),
		MustParseTemplate("I", "am", "currently", "employed", "at", "{company}", "."),
		MustParseTemplate("He", "works", "for", "{company}", "in", "{loc}", "as", "a", "{job}", "."),
		MustParseTemplate("She", "is", "a", "student", "at", "{uni}", "."),

		// Skills
		MustParseTemplate("I", "am", "proficient", "in", "{skill}", "and", "{skill}", "."),
		MustParseTemplate("Skilled", "in", "{skill}", ",", "{skill}", ",", "and", "{skill}", "."),
		MustParseTemplate("I", "have", "experience", "with", "{skill}", "and", "{skill}", "stack", "."),
		MustParseTemplate("My", "tech", "stack", "include", "{skill}", ",", "{skill}", "and", "{skill}", "."),
		MustParseTemplate("Expert", "in", "{skill}", "development", "."),
		MustParseTemplate("Working", "with", "{skill}", "at", "{company}", "."),
		MustParseTemplate("I", "use", "{skill}", "and", "{skill}", "for", "backend", "development", "."),
		MustParseTemplate("Experienced", "{job}", "with", "strong", "knowledge", "of", "{skill}", "."),
		MustParseTemplate("Looking", "for", "roles", "involving", "{skill}", "and", "{skill}", "."),
		MustParseTemplate("Certified", "in", "{skill}", "and", "{skill}", "."),
		MustParseTemplate("{name}", "is", "an", "expert", "in", "{skill}", "."),
		MustParseTemplate("As", "a", "{job}", ",", "I", "use", "{skill}", "daily", "."),
	}
}
