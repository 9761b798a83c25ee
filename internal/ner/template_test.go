package ner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRand replays fixed values; once a queue is exhausted it returns 0.
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (s *scriptedRand) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *scriptedRand) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func TestExpand_MultiWordOrganization(t *testing.T) {
	tmpl := MustParseTemplate("I", "studied", "at", "{uni}", ".")
	catalog := &Catalog{Universities: []string{"University of Colombo"}}
	engine := NewEngine([]Template{tmpl}, catalog, &scriptedRand{})

	ex := engine.Generate(42)

	assert.Equal(t, "42", ex.ID)
	assert.Equal(t, []string{"I", "studied", "at", "University", "of", "Colombo", "."}, ex.Tokens)
	assert.Equal(t, []Label{0, 0, 0, 3, 4, 4, 0}, ex.NERTags)
}

func TestExpand_PersonName(t *testing.T) {
	catalog := &Catalog{
		FirstNames: []string{"Kasun", "Nimal"},
		LastNames:  []string{"Perera", "De Silva"},
	}
	tmpl := MustParseTemplate("{name}", "lives", "in", "{loc}", ".")

	tests := []struct {
		name   string
		rng    *scriptedRand
		tokens []string
		tags   []Label
	}{
		{
			name:   "full name",
			rng:    &scriptedRand{ints: []int{1, 1}, floats: []float64{0.1}},
			tokens: []string{"Nimal", "De", "Silva", "lives", "in", "."},
			tags:   []Label{1, 2, 2, 0, 0, 0},
		},
		{
			name:   "first name only",
			rng:    &scriptedRand{ints: []int{0, 0}, floats: []float64{0.9}},
			tokens: []string{"Kasun", "lives", "in", "."},
			tags:   []Label{1, 0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := NewEngine([]Template{tmpl}, catalog, tt.rng)
			// Empty location catalog contributes no tokens.
			ex := engine.Expand(tmpl, 1)
			assert.Equal(t, tt.tokens, ex.Tokens)
			assert.Equal(t, tt.tags, ex.NERTags)
		})
	}
}

func TestExpand_OtherCategoryIsUntagged(t *testing.T) {
	catalog := &Catalog{
		Jobs:    []string{"Senior Software Engineer"},
		Degrees: []string{"Computer Science"},
	}
	tmpl := MustParseTemplate("A", "{job}", "with", "{degree}")
	ex := NewEngine([]Template{tmpl}, catalog, &scriptedRand{}).Expand(tmpl, 0)

	assert.Equal(t, []string{"A", "Senior", "Software", "Engineer", "with", "Computer", "Science"}, ex.Tokens)
	assert.Equal(t, []Label{0, 0, 0, 0, 0, 0, 0}, ex.NERTags)
}

func TestExpand_LiteralOnlyTemplate(t *testing.T) {
	tmpl := MustParseTemplate("Hello", "there", "!")
	ex := NewEngine([]Template{tmpl}, &Catalog{}, &scriptedRand{}).Expand(tmpl, 3)

	assert.Equal(t, []string{"Hello", "there", "!"}, ex.Tokens)
	assert.Equal(t, []Label{0, 0, 0}, ex.NERTags)
}

func TestExpand_WhitespaceValueContributesNothing(t *testing.T) {
	tmpl := MustParseTemplate("at", "{company}", ".")
	catalog := &Catalog{Companies: []string{"   "}}
	ex := NewEngine([]Template{tmpl}, catalog, &scriptedRand{}).Expand(tmpl, 0)

	assert.Equal(t, []string{"at", "."}, ex.Tokens)
	assert.Equal(t, []Label{0, 0}, ex.NERTags)
}

func TestExpand_SkillDedup(t *testing.T) {
	tmpl := MustParseTemplate("{skill}", "and", "{skill}")

	t.Run("retries duplicate", func(t *testing.T) {
		catalog := &Catalog{Skills: []string{"Go", "Rust"}}
		rng := &scriptedRand{ints: []int{0, 0, 0, 1}}
		ex := NewEngine([]Template{tmpl}, catalog, rng).Expand(tmpl, 0)

		assert.Equal(t, []string{"Go", "and", "Rust"}, ex.Tokens)
		assert.Equal(t, []Label{7, 0, 7}, ex.NERTags)
	})

	t.Run("accepts duplicate after retries", func(t *testing.T) {
		catalog := &Catalog{Skills: []string{"Node.js"}}
		ex := NewEngine([]Template{tmpl}, catalog, &scriptedRand{}).Expand(tmpl, 0)

		assert.Equal(t, []string{"Node", ".", "js", "and", "Node", ".", "js"}, ex.Tokens)
		assert.Equal(t, []Label{7, 8, 8, 0, 7, 8, 8}, ex.NERTags)
	})
}

func TestParseTemplate(t *testing.T) {
	tmpl, err := ParseTemplate("Meet", "{name}", ",", "{}")
	require.NoError(t, err)
	require.Len(t, tmpl, 4)
	assert.False(t, tmpl[0].IsPlaceholder())
	assert.Equal(t, KindName, tmpl[1].Kind)
	assert.False(t, tmpl[3].IsPlaceholder(), "empty braces are a literal")

	_, err = ParseTemplate("{salary}")
	assert.Error(t, err)
}

func TestGenerate_StructuralInvariants(t *testing.T) {
	engine := NewEngine(nil, nil, NewRand(7))

	for i := 0; i < 2000; i++ {
		ex := engine.Generate(i)
		require.Len(t, ex.NERTags, len(ex.Tokens), "example %d", i)
		require.NoError(t, ex.Validate())

		for j, tag := range ex.NERTags {
			if !tag.IsInside() {
				continue
			}
			require.Greater(t, j, 0, "example %d starts with an inside label", i)
			prev := ex.NERTags[j-1]
			require.True(t, prev != LabelO && prev.Category() == tag.Category(),
				"example %d: label %d at %d follows %d (%s)", i, tag, j, prev, strings.Join(ex.Tokens, " "))
		}
	}
}

func TestCategoryLabels(t *testing.T) {
	tests := []struct {
		category Category
		begin    Label
		inside   Label
	}{
		{CategoryPerson, 1, 2},
		{CategoryOrganization, 3, 4},
		{CategoryLocation, 5, 6},
		{CategorySkill, 7, 8},
		{CategoryOther, 0, 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			begin, inside := tt.category.Labels()
			assert.Equal(t, tt.begin, begin)
			assert.Equal(t, tt.inside, inside)
			if tt.category != CategoryOther {
				assert.True(t, begin.IsBeginning())
				assert.True(t, inside.IsInside())
				assert.Equal(t, tt.category, begin.Category())
			}
		})
	}
}
