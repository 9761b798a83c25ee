package ner

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"equihire/screening-engine/internal/logging"
)

const (
	DefaultBatchSize = 3000
	DefaultRetainCap = 5000
)

// Generator produces one labeled example for an id. *Engine implements it.
type Generator interface {
	Generate(id int) LabeledExample
}

// Builder grows the on-disk corpus: load, cap, generate, persist.
// Runs against the same path must be serialized by the caller.
type Builder struct {
	Path      string
	BatchSize int
	RetainCap int
	Generator Generator
	Log       logrus.FieldLogger
}

// BuildResult summarizes one Builder run.
type BuildResult struct {
	Loaded    int
	Retained  int
	Generated int
	Total     int
	Trimmed   bool
}

// NewBuilder returns a Builder with the default batch size and retention cap.
func NewBuilder(path string, gen Generator) *Builder {
	return &Builder{
		Path:      path,
		BatchSize: DefaultBatchSize,
		RetainCap: DefaultRetainCap,
		Generator: gen,
		Log:       logging.GetLogger(),
	}
}

// Run loads the existing corpus, keeps at most RetainCap of its earliest
// entries, appends BatchSize new examples and rewrites the file.
//
// New ids always start at RetainCap, not after the highest retained id, so a
// corpus shorter than the cap can end up with duplicate ids.
func (b *Builder) Run() (*BuildResult, error) {
	if b.Generator == nil {
		return nil, errors.New("corpus builder has no generator")
	}
	if b.BatchSize < 0 || b.RetainCap < 0 {
		return nil, fmt.Errorf("invalid corpus sizes: batch=%d cap=%d", b.BatchSize, b.RetainCap)
	}
	log := b.Log
	if log == nil {
		log = logging.GetLogger()
	}

	existing, err := LoadCorpus(b.Path)
	if err != nil {
		return nil, err
	}
	result := &BuildResult{Loaded: len(existing)}

	existing, result.Trimmed = CapCorpus(existing, b.RetainCap)
	if result.Trimmed {
		log.WithFields(logrus.Fields{
			"loaded": result.Loaded,
			"cap":    b.RetainCap,
		}).Info("Trimming corpus back to retention cap")
	}
	result.Retained = len(existing)

	corpus := make([]LabeledExample, 0, len(existing)+b.BatchSize)
	corpus = append(corpus, existing...)
	for i := 0; i < b.BatchSize; i++ {
		corpus = append(corpus, b.Generator.Generate(b.RetainCap+i))
	}
	result.Generated = b.BatchSize
	result.Total = len(corpus)

	if err := SaveCorpus(b.Path, corpus); err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"path":      b.Path,
		"retained":  result.Retained,
		"generated": result.Generated,
		"total":     result.Total,
	}).Info("Corpus written")

	return result, nil
}

// LoadCorpus reads a corpus file. A missing file yields an empty corpus;
// malformed JSON or an entry of the wrong shape is an error.
func LoadCorpus(path string) ([]LabeledExample, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []LabeledExample{}, nil
		}
		return nil, fmt.Errorf("failed to open corpus: %w", err)
	}
	defer f.Close()

	return DecodeCorpus(f)
}

// DecodeCorpus parses and validates a JSON array of labeled examples.
func DecodeCorpus(r io.Reader) ([]LabeledExample, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var examples []LabeledExample
	if err := dec.Decode(&examples); err != nil {
		return nil, fmt.Errorf("failed to parse corpus: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("failed to parse corpus: trailing data after array")
	}
	if examples == nil {
		return nil, errors.New("failed to parse corpus: top-level value is not an array")
	}

	for i := range examples {
		if err := examples[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid corpus entry %d: %w", i, err)
		}
	}

	return examples, nil
}

// Validate checks the shape invariants of an example.
func (ex *LabeledExample) Validate() error {
	if ex.ID == "" {
		return errors.New("missing id")
	}
	// A present [] decodes to an empty non-nil slice; nil means the key was missing or null.
	if ex.Tokens == nil || ex.NERTags == nil {
		return fmt.Errorf("id %s: missing tokens or ner_tags", ex.ID)
	}
	if len(ex.Tokens) != len(ex.NERTags) {
		return fmt.Errorf("id %s: %d tokens but %d labels", ex.ID, len(ex.Tokens), len(ex.NERTags))
	}
	for _, tag := range ex.NERTags {
		if tag < LabelO || tag > MaxLabel {
			return fmt.Errorf("id %s: label %d out of range", ex.ID, tag)
		}
	}
	return nil
}

// CapCorpus keeps the first limit entries by position. It reports whether
// anything was dropped.
func CapCorpus(examples []LabeledExample, limit int) ([]LabeledExample, bool) {
	if len(examples) <= limit {
		return examples, false
	}
	return examples[:limit], true
}

// SaveCorpus writes the corpus to a temporary file next to path and renames
// it into place.
func SaveCorpus(path string, examples []LabeledExample) error {
	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create corpus directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp corpus file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	w := bufio.NewWriter(tmp)
	if err := WriteCorpus(w, examples); err != nil {
		tmp.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write corpus: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close corpus file: %w", err)
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return fmt.Errorf("failed to set corpus permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace corpus: %w", err)
	}

	return nil
}

// WriteCorpus serializes examples as a JSON array with one two-space indented
// object per entry and the token and label arrays kept on one line.
func WriteCorpus(w io.Writer, examples []LabeledExample) error {
	var buf bytes.Buffer
	buf.WriteString("[\n")
	for i, ex := range examples {
		tokens, err := inlineStrings(ex.Tokens)
		if err != nil {
			return fmt.Errorf("failed to encode tokens of %s: %w", ex.ID, err)
		}
		id, err := encodeString(ex.ID)
		if err != nil {
			return fmt.Errorf("failed to encode id %s: %w", ex.ID, err)
		}

		buf.WriteString("  {\n")
		buf.WriteString(`    "id": ` + id + ",\n")
		buf.WriteString(`    "tokens": ` + tokens + ",\n")
		buf.WriteString(`    "ner_tags": ` + inlineLabels(ex.NERTags) + "\n")
		if i < len(examples)-1 {
			buf.WriteString("  },\n")
		} else {
			buf.WriteString("  }\n")
		}

		// Flush periodically so large corpora are not held twice in memory.
		if buf.Len() > 64*1024 {
			if _, err := w.Write(buf.Bytes()); err != nil {
				return fmt.Errorf("failed to write corpus: %w", err)
			}
			buf.Reset()
		}
	}
	buf.WriteString("]\n")

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write corpus: %w", err)
	}
	return nil
}

func inlineStrings(values []string) (string, error) {
	parts := make([]string, len(values))
	for i, v := range values {
		s, err := encodeString(v)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return "[" + strings.Join(parts, ", ") + "]", nil
}

func inlineLabels(labels []Label) string {
	parts := make([]string, len(labels))
	for i, l := range labels {
		parts[i] = strconv.Itoa(int(l))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func encodeString(s string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
