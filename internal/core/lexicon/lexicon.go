// Package lexicon loads the YAML word list that maps bare Arabic words to vocalized forms
// Keys are folded through normalize.Key so spelling variants share one entry
package lexicon

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"mishkal/internal/core/normalize"

	"gopkg.in/yaml.v3"
)

//go:embed lexicon.yaml
var embedded []byte

// SupportedVersion is the only file format version Parse accepts
const SupportedVersion = 1

type rawLexicon struct {
	Version int               `yaml:"version"`
	Meta    map[string]string `yaml:"meta"`
	Words   map[string]string `yaml:"words"`
}

// Pack is an immutable compiled lexicon, safe for concurrent reads
type Pack struct {
	Version int
	Meta    map[string]string

	// folded key -> vocalized form
	entries map[string]string
}

// Default returns the lexicon embedded in the binary
func Default() (*Pack, error) {
	p, err := Parse(embedded)
	if err != nil {
		return nil, fmt.Errorf("lexicon: embedded: %w", err)
	}
	return p, nil
}

// LoadFile reads and compiles a lexicon from path
func LoadFile(path string) (*Pack, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lexicon: read %s: %w", path, err)
	}
	p, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("lexicon: %s: %w", path, err)
	}
	return p, nil
}

// Parse compiles a YAML lexicon document
// every entry must be valid UTF-8, and the vocalized form must fold back to its own key
func Parse(b []byte) (*Pack, error) {
	var raw rawLexicon
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if raw.Version != SupportedVersion {
		return nil, fmt.Errorf("unsupported version %d (want %d)", raw.Version, SupportedVersion)
	}
	if len(raw.Words) == 0 {
		return nil, errors.New("no words")
	}

	p := &Pack{
		Version: raw.Version,
		Meta:    raw.Meta,
		entries: make(map[string]string, len(raw.Words)),
	}
	seen := make(map[string]string, len(raw.Words))

	// sorted so error messages are stable
	words := make([]string, 0, len(raw.Words))
	for w := range raw.Words {
		words = append(words, w)
	}
	sort.Strings(words)

	var problems []string
	for _, w := range words {
		voc := strings.TrimSpace(raw.Words[w])
		w = strings.TrimSpace(w)
		switch {
		case w == "" || voc == "":
			problems = append(problems, fmt.Sprintf("%q: empty word or form", w))
			continue
		case !utf8.ValidString(w) || !utf8.ValidString(voc):
			problems = append(problems, fmt.Sprintf("%q: invalid UTF-8", w))
			continue
		}
		key := normalize.Key(w)
		if got := normalize.Key(voc); got != key {
			problems = append(problems, fmt.Sprintf("%q: form %q folds to %q", w, voc, got))
			continue
		}
		if prev, dup := seen[key]; dup {
			problems = append(problems, fmt.Sprintf("%q: duplicates %q", w, prev))
			continue
		}
		seen[key] = w
		p.entries[key] = voc
	}
	if len(problems) > 0 {
		return nil, fmt.Errorf("%d invalid entries: %s", len(problems), strings.Join(problems, "; "))
	}
	return p, nil
}

// Lookup returns the vocalized form for word, matching on its folded key
func (p *Pack) Lookup(word string) (string, bool) {
	if p == nil {
		return "", false
	}
	v, ok := p.entries[normalize.Key(word)]
	return v, ok
}

// Len is the number of entries
func (p *Pack) Len() int {
	if p == nil {
		return 0
	}
	return len(p.entries)
}

// Name is the meta name, empty when unset
func (p *Pack) Name() string {
	if p == nil {
		return ""
	}
	return p.Meta["name"]
}
