package lexicon

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	p, err := Default()
	if err != nil {
		t.Fatalf("Default(): %v", err)
	}
	if p.Version != SupportedVersion || p.Len() == 0 {
		t.Fatalf("unexpected pack version=%d len=%d", p.Version, p.Len())
	}
	if p.Name() != "mishkal-default" {
		t.Fatalf("name = %q", p.Name())
	}
	for word, want := range map[string]string{
		"مرحبا": "مَرْحَباً",
		"كيف":   "كَيْفَ",
		"حالك":  "حَالُكَ",
	} {
		got, ok := p.Lookup(word)
		if !ok || got != want {
			t.Fatalf("Lookup(%q) = %q,%v want %q", word, got, ok, want)
		}
	}
}

func TestLookup_FoldsVariants(t *testing.T) {
	p, err := Default()
	if err != nil {
		t.Fatalf("Default(): %v", err)
	}
	// bare alef and tatweel spellings reach the hamza entry
	for _, w := range []string{"اهلا", "أهلا", "أهـــلا"} {
		if got, ok := p.Lookup(w); !ok || got != "أَهْلاً" {
			t.Fatalf("Lookup(%q) = %q,%v", w, got, ok)
		}
	}
	if _, ok := p.Lookup("غيرموجود"); ok {
		t.Fatalf("unknown word should miss")
	}
}

func TestNilPack(t *testing.T) {
	var p *Pack
	if _, ok := p.Lookup("كيف"); ok || p.Len() != 0 || p.Name() != "" {
		t.Fatalf("nil pack should be empty")
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want string
	}{
		{"bad yaml", "version: [", "parse"},
		{"wrong version", "version: 2\nwords:\n  كيف: كَيْفَ\n", "unsupported version 2"},
		{"no words", "version: 1\n", "no words"},
		{"empty form", "version: 1\nwords:\n  كيف: \"\"\n", "empty word or form"},
		{"form mismatch", "version: 1\nwords:\n  كيف: مَرْحَباً\n", "folds to"},
		{"folded duplicate", "version: 1\nwords:\n  أهلا: أَهْلاً\n  اهلا: اَهْلاً\n", "duplicates"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("Parse err = %v, want containing %q", err, tc.want)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.yaml")
	doc := "version: 1\nmeta:\n  name: custom\nwords:\n  قلم: قَلَمٌ\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}
	p, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if p.Name() != "custom" || p.Len() != 1 {
		t.Fatalf("unexpected pack %+v", p)
	}
	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
