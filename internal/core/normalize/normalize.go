// Package normalize folds Arabic words into lookup keys and splits text into word runs
// Key pipeline
// 1 Unicode NFC composition
// 2 Remove combining marks (harakat, shadda, sukun, superscript alef)
// 3 Remove format chars (ZWJ, ZWNJ, RLM and friends)
// 4 Remove tatweel
// 5 Fold hamza/madda/wasla alef variants to bare alef
package normalize

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Tatweel is the Arabic elongation mark
const Tatweel = 'ـ'

// Alef is the bare alef every variant folds to
const Alef = 'ا'

var alefVariants = map[rune]bool{
	'آ': true, // alef with madda above
	'أ': true, // alef with hamza above
	'إ': true, // alef with hamza below
	'ٱ': true, // alef wasla
}

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		// order mirrors the documented pipeline
		return transform.Chain(
			norm.NFC,
			runes.Remove(runes.In(unicode.Mn)),
			runes.Remove(runes.In(unicode.Cf)),
			runes.Remove(runes.Predicate(func(r rune) bool { return r == Tatweel })),
			runes.Map(func(r rune) rune {
				if alefVariants[r] {
					return Alef
				}
				return r
			}),
		)
	},
}

// Key returns the lookup form of an Arabic word; invalid bytes are dropped
func Key(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToValidUTF8(s, "")

	tr := chainPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		return s
	}
	return out
}

// Segment is one run of text: an Arabic word or the gap between words
type Segment struct {
	Text string
	Word bool
}

// IsWordRune reports whether r starts or continues an Arabic word
func IsWordRune(r rune) bool {
	return r == Tatweel || (unicode.Is(unicode.Arabic, r) && unicode.IsLetter(r))
}

// Segments splits s into alternating word and gap runs whose concatenation is s
// combining marks stay attached to the word they follow
func Segments(s string) []Segment {
	if s == "" {
		return nil
	}
	out := make([]Segment, 0, 8)
	start, inWord := 0, false
	for i, r := range s {
		word := IsWordRune(r) || (inWord && unicode.Is(unicode.Mn, r))
		if i == 0 {
			inWord = word
			continue
		}
		if word != inWord {
			out = append(out, Segment{Text: s[start:i], Word: inWord})
			start, inWord = i, word
		}
	}
	return append(out, Segment{Text: s[start:], Word: inWord})
}

// HasMarks reports whether s already carries combining marks
func HasMarks(s string) bool {
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		if unicode.Is(unicode.Mn, r) {
			return true
		}
		s = s[size:]
	}
	return false
}
