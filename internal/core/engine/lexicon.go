package engine

import (
	"context"
	"strings"
	"unicode/utf8"

	"mishkal/internal/core/lexicon"
	"mishkal/internal/core/normalize"
)

// Lexicon vocalizes text word by word from a lexicon pack
// unknown and already marked words pass through untouched, as does everything between words
type Lexicon struct {
	pack *lexicon.Pack
}

// NewLexicon builds the engine over p
func NewLexicon(p *lexicon.Pack) *Lexicon { return &Lexicon{pack: p} }

// Diacritize replaces each known Arabic word with its vocalized form
func (l *Lexicon) Diacritize(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", AsError(err)
	}
	if !utf8.ValidString(text) {
		return "", Errorf("invalid UTF-8 input")
	}
	var b strings.Builder
	b.Grow(len(text) * 2)
	for _, seg := range normalize.Segments(text) {
		if seg.Word && !normalize.HasMarks(seg.Text) {
			if v, ok := l.pack.Lookup(seg.Text); ok {
				b.WriteString(v)
				continue
			}
		}
		b.WriteString(seg.Text)
	}
	return b.String(), nil
}

// Concurrent is true, the pack is read only
func (l *Lexicon) Concurrent() bool { return true }

// Ping reports ready once a non empty pack is loaded
func (l *Lexicon) Ping(context.Context) error {
	if l.pack.Len() == 0 {
		return Errorf("lexicon is empty")
	}
	return nil
}

// Pack exposes the loaded lexicon
func (l *Lexicon) Pack() *lexicon.Pack { return l.pack }
