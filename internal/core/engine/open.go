package engine

import (
	"fmt"
	"net/url"
	"time"

	"mishkal/internal/core/lexicon"
	"mishkal/internal/platform/config"
	perr "mishkal/internal/platform/errors"
)

// Engine kinds
const (
	KindLexicon = "lexicon"
	KindRemote  = "remote"
)

// Config selects and configures the engine
type Config struct {
	Kind     string        // lexicon or remote
	Lexicon  string        // lexicon file, empty for the embedded default
	Upstream *url.URL      // remote base URL
	Timeout  time.Duration // remote call timeout, 0 for none
	Serial   bool          // force one call at a time
}

// ConfigFromEnv reads KIND, LEXICON, UPSTREAM, TIMEOUT and SERIAL under cfg, e.g. prefix MISHKAL_ENGINE_
func ConfigFromEnv(cfg config.Conf) Config {
	c := Config{
		Kind:    cfg.MayEnum("KIND", KindLexicon, KindLexicon, KindRemote),
		Lexicon: cfg.MayString("LEXICON", ""),
		Timeout: cfg.MayDuration("TIMEOUT", 0),
		Serial:  cfg.MayBool("SERIAL", false),
	}
	if c.Kind == KindRemote {
		c.Upstream = cfg.MustURL("UPSTREAM")
	}
	return c
}

// Open builds the configured engine and guards it for concurrent use
// failures carry ErrorCodeStartup
func Open(c Config) (Engine, error) {
	var e Engine
	switch c.Kind {
	case "", KindLexicon:
		p, err := loadPack(c.Lexicon)
		if err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeStartup, err.Error())
		}
		e = NewLexicon(p)
	case KindRemote:
		r, err := NewRemote(RemoteOptions{Upstream: c.Upstream, Timeout: c.Timeout})
		if err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeStartup, err.Error())
		}
		e = r
	default:
		return nil, perr.Startupf("unknown engine kind %q", c.Kind)
	}
	if c.Serial {
		return NewSerial(e), nil
	}
	return Guard(e), nil
}

func loadPack(path string) (*lexicon.Pack, error) {
	if path == "" {
		return lexicon.Default()
	}
	p, err := lexicon.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load lexicon: %w", err)
	}
	return p, nil
}

// Describe names the engine for logs, e.g. "lexicon(mishkal-default, 40 words)"
func Describe(e Engine) string {
	if s, ok := e.(*Serial); ok {
		return "serial(" + Describe(s.Unwrap()) + ")"
	}
	switch v := e.(type) {
	case *Lexicon:
		return fmt.Sprintf("lexicon(%s, %d words)", v.Pack().Name(), v.Pack().Len())
	case *Remote:
		return "remote(" + v.base.String() + ")"
	default:
		return fmt.Sprintf("%T", e)
	}
}
