package main

import (
	"fmt"
	"net/url"
	"time"

	"mishkal/internal/core/engine"
	"mishkal/internal/core/version"

	"github.com/spf13/cobra"
)

// engineFlags mirror the MISHKAL_ENGINE_* settings of the api
type engineFlags struct {
	kind     string
	lexicon  string
	upstream string
	timeout  time.Duration
	serial   bool
}

func (f *engineFlags) bind(cmd *cobra.Command) {
	fs := cmd.PersistentFlags()
	fs.StringVar(&f.kind, "engine", engine.KindLexicon, "engine kind: lexicon or remote")
	fs.StringVar(&f.lexicon, "lexicon", "", "lexicon YAML file (default: embedded lexicon)")
	fs.StringVar(&f.upstream, "upstream", "", "base URL of a Mishkal compatible service, for --engine remote")
	fs.DurationVar(&f.timeout, "timeout", 0, "remote call timeout, 0 for none")
	fs.BoolVar(&f.serial, "serial", false, "force one engine call at a time")
}

// config turns the flags into an engine config
func (f *engineFlags) config() (engine.Config, error) {
	c := engine.Config{
		Kind:    f.kind,
		Lexicon: f.lexicon,
		Timeout: f.timeout,
		Serial:  f.serial,
	}
	switch f.kind {
	case engine.KindLexicon:
	case engine.KindRemote:
		if f.upstream == "" {
			return c, fmt.Errorf("--upstream is required for --engine %s", engine.KindRemote)
		}
		u, err := url.Parse(f.upstream)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return c, fmt.Errorf("--upstream must be an absolute http(s) URL, got %q", f.upstream)
		}
		c.Upstream = u
	default:
		return c, fmt.Errorf("unknown engine %q, want %s or %s", f.kind, engine.KindLexicon, engine.KindRemote)
	}
	return c, nil
}

func newRootCmd() *cobra.Command {
	flags := &engineFlags{}
	root := &cobra.Command{
		Use:   "mishkal",
		Short: "Mishkal - Arabic text diacritization",
		Long: `mishkal adds diacritics (tashkeel) to Arabic text using the same engines
as the Mishkal HTTP service: the embedded word lexicon or a remote Mishkal server.`,
		Version:      version.Version(),
		SilenceUsage: true,
	}
	root.SetVersionTemplate(version.Service + " version {{.Version}}\n")
	flags.bind(root)

	root.AddCommand(newDiacritizeCmd(flags), newLexiconCmd())
	return root
}
