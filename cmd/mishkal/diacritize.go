package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"mishkal/internal/core/engine"
	"mishkal/internal/core/version"
	pnet "mishkal/internal/platform/net"
	"mishkal/internal/services/api/diacritize/domain"
	"mishkal/internal/services/api/diacritize/service"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newDiacritizeCmd(flags *engineFlags) *cobra.Command {
	var (
		asJSON  bool
		verbose bool
	)
	cmd := &cobra.Command{
		Use:   "diacritize [text...]",
		Short: "Diacritize the arguments, or stdin when none are given",
		Example: `  mishkal diacritize مرحبا كيف حالك
  echo "أهلا" | mishkal diacritize --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			cfg, err := flags.config()
			if err != nil {
				return err
			}
			eng, err := engine.Open(cfg)
			if err != nil {
				return err
			}

			level := zerolog.WarnLevel
			if verbose {
				level = zerolog.InfoLevel
			}
			log := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true}).
				Level(level).With().Timestamp().Logger()

			res, err := service.New(eng, &log, nil).Diacritize(cmd.Context(), text)
			if asJSON {
				if err != nil {
					_, failure := pnet.Error(err, version.Service)
					if werr := writeJSON(cmd.OutOrStdout(), failure); werr != nil {
						return werr
					}
					return err
				}
				return writeJSON(cmd.OutOrStdout(), domain.NewReply(res, version.Service))
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Text)
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the same JSON reply as POST /diacritize")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log requests to stderr")
	return cmd
}

// inputText joins args with spaces, or reads all of in with one trailing newline dropped
func inputText(in io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	s := strings.TrimSuffix(string(b), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
