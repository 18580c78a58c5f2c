package main

import (
	"fmt"

	"mishkal/internal/core/lexicon"

	"github.com/spf13/cobra"
)

func newLexiconCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lexicon",
		Short: "Work with lexicon files",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "check <file>",
		Short: "Parse a lexicon file and report its size or every problem found",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := lexicon.LoadFile(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok: %s, %d words\n", p.Name(), p.Len())
			return err
		},
	})
	return cmd
}
