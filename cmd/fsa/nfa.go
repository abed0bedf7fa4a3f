package main

import (
	"github.com/geange/fsa/internal/textio"
	"github.com/spf13/cobra"
)

func newNFACmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "nfa [file]",
		Short: "Replay input sequences against an epsilon-NFA",
		Long: `Reads the NFA replay format and prints, for every input sequence, the
states the automaton is in before the first symbol and after each symbol.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, name, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer in.Close()

			doc, err := textio.ReadNFA(in)
			if err != nil {
				return err
			}
			a.logger.Debug("parsed nfa",
				"input", name,
				"states", len(doc.Definition.States()),
				"sequences", len(doc.Sequences),
			)
			return textio.WriteTraces(cmd.OutOrStdout(), doc)
		},
	}
}
