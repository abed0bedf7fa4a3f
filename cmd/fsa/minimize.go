package main

import (
	"github.com/geange/fsa"
	"github.com/geange/fsa/internal/textio"
	"github.com/spf13/cobra"
)

func newMinimizeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "minimize [file]",
		Aliases: []string{"min"},
		Short:   "Minimize a DFA",
		Long: `Reads the DFA format, removes unreachable states, merges equivalent states
and writes the minimal automaton in the same format.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, name, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer in.Close()

			def, err := textio.ReadDFA(in)
			if err != nil {
				return err
			}

			analysis := fsa.Analyze(def)
			a.logger.Debug("analyzed dfa",
				"input", name,
				"states", len(def.States()),
				"reachable", len(analysis.Reachable()),
				"classes", len(analysis.Classes()),
			)

			minimal, err := analysis.Quotient()
			if err != nil {
				a.logger.Error("merge failed", "error", err)
				return err
			}
			return textio.WriteDFA(cmd.OutOrStdout(), minimal)
		},
	}
}
