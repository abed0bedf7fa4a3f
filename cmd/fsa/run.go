package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/geange/fsa"
	"github.com/geange/fsa/internal/textio"
	"github.com/spf13/cobra"
)

func newRunCmd(a *app) *cobra.Command {
	var words []string

	cmd := &cobra.Command{
		Use:   "run [file] --word a,b,...",
		Short: "Check whether a DFA accepts words",
		Long: `Reads the DFA format and prints "accept" or "reject" for every --word, one
per line. Symbols of a word are separated by ","; an empty word is the empty string.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(words) == 0 {
				return errors.New("at least one --word is required")
			}

			in, name, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer in.Close()

			def, err := textio.ReadDFA(in)
			if err != nil {
				return err
			}
			a.logger.Debug("parsed dfa", "input", name, "words", len(words))

			out := cmd.OutOrStdout()
			for _, w := range words {
				verdict := "reject"
				if fsa.Run(def, splitWord(w)) {
					verdict = "accept"
				}
				if _, err := fmt.Fprintln(out, verdict); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&words, "word", "w", nil, "Word to check, symbols separated by \",\" (repeatable)")
	return cmd
}

func splitWord(w string) []fsa.Symbol {
	if w == "" {
		return nil
	}
	return fsa.Symbols(strings.Split(w, ",")...)
}
