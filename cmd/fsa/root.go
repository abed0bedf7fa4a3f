package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/geange/fsa/internal/logging"
	"github.com/spf13/cobra"
)

// app carries what every subcommand shares.
type app struct {
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: logging.NewNop()}

	rootCmd := &cobra.Command{
		Use:           "fsa",
		Short:         "fsa simulates and minimizes finite automata",
		Long:          `fsa replays input sequences against an epsilon-NFA and minimizes DFAs, reading the line-oriented automaton text from a file or stdin.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			levelName, _ := cmd.Flags().GetString("log-level")
			level, err := logging.ParseLevel(levelName)
			if err != nil {
				return err
			}
			a.logger = logging.New(cmd.ErrOrStderr(), level)
			return nil
		},
	}

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(
		newNFACmd(a),
		newMinimizeCmd(a),
		newRunCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// openInput opens the file named by the first argument, or stdin when there is
// none or it is "-".
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, string, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), "stdin", nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("open input: %w", err)
	}
	return f, args[0], nil
}
