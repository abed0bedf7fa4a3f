package main

import (
	"fmt"

	"github.com/geange/fsa"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of fsa",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "fsa version %s\n", fsa.Version)
			return err
		},
	}
}
