package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexshd/metallic"
)

const modulePath = "github.com/alexshd/metallic"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the metallic version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "metallic v%s\nmodule: %s\n", metallic.Version, modulePath)
			return nil
		},
	}
}
