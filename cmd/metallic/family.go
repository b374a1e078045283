package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexshd/metallic"
)

func newFamilyCmd() *cobra.Command {
	var kMax int

	cmd := &cobra.Command{
		Use:   "family",
		Short: "Enumerate the exceptional family (k, 2k−1, L_{2k−1}, φ^{2k−1})",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := metallic.ExceptionalFamily(kMax)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, e := range entries {
				fmt.Fprintf(out, "k=%-3d index=%-4d n=L_%d=%s\n", e.K, e.Index, e.Index, e.N)
				fmt.Fprintf(out, "      φ^%d = %s\n", e.Index, clip(e.PhiPower.String(), 50))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&kMax, "kmax", 10, "number of family entries")
	return cmd
}
