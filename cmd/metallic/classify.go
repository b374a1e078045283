package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alexshd/metallic"
)

// defaultSamples mixes exceptional-family members with nearby non-members.
var defaultSamples = []int64{1, 2, 3, 4, 5, 11, 12, 29, 30, 76}

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify [n...]",
		Short: "Test whether φ_n lies in Q(sqrt(5))",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values := defaultSamples
			if len(args) > 0 {
				values = make([]int64, 0, len(args))
				for _, a := range args {
					n, err := strconv.ParseInt(a, 10, 64)
					if err != nil {
						return fmt.Errorf("invalid integer %q: %w", a, err)
					}
					values = append(values, n)
				}
			}

			classifier := metallic.Classifier{SearchBound: viper.GetInt("search-bound")}
			out := cmd.OutOrStdout()
			for _, n := range values {
				res := classifier.Classify(n)
				symbol := "∉"
				if res.InField {
					symbol = "∈"
				}
				fmt.Fprintf(out, "φ_%d %s ℚ(√5): %s\n", n, symbol, res.Explanation)
			}
			return nil
		},
	}
}
