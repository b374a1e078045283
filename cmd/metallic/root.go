// Command metallic demonstrates the identity-verification and field
// classification engines: it prints verification results for the exceptional
// family and membership reports for sample integers.
package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// newRootCmd creates the top-level "metallic" command with global flags and
// all subcommands registered. Flags are mirrored into viper so they can also
// be supplied via METALLIC_* environment variables.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "metallic",
		Short: "Verify metallic-mean identities and classify them in Q(sqrt(5))",
		Long: "Metallic numerically verifies the identity φ_{L_{2k−1}} = φ^{2k−1} relating\n" +
			"odd-indexed Lucas numbers to powers of the golden mean, and classifies which\n" +
			"metallic means lie in the quadratic field ℚ(√5).",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(viper.GetBool("verbose"))
		},
	}

	root.PersistentFlags().Int("precision", 40, "significant digits for verification")
	root.PersistentFlags().Int("search-bound", 19, "odd Fibonacci indices searched during classification")
	root.PersistentFlags().Bool("verbose", false, "debug logging")

	viper.SetEnvPrefix("METALLIC")
	viper.AutomaticEnv()
	_ = viper.BindPFlag("precision", root.PersistentFlags().Lookup("precision"))
	_ = viper.BindPFlag("search-bound", root.PersistentFlags().Lookup("search-bound"))
	_ = viper.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose"))

	root.AddCommand(newVerifyCmd())
	root.AddCommand(newClassifyCmd())
	root.AddCommand(newFamilyCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// setupLogging installs a tinted slog handler on stderr so diagnostic output
// never mixes with the result tables on stdout.
func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}),
	))
}
