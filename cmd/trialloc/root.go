package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/trialloc/internal/logging"
	"github.com/arloliu/trialloc/types"
)

var rootCmd = &cobra.Command{
	Use:   "trialloc",
	Short: "Trialloc assigns trial participants to treatment groups",
	Long: `Trialloc runs the randomization designs used in controlled trials
(simple, block, permuted-block, stratified, cluster, minimization) over a
participant list and prints the resulting group assignment. The engine keeps
no state; all input comes from the configuration file and all output goes to
stdout.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
}

// newLogger builds the CLI logger: a text handler on stderr so stdout stays
// reserved for the allocation output.
func newLogger(cmd *cobra.Command) types.Logger {
	level := slog.LevelInfo
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})

	return logging.NewSlog(slog.New(handler))
}
