package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"type-reconciler/internal/reconcile"
)

// globalOptions are the persistent flags shared by all commands.
type globalOptions struct {
	verbose             bool
	similarityThreshold float64
	precedenceThreshold float64
	precedenceBonus     float64
	noiseFactor         float64
}

func newRootCommand() *cobra.Command {
	opts := &globalOptions{}
	defaults := reconcile.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:           "type-reconciler",
		Short:         "Reconcile two sequences of items by similarity",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log matcher phases at debug level")
	flags.Float64Var(&opts.similarityThreshold, "similarity-threshold", defaults.SimilarityThreshold,
		"Minimal similarity of a candidate pair (0 disables similarity matching)")
	flags.Float64Var(&opts.precedenceThreshold, "precedence-threshold", defaults.SingletonPrecedenceThreshold,
		"Similarity from which on a singleton always wins its slot")
	flags.Float64Var(&opts.precedenceBonus, "precedence-bonus", defaults.SingletonPrecedenceBonus,
		"Multiplier applied to a singleton when compared to its best competitor")
	flags.Float64Var(&opts.noiseFactor, "noise-factor", defaults.NoiseFactor,
		"Fraction of a row or column maximum below which candidates are noise")

	rootCmd.AddCommand(newFieldsCommand(opts))
	rootCmd.AddCommand(newWordsCommand(opts))

	return rootCmd
}

// matcherConfig applies the threshold flags that were set on the command line to base.
func (o *globalOptions) matcherConfig(cmd *cobra.Command, base reconcile.Config) reconcile.Config {
	flags := cmd.Flags()
	if flags.Changed("similarity-threshold") {
		base.SimilarityThreshold = o.similarityThreshold
	}
	if flags.Changed("precedence-threshold") {
		base.SingletonPrecedenceThreshold = o.precedenceThreshold
	}
	if flags.Changed("precedence-bonus") {
		base.SingletonPrecedenceBonus = o.precedenceBonus
	}
	if flags.Changed("noise-factor") {
		base.NoiseFactor = o.noiseFactor
	}

	return base
}

func (o *globalOptions) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}
