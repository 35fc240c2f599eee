package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"type-reconciler/internal/match"
	"type-reconciler/internal/reconcile"
)

func newWordsCommand(opts *globalOptions) *cobra.Command {
	var horizontal bool

	cmd := &cobra.Command{
		Use:   "words SOURCE... -- TARGET...",
		Short: "Reconcile two word lists by name similarity",
		Long: "Links every source word to at most one target word. Words are compared\n" +
			"after identifier normalization, so first_name and FirstName are equal.",
		Example: "  type-reconciler words FirstName Email Phone -- first_name email_address fax",
		RunE: func(cmd *cobra.Command, args []string) error {
			dash := cmd.ArgsLenAtDash()
			if dash < 0 {
				return fmt.Errorf("separate source and target words with --")
			}
			sources, targets := args[:dash], args[dash:]

			matcher, err := reconcile.NewMatcher(opts.matcherConfig(cmd, reconcile.DefaultConfig()),
				reconcile.WithEquality(func(a, b string) bool { return a == b }),
				reconcile.WithSimilarity(match.NameSimilarity),
				reconcile.WithLogger[string](opts.logger(cmd)),
			)
			if err != nil {
				return err
			}

			result, err := matcher.Match(sources, targets)
			if err != nil {
				return err
			}

			identity := func(s string) string { return s }
			out := cmd.OutOrStdout()
			if horizontal {
				fmt.Fprintln(out, reconcile.AssembleHorizontal(result, identity))
			} else {
				fmt.Fprint(out, reconcile.AssembleVertical(result, identity))
			}
			fmt.Fprintf(out, "matched %d of %d, average similarity %.2f (lowest %.2f, highest %.2f)\n",
				result.MatchCount(), min(len(sources), len(targets)),
				result.AverageSimilarity(), result.LowestSimilarity(), result.HighestSimilarity())

			return nil
		},
	}

	cmd.Flags().BoolVar(&horizontal, "horizontal", false, "Print the mapping scheme with one column per source word")

	return cmd
}
