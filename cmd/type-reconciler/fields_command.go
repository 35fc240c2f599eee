package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"type-reconciler/internal/analyze"
	"type-reconciler/internal/legacy"
	"type-reconciler/internal/mapping"
)

var errResolveFailed = errors.New("reconciliation reported errors")

func newFieldsCommand(opts *globalOptions) *cobra.Command {
	var (
		configPath string
		outPath    string
		dir        string
		workers    int
	)

	cmd := &cobra.Command{
		Use:   "fields",
		Short: "Reconcile the fields of old and new struct layouts",
		Long: "Loads the packages and type pairs of a reconcile file, links the fields of\n" +
			"every old type to the fields of its new type and prints one table per pair.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := mapping.LoadFile(configPath)
			if err != nil {
				return err
			}
			if len(f.Packages) == 0 {
				return fmt.Errorf("%s: no packages to load", configPath)
			}

			logger := opts.logger(cmd)

			cfg := legacy.DefaultConfig()
			cfg.Matcher = opts.matcherConfig(cmd, f.Matcher)
			cfg.Workers = workers

			analyzer := analyze.NewAnalyzer(analyze.WithDir(dir), analyze.WithLogger(logger))
			graph, err := analyzer.LoadPackages(cmd.Context(), f.Packages...)
			if err != nil {
				return err
			}

			mapper, err := legacy.NewMapper(graph, cfg, logger)
			if err != nil {
				return err
			}
			mappings, err := mapper.ResolveAll(cmd.Context(), f.Pairs)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failed := false
			for _, tm := range mappings {
				printMapping(out, tm)
				failed = failed || tm.Diagnostics.HasErrors()
			}

			if outPath != "" {
				if err := mapping.WriteReport(legacy.BuildReport(cfg.Matcher, mappings), outPath); err != nil {
					return err
				}
				logger.Info("fields: wrote report", "path", outPath, "pairs", len(mappings))
			}

			if failed {
				return errResolveFailed
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "reconcile.yaml", "Reconcile file path")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write a YAML report to this path")
	cmd.Flags().StringVar(&dir, "dir", "", "Directory the package patterns are relative to (default: working directory)")
	cmd.Flags().IntVar(&workers, "workers", 0, "Pairs reconciled at once (0 = GOMAXPROCS)")

	return cmd
}

func printMapping(w io.Writer, tm *legacy.TypeMapping) {
	stats := tm.Stats()
	title := fmt.Sprintf("%s -> %s (%d links, average %.2f)", tm.Pair.Source, tm.Pair.Target,
		stats.MatchCount, stats.Average)

	report := tm.Report()
	headers := []string{"Old Field", "Old Type", "New Field", "New Type", "Similarity", "Phase", "Compatibility"}
	rows := make([][]string, 0, len(report.Links)+len(report.Discarded)+len(report.Added))
	for _, l := range report.Links {
		rows = append(rows, []string{
			l.Source, l.SourceType, l.Target, l.TargetType,
			strconv.FormatFloat(l.Similarity, 'f', 2, 64), l.Phase, l.Compatibility,
		})
	}
	for _, f := range tm.Discarded {
		rows = append(rows, []string{f.Name, analyze.TypeString(f.Type), "-", "", "", "discarded", ""})
	}
	for _, f := range tm.Added {
		rows = append(rows, []string{"-", "", f.Name, analyze.TypeString(f.Type), "", "added", ""})
	}
	for _, f := range tm.Ignored {
		rows = append(rows, []string{f.Name, analyze.TypeString(f.Type), "-", "", "", "ignored", ""})
	}

	aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignLeft, alignLeft}
	fmt.Fprintln(w, renderTable(title, headers, rows, aligns))

	for _, d := range tm.Diagnostics.All() {
		fmt.Fprintf(w, "  %s: %s\n", d.Severity, d.String())
	}
	fmt.Fprintln(w)
}
