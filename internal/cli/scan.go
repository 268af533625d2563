// ABOUTME: scan subcommand requests one briefing per topic or preset
// ABOUTME: Topics run through the batch runner and print in the order given

package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"pakgov-intel/core/presets"
	"pakgov-intel/core/report"
)

// scanTarget pairs what is displayed with what is sent
type scanTarget struct {
	label string
	query string
}

func newScanCmd() *cobra.Command {
	var presetIDs []string
	var format string
	var style string
	var width int
	var concurrency int

	cmd := &cobra.Command{
		Use:   "scan [topic...]",
		Short: "Request a briefing for each topic or preset",
		Example: `  pakgov scan "Budget 2025"
  pakgov scan --preset energy --preset economy --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, ok := appFrom(cmd)
			if !ok {
				return fmt.Errorf("internal error: app not initialized")
			}

			w, err := newWriter(format, style, width)
			if err != nil {
				return err
			}

			targets, err := resolveTargets(args, presetIDs)
			if err != nil {
				return err
			}

			if concurrency <= 0 {
				concurrency = app.Concurrency
			}

			queries := make([]string, len(targets))
			for i, t := range targets {
				queries[i] = t.query
			}

			results, err := report.NewBatch(app.Reports,
				report.WithBatchConcurrency(concurrency),
				report.WithBatchLogger(app.Logger),
			).Run(cmd.Context(), queries)
			if err != nil {
				return err
			}

			now := time.Now()
			failed := 0
			for i, r := range results {
				if r.Err != nil {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "scan failed for %q: %s\n", targets[i].label, r.Err)
				}
			}

			if err := w.write(cmd.OutOrStdout(), targets, results, now); err != nil {
				return err
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d scans failed", failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&presetIDs, "preset", "p", nil, "preset id to scan (repeatable)")
	cmd.Flags().StringVarP(&format, "format", "f", formatTerminal, "output format: terminal|markdown|json")
	cmd.Flags().StringVar(&style, "style", "dark", "terminal style: dark|light|dracula|notty")
	cmd.Flags().IntVar(&width, "width", 80, "terminal word wrap width")
	cmd.Flags().IntVarP(&concurrency, "concurrency", "c", 0, "maximum requests in flight")

	return cmd
}

// resolveTargets turns free-text topics and preset ids into scan targets.
// Presets come after topics, each in the order given.
func resolveTargets(topics, presetIDs []string) ([]scanTarget, error) {
	var targets []scanTarget
	for _, topic := range topics {
		topic = strings.TrimSpace(topic)
		if topic == "" {
			continue
		}
		targets = append(targets, scanTarget{label: topic, query: topic})
	}
	for _, id := range presetIDs {
		p, ok := presets.Find(strings.TrimSpace(id))
		if !ok {
			return nil, fmt.Errorf("unknown preset %q (see 'pakgov presets')", id)
		}
		targets = append(targets, scanTarget{label: p.Label, query: p.Query})
	}
	if len(targets) == 0 {
		return nil, fmt.Errorf("nothing to scan: give a topic or --preset")
	}
	return targets, nil
}
