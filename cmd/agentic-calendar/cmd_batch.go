package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/salhuss/agentic-calender-app/internal/batch"
	"github.com/salhuss/agentic-calender-app/internal/cache"
	"github.com/salhuss/agentic-calender-app/internal/metrics"
)

func batchCmd() *cobra.Command {
	var (
		input       string
		now         string
		format      string
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Draft one event per input line",
		Long: `Reads prompts one per line from --input (or stdin) and drafts them
concurrently against the same reference instant. Blank lines are skipped.
Output order matches input order.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger()
			ctx := cmd.Context()

			var r io.Reader = cmd.InOrStdin()
			if input != "" && input != "-" {
				f, err := os.Open(input)
				if err != nil {
					return fmt.Errorf("batch: opening input: %w", err)
				}
				defer func() { _ = f.Close() }()
				r = f
			}

			prompts, err := batch.ReadPrompts(r)
			if err != nil {
				return err
			}

			ref, err := referenceNow(now)
			if err != nil {
				return fmt.Errorf("batch: %w", err)
			}

			if concurrency <= 0 {
				concurrency = cfg.Batch.Concurrency
			}
			drafter := newDrafter(logger)
			runner := batch.NewRunner(drafter, concurrency, logger)

			results, err := runner.Run(ctx, prompts, ref)
			if err != nil {
				return err
			}

			if err := writeResults(cmd.OutOrStdout(), format, cfg.Calendar.ProductID, ref, results); err != nil {
				return fmt.Errorf("batch: %w", err)
			}

			if c, ok := drafter.(*cache.Drafter); ok {
				logger.Debug("batch cache", "entries", c.Len())
			}
			logger.Debug("batch metrics", "counters", metrics.Snapshot())
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "file with one prompt per line (default: stdin)")
	cmd.Flags().StringVar(&now, "now", "", "reference instant as RFC 3339 (default: current time in calendar.timezone)")
	cmd.Flags().StringVarP(&format, "format", "f", "jsonl", "output format: jsonl, yaml or ics")
	cmd.Flags().IntVarP(&concurrency, "concurrency", "c", 0, "parallel drafts (default: batch.concurrency)")
	return cmd
}
