package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func draftCmd() *cobra.Command {
	var (
		now    string
		format string
	)

	cmd := &cobra.Command{
		Use:   "draft <prompt...>",
		Short: "Draft a calendar event from a natural-language prompt",
		Example: `  agentic-calendar draft "Meeting with John tomorrow at 3pm"
  agentic-calendar draft --format ics Lunch at Cafe Rio tomorrow 12pm > lunch.ics`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			ref, err := referenceNow(now)
			if err != nil {
				return fmt.Errorf("draft: %w", err)
			}

			prompt := strings.Join(args, " ")
			d := newDrafter(logger).Draft(prompt, ref)

			if err := writeDraft(cmd.OutOrStdout(), format, cfg.Calendar.ProductID, ref, d); err != nil {
				return fmt.Errorf("draft: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&now, "now", "", "reference instant as RFC 3339 (default: current time in calendar.timezone)")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json, yaml, text or ics")
	return cmd
}
