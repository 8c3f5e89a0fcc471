package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/salhuss/agentic-calender-app/internal/extract"
)

func scanCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "scan <prompt...>",
		Short: "Show the raw entities found in a prompt",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bag := extract.ScanEntities(strings.Join(args, " "))

			var err error
			switch format {
			case "json":
				err = writeJSON(cmd.OutOrStdout(), bag)
			case "yaml":
				err = writeYAML(cmd.OutOrStdout(), bag)
			default:
				err = fmt.Errorf("unsupported format %q (want json or yaml)", format)
			}
			if err != nil {
				return fmt.Errorf("scan: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or yaml")
	return cmd
}
