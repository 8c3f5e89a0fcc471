package main

import (
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	calmcp "github.com/salhuss/agentic-calender-app/internal/mcp"
)

func mcpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start the MCP (Model Context Protocol) server over stdio",
		Long: `Starts an MCP JSON-RPC 2.0 server that reads from stdin and writes to stdout.
All diagnostic logs go to stderr so that stdout remains exclusively MCP protocol traffic.

Tools exposed:
  draft_event    draft a structured event from a prompt
  scan_entities  list raw times, dates, places, people and keywords
  export_ics     draft a prompt and return it as iCalendar text

Relative dates resolve against the "now" argument when given, otherwise
against the current time in calendar.timezone.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger()

			loc, err := cfg.Calendar.Location()
			if err != nil {
				return err
			}

			srv := calmcp.NewServer(newDrafter(logger), calmcp.Options{
				Name:      cfg.MCP.Name,
				Version:   cfg.MCP.Version,
				ProductID: cfg.Calendar.ProductID,
				Now:       func() time.Time { return time.Now().In(loc) },
			}, logger)

			// Use a standard log.Logger pointing at stderr for the mcp-go error logger.
			errLogger := log.New(os.Stderr, "mcp: ", log.LstdFlags)

			logger.Info("mcp: agentic-calendar MCP server starting", "transport", "stdio")

			return mcpserver.ServeStdio(
				srv.MCPServer(),
				mcpserver.WithErrorLogger(errLogger),
			)
		},
	}

	return cmd
}
