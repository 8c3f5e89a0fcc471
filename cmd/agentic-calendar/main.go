package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/salhuss/agentic-calender-app/internal/cache"
	"github.com/salhuss/agentic-calender-app/internal/config"
	"github.com/salhuss/agentic-calender-app/internal/extract"
)

var (
	cfg        *config.Config
	configFile string
)

func main() {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	rootCmd := &cobra.Command{
		Use:   "agentic-calendar",
		Short: "Agentic Calendar: turn plain-language requests into calendar events",
		Long: `Agentic Calendar reads requests like "Lunch with sara@example.com at Cafe Rio
tomorrow 12pm" and drafts a structured event with resolved times, location,
attendees and a confidence score. Drafts print as JSON, YAML, text or iCalendar.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configFile)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $HOME/.agentic-calendar/config.yaml)")

	rootCmd.AddCommand(
		draftCmd(),
		scanCmd(),
		batchCmd(),
		mcpCmd(),
	)

	rootCmd.SetContext(ctx)

	err := rootCmd.Execute()
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	var level slog.Level
	if cfg == nil || level.UnmarshalText([]byte(cfg.Logging.Level)) != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg != nil && strings.EqualFold(cfg.Logging.Format, "json") {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// newDrafter returns the extractor, memoized when the cache is enabled.
func newDrafter(logger *slog.Logger) extract.Drafter {
	ex := extract.NewExtractor(logger)
	if !cfg.Cache.Enabled {
		return ex
	}
	return cache.NewDrafter(ex, cfg.Cache.TTL, cfg.Cache.CleanupInterval, logger)
}

// clock returns the current instant in the configured timezone.
func clock() (time.Time, error) {
	loc, err := cfg.Calendar.Location()
	if err != nil {
		return time.Time{}, err
	}
	return time.Now().In(loc), nil
}

// referenceNow parses an RFC 3339 --now flag, or reads the clock when empty.
func referenceNow(flag string) (time.Time, error) {
	if flag == "" {
		return clock()
	}
	t, err := time.Parse(time.RFC3339, flag)
	if err != nil {
		return time.Time{}, fmt.Errorf("--now must be RFC 3339 (e.g. 2026-10-16T09:30:00Z): %w", err)
	}
	return t, nil
}
