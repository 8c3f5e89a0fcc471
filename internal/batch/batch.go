// Package batch drafts many prompts concurrently.
package batch

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/salhuss/agentic-calender-app/internal/extract"
	"github.com/salhuss/agentic-calender-app/internal/metrics"
	"github.com/salhuss/agentic-calender-app/internal/models"
)

// ErrNoPrompts is returned when a batch contains nothing to draft.
var ErrNoPrompts = errors.New("batch: no prompts")

// maxLineBytes bounds a single prompt line.
const maxLineBytes = 1 << 20

// Result pairs a prompt with its draft.
type Result struct {
	ID     string            `json:"id" yaml:"id"`
	Prompt string            `json:"prompt" yaml:"prompt"`
	Draft  models.EventDraft `json:"draft" yaml:"draft"`
}

// ReadPrompts reads one prompt per line. Blank lines are skipped; other lines
// are kept as written apart from the line terminator.
func ReadPrompts(r io.Reader) ([]string, error) {
	var prompts []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		prompts = append(prompts, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("batch: reading prompts: %w", err)
	}
	return prompts, nil
}

// Runner drafts prompts with bounded concurrency.
type Runner struct {
	drafter     extract.Drafter
	concurrency int
	logger      *slog.Logger
}

// NewRunner creates a Runner. concurrency below 1 is treated as 1.
func NewRunner(d extract.Drafter, concurrency int, logger *slog.Logger) *Runner {
	if concurrency < 1 {
		concurrency = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{drafter: d, concurrency: concurrency, logger: logger}
}

// Run drafts every prompt against the same reference instant. Results keep
// input order. Cancelling ctx stops work that has not started yet and
// returns the context error.
func (r *Runner) Run(ctx context.Context, prompts []string, now time.Time) ([]Result, error) {
	if len(prompts) == 0 {
		return nil, ErrNoPrompts
	}

	results := make([]Result, len(prompts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i, p := range prompts {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = Result{
				ID:     uuid.NewString(),
				Prompt: p,
				Draft:  r.drafter.Draft(p, now),
			}
			metrics.Inc(metrics.BatchPromptTotal)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}

	r.logger.Info("batch drafted", "count", len(results), "concurrency", r.concurrency)
	return results, nil
}
