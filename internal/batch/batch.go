// Package batch refines many content units independently. Each item owns a
// private convergence loop run, so items may proceed concurrently; one
// failed item falls back to its original text and never aborts the batch.
package batch

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-writer/internal/refining"
	"github.com/jonathan/resume-writer/internal/types"
)

// DefaultConcurrency bounds parallel refinement when no limit is configured.
const DefaultConcurrency = 4

// Item is one unit of batch work.
type Item struct {
	ID     string            `json:"id"`
	Unit   types.ContentUnit `json:"unit"`
	Target string            `json:"target,omitempty"`
}

// ItemResult reports the per-item outcome. Failed items carry the original
// text in Text alongside the error message.
type ItemResult struct {
	ID         string         `json:"id"`
	Text       string         `json:"text"`
	State      refining.State `json:"state,omitempty"`
	RoundsUsed int            `json:"rounds_used,omitempty"`
	Satisfied  bool           `json:"satisfied,omitempty"`
	Err        string         `json:"error,omitempty"`
}

// Report summarizes one batch run.
type Report struct {
	Results   []ItemResult `json:"results"`
	Succeeded int          `json:"succeeded"`
	Failed    int          `json:"failed"`
}

// Run refines every item through the loop with at most concurrency items in
// flight. Results preserve input order. Item failures are recorded and
// logged per item; only context cancellation stops the batch.
func Run(ctx context.Context, loop *refining.Loop, items []Item, concurrency int) (*Report, error) {
	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}

	results := make([]ItemResult, len(items))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(concurrency)

	for i, item := range items {
		i, item := i, item
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			outcome, err := loop.Refine(ctx, item.Unit, item.Target)
			if err != nil {
				log.Printf("batch item %s: refinement failed, keeping original: %v", item.ID, err)
				results[i] = ItemResult{
					ID:   item.ID,
					Text: item.Unit.Text,
					Err:  err.Error(),
				}
				return nil
			}

			results[i] = ItemResult{
				ID:         item.ID,
				Text:       outcome.Unit.Text,
				State:      outcome.State,
				RoundsUsed: outcome.RoundsUsed,
				Satisfied:  outcome.Satisfied,
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	report := &Report{Results: results}
	for _, result := range results {
		if result.Err == "" {
			report.Succeeded++
		} else {
			report.Failed++
		}
	}

	return report, nil
}
