package script

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/hay-kot/nudge/internal/core/dialog"
	"github.com/hay-kot/nudge/internal/core/notify"
)

// Step statuses.
const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusNotified  = "notified"
	StatusSkipped   = "skipped"
	StatusFailed    = "failed"
)

// Result is the outcome of one step.
type Result struct {
	Index  int    `json:"index"`
	Kind   string `json:"kind"`
	Title  string `json:"title,omitempty"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Executor runs scripts against a Confirmer and a Notifier.
type Executor struct {
	confirmer *dialog.Confirmer
	notifier  notify.Notifier
	log       zerolog.Logger
}

// NewExecutor creates an Executor.
func NewExecutor(c *dialog.Confirmer, n notify.Notifier, log zerolog.Logger) *Executor {
	return &Executor{
		confirmer: c,
		notifier:  n,
		log:       log,
	}
}

// Run executes the steps of s in order. A cancelled confirm step stops the
// script unless the step says on_cancel: continue; the remaining steps are
// reported as skipped. The returned error is non-nil only when ctx ends.
func (e *Executor) Run(ctx context.Context, s *Script) ([]Result, error) {
	results := make([]Result, 0, len(s.Steps))
	stopped := false

	for i, step := range s.Steps {
		res := Result{Index: i, Kind: step.Kind()}

		if stopped {
			res.Status = StatusSkipped
			results = append(results, res)
			continue
		}

		switch {
		case step.Confirm != nil:
			req := e.confirmer.Confirm(step.Confirm.Options()...)
			res.Title = req.Config().Title

			ok, err := req.Wait(ctx)
			switch {
			case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
				e.confirmer.Dismiss(err)
				res.Status = StatusFailed
				res.Error = err.Error()
				results = append(results, res)
				return results, err
			case err != nil:
				res.Status = StatusFailed
				res.Error = err.Error()
				stopped = true
			case ok:
				res.Status = StatusConfirmed
			default:
				res.Status = StatusCancelled
				stopped = step.OnCancel != OnCancelContinue
			}

		case step.Notify != nil:
			level, _ := notify.ParseLevel(step.Notify.Level)
			notify.Send(e.notifier, level, step.Notify.Title, step.Notify.Description)
			res.Title = step.Notify.Title
			res.Status = StatusNotified

		case step.Show != nil:
			e.notifier.Show(*step.Show)
			res.Title = step.Show.Title
			res.Status = StatusNotified
		}

		e.log.Debug().
			Int("step", i).
			Str("kind", res.Kind).
			Str("status", res.Status).
			Msg("script step finished")

		results = append(results, res)
	}

	return results, nil
}
