// Package cli implements the non-interactive snapshot mode.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"

	"procwatch/internal/domain"
)

// Spinner abstracts the terminal spinner so the snapshot flow can be
// tested without a terminal.
type Spinner interface {
	Start()
	Stop()
	UpdateSuffix(suffix string)
}

type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

// NewSpinner returns a spinner drawing on w.
func NewSpinner(w io.Writer) Spinner {
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(w))
	return &realSpinner{s}
}

// Collector produces one snapshot per call. sampler.Sampler implements it.
type Collector interface {
	Collect(ctx context.Context) domain.Snapshot
}

// Snapshot takes a baseline reading, waits one interval so every ratio
// covers a real time span, takes a second reading and writes it to out as
// indented JSON.
func Snapshot(ctx context.Context, c Collector, interval time.Duration, spin Spinner, out io.Writer) error {
	spin.UpdateSuffix(" sampling counters")
	spin.Start()

	c.Collect(ctx)

	timer := time.NewTimer(interval)
	select {
	case <-timer.C:
	case <-ctx.Done():
		timer.Stop()
		spin.Stop()
		return ctx.Err()
	}

	snap := c.Collect(ctx)
	spin.Stop()

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	return nil
}
