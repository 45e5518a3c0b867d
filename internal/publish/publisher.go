package publish

import (
	"context"
	"errors"
	"time"

	"reelpub/internal/catalog"
	"reelpub/internal/services"
)

// Result pairs a catalog filename with the identifier the host assigned.
type Result struct {
	Filename   string `json:"filename"`
	ExternalID string `json:"external_id"`
}

// Publisher obtains an external identifier for one catalog entry.
type Publisher interface {
	Publish(ctx context.Context, entry catalog.AssetEntry) (Result, error)
}

// Outcome records what happened to one entry.
type Outcome struct {
	Entry    catalog.AssetEntry
	Result   Result
	Err      error
	Duration time.Duration
}

// OK reports whether the entry was published.
func (o Outcome) OK() bool { return o.Err == nil }

// Report is the result of a Run.
type Report struct {
	Outcomes []Outcome
	// Err is set when the run stopped early on a non-asset-local failure.
	Err error
}

// Results returns successful results in catalog order.
func (r Report) Results() []Result {
	out := make([]Result, 0, len(r.Outcomes))
	for _, o := range r.Outcomes {
		if o.OK() {
			out = append(out, o.Result)
		}
	}
	return out
}

// Succeeded counts published entries.
func (r Report) Succeeded() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.OK() {
			n++
		}
	}
	return n
}

// Failed counts entries that were attempted and skipped.
func (r Report) Failed() int {
	return len(r.Outcomes) - r.Succeeded()
}

// Observer receives progress notifications. Either field may be nil.
type Observer struct {
	Started  func(index, total int, entry catalog.AssetEntry)
	Finished func(index, total int, outcome Outcome)
}

// Run publishes entries one at a time in order. Asset-local failures are
// recorded and the loop continues; anything else stops the loop.
func Run(ctx context.Context, publisher Publisher, entries []catalog.AssetEntry, observer Observer) Report {
	report := Report{Outcomes: make([]Outcome, 0, len(entries))}
	if publisher == nil {
		report.Err = errors.New("publish: publisher is nil")
		return report
	}
	total := len(entries)
	for i, entry := range entries {
		if err := ctx.Err(); err != nil {
			report.Err = err
			return report
		}
		if observer.Started != nil {
			observer.Started(i, total, entry)
		}

		assetCtx := services.WithAsset(ctx, entry.Filename)
		start := time.Now()
		result, err := publisher.Publish(assetCtx, entry)
		outcome := Outcome{Entry: entry, Result: result, Err: err, Duration: time.Since(start)}

		if err != nil && !services.IsAssetLocal(err) {
			report.Err = err
			return report
		}
		if err == nil && result.Filename == "" {
			outcome.Result.Filename = entry.Filename
		}
		report.Outcomes = append(report.Outcomes, outcome)
		if observer.Finished != nil {
			observer.Finished(i, total, outcome)
		}
	}
	return report
}
