package extract

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fwojciec/menuscrape"
	"github.com/google/uuid"
)

// Runner processes sources one at a time. A failure in one source is
// reported and recorded, and the run moves on to the next source.
type Runner struct {
	Extractor menuscrape.Extractor
	Store     menuscrape.ArtifactStore

	// Ledger records the run when set.
	Ledger menuscrape.RunLedger

	// PDF counts pages of saved PDF artifacts when set.
	PDF menuscrape.PDFInspector

	// Raw also saves each fetched page as <Name>Raw.txt.
	Raw bool

	Stdout io.Writer
	Stderr io.Writer

	// Now defaults to time.Now.
	Now func() time.Time
}

// RunReport summarizes a run.
type RunReport struct {
	Run     *menuscrape.Run
	Results []*menuscrape.Result
}

// Failed returns the number of sources that did not produce an artifact.
func (r *RunReport) Failed() int {
	var n int
	for _, res := range r.Results {
		if res.Status != menuscrape.StatusOK {
			n++
		}
	}
	return n
}

// Run extracts and saves every source in order. It returns an error only
// when the run as a whole cannot proceed: the ledger refuses the run or ctx
// is cancelled. The report covers the sources processed so far.
func (r *Runner) Run(ctx context.Context, sources []*menuscrape.Source) (*RunReport, error) {
	run := &menuscrape.Run{
		ID:        uuid.New().String(),
		Dir:       r.Store.Dir(),
		StartedAt: r.now(),
	}
	if r.Ledger != nil {
		if err := r.Ledger.BeginRun(ctx, run); err != nil {
			return nil, fmt.Errorf("failed to begin run: %w", err)
		}
	}

	report := &RunReport{Run: run}
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		result := r.runSource(ctx, run, src)
		if err := ctx.Err(); err != nil {
			// Cancellation surfaces as a per-source failure; don't record it.
			return report, err
		}
		report.Results = append(report.Results, result)

		if r.Ledger != nil {
			if err := r.Ledger.RecordResult(ctx, result); err != nil {
				fmt.Fprintf(r.Stderr, "warning: failed to record result for %s: %s\n", src.Name, describe(err))
			}
		}
	}
	return report, nil
}

func (r *Runner) runSource(ctx context.Context, run *menuscrape.Run, src *menuscrape.Source) *menuscrape.Result {
	fmt.Fprintf(r.Stdout, "Fetching %s's menu...\n", src.Name)

	result := &menuscrape.Result{
		RunID:  run.ID,
		Source: src.Name,
		Status: menuscrape.StatusOK,
	}

	saved, err := r.extractAndSave(ctx, src)
	result.FinishedAt = r.now()
	if err != nil {
		fmt.Fprintf(r.Stderr, "%s: %s\n", src.Name, describe(err))
		result.Status = menuscrape.StatusFailed
		result.Code = menuscrape.ErrorCode(err)
		result.Message = describe(err)
		return result
	}

	result.Path = saved.Path
	result.Size = saved.Size
	result.Checksum = saved.Checksum
	result.Changed = r.changed(ctx, src.Name, saved.Checksum)

	if src.Kind == menuscrape.KindPDF && r.PDF != nil {
		pages, err := r.PDF.PageCount(saved.Path)
		if err != nil {
			fmt.Fprintf(r.Stderr, "warning: %s: %s\n", src.Name, describe(err))
		}
		result.Pages = pages
	}

	return result
}

func (r *Runner) extractAndSave(ctx context.Context, src *menuscrape.Source) (saved *menuscrape.SavedArtifact, err error) {
	// Parsers and decoders may panic on markup they don't expect.
	defer func() {
		if p := recover(); p != nil {
			saved = nil
			err = &menuscrape.Error{
				Code:    menuscrape.EINTERNAL,
				Message: fmt.Sprintf("extraction panicked: %v", p),
				URL:     src.URL,
			}
		}
	}()

	ex, err := r.Extractor.Extract(ctx, src)
	if err != nil {
		return nil, err
	}

	if r.Raw && ex.Raw != "" {
		raw := &menuscrape.TextArtifact{Text: ex.Raw}
		if _, err := r.Store.Save(ctx, src.Name+"Raw", raw); err != nil {
			fmt.Fprintf(r.Stderr, "warning: %s: raw snapshot: %s\n", src.Name, describe(err))
		}
	}

	return r.Store.Save(ctx, src.Name, ex.Artifact)
}

// changed reports whether checksum differs from the last successful run of
// source. Without a ledger or a previous success every artifact is new.
func (r *Runner) changed(ctx context.Context, source, checksum string) bool {
	if r.Ledger == nil {
		return true
	}
	prev, err := r.Ledger.LastSuccess(ctx, source)
	if err != nil {
		if menuscrape.ErrorCode(err) != menuscrape.ENOTFOUND {
			fmt.Fprintf(r.Stderr, "warning: %s: previous result: %s\n", source, describe(err))
		}
		return true
	}
	return prev.Checksum != checksum
}

func (r *Runner) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// describe formats an error for a status line.
func describe(err error) string {
	var e *menuscrape.Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	if e.URL != "" {
		return e.Message + " (" + e.URL + ")"
	}
	return e.Message
}
