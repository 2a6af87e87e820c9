package mock

import (
	"context"

	"github.com/fwojciec/menuscrape"
)

var (
	_ menuscrape.ArtifactStore = (*ArtifactStore)(nil)
	_ menuscrape.RunLedger     = (*RunLedger)(nil)
)

// ArtifactStore is a mock implementation of menuscrape.ArtifactStore.
type ArtifactStore struct {
	SaveFn func(ctx context.Context, name string, a menuscrape.Artifact) (*menuscrape.SavedArtifact, error)
	DirFn  func() string
}

func (s *ArtifactStore) Save(ctx context.Context, name string, a menuscrape.Artifact) (*menuscrape.SavedArtifact, error) {
	return s.SaveFn(ctx, name, a)
}

func (s *ArtifactStore) Dir() string {
	return s.DirFn()
}

// RunLedger is a mock implementation of menuscrape.RunLedger.
type RunLedger struct {
	BeginRunFn     func(ctx context.Context, run *menuscrape.Run) error
	RecordResultFn func(ctx context.Context, result *menuscrape.Result) error
	LastSuccessFn  func(ctx context.Context, source string) (*menuscrape.Result, error)
	FindResultsFn  func(ctx context.Context, filter menuscrape.ResultFilter) ([]*menuscrape.Result, error)
}

func (l *RunLedger) BeginRun(ctx context.Context, run *menuscrape.Run) error {
	return l.BeginRunFn(ctx, run)
}

func (l *RunLedger) RecordResult(ctx context.Context, result *menuscrape.Result) error {
	return l.RecordResultFn(ctx, result)
}

func (l *RunLedger) LastSuccess(ctx context.Context, source string) (*menuscrape.Result, error) {
	return l.LastSuccessFn(ctx, source)
}

func (l *RunLedger) FindResults(ctx context.Context, filter menuscrape.ResultFilter) ([]*menuscrape.Result, error) {
	return l.FindResultsFn(ctx, filter)
}
