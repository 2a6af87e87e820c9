package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/menuscrape"
)

// Ensure LoggingStore implements menuscrape.ArtifactStore.
var _ menuscrape.ArtifactStore = (*LoggingStore)(nil)

// LoggingStore wraps an ArtifactStore with debug logging.
type LoggingStore struct {
	next   menuscrape.ArtifactStore
	logger *slog.Logger
}

// NewLoggingStore creates a new LoggingStore.
func NewLoggingStore(next menuscrape.ArtifactStore, logger *slog.Logger) *LoggingStore {
	return &LoggingStore{next: next, logger: logger}
}

// Save logs the written path and size.
func (s *LoggingStore) Save(ctx context.Context, name string, a menuscrape.Artifact) (saved *menuscrape.SavedArtifact, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"name", name,
			"kind", a.Kind(),
			"duration", time.Since(begin),
		}
		if saved != nil {
			attrs = append(attrs, "path", saved.Path, "bytes", saved.Size, "checksum", saved.Checksum)
		}
		attrs = append(attrs, "err", err)
		s.logger.Info("save", attrs...)
	}(time.Now())
	return s.next.Save(ctx, name, a)
}

// Dir delegates to the wrapped store.
func (s *LoggingStore) Dir() string {
	return s.next.Dir()
}
