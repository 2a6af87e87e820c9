// Package fs persists menu artifacts into a dated output directory.
package fs

import (
	"context"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/menuscrape"
)

// DirLayout is the time layout of per-run directory names, e.g. October2026.
const DirLayout = "January2006"

// RunDir creates (if absent) and returns the output directory for a run
// started at now, under base.
func RunDir(base string, now time.Time) (string, error) {
	dir := filepath.Join(base, now.Format(DirLayout))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", menuscrape.WrapError(menuscrape.EWRITE, "", err)
	}
	return dir, nil
}

// Ensure Store implements menuscrape.ArtifactStore at compile time.
var _ menuscrape.ArtifactStore = (*Store)(nil)

// Store writes artifacts as files in a single directory.
// Each file is written to a temporary sibling and renamed into place, so a
// failed write never leaves a partial artifact and an earlier file with the
// same name survives.
type Store struct {
	dir string
}

// NewStore creates a Store writing into dir. The directory must exist.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the output directory.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes a to <dir>/<name><ext> and returns its size and checksum.
func (s *Store) Save(ctx context.Context, name string, a menuscrape.Artifact) (*menuscrape.SavedArtifact, error) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return nil, menuscrape.Errorf(menuscrape.EINVALID, "invalid artifact name %q", name)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := filepath.Join(s.dir, name+a.Kind().Ext())

	tmp, err := os.CreateTemp(s.dir, "."+name+"-*.tmp")
	if err != nil {
		return nil, menuscrape.WrapError(menuscrape.EWRITE, "", err)
	}
	tmpPath := tmp.Name()

	// Remove the temp file unless it was renamed into place.
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	h := xxhash.New()
	cw := &countingWriter{w: io.MultiWriter(tmp, h)}
	if err := a.Write(ctx, cw); err != nil {
		return nil, menuscrape.WrapError(menuscrape.EWRITE, "", err)
	}
	if err := tmp.Sync(); err != nil {
		return nil, menuscrape.WrapError(menuscrape.EWRITE, "", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, menuscrape.WrapError(menuscrape.EWRITE, "", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return nil, menuscrape.WrapError(menuscrape.EWRITE, "", err)
	}
	committed = true

	return &menuscrape.SavedArtifact{
		Path:     path,
		Size:     cw.n,
		Checksum: hex.EncodeToString(h.Sum(nil)),
	}, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
