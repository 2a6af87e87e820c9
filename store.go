package menuscrape

import "context"

// SavedArtifact describes an artifact after it reached storage.
type SavedArtifact struct {
	Path     string
	Size     int64
	Checksum string // xxhash64, hex
}

// ArtifactStore persists artifacts into one run's output directory.
type ArtifactStore interface {
	// Save writes the artifact under name. A failed save leaves no file.
	// Returns EWRITE on local failures; failures of the artifact itself
	// (e.g. EFETCH while streaming) keep their code.
	Save(ctx context.Context, name string, a Artifact) (*SavedArtifact, error)

	// Dir returns the output directory.
	Dir() string
}
