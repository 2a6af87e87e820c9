package menuscrape

import (
	"context"
	"image"
	"image/jpeg"
	"image/png"
	"io"
)

// Artifact is the normalized output of one extraction, ready to persist.
type Artifact interface {
	Kind() ArtifactKind

	// Write serializes the artifact to w. Write errors are EWRITE.
	Write(ctx context.Context, w io.Writer) error
}

// Extraction is what an Extractor hands to persistence.
type Extraction struct {
	Artifact Artifact

	// Raw holds the fetched page bodies, if any, for optional snapshots.
	Raw string
}

// Extractor produces the artifact for one source.
type Extractor interface {
	Extract(ctx context.Context, src *Source) (*Extraction, error)
}

// TextArtifact is plain text extracted without menu structure.
type TextArtifact struct {
	Text string
}

func (a *TextArtifact) Kind() ArtifactKind { return KindText }

func (a *TextArtifact) Write(ctx context.Context, w io.Writer) error {
	if _, err := io.WriteString(w, a.Text); err != nil {
		return WrapError(EWRITE, "", err)
	}
	return nil
}

// MenuArtifact is a structured menu rendered as plain text.
type MenuArtifact struct {
	Menu *Menu
}

func (a *MenuArtifact) Kind() ArtifactKind { return KindText }

func (a *MenuArtifact) Write(ctx context.Context, w io.Writer) error {
	if err := a.Menu.Render(w); err != nil {
		return WrapError(EWRITE, "", err)
	}
	return nil
}

// DownloadArtifact is a remote binary asset streamed straight to storage.
type DownloadArtifact struct {
	URL        string
	Format     ArtifactKind
	Downloader Downloader
}

func (a *DownloadArtifact) Kind() ArtifactKind { return a.Format }

func (a *DownloadArtifact) Write(ctx context.Context, w io.Writer) error {
	_, err := a.Downloader.Download(ctx, a.URL, w)
	return err
}

// DefaultJPEGQuality is used when an ImageArtifact sets no quality.
const DefaultJPEGQuality = 90

// ImageArtifact is a decoded image encoded on write.
type ImageArtifact struct {
	Image   image.Image
	Format  ArtifactKind
	Quality int
}

func (a *ImageArtifact) Kind() ArtifactKind { return a.Format }

func (a *ImageArtifact) Write(ctx context.Context, w io.Writer) error {
	var err error
	switch a.Format {
	case KindPNG:
		err = png.Encode(w, a.Image)
	case KindJPEG:
		q := a.Quality
		if q == 0 {
			q = DefaultJPEGQuality
		}
		err = jpeg.Encode(w, a.Image, &jpeg.Options{Quality: q})
	default:
		return Errorf(EINVALID, "unsupported image format %q", a.Format)
	}
	if err != nil {
		return WrapError(EWRITE, "", err)
	}
	return nil
}
