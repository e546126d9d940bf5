// Package capture saves rendered frames to disk and optionally
// publishes them to object storage.
package capture

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/nfnt/resize"
)

const defaultThumbWidth = 128

// Recorder writes sequentially numbered PNG captures into a
// directory, plus a downscaled thumbnail next to each.
type Recorder struct {
	Dir        string
	ThumbWidth uint // 0 disables thumbnails
	seq        int
}

// NewRecorder creates a recorder targeting dir. The directory is
// created on the first capture.
func NewRecorder(dir string) *Recorder {
	return &Recorder{Dir: dir, ThumbWidth: defaultThumbWidth}
}

// Capture encodes img to the next numbered PNG and returns its path.
// When ThumbWidth is set, a Lanczos-downscaled <name>_thumb.png is
// written alongside.
func (r *Recorder) Capture(img image.Image) (string, error) {
	if err := os.MkdirAll(r.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create capture dir: %w", err)
	}

	r.seq++
	path := filepath.Join(r.Dir, fmt.Sprintf("frame_%04d.png", r.seq))
	if err := writePNG(path, img); err != nil {
		return "", err
	}

	if r.ThumbWidth > 0 {
		thumb := resize.Resize(r.ThumbWidth, 0, img, resize.Lanczos3)
		thumbPath := filepath.Join(r.Dir, fmt.Sprintf("frame_%04d_thumb.png", r.seq))
		if err := writePNG(thumbPath, thumb); err != nil {
			return "", err
		}
	}

	return path, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
