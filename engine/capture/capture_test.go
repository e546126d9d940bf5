package capture

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func testImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), A: 255})
		}
	}
	return img
}

func decodePNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return img
}

func TestRecorder_CaptureNumbersFrames(t *testing.T) {
	dir := t.TempDir()
	r := NewRecorder(filepath.Join(dir, "shots"))
	r.ThumbWidth = 0

	first, err := r.Capture(testImage(16, 16))
	if err != nil {
		t.Fatalf("first capture: %v", err)
	}
	second, err := r.Capture(testImage(16, 16))
	if err != nil {
		t.Fatalf("second capture: %v", err)
	}

	if filepath.Base(first) != "frame_0001.png" || filepath.Base(second) != "frame_0002.png" {
		t.Errorf("unexpected capture names: %q, %q", first, second)
	}
	if got := decodePNG(t, first).Bounds(); got.Dx() != 16 || got.Dy() != 16 {
		t.Errorf("capture bounds %v, want 16x16", got)
	}
}

func TestRecorder_WritesThumbnail(t *testing.T) {
	dir := t.TempDir()
	r := NewRecorder(dir)
	r.ThumbWidth = 8

	path, err := r.Capture(testImage(32, 16))
	if err != nil {
		t.Fatalf("capture: %v", err)
	}

	thumbPath := filepath.Join(dir, "frame_0001_thumb.png")
	thumb := decodePNG(t, thumbPath)
	// Width pinned, height follows aspect ratio.
	if b := thumb.Bounds(); b.Dx() != 8 || b.Dy() != 4 {
		t.Errorf("thumbnail bounds %v, want 8x4", b)
	}
	if filepath.Base(path) != "frame_0001.png" {
		t.Errorf("full capture name %q", path)
	}
}
