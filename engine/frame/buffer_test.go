package frame

import (
	"image/color"
	"testing"

	"github.com/fogleman/fauxgl"
)

func TestBuffer_SetPixelAndAt(t *testing.T) {
	b := New(4, 3)

	b.SetPixel(2, 1, fauxgl.Color{R: 1, G: 0.5, B: 0, A: 1})
	got := b.At(2, 1)
	if got.R != 255 || got.B != 0 || got.A != 255 {
		t.Errorf("At(2,1) = %v, want opaque full red", got)
	}
	// Mid-gray lands on 127 or 128 depending on conversion rounding.
	if got.G != 127 && got.G != 128 {
		t.Errorf("G channel = %d, want ~127", got.G)
	}

	if b.At(0, 0) != (color.NRGBA{}) {
		t.Errorf("untouched pixel should be zero, got %v", b.At(0, 0))
	}
}

func TestBuffer_OutOfRangeIgnored(t *testing.T) {
	b := New(2, 2)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {100, 100}} {
		b.SetPixel(p[0], p[1], fauxgl.White)
	}
	for i, v := range b.Pix() {
		if v != 0 {
			t.Fatalf("out-of-range write leaked into byte %d", i)
		}
	}
	if b.At(5, 5) != (color.NRGBA{}) {
		t.Errorf("out-of-range read should be zero")
	}
}

func TestBuffer_ChannelsClamped(t *testing.T) {
	b := New(1, 1)
	b.SetPixel(0, 0, fauxgl.Color{R: 2.5, G: -1, B: 0.25, A: 1})
	got := b.At(0, 0)
	if got.R != 255 || got.G != 0 {
		t.Errorf("channels not clamped: %v", got)
	}
}

func TestBuffer_FillAndImage(t *testing.T) {
	b := New(3, 2)
	b.Fill(fauxgl.Color{R: 0, G: 0, B: 1, A: 1})

	img := b.Image()
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("image bounds %v", img.Bounds())
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if c := img.NRGBAAt(x, y); c != (color.NRGBA{B: 255, A: 255}) {
				t.Fatalf("pixel (%d,%d) = %v after Fill", x, y, c)
			}
		}
	}

	// Image must share the backing bytes, not copy them.
	b.SetPixel(0, 0, fauxgl.Color{R: 1, A: 1})
	if c := img.NRGBAAt(0, 0); c.R != 255 {
		t.Errorf("Image view did not observe SetPixel, got %v", c)
	}
}
