// Command render_png renders the demo scene straight to a PNG
// without opening a window. Handy for golden-image comparisons.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/NPatch/ComputerGraphicsFromScratch/engine/capture"
	"github.com/NPatch/ComputerGraphicsFromScratch/engine/frame"
	"github.com/NPatch/ComputerGraphicsFromScratch/engine/raytrace"
	"github.com/fogleman/fauxgl"
)

func main() {
	var (
		width     = flag.Int("width", 800, "canvas width in pixels (should be even)")
		height    = flag.Int("height", 800, "canvas height in pixels (should be even)")
		out       = flag.String("out", "out", "output directory")
		thumb     = flag.Uint("thumb", 0, "thumbnail width, 0 to disable")
		whiteBack = flag.Bool("white", false, "white background instead of black")
	)
	flag.Parse()

	scene := raytrace.DemoScene()
	if *whiteBack {
		scene.Background = fauxgl.White
	}

	buf := frame.New(*width, *height)
	renderer := raytrace.NewRenderer(scene, *width, *height)

	start := time.Now()
	renderer.DrawScene(buf)
	log.Printf("rendered %dx%d in %s", *width, *height, time.Since(start).Round(time.Millisecond))

	rec := capture.NewRecorder(*out)
	rec.ThumbWidth = *thumb
	path, err := rec.Capture(buf.Image())
	if err != nil {
		log.Fatalf("write capture: %v", err)
	}
	log.Printf("wrote %s", path)
}
