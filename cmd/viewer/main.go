package main

import (
	"context"
	"fmt"
	"image"
	"log"
	"path/filepath"
	"time"

	"github.com/NPatch/ComputerGraphicsFromScratch/engine/capture"
	"github.com/NPatch/ComputerGraphicsFromScratch/engine/frame"
	"github.com/NPatch/ComputerGraphicsFromScratch/engine/notify"
	"github.com/NPatch/ComputerGraphicsFromScratch/engine/raytrace"
	"github.com/fogleman/fauxgl"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	CanvasWidth  = 800
	CanvasHeight = 800
	CaptureDir   = "captures"
)

// Game implements ebiten.Game: it re-renders the fixed scene into a
// CPU buffer every frame and uploads it to the screen texture.
type Game struct {
	renderer *raytrace.Renderer
	buf      *frame.Buffer
	tex      *ebiten.Image
	notifs   *notify.Queue
	recorder *capture.Recorder
	uploader *capture.Uploader

	renderTime    time.Duration
	whiteBackdrop bool
	showWatermark bool
}

func NewGame() *Game {
	uploader, err := capture.NewUploaderFromEnv()
	if err != nil {
		log.Printf("capture upload disabled: %v", err)
	}

	return &Game{
		renderer:      raytrace.NewRenderer(raytrace.DemoScene(), CanvasWidth, CanvasHeight),
		buf:           frame.New(CanvasWidth, CanvasHeight),
		tex:           ebiten.NewImage(CanvasWidth, CanvasHeight),
		notifs:        notify.NewQueue(),
		recorder:      capture.NewRecorder(CaptureDir),
		uploader:      uploader,
		showWatermark: true,
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.captureFrame()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.toggleBackdrop()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		g.showWatermark = !g.showWatermark
	}

	// Full raster scan from scratch every frame, same as the reference
	// loop. The HUD shows the cost.
	start := time.Now()
	g.renderer.DrawScene(g.buf)
	g.renderTime = time.Since(start)

	return nil
}

func (g *Game) captureFrame() {
	path, err := g.recorder.Capture(g.buf.Image())
	if err != nil {
		log.Printf("capture failed: %v", err)
		g.notifs.Push("capture failed")
		return
	}
	g.notifs.Push("captured " + filepath.Base(path))

	if g.uploader != nil {
		// Snapshot the pixels: the live buffer is rewritten next frame
		// while the upload goroutine is still reading.
		live := g.buf.Image()
		img := image.NewNRGBA(live.Rect)
		copy(img.Pix, live.Pix)

		key := filepath.Base(path)
		go func() {
			if err := g.uploader.Upload(context.Background(), key, img); err != nil {
				log.Printf("capture upload: %v", err)
			}
		}()
	}
}

func (g *Game) toggleBackdrop() {
	g.whiteBackdrop = !g.whiteBackdrop
	if g.whiteBackdrop {
		g.renderer.Scene.Background = fauxgl.White
		g.notifs.Push("background: white")
	} else {
		g.renderer.Scene.Background = fauxgl.Black
		g.notifs.Push("background: black")
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.tex.WritePixels(g.buf.Pix())
	screen.DrawImage(g.tex, nil)

	if g.showWatermark {
		ebitenutil.DebugPrintAt(screen, "CGFS raytracer", CanvasWidth-110, CanvasHeight-20)
	}
	g.notifs.Draw(screen)

	hud := fmt.Sprintf("FPS: %.0f | render: %s | [F12] capture [B] background [W] watermark",
		ebiten.ActualFPS(), g.renderTime.Round(time.Millisecond))
	ebitenutil.DebugPrintAt(screen, hud, 0, 40)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return CanvasWidth, CanvasHeight
}

func main() {
	ebiten.SetWindowSize(CanvasWidth, CanvasHeight)
	ebiten.SetWindowTitle("Computer Graphics from Scratch")
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
