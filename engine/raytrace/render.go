package raytrace

import (
	"math"

	"github.com/fogleman/fauxgl"
)

// CanvasPoint is an integer pixel coordinate centered at the image
// midpoint, Y-up.
type CanvasPoint struct {
	X, Y int
}

// ScreenPoint is an integer pixel coordinate with a top-left origin,
// Y-down, matching the buffer's row-major layout.
type ScreenPoint struct {
	X, Y int
}

// PixelWriter is the externally owned destination buffer. The
// renderer holds it exclusively for the duration of one DrawScene
// call and writes each screen coordinate exactly once.
type PixelWriter interface {
	SetPixel(x, y int, c fauxgl.Color)
}

// Renderer drives a full raster scan of the fixed scene. It keeps no
// state between DrawScene calls.
type Renderer struct {
	Scene   *Scene
	CanvasW int
	CanvasH int
}

// NewRenderer creates a renderer for the scene at the given canvas
// resolution. Dimensions should be even so the centered canvas range
// maps onto the screen grid without remainder.
func NewRenderer(scene *Scene, canvasW, canvasH int) *Renderer {
	return &Renderer{Scene: scene, CanvasW: canvasW, CanvasH: canvasH}
}

// CanvasToScreen remaps a centered Y-up canvas coordinate to top-left
// Y-down screen space. The valid canvas range is the exact preimage
// of the w x h screen grid: X in [-w/2, w/2), Y in (-h/2, h/2].
func (r *Renderer) CanvasToScreen(p CanvasPoint) ScreenPoint {
	return ScreenPoint{
		X: r.CanvasW/2 + p.X,
		Y: r.CanvasH/2 - p.Y,
	}
}

// ScreenToCanvas is the exact inverse of CanvasToScreen.
func (r *Renderer) ScreenToCanvas(p ScreenPoint) CanvasPoint {
	return CanvasPoint{
		X: p.X - r.CanvasW/2,
		Y: r.CanvasH/2 - p.Y,
	}
}

// CanvasToViewport projects a canvas pixel onto the viewport
// rectangle: a pure linear scale from pixel units to physical units,
// at the camera's projection distance forward along +Z. The result is
// camera-local, i.e. already viewportPoint - cameraOrigin, which is
// exactly the ray direction for that pixel.
func (r *Renderer) CanvasToViewport(p CanvasPoint) fauxgl.Vector {
	cam := r.Scene.Camera
	return fauxgl.V(
		float64(p.X)*(cam.ViewportW/float64(r.CanvasW)),
		float64(p.Y)*(cam.ViewportH/float64(r.CanvasH)),
		cam.ProjectionDist,
	)
}

// DrawScene traces one ray per canvas pixel and writes the resulting
// color through buf. Every coordinate in the canvas range is visited
// exactly once; tMin = 1 starts rays at the viewport plane. Pixel
// results are independent, so this loop is trivially parallelizable,
// but a single thread is plenty at these scene sizes.
func (r *Renderer) DrawScene(buf PixelWriter) {
	origin := r.Scene.Camera.Origin
	tMax := math.Inf(1)

	for y := -r.CanvasH/2 + 1; y <= r.CanvasH/2; y++ {
		for x := -r.CanvasW / 2; x < r.CanvasW/2; x++ {
			cp := CanvasPoint{x, y}
			ray := Ray{Origin: origin, Direction: r.CanvasToViewport(cp)}

			col := r.Scene.TraceRay(ray, 1.0, tMax)

			sp := r.CanvasToScreen(cp)
			buf.SetPixel(sp.X, sp.Y, col)
		}
	}
}
