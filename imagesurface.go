package dominoes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ImageSurface is a Surface that draws onto an ebiten image. Rectangles added
// with Rect accumulate in the current path until BeginFrame starts a new one;
// Stroke outlines the whole path, as a canvas context does.
type ImageSurface struct {
	// StrokeColor is the outline color. Defaults to ColorBlack.
	StrokeColor Color
	// LineWidth is the outline width in pixels. Defaults to 1.
	LineWidth float32
	// AntiAlias enables antialiased outlines.
	AntiAlias bool

	target *ebiten.Image
	path   []Rect
}

// NewImageSurface creates a surface with canvas-like defaults. target may be
// nil and bound later with BeginFrame.
func NewImageSurface(target *ebiten.Image) *ImageSurface {
	return &ImageSurface{
		StrokeColor: ColorBlack,
		LineWidth:   1,
		AntiAlias:   true,
		target:      target,
	}
}

// BeginFrame binds the image drawn by subsequent strokes and clears the
// current path.
func (s *ImageSurface) BeginFrame(target *ebiten.Image) {
	s.target = target
	s.path = s.path[:0]
}

// Rect appends a rectangle to the current path.
func (s *ImageSurface) Rect(x, y, width, height float64) error {
	if s.target == nil {
		return ErrNoTarget
	}
	s.path = append(s.path, Rect{X: x, Y: y, Width: width, Height: height})
	return nil
}

// Stroke outlines every rectangle in the current path. The path is kept, so
// a later Stroke draws the earlier rectangles again.
func (s *ImageSurface) Stroke() error {
	if s.target == nil {
		return ErrNoTarget
	}
	clr := s.StrokeColor.toRGBA()
	for _, r := range s.path {
		vector.StrokeRect(s.target,
			float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height),
			s.LineWidth, clr, s.AntiAlias)
	}
	return nil
}

// PathLen returns the number of rectangles in the current path.
func (s *ImageSurface) PathLen() int {
	return len(s.path)
}

// toRGBA converts a Color to a premultiplied color.Color.
func (c Color) toRGBA() colorRGBA {
	return colorRGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// colorRGBA implements the color.Color interface for ebiten calls.
type colorRGBA struct {
	R, G, B, A uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
