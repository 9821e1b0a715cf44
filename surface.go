package dominoes

import "errors"

// Surface is a 2D drawing sink bound to a rendering context. It follows the
// canvas path model: Rect appends a rectangle subpath and Stroke outlines
// every subpath added so far.
type Surface interface {
	Rect(x, y, width, height float64) error
	Stroke() error
}

var (
	// ErrNoSurface is returned by New when no drawing surface is supplied.
	ErrNoSurface = errors.New("no drawing surface")
	// ErrNoEventSource is returned by New when no input source is supplied.
	ErrNoEventSource = errors.New("no pointer event source")
	// ErrSurfaceUnavailable is returned by platform constructors when the
	// environment cannot resolve a surface or its 2D context.
	ErrSurfaceUnavailable = errors.New("drawing surface unavailable")
	// ErrNoTarget is returned by ImageSurface when drawing before a frame
	// target has been bound with BeginFrame.
	ErrNoTarget = errors.New("surface has no frame target")
)
