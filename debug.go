package raytracer

import "raytracer/math/lin"

// DebugTrace receives a detailed account of how one pixel's color was
// produced: every ray cast while shading it, tagged with what that ray
// was for. A renderer configured without a DebugTrace sink pays none of
// this bookkeeping's cost.
//
// This replaces a process-wide "debug this pixel" flag with an opt-in
// sink scoped to whichever pixels the caller actually wants traced,
// since a global flag cannot be consulted safely from concurrent tile
// workers without becoming a point of contention.
type DebugTrace interface {
	// TraceRay records one ray cast during shading: its origin,
	// direction, the kind of ray it was ("camera", "shadow",
	// "reflection"), and whether it hit anything.
	TraceRay(x, y int, origin, direction lin.Vec3, kind string, hit bool)
}

// noTrace is the zero-cost DebugTrace used when a caller supplies none.
type noTrace struct{}

func (noTrace) TraceRay(x, y int, origin, direction lin.Vec3, kind string, hit bool) {}

// PixelFilter reports whether TraceRay calls for pixel (x,y) should be
// recorded, letting a caller scope an expensive DebugTrace sink down to
// a handful of pixels instead of the whole image.
type PixelFilter func(x, y int) bool

// filteredTrace wraps a DebugTrace so only pixels accepted by filter are
// forwarded to it.
type filteredTrace struct {
	sink   DebugTrace
	filter PixelFilter
}

// WithPixelFilter scopes sink to only the pixels filter accepts.
func WithPixelFilter(sink DebugTrace, filter PixelFilter) DebugTrace {
	return filteredTrace{sink: sink, filter: filter}
}

func (f filteredTrace) TraceRay(x, y int, origin, direction lin.Vec3, kind string, hit bool) {
	if f.filter(x, y) {
		f.sink.TraceRay(x, y, origin, direction, kind, hit)
	}
}
