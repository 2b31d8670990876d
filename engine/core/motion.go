package core

import (
	"math"
	"sync/atomic"
)

// mouseDelta accumulates relative motion between drains. The two axes are
// independent atomics; a racing add lands in either the current drain or
// the next one, never both.
type mouseDelta struct {
	dx, dy atomic.Int32
}

func (m *mouseDelta) add(x, y int32) {
	m.dx.Add(x)
	m.dy.Add(y)
}

func (m *mouseDelta) drain() (int32, int32) {
	return m.dx.Swap(0), m.dy.Swap(0)
}

// MotionTracker turns absolute cursor samples into integer relative
// motion. Deltas are taken between floored positions so sub-pixel
// movement is never lost across samples.
type MotionTracker struct {
	lastX, lastY int64
	seen         bool
}

// Track records an absolute cursor position and returns the displacement
// from the previous one. The first sample (and the one after Reset)
// yields zero.
func (t *MotionTracker) Track(x, y float64) (xrel, yrel int32) {
	fx, fy := int64(math.Floor(x)), int64(math.Floor(y))
	if t.seen {
		xrel, yrel = clampInt32(fx-t.lastX), clampInt32(fy-t.lastY)
	}
	t.lastX, t.lastY, t.seen = fx, fy, true
	return xrel, yrel
}

// Reset forgets the previous sample, e.g. after the cursor was warped.
func (t *MotionTracker) Reset() { t.seen = false }

func clampInt32(v int64) int32 {
	switch {
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < math.MinInt32:
		return math.MinInt32
	}
	return int32(v)
}
