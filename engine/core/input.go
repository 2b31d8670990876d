package core

import (
	"math"
	"slices"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v3"
)

// Input is the shared input state. The platform event callback feeds it
// through Handle; per-frame code reads it through the query methods. All
// methods are safe for concurrent use and never block on anything but
// short per-bucket locks.
type Input struct {
	clock Clock

	keys     *xsync.MapOf[Key, bool]
	cooldown *xsync.MapOf[Key, float64]
	motion   mouseDelta

	cursorX, cursorY atomic.Uint64 // math.Float64bits

	stats inputCounters
}

// NewInput creates an empty store. Cooldowns are measured with clock.
func NewInput(clock Clock) *Input {
	if clock == nil {
		clock = NewClock()
	}
	return &Input{
		clock:    clock,
		keys:     xsync.NewMapOf[Key, bool](),
		cooldown: xsync.NewMapOf[Key, float64](),
	}
}

// Handle applies one platform event. Events for the same key must be
// delivered in arrival order; only one goroutine should call Handle.
func (in *Input) Handle(ev Event) {
	in.stats.events.Add(1)
	switch e := ev.(type) {
	case EventMouseMove:
		in.motion.add(e.XRel, -e.YRel)
		in.cursorX.Store(math.Float64bits(e.X))
		in.cursorY.Store(math.Float64bits(e.Y))
		in.stats.motion.Add(1)
	case EventKey:
		if e.Key == KeyUnknown {
			in.stats.dropped.Add(1)
			return
		}
		in.keys.Store(e.Key, e.Down)
	}
}

// Key returns the last observed state of k, or def if k was never seen.
func (in *Input) Key(k Key, def bool) bool {
	if down, ok := in.keys.Load(k); ok {
		return down
	}
	return def
}

func (in *Input) IsKeyDown(k Key) bool { return in.Key(k, false) }

// FetchMotion drains the accumulated mouse displacement. dy is positive
// when the mouse moved up.
func (in *Input) FetchMotion() (dx, dy int32) {
	in.stats.drains.Add(1)
	return in.motion.drain()
}

// Mouse returns the last absolute cursor position.
func (in *Input) Mouse() (float64, float64) {
	return math.Float64frombits(in.cursorX.Load()), math.Float64frombits(in.cursorY.Load())
}

// PressedKeys returns the keys currently held, sorted.
func (in *Input) PressedKeys() []Key {
	var out []Key
	in.keys.Range(func(k Key, down bool) bool {
		if down {
			out = append(out, k)
		}
		return true
	})
	slices.Sort(out)
	return out
}

// InputStats is a snapshot of the ingestion counters.
type InputStats struct {
	Events      uint64 // every event passed to Handle
	Motion      uint64 // motion events
	Dropped     uint64 // key events without a resolvable key
	Drains      uint64 // FetchMotion calls
	Triggers    uint64 // KeyWithCooldown calls that fired
	KnownKeys   int    // keys with a state entry
	CooldownLen int    // keys with a cooldown entry
}

type inputCounters struct {
	events, motion, dropped, drains, triggers atomic.Uint64
}

func (in *Input) Stats() InputStats {
	return InputStats{
		Events:      in.stats.events.Load(),
		Motion:      in.stats.motion.Load(),
		Dropped:     in.stats.dropped.Load(),
		Drains:      in.stats.drains.Load(),
		Triggers:    in.stats.triggers.Load(),
		KnownKeys:   in.keys.Size(),
		CooldownLen: in.cooldown.Size(),
	}
}
