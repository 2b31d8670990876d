package core

import (
	"slices"
	"sync"
	"testing"
)

func keyEv(k Key, down bool) Event { return EventKey{Key: k, Down: down} }

func TestInputUnseenKeyReturnsDefault(t *testing.T) {
	in := NewInput(ClockFunc(func() float64 { return 0 }))
	for i := 0; i < 3; i++ {
		if got := in.Key(KeyQ, true); !got {
			t.Fatalf("call %d: Key(q, true) = false", i)
		}
		if got := in.Key(KeyQ, false); got {
			t.Fatalf("call %d: Key(q, false) = true", i)
		}
	}
	if n := in.Stats().KnownKeys; n != 0 {
		t.Fatalf("queries created %d key entries", n)
	}
}

func TestInputLastWriteWins(t *testing.T) {
	tests := []struct {
		name string
		evs  []Event
		def  bool
		want bool
	}{
		{"down up down", []Event{keyEv(KeyK, true), keyEv(KeyK, false), keyEv(KeyK, true)}, false, true},
		{"down up", []Event{keyEv(KeyK, true), keyEv(KeyK, false)}, true, false},
		{"single up overrides default", []Event{keyEv(KeyK, false)}, true, false},
		{"other key only", []Event{keyEv(KeyJ, true)}, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := NewInput(nil)
			for _, ev := range tt.evs {
				in.Handle(ev)
			}
			if got := in.Key(KeyK, tt.def); got != tt.want {
				t.Fatalf("Key(k, %t) = %t, want %t", tt.def, got, tt.want)
			}
		})
	}
}

func TestInputIgnoresUnknownKeyAndOtherEvents(t *testing.T) {
	in := NewInput(nil)
	in.Handle(EventKey{Key: KeyUnknown, Down: true})
	in.Handle(EventResize{W: 10, H: 10})
	in.Handle(EventScroll{Yoff: 1})
	in.Handle(EventCloseRequested{})

	st := in.Stats()
	if st.KnownKeys != 0 {
		t.Fatalf("KnownKeys = %d, want 0", st.KnownKeys)
	}
	if st.Dropped != 1 {
		t.Fatalf("Dropped = %d, want 1", st.Dropped)
	}
	if st.Events != 4 {
		t.Fatalf("Events = %d, want 4", st.Events)
	}
	if dx, dy := in.FetchMotion(); dx != 0 || dy != 0 {
		t.Fatalf("FetchMotion = (%d, %d), want (0, 0)", dx, dy)
	}
}

func TestInputPressedKeys(t *testing.T) {
	in := NewInput(nil)
	in.Handle(keyEv(KeyW, true))
	in.Handle(keyEv(KeyA, true))
	in.Handle(keyEv(KeySpace, true))
	in.Handle(keyEv(KeySpace, false))

	want := []Key{KeyA, KeyW}
	if got := in.PressedKeys(); !slices.Equal(got, want) {
		t.Fatalf("PressedKeys = %v, want %v", got, want)
	}
}

func TestInputMouseTracksCursor(t *testing.T) {
	in := NewInput(nil)
	in.Handle(EventMouseMove{X: 12.5, Y: 40, XRel: 1, YRel: 1})
	in.Handle(EventMouseMove{X: 14, Y: 38.25, XRel: 2, YRel: -2})
	if x, y := in.Mouse(); x != 14 || y != 38.25 {
		t.Fatalf("Mouse = (%v, %v), want (14, 38.25)", x, y)
	}
}

func TestInputConcurrentKeysAndQueries(t *testing.T) {
	in := NewInput(nil)
	keys := []Key{KeyW, KeyA, KeyS, KeyD}

	var wg sync.WaitGroup
	stop := make(chan struct{})
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				for _, k := range keys {
					_ = in.Key(k, false)
					_ = in.KeyWithCooldown(k, false, 0.1)
				}
				_ = in.PressedKeys()
			}
		}()
	}

	// single producer, per-key order preserved
	for i := 0; i < 5000; i++ {
		k := keys[i%len(keys)]
		in.Handle(keyEv(k, i%2 == 0))
	}
	for _, k := range keys {
		in.Handle(keyEv(k, true))
	}
	close(stop)
	wg.Wait()

	for _, k := range keys {
		if !in.IsKeyDown(k) {
			t.Fatalf("%v should be down after final press", k)
		}
	}
}
