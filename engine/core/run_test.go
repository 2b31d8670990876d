package core

import (
	"errors"
	"slices"
	"testing"
)

// scriptWindow replays one batch of events per PollEvents call and asks to
// close once the script runs out.
type scriptWindow struct {
	frames   [][]Event
	cb       func(Event)
	closed   bool
	captured bool
	swaps    int
	w, h     int
}

func (w *scriptWindow) PollEvents() {
	if len(w.frames) == 0 {
		w.closed = true
		return
	}
	batch := w.frames[0]
	w.frames = w.frames[1:]
	for _, ev := range batch {
		w.cb(ev)
	}
	if len(w.frames) == 0 {
		w.closed = true
	}
}
func (w *scriptWindow) SwapBuffers()                    { w.swaps++ }
func (w *scriptWindow) ShouldClose() bool               { return w.closed }
func (w *scriptWindow) RequestClose()                   { w.closed = true }
func (w *scriptWindow) FramebufferSize() (int, int)     { return w.w, w.h }
func (w *scriptWindow) SetTitle(string)                 {}
func (w *scriptWindow) SetCursorCaptured(c bool)        { w.captured = c }
func (w *scriptWindow) SetEventCallback(cb func(Event)) { w.cb = cb }
func (w *scriptWindow) Destroy()                        {}

type nullRenderer struct {
	resizes  [][2]int
	shutdown bool
}

func (r *nullRenderer) Resize(w, h int)             { r.resizes = append(r.resizes, [2]int{w, h}) }
func (r *nullRenderer) Clear(_, _, _, _ float32)    {}
func (r *nullRenderer) DrawTriangle(TriangleParams) {}
func (r *nullRenderer) GPUVendor() string           { return "test" }
func (r *nullRenderer) GPURenderer() string         { return "test" }
func (r *nullRenderer) GPUVersion() string          { return "test" }
func (r *nullRenderer) Shutdown()                   { r.shutdown = true }

type recordingApp struct {
	started, stopped bool
	events           []Event
	downAtEvent      []bool
	motion           [2]int32
}

func (a *recordingApp) OnStart(e *Engine)             { a.started = true }
func (a *recordingApp) OnUpdate(e *Engine, _ float64) {}
func (a *recordingApp) OnRender(e *Engine, _ float64) {
	dx, dy := e.Input.FetchMotion()
	a.motion[0] += dx
	a.motion[1] += dy
}
func (a *recordingApp) OnEvent(e *Engine, ev Event) {
	a.events = append(a.events, ev)
	a.downAtEvent = append(a.downAtEvent, e.Input.IsKeyDown(KeyW))
}
func (a *recordingApp) OnShutdown(e *Engine) { a.stopped = true }

func TestRunFeedsInputBeforeApp(t *testing.T) {
	win := &scriptWindow{w: 640, h: 480, frames: [][]Event{
		{EventKey{Key: KeyW, Down: true}, EventMouseMove{XRel: 2, YRel: 3}},
		{EventMouseMove{XRel: 1, YRel: -1}, EventResize{W: 800, H: 600}},
		{EventKey{Key: KeyUnknown, Down: true}},
	}}
	rend := &nullRenderer{}
	app := &recordingApp{}

	err := Run(app, Config{CaptureCursor: true},
		func(Config) (Window, error) { return win, nil },
		func(Window, Config) (Renderer, error) { return rend, nil })
	if err != nil {
		t.Fatal(err)
	}

	if !app.started || !app.stopped {
		t.Fatalf("started=%t stopped=%t", app.started, app.stopped)
	}
	if !rend.shutdown {
		t.Fatal("renderer not shut down")
	}
	if !win.captured {
		t.Fatal("cursor capture not applied")
	}
	if len(app.events) != 5 {
		t.Fatalf("app saw %d events, want 5", len(app.events))
	}
	if !app.downAtEvent[0] {
		t.Fatal("Input did not see the key before the app")
	}
	if app.motion != [2]int32{3, -2} {
		t.Fatalf("drained motion = %v, want [3 -2]", app.motion)
	}
	if len(rend.resizes) != 2 {
		t.Fatalf("resizes = %v, want initial + event", rend.resizes)
	}
	if win.swaps != 3 {
		t.Fatalf("swaps = %d, want 3", win.swaps)
	}
}

func TestRunCloseRequestedStopsLoop(t *testing.T) {
	win := &scriptWindow{w: 1, h: 1, frames: [][]Event{
		{EventCloseRequested{}},
		{EventKey{Key: KeyA, Down: true}},
	}}
	app := &recordingApp{}
	err := Run(app, Config{},
		func(Config) (Window, error) { return win, nil },
		func(Window, Config) (Renderer, error) { return &nullRenderer{}, nil })
	if err != nil {
		t.Fatal(err)
	}
	if len(win.frames) != 1 {
		t.Fatalf("loop kept polling after close: %d batches left", len(win.frames))
	}
}

func TestRunLayersSeeEventsFirst(t *testing.T) {
	var log []string
	win := &scriptWindow{w: 1, h: 1, frames: [][]Event{{EventKey{Key: KeyP, Down: true}}}}
	app := &layeredApp{log: &log}
	err := Run(app, Config{},
		func(Config) (Window, error) { return win, nil },
		func(Window, Config) (Renderer, error) { return &nullRenderer{}, nil })
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"attach:overlay", "attach:base", "event:overlay", "event:base", "app", "detach:overlay", "detach:base"}
	if !slices.Equal(log, want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
}

type layeredApp struct {
	recordingApp
	log *[]string
}

func (a *layeredApp) OnStart(e *Engine) {
	e.PushOverlay(&recLayer{name: "overlay", log: a.log})
	e.PushLayer(&recLayer{name: "base", log: a.log})
}
func (a *layeredApp) OnEvent(*Engine, Event) { *a.log = append(*a.log, "app") }

func TestRunPropagatesFactoryErrors(t *testing.T) {
	boom := errors.New("boom")
	err := Run(&recordingApp{}, Config{},
		func(Config) (Window, error) { return nil, boom },
		func(Window, Config) (Renderer, error) { return &nullRenderer{}, nil })
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}

	win := &scriptWindow{}
	err = Run(&recordingApp{}, Config{},
		func(Config) (Window, error) { return win, nil },
		func(Window, Config) (Renderer, error) { return nil, boom })
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
}
