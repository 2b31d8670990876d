package core

import (
	"runtime"
	"time"

	"github.com/kataras/golog"
)

var logger = golog.Child("[core]")

// Run wires the platform window + renderer and executes the main loop.
// The window's event callback is the only producer for Engine.Input.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return err
	}
	defer win.Destroy()

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return err
	}
	defer rend.Shutdown()

	w, h := win.FramebufferSize()
	rend.Resize(w, h)

	clock := NewClock()
	eng := &Engine{Window: win, Renderer: rend, Input: NewInput(clock), Clock: clock}
	win.SetEventCallback(eng.dispatch(app))
	if cfg.CaptureCursor {
		win.SetCursorCaptured(true)
	}

	logger.Infof("engine start %dx%d vsync=%t", w, h, cfg.VSync)
	app.OnStart(eng)

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	maxStep := cfg.MaxUpdateSteps // prevent spiral of death
	if maxStep <= 0 {
		maxStep = 10
	}

	// Fixed-timestep with interpolation
	tick := time.Second / time.Duration(tickRate)
	var (
		accum time.Duration
		prev  = time.Now()
		clear = cfg.ClearColor
	)

	for !win.ShouldClose() {
		now := time.Now()
		frame := now.Sub(prev)
		prev = now
		accum += frame

		// Poll OS events (platform will emit via callbacks)
		win.PollEvents()

		steps := 0
		for accum >= tick && steps < maxStep {
			dt := float64(tick) / float64(time.Second)
			eng.Layers.ForEach(func(l Layer) { l.OnUpdate(eng, dt) })
			app.OnUpdate(eng, dt)
			accum -= tick
			steps++
		}
		if steps == maxStep && accum >= tick {
			logger.Debugf("dropping %s of update backlog", accum)
			accum = 0
		}
		alpha := float64(accum) / float64(tick)

		rend.Clear(clear[0], clear[1], clear[2], clear[3])
		eng.Layers.ForEach(func(l Layer) { l.OnRender(eng, alpha) })
		app.OnRender(eng, alpha)

		win.SwapBuffers()
	}

	app.OnShutdown(eng)
	eng.Layers.Clear(eng)
	logger.Infof("engine exit after %.1fs", eng.Uptime())
	return nil
}

// dispatch builds the window event callback: Input first, then layers
// top-down, then the app.
func (e *Engine) dispatch(app App) func(Event) {
	return func(ev Event) {
		e.Input.Handle(ev)
		switch v := ev.(type) {
		case EventCloseRequested:
			e.Window.RequestClose()
		case EventResize:
			fw, fh := e.Window.FramebufferSize()
			if fw >= 1 && fh >= 1 {
				e.Renderer.Resize(fw, fh)
			} else {
				logger.Debugf("ignoring degenerate resize %dx%d", v.W, v.H)
			}
		}
		handled := false
		e.Layers.ForEachReverse(func(l Layer) bool {
			handled = l.OnEvent(e, ev)
			return handled
		})
		if !handled {
			app.OnEvent(e, ev)
		}
	}
}

// PushLayer attaches l and pushes it below the overlays.
func (e *Engine) PushLayer(l Layer) {
	e.Layers.Push(l)
	l.OnAttach(e)
}

// PushOverlay attaches l and pushes it on top.
func (e *Engine) PushOverlay(l Layer) {
	e.Layers.PushOverlay(l)
	l.OnAttach(e)
}
