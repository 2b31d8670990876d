// Package demo is the sandbox application: a triangle steered by the
// shared input state plus a debug overlay.
package demo

import (
	"sync/atomic"

	"github.com/kataras/golog"

	"github.com/hubastard/groveinput/engine/config"
	"github.com/hubastard/groveinput/engine/core"
)

var logger = golog.Child("[sandbox]")

// App implements core.App.
type App struct {
	controls atomic.Pointer[Controls]
	capture  bool

	Triangle *TriangleLayer
	Debug    *DebugLayer
}

func NewApp(cfg *config.File) (*App, error) {
	a := &App{capture: cfg.Window.CaptureCursor}
	if err := a.Apply(cfg); err != nil {
		return nil, err
	}
	return a, nil
}

// Apply swaps in the bindings of cfg. It is safe to call from the config
// watcher goroutine while the frame loop runs.
func (a *App) Apply(cfg *config.File) error {
	c, err := NewControls(cfg)
	if err != nil {
		return err
	}
	a.controls.Store(c)
	return nil
}

func (a *App) Controls() *Controls { return a.controls.Load() }

func (a *App) OnStart(e *core.Engine) {
	a.Triangle = NewTriangleLayer(a.Controls, a.capture)
	a.Debug = NewDebugLayer(a.Controls, 1)
	e.PushLayer(a.Triangle)
	e.PushOverlay(a.Debug)
}

func (a *App) OnUpdate(e *core.Engine, dt float64)    {}
func (a *App) OnRender(e *core.Engine, alpha float64) {}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {
	if v, ok := ev.(core.EventResize); ok {
		logger.Debugf("resize %dx%d", v.W, v.H)
	}
}

func (a *App) OnShutdown(e *core.Engine) {
	logger.Info(Report(e.Input))
}
