package demo

import (
	"github.com/hubastard/groveinput/engine/colors"
	"github.com/hubastard/groveinput/engine/core"
)

const (
	moveSpeed  = 1.0  // clip units per second
	colorStep  = 0.05 // per trigger
	scaleStep  = 1.1
	minScale   = 0.1
	maxScale   = 4.0
	worldLimit = 1.0
)

// TriangleLayer moves, rotates and tints the demo triangle from input
// state: held keys move it every tick, mouse motion is drained once per
// tick, and debounced bindings step discrete settings.
type TriangleLayer struct {
	controls func() *Controls

	x, y     float32
	rotation float32
	scale    float32
	tint     colors.Color
	tintIdx  int
	captured bool
}

func NewTriangleLayer(controls func() *Controls, captured bool) *TriangleLayer {
	return &TriangleLayer{controls: controls, captured: captured}
}

func (l *TriangleLayer) OnAttach(e *core.Engine) {
	l.scale = 1
	l.tint = colors.Tints[0]
}

func (l *TriangleLayer) OnDetach(e *core.Engine) {}

func (l *TriangleLayer) OnUpdate(e *core.Engine, dt float64) {
	in := e.Input
	ctl := l.controls()

	step := float32(moveSpeed * dt)
	if in.IsKeyDown(core.KeyW) || in.IsKeyDown(core.KeyUp) {
		l.y += step
	}
	if in.IsKeyDown(core.KeyS) || in.IsKeyDown(core.KeyDown) {
		l.y -= step
	}
	if in.IsKeyDown(core.KeyA) || in.IsKeyDown(core.KeyLeft) {
		l.x -= step
	}
	if in.IsKeyDown(core.KeyD) || in.IsKeyDown(core.KeyRight) {
		l.x += step
	}

	rot, lift := ctl.Look(in.FetchMotion())
	l.rotation += float32(rot)
	l.y += float32(lift)
	l.x = min(max(l.x, -worldLimit), worldLimit)
	l.y = min(max(l.y, -worldLimit), worldLimit)

	if ctl.Fired(in, BindCycleTint) {
		l.tintIdx = (l.tintIdx + 1) % len(colors.Tints)
		l.tint = colors.Tints[l.tintIdx]
	}
	sign := float32(1)
	if in.IsKeyDown(core.KeyLeftShift) || in.IsKeyDown(core.KeyRightShift) {
		sign = -1
	}
	for i, name := range []string{BindRedUp, BindGreenUp, BindBlueUp} {
		if ctl.Fired(in, name) {
			var d [3]float32
			d[i] = sign * colorStep
			l.tint = l.tint.Add(d)
		}
	}
	if ctl.Fired(in, BindGrow) {
		l.scale = min(l.scale*scaleStep, maxScale)
	}
	if ctl.Fired(in, BindShrink) {
		l.scale = max(l.scale/scaleStep, minScale)
	}
	if ctl.Fired(in, BindToggleCapture) {
		l.captured = !l.captured
		e.Window.SetCursorCaptured(l.captured)
		logger.Infof("cursor captured: %t", l.captured)
	}
	if ctl.Fired(in, BindQuit) {
		e.Window.RequestClose()
	}
}

func (l *TriangleLayer) OnRender(e *core.Engine, alpha float64) {
	e.Renderer.DrawTriangle(l.Params())
}

func (l *TriangleLayer) OnEvent(e *core.Engine, ev core.Event) bool { return false }

// Params returns the current draw parameters.
func (l *TriangleLayer) Params() core.TriangleParams {
	return core.TriangleParams{
		OffsetX:  l.x,
		OffsetY:  l.y,
		Rotation: l.rotation,
		Scale:    l.scale,
		Tint:     l.tint,
	}
}
