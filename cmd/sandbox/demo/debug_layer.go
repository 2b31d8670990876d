package demo

import (
	"fmt"
	"strings"

	"github.com/hubastard/groveinput/engine/core"
)

// DebugLayer logs input statistics. The stats binding toggles a periodic
// report; Ctrl+P prints one immediately.
type DebugLayer struct {
	controls func() *Controls
	period   float64

	enabled    bool
	lastReport float64
	reports    int
}

func NewDebugLayer(controls func() *Controls, period float64) *DebugLayer {
	return &DebugLayer{controls: controls, period: period}
}

func (l *DebugLayer) OnAttach(e *core.Engine) {
	logger.Debugf("GPU: %s / %s / %s", e.Renderer.GPUVendor(), e.Renderer.GPURenderer(), e.Renderer.GPUVersion())
}

func (l *DebugLayer) OnDetach(e *core.Engine) {
	logger.Debugf("debug layer detached after %d reports", l.reports)
}

func (l *DebugLayer) OnUpdate(e *core.Engine, dt float64) {
	if l.controls().Fired(e.Input, BindToggleStats) {
		l.enabled = !l.enabled
		l.lastReport = e.Uptime()
		logger.Infof("input stats reporting: %t", l.enabled)
	}
	if l.enabled && e.Uptime()-l.lastReport >= l.period {
		l.lastReport = e.Uptime()
		l.report(e)
	}
}

func (l *DebugLayer) OnRender(e *core.Engine, alpha float64) {}

func (l *DebugLayer) OnEvent(e *core.Engine, ev core.Event) bool {
	if v, ok := ev.(core.EventKey); ok && v.Down && !v.Repeat && v.Key == core.KeyP && v.Mods&core.ModCtrl != 0 {
		l.report(e)
		return true
	}
	return false
}

func (l *DebugLayer) report(e *core.Engine) {
	l.reports++
	logger.Info(Report(e.Input))
}

// Report formats a one-line snapshot of the input store.
func Report(in *core.Input) string {
	st := in.Stats()
	x, y := in.Mouse()
	pressed := in.PressedKeys()
	names := make([]string, len(pressed))
	for i, k := range pressed {
		names[i] = k.String()
	}
	return fmt.Sprintf("events=%d motion=%d dropped=%d drains=%d triggers=%d keys=%d cooldowns=%d cursor=(%.0f,%.0f) held=[%s]",
		st.Events, st.Motion, st.Dropped, st.Drains, st.Triggers, st.KnownKeys, st.CooldownLen, x, y, strings.Join(names, " "))
}
