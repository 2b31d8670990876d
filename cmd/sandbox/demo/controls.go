package demo

import (
	"fmt"

	"github.com/hubastard/groveinput/engine/config"
	"github.com/hubastard/groveinput/engine/core"
)

// Binding names understood by the demo layers.
const (
	BindCycleTint     = "cycle_tint"
	BindRedUp         = "red_up"
	BindGreenUp       = "green_up"
	BindBlueUp        = "blue_up"
	BindGrow          = "grow"
	BindShrink        = "shrink"
	BindToggleCapture = "toggle_capture"
	BindToggleStats   = "toggle_stats"
	BindQuit          = "quit"
)

type binding struct {
	key      core.Key
	cooldown float64
}

// Controls is an immutable, resolved view of the config's bindings. A new
// one is built on every reload and swapped in atomically.
type Controls struct {
	bindings    map[string]binding
	sensitivity float64
	invertY     bool
}

func NewControls(f *config.File) (*Controls, error) {
	c := &Controls{
		bindings:    make(map[string]binding, len(f.Bindings)),
		sensitivity: f.Input.MouseSensitivity,
		invertY:     f.Input.InvertY,
	}
	for _, name := range f.BindingNames() {
		b := f.Bindings[name]
		k, err := b.Resolve()
		if err != nil {
			return nil, fmt.Errorf("binding %q: %w", name, err)
		}
		c.bindings[name] = binding{key: k, cooldown: b.Cooldown}
	}
	return c, nil
}

// Fired reports whether the named binding triggers this frame. Unknown
// names never fire.
func (c *Controls) Fired(in *core.Input, name string) bool {
	b, ok := c.bindings[name]
	if !ok {
		return false
	}
	return in.KeyWithCooldown(b.key, false, b.cooldown)
}

// Key returns the key bound to name.
func (c *Controls) Key(name string) (core.Key, bool) {
	b, ok := c.bindings[name]
	return b.key, ok
}

// Look converts a drained mouse delta into rotation and vertical offset.
func (c *Controls) Look(dx, dy int32) (rot, lift float64) {
	if c.invertY {
		dy = -dy
	}
	return -float64(dx) * c.sensitivity, float64(dy) * c.sensitivity
}
