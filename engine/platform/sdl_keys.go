package platform

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/hubastard/groveinput/engine/core"
)

var sdlKeys = map[sdl.Keycode]core.Key{
	sdl.Keycode(sdl.K_ESCAPE):    core.KeyEscape,
	sdl.Keycode(sdl.K_SPACE):     core.KeySpace,
	sdl.Keycode(sdl.K_RETURN):    core.KeyEnter,
	sdl.Keycode(sdl.K_KP_ENTER):  core.KeyEnter,
	sdl.Keycode(sdl.K_TAB):       core.KeyTab,
	sdl.Keycode(sdl.K_BACKSPACE): core.KeyBackspace,
	sdl.Keycode(sdl.K_UP):        core.KeyUp,
	sdl.Keycode(sdl.K_DOWN):      core.KeyDown,
	sdl.Keycode(sdl.K_LEFT):      core.KeyLeft,
	sdl.Keycode(sdl.K_RIGHT):     core.KeyRight,
	sdl.Keycode(sdl.K_LSHIFT):    core.KeyLeftShift,
	sdl.Keycode(sdl.K_RSHIFT):    core.KeyRightShift,
	sdl.Keycode(sdl.K_LCTRL):     core.KeyLeftCtrl,
	sdl.Keycode(sdl.K_RCTRL):     core.KeyRightCtrl,
	sdl.Keycode(sdl.K_LALT):      core.KeyLeftAlt,
	sdl.Keycode(sdl.K_RALT):      core.KeyRightAlt,
	sdl.Keycode(sdl.K_LGUI):      core.KeyLeftSuper,
	sdl.Keycode(sdl.K_RGUI):      core.KeyRightSuper,
}

func init() {
	// Letter and digit keycodes are their ASCII values; F1-F12 are contiguous.
	for i := 0; i < 26; i++ {
		sdlKeys[sdl.Keycode(sdl.K_a)+sdl.Keycode(i)] = core.KeyA + core.Key(i)
	}
	for i := 0; i < 10; i++ {
		sdlKeys[sdl.Keycode(sdl.K_0)+sdl.Keycode(i)] = core.Key0 + core.Key(i)
	}
	for i := 0; i < 12; i++ {
		sdlKeys[sdl.Keycode(sdl.K_F1)+sdl.Keycode(i)] = core.KeyF1 + core.Key(i)
	}
}

// translateSDLKey maps a keycode to core.Key; unmapped or SDLK_UNKNOWN
// codes become core.KeyUnknown.
func translateSDLKey(k sdl.Keycode) core.Key {
	if ck, ok := sdlKeys[k]; ok {
		return ck
	}
	return core.KeyUnknown
}

func translateSDLMods(m uint16) core.Mod {
	var out core.Mod
	if m&uint16(sdl.KMOD_SHIFT) != 0 {
		out |= core.ModShift
	}
	if m&uint16(sdl.KMOD_CTRL) != 0 {
		out |= core.ModCtrl
	}
	if m&uint16(sdl.KMOD_ALT) != 0 {
		out |= core.ModAlt
	}
	if m&uint16(sdl.KMOD_GUI) != 0 {
		out |= core.ModSuper
	}
	return out
}
