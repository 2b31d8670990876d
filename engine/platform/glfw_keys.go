package platform

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/hubastard/groveinput/engine/core"
)

var glfwKeys = map[glfw.Key]core.Key{
	glfw.KeyEscape:       core.KeyEscape,
	glfw.KeySpace:        core.KeySpace,
	glfw.KeyEnter:        core.KeyEnter,
	glfw.KeyKPEnter:      core.KeyEnter,
	glfw.KeyTab:          core.KeyTab,
	glfw.KeyBackspace:    core.KeyBackspace,
	glfw.KeyUp:           core.KeyUp,
	glfw.KeyDown:         core.KeyDown,
	glfw.KeyLeft:         core.KeyLeft,
	glfw.KeyRight:        core.KeyRight,
	glfw.KeyLeftShift:    core.KeyLeftShift,
	glfw.KeyRightShift:   core.KeyRightShift,
	glfw.KeyLeftControl:  core.KeyLeftCtrl,
	glfw.KeyRightControl: core.KeyRightCtrl,
	glfw.KeyLeftAlt:      core.KeyLeftAlt,
	glfw.KeyRightAlt:     core.KeyRightAlt,
	glfw.KeyLeftSuper:    core.KeyLeftSuper,
	glfw.KeyRightSuper:   core.KeyRightSuper,
}

func init() {
	// GLFW keeps letters, digits and F-keys contiguous.
	for i := 0; i < 26; i++ {
		glfwKeys[glfw.KeyA+glfw.Key(i)] = core.KeyA + core.Key(i)
	}
	for i := 0; i < 10; i++ {
		glfwKeys[glfw.Key0+glfw.Key(i)] = core.Key0 + core.Key(i)
	}
	for i := 0; i < 12; i++ {
		glfwKeys[glfw.KeyF1+glfw.Key(i)] = core.KeyF1 + core.Key(i)
	}
}

func translateGLFWKey(k glfw.Key) core.Key {
	if ck, ok := glfwKeys[k]; ok {
		return ck
	}
	return core.KeyUnknown
}

func translateGLFWMods(m glfw.ModifierKey) core.Mod {
	var out core.Mod
	if m&glfw.ModShift != 0 {
		out |= core.ModShift
	}
	if m&glfw.ModControl != 0 {
		out |= core.ModCtrl
	}
	if m&glfw.ModAlt != 0 {
		out |= core.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		out |= core.ModSuper
	}
	return out
}
