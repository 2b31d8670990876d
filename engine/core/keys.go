package core

import (
	"fmt"
	"strings"
)

// Key is a platform independent key identifier.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyEnter
	KeyTab
	KeyBackspace

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	KeyLeftShift
	KeyRightShift
	KeyLeftCtrl
	KeyRightCtrl
	KeyLeftAlt
	KeyRightAlt
	KeyLeftSuper
	KeyRightSuper

	keyCount
)

var keyNames = [keyCount]string{
	KeyUnknown:   "unknown",
	KeyEscape:    "escape",
	KeySpace:     "space",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackspace: "backspace",

	KeyUp:    "up",
	KeyDown:  "down",
	KeyLeft:  "left",
	KeyRight: "right",

	KeyLeftShift:  "lshift",
	KeyRightShift: "rshift",
	KeyLeftCtrl:   "lctrl",
	KeyRightCtrl:  "rctrl",
	KeyLeftAlt:    "lalt",
	KeyRightAlt:   "ralt",
	KeyLeftSuper:  "lsuper",
	KeyRightSuper: "rsuper",
}

var keysByName = map[string]Key{}

func init() {
	for k := KeyA; k <= KeyZ; k++ {
		keyNames[k] = string(rune('a' + int(k-KeyA)))
	}
	for k := Key0; k <= Key9; k++ {
		keyNames[k] = string(rune('0' + int(k-Key0)))
	}
	for k := KeyF1; k <= KeyF12; k++ {
		keyNames[k] = fmt.Sprintf("f%d", int(k-KeyF1)+1)
	}
	for k := KeyUnknown + 1; k < keyCount; k++ {
		keysByName[keyNames[k]] = k
	}
	// aliases accepted in config files
	keysByName["esc"] = KeyEscape
	keysByName["return"] = KeyEnter
	keysByName["shift"] = KeyLeftShift
	keysByName["ctrl"] = KeyLeftCtrl
	keysByName["alt"] = KeyLeftAlt
}

func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return fmt.Sprintf("Key(%d)", int(k))
	}
	return keyNames[k]
}

// Valid reports whether k names a real key.
func (k Key) Valid() bool { return k > KeyUnknown && k < keyCount }

// ParseKey resolves a case-insensitive key name such as "w", "space" or "f1".
func ParseKey(name string) (Key, error) {
	if k, ok := keysByName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return k, nil
	}
	return KeyUnknown, fmt.Errorf("unknown key %q", name)
}
