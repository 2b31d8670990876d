package core

// App defines the game/application hooks.
type App interface {
	OnStart(e *Engine)                 // called once after window/renderer init
	OnUpdate(e *Engine, dt float64)    // called at a fixed tick (60Hz by default)
	OnRender(e *Engine, alpha float64) // render with interpolation alpha [0..1]
	OnEvent(e *Engine, ev Event)       // input/window events, after Input has seen them
	OnShutdown(e *Engine)              // before exit
}

// Engine exposes core services to the App.
type Engine struct {
	Window   Window
	Renderer Renderer
	Input    *Input
	Layers   LayerStack
	Clock    Clock
}

// Uptime is the shared clock reading in seconds.
func (e *Engine) Uptime() float64 { return e.Clock.Now() }

// Window abstraction.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	RequestClose()
	FramebufferSize() (int, int)
	SetTitle(title string)
	SetCursorCaptured(captured bool)
	SetEventCallback(cb func(Event))
	Destroy()
}

// TriangleParams drives the demo triangle.
type TriangleParams struct {
	OffsetX, OffsetY float32 // clip space
	Rotation         float32 // radians
	Scale            float32
	Tint             [4]float32
}

// Renderer abstraction (minimal; the input core does not depend on it).
type Renderer interface {
	Resize(w, h int)
	Clear(r, g, b, a float32)
	DrawTriangle(p TriangleParams)
	GPUVendor() string
	GPURenderer() string
	GPUVersion() string
	Shutdown()
}

// Event model.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

// EventKey is a key transition. Key is KeyUnknown when the platform could
// not resolve the key; Input drops those.
type EventKey struct {
	Key    Key
	Down   bool
	Repeat bool
	Mods   Mod
}

func (EventKey) isEvent() {}

// EventMouseMove carries the absolute cursor position and the relative
// displacement since the previous motion event, in platform pixels
// (y grows downwards).
type EventMouseMove struct {
	X, Y       float64
	XRel, YRel int32
}

func (EventMouseMove) isEvent() {}

type EventScroll struct{ Xoff, Yoff float64 }

func (EventScroll) isEvent() {}

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)

// Config for the engine run.
type Config struct {
	Title          string
	Width          int
	Height         int
	VSync          bool
	CaptureCursor  bool
	ClearColor     [4]float32 // RGBA
	TickRate       int        // fixed updates per second, 60 when zero
	MaxUpdateSteps int        // per frame, 10 when zero
}
