package platform

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/hubastard/groveinput/engine/core"
)

// SDLWindow implements core.Window on SDL2. Events are drained from the
// SDL queue in PollEvents, on the calling (main) thread. SDL reports
// relative motion itself, so no tracker is needed.
type SDLWindow struct {
	w           *sdl.Window
	ctx         sdl.GLContext
	onEv        func(core.Event)
	shouldClose bool
}

// Must be called on main thread before any GL calls.
func NewSDLWindow(cfg core.Config, onEvent func(core.Event)) (*SDLWindow, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("sdl init: %w", err)
	}

	attrs := []struct {
		attr  sdl.GLattr
		value int
	}{
		{sdl.GLattr(sdl.GL_CONTEXT_MAJOR_VERSION), 3},
		{sdl.GLattr(sdl.GL_CONTEXT_MINOR_VERSION), 3},
		{sdl.GLattr(sdl.GL_CONTEXT_PROFILE_MASK), int(sdl.GL_CONTEXT_PROFILE_CORE)},
		{sdl.GLattr(sdl.GL_CONTEXT_FLAGS), int(sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)},
		{sdl.GLattr(sdl.GL_DOUBLEBUFFER), 1},
	}
	for _, a := range attrs {
		if err := sdl.GLSetAttribute(a.attr, a.value); err != nil {
			sdl.Quit()
			return nil, fmt.Errorf("sdl gl attribute %d: %w", a.attr, err)
		}
	}

	win, err := sdl.CreateWindow(cfg.Title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width), int32(cfg.Height),
		sdl.WINDOW_OPENGL|sdl.WINDOW_RESIZABLE|sdl.WINDOW_ALLOW_HIGHDPI)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("create window: %w", err)
	}
	ctx, err := win.GLCreateContext()
	if err != nil {
		win.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("create gl context: %w", err)
	}
	interval := 0
	if cfg.VSync {
		interval = 1
	}
	if err := sdl.GLSetSwapInterval(interval); err != nil {
		logger.Warnf("swap interval %d: %v", interval, err)
	}

	if err := gl.Init(); err != nil {
		sdl.GLDeleteContext(ctx)
		win.Destroy()
		sdl.Quit()
		return nil, err
	}
	var v sdl.Version
	sdl.GetVersion(&v)
	logger.Infof("sdl %d.%d.%d, GL %s", v.Major, v.Minor, v.Patch, gl.GoStr(gl.GetString(gl.VERSION)))

	return &SDLWindow{w: win, ctx: ctx, onEv: onEvent}, nil
}

func (s *SDLWindow) emit(ev core.Event) {
	if s.onEv != nil {
		s.onEv(ev)
	}
}

// PollEvents drains every pending SDL event, in arrival order.
func (s *SDLWindow) PollEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			s.emit(core.EventCloseRequested{})
		case *sdl.WindowEvent:
			switch e.Event {
			case uint8(sdl.WINDOWEVENT_SIZE_CHANGED):
				s.emit(core.EventResize{W: int(e.Data1), H: int(e.Data2)})
			case uint8(sdl.WINDOWEVENT_CLOSE):
				s.emit(core.EventCloseRequested{})
			}
		case *sdl.KeyboardEvent:
			s.emit(core.EventKey{
				Key:    translateSDLKey(e.Keysym.Sym),
				Down:   e.Type == uint32(sdl.KEYDOWN),
				Repeat: e.Repeat != 0,
				Mods:   translateSDLMods(e.Keysym.Mod),
			})
		case *sdl.MouseMotionEvent:
			s.emit(core.EventMouseMove{
				X: float64(e.X), Y: float64(e.Y),
				XRel: e.XRel, YRel: e.YRel,
			})
		case *sdl.MouseWheelEvent:
			s.emit(core.EventScroll{Xoff: float64(e.X), Yoff: float64(e.Y)})
		}
	}
}

func (s *SDLWindow) SwapBuffers()                         { s.w.GLSwap() }
func (s *SDLWindow) ShouldClose() bool                    { return s.shouldClose }
func (s *SDLWindow) RequestClose()                        { s.shouldClose = true }
func (s *SDLWindow) SetTitle(t string)                    { s.w.SetTitle(t) }
func (s *SDLWindow) SetEventCallback(cb func(core.Event)) { s.onEv = cb }

func (s *SDLWindow) FramebufferSize() (int, int) {
	w, h := s.w.GLGetDrawableSize()
	return int(w), int(h)
}

// SetCursorCaptured switches SDL relative mouse mode, which hides the
// cursor and keeps reporting motion at the window edges.
func (s *SDLWindow) SetCursorCaptured(captured bool) {
	sdl.SetRelativeMouseMode(captured)
}

func (s *SDLWindow) Destroy() {
	sdl.GLDeleteContext(s.ctx)
	s.w.Destroy()
	sdl.Quit()
}
