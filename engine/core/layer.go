package core

type Layer interface {
	OnAttach(e *Engine)
	OnDetach(e *Engine)
	OnUpdate(e *Engine, dt float64)
	OnRender(e *Engine, alpha float64)
	OnEvent(e *Engine, ev Event) bool // return true if handled; propagation stops
}

// LayerStack keeps regular layers below overlays. Updates and renders run
// bottom-up, events top-down.
type LayerStack struct {
	list    []Layer
	overlay int // index of the first overlay
}

// Push inserts l above the other layers but below every overlay.
func (ls *LayerStack) Push(l Layer) {
	ls.list = append(ls.list, nil)
	copy(ls.list[ls.overlay+1:], ls.list[ls.overlay:])
	ls.list[ls.overlay] = l
	ls.overlay++
}

// PushOverlay puts l on top of the stack.
func (ls *LayerStack) PushOverlay(l Layer) { ls.list = append(ls.list, l) }

// Pop removes the top-most entry, overlay or not.
func (ls *LayerStack) Pop() (Layer, bool) {
	if len(ls.list) == 0 {
		return nil, false
	}
	i := len(ls.list) - 1
	l := ls.list[i]
	ls.list[i] = nil
	ls.list = ls.list[:i]
	if ls.overlay > len(ls.list) {
		ls.overlay = len(ls.list)
	}
	return l, true
}

func (ls *LayerStack) Len() int { return len(ls.list) }

func (ls *LayerStack) ForEach(f func(Layer)) {
	for _, l := range ls.list {
		f(l)
	}
}

func (ls *LayerStack) ForEachReverse(f func(Layer) bool) {
	for i := len(ls.list) - 1; i >= 0; i-- {
		if stop := f(ls.list[i]); stop {
			break
		}
	}
}

// Clear detaches every layer, top-most first.
func (ls *LayerStack) Clear(e *Engine) {
	for {
		l, ok := ls.Pop()
		if !ok {
			return
		}
		l.OnDetach(e)
	}
}
