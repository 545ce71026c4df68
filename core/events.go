package core

import "github.com/go-gl/glfw/v3.3/glfw"

// Event is anything the platform delivers to the event loop.
type Event interface {
	event()
}

type CloseRequested struct{}

type KeyboardInput struct {
	Key      Key
	Scancode int
	Action   Action
	Mods     ModifierKey
}

type Resized struct {
	Width, Height int
}

type Focused struct {
	Focused bool
}

type CursorMoved struct {
	X, Y float64
}

type Refresh struct{}

func (CloseRequested) event() {}
func (KeyboardInput) event()  {}
func (Resized) event()        {}
func (Focused) event()        {}
func (CursorMoved) event()    {}
func (Refresh) event()        {}

type Action int

const (
	Release Action = Action(glfw.Release)
	Press   Action = Action(glfw.Press)
	Repeat  Action = Action(glfw.Repeat)
)

type ModifierKey int

const (
	ModShift   ModifierKey = ModifierKey(glfw.ModShift)
	ModControl ModifierKey = ModifierKey(glfw.ModControl)
	ModAlt     ModifierKey = ModifierKey(glfw.ModAlt)
	ModSuper   ModifierKey = ModifierKey(glfw.ModSuper)
)

func translateKey(key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) KeyboardInput {
	k := Key(key)
	if !k.Known() {
		k = KeyUnknown
	}
	return KeyboardInput{
		Key:      k,
		Scancode: scancode,
		Action:   Action(action),
		Mods:     ModifierKey(mods),
	}
}

// eventQueue turns GLFW's callbacks into a blocking stream. wait pumps the
// platform (glfw.WaitEvents), which runs the callbacks that push events.
type eventQueue struct {
	pending []Event
	wait    func()
}

func newEventQueue(wait func()) *eventQueue {
	return &eventQueue{wait: wait}
}

func (q *eventQueue) push(e Event) {
	q.pending = append(q.pending, e)
}

func (q *eventQueue) WaitEvent() Event {
	for len(q.pending) == 0 {
		q.wait()
	}
	e := q.pending[0]
	q.pending[0] = nil
	q.pending = q.pending[1:]
	return e
}
