package app

import "laios/core"

// ControlFlow is the per-event decision of the event loop.
type ControlFlow int

const (
	Continue ControlFlow = iota
	Terminate
)

func (c ControlFlow) String() string {
	if c == Terminate {
		return "terminate"
	}
	return "continue"
}

type LoopState int

const (
	Running LoopState = iota
	Stopped
)

func (s LoopState) String() string {
	if s == Stopped {
		return "stopped"
	}
	return "running"
}

// Decide maps one event to a loop decision. Only a close request or the
// escape key end the loop; everything else is ignored.
func Decide(e core.Event) ControlFlow {
	switch e := e.(type) {
	case core.CloseRequested:
		return Terminate
	case core.KeyboardInput:
		if e.Key == core.KeyEscape {
			return Terminate
		}
	}
	return Continue
}

// EventLoop is the RUNNING/STOPPED state machine. Stopped is terminal.
type EventLoop struct {
	state    LoopState
	consumed int
}

func NewEventLoop() *EventLoop {
	return &EventLoop{state: Running}
}

func (l *EventLoop) State() LoopState {
	return l.state
}

// Consumed is the number of events handled while running.
func (l *EventLoop) Consumed() int {
	return l.consumed
}

// Handle feeds one event to the loop and returns the resulting state.
// Events arriving after the loop stopped are not looked at.
func (l *EventLoop) Handle(e core.Event) LoopState {
	if l.state == Stopped {
		return l.state
	}
	l.consumed++
	if Decide(e) == Terminate {
		l.state = Stopped
	}
	return l.state
}

// Run blocks on src until a terminating event arrives and returns that event.
func (l *EventLoop) Run(src core.EventSource) core.Event {
	for {
		e := src.WaitEvent()
		if l.Handle(e) == Stopped {
			return e
		}
	}
}
