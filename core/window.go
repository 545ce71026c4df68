package core

import (
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	"laios/config"
)

func init() {
	runtime.LockOSThread()
}

var (
	ErrWindowCreation = errors.New("failed to create window")
	// ErrUnsupportedPlatform means the host windowing system cannot present
	// through Vulkan at all.
	ErrUnsupportedPlatform = errors.New("platform has no Vulkan surface support")
)

type WindowConfig struct {
	Width     int
	Height    int
	Title     string
	Resizable bool
}

func DefaultWindowConfig() WindowConfig {
	c := config.Default()
	return WindowConfig{
		Width:  c.Window.Width,
		Height: c.Window.Height,
		Title:  c.Window.Title,
	}
}

// Surface is a native window the engine presents into.
type Surface interface {
	Size() (width, height int)
	Title() string
	// RequiredInstanceExtensions is what the windowing system itself
	// reports it needs from a Vulkan instance.
	RequiredInstanceExtensions() []string
	Destroy()
}

// EventSource delivers platform events one at a time, blocking until one is
// available.
type EventSource interface {
	WaitEvent() Event
}

// Platform creates windows. It is the only way the engine talks to the host
// windowing system.
type Platform interface {
	CreateWindow(config WindowConfig) (Surface, EventSource, error)
}

// Window is a GLFW window with no client API attached.
type Window struct {
	Handle *glfw.Window
	Width  int
	Height int
	title  string

	events    *eventQueue
	release   func()
	destroyed bool
}

func (w *Window) Size() (int, int) {
	return w.Width, w.Height
}

func (w *Window) Title() string {
	return w.title
}

func (w *Window) RequiredInstanceExtensions() []string {
	return w.Handle.GetRequiredInstanceExtensions()
}

// Destroy closes the window and hands it back to the platform, which shuts
// GLFW down once no window is left. Later calls do nothing.
func (w *Window) Destroy() {
	if w.destroyed {
		return
	}
	w.destroyed = true
	w.Handle.Destroy()
	w.release()
}

func (w *Window) installCallbacks() {
	w.Handle.SetCloseCallback(func(*glfw.Window) {
		w.events.push(CloseRequested{})
	})
	w.Handle.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		w.events.push(translateKey(key, scancode, action, mods))
	})
	w.Handle.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		w.Width = width
		w.Height = height
		w.events.push(Resized{Width: width, Height: height})
	})
	w.Handle.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		w.events.push(Focused{Focused: focused})
	})
	w.Handle.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		w.events.push(CursorMoved{X: x, Y: y})
	})
	w.Handle.SetRefreshCallback(func(*glfw.Window) {
		w.events.push(Refresh{})
	})
}

func boolToInt(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}
