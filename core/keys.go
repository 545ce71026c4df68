package core

import "github.com/go-gl/glfw/v3.3/glfw"

// Key is a layout-independent key code. Codes GLFW reports that are not
// listed here arrive as KeyUnknown.
type Key int

const (
	KeyUnknown   = Key(glfw.KeyUnknown)
	KeySpace     = Key(glfw.KeySpace)
	KeyA         = Key(glfw.KeyA)
	KeyQ         = Key(glfw.KeyQ)
	KeyEscape    = Key(glfw.KeyEscape)
	KeyEnter     = Key(glfw.KeyEnter)
	KeyTab       = Key(glfw.KeyTab)
	KeyBackspace = Key(glfw.KeyBackspace)
	KeyRight     = Key(glfw.KeyRight)
	KeyLeft      = Key(glfw.KeyLeft)
	KeyDown      = Key(glfw.KeyDown)
	KeyUp        = Key(glfw.KeyUp)
)

var keyNames = map[Key]string{
	KeySpace:     "Space",
	KeyA:         "A",
	KeyQ:         "Q",
	KeyEscape:    "Escape",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyRight:     "Right",
	KeyLeft:      "Left",
	KeyDown:      "Down",
	KeyUp:        "Up",
}

// Known reports whether k is one of the listed key codes.
func (k Key) Known() bool {
	_, ok := keyNames[k]
	return ok
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}
