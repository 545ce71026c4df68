package core

import (
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"
)

// GLFWPlatform creates windows through GLFW. GLFW is initialised by
// CreateWindow and terminated when the last window it created is destroyed.
type GLFWPlatform struct {
	windows   int
	terminate func()
}

func NewGLFWPlatform() *GLFWPlatform {
	return &GLFWPlatform{terminate: glfw.Terminate}
}

func (p *GLFWPlatform) CreateWindow(config WindowConfig) (Surface, EventSource, error) {
	if config.Width <= 0 || config.Height <= 0 {
		return nil, nil, errors.Wrapf(ErrWindowCreation, "invalid dimensions %dx%d", config.Width, config.Height)
	}
	if err := glfw.Init(); err != nil {
		return nil, nil, errors.Wrapf(ErrWindowCreation, "failed to initialize GLFW: %v", err)
	}
	if !glfw.VulkanSupported() {
		p.terminateIfIdle()
		return nil, nil, ErrUnsupportedPlatform
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, boolToInt(config.Resizable))

	handle, err := glfw.CreateWindow(config.Width, config.Height, config.Title, nil, nil)
	if err != nil {
		p.terminateIfIdle()
		return nil, nil, errors.Wrapf(ErrWindowCreation, "%v", err)
	}
	p.acquire()

	window := &Window{
		Handle:  handle,
		Width:   config.Width,
		Height:  config.Height,
		title:   config.Title,
		events:  newEventQueue(glfw.WaitEvents),
		release: p.release,
	}
	window.installCallbacks()
	return window, window.events, nil
}

// VulkanProcAddr returns vkGetInstanceProcAddr as resolved by GLFW, or nil
// while no window is open.
func (p *GLFWPlatform) VulkanProcAddr() unsafe.Pointer {
	if !p.live() {
		return nil
	}
	return glfw.GetVulkanGetInstanceProcAddress()
}

func (p *GLFWPlatform) acquire() {
	p.windows++
}

func (p *GLFWPlatform) release() {
	if p.windows == 0 {
		return
	}
	p.windows--
	p.terminateIfIdle()
}

// terminateIfIdle shuts GLFW down unless a window is still open.
func (p *GLFWPlatform) terminateIfIdle() {
	if p.windows == 0 {
		p.terminate()
	}
}

func (p *GLFWPlatform) live() bool {
	return p.windows > 0
}
