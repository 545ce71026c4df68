// Package app owns the engine's lifetime: it opens the window, brings up the
// Vulkan instance and runs the event loop until the user quits.
package app

import (
	"slices"

	"laios/config"
	"laios/core"
	"laios/internal/logging"
	"laios/vulkan"
)

const (
	StepWindow   = "window"
	StepInstance = "instance"
)

type Option func(*Application)

func WithPlatform(p core.Platform) Option {
	return func(a *Application) { a.platform = p }
}

// WithAPI replaces the Vulkan loader.
func WithAPI(api vulkan.API) Option {
	return func(a *Application) { a.api = api }
}

func WithRegistry(r vulkan.Registry) Option {
	return func(a *Application) { a.registry = &r }
}

func WithLogger(l logging.Logger) Option {
	return func(a *Application) { a.logger = l }
}

// Application holds the window and the Vulkan instance. Both are released by
// Destroy, instance first.
type Application struct {
	Window   core.Surface
	Instance *vulkan.Instance

	events    core.EventSource
	platform  core.Platform
	api       vulkan.API
	registry  *vulkan.Registry
	logger    logging.Logger
	destroyed bool
}

// New opens the window described by c and then creates the Vulkan instance.
// On failure everything acquired so far is released and a *StartupError is
// returned.
func New(c config.Constants, opts ...Option) (*Application, error) {
	a := &Application{}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = logging.Nop()
	}
	if a.platform == nil {
		a.platform = core.NewGLFWPlatform()
	}
	if a.api == nil {
		if p, ok := a.platform.(*core.GLFWPlatform); ok {
			a.api = vulkan.NewLoader(p.VulkanProcAddr)
		}
	}
	if a.api == nil {
		return nil, &StartupError{Step: StepInstance, Err: vulkan.ErrLoaderUnavailable}
	}
	if a.registry == nil {
		r := vulkan.NewRegistry(c)
		a.registry = &r
	}

	windowConfig := core.WindowConfig{
		Title:  c.Window.Title,
		Width:  c.Window.Width,
		Height: c.Window.Height,
	}
	window, events, err := a.platform.CreateWindow(windowConfig)
	if err != nil {
		return nil, &StartupError{Step: StepWindow, Err: err}
	}
	a.Window, a.events = window, events
	width, height := window.Size()
	a.logger.Info("window created", "title", window.Title(), "width", width, "height", height)

	instanceConfig := vulkan.NewInstanceConfig(c, *a.registry)
	a.checkSurfaceExtensions(instanceConfig.Extensions)

	instance, err := vulkan.NewInstance(a.api, instanceConfig)
	if err != nil {
		a.destroyWindow()
		return nil, &StartupError{Step: StepInstance, Err: err}
	}
	a.Instance = instance
	a.logger.Info("vulkan instance created",
		"api_version", instanceConfig.Application.APIVersion,
		"extensions", instance.Extensions,
		"layers", instance.Layers,
	)
	return a, nil
}

// Run blocks in the event loop until the window is closed or escape is
// pressed.
func (a *Application) Run() error {
	if a.destroyed {
		return ErrDestroyed
	}
	loop := NewEventLoop()
	last := loop.Run(a.events)
	a.logger.Info("event loop stopped", "cause", describe(last), "events", loop.Consumed())
	return nil
}

// Destroy releases the Vulkan instance and then the window. Only the first
// call does anything.
func (a *Application) Destroy() {
	if a.destroyed {
		return
	}
	a.destroyed = true
	a.Instance.Destroy()
	a.logger.Debug("vulkan instance destroyed")
	a.destroyWindow()
}

func (a *Application) destroyWindow() {
	if a.Window == nil {
		return
	}
	a.Window.Destroy()
	a.logger.Debug("window destroyed")
}

// checkSurfaceExtensions warns when the windowing system asks for an
// instance extension the registry does not request.
func (a *Application) checkSurfaceExtensions(requested []string) {
	for _, ext := range a.Window.RequiredInstanceExtensions() {
		if !slices.Contains(requested, ext) {
			a.logger.Warn("windowing system wants an extension that is not requested", "extension", ext)
		}
	}
}

func describe(e core.Event) string {
	switch e := e.(type) {
	case core.CloseRequested:
		return "close requested"
	case core.KeyboardInput:
		return "key " + e.Key.String()
	}
	return "unknown"
}
