package vulkan

import (
	"slices"

	"laios/config"
)

const (
	// SurfaceExtension is the generic presentation extension every surface needs.
	SurfaceExtension   = "VK_KHR_surface"
	SwapchainExtension = "VK_KHR_swapchain"
)

// PlatformSurfaceExtension is the surface extension for the build target.
// On Linux and FreeBSD it is always the Xlib one, even where GLFW itself
// would prefer VK_KHR_xcb_surface; surfaces must then be created through
// Xlib for the instance to accept them.
const PlatformSurfaceExtension = platformSurfaceExtension

type ValidationConfig struct {
	Enabled bool
	Layers  []string
}

// DeviceExtensions is the set of extensions a physical device must offer.
type DeviceExtensions struct {
	Names []string
}

func (d DeviceExtensions) Contains(name string) bool {
	return slices.Contains(d.Names, name)
}

// Registry is the static list of what the engine asks the driver for.
// Build one with NewRegistry; tests may fill the fields directly.
type Registry struct {
	Instance   []string
	Validation ValidationConfig
	Device     DeviceExtensions
}

// NewRegistry builds the registry for this platform from the constant table.
func NewRegistry(c config.Constants) Registry {
	return Registry{
		Instance: []string{SurfaceExtension, PlatformSurfaceExtension},
		Validation: ValidationConfig{
			Enabled: c.Validation.Enabled,
			Layers:  slices.Clone(c.Validation.Layers),
		},
		Device: DeviceExtensions{Names: slices.Clone(c.Device.Extensions)},
	}
}

func DefaultRegistry() Registry {
	return NewRegistry(config.Default())
}

// RequiredInstanceExtensions lists the instance extensions, in request order.
func (r Registry) RequiredInstanceExtensions() []string {
	return slices.Clone(r.Instance)
}

func (r Registry) RequiredDeviceExtensions() DeviceExtensions {
	return DeviceExtensions{Names: slices.Clone(r.Device.Names)}
}

func (r Registry) ValidationConfig() ValidationConfig {
	return ValidationConfig{Enabled: r.Validation.Enabled, Layers: slices.Clone(r.Validation.Layers)}
}
