package vulkan

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pkg/errors"

	"laios/config"
)

// InstanceHandle identifies an instance created through an API.
type InstanceHandle uint64

// ApplicationInfo mirrors VkApplicationInfo.
type ApplicationInfo struct {
	Name          string
	EngineName    string
	Version       Version
	EngineVersion Version
	APIVersion    Version
}

// InstanceCreateInfo mirrors VkInstanceCreateInfo.
type InstanceCreateInfo struct {
	Application ApplicationInfo
	Extensions  []string
	Layers      []string
}

// API is the part of the Vulkan driver the instance builder calls.
type API interface {
	InstanceLayers() ([]string, error)
	InstanceExtensions() ([]string, error)
	CreateInstance(info InstanceCreateInfo) (InstanceHandle, error)
	DestroyInstance(handle InstanceHandle)
}

type InstanceConfig struct {
	Application ApplicationInfo
	Extensions  []string
	Validation  ValidationConfig
}

func DefaultInstanceConfig() InstanceConfig {
	c := config.Default()
	return NewInstanceConfig(c, NewRegistry(c))
}

// NewInstanceConfig combines the application identity from the constant
// table with the extension and layer requirements of the registry.
func NewInstanceConfig(c config.Constants, r Registry) InstanceConfig {
	return InstanceConfig{
		Application: ApplicationInfo{
			Name:          c.Application.Name,
			EngineName:    c.Application.EngineName,
			Version:       VersionFrom(c.Application.Version),
			EngineVersion: VersionFrom(c.Application.EngineVersion),
			APIVersion:    VersionFrom(c.Application.APIVersion),
		},
		Extensions: r.RequiredInstanceExtensions(),
		Validation: r.ValidationConfig(),
	}
}

// Instance owns a created VkInstance. It must be destroyed exactly once.
type Instance struct {
	Handle           InstanceHandle
	Extensions       []string
	Layers           []string
	EnableValidation bool

	api       API
	destroyed bool
}

// NewInstance creates an instance requesting exactly config.Extensions and,
// when validation is enabled, exactly config.Validation.Layers. Missing layers
// or extensions are reported before the driver is asked to create anything.
func NewInstance(api API, config InstanceConfig) (*Instance, error) {
	info := InstanceCreateInfo{
		Application: config.Application,
		Extensions:  slices.Clone(config.Extensions),
	}

	if config.Validation.Enabled {
		info.Layers = slices.Clone(config.Validation.Layers)

		available, err := api.InstanceLayers()
		if err != nil {
			return nil, errors.Wrap(err, "failed to enumerate instance layers")
		}
		if missing := missingNames(info.Layers, available); len(missing) > 0 {
			return nil, errors.Wrap(ErrLayerNotPresent, strings.Join(missing, ", "))
		}
	}

	available, err := api.InstanceExtensions()
	if err != nil {
		return nil, errors.Wrap(err, "failed to enumerate instance extensions")
	}
	if missing := missingNames(info.Extensions, available); len(missing) > 0 {
		return nil, errors.Wrap(ErrExtensionNotPresent, strings.Join(missing, ", "))
	}

	handle, err := api.CreateInstance(info)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInstanceCreation, err)
	}

	return &Instance{
		Handle:           handle,
		Extensions:       info.Extensions,
		Layers:           info.Layers,
		EnableValidation: config.Validation.Enabled,
		api:              api,
	}, nil
}

// Destroy releases the instance. Calls after the first are no-ops.
func (i *Instance) Destroy() {
	if i == nil || i.destroyed {
		return
	}
	i.destroyed = true
	i.api.DestroyInstance(i.Handle)
}

func (i *Instance) Destroyed() bool {
	return i.destroyed
}

func missingNames(required, available []string) []string {
	var missing []string
	for _, name := range required {
		if !slices.Contains(available, name) {
			missing = append(missing, name)
		}
	}
	return missing
}
