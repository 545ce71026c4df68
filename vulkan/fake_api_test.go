package vulkan

import "github.com/pkg/errors"

type fakeAPI struct {
	layers     []string
	extensions []string
	createErr  error

	created   []InstanceCreateInfo
	destroyed []InstanceHandle
	live      map[InstanceHandle]bool
	next      InstanceHandle
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		layers:     []string{"VK_LAYER_LUNARG_standard_validation", "VK_LAYER_KHRONOS_validation"},
		extensions: []string{SurfaceExtension, PlatformSurfaceExtension, "VK_EXT_debug_utils"},
		live:       make(map[InstanceHandle]bool),
	}
}

func (f *fakeAPI) InstanceLayers() ([]string, error)     { return f.layers, nil }
func (f *fakeAPI) InstanceExtensions() ([]string, error) { return f.extensions, nil }

func (f *fakeAPI) CreateInstance(info InstanceCreateInfo) (InstanceHandle, error) {
	f.created = append(f.created, info)
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.next++
	f.live[f.next] = true
	return f.next, nil
}

func (f *fakeAPI) DestroyInstance(h InstanceHandle) {
	f.destroyed = append(f.destroyed, h)
	delete(f.live, h)
}

var errDriver = errors.New("VK_ERROR_INCOMPATIBLE_DRIVER")
