package vulkan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCStrings(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"nil", nil, nil},
		{"empty", []string{}, nil},
		{"one", []string{"VK_KHR_surface"}, []string{"VK_KHR_surface\x00"}},
		{"two", []string{"VK_KHR_surface", "VK_KHR_xlib_surface"}, []string{"VK_KHR_surface\x00", "VK_KHR_xlib_surface\x00"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cStrings(tt.in))
		})
	}
	assert.Equal(t, "Laios\x00", cString("Laios"))
}

func TestNewCreateInfo(t *testing.T) {
	cfg := DefaultInstanceConfig()
	info := InstanceCreateInfo{
		Application: cfg.Application,
		Extensions:  cfg.Extensions,
		Layers:      cfg.Validation.Layers,
	}

	ci := newCreateInfo(info)
	assert.Equal(t, uint32(len(info.Extensions)), ci.EnabledExtensionCount)
	assert.Len(t, ci.PpEnabledExtensionNames, len(info.Extensions))
	assert.Equal(t, uint32(len(info.Layers)), ci.EnabledLayerCount)
	assert.Equal(t, []string{"VK_LAYER_LUNARG_standard_validation\x00"}, ci.PpEnabledLayerNames)
	for i, name := range ci.PpEnabledExtensionNames {
		assert.Equal(t, info.Extensions[i]+"\x00", name)
	}

	require.NotNil(t, ci.PApplicationInfo)
	assert.Equal(t, "Laios\x00", ci.PApplicationInfo.PApplicationName)
	assert.Equal(t, "Laios Engine\x00", ci.PApplicationInfo.PEngineName)
	assert.Equal(t, MakeVersion(1, 0, 92), ci.PApplicationInfo.ApiVersion)
	assert.Equal(t, MakeVersion(1, 0, 0), ci.PApplicationInfo.ApplicationVersion)
}

func TestNewCreateInfoWithoutLayers(t *testing.T) {
	ci := newCreateInfo(InstanceCreateInfo{Extensions: []string{SurfaceExtension}})
	assert.Equal(t, uint32(0), ci.EnabledLayerCount)
	assert.Nil(t, ci.PpEnabledLayerNames)
	assert.Equal(t, uint32(1), ci.EnabledExtensionCount)
}
