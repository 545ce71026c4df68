package vulkan

import (
	"unsafe"

	"github.com/pkg/errors"
	vk "github.com/vulkan-go/vulkan"
)

// Loader implements API on top of the system Vulkan loader. The loader entry
// point comes from the windowing system, so it is resolved on first use,
// after the window exists.
type Loader struct {
	procAddr    func() unsafe.Pointer
	initialized bool
	next        InstanceHandle
	live        map[InstanceHandle]vk.Instance
}

func NewLoader(procAddr func() unsafe.Pointer) *Loader {
	return &Loader{
		procAddr: procAddr,
		live:     make(map[InstanceHandle]vk.Instance),
	}
}

func (l *Loader) init() error {
	if l.initialized {
		return nil
	}
	p := l.procAddr()
	if p == nil {
		return errors.Wrap(ErrLoaderUnavailable, "vkGetInstanceProcAddr not found")
	}
	vk.SetGetInstanceProcAddr(p)
	if err := vk.Init(); err != nil {
		return errors.Wrapf(ErrLoaderUnavailable, "vk.Init: %v", err)
	}
	l.initialized = true
	return nil
}

func (l *Loader) InstanceLayers() ([]string, error) {
	if err := l.init(); err != nil {
		return nil, err
	}
	var count uint32
	if err := vk.Error(vk.EnumerateInstanceLayerProperties(&count, nil)); err != nil {
		return nil, errors.Wrap(err, "vkEnumerateInstanceLayerProperties")
	}
	props := make([]vk.LayerProperties, count)
	if count > 0 {
		if err := vk.Error(vk.EnumerateInstanceLayerProperties(&count, props)); err != nil {
			return nil, errors.Wrap(err, "vkEnumerateInstanceLayerProperties")
		}
	}
	names := make([]string, 0, count)
	for _, p := range props[:count] {
		p.Deref()
		names = append(names, vk.ToString(p.LayerName[:]))
	}
	return names, nil
}

func (l *Loader) InstanceExtensions() ([]string, error) {
	if err := l.init(); err != nil {
		return nil, err
	}
	var count uint32
	if err := vk.Error(vk.EnumerateInstanceExtensionProperties("", &count, nil)); err != nil {
		return nil, errors.Wrap(err, "vkEnumerateInstanceExtensionProperties")
	}
	props := make([]vk.ExtensionProperties, count)
	if count > 0 {
		if err := vk.Error(vk.EnumerateInstanceExtensionProperties("", &count, props)); err != nil {
			return nil, errors.Wrap(err, "vkEnumerateInstanceExtensionProperties")
		}
	}
	names := make([]string, 0, count)
	for _, p := range props[:count] {
		p.Deref()
		names = append(names, vk.ToString(p.ExtensionName[:]))
	}
	return names, nil
}

func (l *Loader) CreateInstance(info InstanceCreateInfo) (InstanceHandle, error) {
	if err := l.init(); err != nil {
		return 0, err
	}

	createInfo := newCreateInfo(info)

	var instance vk.Instance
	if err := vk.Error(vk.CreateInstance(&createInfo, nil, &instance)); err != nil {
		return 0, err
	}
	if err := vk.InitInstance(instance); err != nil {
		vk.DestroyInstance(instance, nil)
		return 0, errors.Wrap(err, "failed to load instance functions")
	}

	l.next++
	l.live[l.next] = instance
	return l.next, nil
}

func (l *Loader) DestroyInstance(handle InstanceHandle) {
	instance, ok := l.live[handle]
	if !ok {
		return
	}
	delete(l.live, handle)
	vk.DestroyInstance(instance, nil)
}

// newCreateInfo builds the driver structs. vulkan-go passes string data to C
// as is, so every name carries its own NUL terminator.
func newCreateInfo(info InstanceCreateInfo) vk.InstanceCreateInfo {
	appInfo := &vk.ApplicationInfo{
		SType:              vk.StructureTypeApplicationInfo,
		PApplicationName:   cString(info.Application.Name),
		ApplicationVersion: info.Application.Version.Packed(),
		PEngineName:        cString(info.Application.EngineName),
		EngineVersion:      info.Application.EngineVersion.Packed(),
		ApiVersion:         info.Application.APIVersion.Packed(),
	}
	return vk.InstanceCreateInfo{
		SType:                   vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo:        appInfo,
		EnabledExtensionCount:   uint32(len(info.Extensions)),
		PpEnabledExtensionNames: cStrings(info.Extensions),
		EnabledLayerCount:       uint32(len(info.Layers)),
		PpEnabledLayerNames:     cStrings(info.Layers),
	}
}

func cString(s string) string {
	return s + "\x00"
}

func cStrings(list []string) []string {
	if len(list) == 0 {
		return nil
	}
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = cString(s)
	}
	return out
}
