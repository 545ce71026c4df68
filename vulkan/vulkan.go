// Package vulkan brings up the Vulkan instance for the engine: the registry of
// required extensions and layers, the instance builder and the loader binding.
package vulkan

import "fmt"

// Version is a major.minor.patch triple as packed by VK_MAKE_VERSION.
type Version struct {
	Major, Minor, Patch uint32
}

// VersionFrom converts a constant-table triple.
func VersionFrom(v [3]uint32) Version {
	return Version{Major: v[0], Minor: v[1], Patch: v[2]}
}

// Packed returns the 32-bit encoding used by VkApplicationInfo.
func (v Version) Packed() uint32 {
	return MakeVersion(v.Major, v.Minor, v.Patch)
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

func MakeVersion(major, minor, patch uint32) uint32 {
	return (major << 22) | (minor << 12) | patch
}
