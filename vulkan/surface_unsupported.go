//go:build !linux && !freebsd && !windows && !darwin

package vulkan

// There is no Vulkan surface extension for this GOOS, so the build stops here.
var _ = unsupportedPlatform_noVulkanSurfaceExtension
