//go:build linux || freebsd

package vulkan

const platformSurfaceExtension = "VK_KHR_xlib_surface"
