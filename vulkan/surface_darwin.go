package vulkan

const platformSurfaceExtension = "VK_MVK_macos_surface"
