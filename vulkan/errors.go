package vulkan

import "github.com/pkg/errors"

var (
	ErrLayerNotPresent     = errors.New("required validation layer not present")
	ErrExtensionNotPresent = errors.New("required instance extension not present")
	ErrInstanceCreation    = errors.New("vkCreateInstance failed")
	ErrLoaderUnavailable   = errors.New("vulkan loader unavailable")
)
