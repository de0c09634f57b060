package langopts

import "fmt"

type extensionInfo struct {
	name       string
	minVersion uint32
}

func (e Extension) String() string {
	if e < NumExtensions {
		return extensionTable[e].name
	}

	return fmt.Sprintf("Extension(%d)", uint8(e))
}

// MinVersion is the OpenCL version (major*100 + minor*10) from which the
// extension is available automatically, or zero if it never is
func (e Extension) MinVersion() uint32 {
	if e < NumExtensions {
		return extensionTable[e].minVersion
	}

	return 0
}

// IsVersionGated reports whether the extension is enabled by the OpenCL version
func (e Extension) IsVersionGated() bool {
	return e.MinVersion() != 0
}

// LookupExtension finds an extension by its cl_khr_* name
func LookupExtension(name string) (Extension, bool) {
	for i, info := range extensionTable {
		if info.name == name {
			return Extension(i), true
		}
	}

	return 0, false
}

// OpenCLOptions records which OpenCL extensions are available. It is resolved
// once from LangOptions and never changes; WithExtension returns a new set.
type OpenCLOptions struct {
	supported [NumExtensions]bool
}

// NewOpenCLOptions resolves extension availability from the OpenCL flag and
// version. Extensions without a minimum version start unavailable.
func NewOpenCLOptions(o *LangOptions) OpenCLOptions {
	var opts OpenCLOptions

	for i, info := range extensionTable {
		if info.minVersion == 0 {
			continue
		}

		opts.supported[i] = o.OpenCL && o.OpenCLVersion >= info.minVersion
	}

	return opts
}

// Supported reports whether ext is available
func (c OpenCLOptions) Supported(ext Extension) bool {
	if ext >= NumExtensions {
		return false
	}

	return c.supported[ext]
}

// SupportedByName reports availability by extension name. The second result
// is false for unknown names.
func (c OpenCLOptions) SupportedByName(name string) (bool, bool) {
	ext, ok := LookupExtension(name)
	if !ok {
		return false, false
	}

	return c.supported[ext], true
}

// Enabled lists the available extensions in declaration order
func (c OpenCLOptions) Enabled() []Extension {
	var result []Extension

	for i, on := range c.supported {
		if on {
			result = append(result, Extension(i))
		}
	}

	return result
}

// WithExtension returns a copy with ext switched on or off, as done by
// #pragma OPENCL EXTENSION
func (c OpenCLOptions) WithExtension(ext Extension, enabled bool) OpenCLOptions {
	if ext < NumExtensions {
		c.supported[ext] = enabled
	}

	return c
}
