package langopts

import "errors"

// Common errors used throughout the langopts package
var (
	// ErrIncompatibleModule is returned when a precompiled module was built with
	// language options that differ from the importing translation unit.
	ErrIncompatibleModule = errors.New("module built with incompatible language options")
	// ErrInvalidObjCRuntime indicates a runtime descriptor string could not be parsed.
	ErrInvalidObjCRuntime = errors.New("invalid Objective-C runtime")
)
