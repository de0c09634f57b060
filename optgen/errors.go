package optgen

import "errors"

// Registry loading and validation errors
var (
	// ErrRegistryValidation is returned when the registry table is inconsistent.
	ErrRegistryValidation = errors.New("registry validation failed")
	// ErrUnknownEnum indicates an enum option refers to an undeclared enum type.
	ErrUnknownEnum = errors.New("unknown enum type")
	// ErrWidthTooSmall indicates a bit width cannot hold every value of the option.
	ErrWidthTooSmall = errors.New("bit width too small")
	// ErrDuplicateName indicates two entries share a name.
	ErrDuplicateName = errors.New("duplicate name")
	// ErrDefaultOutOfRange indicates a default value does not fit the option.
	ErrDefaultOutOfRange = errors.New("default value out of range")
	// ErrInvalidKind indicates an option kind other than plain or enum.
	ErrInvalidKind = errors.New("invalid option kind")
	// ErrInvalidIdentifier indicates a name is not usable as a Go identifier.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrGenerateCode is returned when rendering or formatting the generated source fails.
	ErrGenerateCode = errors.New("optgen: generate go code failure")
)
