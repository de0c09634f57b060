package optgen

import (
	"errors"
	"fmt"
	"go/token"
	"os"
	"regexp"
	"strconv"

	"github.com/goccy/go-yaml"
)

// OptionKind distinguishes plain options from enum-typed options
type OptionKind string

const (
	// KindPlain is a boolean or integer option read as a struct field.
	KindPlain OptionKind = "plain"
	// KindEnum is an option stored as a named enum type behind an accessor pair.
	KindEnum OptionKind = "enum"
)

var extensionNamePattern = regexp.MustCompile(`^[a-z][a-z0-9]*(_[a-z0-9]+)*$`)

// Registry is the declarative option table
type Registry struct {
	Package    string      `yaml:"package"`
	Enums      []Enum      `yaml:"enums"`
	Options    []Option    `yaml:"options"`
	Extensions []Extension `yaml:"extensions"`
}

// Enum declares a named enumeration used by enum options
type Enum struct {
	Name   string      `yaml:"name"`
	Doc    string      `yaml:"doc"`
	Values []EnumValue `yaml:"values"`
}

// EnumValue is a single enumerator
type EnumValue struct {
	Name string `yaml:"name"`
	Doc  string `yaml:"doc"`
}

// Option is one entry of the table
type Option struct {
	Name        string     `yaml:"name"`
	Kind        OptionKind `yaml:"kind"`
	Type        string     `yaml:"type"`
	Bits        int        `yaml:"bits"`
	Default     any        `yaml:"default"`
	Description string     `yaml:"description"`
	// Benign options do not take part in module compatibility
	Benign bool `yaml:"benign"`

	// resolved by Validate
	defaultValue uint64
	defaultName  string
}

// Extension is a feature flag gated on the OpenCL version
type Extension struct {
	Name string `yaml:"name"`
	// MinVersion of zero means the extension is never enabled automatically
	MinVersion uint32 `yaml:"min_version"`
}

// ValidationError describes a single problem in the registry table
type ValidationError struct {
	Entry string
	Err   error
	Info  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v: %s", e.Entry, e.Err, e.Info)
}

func (e *ValidationError) Unwrap() []error {
	return []error{ErrRegistryValidation, e.Err}
}

// LoadRegistry reads and validates a registry table from disk
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry file: %w", err)
	}

	return ParseRegistry(data)
}

// ParseRegistry decodes a registry table in strict mode and validates it
func ParseRegistry(data []byte) (*Registry, error) {
	var registry Registry

	err := yaml.UnmarshalWithOptions(data, &registry, yaml.Strict())
	if err != nil {
		return nil, fmt.Errorf("failed to parse registry file: %w", err)
	}

	if registry.Package == "" {
		registry.Package = "langopts"
	}

	if err := registry.Validate(); err != nil {
		return nil, err
	}

	return &registry, nil
}

// Validate checks names, widths and defaults, and resolves every default to its
// stored integer representation. All problems are reported together.
func (r *Registry) Validate() error {
	var errs []error

	enums := make(map[string]*Enum, len(r.Enums))
	seen := make(map[string]bool)

	for i := range r.Enums {
		e := &r.Enums[i]
		if !isExportedIdentifier(e.Name) {
			errs = append(errs, &ValidationError{Entry: "enum " + e.Name, Err: ErrInvalidIdentifier, Info: "enum names must be exported Go identifiers"})
			continue
		}

		if _, dup := enums[e.Name]; dup {
			errs = append(errs, &ValidationError{Entry: "enum " + e.Name, Err: ErrDuplicateName, Info: "declared twice"})
			continue
		}

		enums[e.Name] = e

		if len(e.Values) == 0 {
			errs = append(errs, &ValidationError{Entry: "enum " + e.Name, Err: ErrRegistryValidation, Info: "no values"})
		}

		for _, v := range e.Values {
			if !isExportedIdentifier(v.Name) {
				errs = append(errs, &ValidationError{Entry: "enum " + e.Name, Err: ErrInvalidIdentifier, Info: fmt.Sprintf("value %q", v.Name)})
				continue
			}

			if seen[v.Name] {
				errs = append(errs, &ValidationError{Entry: "enum " + e.Name, Err: ErrDuplicateName, Info: fmt.Sprintf("value %q", v.Name)})
			}

			seen[v.Name] = true
		}
	}

	options := make(map[string]bool, len(r.Options))

	for i := range r.Options {
		o := &r.Options[i]
		if o.Kind == "" {
			o.Kind = KindPlain
		}

		if !isExportedIdentifier(o.Name) {
			errs = append(errs, &ValidationError{Entry: "option " + o.Name, Err: ErrInvalidIdentifier, Info: "option names must be exported Go identifiers"})
			continue
		}

		if options[o.Name] {
			errs = append(errs, &ValidationError{Entry: "option " + o.Name, Err: ErrDuplicateName, Info: "declared twice"})
			continue
		}

		options[o.Name] = true

		if err := o.resolve(enums); err != nil {
			errs = append(errs, err)
		}
	}

	// keyed by generated identifier, which is what must be unique
	extensions := map[string]string{"NumExtensions": "NumExtensions"}

	for _, ext := range r.Extensions {
		if !extensionNamePattern.MatchString(ext.Name) {
			errs = append(errs, &ValidationError{Entry: "extension " + ext.Name, Err: ErrInvalidIdentifier, Info: "extension names are lower snake case"})
			continue
		}

		id := extensionIdentifier(ext.Name)
		if prev, ok := extensions[id]; ok {
			errs = append(errs, &ValidationError{Entry: "extension " + ext.Name, Err: ErrDuplicateName, Info: fmt.Sprintf("%s collides with %s", id, prev)})
			continue
		}

		extensions[id] = ext.Name
	}

	return errors.Join(errs...)
}

func (o *Option) resolve(enums map[string]*Enum) error {
	entry := "option " + o.Name

	switch o.Kind {
	case KindPlain:
		if o.Bits < 1 || o.Bits > 32 {
			return &ValidationError{Entry: entry, Err: ErrWidthTooSmall, Info: fmt.Sprintf("plain options take 1 to 32 bits, got %d", o.Bits)}
		}

		value, err := plainDefault(o.Default)
		if err != nil {
			return &ValidationError{Entry: entry, Err: ErrDefaultOutOfRange, Info: err.Error()}
		}

		if value >= uint64(1)<<o.Bits {
			return &ValidationError{Entry: entry, Err: ErrDefaultOutOfRange, Info: fmt.Sprintf("%d does not fit in %d bits", value, o.Bits)}
		}

		o.defaultValue = value

	case KindEnum:
		e, ok := enums[o.Type]
		if !ok {
			return &ValidationError{Entry: entry, Err: ErrUnknownEnum, Info: fmt.Sprintf("type %q", o.Type)}
		}

		if o.Bits < 1 || o.Bits > 8 {
			return &ValidationError{Entry: entry, Err: ErrWidthTooSmall, Info: fmt.Sprintf("enum options take 1 to 8 bits, got %d", o.Bits)}
		}

		if len(e.Values) > 1<<o.Bits {
			return &ValidationError{Entry: entry, Err: ErrWidthTooSmall, Info: fmt.Sprintf("%d values of %s do not fit in %d bits", len(e.Values), e.Name, o.Bits)}
		}

		name, ok := o.Default.(string)
		if !ok {
			return &ValidationError{Entry: entry, Err: ErrDefaultOutOfRange, Info: "enum defaults name an enum value"}
		}

		index := -1

		for i, v := range e.Values {
			if v.Name == name {
				index = i
				break
			}
		}

		if index < 0 {
			return &ValidationError{Entry: entry, Err: ErrDefaultOutOfRange, Info: fmt.Sprintf("%q is not a value of %s", name, e.Name)}
		}

		o.defaultValue = uint64(index)
		o.defaultName = name

	default:
		return &ValidationError{Entry: entry, Err: ErrInvalidKind, Info: string(o.Kind)}
	}

	return nil
}

// plainDefault converts a decoded YAML scalar into an unsigned value
func plainDefault(v any) (uint64, error) {
	switch value := v.(type) {
	case nil:
		return 0, nil
	case bool:
		if value {
			return 1, nil
		}

		return 0, nil
	case uint64:
		return value, nil
	case int:
		if value < 0 {
			return 0, fmt.Errorf("negative default %d", value)
		}

		return uint64(value), nil
	case int64:
		if value < 0 {
			return 0, fmt.Errorf("negative default %d", value)
		}

		return uint64(value), nil
	case string:
		parsed, err := strconv.ParseUint(value, 0, 32)
		if err != nil {
			return 0, fmt.Errorf("default %q is not an unsigned integer", value)
		}

		return parsed, nil
	default:
		return 0, fmt.Errorf("unsupported default %v (%T)", v, v)
	}
}

func isExportedIdentifier(name string) bool {
	return token.IsIdentifier(name) && token.IsExported(name)
}

// IsEnum reports whether the option has an accessor pair
func (o Option) IsEnum() bool {
	return o.Kind == KindEnum
}

// DefaultValue is the stored representation of the default
func (o Option) DefaultValue() uint64 {
	return o.defaultValue
}

// GoType is the Go type of the storage field
func (o Option) GoType() string {
	if o.IsEnum() {
		return o.Type
	}

	switch {
	case o.Bits == 1:
		return "bool"
	case o.Bits <= 8:
		return "uint8"
	case o.Bits <= 16:
		return "uint16"
	default:
		return "uint32"
	}
}

// FieldName is the storage field name; enum fields are unexported
func (o Option) FieldName() string {
	if o.IsEnum() {
		return lowerFirst(o.Name)
	}

	return o.Name
}

// DefaultLiteral renders the default as Go source
func (o Option) DefaultLiteral() string {
	switch {
	case o.IsEnum():
		return o.defaultName
	case o.Bits == 1:
		return strconv.FormatBool(o.defaultValue != 0)
	default:
		return strconv.FormatUint(o.defaultValue, 10)
	}
}

// ModularOptions returns the options that take part in module compatibility
func (r *Registry) ModularOptions() []Option {
	var result []Option

	for _, o := range r.Options {
		if !o.Benign {
			result = append(result, o)
		}
	}

	return result
}

// BenignOptions returns the options reset by ResetNonModularOptions
func (r *Registry) BenignOptions() []Option {
	var result []Option

	for _, o := range r.Options {
		if o.Benign {
			result = append(result, o)
		}
	}

	return result
}

// EnumByName looks up an enum declaration
func (r *Registry) EnumByName(name string) (Enum, bool) {
	for _, e := range r.Enums {
		if e.Name == name {
			return e, true
		}
	}

	return Enum{}, false
}
