package langopts

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// OptionMismatch is one setting that differs between a module and its importer
type OptionMismatch struct {
	Name        string
	Description string
	Module      string
	Current     string
}

// IncompatibleOptionsError lists the settings that prevent importing a module
type IncompatibleOptionsError struct {
	Module     string
	Mismatches []OptionMismatch
}

func (e *IncompatibleOptionsError) Error() string {
	parts := make([]string, len(e.Mismatches))
	for i, m := range e.Mismatches {
		parts[i] = fmt.Sprintf("%s (module: %s, current: %s)", m.Description, m.Module, m.Current)
	}

	name := e.Module
	if name == "" {
		name = "<unnamed>"
	}

	return fmt.Sprintf("%v: module %s: %s", ErrIncompatibleModule, name, strings.Join(parts, ", "))
}

func (e *IncompatibleOptionsError) Unwrap() error {
	return ErrIncompatibleModule
}

// ModuleKey returns a copy of o with every non-modular option reset, suitable
// as a comparison key for module reuse
func ModuleKey(o *LangOptions) LangOptions {
	key := o.Clone()
	key.ResetNonModularOptions()
	key.ObjCRuntime.Version = key.ObjCRuntime.Version.canonical()

	return *key
}

// Compatible reports whether a module built with one configuration may be
// imported by another
func Compatible(module, current *LangOptions) bool {
	return ModuleKey(module) == ModuleKey(current)
}

// CheckModuleCompatibility returns nil when module and current agree on every
// modular setting. Otherwise the error wraps ErrIncompatibleModule and is an
// *IncompatibleOptionsError naming each difference.
func CheckModuleCompatibility(module, current *LangOptions) error {
	var mismatches []OptionMismatch

	moduleValues := module.rawValues()
	currentValues := current.rawValues()

	for i, info := range optionTable {
		if info.Benign || moduleValues[i] == currentValues[i] {
			continue
		}

		mismatches = append(mismatches, OptionMismatch{
			Name:        info.Name,
			Description: info.Description,
			Module:      formatRawValue(info, moduleValues[i]),
			Current:     formatRawValue(info, currentValues[i]),
		})
	}

	if !module.ObjCRuntime.Equal(current.ObjCRuntime) {
		mismatches = append(mismatches, OptionMismatch{
			Name:        "ObjCRuntime",
			Description: "Objective-C runtime",
			Module:      module.ObjCRuntime.String(),
			Current:     current.ObjCRuntime.String(),
		})
	}

	if module.ObjCConstantStringClass != current.ObjCConstantStringClass {
		mismatches = append(mismatches, OptionMismatch{
			Name:        "ObjCConstantStringClass",
			Description: "Objective-C constant string class",
			Module:      quoteOrNone(module.ObjCConstantStringClass),
			Current:     quoteOrNone(current.ObjCConstantStringClass),
		})
	}

	if module.OverflowHandler != current.OverflowHandler {
		mismatches = append(mismatches, OptionMismatch{
			Name:        "OverflowHandler",
			Description: "signed overflow handler",
			Module:      quoteOrNone(module.OverflowHandler),
			Current:     quoteOrNone(current.OverflowHandler),
		})
	}

	if len(mismatches) == 0 {
		return nil
	}

	return &IncompatibleOptionsError{
		Module:     module.CurrentModule,
		Mismatches: mismatches,
	}
}

// ModuleHash hashes the module key of o. Configurations with equal module keys
// hash equal.
func ModuleHash(o *LangOptions) uint64 {
	key := ModuleKey(o)
	values := key.rawValues()

	d := xxhash.New()

	var buf [8]byte

	for _, v := range values {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = d.Write(buf[:])
	}

	for _, s := range []string{key.ObjCRuntime.String(), key.ObjCConstantStringClass, key.OverflowHandler} {
		binary.LittleEndian.PutUint64(buf[:], uint64(len(s)))
		_, _ = d.Write(buf[:])
		_, _ = d.WriteString(s)
	}

	return d.Sum64()
}

func formatRawValue(info OptionInfo, v uint64) string {
	if info.Kind == PlainOption && info.Bits == 1 {
		if v != 0 {
			return "on"
		}

		return "off"
	}

	return fmt.Sprintf("%d", v)
}

func quoteOrNone(s string) string {
	if s == "" {
		return "none"
	}

	return fmt.Sprintf("%q", s)
}
