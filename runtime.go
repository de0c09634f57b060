package langopts

import (
	"fmt"
	"strconv"
	"strings"
)

// ObjCRuntimeKind is the family of Objective-C runtime being targeted
type ObjCRuntimeKind uint8

const (
	// MacOSX is the modern non-fragile Apple runtime.
	MacOSX ObjCRuntimeKind = iota
	// FragileMacOSX is the legacy fragile Apple runtime.
	FragileMacOSX
	// IOS is the Apple runtime on iOS, always non-fragile.
	IOS
	// GCC is the fragile GNU runtime shipped with GCC.
	GCC
	// GNUstep is the non-fragile GNUstep runtime.
	GNUstep
	// ObjFW is the ObjFW runtime.
	ObjFW
)

var objCRuntimeKindNames = [...]string{
	MacOSX:        "macosx",
	FragileMacOSX: "macosx-fragile",
	IOS:           "ios",
	GCC:           "gcc",
	GNUstep:       "gnustep",
	ObjFW:         "objfw",
}

func (k ObjCRuntimeKind) String() string {
	if int(k) < len(objCRuntimeKindNames) {
		return objCRuntimeKindNames[k]
	}

	return fmt.Sprintf("ObjCRuntimeKind(%d)", uint8(k))
}

// Version is a dotted version number with up to three components
type Version struct {
	Major    uint32
	Minor    uint32
	Subminor uint32
	// Parts is the number of components written; zero means no version
	Parts uint8
}

// NewVersion builds a version from its components
func NewVersion(parts ...uint32) Version {
	var v Version

	if len(parts) > 3 {
		parts = parts[:3]
	}

	for i, p := range parts {
		switch i {
		case 0:
			v.Major = p
		case 1:
			v.Minor = p
		case 2:
			v.Subminor = p
		}
	}

	v.Parts = uint8(len(parts))

	return v
}

// IsEmpty reports whether no version was given
func (v Version) IsEmpty() bool {
	return v.Parts == 0
}

// Compare orders versions component by component; missing components count as zero
func (v Version) Compare(other Version) int {
	a := [3]uint32{v.Major, v.Minor, v.Subminor}
	b := [3]uint32{other.Major, other.Minor, other.Subminor}

	for i := range a {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}

	return 0
}

// canonical drops the written component count so that versions equal under
// Compare are also equal under ==
func (v Version) canonical() Version {
	v.Parts = 0
	if v.Major != 0 || v.Minor != 0 || v.Subminor != 0 {
		v.Parts = 3
	}

	return v
}

// AtLeast reports whether v >= other
func (v Version) AtLeast(parts ...uint32) bool {
	return v.Compare(NewVersion(parts...)) >= 0
}

func (v Version) String() string {
	switch v.Parts {
	case 0:
		return ""
	case 1:
		return strconv.FormatUint(uint64(v.Major), 10)
	case 2:
		return fmt.Sprintf("%d.%d", v.Major, v.Minor)
	default:
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Subminor)
	}
}

// ParseVersion parses "10", "10.8" or "10.8.2"
func ParseVersion(s string) (Version, error) {
	fields := strings.Split(s, ".")
	if s == "" || len(fields) > 3 {
		return Version{}, fmt.Errorf("%w: bad version %q", ErrInvalidObjCRuntime, s)
	}

	parts := make([]uint32, len(fields))

	for i, f := range fields {
		n, err := strconv.ParseUint(f, 10, 32)
		if err != nil {
			return Version{}, fmt.Errorf("%w: bad version %q: %w", ErrInvalidObjCRuntime, s, err)
		}

		parts[i] = uint32(n)
	}

	return NewVersion(parts...), nil
}

// ObjCRuntime describes the Objective-C runtime: its family and version.
// The zero value is the MacOSX runtime with no version.
type ObjCRuntime struct {
	Kind    ObjCRuntimeKind
	Version Version
}

// ParseObjCRuntime parses strings such as "macosx-10.8", "ios-6.0",
// "macosx-fragile" or "gnustep-1.7". A trailing dash group that does not
// start with a digit belongs to the runtime name.
func ParseObjCRuntime(input string) (ObjCRuntime, error) {
	name := input
	versionText := ""

	if dash := strings.LastIndexByte(input, '-'); dash >= 0 && dash+1 < len(input) {
		if c := input[dash+1]; c >= '0' && c <= '9' {
			name = input[:dash]
			versionText = input[dash+1:]
		}
	}

	kind := -1

	for i, n := range objCRuntimeKindNames {
		if n == name {
			kind = i
			break
		}
	}

	if kind < 0 {
		return ObjCRuntime{}, fmt.Errorf("%w: unknown runtime %q", ErrInvalidObjCRuntime, input)
	}

	runtime := ObjCRuntime{Kind: ObjCRuntimeKind(kind)}

	if versionText != "" {
		version, err := ParseVersion(versionText)
		if err != nil {
			return ObjCRuntime{}, err
		}

		runtime.Version = version
	}

	return runtime, nil
}

func (r ObjCRuntime) String() string {
	if r.Version.IsEmpty() {
		return r.Kind.String()
	}

	return r.Kind.String() + "-" + r.Version.String()
}

// Equal reports whether both runtimes have the same kind and versions that
// compare equal. "macosx-10.8" equals "macosx-10.8.0".
func (r ObjCRuntime) Equal(other ObjCRuntime) bool {
	return r.Kind == other.Kind && r.Version.Compare(other.Version) == 0
}

// IsNonFragile reports whether the runtime uses the non-fragile ABI
func (r ObjCRuntime) IsNonFragile() bool {
	switch r.Kind {
	case FragileMacOSX, GCC:
		return false
	default:
		return true
	}
}

// IsFragile is the inverse of IsNonFragile
func (r ObjCRuntime) IsFragile() bool {
	return !r.IsNonFragile()
}

// IsNeXTFamily reports whether the runtime is one of Apple's
func (r ObjCRuntime) IsNeXTFamily() bool {
	switch r.Kind {
	case MacOSX, FragileMacOSX, IOS:
		return true
	default:
		return false
	}
}

// IsGNUFamily reports whether the runtime is GCC, GNUstep or ObjFW
func (r ObjCRuntime) IsGNUFamily() bool {
	return !r.IsNeXTFamily()
}

// AllowsARC reports whether ARC can be used at all with this runtime
func (r ObjCRuntime) AllowsARC() bool {
	switch r.Kind {
	case FragileMacOSX, GCC:
		return false
	default:
		return true
	}
}

// HasNativeARC reports whether the runtime provides the ARC entrypoints
// itself rather than through a support library
func (r ObjCRuntime) HasNativeARC() bool {
	switch r.Kind {
	case MacOSX:
		return r.Version.AtLeast(10, 7)
	case IOS:
		return r.Version.AtLeast(5)
	case GNUstep:
		return r.Version.AtLeast(1, 6)
	case ObjFW:
		return true
	default:
		return false
	}
}

// HasSubscripting reports whether the runtime supports object subscripting
// without the legacy fallback
func (r ObjCRuntime) HasSubscripting() bool {
	switch r.Kind {
	case FragileMacOSX, GCC:
		return false
	case MacOSX:
		return r.Version.AtLeast(10, 8)
	case IOS:
		return r.Version.AtLeast(6)
	default:
		return true
	}
}
