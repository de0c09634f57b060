package langopts

// TranslationUnitKind describes the kind of translation unit being processed
type TranslationUnitKind uint8

const (
	// TUComplete is a complete translation unit.
	TUComplete TranslationUnitKind = iota
	// TUPrefix is a prefix to a translation unit, and is not complete.
	TUPrefix
	// TUModule is a module.
	TUModule
)

func (k TranslationUnitKind) String() string {
	switch k {
	case TUComplete:
		return "complete"
	case TUPrefix:
		return "prefix"
	case TUModule:
		return "module"
	default:
		return "unknown"
	}
}
