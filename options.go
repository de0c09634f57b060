package langopts

//go:generate go run ./cmd/langoptgen generate --registry langoptions.yaml --output zz_generated_langoptions.go

// OptionKind tells plain options from enum options
type OptionKind uint8

const (
	// PlainOption is read and written as a field of Base.
	PlainOption OptionKind = iota
	// EnumOption is read and written through its typed accessor pair.
	EnumOption
)

func (k OptionKind) String() string {
	if k == EnumOption {
		return "enum"
	}

	return "plain"
}

// OptionInfo describes one entry of the option registry
type OptionInfo struct {
	Name    string
	Bits    int
	Default uint64
	Kind    OptionKind
	// Benign options are ignored when comparing configurations across a module boundary
	Benign      bool
	Description string
}

// Modular reports whether the option must match across a module boundary
func (i OptionInfo) Modular() bool {
	return !i.Benign
}

// Options returns a copy of the registry in declaration order
func Options() []OptionInfo {
	table := optionTable
	return table[:]
}

// LookupOption finds a registry entry by name
func LookupOption(name string) (OptionInfo, bool) {
	for _, info := range optionTable {
		if info.Name == name {
			return info, true
		}
	}

	return OptionInfo{}, false
}

func boolBits(v bool) uint64 {
	if v {
		return 1
	}

	return 0
}
