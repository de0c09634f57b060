package langopts

// FPOptions carries the floating point contraction policy of a single
// expression. It is a detached copy taken from LangOptions; later changes to
// the source are not reflected. The zero value has contraction off.
type FPOptions struct {
	FPContract bool
}

// NewFPOptions snapshots the default contraction mode of o
func NewFPOptions(o *LangOptions) FPOptions {
	return FPOptions{
		FPContract: o.DefaultFPContractMode() != FPCOff,
	}
}
