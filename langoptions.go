// Package langopts holds the language dialect options consulted by the
// parser, semantic analysis and code generation.
//
// A LangOptions is built once with New, filled in by the driver and then
// treated as read-only for the rest of the compilation. Nothing in this
// package locks: publish a finished value through Publish and never write to
// it again while other owners hold it.
package langopts

// LangOptions keeps track of the options that control the dialect of C or
// C++ that is accepted
type LangOptions struct {
	Base

	ObjCRuntime ObjCRuntime

	ObjCConstantStringClass string

	// OverflowHandler is the name of the handler function called when signed
	// overflow traps. Empty means abort.
	OverflowHandler string

	// CurrentModule is the name of the module being built
	CurrentModule string
}

// New returns options at their documented defaults
func New() *LangOptions {
	return &LangOptions{
		Base: DefaultBase(),
	}
}

// IsSignedOverflowDefined reports whether signed overflow wraps
func (o *LangOptions) IsSignedOverflowDefined() bool {
	return o.SignedOverflowBehavior() == SOBDefined
}

// HasOverflowHandler reports whether trapping overflow calls a named handler
// instead of aborting
func (o *LangOptions) HasOverflowHandler() bool {
	return o.SignedOverflowBehavior() == SOBTrapping && o.OverflowHandler != ""
}

// ResetNonModularOptions restores every option that is not considered when
// building a module, and clears CurrentModule
func (o *LangOptions) ResetNonModularOptions() {
	o.resetBenign()
	o.CurrentModule = ""
}

// Clone returns an independent copy
func (o *LangOptions) Clone() *LangOptions {
	c := *o
	return &c
}

// Equal reports whether every option, the runtime and every string match
func (o *LangOptions) Equal(other *LangOptions) bool {
	return *o == *other
}
