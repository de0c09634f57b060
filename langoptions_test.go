package langopts

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestNew_Defaults(t *testing.T) {
	opts := New()

	values := opts.rawValues()
	for i, info := range optionTable {
		t.Run(info.Name, func(t *testing.T) {
			assert.Equal(t, info.Default, values[i])
		})
	}

	assert.Equal(t, ObjCRuntime{Kind: MacOSX}, opts.ObjCRuntime)
	assert.Equal(t, "", opts.ObjCConstantStringClass)
	assert.Equal(t, "", opts.OverflowHandler)
	assert.Equal(t, "", opts.CurrentModule)
}

func TestNew_DocumentedDefaults(t *testing.T) {
	opts := New()

	assert.False(t, opts.C99)
	assert.False(t, opts.CPlusPlus)
	assert.True(t, opts.LaxVectorConversions)
	assert.True(t, opts.RTTI)
	assert.True(t, opts.GNUMode)
	assert.True(t, opts.MathErrno)
	assert.True(t, opts.CharIsSigned)
	assert.True(t, opts.SpellChecking)
	assert.Equal(t, uint32(512), opts.InstantiationDepth)
	assert.Equal(t, uint32(512), opts.ConstexprCallDepth)
	assert.Equal(t, uint32(0), opts.OpenCLVersion)
	assert.Equal(t, NonGC, opts.GC())
	assert.Equal(t, DefaultVisibility, opts.ValueVisibilityMode())
	assert.Equal(t, SSPOff, opts.StackProtector())
	assert.Equal(t, SOBUndefined, opts.SignedOverflowBehavior())
	assert.Equal(t, FPCOff, opts.DefaultFPContractMode())
}

func TestOptionTable_WidthsHoldEveryValue(t *testing.T) {
	enumCardinality := map[string]int{
		"GC":                     len(gcModeNames),
		"ValueVisibilityMode":    len(visibilityNames),
		"StackProtector":         len(stackProtectorModeNames),
		"SignedOverflowBehavior": len(signedOverflowBehaviorNames),
		"DefaultFPContractMode":  len(fpContractModeNames),
	}

	for _, info := range optionTable {
		t.Run(info.Name, func(t *testing.T) {
			assert.True(t, info.Bits >= 1 && info.Bits <= 32)
			assert.True(t, info.Default < uint64(1)<<info.Bits, "default %d does not fit in %d bits", info.Default, info.Bits)

			if info.Kind == EnumOption {
				count, ok := enumCardinality[info.Name]
				assert.True(t, ok, "enum option without cardinality")
				assert.True(t, count <= 1<<info.Bits, "%d values do not fit in %d bits", count, info.Bits)
			}
		})
	}
}

func fitsDeclaredWidths(t *testing.T, opts *LangOptions) {
	t.Helper()

	values := opts.rawValues()
	for i, info := range optionTable {
		assert.True(t, values[i] < uint64(1)<<info.Bits, "%s = %d does not fit in %d bits", info.Name, values[i], info.Bits)
	}
}

func TestRawValues_FitDeclaredWidths(t *testing.T) {
	fitsDeclaredWidths(t, New())
	fitsDeclaredWidths(t, customized())

	// plain integer fields are stored unmasked; the width is what LookupOption reports
	info, ok := LookupOption("PICLevel")
	assert.True(t, ok)
	assert.Equal(t, 2, info.Bits)
	assert.Equal(t, uint64(0), info.Default)
}

func TestEnumAccessors_RoundTrip(t *testing.T) {
	t.Run("GC", func(t *testing.T) {
		opts := New()
		for _, v := range []GCMode{NonGC, GCOnly, HybridGC} {
			opts.SetGC(v)
			assert.Equal(t, v, opts.GC())
		}
	})

	t.Run("ValueVisibilityMode", func(t *testing.T) {
		opts := New()
		for _, v := range []Visibility{HiddenVisibility, ProtectedVisibility, DefaultVisibility} {
			opts.SetValueVisibilityMode(v)
			assert.Equal(t, v, opts.ValueVisibilityMode())
		}
	})

	t.Run("StackProtector", func(t *testing.T) {
		opts := New()
		for _, v := range []StackProtectorMode{SSPOff, SSPOn, SSPReq} {
			opts.SetStackProtector(v)
			assert.Equal(t, v, opts.StackProtector())
		}
	})

	t.Run("SignedOverflowBehavior", func(t *testing.T) {
		opts := New()
		for _, v := range []SignedOverflowBehavior{SOBUndefined, SOBDefined, SOBTrapping} {
			opts.SetSignedOverflowBehavior(v)
			assert.Equal(t, v, opts.SignedOverflowBehavior())
		}
	})

	t.Run("DefaultFPContractMode", func(t *testing.T) {
		opts := New()
		for _, v := range []FPContractMode{FPCOff, FPCOn, FPCFast} {
			opts.SetDefaultFPContractMode(v)
			assert.Equal(t, v, opts.DefaultFPContractMode())
		}
	})
}

func TestEnumSetter_PanicsOnUndeclaredValue(t *testing.T) {
	opts := New()

	assert.Panics(t, func() { opts.SetSignedOverflowBehavior(SignedOverflowBehavior(3)) })
	assert.Panics(t, func() { opts.SetGC(GCMode(7)) })
	assert.Panics(t, func() { opts.SetValueVisibilityMode(Visibility(3)) })

	// a rejected value leaves the previous one in place
	assert.Equal(t, SOBUndefined, opts.SignedOverflowBehavior())
}

func TestEnumString(t *testing.T) {
	assert.Equal(t, "SOBDefined", SOBDefined.String())
	assert.Equal(t, "FPCFast", FPCFast.String())
	assert.Equal(t, "HybridGC", HybridGC.String())
	assert.Equal(t, "SignedOverflowBehavior(9)", SignedOverflowBehavior(9).String())
	assert.False(t, Visibility(3).IsValid())
	assert.True(t, DefaultVisibility.IsValid())
}

func TestIsSignedOverflowDefined(t *testing.T) {
	tests := []struct {
		name     string
		behavior SignedOverflowBehavior
		expected bool
	}{
		{"undefined", SOBUndefined, false},
		{"defined", SOBDefined, true},
		{"trapping", SOBTrapping, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := New()
			opts.SetSignedOverflowBehavior(tt.behavior)
			assert.Equal(t, tt.expected, opts.IsSignedOverflowDefined())
		})
	}
}

func TestHasOverflowHandler(t *testing.T) {
	opts := New()
	opts.OverflowHandler = "__overflow_trap"
	assert.False(t, opts.HasOverflowHandler())

	opts.SetSignedOverflowBehavior(SOBTrapping)
	assert.True(t, opts.HasOverflowHandler())

	opts.OverflowHandler = ""
	assert.False(t, opts.HasOverflowHandler())
}

// customized sets every option away from its default where the width allows
func customized() *LangOptions {
	opts := New()

	opts.C99 = true
	opts.CPlusPlus = true
	opts.CPlusPlus11 = true
	opts.ObjC1 = true
	opts.ObjC2 = true
	opts.OpenCL = true
	opts.OpenCLVersion = 120
	opts.PICLevel = 2
	opts.LaxVectorConversions = false
	opts.SetGC(HybridGC)
	opts.SetValueVisibilityMode(HiddenVisibility)
	opts.SetSignedOverflowBehavior(SOBTrapping)

	opts.PascalStrings = true
	opts.SpellChecking = false
	opts.DebuggerSupport = true
	opts.AccessControl = false
	opts.ElideConstructors = false
	opts.InstantiationDepth = 1024
	opts.ConstexprCallDepth = 64
	opts.NumLargeByValueCopy = 128
	opts.SetStackProtector(SSPReq)
	opts.SetDefaultFPContractMode(FPCFast)

	opts.ObjCRuntime = ObjCRuntime{Kind: GNUstep, Version: NewVersion(1, 7)}
	opts.ObjCConstantStringClass = "NSConstantString"
	opts.OverflowHandler = "__overflow_trap"
	opts.CurrentModule = "Foundation"

	return opts
}

func TestResetNonModularOptions(t *testing.T) {
	opts := customized()
	before := opts.rawValues()

	opts.ResetNonModularOptions()

	after := opts.rawValues()
	for i, info := range optionTable {
		t.Run(info.Name, func(t *testing.T) {
			if info.Benign {
				assert.Equal(t, info.Default, after[i])
			} else {
				assert.Equal(t, before[i], after[i])
			}
		})
	}

	assert.Equal(t, SSPOff, opts.StackProtector())
	assert.Equal(t, FPCOff, opts.DefaultFPContractMode())
	assert.Equal(t, SOBTrapping, opts.SignedOverflowBehavior())
	assert.Equal(t, HybridGC, opts.GC())
	assert.True(t, opts.SpellChecking)
	assert.True(t, opts.CPlusPlus11)

	assert.Equal(t, "", opts.CurrentModule)
	assert.Equal(t, "NSConstantString", opts.ObjCConstantStringClass)
	assert.Equal(t, "__overflow_trap", opts.OverflowHandler)
	assert.Equal(t, GNUstep, opts.ObjCRuntime.Kind)
}

func TestResetNonModularOptions_Idempotent(t *testing.T) {
	once := customized()
	once.ResetNonModularOptions()

	twice := customized()
	twice.ResetNonModularOptions()
	twice.ResetNonModularOptions()

	assert.Equal(t, *once, *twice)
	assert.True(t, once.Equal(twice))
}

func TestResetNonModularOptions_DefaultsUnchanged(t *testing.T) {
	opts := New()
	opts.ResetNonModularOptions()

	assert.True(t, opts.Equal(New()))
}

func TestClone_IsIndependent(t *testing.T) {
	original := customized()
	clone := original.Clone()
	assert.True(t, clone.Equal(original))

	clone.C99 = false
	clone.SetSignedOverflowBehavior(SOBDefined)
	clone.CurrentModule = "Other"

	assert.True(t, original.C99)
	assert.Equal(t, SOBTrapping, original.SignedOverflowBehavior())
	assert.Equal(t, "Foundation", original.CurrentModule)
	assert.False(t, clone.Equal(original))
}

func TestOptions_ReturnsCopy(t *testing.T) {
	table := Options()
	assert.Equal(t, NumOptions, len(table))

	table[0].Name = "changed"

	info, ok := LookupOption("C99")
	assert.True(t, ok)
	assert.Equal(t, "C99", info.Name)
	assert.True(t, info.Modular())

	info, ok = LookupOption("SpellChecking")
	assert.True(t, ok)
	assert.False(t, info.Modular())
	assert.Equal(t, uint64(1), info.Default)

	info, ok = LookupOption("SignedOverflowBehavior")
	assert.True(t, ok)
	assert.Equal(t, EnumOption, info.Kind)
	assert.Equal(t, "enum", info.Kind.String())

	_, ok = LookupOption("NoSuchOption")
	assert.False(t, ok)
}

func TestTranslationUnitKind_String(t *testing.T) {
	assert.Equal(t, "complete", TUComplete.String())
	assert.Equal(t, "prefix", TUPrefix.String())
	assert.Equal(t, "module", TUModule.String())
	assert.Equal(t, "unknown", TranslationUnitKind(9).String())
}
