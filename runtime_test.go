package langopts

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestParseObjCRuntime(t *testing.T) {
	tests := []struct {
		input    string
		expected ObjCRuntime
	}{
		{"macosx", ObjCRuntime{Kind: MacOSX}},
		{"macosx-10.8", ObjCRuntime{Kind: MacOSX, Version: NewVersion(10, 8)}},
		{"macosx-fragile", ObjCRuntime{Kind: FragileMacOSX}},
		{"macosx-fragile-10.5", ObjCRuntime{Kind: FragileMacOSX, Version: NewVersion(10, 5)}},
		{"ios-6.0", ObjCRuntime{Kind: IOS, Version: NewVersion(6, 0)}},
		{"gcc", ObjCRuntime{Kind: GCC}},
		{"gnustep-1.7.1", ObjCRuntime{Kind: GNUstep, Version: NewVersion(1, 7, 1)}},
		{"objfw-1", ObjCRuntime{Kind: ObjFW, Version: NewVersion(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			runtime, err := ParseObjCRuntime(tt.input)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, runtime)
			assert.Equal(t, tt.input, runtime.String())
		})
	}
}

func TestParseObjCRuntime_Errors(t *testing.T) {
	for _, input := range []string{"", "watchos", "macosx-", "macosx-10.x", "ios-1.2.3.4", "gcc-99999999999"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseObjCRuntime(input)
			assert.IsError(t, err, ErrInvalidObjCRuntime)
		})
	}
}

func TestObjCRuntime_ZeroValue(t *testing.T) {
	var runtime ObjCRuntime
	assert.Equal(t, MacOSX, runtime.Kind)
	assert.True(t, runtime.Version.IsEmpty())
	assert.Equal(t, "macosx", runtime.String())
}

func TestObjCRuntime_Queries(t *testing.T) {
	tests := []struct {
		runtime      string
		nonFragile   bool
		next         bool
		allowsARC    bool
		nativeARC    bool
		subscripting bool
	}{
		{"macosx-10.6", true, true, true, false, false},
		{"macosx-10.8", true, true, true, true, true},
		{"macosx-fragile-10.8", false, true, false, false, false},
		{"ios-5.0", true, true, true, true, false},
		{"ios-6.0", true, true, true, true, true},
		{"gcc", false, false, false, false, false},
		{"gnustep-1.5", true, false, true, false, true},
		{"gnustep-1.6", true, false, true, true, true},
		{"objfw", true, false, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.runtime, func(t *testing.T) {
			runtime, err := ParseObjCRuntime(tt.runtime)
			assert.NoError(t, err)

			assert.Equal(t, tt.nonFragile, runtime.IsNonFragile())
			assert.Equal(t, !tt.nonFragile, runtime.IsFragile())
			assert.Equal(t, tt.next, runtime.IsNeXTFamily())
			assert.Equal(t, !tt.next, runtime.IsGNUFamily())
			assert.Equal(t, tt.allowsARC, runtime.AllowsARC())
			assert.Equal(t, tt.nativeARC, runtime.HasNativeARC())
			assert.Equal(t, tt.subscripting, runtime.HasSubscripting())
		})
	}
}

func TestVersion(t *testing.T) {
	assert.Equal(t, 0, NewVersion(10, 8).Compare(NewVersion(10, 8, 0)))
	assert.Equal(t, -1, NewVersion(10, 7, 5).Compare(NewVersion(10, 8)))
	assert.Equal(t, 1, NewVersion(11).Compare(NewVersion(10, 99)))
	assert.True(t, NewVersion(10, 8).AtLeast(10, 7))
	assert.False(t, Version{}.AtLeast(1))
	assert.Equal(t, "10.8.2", NewVersion(10, 8, 2, 9).String())
	assert.Equal(t, "", Version{}.String())

	v, err := ParseVersion("3.2")
	assert.NoError(t, err)
	assert.Equal(t, NewVersion(3, 2), v)
}
