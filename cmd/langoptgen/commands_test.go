package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/fatih/color"

	"github.com/shibukawa/langopts/optgen"
)

const testRegistry = `
package: dialect
enums:
  - name: GCMode
    values: [{name: NonGC}, {name: GCOnly}, {name: HybridGC}]
options:
  - {name: C99, bits: 1, default: 0, description: "C99"}
  - {name: SpellChecking, bits: 1, default: 1, description: "spell-checking", benign: true}
  - {name: GC, kind: enum, type: GCMode, bits: 2, default: NonGC, description: "Objective-C Garbage Collection mode"}
extensions:
  - {name: cl_khr_fp64, min_version: 120}
  - {name: cl_khr_fp16}
`

func writeRegistry(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "langoptions.yaml")
	err := os.WriteFile(path, []byte(content), 0o644)
	assert.NoError(t, err)

	return path
}

func newContext() (*Context, *bytes.Buffer) {
	color.NoColor = true

	var out bytes.Buffer

	return &Context{Out: &out}, &out
}

func TestGenerateCmd(t *testing.T) {
	registry := writeRegistry(t, testRegistry)

	t.Run("WritesFile", func(t *testing.T) {
		ctx, out := newContext()
		output := filepath.Join(t.TempDir(), "nested", "zz_generated_langoptions.go")

		cmd := &GenerateCmd{Registry: registry, Output: output}
		err := cmd.Run(ctx)
		assert.NoError(t, err)

		data, err := os.ReadFile(output)
		assert.NoError(t, err)
		assert.Contains(t, string(data), "package dialect")
		assert.Contains(t, string(data), "func (b *Base) SetGC(value GCMode) {")
		assert.Contains(t, out.String(), "Generated "+output)
	})

	t.Run("Stdout", func(t *testing.T) {
		ctx, out := newContext()

		cmd := &GenerateCmd{Registry: registry, Output: "-", Package: "override"}
		err := cmd.Run(ctx)
		assert.NoError(t, err)
		assert.Contains(t, out.String(), "package override")
		assert.Contains(t, out.String(), "from langoptions.yaml. DO NOT EDIT.")
	})

	t.Run("Verbose", func(t *testing.T) {
		ctx, out := newContext()
		ctx.Verbose = true

		cmd := &GenerateCmd{Registry: registry, Output: "-"}
		assert.NoError(t, cmd.Run(ctx))
		assert.Contains(t, out.String(), "Generating 3 options and 2 extensions")
	})

	t.Run("MissingOutput", func(t *testing.T) {
		ctx, _ := newContext()

		cmd := &GenerateCmd{Registry: registry}
		assert.IsError(t, cmd.Run(ctx), ErrOutputRequired)
	})

	t.Run("InvalidRegistry", func(t *testing.T) {
		ctx, _ := newContext()
		broken := writeRegistry(t, "options:\n  - {name: C99, bits: 0}\n")

		cmd := &GenerateCmd{Registry: broken, Output: "-"}
		err := cmd.Run(ctx)
		assert.IsError(t, err, optgen.ErrWidthTooSmall)
		assert.Contains(t, err.Error(), "failed to load registry")
	})
}

func TestCheckCmd(t *testing.T) {
	ctx, out := newContext()

	cmd := &CheckCmd{Registry: writeRegistry(t, testRegistry)}
	assert.NoError(t, cmd.Run(ctx))
	assert.Contains(t, out.String(), "1 enums, 3 options (2 modular, 1 benign), 2 extensions")

	quiet, out := newContext()
	quiet.Quiet = true
	assert.NoError(t, cmd.Run(quiet))
	assert.Equal(t, "", out.String())

	bad := &CheckCmd{Registry: writeRegistry(t, "options:\n  - {name: C99, bits: 1}\n  - {name: C99, bits: 1}\n")}
	assert.IsError(t, bad.Run(ctx), optgen.ErrDuplicateName)
}

func TestListCmd(t *testing.T) {
	registry := writeRegistry(t, testRegistry)

	t.Run("All", func(t *testing.T) {
		ctx, out := newContext()

		cmd := &ListCmd{Registry: registry}
		assert.NoError(t, cmd.Run(ctx))

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		assert.Equal(t, 4, len(lines))
		assert.True(t, strings.HasPrefix(lines[0], "NAME"))
		assert.Contains(t, lines[1], "C99")
		assert.Contains(t, lines[1], "modular")
		assert.Contains(t, lines[2], "benign")
		assert.Contains(t, lines[3], "GCMode")
		assert.Contains(t, lines[3], "NonGC")
	})

	t.Run("BenignOnly", func(t *testing.T) {
		ctx, out := newContext()

		cmd := &ListCmd{Registry: registry, BenignOnly: true}
		assert.NoError(t, cmd.Run(ctx))
		assert.Contains(t, out.String(), "SpellChecking")
		assert.NotContains(t, out.String(), "C99")
	})

	t.Run("ModularOnly", func(t *testing.T) {
		ctx, out := newContext()

		cmd := &ListCmd{Registry: registry, ModularOnly: true}
		assert.NoError(t, cmd.Run(ctx))
		assert.Contains(t, out.String(), "C99")
		assert.NotContains(t, out.String(), "SpellChecking")
	})

	t.Run("Extensions", func(t *testing.T) {
		ctx, out := newContext()

		cmd := &ListCmd{Registry: registry, Extensions: true}
		assert.NoError(t, cmd.Run(ctx))
		assert.Contains(t, out.String(), "cl_khr_fp64")
		assert.Contains(t, out.String(), "120")
		assert.Contains(t, out.String(), "cl_khr_fp16")
	})

	t.Run("ConflictingFilters", func(t *testing.T) {
		ctx, _ := newContext()

		cmd := &ListCmd{Registry: registry, ModularOnly: true, BenignOnly: true}
		assert.IsError(t, cmd.Run(ctx), ErrModularAndBenignFlags)
	})
}

func TestVersionCmd(t *testing.T) {
	ctx, out := newContext()

	cmd := &VersionCmd{}
	assert.NoError(t, cmd.Run(ctx))
	assert.Equal(t, "langoptgen "+version+"\n", out.String())
}
