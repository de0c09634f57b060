package main

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/shibukawa/langopts/optgen"
)

// GenerateCmd represents the generate command
type GenerateCmd struct {
	Registry string `help:"Registry table" default:"langoptions.yaml" env:"LANGOPTGEN_REGISTRY" type:"path"`
	Output   string `help:"Output Go file, - for stdout" short:"o" default:"zz_generated_langoptions.go" env:"LANGOPTGEN_OUTPUT"`
	Package  string `help:"Override the package declared in the registry" env:"LANGOPTGEN_PACKAGE"`
}

// Run executes the generate command
func (cmd *GenerateCmd) Run(ctx *Context) error {
	if cmd.Output == "" {
		return ErrOutputRequired
	}

	registry, err := optgen.LoadRegistry(cmd.Registry)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}

	if ctx.Verbose {
		color.New(color.FgBlue).Fprintf(ctx.Out, "Generating %d options and %d extensions from %s\n",
			len(registry.Options), len(registry.Extensions), cmd.Registry)
	}

	var buf bytes.Buffer

	generator := optgen.New(registry,
		optgen.WithPackageName(cmd.Package),
		optgen.WithSource(filepath.Base(cmd.Registry)),
	)
	if err := generator.Generate(&buf); err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}

	if cmd.Output == "-" {
		_, err := ctx.Out.Write(buf.Bytes())
		return err
	}

	if err := writeFile(cmd.Output, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write %s: %w", cmd.Output, err)
	}

	if !ctx.Quiet {
		color.New(color.FgGreen).Fprintf(ctx.Out, "Generated %s\n", cmd.Output)
	}

	return nil
}

// CheckCmd represents the check command
type CheckCmd struct {
	Registry string `help:"Registry table" default:"langoptions.yaml" env:"LANGOPTGEN_REGISTRY" type:"path"`
}

// Run executes the check command
func (cmd *CheckCmd) Run(ctx *Context) error {
	registry, err := optgen.LoadRegistry(cmd.Registry)
	if err != nil {
		return err
	}

	if !ctx.Quiet {
		color.New(color.FgGreen).Fprintf(ctx.Out, "%s: %d enums, %d options (%d modular, %d benign), %d extensions\n",
			cmd.Registry,
			len(registry.Enums),
			len(registry.Options),
			len(registry.ModularOptions()),
			len(registry.BenignOptions()),
			len(registry.Extensions),
		)
	}

	return nil
}

// ListCmd represents the list command
type ListCmd struct {
	Registry    string `help:"Registry table" default:"langoptions.yaml" env:"LANGOPTGEN_REGISTRY" type:"path"`
	ModularOnly bool   `help:"Show only options that must match across modules"`
	BenignOnly  bool   `help:"Show only options reset for module comparison"`
	Extensions  bool   `help:"List extensions instead of options"`
}

// Run executes the list command
func (cmd *ListCmd) Run(ctx *Context) error {
	if cmd.ModularOnly && cmd.BenignOnly {
		return ErrModularAndBenignFlags
	}

	registry, err := optgen.LoadRegistry(cmd.Registry)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}

	w := tabwriter.NewWriter(ctx.Out, 0, 4, 2, ' ', 0)

	if cmd.Extensions {
		fmt.Fprintln(w, "NAME\tMIN VERSION")

		for _, ext := range registry.Extensions {
			gate := "-"
			if ext.MinVersion != 0 {
				gate = fmt.Sprintf("%d", ext.MinVersion)
			}

			fmt.Fprintf(w, "%s\t%s\n", ext.Name, gate)
		}

		return w.Flush()
	}

	options := registry.Options

	switch {
	case cmd.ModularOnly:
		options = registry.ModularOptions()
	case cmd.BenignOnly:
		options = registry.BenignOptions()
	}

	benignLabel := color.New(color.FgYellow).Sprint("benign")
	modularLabel := color.New(color.FgCyan).Sprint("modular")

	fmt.Fprintln(w, "NAME\tKIND\tBITS\tDEFAULT\tCLASS\tDESCRIPTION")

	for _, o := range options {
		class := modularLabel
		if o.Benign {
			class = benignLabel
		}

		kind := string(o.Kind)
		if o.IsEnum() {
			kind = o.Type
		}

		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\n", o.Name, kind, o.Bits, o.DefaultLiteral(), class, o.Description)
	}

	return w.Flush()
}
