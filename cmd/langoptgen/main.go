package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
)

const version = "v0.1.0"

// Context represents the global context for commands
type Context struct {
	Verbose bool
	Quiet   bool
	Out     io.Writer
}

// CLI represents the command-line interface
var CLI struct {
	Verbose  bool        `help:"Enable verbose output" short:"v"`
	Quiet    bool        `help:"Suppress output" short:"q"`
	EnvFile  string      `help:"Env file read before flags" name:"env-file" default:".env"`
	Generate GenerateCmd `cmd:"" help:"Generate option storage and accessors from the registry"`
	Check    CheckCmd    `cmd:"" help:"Validate the registry table"`
	List     ListCmd     `cmd:"" help:"List registry entries"`
	Version  VersionCmd  `cmd:"" help:"Show version information"`
}

// VersionCmd represents the version command
type VersionCmd struct{}

// Run executes the version command
func (cmd *VersionCmd) Run(ctx *Context) error {
	fmt.Fprintf(ctx.Out, "langoptgen %s\n", version)
	return nil
}

func main() {
	// .env must be loaded before kong reads env-tagged flags
	if err := loadEnvFiles(envFileFromArgs(os.Args[1:])); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}

	ctx := kong.Parse(&CLI,
		kong.Name("langoptgen"),
		kong.Description("Language option registry code generator"),
	)

	appCtx := &Context{
		Verbose: CLI.Verbose,
		Quiet:   CLI.Quiet,
		Out:     os.Stdout,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
