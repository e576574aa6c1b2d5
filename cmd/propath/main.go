// Package main provides the propath CLI: it reads, writes and checks
// property paths in YAML and JSON documents.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
)

const description = "Read, write and check property paths in YAML and JSON documents."

// CLI represents the command-line interface
type CLI struct {
	EnvFile string `name:"env-file" help:"File of PROPATH_* defaults loaded before parsing." default:".env"`
	Verbose bool   `short:"v" help:"Log structural changes to stderr."`
	Color   string `help:"Colorize output." enum:"auto,always,never" default:"auto" env:"PROPATH_COLOR"`

	Get   GetCmd   `cmd:"" help:"Print the value at a path."`
	Set   SetCmd   `cmd:"" help:"Write a value at a path."`
	Has   HasCmd   `cmd:"" help:"Report whether a path resolves."`
	Type  TypeCmd  `cmd:"" help:"Print the type at a path."`
	Apply ApplyCmd `cmd:"" help:"Run a YAML operation script."`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if err := loadEnvFile(envFileArg(args)); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	var cli CLI

	parser, err := kong.New(&cli,
		kong.Name("propath"),
		kong.Description(description),
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	appCtx := newContext(&cli, stdout, stderr)

	if err := kctx.Run(appCtx); err != nil {
		fmt.Fprintln(stderr, appCtx.Palette.fail("Error: "+err.Error()))
		return 1
	}

	return 0
}
