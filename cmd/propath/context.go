package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"propath/bean"
	"propath/options"
)

// Context represents the global context for commands
type Context struct {
	Util    *bean.Util
	Out     io.Writer
	Err     io.Writer
	Palette palette
	Logger  *slog.Logger
}

func newContext(cli *CLI, stdout, stderr io.Writer) *Context {
	logger := newLogger(stderr, cli.Verbose)

	return &Context{
		Util:    bean.New(bean.WithLogger(logger)),
		Out:     stdout,
		Err:     stderr,
		Palette: newPalette(useColor(cli.Color, stdout)),
		Logger:  logger,
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// ModeFlags select the policy of a path operation.
type ModeFlags struct {
	Forced   bool `help:"Create missing structure." env:"PROPATH_FORCED"`
	Declared bool `help:"Allow unexported struct members." env:"PROPATH_DECLARED"`
	Silent   bool `help:"Suppress errors." env:"PROPATH_SILENT"`
}

func (f ModeFlags) Mode() options.Mode {
	var m options.Mode
	if f.Forced {
		m |= options.ModeForced
	}
	if f.Declared {
		m |= options.ModeDeclared
	}
	if f.Silent {
		m |= options.ModeSilent
	}

	return m
}

// envFileArg finds --env-file before kong parses the arguments, since the
// file supplies flag defaults.
func envFileArg(args []string) string {
	for i, arg := range args {
		if v, ok := strings.CutPrefix(arg, "--env-file="); ok {
			return v
		}

		if arg == "--env-file" && i+1 < len(args) {
			return args[i+1]
		}
	}

	return ".env"
}

// loadEnvFile loads path if it exists. Variables already set win.
func loadEnvFile(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}

	return nil
}

func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}

	f, ok := w.(*os.File)

	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

type palette struct {
	ok, fail, warn, added, removed func(a ...any) string
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) func(a ...any) string {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}

		return c.SprintFunc()
	}

	return palette{
		ok:      mk(color.FgGreen),
		fail:    mk(color.FgRed),
		warn:    mk(color.FgYellow),
		added:   mk(color.FgGreen),
		removed: mk(color.FgRed),
	}
}
