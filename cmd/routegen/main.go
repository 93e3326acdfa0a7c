package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/vango-dev/routegen/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┬─┐┌─┐┬ ┬┌┬┐┌─┐┌─┐┌─┐┌┐┌
  ├┬┘│ ││ │ │ ├┤ │ ┬├┤ │││
  ┴└─└─┘└─┘ ┴ └─┘└─┘└─┘┘└┘
`

// noColor disables ANSI colors in status lines, logs and errors.
var noColor bool

func main() {
	cmd, err := newRootCmd().ExecuteC()
	if err != nil {
		reportError(cmd, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "routegen",
		Short: "Typed routes for file-system routed projects",
		Long: `routegen walks a pages/ or app/ route directory and writes a TypeScript
declaration file describing every navigable path.

  • Static routes become string literal types
  • Dynamic segments such as [id] become ${string}
  • Optional declarations retype next/router and next/navigation`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				errors.DisableColors()
			} else {
				errors.EnableColors()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		genCmd(),
		listCmd(),
		initCmd(),
		errorsCmd(),
		versionCmd(),
	)

	return rootCmd
}

// newLogger returns the CLI logger. Debug records are shown when verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    !colorful(w),
	}))
}

// reportError prints the error of a failed command. Commands run with
// --json get a JSON object on stdout; otherwise stderr gets the full
// report on a color terminal and a single line elsewhere.
func reportError(cmd *cobra.Command, err error) {
	ge := errors.FromError(err, "E142")
	stdout, stderr := io.Writer(os.Stdout), io.Writer(os.Stderr)
	if cmd != nil {
		stdout, stderr = cmd.OutOrStdout(), cmd.ErrOrStderr()
	}

	switch {
	case wantsJSON(cmd):
		fmt.Fprintln(stdout, ge.FormatJSON())
	case colorful(stderr):
		errors.FprintError(stderr, ge)
	default:
		fmt.Fprintln(stderr, ge.FormatCompact())
	}
}

func wantsJSON(cmd *cobra.Command) bool {
	if cmd == nil {
		return false
	}
	flag := cmd.Flags().Lookup("json")
	return flag != nil && flag.Value.String() == "true"
}

// colorful reports whether w is a terminal and colors are not disabled.
func colorful(w io.Writer) bool {
	if noColor {
		return false
	}
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// printBanner prints the ASCII art banner.
func printBanner(w io.Writer) {
	fmt.Fprint(w, banner)
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	if !colorful(w) {
		fmt.Fprintf(w, "✓ %s\n", fmt.Sprintf(format, args...))
		return
	}
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(w io.Writer, format string, args ...any) {
	if !colorful(w) {
		fmt.Fprintf(w, "⚠ %s\n", fmt.Sprintf(format, args...))
		return
	}
	fmt.Fprintf(w, "\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}
