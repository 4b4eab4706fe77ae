// Package main provides the bsdfetch command-line tool for displaying BSD
// system information as labeled, optionally colorized lines.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"

	"bsdfetch/sysinfo"
)

// Set with -ldflags "-X main.version=... -X main.buildDate=...".
var (
	version   = "1.1.0"
	buildDate = ""
)

// debugEnv enables debug tracing on stderr when set.
const debugEnv = "BSDFETCH_DEBUG"

type mode int

const (
	modeFetch mode = iota
	modeNoColor
	modeUsage
	modeVersion
)

// collectorSource builds the collectors lazily so that -h and -v never touch
// the system.
type collectorSource func() ([]sysinfo.Collector, error)

// main is the entry point for the bsdfetch application.
func main() {
	log := newLogger(os.Stderr, os.Getenv(debugEnv) != "")
	tty := isatty.IsTerminal(os.Stdout.Fd())

	source := func() ([]sysinfo.Collector, error) {
		host, err := sysinfo.NewHost(log)
		if err != nil {
			return nil, err
		}
		return host.Collectors(), nil
	}

	os.Exit(run(context.Background(), os.Args, os.Stdout, os.Stderr, tty, source))
}

// run executes one invocation and returns the process exit status. Color is
// only used when stdout is a terminal and -n was not given.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, tty bool, source collectorSource) int {
	prog := "bsdfetch"
	if len(args) > 0 {
		prog = filepath.Base(args[0])
		args = args[1:]
	}

	color := tty
	switch parseMode(args) {
	case modeUsage:
		usage(stdout, prog)
		return 0
	case modeVersion:
		fmt.Fprintf(stdout, "%s - version %s (%s)\n", prog, version, builtOn())
		return 0
	case modeNoColor:
		color = false
	}

	collectors, err := source()
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", prog, err)
		return 1
	}

	if err := sysinfo.Render(ctx, sysinfo.NewPrinter(stdout, color), collectors); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", prog, err)
		return 1
	}
	return 0
}

// parseMode looks at the arguments only when exactly one is given. Anything
// unrecognized is ignored.
func parseMode(args []string) mode {
	if len(args) != 1 {
		return modeFetch
	}
	switch args[0] {
	case "-h":
		return modeUsage
	case "-n":
		return modeNoColor
	case "-v":
		return modeVersion
	}
	return modeFetch
}

// usage prints the help text for -h.
func usage(w io.Writer, prog string) {
	fmt.Fprintf(w, "USAGE: %s [-h|-n|-v]\n"+
		"   -h  Show this help text\n"+
		"   -n  Turn off colors\n"+
		"   -v  Show version\n", prog)
}

// builtOn returns the build date set at link time, or the VCS commit time
// recorded by the Go toolchain.
func builtOn() string {
	if buildDate != "" {
		return buildDate
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.time" {
				return s.Value
			}
		}
	}
	return "unknown"
}

// newLogger returns a stderr logger that only reports warnings unless
// verbose is set.
func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(logrus.WarnLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}
