package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

const cliToolVersion = "simplelang-cli 0.1.0-dev"

type executionMode int

const (
	modeRun executionMode = iota
	modeCheck
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	verbose, remaining := parseGlobalFlags(args)
	log := newLogger(verbose)
	if len(remaining) == 0 {
		printUsage()
		return 1
	}

	switch remaining[0] {
	case "--help", "-h":
		printUsage()
		return 0
	case "--version", "-V", "version":
		fmt.Fprintln(os.Stdout, cliToolVersion)
		return 0
	case "run":
		return runEntry(remaining[1:], modeRun, log)
	case "check":
		return runEntry(remaining[1:], modeCheck, log)
	case "repl":
		return runRepl(remaining[1:], log)
	default:
		return runEntry(remaining, modeRun, log)
	}
}

func parseGlobalFlags(args []string) (bool, []string) {
	verbose := false
	remaining := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == "--verbose" {
			verbose = true
			continue
		}
		remaining = append(remaining, arg)
	}
	return verbose, remaining
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
