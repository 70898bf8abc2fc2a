package main

import (
	"fmt"
	"os"
)

func modeCommandLabel(mode executionMode) string {
	switch mode {
	case modeCheck:
		return "simplelang check"
	default:
		return "simplelang run"
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  simplelang [--verbose] run [target]")
	fmt.Fprintln(os.Stderr, "  simplelang [--verbose] run <file.sl>")
	fmt.Fprintln(os.Stderr, "  simplelang [--verbose] <file.sl>")
	fmt.Fprintln(os.Stderr, "  simplelang [--verbose] check [target]")
	fmt.Fprintln(os.Stderr, "  simplelang [--verbose] check <file.sl>")
	fmt.Fprintln(os.Stderr, "  simplelang repl")
	fmt.Fprintln(os.Stderr, "  simplelang version")
}
