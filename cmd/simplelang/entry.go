package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"simplelang/interpreter-go/pkg/checker"
	"simplelang/interpreter-go/pkg/driver"
	"simplelang/interpreter-go/pkg/interpreter"
)

func runEntry(args []string, mode executionMode, log zerolog.Logger) int {
	if len(args) > 1 {
		fmt.Fprintf(os.Stderr, "unexpected arguments: %s\n", strings.Join(args[1:], " "))
		return 1
	}
	entryPath, err := resolveEntryPath(args, mode)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return executeEntry(entryPath, mode, log)
}

// resolveEntryPath turns the command argument into a source file: either a
// path given directly, a named manifest target, or the manifest's default
// target when no argument was given.
func resolveEntryPath(args []string, mode executionMode) (string, error) {
	if len(args) == 1 {
		candidate := args[0]
		if looksLikeSourcePath(candidate) {
			return candidate, nil
		}
		manifest, err := driver.FindManifest(".")
		if err != nil {
			if errors.Is(err, driver.ErrManifestNotFound) {
				return "", fmt.Errorf("%q is neither a source file nor a manifest target (%s)", candidate, driver.ManifestFileName)
			}
			return "", fmt.Errorf("failed to load manifest: %w", err)
		}
		target, ok := manifest.FindTarget(candidate)
		if !ok {
			return "", fmt.Errorf("manifest %s has no target %q", manifest.Path, candidate)
		}
		return manifest.ResolveMain(target), nil
	}

	manifest, err := driver.FindManifest(".")
	if err != nil {
		if errors.Is(err, driver.ErrManifestNotFound) {
			return "", fmt.Errorf("%s requires a source file or a %s manifest", modeCommandLabel(mode), driver.ManifestFileName)
		}
		return "", fmt.Errorf("failed to load manifest: %w", err)
	}
	target, err := manifest.DefaultTarget()
	if err != nil {
		return "", err
	}
	return manifest.ResolveMain(target), nil
}

func looksLikeSourcePath(candidate string) bool {
	if strings.HasSuffix(candidate, ".sl") {
		return true
	}
	if strings.ContainsAny(candidate, `/\`) {
		return true
	}
	info, err := os.Stat(candidate)
	return err == nil && info.Mode().IsRegular()
}

func executeEntry(path string, mode executionMode, log zerolog.Logger) int {
	loader := driver.NewLoader(log)
	program, err := loader.LoadProgram(path)
	if err != nil {
		var diagErr *driver.ParserDiagnosticError
		if errors.As(err, &diagErr) {
			fmt.Fprintln(os.Stderr, driver.DescribeParserDiagnostic(diagErr.Diagnostic))
			return 1
		}
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if mode == modeCheck {
		issues := checker.Check(program.Path, program.AST)
		for _, issue := range issues {
			fmt.Fprintln(os.Stderr, checker.Describe(issue))
		}
		if checker.HasErrors(issues) {
			return 1
		}
		fmt.Fprintf(os.Stdout, "%s: ok\n", program.Path)
		return 0
	}

	interp := interpreter.New(interpreter.WithSourcePath(program.Path))
	start := time.Now()
	runErr := interp.Run(program.AST)
	log.Debug().Str("path", program.Path).Dur("elapsed", time.Since(start)).Msg("program finished")
	if runErr != nil {
		diag := interp.BuildRuntimeDiagnostic(runErr)
		fmt.Fprintln(os.Stderr, interpreter.DescribeRuntimeDiagnostic(diag))
		return 1
	}
	return 0
}
