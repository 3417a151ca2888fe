// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"grishex/internal/errors"
	"grishex/internal/parser"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: grishex <file.gx>")
		os.Exit(1)
	}

	startTime := time.Now()
	path := os.Args[1]

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
		os.Exit(1)
	}

	program, parseErrors, scanErrors := parser.ParseSource(path, string(source))

	errorReporter := errors.NewErrorReporter(path, string(source))

	for _, scanErr := range scanErrors {
		fmt.Print(errorReporter.FormatError(errors.FromScanError(path, scanErr)))
	}
	for _, parseErr := range parseErrors {
		fmt.Print(errorReporter.FormatError(errors.FromParseError(path, parseErr)))
	}

	hasErrors := len(scanErrors) > 0 || len(parseErrors) > 0
	duration := time.Since(startTime)
	formattedDuration := formatDuration(duration)

	if hasErrors {
		color.Red("Compilation failed after %s", formattedDuration)
		os.Exit(1)
	}

	fmt.Println(program.String())
	color.Green("Successfully processed %s in %s", path, formattedDuration)
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
