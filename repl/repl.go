// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"

	"grishex/internal/parser"
)

const PROMPT = ">> "

// Start reads lines from in, feeds each through the scanner and parser,
// and prints either the AST or the diagnostics.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			return
		}

		line := scanner.Text()
		program, parseErrors, scanErrors := parser.ParseSource("repl", line)

		if len(scanErrors) > 0 || len(parseErrors) > 0 {
			for _, err := range scanErrors {
				fmt.Fprintf(out, "scan error: line %d, column %d: %s\n",
					err.Position.Line, err.Position.Column, err.Message)
			}
			for _, err := range parseErrors {
				fmt.Fprintf(out, "parse error: %s\n", err.Error())
			}
			continue
		}

		fmt.Fprintf(out, "%s\n", program.String())
	}
}
