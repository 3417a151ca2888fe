package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"
	"grishex/internal/parser"
)

// ConvertParseErrors transforms syntax diagnostics into LSP diagnostics
// for IDE display. LSP positions are 0-based while the parser reports
// 1-based lines and columns.
func ConvertParseErrors(parseErrors []parser.ParseError) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, parseErr := range parseErrors {
		length := parseErr.Length
		if length <= 0 {
			length = 1
		}

		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{
					Line:      uint32(parseErr.Position.Line - 1),
					Character: uint32(parseErr.Position.Column - 1),
				},
				End: protocol.Position{
					Line:      uint32(parseErr.Position.Line - 1),
					Character: uint32(parseErr.Position.Column - 1 + length),
				},
			},
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("grishex-parser"),
			Message:  parseErr.Message,
		})
	}

	return diagnostics
}

// ConvertScanErrors transforms lexical diagnostics into LSP diagnostics
// for IDE display: invalid characters, unterminated strings and
// comments, malformed numbers.
func ConvertScanErrors(scanErrors []parser.ScanError) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, scanErr := range scanErrors {
		length := scanErr.Length
		if length <= 0 {
			length = 1
		}

		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{
					Line:      uint32(scanErr.Position.Line - 1),
					Character: uint32(scanErr.Position.Column - 1),
				},
				End: protocol.Position{
					Line:      uint32(scanErr.Position.Line - 1),
					Character: uint32(scanErr.Position.Column - 1 + length),
				},
			},
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("grishex-scanner"),
			Message:  scanErr.Message,
		})
	}

	return diagnostics
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
