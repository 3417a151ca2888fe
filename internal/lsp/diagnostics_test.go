package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"grishex/internal/parser"
	"grishex/token"
)

func TestConvertParseErrors(t *testing.T) {
	parseErrors := []parser.ParseError{
		{
			Message:  "Expected ';' after expression.",
			Position: token.Position{Line: 3, Column: 14, Offset: 40},
			Length:   3,
		},
	}

	diagnostics := ConvertParseErrors(parseErrors)
	assert.Len(t, diagnostics, 1)

	d := diagnostics[0]
	assert.Equal(t, uint32(2), d.Range.Start.Line)
	assert.Equal(t, uint32(13), d.Range.Start.Character)
	assert.Equal(t, uint32(2), d.Range.End.Line)
	assert.Equal(t, uint32(16), d.Range.End.Character)
	assert.Equal(t, "Expected ';' after expression.", d.Message)
	assert.Equal(t, "grishex-parser", *d.Source)
}

func TestConvertParseErrorsZeroLength(t *testing.T) {
	parseErrors := []parser.ParseError{
		{
			Message:  "Expected expression.",
			Position: token.Position{Line: 1, Column: 1},
		},
	}

	diagnostics := ConvertParseErrors(parseErrors)
	assert.Len(t, diagnostics, 1)

	// Zero-length regions are widened so the editor still draws a marker.
	d := diagnostics[0]
	assert.Equal(t, uint32(0), d.Range.Start.Character)
	assert.Equal(t, uint32(1), d.Range.End.Character)
}

func TestConvertScanErrors(t *testing.T) {
	scanErrors := []parser.ScanError{
		{
			Message:  "Unterminated string.",
			Position: token.Position{Line: 2, Column: 5},
			Length:   7,
		},
	}

	diagnostics := ConvertScanErrors(scanErrors)
	assert.Len(t, diagnostics, 1)

	d := diagnostics[0]
	assert.Equal(t, uint32(1), d.Range.Start.Line)
	assert.Equal(t, uint32(4), d.Range.Start.Character)
	assert.Equal(t, uint32(11), d.Range.End.Character)
	assert.Equal(t, "grishex-scanner", *d.Source)
}

func TestConvertEmpty(t *testing.T) {
	assert.Empty(t, ConvertParseErrors(nil))
	assert.Empty(t, ConvertScanErrors(nil))
}
