package utils_test

import (
	"testing"

	"github.com/pseudomuto/sqlfmt/pkg/utils"
	"github.com/stretchr/testify/require"
)

func TestIdentifierQuote(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected utils.QuoteStyle
	}{
		{name: "regular identifier", input: "users", expected: utils.QuoteNone},
		{name: "bracketed identifier", input: "[order details]", expected: utils.QuoteBracket},
		{name: "double quoted identifier", input: `"order details"`, expected: utils.QuoteDouble},
		{name: "empty string", input: "", expected: utils.QuoteNone},
		{name: "single bracket", input: "[", expected: utils.QuoteNone},
		{name: "temp table", input: "#staging", expected: utils.QuoteNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, utils.IdentifierQuote(tt.input))
		})
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "regular identifier", input: "users", expected: "users"},
		{name: "bracketed identifier", input: "[order]", expected: "order"},
		{name: "escaped bracket", input: "[a]]b]", expected: "a]b"},
		{name: "double quoted identifier", input: `"select"`, expected: "select"},
		{name: "escaped double quote", input: `"a""b"`, expected: `a"b`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, utils.Unquote(tt.input))
		})
	}
}

func TestBracketIdentifier(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple identifier", input: "table", expected: "[table]"},
		{name: "identifier with spaces", input: "my table", expected: "[my table]"},
		{name: "closing bracket is escaped", input: "a]b", expected: "[a]]b]"},
		{name: "already bracketed", input: "[table]", expected: "[table]"},
		{name: "already double quoted", input: `"table"`, expected: `"table"`},
		{name: "empty string", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := utils.BracketIdentifier(tt.input)
			require.Equal(t, tt.expected, result)
			require.Equal(t, utils.Unquote(result), utils.Unquote(tt.input))
		})
	}
}
