package utils

import "strings"

// QuoteStyle describes how a T-SQL identifier is delimited in source text.
type QuoteStyle int

const (
	// QuoteNone is a regular, undelimited identifier such as users.
	QuoteNone QuoteStyle = iota
	// QuoteBracket is a bracket-delimited identifier such as [order details].
	QuoteBracket
	// QuoteDouble is a double-quote delimited identifier such as "order details".
	QuoteDouble
)

// IdentifierQuote reports the delimiter style of a single identifier part.
//
// Examples:
//   - "users" -> QuoteNone
//   - "[users]" -> QuoteBracket
//   - `"users"` -> QuoteDouble
//   - "" -> QuoteNone
func IdentifierQuote(name string) QuoteStyle {
	switch {
	case IsBracketed(name):
		return QuoteBracket
	case IsDoubleQuoted(name):
		return QuoteDouble
	default:
		return QuoteNone
	}
}

// IsBracketed checks if a string is wrapped in square brackets.
//
// Examples:
//   - "[table]" -> true
//   - "table" -> false
//   - "[" -> false
func IsBracketed(s string) bool {
	return len(s) >= 2 && s[0] == '[' && s[len(s)-1] == ']'
}

// IsDoubleQuoted checks if a string is wrapped in double quotes.
func IsDoubleQuoted(s string) bool {
	return len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"'
}

// Unquote removes the delimiters from an identifier part and collapses escaped
// closing delimiters.
//
// Examples:
//   - "[order]" -> "order"
//   - "[a]]b]" -> "a]b"
//   - `"a""b"` -> `a"b`
//   - "users" -> "users"
func Unquote(s string) string {
	switch IdentifierQuote(s) {
	case QuoteBracket:
		return strings.ReplaceAll(s[1:len(s)-1], "]]", "]")
	case QuoteDouble:
		return strings.ReplaceAll(s[1:len(s)-1], `""`, `"`)
	default:
		return s
	}
}

// BracketIdentifier wraps an identifier in brackets unless it is already delimited.
//
// Examples:
//   - "table" -> "[table]"
//   - "a]b" -> "[a]]b]"
//   - "[table]" -> "[table]"
//   - `"table"` -> `"table"`
//   - "" -> ""
func BracketIdentifier(name string) string {
	if name == "" || IdentifierQuote(name) != QuoteNone {
		return name
	}

	return "[" + strings.ReplaceAll(name, "]", "]]") + "]"
}
