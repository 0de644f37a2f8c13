package parser

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// ErrorCode classifies a SyntaxError.
type ErrorCode int

const (
	// CodeSyntax is reported when a token does not fit the grammar.
	CodeSyntax ErrorCode = iota + 1
	// CodeLexical is reported when the input contains text that is not a token.
	CodeLexical
	// CodeUnexpectedEOF is reported when the input ends mid statement.
	CodeUnexpectedEOF
	// CodeInternal is reported when the parser itself failed on the input.
	CodeInternal
)

// SyntaxError is a positioned parse failure. Line and Column are 1-based.
type SyntaxError struct {
	Message string
	Line    int
	Column  int
	Code    ErrorCode
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

// Check parses sql and reports every syntax error it finds. A non-empty error
// list is authoritative: the returned script is nil and must not be formatted.
//
// A fault inside the parser itself is reported as a CodeInternal error rather
// than a panic.
func Check(sql string) (script *Script, errs []SyntaxError) {
	defer func() {
		if r := recover(); r != nil {
			script, errs = nil, []SyntaxError{faultError(sql, r)}
		}
	}()

	script, err := parse(sql)
	if err != nil {
		return nil, []SyntaxError{newSyntaxError(sql, err)}
	}

	return script, nil
}

// parse is replaced in tests to simulate parser faults.
var parse = func(sql string) (*Script, error) {
	return parser.ParseString("", sql)
}

func faultError(sql string, fault any) SyntaxError {
	if err, ok := fault.(error); ok {
		se := newSyntaxError(sql, err)
		se.Code = CodeInternal
		return se
	}

	return SyntaxError{Message: fmt.Sprint(fault), Line: 1, Column: 1, Code: CodeInternal}
}

func newSyntaxError(sql string, err error) SyntaxError {
	var unexpected *participle.UnexpectedTokenError
	if errors.As(err, &unexpected) {
		tok := unexpected.Unexpected
		if tok.EOF() {
			return positioned("Unexpected end of file occurred.", tok.Pos, CodeUnexpectedEOF)
		}

		return positioned(fmt.Sprintf("Incorrect syntax near '%s'.", tok.Value), tok.Pos, CodeSyntax)
	}

	var lexErr *lexer.Error
	if errors.As(err, &lexErr) {
		if text, ok := unclosedText(sql, lexErr.Pos.Offset); ok {
			return positioned(fmt.Sprintf("Unclosed quotation mark after the character string '%s'.", text), lexErr.Pos, CodeLexical)
		}

		return positioned(fmt.Sprintf("Incorrect syntax near '%s'.", nearText(sql, lexErr.Pos.Offset)), lexErr.Pos, CodeLexical)
	}

	var parseErr participle.Error
	if errors.As(err, &parseErr) {
		return positioned(parseErr.Message(), parseErr.Position(), CodeSyntax)
	}

	return SyntaxError{Message: err.Error(), Line: 1, Column: 1, Code: CodeSyntax}
}

func positioned(msg string, pos lexer.Position, code ErrorCode) SyntaxError {
	return SyntaxError{
		Message: msg,
		Line:    max(pos.Line, 1),
		Column:  max(pos.Column, 1),
		Code:    code,
	}
}

// nearText returns the run of non-space text starting at offset.
func nearText(sql string, offset int) string {
	if offset < 0 || offset >= len(sql) {
		return ""
	}

	rest := sql[offset:]
	if end := strings.IndexFunc(rest, unicode.IsSpace); end > 0 {
		return rest[:end]
	}

	return rest
}

// unclosedText reports the text following an opening quote or bracket at
// offset that never gets closed.
func unclosedText(sql string, offset int) (string, bool) {
	if offset < 0 || offset >= len(sql) || !strings.ContainsRune(`'"[`, rune(sql[offset])) {
		return "", false
	}

	return strings.TrimRightFunc(sql[offset+1:], unicode.IsSpace), true
}
