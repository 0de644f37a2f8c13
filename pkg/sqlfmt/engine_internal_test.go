package sqlfmt

import (
	"io"
	"testing"

	"github.com/pseudomuto/sqlfmt/pkg/format"
	"github.com/pseudomuto/sqlfmt/pkg/parser"
	"github.com/stretchr/testify/require"
)

func TestInternalErrors(t *testing.T) {
	sql := "SELECT id FROM users"

	t.Run("panic", func(t *testing.T) {
		engine := New()
		engine.render = func(io.Writer, ...*parser.Statement) error { panic("boom") }

		result := engine.FormatWithDetails(&sql)
		require.False(t, result.Success)
		require.Equal(t, sql, result.Text())
		require.Equal(t, []Error{{Message: "An error occurred during formatting: boom", Kind: InternalError}}, result.Errors)
		require.Equal(t, "An error occurred during formatting: boom", result.ErrorMessage())
	})

	t.Run("unhandled node", func(t *testing.T) {
		engine := New(WithLocale(Japanese))
		engine.render = func(io.Writer, ...*parser.Statement) error {
			return &format.UnhandledNodeError{Node: &parser.Statement{}}
		}

		result := engine.FormatWithDetails(&sql)
		require.False(t, result.Success)
		require.Len(t, result.Errors, 1)
		require.Equal(t, InternalError, result.Errors[0].Kind)
		require.Equal(t, "フォーマット中にエラーが発生しました: unhandled syntax node *parser.Statement", result.Errors[0].Message)
		require.Zero(t, result.Errors[0].Line)
	})

	t.Run("parser panic", func(t *testing.T) {
		engine := New()
		engine.check = func(string) (*parser.Script, []parser.SyntaxError) { panic("no progress") }

		result := engine.FormatWithDetails(&sql)
		require.False(t, result.Success)
		require.Equal(t, sql, result.Text())
		require.Equal(t, []Error{{Message: "An error occurred during formatting: no progress", Kind: InternalError}}, result.Errors)
	})

	t.Run("parser fault", func(t *testing.T) {
		engine := New()
		engine.check = func(string) (*parser.Script, []parser.SyntaxError) {
			return nil, []parser.SyntaxError{{Message: "no progress", Line: 1, Column: 1, Code: parser.CodeInternal}}
		}

		result := engine.FormatWithDetails(&sql)
		require.False(t, result.Success)
		require.Equal(t, sql, result.Text())
		require.Equal(t, []Error{{Message: "An error occurred during formatting: no progress", Kind: InternalError}}, result.Errors)
		require.True(t, engine.HasSyntaxErrors(sql))
		require.Equal(t, result.Errors, engine.SyntaxErrors(sql))
	})
}

func TestRewrite(t *testing.T) {
	tests := []struct {
		name     string
		locale   Locale
		message  string
		expected string
	}{
		{"quoted token", English, "Incorrect syntax near 'FROM'.", "Syntax error near 'FROM'"},
		{"quoted token ja", Japanese, "Incorrect syntax near 'FROM'.", "'FROM' の近くに構文エラーがあります"},
		{"end of file", English, "Unexpected end of file occurred.", "The SQL is incomplete. A closing parenthesis or clause may be missing"},
		{"missing", English, "Missing ')'", "missing: ')'"},
		{"missing ja", Japanese, "Missing ')'", "不足しています: ')'"},
		{"expected", English, "Expected identifier", "expected syntax: identifier"},
		{"expected ja", Japanese, "Expected identifier", "期待される構文: identifier"},
		{"first match wins", English, "Missing END, Expected CASE", "missing: END, Expected CASE"},
		{"quoted token beats end of file", English, "Incorrect syntax near 'x'. Unexpected end of file", "Syntax error near 'x'"},
		{"unclosed quotation", English, "Unclosed quotation mark after the character string 'abc'.", "Unclosed quotation mark after 'abc'"},
		{"unclosed quotation ja", Japanese, "Unclosed quotation mark after the character string 'abc'.", "'abc' の後の引用符が閉じられていません"},
		{"unclosed quotation with quote", English, "Unclosed quotation mark after the character string 'it''s'.", "Unclosed quotation mark after 'it''s'"},
		{"pass through", English, "something else", "something else"},
		{"unquoted near", English, "Incorrect syntax near x", "Incorrect syntax near x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, rewrite(rewriteRules(catalogs[tt.locale]), tt.message))
		})
	}
}

func TestCatalogsComplete(t *testing.T) {
	for locale, c := range catalogs {
		for name, value := range map[string]string{
			"syntaxNear": c.syntaxNear,
			"unclosed":   c.unclosed,
			"incomplete": c.incomplete,
			"missing":    c.missing,
			"expected":   c.expected,
			"internal":   c.internal,
			"comments":   c.comments,
			"empty":      c.empty,
			"heading":    c.heading,
			"position":   c.position,
			"remaining":  c.remaining,
			"footer":     c.footer,
		} {
			require.NotEmpty(t, value, "%s.%s", locale, name)
		}
	}
}
