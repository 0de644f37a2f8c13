package sqlfmt

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// Locale selects the language of rewritten error messages.
type Locale string

const (
	English  Locale = "en"
	Japanese Locale = "ja"
)

// ParseLocale parses a locale tag such as "en", "ja" or "ja-JP".
func ParseLocale(tag string) (Locale, error) {
	lang, _, _ := strings.Cut(strings.ToLower(strings.TrimSpace(tag)), "-")
	lang, _, _ = strings.Cut(lang, "_")

	switch Locale(lang) {
	case English, Japanese:
		return Locale(lang), nil
	case "":
		return English, nil
	default:
		return English, errors.Errorf("unsupported locale: %q", tag)
	}
}

// catalog holds the localized replacement phrases for parser messages.
type catalog struct {
	syntaxNear string // format verb receives the offending token
	unclosed   string // format verb receives the unterminated text
	incomplete string
	missing    string
	expected   string
	internal   string // format verb receives the fault
	comments   string
	empty      string

	// used by Summary
	heading   string
	position  string // format verbs receive line, column and message
	remaining string // format verb receives the hidden error count
	footer    string
}

var catalogs = map[Locale]catalog{
	English: {
		syntaxNear: "Syntax error near '%s'",
		unclosed:   "Unclosed quotation mark after '%s'",
		incomplete: "The SQL is incomplete. A closing parenthesis or clause may be missing",
		missing:    "missing:",
		expected:   "expected syntax:",
		internal:   "An error occurred during formatting: %v",
		comments:   "comment removed during formatting",
		empty:      "no statements to format",
		heading:    "The SQL could not be formatted because it contains syntax errors.",
		position:   "Line %d, Column %d: %s",
		remaining:  "...and %d more errors",
		footer:     "Fix the syntax errors and run the formatter again.",
	},
	Japanese: {
		syntaxNear: "'%s' の近くに構文エラーがあります",
		unclosed:   "'%s' の後の引用符が閉じられていません",
		incomplete: "SQLが不完全です。閉じ括弧や句が不足している可能性があります",
		missing:    "不足しています:",
		expected:   "期待される構文:",
		internal:   "フォーマット中にエラーが発生しました: %v",
		comments:   "フォーマット時にコメントは削除されました",
		empty:      "フォーマットする文がありません",
		heading:    "SQLに構文エラーがあるため、フォーマットできませんでした。",
		position:   "行 %d, 列 %d: %s",
		remaining:  "...他 %d 件のエラー",
		footer:     "構文エラーを修正してから再度実行してください。",
	},
}

var (
	quotedTokenPattern = regexp.MustCompile(`Incorrect syntax near '([^']+)'`)
	unclosedPattern    = regexp.MustCompile(`(?s)^Unclosed quotation mark after the character string '(.*)'\.$`)
)

// rewriteRule turns a raw parser message into a friendlier one. Rules are
// tried in order and the first match wins.
type rewriteRule struct {
	name    string
	match   func(msg string) bool
	rewrite func(msg string) string
}

func rewriteRules(c catalog) []rewriteRule {
	return []rewriteRule{
		{
			name:  "unclosed quotation",
			match: unclosedPattern.MatchString,
			rewrite: func(msg string) string {
				return fmt.Sprintf(c.unclosed, unclosedPattern.FindStringSubmatch(msg)[1])
			},
		},
		{
			name:  "quoted token",
			match: quotedTokenPattern.MatchString,
			rewrite: func(msg string) string {
				return fmt.Sprintf(c.syntaxNear, quotedTokenPattern.FindStringSubmatch(msg)[1])
			},
		},
		{
			name:    "unexpected end of file",
			match:   func(msg string) bool { return strings.Contains(msg, "Unexpected end of file") },
			rewrite: func(string) string { return c.incomplete },
		},
		{
			name:    "missing",
			match:   func(msg string) bool { return strings.Contains(msg, "Missing") },
			rewrite: func(msg string) string { return strings.ReplaceAll(msg, "Missing", c.missing) },
		},
		{
			name:    "expected",
			match:   func(msg string) bool { return strings.Contains(msg, "Expected") },
			rewrite: func(msg string) string { return strings.ReplaceAll(msg, "Expected", c.expected) },
		},
	}
}

func rewrite(rules []rewriteRule, msg string) string {
	for _, rule := range rules {
		if rule.match(msg) {
			return rule.rewrite(msg)
		}
	}

	return msg
}
