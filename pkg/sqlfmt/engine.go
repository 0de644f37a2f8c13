package sqlfmt

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode"

	"github.com/pseudomuto/sqlfmt/pkg/format"
	"github.com/pseudomuto/sqlfmt/pkg/parser"
	"github.com/pseudomuto/sqlfmt/pkg/style"
)

// summaryLimit is the number of errors Summary lists before collapsing the rest.
const summaryLimit = 5

type (
	// Engine formats T-SQL text and translates every failure into a Result.
	// An Engine is immutable once built and is safe for concurrent use.
	Engine struct {
		style    style.Style
		locale   Locale
		logger   *slog.Logger
		messages catalog
		rules    []rewriteRule
		check    func(string) (*parser.Script, []parser.SyntaxError)
		render   func(io.Writer, ...*parser.Statement) error
	}

	// Option configures an Engine.
	Option func(*Engine)
)

// WithStyle sets the formatting style. The default is style.Default.
func WithStyle(s style.Style) Option {
	return func(e *Engine) { e.style = s }
}

// WithLogger sets the logger used for diagnostics. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithLocale selects the language of error and warning messages. Unknown
// locales fall back to English.
func WithLocale(l Locale) Option {
	return func(e *Engine) { e.locale = l }
}

// New creates an Engine.
//
// Example:
//
//	engine := sqlfmt.New(sqlfmt.WithStyle(style.Compact))
//	fmt.Println(engine.FormatString("select id from users"))
func New(opts ...Option) *Engine {
	e := &Engine{
		style:  style.Default,
		locale: English,
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(e)
	}

	messages, ok := catalogs[e.locale]
	if !ok {
		e.locale, messages = English, catalogs[English]
	}

	e.messages = messages
	e.rules = rewriteRules(messages)
	e.check = parser.Check
	e.render = format.New(e.style).Format
	return e
}

func (e *Engine) Style() style.Style {
	return e.style
}

func (e *Engine) Locale() Locale {
	return e.locale
}

// FormatWithDetails formats sql and reports how it went.
//
// A nil input succeeds with a nil text. Input made only of whitespace is
// returned unchanged. When the parser reports errors the result fails, keeps
// the original text and carries one SyntaxError per parser error. A fault
// inside the parser or the formatter is reported as a single InternalError
// instead of propagating.
func (e *Engine) FormatWithDetails(sql *string) (result *Result) {
	if sql == nil {
		return succeeded(nil)
	}

	original := *sql
	if strings.TrimSpace(original) == "" {
		return succeeded(&original)
	}

	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("Formatter panicked", "fault", r)
			result = e.internalError(original, r)
		}
	}()

	e.logger.Debug("Formatting SQL", "bytes", len(original), "locale", string(e.locale))

	script, syntaxErrors := e.check(original)
	if len(syntaxErrors) > 0 {
		errs := e.translate(syntaxErrors)
		e.logger.Info("SQL has syntax errors", "count", len(errs), "first", syntaxErrors[0].Error())
		return failed(original, errs...)
	}

	if len(script.Statements) == 0 {
		return succeeded(&original, Warning{Message: e.messages.empty})
	}

	var buf strings.Builder
	if err := e.render(&buf, script.Statements...); err != nil {
		e.logger.Error("Failed to format SQL", "err", err)
		return e.internalError(original, err)
	}

	formatted := strings.TrimRightFunc(buf.String(), unicode.IsSpace)

	var warnings []Warning
	for _, comment := range parser.Comments(original) {
		warnings = append(warnings, Warning{Message: e.messages.comments, Line: comment.Pos.Line})
	}

	if len(warnings) > 0 {
		e.logger.Warn("Comments were dropped", "count", len(warnings))
	}

	return succeeded(&formatted, warnings...)
}

// Format returns the formatted text, or the original text when formatting
// fails. A nil input yields nil.
func (e *Engine) Format(sql *string) *string {
	return e.FormatWithDetails(sql).Formatted
}

// FormatString is Format for callers that have a plain string.
func (e *Engine) FormatString(sql string) string {
	return e.FormatWithDetails(&sql).Text()
}

// HasSyntaxErrors reports whether sql fails to parse. A parser fault counts as
// an error.
func (e *Engine) HasSyntaxErrors(sql string) bool {
	_, errs := e.check(sql)
	return len(errs) > 0
}

// SyntaxErrors returns the rewritten syntax errors for sql, or nil when it
// parses. A parser fault is returned as a single InternalError.
func (e *Engine) SyntaxErrors(sql string) []Error {
	_, syntaxErrors := e.check(sql)
	if len(syntaxErrors) == 0 {
		return nil
	}

	return e.translate(syntaxErrors)
}

// Summary renders a failed result as a short localized report listing at most
// five errors. It returns the empty string for successful results.
func (e *Engine) Summary(r *Result) string {
	if r == nil || !r.HasErrors() {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(e.messages.heading)
	sb.WriteString("\n\n")

	for _, err := range r.Errors[:min(len(r.Errors), summaryLimit)] {
		sb.WriteString("  ")
		if err.Line > 0 {
			fmt.Fprintf(&sb, e.messages.position, err.Line, err.Column, err.Message)
		} else {
			sb.WriteString(err.Message)
		}
		sb.WriteString("\n")
	}

	if hidden := len(r.Errors) - summaryLimit; hidden > 0 {
		fmt.Fprintf(&sb, "  "+e.messages.remaining+"\n", hidden)
	}

	sb.WriteString("\n")
	sb.WriteString(e.messages.footer)
	return sb.String()
}

func (e *Engine) translate(syntaxErrors []parser.SyntaxError) []Error {
	errs := make([]Error, len(syntaxErrors))
	for i, se := range syntaxErrors {
		if se.Code == parser.CodeInternal {
			errs[i] = Error{Message: fmt.Sprintf(e.messages.internal, se.Message), Kind: InternalError}
			continue
		}

		errs[i] = Error{
			Message: rewrite(e.rules, se.Message),
			Line:    se.Line,
			Column:  se.Column,
			Kind:    SyntaxError,
		}
	}

	return errs
}

func (e *Engine) internalError(original string, fault any) *Result {
	return failed(original, Error{
		Message: fmt.Sprintf(e.messages.internal, fault),
		Kind:    InternalError,
	})
}
