package format

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfmt/pkg/parser"
	"github.com/pseudomuto/sqlfmt/pkg/style"
)

// statementSeparator is written between consecutive statements.
const statementSeparator = "\n\n"

// Formatter renders parsed statements according to a Style.
// A Formatter holds only its own copy of the style and is safe for concurrent use.
type Formatter struct {
	style style.Style
}

// UnhandledNodeError is raised when the formatter meets a syntax node variant
// it has no rendering rule for, e.g. a variant struct with every field unset.
type UnhandledNodeError struct {
	Node any
}

func (e *UnhandledNodeError) Error() string {
	return fmt.Sprintf("unhandled syntax node %T", e.Node)
}

// New creates a new Formatter with the specified style
func New(s style.Style) *Formatter {
	return &Formatter{style: s}
}

// Format writes the formatted statements to w, separated by a blank line.
//
// Rendering a tree that was not produced by the parser may reach a node
// variant with no rendering rule; that is reported as an *UnhandledNodeError
// and nothing is written.
func (f *Formatter) Format(w io.Writer, stmts ...*parser.Statement) (err error) {
	defer func() {
		if r := recover(); r != nil {
			unhandled, ok := r.(*UnhandledNodeError)
			if !ok {
				panic(r)
			}
			err = errors.WithStack(unhandled)
		}
	}()

	out := f.render(stmts)
	if _, err := io.WriteString(w, out); err != nil {
		return errors.Wrap(err, "failed to write formatted SQL")
	}

	return nil
}

// Statement formats a single statement. Unlike Format it panics with an
// *UnhandledNodeError when stmt has no rendering rule.
func (f *Formatter) Statement(stmt *parser.Statement) string {
	return f.render([]*parser.Statement{stmt})
}

// Script formats every statement of a parsed script. Like Statement it panics
// with an *UnhandledNodeError on nodes that have no rendering rule.
func (f *Formatter) Script(script *parser.Script) string {
	if script == nil {
		return ""
	}

	return f.render(script.Statements)
}

// Format formats statements with the given style (convenience function)
func Format(w io.Writer, s style.Style, stmts ...*parser.Statement) error {
	return New(s).Format(w, stmts...)
}

func (f *Formatter) render(stmts []*parser.Statement) string {
	formatted := make([]string, 0, len(stmts))
	for _, stmt := range stmts {
		l := newLayout(&f.style)
		f.statement(l, stmt)
		formatted = append(formatted, strings.TrimRightFunc(l.String(), unicode.IsSpace))
	}

	return strings.Join(formatted, statementSeparator)
}

func (f *Formatter) statement(l layout, stmt *parser.Statement) {
	switch {
	case stmt == nil:
		unhandled(stmt)
	case stmt.Select != nil:
		f.selectStatement(l, stmt.Select)
	case stmt.Insert != nil:
		f.insert(l, stmt.Insert)
	case stmt.Update != nil:
		f.update(l, stmt.Update)
	case stmt.Delete != nil:
		f.delete(l, stmt.Delete)
	case stmt.CreateTable != nil:
		f.createTable(l, stmt.CreateTable)
	default:
		unhandled(stmt)
	}
}

func unhandled(node any) {
	panic(&UnhandledNodeError{Node: node})
}
