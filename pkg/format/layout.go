package format

import (
	"strings"

	"github.com/pseudomuto/sqlfmt/pkg/style"
)

// layout is the mechanical output state of one format call: a shared buffer
// and the indentation depth of the current construct. It is passed by value,
// so indented returns a copy for a child and the caller's depth is untouched.
type layout struct {
	buf   *strings.Builder
	style *style.Style
	depth int
}

func newLayout(s *style.Style) layout {
	return layout{buf: &strings.Builder{}, style: s}
}

// keyword appends word with the style's casing applied.
func (l layout) keyword(word string) {
	l.buf.WriteString(l.style.KeywordCasing.Apply(word))
}

// text appends s verbatim.
func (l layout) text(s string) {
	l.buf.WriteString(s)
}

func (l layout) space() {
	l.buf.WriteByte(' ')
}

func (l layout) comma() {
	l.buf.WriteByte(',')
}

func (l layout) newLine() {
	l.buf.WriteByte('\n')
}

// indent appends depth indentation units. Only valid right after newLine.
func (l layout) indent() {
	unit := l.style.Indent.Unit()
	if unit == "" {
		return
	}

	for range l.depth {
		l.buf.WriteString(unit)
	}
}

// line starts a new line at the current depth.
func (l layout) line() {
	l.newLine()
	l.indent()
}

// clause separates two clauses of a statement: a new line when the style puts
// each clause on its own line, a single space otherwise.
func (l layout) clause() {
	if l.style.NewlinePerClause {
		l.line()
		return
	}

	l.space()
}

// operator appends a binary operator, surrounded by spaces when the style asks for it.
func (l layout) operator(op string) {
	if l.style.SpaceAroundOperators {
		l.space()
		l.text(op)
		l.space()
		return
	}

	l.text(op)
}

func (l layout) indented() layout {
	l.depth++
	return l
}

func (l layout) dedented() layout {
	if l.depth > 0 {
		l.depth--
	}
	return l
}

// endsWith reports whether the output so far ends with s.
func (l layout) endsWith(s string) bool {
	return strings.HasSuffix(l.buf.String(), s)
}

func (l layout) String() string {
	return l.buf.String()
}
