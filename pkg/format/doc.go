// Package format renders parsed T-SQL statements according to a style.
//
// The formatter walks the syntax tree produced by package parser and emits
// text through a small layout engine that owns the output buffer and the
// current indentation depth. Each construct has one rendering rule, chosen by
// the variant field that is set on its node:
//
//	SELECT
//		u.id
//		, u.name
//	FROM users AS u
//	INNER JOIN orders AS o
//		ON o.user_id = u.id
//	WHERE o.total > 100
//		AND u.active = 1
//
// Usage:
//
//	// Object-oriented API
//	formatter := format.New(style.Default)
//	var buf bytes.Buffer
//	err := formatter.Format(&buf, script.Statements...)
//
//	// Functional API
//	err := format.Format(&buf, style.Compact, script.Statements...)
//
// Statements are separated by a blank line and statement terminators are not
// emitted. Comments are not part of the syntax tree and are therefore dropped.
//
// A node variant with no rendering rule is a programming error: Format
// reports it as an *UnhandledNodeError without writing partial output, while
// Statement and Script panic with it.
package format
