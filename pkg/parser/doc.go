// Package parser provides a participle-based parser for a practical subset of T-SQL.
//
// The parser builds a typed syntax tree for the statements the formatter
// understands: queries (with common table expressions, set operations, joins,
// derived tables and TOP), INSERT, UPDATE, DELETE and CREATE TABLE. Variant
// nodes are structs of pointer fields where exactly one field is set, which
// lets consumers dispatch with a plain switch:
//
//	script, errs := parser.Check("SELECT id, name FROM users WHERE active = 1")
//	if len(errs) > 0 {
//		for _, e := range errs {
//			fmt.Printf("line %d, column %d: %s\n", e.Line, e.Column, e.Message)
//		}
//		return
//	}
//
//	for _, stmt := range script.Statements {
//		switch {
//		case stmt.Select != nil:
//			// ...
//		case stmt.Insert != nil:
//			// ...
//		}
//	}
//
// Keywords are matched case-insensitively and reserved words are lexed as a
// separate token class, so aliases may omit AS. Identifiers keep their source
// spelling, including [bracket] and "double quote" delimiters.
//
// Comments are not part of the tree. Comments and HasComments expose them so
// callers can warn that formatting drops them.
package parser
