// Package utils provides small helpers shared by the parser, formatter and CLI.
//
// # Identifier Utilities (identifier.go)
//
// T-SQL identifiers may be regular (users), bracket-delimited ([order details])
// or double-quote delimited ("order details"). The formatter never changes an
// identifier's spelling, but it needs to know whether a name was delimited in
// order to decide if keyword casing may be applied to it:
//
//	utils.IdentifierQuote("[users]")  // QuoteBracket
//	utils.Unquote("[a]]b]")           // a]b
//	utils.BracketIdentifier("a b")    // [a b]
//
// # Value Utilities (validation.go)
//
// IsNumericValue and IsVariable classify the operand of a TOP clause so that
// simple counts can be emitted without parentheses:
//
//	utils.IsNumericValue("10")   // true
//	utils.IsVariable("@limit")   // true
//
// # Pointer Utilities (ptr.go)
//
//	name := utils.Ptr("users")   // *string
package utils
