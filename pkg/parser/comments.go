package parser

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Comment is a single- or multi-line comment found in the source text.
type Comment struct {
	Text string
	Pos  lexer.Position
}

// Comments returns the comments in sql in source order. Comments are elided
// from the syntax tree, so formatting drops them; callers use this to warn.
// Lexing stops at the first invalid token.
func Comments(sql string) []Comment {
	lex, err := sqlLexer.Lex("", strings.NewReader(sql))
	if err != nil {
		return nil
	}

	symbols := sqlLexer.Symbols()
	single, multi := symbols["Comment"], symbols["MultilineComment"]

	var comments []Comment
	for {
		tok, err := lex.Next()
		if err != nil || tok.EOF() {
			return comments
		}

		if tok.Type == single || tok.Type == multi {
			comments = append(comments, Comment{Text: tok.Value, Pos: tok.Pos})
		}
	}
}

// HasComments reports whether sql contains at least one comment.
func HasComments(sql string) bool {
	return len(Comments(sql)) > 0
}
