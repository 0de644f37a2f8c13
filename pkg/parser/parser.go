package parser

import (
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// maxLookahead bounds how far a failed alternative may progress before the
// parser stops backtracking. Function calls, qualified stars and column
// references share long multi-part prefixes, hence the generous value.
const maxLookahead = 64

var (
	// reservedWords are lexed as Keyword tokens and can never be used as
	// undelimited identifiers. This is what lets aliases omit AS.
	reservedWords = []string{
		"ALL", "AND", "AS", "ASC", "BETWEEN", "BY", "CASE", "CAST", "CONSTRAINT",
		"CREATE", "CROSS", "DEFAULT", "DELETE", "DESC", "DISTINCT", "ELSE", "END",
		"EXCEPT", "EXISTS", "FOREIGN", "FROM", "FULL", "GROUP", "HAVING", "IDENTITY",
		"IN", "INNER", "INSERT", "INTERSECT", "INTO", "IS", "JOIN", "KEY", "LEFT",
		"LIKE", "NOT", "NULL", "ON", "OR", "ORDER", "OUTER", "PERCENT", "PRIMARY",
		"REFERENCES", "RIGHT", "SELECT", "SET", "TABLE", "THEN", "TOP", "UNION",
		"UNIQUE", "UPDATE", "VALUES", "WHEN", "WHERE", "WITH",
	}

	// sqlLexer defines the lexer for the supported T-SQL subset
	sqlLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `--[^\r\n]*`},
		{Name: "MultilineComment", Pattern: `/\*[^*]*\*+([^/*][^*]*\*+)*/`},
		{Name: "String", Pattern: `[Nn]?'([^']|'')*'`},
		{Name: "BracketIdent", Pattern: `\[[^\]]*(\]\][^\]]*)*\]`},
		{Name: "QuotedIdent", Pattern: `"([^"]|"")*"`},
		{Name: "Variable", Pattern: `@@?[\pL_#$][\pL\pN_@#$]*`},
		{Name: "Number", Pattern: `(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`},
		{Name: "Keyword", Pattern: `(?i:` + strings.Join(reservedWords, "|") + `)\b`},
		{Name: "Ident", Pattern: `[\pL_#][\pL\pN_@#$]*`},
		{Name: "Operator", Pattern: `<>|!=|<=|>=|!<|!>`},
		{Name: "Punct", Pattern: `[(),.;=+\-*/%<>~]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	// parser is the participle parser instance for T-SQL scripts
	parser = participle.MustBuild[Script](
		participle.Lexer(sqlLexer),
		participle.Elide("Comment", "MultilineComment", "Whitespace"),
		participle.CaseInsensitive("Keyword", "Ident"),
		participle.UseLookahead(maxLookahead),
	)
)

type (
	// Script is a sequence of statements, optionally separated by semicolons.
	Script struct {
		Statements []*Statement `parser:"';'* (@@ ';'*)*"`
	}

	// Statement represents one supported statement. Exactly one field is set.
	Statement struct {
		Pos lexer.Position

		Select      *SelectStatement      `parser:"@@"`
		Insert      *InsertStatement      `parser:"| @@"`
		Update      *UpdateStatement      `parser:"| @@"`
		Delete      *DeleteStatement      `parser:"| @@"`
		CreateTable *CreateTableStatement `parser:"| @@"`
	}
)

// Parse parses T-SQL statements from an io.Reader and returns the parsed script.
//
// Example usage:
//
//	file, err := os.Open("report.sql")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer file.Close()
//
//	script, err := parser.Parse(file)
//	if err != nil {
//		log.Fatalf("Parse error: %v", err)
//	}
//
//	for _, stmt := range script.Statements {
//		if stmt.Select != nil {
//			fmt.Println("found a query")
//		}
//	}
//
// Returns an error if the reader cannot be read or contains invalid SQL. Use
// Check to get positioned syntax errors instead of a Go error.
func Parse(reader io.Reader) (*Script, error) {
	script, err := parser.Parse("", reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse SQL")
	}

	return script, nil
}

// ParseString parses T-SQL statements from a string and returns the parsed script.
//
// Example usage:
//
//	script, err := parser.ParseString(`
//		SELECT u.id, u.name
//		FROM users u
//		INNER JOIN orders o ON o.user_id = u.id
//		WHERE o.total > 100;
//	`)
//
// Returns an error if the SQL contains syntax errors.
func ParseString(sql string) (*Script, error) {
	return Parse(strings.NewReader(sql))
}
