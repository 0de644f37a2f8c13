package parser

import (
	"strings"

	"github.com/pseudomuto/sqlfmt/pkg/utils"
)

// Expressions are layered by precedence from loosest to tightest binding:
//
//	OR
//	AND
//	NOT
//	comparison, [NOT] IN, [NOT] LIKE, [NOT] BETWEEN, IS [NOT] NULL
//	+ -
//	* / %
//	unary - + ~
//	primary
type (
	// Expression is the root of an expression tree
	Expression struct {
		Or *OrExpression `parser:"@@"`
	}

	// OrExpression is one or more AND expressions joined by OR
	OrExpression struct {
		Left *AndExpression `parser:"@@"`
		Rest []*OrTerm      `parser:"@@*"`
	}

	// OrTerm is the right hand side of an OR
	OrTerm struct {
		Right *AndExpression `parser:"'OR' @@"`
	}

	// AndExpression is one or more NOT expressions joined by AND
	AndExpression struct {
		Left *NotExpression `parser:"@@"`
		Rest []*AndTerm     `parser:"@@*"`
	}

	// AndTerm is the right hand side of an AND
	AndTerm struct {
		Right *NotExpression `parser:"'AND' @@"`
	}

	// NotExpression is a negated expression or a predicate. Exactly one field is set.
	NotExpression struct {
		Negated   *NotExpression `parser:"'NOT' @@"`
		Predicate *Predicate     `parser:"| @@"`
	}

	// Predicate is an additive expression optionally followed by a comparison
	// or test. At most one of the trailing fields is set.
	Predicate struct {
		Left    *Additive         `parser:"@@"`
		Compare *Comparison       `parser:"( @@"`
		In      *InPredicate      `parser:"| @@"`
		Like    *LikePredicate    `parser:"| @@"`
		Between *BetweenPredicate `parser:"| @@"`
		IsNull  *IsNullPredicate  `parser:"| @@ )?"`
	}

	// Comparison represents a binary comparison operator and its right operand
	Comparison struct {
		Operator string    `parser:"@('=' | '<>' | '!=' | '<=' | '>=' | '<' | '>' | '!<' | '!>')"`
		Right    *Additive `parser:"@@"`
	}

	// InPredicate represents [NOT] IN (values) or [NOT] IN (subquery)
	InPredicate struct {
		Not      bool             `parser:"@'NOT'? 'IN' '('"`
		Subquery *SelectStatement `parser:"( @@"`
		Values   []*Expression    `parser:"| @@ (',' @@)* ) ')'"`
	}

	// LikePredicate represents [NOT] LIKE pattern
	LikePredicate struct {
		Not     bool      `parser:"@'NOT'? 'LIKE'"`
		Pattern *Additive `parser:"@@"`
	}

	// BetweenPredicate represents [NOT] BETWEEN low AND high
	BetweenPredicate struct {
		Not  bool      `parser:"@'NOT'? 'BETWEEN'"`
		Low  *Additive `parser:"@@"`
		High *Additive `parser:"'AND' @@"`
	}

	// IsNullPredicate represents IS [NOT] NULL
	IsNullPredicate struct {
		Is   string `parser:"'IS'"`
		Not  bool   `parser:"@'NOT'?"`
		Null string `parser:"'NULL'"`
	}

	// Additive is one or more multiplicative expressions joined by + or -
	Additive struct {
		Left *Multiplicative `parser:"@@"`
		Rest []*AdditiveTerm `parser:"@@*"`
	}

	// AdditiveTerm is an operator and its right operand
	AdditiveTerm struct {
		Operator string          `parser:"@('+' | '-')"`
		Right    *Multiplicative `parser:"@@"`
	}

	// Multiplicative is one or more unary expressions joined by *, / or %
	Multiplicative struct {
		Left *Unary                `parser:"@@"`
		Rest []*MultiplicativeTerm `parser:"@@*"`
	}

	// MultiplicativeTerm is an operator and its right operand
	MultiplicativeTerm struct {
		Operator string `parser:"@('*' | '/' | '%')"`
		Right    *Unary `parser:"@@"`
	}

	// Unary is a primary expression with an optional sign or bitwise NOT
	Unary struct {
		Operator string   `parser:"@('-' | '+' | '~')?"`
		Primary  *Primary `parser:"@@"`
	}

	// Primary is the tightest binding expression. Exactly one field is set.
	Primary struct {
		Case     *CaseExpression   `parser:"@@"`
		Cast     *CastExpression   `parser:"| @@"`
		Exists   *ExistsExpression `parser:"| @@"`
		Subquery *Subquery         `parser:"| @@"`
		Paren    *ParenExpression  `parser:"| @@"`
		Function *FunctionCall     `parser:"| @@"`
		Variable *Variable         `parser:"| @@"`
		Literal  *Literal          `parser:"| @@"`
		Column   *ColumnRef        `parser:"| @@"`
	}

	// CaseExpression represents both searched (CASE WHEN cond ...) and simple
	// (CASE input WHEN value ...) forms
	CaseExpression struct {
		Input *Expression   `parser:"'CASE' @@?"`
		Whens []*WhenClause `parser:"@@+"`
		Else  *Expression   `parser:"('ELSE' @@)?"`
		End   string        `parser:"'END'"`
	}

	// WhenClause is a single WHEN ... THEN ... branch
	WhenClause struct {
		When *Expression `parser:"'WHEN' @@"`
		Then *Expression `parser:"'THEN' @@"`
	}

	// CastExpression represents CAST(expr AS type)
	CastExpression struct {
		Value *Expression `parser:"'CAST' '(' @@"`
		Type  *DataType   `parser:"'AS' @@ ')'"`
	}

	// ExistsExpression represents EXISTS (subquery)
	ExistsExpression struct {
		Query *SelectStatement `parser:"'EXISTS' '(' @@ ')'"`
	}

	// Subquery is a parenthesized query used as a value
	Subquery struct {
		Query *SelectStatement `parser:"'(' @@ ')'"`
	}

	// ParenExpression is a parenthesized expression
	ParenExpression struct {
		Expression *Expression `parser:"'(' @@ ')'"`
	}

	// FunctionCall represents name(args), name(*) and name(DISTINCT args).
	// LEFT and RIGHT are reserved words but also valid function names.
	FunctionCall struct {
		Name     []string      `parser:"@(Ident | BracketIdent | QuotedIdent | 'LEFT' | 'RIGHT') ('.' @(Ident | BracketIdent | QuotedIdent))* '('"`
		Star     bool          `parser:"( @'*'"`
		Distinct bool          `parser:"| @'DISTINCT'?"`
		Args     []*Expression `parser:"  @@ (',' @@)* )? ')'"`
	}

	// Variable is a local (@name) or system (@@name) variable
	Variable struct {
		Name string `parser:"@Variable"`
	}

	// Literal is a string, number or NULL. Exactly one field is set.
	Literal struct {
		String *string `parser:"@String"`
		Number *string `parser:"| @Number"`
		Null   bool    `parser:"| @'NULL'"`
	}

	// ColumnRef is a possibly qualified column reference such as u.id
	ColumnRef struct {
		Parts []*Identifier `parser:"@@ ('.' @@)*"`
	}

	// MultiPartName is a possibly qualified object name such as dbo.users
	MultiPartName struct {
		Parts []*Identifier `parser:"@@ ('.' @@)*"`
	}

	// Identifier is a single name part. Value holds the source text including
	// any delimiters.
	Identifier struct {
		Value string `parser:"@(Ident | BracketIdent | QuotedIdent)"`
	}
)

// Quote reports how the identifier was delimited in the source.
func (i *Identifier) Quote() utils.QuoteStyle {
	return utils.IdentifierQuote(i.Value)
}

// Name returns the identifier without delimiters.
func (i *Identifier) Name() string {
	return utils.Unquote(i.Value)
}

func (i *Identifier) String() string {
	return i.Value
}

func (c *ColumnRef) String() string {
	return joinParts(c.Parts)
}

func (n *MultiPartName) String() string {
	return joinParts(n.Parts)
}

// Qualified reports whether the function name has more than one part.
func (f *FunctionCall) Qualified() bool {
	return len(f.Name) > 1
}

// Quoted reports whether any part of the function name is delimited.
func (f *FunctionCall) Quoted() bool {
	for _, part := range f.Name {
		if utils.IdentifierQuote(part) != utils.QuoteNone {
			return true
		}
	}

	return false
}

func joinParts(parts []*Identifier) string {
	names := make([]string, len(parts))
	for i, part := range parts {
		names[i] = part.Value
	}

	return strings.Join(names, ".")
}
