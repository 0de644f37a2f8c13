package parser

type (
	// SelectStatement represents a complete query: optional common table
	// expressions, one or more query specifications joined by set operators,
	// and an optional ORDER BY applying to the whole result.
	//
	// Example:
	//
	//	WITH recent AS (SELECT id FROM orders WHERE created > @since)
	//	SELECT id FROM recent
	//	UNION ALL
	//	SELECT id FROM archive
	//	ORDER BY id DESC
	SelectStatement struct {
		With    *WithClause      `parser:"@@?"`
		Body    *QueryExpression `parser:"@@"`
		OrderBy *OrderByClause   `parser:"@@?"`
	}

	// WithClause holds the common table expressions of a query
	WithClause struct {
		CTEs []*CommonTableExpression `parser:"'WITH' @@ (',' @@)*"`
	}

	// CommonTableExpression is a single named query in a WITH clause
	CommonTableExpression struct {
		Name    *Identifier      `parser:"@@"`
		Columns []*Identifier    `parser:"('(' @@ (',' @@)* ')')?"`
		Query   *SelectStatement `parser:"'AS' '(' @@ ')'"`
	}

	// QueryExpression is a query specification followed by any number of set operations
	QueryExpression struct {
		First *QuerySpec      `parser:"@@"`
		Rest  []*SetOperation `parser:"@@*"`
	}

	// SetOperation combines the preceding query with another one
	SetOperation struct {
		Operator string     `parser:"@('UNION' | 'EXCEPT' | 'INTERSECT')"`
		All      bool       `parser:"@'ALL'?"`
		Query    *QuerySpec `parser:"@@"`
	}

	// QuerySpec represents a single SELECT ... FROM ... WHERE ... block
	QuerySpec struct {
		Select     string         `parser:"'SELECT'"`
		Quantifier string         `parser:"@('DISTINCT' | 'ALL')?"`
		Top        *TopClause     `parser:"@@?"`
		Columns    []*SelectItem  `parser:"@@ (',' @@)*"`
		From       *FromClause    `parser:"@@?"`
		Where      *WhereClause   `parser:"@@?"`
		GroupBy    *GroupByClause `parser:"@@?"`
		Having     *HavingClause  `parser:"@@?"`
	}

	// TopClause represents TOP n, TOP (expr), optionally with PERCENT and WITH TIES.
	// PERCENT is accepted on either side of WITH TIES.
	TopClause struct {
		Expression      *Expression `parser:"'TOP' ( '(' @@ ')'"`
		Count           *TopCount   `parser:"| @@ )"`
		Percent         bool        `parser:"@'PERCENT'?"`
		WithTies        bool        `parser:"@('WITH' 'TIES')?"`
		TrailingPercent bool        `parser:"@'PERCENT'?"`
	}

	// TopCount is an unparenthesized TOP operand
	TopCount struct {
		Number   *string `parser:"@Number"`
		Variable *string `parser:"| @Variable"`
	}

	// SelectItem is a single entry in a select list
	SelectItem struct {
		Star          bool           `parser:"@'*'"`
		QualifiedStar *QualifiedStar `parser:"| @@"`
		Expression    *Expression    `parser:"| @@"`
		Alias         *Alias         `parser:"@@?"`
	}

	// QualifiedStar represents table.* or schema.table.*
	QualifiedStar struct {
		Qualifier []*Identifier `parser:"@@ '.' (@@ '.')*"`
		Star      string        `parser:"'*'"`
	}

	// Alias names a select item or table source. AS records whether the
	// source text used the AS keyword.
	Alias struct {
		As   bool        `parser:"@'AS'?"`
		Name *Identifier `parser:"@@"`
	}

	// FromClause lists the comma separated table sources of a query
	FromClause struct {
		Sources []*TableSource `parser:"'FROM' @@ (',' @@)*"`
	}

	// TableSource is a table followed by any number of joins
	TableSource struct {
		Primary *TablePrimary `parser:"@@"`
		Joins   []*Join       `parser:"@@*"`
	}

	// TablePrimary is a named table or a derived table. Exactly one field is set.
	TablePrimary struct {
		Derived *DerivedTable `parser:"@@"`
		Table   *TableName    `parser:"| @@"`
	}

	// TableName is a possibly qualified table reference
	TableName struct {
		Name  *MultiPartName `parser:"@@"`
		Alias *Alias         `parser:"@@?"`
	}

	// DerivedTable is a parenthesized subquery used as a table
	DerivedTable struct {
		Query *SelectStatement `parser:"'(' @@ ')'"`
		Alias *Alias           `parser:"@@?"`
	}

	// Join represents a qualified or cross join. Type is empty for a bare JOIN.
	Join struct {
		Type  string        `parser:"@('INNER' | 'LEFT' | 'RIGHT' | 'FULL' | 'CROSS')?"`
		Outer bool          `parser:"@'OUTER'?"`
		Join  string        `parser:"'JOIN'"`
		Table *TablePrimary `parser:"@@"`
		On    *Expression   `parser:"('ON' @@)?"`
	}

	// WhereClause holds a search condition
	WhereClause struct {
		Condition *Expression `parser:"'WHERE' @@"`
	}

	// GroupByClause holds grouping expressions
	GroupByClause struct {
		Items []*Expression `parser:"'GROUP' 'BY' @@ (',' @@)*"`
	}

	// HavingClause holds a group filter condition
	HavingClause struct {
		Condition *Expression `parser:"'HAVING' @@"`
	}

	// OrderByClause holds sort specifications
	OrderByClause struct {
		Items []*OrderItem `parser:"'ORDER' 'BY' @@ (',' @@)*"`
	}

	// OrderItem is one sort key with an optional direction
	OrderItem struct {
		Expression *Expression `parser:"@@"`
		Direction  string      `parser:"@('ASC' | 'DESC')?"`
	}
)

// HasPercent reports whether PERCENT was given in either position.
func (t *TopClause) HasPercent() bool {
	return t.Percent || t.TrailingPercent
}

// JoinKeyword returns the canonical join keyword, dropping OUTER,
// e.g. "LEFT JOIN" for LEFT OUTER JOIN and "JOIN" for a bare join.
func (j *Join) JoinKeyword() string {
	if j.Type == "" {
		return "JOIN"
	}

	return j.Type + " JOIN"
}
