package parser

type (
	// InsertStatement represents INSERT [INTO] target [(columns)] VALUES ... | SELECT ...
	//
	// Examples:
	//
	//	INSERT INTO users (id, name) VALUES (1, 'a'), (2, 'b')
	//	INSERT INTO archive SELECT * FROM users WHERE active = 0
	InsertStatement struct {
		Target  *MultiPartName   `parser:"'INSERT' 'INTO'? @@"`
		Columns []*Identifier    `parser:"('(' @@ (',' @@)* ')')?"`
		Values  *ValuesClause    `parser:"( @@"`
		Query   *SelectStatement `parser:"| @@ )"`
	}

	// ValuesClause holds one or more row constructors
	ValuesClause struct {
		Rows []*RowValue `parser:"'VALUES' @@ (',' @@)*"`
	}

	// RowValue is a parenthesized list of values
	RowValue struct {
		Values []*Expression `parser:"'(' @@ (',' @@)* ')'"`
	}

	// UpdateStatement represents UPDATE target SET ... [FROM ...] [WHERE ...]
	UpdateStatement struct {
		Target *MultiPartName `parser:"'UPDATE' @@"`
		Set    []*Assignment  `parser:"'SET' @@ (',' @@)*"`
		From   *FromClause    `parser:"@@?"`
		Where  *WhereClause   `parser:"@@?"`
	}

	// Assignment is a single column = value pair in a SET list
	Assignment struct {
		Column *ColumnRef  `parser:"@@"`
		Value  *Expression `parser:"'=' @@"`
	}

	// DeleteStatement represents DELETE [FROM] target [FROM ...] [WHERE ...]
	DeleteStatement struct {
		Target *MultiPartName `parser:"'DELETE' 'FROM'? @@"`
		From   *FromClause    `parser:"@@?"`
		Where  *WhereClause   `parser:"@@?"`
	}
)
