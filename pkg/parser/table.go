package parser

type (
	// CreateTableStatement represents CREATE TABLE name (elements)
	//
	// Example:
	//
	//	CREATE TABLE dbo.users (
	//		id INT IDENTITY(1, 1) PRIMARY KEY,
	//		email NVARCHAR(255) NOT NULL UNIQUE,
	//		team_id INT NULL,
	//		CONSTRAINT fk_team FOREIGN KEY (team_id) REFERENCES teams (id)
	//	)
	CreateTableStatement struct {
		Name     *MultiPartName  `parser:"'CREATE' 'TABLE' @@"`
		Elements []*TableElement `parser:"'(' @@ (',' @@)* ')'"`
	}

	// TableElement is a column definition or a table constraint. Exactly one field is set.
	TableElement struct {
		Constraint *TableConstraint  `parser:"@@"`
		Column     *ColumnDefinition `parser:"| @@"`
	}

	// ColumnDefinition represents a column name, its data type and inline constraints
	ColumnDefinition struct {
		Name        *Identifier         `parser:"@@"`
		Type        *DataType           `parser:"@@"`
		Constraints []*ColumnConstraint `parser:"@@*"`
	}

	// DataType is a type name with optional parameters, e.g. DECIMAL(10, 2) or NVARCHAR(MAX)
	DataType struct {
		Name       *Identifier `parser:"@@"`
		Parameters []string    `parser:"('(' @(Number | Ident) (',' @(Number | Ident))* ')')?"`
	}

	// ColumnConstraint is an inline column constraint. Exactly one of the
	// constraint fields is set; Name is optional.
	ColumnConstraint struct {
		Name       *Identifier   `parser:"('CONSTRAINT' @@)?"`
		NotNull    bool          `parser:"( @('NOT' 'NULL')"`
		Null       bool          `parser:"| @'NULL'"`
		PrimaryKey bool          `parser:"| @('PRIMARY' 'KEY')"`
		Unique     bool          `parser:"| @'UNIQUE'"`
		Default    *Expression   `parser:"| 'DEFAULT' @@"`
		Identity   *IdentitySpec `parser:"| @@ )"`
	}

	// IdentitySpec represents IDENTITY or IDENTITY(seed, increment)
	IdentitySpec struct {
		Identity  bool    `parser:"@'IDENTITY'"`
		Seed      *string `parser:"('(' @('-'? Number)"`
		Increment *string `parser:"',' @('-'? Number) ')')?"`
	}

	// TableConstraint is a table level constraint. Exactly one of the
	// constraint fields is set; Name is optional.
	TableConstraint struct {
		Name       *Identifier   `parser:"('CONSTRAINT' @@)?"`
		PrimaryKey []*Identifier `parser:"( 'PRIMARY' 'KEY' '(' @@ (',' @@)* ')'"`
		Unique     []*Identifier `parser:"| 'UNIQUE' '(' @@ (',' @@)* ')'"`
		ForeignKey *ForeignKey   `parser:"| @@ )"`
	}

	// ForeignKey represents FOREIGN KEY (columns) REFERENCES table [(columns)]
	ForeignKey struct {
		Columns    []*Identifier  `parser:"'FOREIGN' 'KEY' '(' @@ (',' @@)* ')'"`
		References *MultiPartName `parser:"'REFERENCES' @@"`
		RefColumns []*Identifier  `parser:"('(' @@ (',' @@)* ')')?"`
	}
)
