package format

import "github.com/pseudomuto/sqlfmt/pkg/parser"

// createTable renders CREATE TABLE name with "(" and ")" on their own lines
// and one element per line between them.
func (f *Formatter) createTable(l layout, stmt *parser.CreateTableStatement) {
	l.keyword("CREATE TABLE")
	l.space()
	l.text(stmt.Name.String())
	l.line()
	l.text("(")

	elements := l.indented()
	elements.line()
	elements.list(len(stmt.Elements), onePerLine, func(i int) {
		f.tableElement(elements, stmt.Elements[i])
	})

	l.line()
	l.text(")")
}

func (f *Formatter) tableElement(l layout, element *parser.TableElement) {
	switch {
	case element.Column != nil:
		f.columnDefinition(l, element.Column)
	case element.Constraint != nil:
		f.tableConstraint(l, element.Constraint)
	default:
		unhandled(element)
	}
}

func (f *Formatter) columnDefinition(l layout, col *parser.ColumnDefinition) {
	l.text(col.Name.Value)
	l.space()
	f.dataType(l, col.Type)

	for _, constraint := range col.Constraints {
		l.space()
		f.columnConstraint(l, constraint)
	}
}

func (f *Formatter) columnConstraint(l layout, c *parser.ColumnConstraint) {
	f.constraintName(l, c.Name)

	switch {
	case c.NotNull:
		l.keyword("NOT NULL")
	case c.Null:
		l.keyword("NULL")
	case c.PrimaryKey:
		l.keyword("PRIMARY KEY")
	case c.Unique:
		l.keyword("UNIQUE")
	case c.Default != nil:
		l.keyword("DEFAULT")
		l.space()
		f.expression(l, c.Default)
	case c.Identity != nil:
		l.keyword("IDENTITY")
		if c.Identity.Seed != nil && c.Identity.Increment != nil {
			l.text("(" + *c.Identity.Seed + ", " + *c.Identity.Increment + ")")
		}
	default:
		unhandled(c)
	}
}

func (f *Formatter) tableConstraint(l layout, c *parser.TableConstraint) {
	f.constraintName(l, c.Name)

	switch {
	case len(c.PrimaryKey) > 0:
		l.keyword("PRIMARY KEY")
		l.space()
		f.identifierList(l, c.PrimaryKey)
	case len(c.Unique) > 0:
		l.keyword("UNIQUE")
		l.space()
		f.identifierList(l, c.Unique)
	case c.ForeignKey != nil:
		l.keyword("FOREIGN KEY")
		l.space()
		f.identifierList(l, c.ForeignKey.Columns)
		l.space()
		l.keyword("REFERENCES")
		l.space()
		l.text(c.ForeignKey.References.String())
		if len(c.ForeignKey.RefColumns) > 0 {
			l.space()
			f.identifierList(l, c.ForeignKey.RefColumns)
		}
	default:
		unhandled(c)
	}
}

func (f *Formatter) constraintName(l layout, name *parser.Identifier) {
	if name == nil {
		return
	}

	l.keyword("CONSTRAINT")
	l.space()
	l.text(name.Value)
	l.space()
}
