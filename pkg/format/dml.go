package format

import "github.com/pseudomuto/sqlfmt/pkg/parser"

// insert renders INSERT INTO with the column list one per line between
// parentheses, then either VALUES with one row per line or a query.
func (f *Formatter) insert(l layout, stmt *parser.InsertStatement) {
	l.keyword("INSERT INTO")
	l.space()
	l.text(stmt.Target.String())

	if len(stmt.Columns) > 0 {
		l.space()
		l.text("(")
		columns := l.indented()
		columns.line()
		columns.list(len(stmt.Columns), onePerLine, func(i int) {
			columns.text(stmt.Columns[i].Value)
		})
		l.line()
		l.text(")")
	}

	l.clause()

	switch {
	case stmt.Values != nil:
		l.keyword("VALUES")
		rows := l.indented()
		rows.line()
		rows.list(len(stmt.Values.Rows), onePerLine, func(i int) {
			rows.text("(")
			f.expressionList(rows, stmt.Values.Rows[i].Values)
			rows.text(")")
		})
	case stmt.Query != nil:
		f.selectStatement(l, stmt.Query)
	default:
		unhandled(stmt)
	}
}

// update renders UPDATE target, SET with one assignment per line, and the
// optional FROM and WHERE clauses.
func (f *Formatter) update(l layout, stmt *parser.UpdateStatement) {
	l.keyword("UPDATE")
	l.space()
	l.text(stmt.Target.String())

	l.clause()
	l.keyword("SET")
	assignments := l.indented()
	assignments.line()
	assignments.list(len(stmt.Set), onePerLine, func(i int) {
		set := stmt.Set[i]
		assignments.text(set.Column.String())
		assignments.operator("=")
		f.expression(assignments, set.Value)
	})

	if stmt.From != nil {
		l.clause()
		f.from(l, stmt.From)
	}

	if stmt.Where != nil {
		l.clause()
		f.where(l, stmt.Where)
	}
}

func (f *Formatter) delete(l layout, stmt *parser.DeleteStatement) {
	l.keyword("DELETE FROM")
	l.space()
	l.text(stmt.Target.String())

	if stmt.From != nil {
		l.clause()
		f.from(l, stmt.From)
	}

	if stmt.Where != nil {
		l.clause()
		f.where(l, stmt.Where)
	}
}
