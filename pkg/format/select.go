package format

import (
	"github.com/pseudomuto/sqlfmt/pkg/parser"
	"github.com/pseudomuto/sqlfmt/pkg/utils"
)

// selectStatement renders an optional WITH block, the query body and a
// trailing ORDER BY. Every clause starts at l's depth.
func (f *Formatter) selectStatement(l layout, stmt *parser.SelectStatement) {
	if stmt.With != nil {
		f.with(l, stmt.With)
		l.line()
	}

	f.queryExpression(l, stmt.Body)

	if stmt.OrderBy != nil {
		l.clause()
		f.orderBy(l, stmt.OrderBy)
	}
}

func (f *Formatter) with(l layout, with *parser.WithClause) {
	l.keyword("WITH")
	l.space()
	l.list(len(with.CTEs), onePerLine, func(i int) {
		cte := with.CTEs[i]
		l.text(cte.Name.Value)
		if len(cte.Columns) > 0 {
			l.space()
			f.identifierList(l, cte.Columns)
		}
		l.space()
		l.keyword("AS")
		l.space()
		f.subquery(l, cte.Query)
	})
}

func (f *Formatter) queryExpression(l layout, expr *parser.QueryExpression) {
	f.querySpec(l, expr.First)

	for _, op := range expr.Rest {
		l.clause()
		if op.All {
			l.keyword(op.Operator + " ALL")
		} else {
			l.keyword(op.Operator)
		}
		l.clause()
		f.querySpec(l, op.Query)
	}
}

// querySpec renders SELECT with its select list one item per line one level
// deeper, followed by FROM, WHERE, GROUP BY and HAVING.
func (f *Formatter) querySpec(l layout, spec *parser.QuerySpec) {
	l.keyword("SELECT")

	if spec.Quantifier != "" {
		l.space()
		l.keyword(spec.Quantifier)
	}

	if spec.Top != nil {
		l.space()
		f.top(l, spec.Top)
	}

	items := l.indented()
	items.line()
	items.list(len(spec.Columns), onePerLine, func(i int) {
		f.selectItem(items, spec.Columns[i])
	})

	if spec.From != nil {
		l.clause()
		f.from(l, spec.From)
	}

	if spec.Where != nil {
		l.clause()
		f.where(l, spec.Where)
	}

	if spec.GroupBy != nil {
		l.clause()
		l.keyword("GROUP BY")
		l.space()
		f.expressionList(l, spec.GroupBy.Items)
	}

	if spec.Having != nil {
		l.clause()
		l.keyword("HAVING")
		l.space()
		f.expression(l, spec.Having.Condition)
	}
}

// top renders TOP n. The operand is parenthesized when WITH TIES is requested
// or when it is anything but a plain number or variable.
func (f *Formatter) top(l layout, top *parser.TopClause) {
	l.keyword("TOP")
	l.space()

	switch {
	case top.Expression != nil:
		if top.WithTies || !simpleTopOperand(top.Expression) {
			l.text("(")
			f.expression(l, top.Expression)
			l.text(")")
		} else {
			f.expression(l, top.Expression)
		}
	case top.Count != nil:
		f.topCount(l, top)
	default:
		unhandled(top)
	}

	if top.WithTies {
		l.space()
		l.keyword("WITH TIES")
	}

	if top.HasPercent() {
		l.space()
		l.keyword("PERCENT")
	}
}

func (f *Formatter) topCount(l layout, top *parser.TopClause) {
	var value string
	switch {
	case top.Count.Number != nil:
		value = *top.Count.Number
	case top.Count.Variable != nil:
		value = *top.Count.Variable
	default:
		unhandled(top.Count)
	}

	if top.WithTies {
		l.text("(" + value + ")")
		return
	}

	l.text(value)
}

func simpleTopOperand(expr *parser.Expression) bool {
	primary := bareUnary(expr)
	if primary == nil || primary.Operator != "" {
		return false
	}

	switch p := primary.Primary; {
	case p.Literal != nil && p.Literal.Number != nil:
		return utils.IsNumericValue(*p.Literal.Number)
	case p.Variable != nil:
		return utils.IsVariable(p.Variable.Name)
	default:
		return false
	}
}

// bareUnary returns the single unary operand of expr when expr has no
// operators above the unary level.
func bareUnary(expr *parser.Expression) *parser.Unary {
	or := expr.Or
	if len(or.Rest) > 0 || len(or.Left.Rest) > 0 {
		return nil
	}

	pred := or.Left.Left.Predicate
	if pred == nil || pred.Compare != nil || pred.In != nil || pred.Like != nil || pred.Between != nil || pred.IsNull != nil {
		return nil
	}

	if len(pred.Left.Rest) > 0 || len(pred.Left.Left.Rest) > 0 {
		return nil
	}

	return pred.Left.Left.Left
}

func (f *Formatter) selectItem(l layout, item *parser.SelectItem) {
	switch {
	case item.Star:
		l.text("*")
	case item.QualifiedStar != nil:
		l.text(joinIdentifiers(item.QualifiedStar.Qualifier) + ".*")
	case item.Expression != nil:
		f.expression(l, item.Expression)
	default:
		unhandled(item)
	}

	f.alias(l, item.Alias)
}

// alias renders " [AS ]name". AS is emitted only when the style forces it.
func (f *Formatter) alias(l layout, alias *parser.Alias) {
	if alias == nil {
		return
	}

	l.space()
	if f.style.ForceAliasKeyword {
		l.keyword("AS")
		l.space()
	}
	l.text(alias.Name.Value)
}

func (f *Formatter) from(l layout, from *parser.FromClause) {
	l.keyword("FROM")
	l.space()
	l.list(len(from.Sources), inline, func(i int) {
		f.tableSource(l, from.Sources[i])
	})
}

func (f *Formatter) tableSource(l layout, source *parser.TableSource) {
	f.tablePrimary(l, source.Primary)

	for _, join := range source.Joins {
		f.join(l, join)
	}
}

func (f *Formatter) tablePrimary(l layout, primary *parser.TablePrimary) {
	switch {
	case primary.Table != nil:
		l.text(primary.Table.Name.String())
		f.alias(l, primary.Table.Alias)
	case primary.Derived != nil:
		f.subquery(l, primary.Derived.Query)
		f.alias(l, primary.Derived.Alias)
	default:
		unhandled(primary)
	}
}

// join renders a join either on its own line with ON one level deeper, or
// inline after the preceding table.
func (f *Formatter) join(l layout, join *parser.Join) {
	if f.style.JoinOnOwnLine {
		l.line()
	} else {
		l.space()
	}

	l.keyword(join.JoinKeyword())
	l.space()
	f.tablePrimary(l, join.Table)

	if join.On == nil {
		return
	}

	if !f.style.JoinOnOwnLine {
		l.space()
		l.keyword("ON")
		l.space()
		f.expression(l, join.On)
		return
	}

	on := l.indented()
	on.line()
	on.keyword("ON")
	on.space()
	f.expression(on, join.On)
}

func (f *Formatter) where(l layout, where *parser.WhereClause) {
	l.keyword("WHERE")
	l.space()
	f.expression(l, where.Condition)
}

func (f *Formatter) orderBy(l layout, orderBy *parser.OrderByClause) {
	l.keyword("ORDER BY")
	l.space()
	l.list(len(orderBy.Items), inline, func(i int) {
		item := orderBy.Items[i]
		f.expression(l, item.Expression)
		if item.Direction != "" {
			l.space()
			l.keyword(item.Direction)
		}
	})
}

// subquery renders "(", the query on a new line one level deeper, and ")" on
// a new line back at l's depth.
func (f *Formatter) subquery(l layout, query *parser.SelectStatement) {
	l.text("(")

	inner := l.indented()
	inner.line()
	f.selectStatement(inner, query)

	inner.dedented().line()
	l.text(")")
}

func (f *Formatter) identifierList(l layout, idents []*parser.Identifier) {
	l.text("(")
	l.list(len(idents), inline, func(i int) {
		l.text(idents[i].Value)
	})
	l.text(")")
}
