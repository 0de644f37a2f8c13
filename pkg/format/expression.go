package format

import (
	"strings"

	"github.com/pseudomuto/sqlfmt/pkg/parser"
	"github.com/pseudomuto/sqlfmt/pkg/utils"
)

func (f *Formatter) expression(l layout, expr *parser.Expression) {
	if expr == nil || expr.Or == nil {
		unhandled(expr)
	}

	f.or(l, expr.Or)
}

// or and and render every operator on its own line one level deeper than the
// left operand; the right operand continues on the operator's line.
func (f *Formatter) or(l layout, expr *parser.OrExpression) {
	f.and(l, expr.Left)

	for _, term := range expr.Rest {
		f.logicalOperator(l, "OR")
		f.and(l, term.Right)
	}
}

func (f *Formatter) and(l layout, expr *parser.AndExpression) {
	f.not(l, expr.Left)

	for _, term := range expr.Rest {
		f.logicalOperator(l, "AND")
		f.not(l, term.Right)
	}
}

func (f *Formatter) logicalOperator(l layout, op string) {
	line := l.indented()
	line.line()
	line.keyword(op)
	line.space()
}

func (f *Formatter) not(l layout, expr *parser.NotExpression) {
	switch {
	case expr.Negated != nil:
		l.keyword("NOT")
		l.space()
		f.not(l, expr.Negated)
	case expr.Predicate != nil:
		f.predicate(l, expr.Predicate)
	default:
		unhandled(expr)
	}
}

func (f *Formatter) predicate(l layout, pred *parser.Predicate) {
	f.additive(l, pred.Left)

	switch {
	case pred.Compare != nil:
		l.operator(pred.Compare.Operator)
		f.additive(l, pred.Compare.Right)
	case pred.In != nil:
		f.in(l, pred.In)
	case pred.Like != nil:
		l.space()
		l.keyword(negatable(pred.Like.Not, "LIKE"))
		l.space()
		f.additive(l, pred.Like.Pattern)
	case pred.Between != nil:
		l.space()
		l.keyword(negatable(pred.Between.Not, "BETWEEN"))
		l.space()
		f.additive(l, pred.Between.Low)
		l.space()
		l.keyword("AND")
		l.space()
		f.additive(l, pred.Between.High)
	case pred.IsNull != nil:
		l.space()
		if pred.IsNull.Not {
			l.keyword("IS NOT NULL")
		} else {
			l.keyword("IS NULL")
		}
	}
}

func (f *Formatter) in(l layout, in *parser.InPredicate) {
	l.space()
	l.keyword(negatable(in.Not, "IN"))
	l.space()

	if in.Subquery != nil {
		f.subquery(l, in.Subquery)
		return
	}

	l.text("(")
	f.expressionList(l, in.Values)
	l.text(")")
}

func negatable(not bool, keyword string) string {
	if not {
		return "NOT " + keyword
	}

	return keyword
}

func (f *Formatter) additive(l layout, expr *parser.Additive) {
	f.multiplicative(l, expr.Left)

	for _, term := range expr.Rest {
		l.operator(term.Operator)
		f.multiplicative(l, term.Right)
	}
}

func (f *Formatter) multiplicative(l layout, expr *parser.Multiplicative) {
	f.unary(l, expr.Left)

	for _, term := range expr.Rest {
		l.operator(term.Operator)
		f.unary(l, term.Right)
	}
}

func (f *Formatter) unary(l layout, expr *parser.Unary) {
	if expr.Operator != "" {
		// "a - -b" without operator spacing must not collapse into a "--" comment
		if expr.Operator == "-" && l.endsWith("-") {
			l.space()
		}
		l.text(expr.Operator)
	}

	f.primary(l, expr.Primary)
}

func (f *Formatter) primary(l layout, p *parser.Primary) {
	switch {
	case p.Case != nil:
		f.caseExpression(l, p.Case)
	case p.Cast != nil:
		l.keyword("CAST")
		l.text("(")
		f.expression(l, p.Cast.Value)
		l.space()
		l.keyword("AS")
		l.space()
		f.dataType(l, p.Cast.Type)
		l.text(")")
	case p.Exists != nil:
		l.keyword("EXISTS")
		l.space()
		f.subquery(l, p.Exists.Query)
	case p.Subquery != nil:
		f.subquery(l, p.Subquery.Query)
	case p.Paren != nil:
		l.text("(")
		f.expression(l, p.Paren.Expression)
		l.text(")")
	case p.Function != nil:
		f.function(l, p.Function)
	case p.Variable != nil:
		l.text(p.Variable.Name)
	case p.Literal != nil:
		f.literal(l, p.Literal)
	case p.Column != nil:
		l.text(p.Column.String())
	default:
		unhandled(p)
	}
}

// caseExpression renders CASE with every WHEN and ELSE branch on its own line
// one level deeper, and END back at l's depth.
func (f *Formatter) caseExpression(l layout, c *parser.CaseExpression) {
	l.keyword("CASE")
	if c.Input != nil {
		l.space()
		f.expression(l, c.Input)
	}

	branch := l.indented()
	for _, when := range c.Whens {
		branch.line()
		branch.keyword("WHEN")
		branch.space()
		f.expression(branch, when.When)
		branch.space()
		branch.keyword("THEN")
		branch.space()
		f.expression(branch, when.Then)
	}

	if c.Else != nil {
		branch.line()
		branch.keyword("ELSE")
		branch.space()
		f.expression(branch, c.Else)
	}

	l.line()
	l.keyword("END")
}

// function renders a call. Unqualified, undelimited names are cased like
// keywords; anything else is written verbatim.
func (f *Formatter) function(l layout, fn *parser.FunctionCall) {
	name := strings.Join(fn.Name, ".")
	if fn.Qualified() || fn.Quoted() {
		l.text(name)
	} else {
		l.keyword(name)
	}

	l.text("(")
	switch {
	case fn.Star:
		l.text("*")
	default:
		if fn.Distinct {
			l.keyword("DISTINCT")
			l.space()
		}
		f.expressionList(l, fn.Args)
	}
	l.text(")")
}

func (f *Formatter) literal(l layout, lit *parser.Literal) {
	switch {
	case lit.String != nil:
		l.text(*lit.String)
	case lit.Number != nil:
		l.text(*lit.Number)
	case lit.Null:
		l.keyword("NULL")
	default:
		unhandled(lit)
	}
}

// dataType renders a type name with keyword casing unless it is delimited.
// Non-numeric parameters such as MAX are cased as well.
func (f *Formatter) dataType(l layout, dt *parser.DataType) {
	if dt.Name.Quote() == utils.QuoteNone {
		l.keyword(dt.Name.Value)
	} else {
		l.text(dt.Name.Value)
	}

	if len(dt.Parameters) == 0 {
		return
	}

	l.text("(")
	l.list(len(dt.Parameters), inline, func(i int) {
		param := dt.Parameters[i]
		if utils.IsNumericValue(param) {
			l.text(param)
		} else {
			l.keyword(param)
		}
	})
	l.text(")")
}

func (f *Formatter) expressionList(l layout, exprs []*parser.Expression) {
	l.list(len(exprs), inline, func(i int) {
		f.expression(l, exprs[i])
	})
}

func joinIdentifiers(idents []*parser.Identifier) string {
	parts := make([]string, len(idents))
	for i, ident := range idents {
		parts[i] = ident.Value
	}

	return strings.Join(parts, ".")
}
