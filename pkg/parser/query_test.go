package parser_test

import (
	"testing"

	. "github.com/pseudomuto/sqlfmt/pkg/parser"
	"github.com/stretchr/testify/require"
)

func parseSelect(t *testing.T, sql string) *SelectStatement {
	t.Helper()

	result, err := ParseString(sql)
	require.NoError(t, err)
	require.Len(t, result.Statements, 1)
	require.NotNil(t, result.Statements[0].Select)

	return result.Statements[0].Select
}

func TestSelectList(t *testing.T) {
	stmt := parseSelect(t, "SELECT DISTINCT *, u.*, id, name AS n, email e FROM users u")
	spec := stmt.Body.First

	require.Equal(t, "DISTINCT", spec.Quantifier)
	require.Len(t, spec.Columns, 5)
	require.True(t, spec.Columns[0].Star)
	require.Equal(t, "u", spec.Columns[1].QualifiedStar.Qualifier[0].Value)
	require.NotNil(t, spec.Columns[2].Expression)
	require.Nil(t, spec.Columns[2].Alias)

	require.True(t, spec.Columns[3].Alias.As)
	require.Equal(t, "n", spec.Columns[3].Alias.Name.Value)
	require.False(t, spec.Columns[4].Alias.As)
	require.Equal(t, "e", spec.Columns[4].Alias.Name.Value)

	table := spec.From.Sources[0].Primary.Table
	require.Equal(t, "users", table.Name.String())
	require.Equal(t, "u", table.Alias.Name.Value)
}

func TestTopClause(t *testing.T) {
	tests := []struct {
		name     string
		sql      string
		number   string
		variable string
		paren    bool
		percent  bool
		ties     bool
	}{
		{name: "number", sql: "SELECT TOP 10 id FROM t", number: "10"},
		{name: "variable", sql: "SELECT TOP @n id FROM t", variable: "@n"},
		{name: "parenthesized", sql: "SELECT TOP (10) id FROM t", paren: true},
		{name: "percent", sql: "SELECT TOP 5 PERCENT id FROM t", number: "5", percent: true},
		{name: "with ties", sql: "SELECT TOP (5) WITH TIES id FROM t ORDER BY id", paren: true, ties: true},
		{name: "ties then percent", sql: "SELECT TOP (5) WITH TIES PERCENT id FROM t ORDER BY id", paren: true, ties: true, percent: true},
		{name: "percent then ties", sql: "SELECT TOP (5) PERCENT WITH TIES id FROM t ORDER BY id", paren: true, ties: true, percent: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			top := parseSelect(t, tt.sql).Body.First.Top
			require.NotNil(t, top)
			require.Equal(t, tt.paren, top.Expression != nil)
			require.Equal(t, tt.percent, top.HasPercent())
			require.Equal(t, tt.ties, top.WithTies)

			if tt.number != "" {
				require.Equal(t, tt.number, *top.Count.Number)
			}
			if tt.variable != "" {
				require.Equal(t, tt.variable, *top.Count.Variable)
			}
		})
	}
}

func TestJoins(t *testing.T) {
	stmt := parseSelect(t, `SELECT * FROM a
		INNER JOIN b ON a.id = b.id
		LEFT OUTER JOIN c ON c.id = b.id
		RIGHT JOIN d ON d.id = c.id
		FULL JOIN e ON e.id = d.id
		CROSS JOIN f
		JOIN g ON g.id = a.id`)

	joins := stmt.Body.First.From.Sources[0].Joins
	require.Len(t, joins, 6)

	keywords := make([]string, len(joins))
	for i, j := range joins {
		keywords[i] = j.JoinKeyword()
	}

	require.Equal(t, []string{"INNER JOIN", "LEFT JOIN", "RIGHT JOIN", "FULL JOIN", "CROSS JOIN", "JOIN"}, keywords)
	require.True(t, joins[1].Outer)
	require.Nil(t, joins[4].On)
	require.NotNil(t, joins[5].On)
}

func TestDerivedTable(t *testing.T) {
	stmt := parseSelect(t, "SELECT x.id FROM (SELECT id FROM users) AS x, other")
	sources := stmt.Body.First.From.Sources
	require.Len(t, sources, 2)

	derived := sources[0].Primary.Derived
	require.NotNil(t, derived)
	require.Equal(t, "x", derived.Alias.Name.Value)
	require.NotNil(t, derived.Query.Body.First.From)
	require.NotNil(t, sources[1].Primary.Table)
}

func TestClauses(t *testing.T) {
	stmt := parseSelect(t, `SELECT dept, COUNT(*) total FROM emp
		WHERE active = 1 GROUP BY dept HAVING COUNT(*) > 5 ORDER BY total DESC, dept`)

	spec := stmt.Body.First
	require.NotNil(t, spec.Where)
	require.Len(t, spec.GroupBy.Items, 1)
	require.NotNil(t, spec.Having)

	require.Len(t, stmt.OrderBy.Items, 2)
	require.Equal(t, "DESC", stmt.OrderBy.Items[0].Direction)
	require.Empty(t, stmt.OrderBy.Items[1].Direction)
}

func TestSetOperations(t *testing.T) {
	stmt := parseSelect(t, "SELECT a FROM x UNION ALL SELECT a FROM y EXCEPT SELECT a FROM z INTERSECT SELECT a FROM w")
	require.Len(t, stmt.Body.Rest, 3)
	require.Equal(t, "UNION", stmt.Body.Rest[0].Operator)
	require.True(t, stmt.Body.Rest[0].All)
	require.Equal(t, "EXCEPT", stmt.Body.Rest[1].Operator)
	require.Equal(t, "INTERSECT", stmt.Body.Rest[2].Operator)
}

func TestCommonTableExpressions(t *testing.T) {
	stmt := parseSelect(t, `WITH a (id) AS (SELECT 1), b AS (SELECT id FROM a) SELECT * FROM b`)
	require.NotNil(t, stmt.With)
	require.Len(t, stmt.With.CTEs, 2)
	require.Equal(t, "a", stmt.With.CTEs[0].Name.Value)
	require.Len(t, stmt.With.CTEs[0].Columns, 1)
	require.Empty(t, stmt.With.CTEs[1].Columns)
}
