package parser_test

import (
	"strings"
	"testing"

	. "github.com/pseudomuto/sqlfmt/pkg/parser"
	"github.com/pseudomuto/sqlfmt/pkg/utils"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	sql := `SELECT id, name FROM users;
INSERT INTO users (id) VALUES (1);
UPDATE users SET name = 'x' WHERE id = 1;
DELETE FROM users WHERE id = 1;
CREATE TABLE t (id INT)`

	result, err := Parse(strings.NewReader(sql))
	require.NoError(t, err)
	require.Len(t, result.Statements, 5)

	require.NotNil(t, result.Statements[0].Select)
	require.NotNil(t, result.Statements[1].Insert)
	require.NotNil(t, result.Statements[2].Update)
	require.NotNil(t, result.Statements[3].Delete)
	require.NotNil(t, result.Statements[4].CreateTable)

	require.Equal(t, 1, result.Statements[0].Pos.Line)
	require.Equal(t, 5, result.Statements[4].Pos.Line)
}

func TestParseString(t *testing.T) {
	t.Run("empty script", func(t *testing.T) {
		result, err := ParseString("")
		require.NoError(t, err)
		require.Empty(t, result.Statements)
	})

	t.Run("stray semicolons", func(t *testing.T) {
		result, err := ParseString(";;SELECT 1;;SELECT 2;")
		require.NoError(t, err)
		require.Len(t, result.Statements, 2)
	})

	t.Run("statements without separators", func(t *testing.T) {
		result, err := ParseString("SELECT 1 SELECT 2")
		require.NoError(t, err)
		require.Len(t, result.Statements, 2)
	})

	t.Run("keywords are case insensitive", func(t *testing.T) {
		result, err := ParseString("select Id from Users wHeRe Id = 1")
		require.NoError(t, err)
		spec := result.Statements[0].Select.Body.First
		require.NotNil(t, spec.Where)
		require.Equal(t, "Users", spec.From.Sources[0].Primary.Table.Name.String())
	})

	t.Run("invalid sql", func(t *testing.T) {
		_, err := ParseString("SELECT FROM WHERE")
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to parse SQL")
	})
}

func TestIdentifiers(t *testing.T) {
	result, err := ParseString(`SELECT [order id], "select", plain FROM [dbo].[Order Details]`)
	require.NoError(t, err)

	spec := result.Statements[0].Select.Body.First
	require.Len(t, spec.Columns, 3)

	quotes := make([]utils.QuoteStyle, 0, len(spec.Columns))
	for _, col := range spec.Columns {
		ref := col.Expression.Or.Left.Left.Predicate.Left.Left.Left.Primary.Column
		require.NotNil(t, ref)
		quotes = append(quotes, ref.Parts[0].Quote())
	}

	require.Equal(t, []utils.QuoteStyle{utils.QuoteBracket, utils.QuoteDouble, utils.QuoteNone}, quotes)

	table := spec.From.Sources[0].Primary.Table.Name
	require.Equal(t, "[dbo].[Order Details]", table.String())
	require.Equal(t, "Order Details", table.Parts[1].Name())
}

func TestVariablesAndStrings(t *testing.T) {
	result, err := ParseString(`SELECT @@ROWCOUNT, @name, N'unicode', 'it''s', 1.5e3`)
	require.NoError(t, err)

	cols := result.Statements[0].Select.Body.First.Columns
	require.Len(t, cols, 5)

	primary := func(i int) *Primary {
		return cols[i].Expression.Or.Left.Left.Predicate.Left.Left.Left.Primary
	}

	require.Equal(t, "@@ROWCOUNT", primary(0).Variable.Name)
	require.Equal(t, "@name", primary(1).Variable.Name)
	require.Equal(t, "N'unicode'", *primary(2).Literal.String)
	require.Equal(t, "'it''s'", *primary(3).Literal.String)
	require.Equal(t, "1.5e3", *primary(4).Literal.Number)
}
