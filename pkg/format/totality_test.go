package format_test

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	. "github.com/pseudomuto/sqlfmt/pkg/format"
	"github.com/pseudomuto/sqlfmt/pkg/parser"
	"github.com/pseudomuto/sqlfmt/pkg/style"
	"github.com/stretchr/testify/require"
)

// corpus exercises every variant of the syntax tree.
var corpus = []string{
	"SELECT *, u.*, id, name AS n, email e FROM users u",
	"SELECT DISTINCT TOP 10 PERCENT id FROM t",
	"SELECT TOP (5) WITH TIES PERCENT id FROM t ORDER BY id DESC",
	"SELECT TOP @n id FROM t",
	"SELECT ALL TOP (@n * 2) id FROM t",
	"SELECT x.id FROM (SELECT id FROM users) x, other o",
	`SELECT a.id FROM a
		INNER JOIN b ON a.id = b.id
		LEFT OUTER JOIN c ON c.id = b.id
		RIGHT JOIN d ON d.id = c.id
		FULL JOIN e ON e.id = d.id
		CROSS JOIN f
		JOIN g ON g.id = a.id AND g.flag = 1`,
	`SELECT CASE WHEN a = 1 THEN 'one' WHEN a = 2 THEN N'two' ELSE NULL END,
		CASE status WHEN 1 THEN 'on' END,
		CAST(price AS DECIMAL(10, 2)),
		(SELECT MAX(id) FROM t),
		(a + b) * -c % 2,
		COUNT(DISTINCT id), COUNT(*), LEFT(name, 3), dbo.fn(), [x].[y](1.5),
		@v, @@ROWCOUNT, ~flags
	FROM t`,
	`SELECT id FROM t WHERE NOT a = 1 OR b <> 2 AND c IN (1, 2) AND d NOT IN (SELECT id FROM x)
		AND e LIKE 'a%' AND f NOT BETWEEN 1 AND 2 AND g IS NULL AND h IS NOT NULL
		AND EXISTS (SELECT 1 FROM y WHERE y.id = t.id)`,
	"SELECT dept, COUNT(*) FROM emp GROUP BY dept HAVING COUNT(*) > 1 ORDER BY dept",
	"WITH a (id) AS (SELECT 1), b AS (SELECT id FROM a) SELECT id FROM b UNION ALL SELECT id FROM a EXCEPT SELECT 2 INTERSECT SELECT 3",
	"INSERT INTO users (id, name) VALUES (1, 'a'), (2, 'b')",
	"INSERT archive SELECT * FROM users WHERE active = 0",
	"UPDATE u SET name = 'x', [count] = [count] + 1 FROM users u JOIN teams t ON t.id = u.team_id WHERE t.active = 1",
	"DELETE users WHERE id = 1",
	"DELETE u FROM users u INNER JOIN bans b ON b.user_id = u.id",
	`CREATE TABLE dbo.users (
		id INT IDENTITY(1, 1) PRIMARY KEY,
		seq BIGINT IDENTITY NOT NULL,
		email NVARCHAR(MAX) NOT NULL UNIQUE,
		score DECIMAL(5, 2) NULL DEFAULT 0,
		team_id INT CONSTRAINT df_team DEFAULT -1,
		CONSTRAINT pk_users PRIMARY KEY (id),
		UNIQUE (email, team_id),
		FOREIGN KEY (team_id) REFERENCES dbo.teams (id)
	)`,
}

// variantFields lists, per variant node type, the fields that select a
// rendering rule. Fields that are not part of the variant are omitted.
var variantFields = map[reflect.Type][]string{
	reflect.TypeOf(parser.Statement{}):        {"Select", "Insert", "Update", "Delete", "CreateTable"},
	reflect.TypeOf(parser.SelectItem{}):       {"Star", "QualifiedStar", "Expression", "Alias"},
	reflect.TypeOf(parser.TablePrimary{}):     {"Derived", "Table"},
	reflect.TypeOf(parser.TopClause{}):        {"Expression", "Count", "Percent", "WithTies", "TrailingPercent"},
	reflect.TypeOf(parser.TopCount{}):         {"Number", "Variable"},
	reflect.TypeOf(parser.NotExpression{}):    {"Negated", "Predicate"},
	reflect.TypeOf(parser.Predicate{}):        {"Compare", "In", "Like", "Between", "IsNull"},
	reflect.TypeOf(parser.InPredicate{}):      {"Subquery", "Values"},
	reflect.TypeOf(parser.Primary{}):          {"Case", "Cast", "Exists", "Subquery", "Paren", "Function", "Variable", "Literal", "Column"},
	reflect.TypeOf(parser.FunctionCall{}):     {"Star", "Distinct", "Args"},
	reflect.TypeOf(parser.Literal{}):          {"String", "Number", "Null"},
	reflect.TypeOf(parser.TableElement{}):     {"Constraint", "Column"},
	reflect.TypeOf(parser.ColumnConstraint{}): {"NotNull", "Null", "PrimaryKey", "Unique", "Default", "Identity"},
	reflect.TypeOf(parser.TableConstraint{}):  {"PrimaryKey", "Unique", "ForeignKey"},
	reflect.TypeOf(parser.InsertStatement{}):  {"Values", "Query"},
}

func TestCorpusCoversEveryVariant(t *testing.T) {
	seen := map[string]bool{}
	for _, sql := range corpus {
		script, err := parser.ParseString(sql)
		require.NoError(t, err, sql)
		collectVariants(reflect.ValueOf(script), seen)
	}

	for typ, fields := range variantFields {
		for _, field := range fields {
			_, ok := typ.FieldByName(field)
			require.True(t, ok, "%s has no field %s", typ.Name(), field)
			require.True(t, seen[typ.Name()+"."+field], "corpus does not exercise %s.%s", typ.Name(), field)
		}
	}
}

func TestFormatIsTotal(t *testing.T) {
	for _, preset := range []style.Style{style.Default, style.Compact} {
		for _, sql := range corpus {
			script, err := parser.ParseString(sql)
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, Format(&buf, preset, script.Statements...), sql)
			require.NotEmpty(t, buf.String())
		}
	}
}

func TestFormatIsIdempotent(t *testing.T) {
	styles := map[string]style.Style{
		"default": style.Default,
		"compact": style.Compact,
		"lower": withStyle(style.Default, func(s *style.Style) {
			s.KeywordCasing = style.Lower
			s.SpaceAroundOperators = false
		}),
		"pascal single line": withStyle(style.Compact, func(s *style.Style) {
			s.KeywordCasing = style.Pascal
			s.NewlinePerClause = false
			s.ForceAliasKeyword = true
		}),
	}

	for name, s := range styles {
		t.Run(name, func(t *testing.T) {
			for _, sql := range corpus {
				once := formatSQL(t, s, sql)
				twice := formatSQL(t, s, once)
				require.Equal(t, once, twice, sql)
			}
		})
	}
}

func TestFormatPreservesStringsAndIdentifiers(t *testing.T) {
	formatted := formatSQL(t, style.Default, "select 'MixedCase -- text', [Select], \"From\" from [Order Details]")

	for _, fragment := range []string{"'MixedCase -- text'", "[Select]", `"From"`, "[Order Details]"} {
		require.True(t, strings.Contains(formatted, fragment), "missing %s in %s", fragment, formatted)
	}
}

func collectVariants(v reflect.Value, seen map[string]bool) {
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		if !v.IsNil() {
			collectVariants(v.Elem(), seen)
		}
	case reflect.Slice:
		for i := range v.Len() {
			collectVariants(v.Index(i), seen)
		}
	case reflect.Struct:
		typ := v.Type()
		if _, ok := variantFields[typ]; ok {
			for i := range typ.NumField() {
				if !v.Field(i).IsZero() {
					seen[typ.Name()+"."+typ.Field(i).Name] = true
				}
			}
		}

		for i := range typ.NumField() {
			if typ.Field(i).IsExported() {
				collectVariants(v.Field(i), seen)
			}
		}
	}
}
