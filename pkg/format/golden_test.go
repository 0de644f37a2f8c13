package format_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/pseudomuto/sqlfmt/pkg/format"
	"github.com/pseudomuto/sqlfmt/pkg/parser"
	"github.com/pseudomuto/sqlfmt/pkg/style"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"
)

// TestGoldenFiles formats testdata/<preset>/*.in.sql with the named preset and
// compares the result with testdata/<preset>/*.sql.
func TestGoldenFiles(t *testing.T) {
	catalog := style.NewCatalog()

	for _, preset := range catalog.Names() {
		s, _ := catalog.Get(preset)

		matches, err := filepath.Glob(filepath.Join("testdata", preset, "*.in.sql"))
		require.NoError(t, err)
		require.NotEmpty(t, matches, "No *.in.sql files found for preset %s", preset)

		for _, inputFile := range matches {
			// Derive output filename: "example.in.sql" -> "example.sql"
			outputName := filepath.Join(preset, strings.TrimSuffix(filepath.Base(inputFile), ".in.sql")+".sql")

			t.Run(outputName, func(t *testing.T) {
				inputSQL, err := os.ReadFile(inputFile)
				require.NoError(t, err, "Failed to read input file %s", inputFile)

				script, err := parser.ParseString(string(inputSQL))
				require.NoError(t, err, "Failed to parse SQL from %s", inputFile)

				var buf bytes.Buffer
				require.NoError(t, Format(&buf, s, script.Statements...))
				result := buf.String()

				// Add final newline for proper file ending
				if result != "" {
					result += "\n"
				}

				golden.Assert(t, result, outputName)
			})
		}
	}
}
