package cmd

import (
	"path/filepath"
	"testing"

	"github.com/pseudomuto/sqlfmt/pkg/cmd/testutil"
	"github.com/stretchr/testify/require"
)

func TestCheckCommand_Files(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, filepath.Join(dir, "good.sql"), unformattedSQL)
	bad := testutil.WriteFile(t, filepath.Join(dir, "bad.sql"), "SELECT id\nFROM users WHERE id = $1")

	out, err := testutil.RunCommand(t, checkCmd(testWorkspace(t)), "", dir)
	testutil.RequireError(t, err, "1 of 2 files have syntax errors")
	require.Equal(t, bad+":2:23: Syntax error near '$1'\n", out.Stderr)
	require.Empty(t, out.Stdout)
}

func TestCheckCommand_Valid(t *testing.T) {
	sqlFile := testutil.WriteFile(t, filepath.Join(t.TempDir(), "ok.sql"), unformattedSQL)

	out, err := testutil.RunCommand(t, checkCmd(testWorkspace(t)), "", sqlFile)
	require.NoError(t, err)
	require.Empty(t, out.Stderr)
}

func TestCheckCommand_StdinSummary(t *testing.T) {
	out, err := testutil.RunCommand(t, checkCmd(testWorkspace(t, Settings{Locale: "ja"})), "SELECT FROM users")
	testutil.RequireError(t, err, "1 syntax errors found")
	require.Contains(t, out.Stderr, "SQLに構文エラーがあるため、フォーマットできませんでした。")
	require.Contains(t, out.Stderr, "行 1, 列 8: 'FROM' の近くに構文エラーがあります")
}

func TestCheckCommand_StdinValid(t *testing.T) {
	out, err := testutil.RunCommand(t, checkCmd(testWorkspace(t)), "select 1")
	require.NoError(t, err)
	require.Empty(t, out.Stderr)
}
