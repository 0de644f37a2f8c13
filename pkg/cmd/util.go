package cmd

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/pseudomuto/sqlfmt/pkg/consts"
	"github.com/pseudomuto/sqlfmt/pkg/sqlfmt"
)

const stdinName = "<standard input>"

func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to resolve path: %s", path)
	}

	return abs, nil
}

// collectSQLFiles expands the given paths into a list of files. Files are kept
// as given; directories are walked recursively for .sql files, which are
// returned in lexical order.
func collectSQLFiles(paths []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to access path: %s", path)
		}

		if !info.IsDir() {
			files = append(files, path)
			continue
		}

		var found []string
		err = filepath.WalkDir(path, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if !d.IsDir() && strings.EqualFold(filepath.Ext(d.Name()), consts.SQLExtension) {
				found = append(found, path)
			}

			return nil
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to walk directory: %s", path)
		}

		if len(found) == 0 {
			return nil, errors.Errorf("no SQL files found in directory: %s", path)
		}

		slices.Sort(found)
		files = append(files, found...)
	}

	return files, nil
}

func readInput(path string, stdin io.Reader) (string, error) {
	if path == stdinName {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", errors.Wrap(err, "failed to read standard input")
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read file: %s", path)
	}

	return string(data), nil
}

// reportErrors writes one path:line:column: message line per error.
func reportErrors(w io.Writer, path string, errs []sqlfmt.Error) {
	for _, err := range errs {
		if err.Line > 0 {
			fmt.Fprintf(w, "%s:%d:%d: %s\n", path, err.Line, err.Column, err.Message)
		} else {
			fmt.Fprintf(w, "%s: %s\n", path, err.Message)
		}
	}
}

func writeDiff(w io.Writer, path, original, formatted string) error {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(original),
		B:        difflib.SplitLines(formatted),
		FromFile: path + ".orig",
		ToFile:   path,
		Context:  3,
	})
	if err != nil {
		return errors.Wrapf(err, "failed to diff: %s", path)
	}

	if _, err := io.WriteString(w, diff); err != nil {
		return errors.Wrap(err, "failed to write diff")
	}

	return nil
}
