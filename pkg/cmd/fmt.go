package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfmt/pkg/sqlfmt"
	"github.com/urfave/cli/v3"
)

type fmtOptions struct {
	write bool
	list  bool
	diff  bool
}

// printing is the default when no other output mode was requested.
func (o fmtOptions) printing() bool {
	return !o.write && !o.list && !o.diff
}

// fmtCmd creates a CLI command for formatting T-SQL files, in the spirit of
// gofmt.
//
// Path handling:
//   - No paths: Read standard input and write the result to standard output
//   - File paths: Format the specified file directly
//   - Directory paths: Recursively find and format all .sql files
//
// Flags:
//   - -w: Write formatted results back to changed source files
//   - -l: List files whose formatting differs
//   - -d: Print a unified diff instead of the formatted text
//
// Files with syntax errors are reported as path:line:column: message and
// left untouched; the command then fails once every path has been processed.
//
// Examples:
//
//	# Format single file to stdout
//	sqlfmt fmt report.sql
//
//	# Format all SQL files in directory tree in-place
//	sqlfmt fmt -w queries/
//
//	# Show what would change
//	sqlfmt fmt -d queries/
func fmtCmd(ws *Workspace) *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "Format SQL files",
		ArgsUsage: "[path...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "Write result to source files instead of stdout",
			},
			&cli.BoolFlag{
				Name:    "list",
				Aliases: []string{"l"},
				Usage:   "List files whose formatting differs",
			},
			&cli.BoolFlag{
				Name:    "diff",
				Aliases: []string{"d"},
				Usage:   "Display diffs instead of rewriting files",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts := fmtOptions{
				write: cmd.Bool("write"),
				list:  cmd.Bool("list"),
				diff:  cmd.Bool("diff"),
			}

			paths := []string{stdinName}
			if cmd.Args().Present() {
				files, err := collectSQLFiles(cmd.Args().Slice())
				if err != nil {
					return err
				}
				paths = files
			} else if opts.write {
				return errors.New("cannot use -w with standard input")
			}

			f := &fileFormatter{
				engine: ws.Engine(),
				opts:   opts,
				stdin:  cmd.Root().Reader,
				out:    cmd.Root().Writer,
				errOut: cmd.Root().ErrWriter,
				ws:     ws,
			}

			failed := 0
			for _, path := range paths {
				ok, err := f.format(path)
				if err != nil {
					return err
				}
				if !ok {
					failed++
				}
			}

			if failed > 0 {
				return errors.Errorf("%d of %d inputs could not be formatted", failed, len(paths))
			}

			return nil
		},
	}
}

type fileFormatter struct {
	engine *sqlfmt.Engine
	opts   fmtOptions
	stdin  io.Reader
	out    io.Writer
	errOut io.Writer
	ws     *Workspace
}

// format handles one input and reports whether it could be formatted. The
// returned error is reserved for I/O failures.
func (f *fileFormatter) format(path string) (bool, error) {
	original, err := readInput(path, f.stdin)
	if err != nil {
		return false, err
	}

	result := f.engine.FormatWithDetails(&original)
	if !result.Success {
		reportErrors(f.errOut, path, result.Errors)
		return false, nil
	}

	for _, w := range result.Warnings {
		f.ws.Logger.Warn(w.Message, "path", path, "line", w.Line)
	}

	// formatted output never ends in a newline, so only echoed input is left as is
	formatted := result.Text()
	if formatted != original {
		formatted += "\n"
	}

	if f.opts.printing() {
		if _, err := fmt.Fprint(f.out, formatted); err != nil {
			return false, errors.Wrap(err, "failed to write formatted content to output")
		}
		return true, nil
	}

	if formatted == original {
		return true, nil
	}

	if f.opts.list {
		fmt.Fprintln(f.out, path)
	}

	if f.opts.diff {
		if err := writeDiff(f.out, path, original, formatted); err != nil {
			return false, err
		}
	}

	if f.opts.write {
		info, err := os.Stat(path)
		if err != nil {
			return false, errors.Wrapf(err, "failed to stat file: %s", path)
		}

		if err := os.WriteFile(path, []byte(formatted), info.Mode().Perm()); err != nil {
			return false, errors.Wrapf(err, "failed to write formatted content to file: %s", path)
		}
	}

	return true, nil
}
