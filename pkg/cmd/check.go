package cmd

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

// checkCmd reports syntax errors without formatting anything. Standard input
// gets the localized summary; files are reported as path:line:column: message.
func checkCmd(ws *Workspace) *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Report syntax errors in SQL files",
		ArgsUsage: "[path...]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			engine := ws.Engine()
			errOut := cmd.Root().ErrWriter

			if !cmd.Args().Present() {
				sql, err := readInput(stdinName, cmd.Root().Reader)
				if err != nil {
					return err
				}

				result := engine.FormatWithDetails(&sql)
				if !result.HasErrors() {
					return nil
				}

				fmt.Fprintln(errOut, engine.Summary(result))
				return errors.Errorf("%d syntax errors found", len(result.Errors))
			}

			files, err := collectSQLFiles(cmd.Args().Slice())
			if err != nil {
				return err
			}

			invalid := 0
			for _, path := range files {
				sql, err := readInput(path, nil)
				if err != nil {
					return err
				}

				if errs := engine.SyntaxErrors(sql); len(errs) > 0 {
					reportErrors(errOut, path, errs)
					invalid++
					continue
				}

				ws.Logger.Debug("No syntax errors", "path", path)
			}

			if invalid > 0 {
				return errors.Errorf("%d of %d files have syntax errors", invalid, len(files))
			}

			return nil
		},
	}
}
