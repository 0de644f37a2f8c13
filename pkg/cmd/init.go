package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfmt/pkg/config"
	"github.com/pseudomuto/sqlfmt/pkg/consts"
	"github.com/urfave/cli/v3"
)

// initCmd writes a style settings file, either for the project in --dir or
// for the current user. The style is the named preset when --preset is given
// and the currently resolved style otherwise.
//
// Examples:
//
//	sqlfmt init
//	sqlfmt init --preset compact --personal
func initCmd(ws *Workspace) *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Write a style settings file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "preset",
				Usage: "the preset to write",
			},
			&cli.BoolFlag{
				Name:  "personal",
				Usage: "write the personal settings file instead of the project file",
			},
			&cli.BoolFlag{
				Name:    "force",
				Aliases: []string{"f"},
				Usage:   "overwrite an existing settings file",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s := ws.Style()
			if name := cmd.String("preset"); name != "" {
				preset, ok := ws.Catalog.Get(name)
				if !ok {
					return errors.Errorf("unknown preset: %s", name)
				}
				s = preset
			}

			path := consts.ProjectConfigFiles[0]
			if cmd.Bool("personal") {
				personal, err := config.PersonalPath()
				if err != nil {
					return err
				}
				path = personal
			} else if existing, ok := config.FindProjectFile("."); ok {
				path = existing
			}

			if _, err := os.Stat(path); err == nil && !cmd.Bool("force") {
				return errors.Errorf("%s already exists (use --force to overwrite)", path)
			}

			if err := config.Save(path, s); err != nil {
				return err
			}

			fmt.Fprintln(cmd.Root().Writer, "Wrote", path)
			return nil
		},
	}
}
