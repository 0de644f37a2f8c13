package cmd

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfmt/pkg/config"
	"github.com/urfave/cli/v3"
)

// presetsCmd lists the built-in style presets and prints them as settings files.
//
// Examples:
//
//	sqlfmt presets
//	sqlfmt presets show compact > .sqlformatter.yaml
func presetsCmd(ws *Workspace) *cli.Command {
	return &cli.Command{
		Name:  "presets",
		Usage: "List the built-in style presets",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			for _, name := range ws.Catalog.Names() {
				fmt.Fprintln(cmd.Root().Writer, name)
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "show",
				Usage:     "Print a preset as a settings file",
				ArgsUsage: "<name>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() != 1 {
						return errors.New("exactly one preset name is required")
					}

					name := cmd.Args().First()
					s, ok := ws.Catalog.Get(name)
					if !ok {
						return errors.Errorf("unknown preset: %s", name)
					}

					data, err := config.Marshal(s)
					if err != nil {
						return err
					}

					_, err = cmd.Root().Writer.Write(data)
					return errors.Wrap(err, "failed to write preset")
				},
			},
		},
	}
}
