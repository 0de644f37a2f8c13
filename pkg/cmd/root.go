package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

type (
	Params struct {
		fx.In

		Args       []string
		Commands   []*cli.Command `group:"commands"`
		Ctx        context.Context
		Lifecycle  fx.Lifecycle
		Shutdowner fx.Shutdowner
		Version    *Version
		Workspace  *Workspace
	}

	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}
)

// Run registers the sqlfmt CLI application with the fx lifecycle. The
// application runs once the fx app has started and shuts it down with exit
// code 1 when the command fails.
//
// Global Flags:
//   - --dir, -d: Project directory holding .sqlformatter.* (defaults to current directory)
//   - --preset: Use a built-in preset instead of the settings files
//   - --config, -c: Use an explicit style file
//   - --locale: Language of error messages (en, ja)
//   - --verbose: Enable debug logging
//
// Example usage:
//
//	sqlfmt fmt -w queries/
//	sqlfmt --preset compact fmt report.sql
//	echo "select 1" | sqlfmt --locale ja fmt
func Run(p Params) {
	app := NewApp(p.Version, p.Workspace, p.Commands...)

	p.Lifecycle.Append(fx.StartHook(func() {
		go func() {
			if err := app.Run(p.Ctx, p.Args); err != nil {
				p.Workspace.Logger.Error("Error running command", "err", err)
				_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
				return
			}

			_ = p.Shutdowner.Shutdown(fx.ExitCode(0))
		}()
	}))
}

// NewApp builds the root command.
func NewApp(version *Version, ws *Workspace, commands ...*cli.Command) *cli.Command {
	if version == nil {
		version = &Version{Version: "dev"}
	}

	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Root().Writer, "Version:", version.Version)
		fmt.Fprintln(cmd.Root().Writer, "Commit:", version.Commit)
		fmt.Fprintln(cmd.Root().Writer, "Date:", version.Timestamp)
	}

	return &cli.Command{
		Name:  "sqlfmt",
		Usage: "A style driven T-SQL formatter",
		Description: `sqlfmt parses T-SQL and rewrites it with consistent indentation,
keyword casing, comma placement and clause layout. Styles come from a
.sqlformatter.yaml file in the project, a personal settings file or a
built-in preset.`,
		Version: version.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "dir",
				Aliases:     []string{"d"},
				Usage:       "the project directory",
				Value:       ".",
				DefaultText: "Current directory",
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
			&cli.StringFlag{
				Name:  "preset",
				Usage: "use a built-in style preset",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "use the style in this file",
				Sources: cli.EnvVars("SQLFMT_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "locale",
				Usage:   "language of error messages (en, ja)",
				Value:   "en",
				Sources: cli.EnvVars("SQLFMT_LOCALE"),
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable debug logging",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			settings := settingsFrom(cmd)

			// resolve an explicit config path before leaving the invocation directory
			if settings.Config != "" {
				abs, err := absPath(settings.Config)
				if err != nil {
					return ctx, err
				}
				settings.Config = abs
			}

			if err := os.Chdir(cmd.String("dir")); err != nil {
				return ctx, errors.Wrapf(err, "failed to change to project directory: %s", cmd.String("dir"))
			}

			return ctx, ws.Configure(settings)
		},
		Commands: commands,
	}
}
