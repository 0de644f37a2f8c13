// Package cmd provides the CLI commands for sqlfmt.
//
// # Available Commands
//
//   - fmt: Format SQL from standard input, files or directories
//   - check: Report syntax errors without formatting
//   - presets: List the built-in presets, or print one with "presets show"
//   - init: Write a project or personal settings file
//
// # Command Structure
//
// Each command is implemented as a function that takes the shared *Workspace
// and returns a *cli.Command, following the urfave/cli/v3 pattern. Commands
// are registered with fx through the "commands" value group and run by Run.
//
// # Global Options
//
//   - --dir, -d: Specify project directory (defaults to current directory)
//   - --preset: Use a built-in preset
//   - --config, -c: Use an explicit style file
//   - --locale: Language of error messages (en, ja)
//   - --verbose: Enable debug logging
//
// # Style Resolution
//
// An explicit --config file wins, then --preset, then the project settings
// file in --dir, then the personal settings file, then the default preset.
//
//	sqlfmt fmt -w queries/
//	sqlfmt --preset compact fmt -d report.sql
//	sqlfmt presets show default > .sqlformatter.yaml
package cmd
