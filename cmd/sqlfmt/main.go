package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/pseudomuto/sqlfmt/pkg/cmd"
	"github.com/pseudomuto/sqlfmt/pkg/config"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// NB: These are set by GoReleaser during a build.
var (
	version string
	commit  string
	date    string
)

func main() {
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	fx.New(
		fx.WithLogger(func() fxevent.Logger {
			l := &fxevent.SlogLogger{Logger: logger}
			l.UseLogLevel(slog.LevelDebug)
			return l
		}),
		fx.Supply(
			os.Args,
			level,
			logger,
			&cmd.Version{
				Version:   version,
				Commit:    commit,
				Timestamp: date,
			},
		),
		fx.Provide(func() context.Context { return context.Background() }),
		config.Module,
		cmd.Module,
	).Run()
}
