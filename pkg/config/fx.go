package config

import (
	"log/slog"

	"go.uber.org/fx"
)

// Module provides a *Loader rooted at the working directory. The CLI changes
// into the --dir project directory before any command loads a style.
var Module = fx.Module("config", fx.Provide(
	func(logger *slog.Logger) *Loader {
		return NewLoader(".", logger)
	},
))
