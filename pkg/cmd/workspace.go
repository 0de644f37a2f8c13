package cmd

import (
	"log/slog"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfmt/pkg/config"
	"github.com/pseudomuto/sqlfmt/pkg/sqlfmt"
	"github.com/pseudomuto/sqlfmt/pkg/style"
	"github.com/urfave/cli/v3"
)

type (
	// Workspace carries the settings shared by every command. It is filled in
	// from the global flags before a command runs.
	Workspace struct {
		Loader  *config.Loader
		Catalog *style.Catalog
		Logger  *slog.Logger
		Level   *slog.LevelVar

		style  style.Style
		source string
		locale sqlfmt.Locale
	}

	// Settings is what a Workspace resolves from the global flags.
	Settings struct {
		Preset  string
		Config  string
		Locale  string
		Verbose bool
	}
)

// NewWorkspace creates a Workspace using style.Default until Configure is called.
func NewWorkspace(loader *config.Loader, logger *slog.Logger, level *slog.LevelVar) *Workspace {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Workspace{
		Loader:  loader,
		Catalog: style.NewCatalog(),
		Logger:  logger,
		Level:   level,
		style:   style.Default,
		source:  string(config.SourceDefault),
		locale:  sqlfmt.English,
	}
}

// Configure resolves the style and locale. An explicit config file wins over
// a preset, which wins over the project and personal settings files.
func (w *Workspace) Configure(s Settings) error {
	if w.Level != nil && s.Verbose {
		w.Level.Set(slog.LevelDebug)
	}

	locale, err := sqlfmt.ParseLocale(s.Locale)
	if err != nil {
		return err
	}
	w.locale = locale

	switch {
	case s.Config != "":
		loaded, err := config.LoadConfigFile(s.Config)
		if err != nil {
			return err
		}
		w.style, w.source = loaded, s.Config
	case s.Preset != "":
		preset, ok := w.Catalog.Get(s.Preset)
		if !ok {
			return errors.Errorf("unknown preset: %s", s.Preset)
		}
		w.style, w.source = preset, "preset "+s.Preset
	case w.Loader != nil:
		resolved := w.Loader.Load()
		w.style, w.source = resolved.Style, string(resolved.Source)
		if resolved.Path != "" {
			w.source = resolved.Path
		}
	}

	w.Logger.Debug("Resolved style", "source", w.source, "locale", string(w.locale))
	return nil
}

func (w *Workspace) Style() style.Style {
	return w.style
}

// Engine builds a formatting engine for the resolved settings.
func (w *Workspace) Engine() *sqlfmt.Engine {
	return sqlfmt.New(
		sqlfmt.WithStyle(w.style),
		sqlfmt.WithLocale(w.locale),
		sqlfmt.WithLogger(w.Logger),
	)
}

func settingsFrom(cmd *cli.Command) Settings {
	return Settings{
		Preset:  cmd.String("preset"),
		Config:  cmd.String("config"),
		Locale:  cmd.String("locale"),
		Verbose: cmd.Bool("verbose"),
	}
}
