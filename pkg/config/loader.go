package config

import (
	"io/fs"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfmt/pkg/style"
)

// Source identifies where a resolved style came from.
type Source string

const (
	SourceProject  Source = "project"
	SourcePersonal Source = "personal"
	SourceDefault  Source = "default"
)

type (
	// Loader resolves the effective style: the project file wins over the
	// personal file, which wins over style.Default. A file that cannot be read
	// or does not describe a valid style is logged and skipped.
	Loader struct {
		// ProjectDir is searched for the project settings files. Empty skips the project lookup.
		ProjectDir string

		// PersonalPath is the personal settings file. Empty skips the personal lookup.
		PersonalPath string

		Logger *slog.Logger
	}

	// Resolved is the style chosen by a Loader and where it came from.
	Resolved struct {
		Style  style.Style
		Source Source
		// Path is the file the style was read from, empty for SourceDefault.
		Path string
	}
)

// NewLoader creates a Loader for dir using the personal settings location of
// the current user. A missing user config directory only disables the
// personal lookup.
func NewLoader(dir string, logger *slog.Logger) *Loader {
	l := &Loader{ProjectDir: dir, Logger: logger}

	personal, err := PersonalPath()
	if err != nil {
		l.logger().Debug("Personal settings disabled", "error", err)
	}

	l.PersonalPath = personal
	return l
}

func (l *Loader) Load() Resolved {
	if l.ProjectDir != "" {
		if path, ok := FindProjectFile(l.ProjectDir); ok {
			if s, ok := l.load(path); ok {
				return Resolved{Style: s, Source: SourceProject, Path: path}
			}
		}
	}

	if l.PersonalPath != "" {
		if s, ok := l.load(l.PersonalPath); ok {
			return Resolved{Style: s, Source: SourcePersonal, Path: l.PersonalPath}
		}
	}

	return Resolved{Style: style.Default, Source: SourceDefault}
}

func (l *Loader) load(path string) (style.Style, bool) {
	s, err := LoadConfigFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		l.logger().Debug("No style config", "path", path)
		return style.Style{}, false
	}

	if err != nil {
		l.logger().Warn("Ignoring style config", "path", path, "error", err)
		return style.Style{}, false
	}

	l.logger().Debug("Loaded style config", "path", path)
	return s, true
}

func (l *Loader) logger() *slog.Logger {
	if l.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}

	return l.Logger
}
