package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfmt/pkg/consts"
	"github.com/pseudomuto/sqlfmt/pkg/style"
	"gopkg.in/yaml.v3"
)

type (
	// IndentStyle selects tab or space indentation in a settings file.
	IndentStyle string

	// Document is the on-disk form of a style.
	//
	// Keys that are absent keep the value from style.Default, so a file only
	// needs to list what it changes:
	//
	//	indent_style: space
	//	indent_size: 2
	//	keyword_casing: lower
	//	comma_placement: after
	Document struct {
		// IndentStyle is either "tab" or "space"
		IndentStyle IndentStyle `yaml:"indent_style"`

		// IndentSize is the number of spaces per level when IndentStyle is "space"
		IndentSize int `yaml:"indent_size"`

		// KeywordCasing is one of upper, lower or pascal
		KeywordCasing style.KeywordCasing `yaml:"keyword_casing"`

		// CommaPlacement is either before or after
		CommaPlacement style.CommaPlacement `yaml:"comma_placement"`

		SpaceAroundOperators bool `yaml:"space_around_operators"`
		ForceAliasKeyword    bool `yaml:"force_alias_keyword"`
		NewlinePerClause     bool `yaml:"newline_per_clause"`
		JoinOnOwnLine        bool `yaml:"join_on_own_line"`
	}
)

const (
	IndentTabs   IndentStyle = "tab"
	IndentSpaces IndentStyle = "space"
)

// NewDocument returns the document describing s.
func NewDocument(s style.Style) Document {
	doc := Document{
		IndentStyle:          IndentSpaces,
		IndentSize:           s.Indent.Size,
		KeywordCasing:        s.KeywordCasing,
		CommaPlacement:       s.CommaPlacement,
		SpaceAroundOperators: s.SpaceAroundOperators,
		ForceAliasKeyword:    s.ForceAliasKeyword,
		NewlinePerClause:     s.NewlinePerClause,
		JoinOnOwnLine:        s.JoinOnOwnLine,
	}

	if s.Indent.UseTabs {
		doc.IndentStyle = IndentTabs
	}

	return doc
}

// Style converts the document into a validated style.
func (d Document) Style() (style.Style, error) {
	s := style.Style{
		Indent:               style.Indent{Size: d.IndentSize},
		KeywordCasing:        d.KeywordCasing,
		CommaPlacement:       d.CommaPlacement,
		SpaceAroundOperators: d.SpaceAroundOperators,
		ForceAliasKeyword:    d.ForceAliasKeyword,
		NewlinePerClause:     d.NewlinePerClause,
		JoinOnOwnLine:        d.JoinOnOwnLine,
	}

	switch IndentStyle(strings.ToLower(string(d.IndentStyle))) {
	case IndentTabs:
		s.Indent.UseTabs = true
	case IndentSpaces:
	default:
		return style.Style{}, errors.Errorf("unknown indent style: %q", d.IndentStyle)
	}

	if err := s.Validate(); err != nil {
		return style.Style{}, errors.Wrap(err, "invalid style config")
	}

	return s, nil
}

// LoadConfig parses a style document from the provided io.Reader.
//
// The reader may hold YAML or JSON, since every JSON document is also valid
// YAML. Missing keys take their value from style.Default.
//
// Example:
//
//	s, err := config.LoadConfig(strings.NewReader("keyword_casing: lower"))
//	if err != nil {
//		panic(err)
//	}
//
//	fmt.Println(s.KeywordCasing) // lower
func LoadConfig(r io.Reader) (style.Style, error) {
	doc := NewDocument(style.Default)
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return style.Style{}, errors.Wrap(err, "failed to unmarshal style config")
	}

	return doc.Style()
}

// LoadConfigFile loads a style from the specified file path.
// This is a convenience function that opens the file and calls LoadConfig.
func LoadConfigFile(path string) (style.Style, error) {
	f, err := os.Open(path)
	if err != nil {
		return style.Style{}, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}

// Marshal renders s as a YAML style document.
func Marshal(s style.Style) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(s)); err != nil {
		return nil, errors.Wrap(err, "failed to marshal style config")
	}

	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to marshal style config")
	}

	return buf.Bytes(), nil
}

// Save writes s to path, creating parent directories as needed.
func Save(path string, s style.Style) error {
	data, err := Marshal(s)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), consts.ModeDir); err != nil {
		return errors.Wrapf(err, "failed to create directory for: %s", path)
	}

	if err := os.WriteFile(path, data, consts.ModeFile); err != nil {
		return errors.Wrapf(err, "failed to write file: %s", path)
	}

	return nil
}

// SaveProject writes s to the first project settings file name in dir and
// returns the path written.
func SaveProject(dir string, s style.Style) (string, error) {
	path := filepath.Join(dir, consts.ProjectConfigFiles[0])
	return path, Save(path, s)
}

// SavePersonal writes s to the personal settings file and returns the path written.
func SavePersonal(s style.Style) (string, error) {
	path, err := PersonalPath()
	if err != nil {
		return "", err
	}

	return path, Save(path, s)
}

// PersonalPath returns the location of the personal settings file.
func PersonalPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to locate user config directory")
	}

	return filepath.Join(dir, consts.PersonalConfigDir, consts.PersonalConfigFile), nil
}

// FindProjectFile returns the first project settings file present in dir.
func FindProjectFile(dir string) (string, bool) {
	for _, name := range consts.ProjectConfigFiles {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}

	return "", false
}
