package style

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type (
	// KeywordCasing controls how SQL keywords, function names and data types are cased.
	KeywordCasing int

	// CommaPlacement controls where list separators go when a list spans lines.
	CommaPlacement int

	// Indent describes one level of indentation.
	Indent struct {
		// UseTabs emits a single tab per level. Size is ignored when set.
		UseTabs bool
		// Size is the number of spaces per level. Zero disables visual indentation
		// while nesting depth is still tracked.
		Size int
	}

	// Style is the complete set of formatting options for one format call.
	Style struct {
		Indent               Indent
		KeywordCasing        KeywordCasing
		CommaPlacement       CommaPlacement
		SpaceAroundOperators bool
		ForceAliasKeyword    bool
		NewlinePerClause     bool
		JoinOnOwnLine        bool
	}
)

const (
	// Upper renders keywords in upper case: SELECT.
	Upper KeywordCasing = iota
	// Lower renders keywords in lower case: select.
	Lower
	// Pascal upper cases the first character and lower cases the rest: Select.
	Pascal
)

const (
	// CommaBefore starts every list item after the first with ", ".
	CommaBefore CommaPlacement = iota
	// CommaAfter ends every list item except the last with ",".
	CommaAfter
)

var (
	// Default is the conventional layout: tab indentation, upper case keywords,
	// leading commas, forced AS, one clause per line and joins on their own line.
	Default = Style{
		Indent:               Indent{UseTabs: true, Size: 4},
		KeywordCasing:        Upper,
		CommaPlacement:       CommaBefore,
		SpaceAroundOperators: true,
		ForceAliasKeyword:    true,
		NewlinePerClause:     true,
		JoinOnOwnLine:        true,
	}

	// Compact uses two space indentation, trailing commas, no forced AS and
	// inline joins.
	Compact = Style{
		Indent:               Indent{Size: 2},
		KeywordCasing:        Upper,
		CommaPlacement:       CommaAfter,
		SpaceAroundOperators: true,
		ForceAliasKeyword:    false,
		NewlinePerClause:     true,
		JoinOnOwnLine:        false,
	}

	casingNames = map[KeywordCasing]string{
		Upper:  "upper",
		Lower:  "lower",
		Pascal: "pascal",
	}

	// the long forms are accepted for older settings files
	casingAliases = map[string]KeywordCasing{
		"upper":      Upper,
		"uppercase":  Upper,
		"lower":      Lower,
		"lowercase":  Lower,
		"pascal":     Pascal,
		"pascalcase": Pascal,
	}

	commaNames = map[CommaPlacement]string{
		CommaBefore: "before",
		CommaAfter:  "after",
	}

	commaAliases = map[string]CommaPlacement{
		"before":       CommaBefore,
		"beforecolumn": CommaBefore,
		"after":        CommaAfter,
		"aftercolumn":  CommaAfter,
	}
)

// Validate rejects values that cannot be mapped to an emission rule.
func (s Style) Validate() error {
	if s.Indent.Size < 0 {
		return errors.Errorf("indent size must be >= 0, got %d", s.Indent.Size)
	}

	if _, ok := casingNames[s.KeywordCasing]; !ok {
		return errors.Errorf("unknown keyword casing: %d", s.KeywordCasing)
	}

	if _, ok := commaNames[s.CommaPlacement]; !ok {
		return errors.Errorf("unknown comma placement: %d", s.CommaPlacement)
	}

	return nil
}

// Unit returns the text emitted for one indentation level.
func (i Indent) Unit() string {
	if i.UseTabs {
		return "\t"
	}

	if i.Size <= 0 {
		return ""
	}

	return strings.Repeat(" ", i.Size)
}

// Apply cases a keyword. Only ASCII letters change; other characters are
// kept as written. A multi-word keyword such as "IS NOT NULL" is treated as a
// single token, so Pascal only upper cases its first character.
func (c KeywordCasing) Apply(word string) string {
	switch c {
	case Lower:
		return strings.Map(asciiLower, word)
	case Pascal:
		lower := strings.Map(asciiLower, word)
		if lower == "" || lower[0] < 'a' || lower[0] > 'z' {
			return lower
		}
		return string(lower[0]-('a'-'A')) + lower[1:]
	default:
		return strings.Map(asciiUpper, word)
	}
}

func asciiUpper(r rune) rune {
	if 'a' <= r && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

func asciiLower(r rune) rune {
	if 'A' <= r && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

func (c KeywordCasing) String() string {
	if name, ok := casingNames[c]; ok {
		return name
	}

	return fmt.Sprintf("KeywordCasing(%d)", int(c))
}

// ParseKeywordCasing parses a casing name such as "upper" or "Lowercase".
func ParseKeywordCasing(name string) (KeywordCasing, error) {
	if c, ok := casingAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c, nil
	}

	return Upper, errors.Errorf("unknown keyword casing: %q", name)
}

// MarshalYAML implements yaml.Marshaler.
func (c KeywordCasing) MarshalYAML() (any, error) {
	if _, ok := casingNames[c]; !ok {
		return nil, errors.Errorf("unknown keyword casing: %d", c)
	}

	return c.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Both names and the numeric values
// written by older settings files are accepted.
func (c *KeywordCasing) UnmarshalYAML(value *yaml.Node) error {
	var n int
	if value.ShortTag() == "!!int" && value.Decode(&n) == nil {
		if _, ok := casingNames[KeywordCasing(n)]; !ok {
			return errors.Errorf("line %d: unknown keyword casing: %d", value.Line, n)
		}
		*c = KeywordCasing(n)
		return nil
	}

	parsed, err := ParseKeywordCasing(value.Value)
	if err != nil {
		return errors.Wrapf(err, "line %d", value.Line)
	}

	*c = parsed
	return nil
}

func (p CommaPlacement) String() string {
	if name, ok := commaNames[p]; ok {
		return name
	}

	return fmt.Sprintf("CommaPlacement(%d)", int(p))
}

// ParseCommaPlacement parses a placement name such as "before" or "AfterColumn".
func ParseCommaPlacement(name string) (CommaPlacement, error) {
	if p, ok := commaAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return p, nil
	}

	return CommaBefore, errors.Errorf("unknown comma placement: %q", name)
}

// MarshalYAML implements yaml.Marshaler.
func (p CommaPlacement) MarshalYAML() (any, error) {
	if _, ok := commaNames[p]; !ok {
		return nil, errors.Errorf("unknown comma placement: %d", p)
	}

	return p.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *CommaPlacement) UnmarshalYAML(value *yaml.Node) error {
	var n int
	if value.ShortTag() == "!!int" && value.Decode(&n) == nil {
		if _, ok := commaNames[CommaPlacement(n)]; !ok {
			return errors.Errorf("line %d: unknown comma placement: %d", value.Line, n)
		}
		*p = CommaPlacement(n)
		return nil
	}

	parsed, err := ParseCommaPlacement(value.Value)
	if err != nil {
		return errors.Wrapf(err, "line %d", value.Line)
	}

	*p = parsed
	return nil
}
