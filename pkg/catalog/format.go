package catalog

import (
	"strings"

	"github.com/arthur-debert/ansiprint/pkg/errors"
)

// Format is an output encoding
type Format int

const (
	// FormatTable renders pterm tables
	FormatTable Format = iota
	// FormatJSON renders indented JSON
	FormatJSON
	// FormatYAML renders YAML
	FormatYAML
	// FormatTOML renders TOML
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatTable:
		return "table"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a Format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "table", "":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return FormatTable, errors.Newf(errors.ErrInvalidInput, "unknown format: %s", s)
	}
}

// Section selects which entries are listed
type Section int

const (
	SectionAll Section = iota
	SectionColors
	SectionStyles
	SectionEmoji
)

func (s Section) String() string {
	switch s {
	case SectionColors:
		return "colors"
	case SectionStyles:
		return "styles"
	case SectionEmoji:
		return "emoji"
	default:
		return "all"
	}
}

// ParseSection parses a section name
func ParseSection(s string) (Section, error) {
	switch strings.ToLower(s) {
	case "all", "":
		return SectionAll, nil
	case "colors", "colours", "color":
		return SectionColors, nil
	case "styles", "style", "effects":
		return SectionStyles, nil
	case "emoji", "emojis", "shortcodes":
		return SectionEmoji, nil
	default:
		return SectionAll, errors.Newf(errors.ErrInvalidInput, "unknown section: %s", s)
	}
}
