// Package catalog lists the names a renderer understands: colors, styles,
// effects and emoji shortcodes, as a terminal table or as JSON, YAML or
// TOML.
package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	gotoml "github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/ansiprint/pkg/errors"
	"github.com/arthur-debert/ansiprint/pkg/markup"
)

// Attribute describes one attribute table entry
type Attribute struct {
	Name string `json:"name" yaml:"name" toml:"name"`
	Kind string `json:"kind" yaml:"kind" toml:"kind"`
	Code string `json:"code,omitempty" yaml:"code,omitempty" toml:"code,omitempty"`
	RGB  string `json:"rgb,omitempty" yaml:"rgb,omitempty" toml:"rgb,omitempty"`
}

// Emoji describes one shortcode
type Emoji struct {
	Name       string `json:"name" yaml:"name" toml:"name"`
	Glyph      string `json:"glyph" yaml:"glyph" toml:"glyph"`
	Codepoints string `json:"codepoints" yaml:"codepoints" toml:"codepoints"`
	Width      int    `json:"width" yaml:"width" toml:"width"`
}

// Catalog is a snapshot of a renderer's tables
type Catalog struct {
	Colors []Attribute `json:"colors,omitempty" yaml:"colors,omitempty" toml:"colors,omitempty"`
	Styles []Attribute `json:"styles,omitempty" yaml:"styles,omitempty" toml:"styles,omitempty"`
	Emoji  []Emoji     `json:"emoji,omitempty" yaml:"emoji,omitempty" toml:"emoji,omitempty"`
}

// Build snapshots the tables of r
func Build(r *markup.Renderer) Catalog {
	var c Catalog
	for _, a := range r.Attrs().All() {
		entry := Attribute{Name: a.Name, Kind: a.Kind.String(), Code: sgrParams(a.FG)}
		if a.IsColor() {
			entry.RGB = fmt.Sprintf("#%02x%02x%02x", a.RGB.R, a.RGB.G, a.RGB.B)
			c.Colors = append(c.Colors, entry)
			continue
		}
		c.Styles = append(c.Styles, entry)
	}
	for _, e := range r.Emoji().All() {
		c.Emoji = append(c.Emoji, Emoji{
			Name:       e.Name,
			Glyph:      e.UTF8,
			Codepoints: codepoints(e.UTF8),
			Width:      e.Width,
		})
	}
	return c
}

// Section narrows the catalog to one kind of entry
func (c Catalog) Section(s Section) Catalog {
	switch s {
	case SectionColors:
		return Catalog{Colors: c.Colors}
	case SectionStyles:
		return Catalog{Styles: c.Styles}
	case SectionEmoji:
		return Catalog{Emoji: c.Emoji}
	default:
		return c
	}
}

// Render writes the catalog to w in the given format
func (c Catalog) Render(w io.Writer, format Format, styled bool) error {
	var err error
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(c)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(c); err == nil {
			err = enc.Close()
		}
	case FormatTOML:
		err = gotoml.NewEncoder(w).Encode(c)
	default:
		err = c.renderTables(w, styled)
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrOutputWrite, "failed to render catalog as %s", format)
	}
	return nil
}

func (c Catalog) renderTables(w io.Writer, styled bool) error {
	var tables []pterm.TableData
	if len(c.Colors) > 0 {
		data := pterm.TableData{{"Color", "Code", "RGB"}}
		for _, a := range c.Colors {
			data = append(data, []string{a.Name, a.Code, a.RGB})
		}
		tables = append(tables, data)
	}
	if len(c.Styles) > 0 {
		data := pterm.TableData{{"Style", "Kind", "Code"}}
		for _, a := range c.Styles {
			data = append(data, []string{a.Name, a.Kind, a.Code})
		}
		tables = append(tables, data)
	}
	if len(c.Emoji) > 0 {
		data := pterm.TableData{{"Shortcode", "Glyph", "Codepoints", "Width"}}
		for _, e := range c.Emoji {
			data = append(data, []string{":" + e.Name + ":", e.Glyph, e.Codepoints, fmt.Sprint(e.Width)})
		}
		tables = append(tables, data)
	}

	for i, data := range tables {
		table := pterm.DefaultTable.WithHasHeader().WithData(data)
		if !styled {
			table = table.WithHeaderStyle(pterm.NewStyle()).WithSeparatorStyle(pterm.NewStyle())
		}
		out, err := table.Srender()
		if err != nil {
			return err
		}
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, out+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// sgrParams turns "\x1b[38;5;208m" into "38;5;208"
func sgrParams(esc string) string {
	return strings.TrimSuffix(strings.TrimPrefix(esc, "\x1b["), "m")
}

func codepoints(s string) string {
	parts := make([]string, 0, 2)
	for _, r := range s {
		parts = append(parts, fmt.Sprintf("U+%04X", r))
	}
	return strings.Join(parts, " ")
}
