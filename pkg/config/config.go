package config

import (
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/ansiprint/pkg/banner"
	"github.com/arthur-debert/ansiprint/pkg/bar"
	"github.com/arthur-debert/ansiprint/pkg/errors"
	"github.com/arthur-debert/ansiprint/pkg/markup"
	"github.com/arthur-debert/ansiprint/pkg/terminal"
)

// Config is the complete ansiprint configuration
type Config struct {
	Features Features `koanf:"features" toml:"features"`
	Output   Output   `koanf:"output" toml:"output"`
	Box      Box      `koanf:"box" toml:"box"`
	Bar      Bar      `koanf:"bar" toml:"bar"`
}

// Features switches markup groups and the widget commands
type Features struct {
	Emoji          bool `koanf:"emoji" toml:"emoji"`
	ExtendedEmoji  bool `koanf:"extended_emoji" toml:"extended_emoji"`
	ExtendedColors bool `koanf:"extended_colors" toml:"extended_colors"`
	BrightColors   bool `koanf:"bright_colors" toml:"bright_colors"`
	Styles         bool `koanf:"styles" toml:"styles"`
	Gradients      bool `koanf:"gradients" toml:"gradients"`
	Unicode        bool `koanf:"unicode" toml:"unicode"`
	Banner         bool `koanf:"banner" toml:"banner"`
	Window         bool `koanf:"window" toml:"window"`
	Bar            bool `koanf:"bar" toml:"bar"`
}

// Output controls color and buffering
type Output struct {
	Color      terminal.ColorMode `koanf:"color" toml:"color"`
	BufferSize int                `koanf:"buffer_size" toml:"buffer_size"`
	DefaultFG  string             `koanf:"default_fg" toml:"default_fg"`
	DefaultBG  string             `koanf:"default_bg" toml:"default_bg"`
}

// Box selects the border glyphs for banners and windows
type Box struct {
	Style banner.BoxStyle `koanf:"style" toml:"style"`
}

// Bar holds bar graph defaults
type Bar struct {
	Track bar.Track `koanf:"track" toml:"track"`
	Width int       `koanf:"width" toml:"width"`
}

// Markup returns the renderer feature set
func (c *Config) Markup() markup.Features {
	return markup.Features{
		Emoji:          c.Features.Emoji,
		ExtendedEmoji:  c.Features.ExtendedEmoji,
		ExtendedColors: c.Features.ExtendedColors,
		BrightColors:   c.Features.BrightColors,
		Styles:         c.Features.Styles,
		Gradients:      c.Features.Gradients,
		Unicode:        c.Features.Unicode,
	}
}

// Validate checks the numeric settings and that default colors exist in
// the enabled attribute table. Enumerated settings are checked while
// decoding.
func (c *Config) Validate() error {
	if c.Output.BufferSize < 1 {
		return errors.Newf(errors.ErrConfigValid, "output.buffer_size must be positive, got %d", c.Output.BufferSize)
	}
	if c.Bar.Width < 1 {
		return errors.Newf(errors.ErrConfigValid, "bar.width must be positive, got %d", c.Bar.Width)
	}

	attrs := markup.NewAttrTable(c.Markup())
	for key, name := range map[string]string{
		"output.default_fg": c.Output.DefaultFG,
		"output.default_bg": c.Output.DefaultBG,
	} {
		if name != "" && !attrs.LookupString(name).IsColor() {
			return errors.Newf(errors.ErrConfigValid, "%s: unknown color %q", key, name).
				WithDetail("key", key)
		}
	}
	return nil
}

// TOML renders the effective configuration
func (c *Config) TOML() ([]byte, error) {
	out, err := gotoml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return out, nil
}
