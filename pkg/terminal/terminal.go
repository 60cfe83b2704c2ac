// Package terminal prepares a real terminal for a markup.Renderer: it turns
// on escape processing where the console needs it and decides whether
// color should be on.
package terminal

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/ansiprint/pkg/errors"
	"github.com/arthur-debert/ansiprint/pkg/logging"
	"github.com/arthur-debert/ansiprint/pkg/markup"
)

// ColorMode is the user's color preference.
type ColorMode int

const (
	// ColorAuto enables color on capable terminals unless NO_COLOR is set
	ColorAuto ColorMode = iota
	// ColorAlways forces color on
	ColorAlways
	// ColorNever forces color off
	ColorNever
)

func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "unknown"
	}
}

// MarshalText encodes the mode as its name.
func (m ColorMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText decodes a mode name as ParseColorMode does.
func (m *ColorMode) UnmarshalText(text []byte) error {
	v, err := ParseColorMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// ParseColorMode parses a mode name.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return ColorAuto, nil
	case "always", "on", "force":
		return ColorAlways, nil
	case "never", "off", "none":
		return ColorNever, nil
	default:
		return ColorAuto, errors.Newf(errors.ErrInvalidInput, "unknown color mode %q", s).
			WithDetail("color", s)
	}
}

// Probe is what was learned about the environment and output file.
type Probe struct {
	NoColor  bool
	Terminal bool
	Profile  termenv.Profile
}

// Detect inspects NO_COLOR and the file f.
func Detect(f *os.File) Probe {
	return Probe{
		NoColor:  os.Getenv("NO_COLOR") != "",
		Terminal: isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()),
		Profile:  termenv.NewOutput(f).Profile,
	}
}

// Apply sets the renderer's color switch for mode. In auto mode NO_COLOR
// locks color off; otherwise color follows whether the output is a
// terminal that can show it.
func (p Probe) Apply(r *markup.Renderer, mode ColorMode) {
	switch mode {
	case ColorNever:
		r.SetEnabled(false)
	case ColorAlways:
		r.SetEnabled(true)
	default:
		if p.NoColor {
			r.LockNoColor()
			return
		}
		r.SetEnabled(p.Terminal && p.Profile != termenv.Ascii)
	}
}

// Enable applies mode to r, then turns on virtual terminal processing for f
// where the platform needs it. The returned function restores the
// console mode.
func Enable(r *markup.Renderer, f *os.File, mode ColorMode) (func() error, error) {
	log := logging.GetLogger("terminal")

	probe := Detect(f)
	probe.Apply(r, mode)

	restore, err := termenv.EnableVirtualTerminalProcessing(f)
	if err != nil {
		return func() error { return nil },
			errors.Wrap(err, errors.ErrOutputWrite, "failed to enable terminal escape processing")
	}
	log.Debug().
		Str("mode", mode.String()).
		Bool("terminal", probe.Terminal).
		Bool("no_color", probe.NoColor).
		Bool("enabled", r.Enabled()).
		Msg("terminal color configured")
	return restore, nil
}
