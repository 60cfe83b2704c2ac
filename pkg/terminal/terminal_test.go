package terminal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/ansiprint/pkg/errors"
	"github.com/arthur-debert/ansiprint/pkg/markup"
)

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		input    string
		expected ColorMode
		wantErr  bool
	}{
		{"", ColorAuto, false},
		{"auto", ColorAuto, false},
		{"ALWAYS", ColorAlways, false},
		{"never", ColorNever, false},
		{"off", ColorNever, false},
		{"sometimes", ColorAuto, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColorMode(tt.input)
			if tt.wantErr {
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, got, must(ParseColorMode(got.String())))
		})
	}
}

func must(m ColorMode, err error) ColorMode {
	if err != nil {
		panic(err)
	}
	return m
}

func TestProbeApply(t *testing.T) {
	tty := Probe{Terminal: true, Profile: termenv.ANSI256}
	pipe := Probe{Terminal: false, Profile: termenv.Ascii}
	dumb := Probe{Terminal: true, Profile: termenv.Ascii}
	noColor := Probe{NoColor: true, Terminal: true, Profile: termenv.TrueColor}

	tests := []struct {
		name    string
		probe   Probe
		mode    ColorMode
		enabled bool
		locked  bool
	}{
		{"tty auto", tty, ColorAuto, true, false},
		{"pipe auto", pipe, ColorAuto, false, false},
		{"dumb terminal auto", dumb, ColorAuto, false, false},
		{"pipe always", pipe, ColorAlways, true, false},
		{"tty never", tty, ColorNever, false, false},
		{"no color auto locks", noColor, ColorAuto, false, true},
		{"no color always wins", noColor, ColorAlways, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := markup.New(markup.AllFeatures())
			tt.probe.Apply(r, tt.mode)
			assert.Equal(t, tt.enabled, r.Enabled())
			assert.Equal(t, tt.locked, r.NoColorLocked())
		})
	}
}

func TestEnableOnRegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	t.Setenv("NO_COLOR", "")
	r := markup.New(markup.AllFeatures())
	restore, err := Enable(r, f, ColorAuto)
	require.NoError(t, err)
	assert.False(t, r.Enabled())
	assert.NoError(t, restore())

	t.Setenv("NO_COLOR", "1")
	r = markup.New(markup.AllFeatures())
	_, err = Enable(r, f, ColorAuto)
	require.NoError(t, err)
	assert.True(t, r.NoColorLocked())
}
