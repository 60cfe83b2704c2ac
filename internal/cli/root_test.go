package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/ansiprint/pkg/errors"
	"github.com/arthur-debert/ansiprint/pkg/testutil"
)

// execute runs the command tree with args and returns what it wrote to
// stdout. Callers isolate the environment first.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPrintCmd(t *testing.T) {
	testutil.Isolate(t)
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"plain joins arguments", []string{"--color=never", "print", "[bold red]Error:[/]", "disk"}, "Error: disk\n"},
		{"colored", []string{"--color=always", "print", "[red]hi[/]"}, "\x1b[31mhi\x1b[0m\n"},
		{"no newline", []string{"--color=never", "print", "-n", ":check: x"}, "\xE2\x9C\x85 x"},
		{"auto is plain off a terminal", []string{"print", "[green]ok[/]"}, "ok\n"},
		{"default fg restored", []string{"--color=always", "--fg=green", "print", "[red]a[/]b"}, "\x1b[32m\x1b[31ma\x1b[0m\x1b[32mb\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestPrintfCmd(t *testing.T) {
	testutil.Isolate(t)
	out, err := execute(t, "--color=never", "printf", `[cyan]%s[/]=%03d %.1f%%\n`, "load", "7", "2.26")
	require.NoError(t, err)
	assert.Equal(t, "load=007 2.3%\n", out)

	_, err = execute(t, "printf", "%d", "seven")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestPrintfArgs(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		args     []string
		expected []interface{}
	}{
		{"strings", "%s %v", []string{"a", "b"}, []interface{}{"a", "b"}},
		{"integers", "%d %x %5o", []string{"10", "0x1f", "8"}, []interface{}{int64(10), int64(31), int64(8)}},
		{"floats", "%.2f %g", []string{"1.5", "2"}, []interface{}{1.5, 2.0}},
		{"char from letter", "%c", []string{"A"}, []interface{}{'A'}},
		{"char from number", "%c", []string{"66"}, []interface{}{int64(66)}},
		{"percent skipped", "%% %d", []string{"3"}, []interface{}{int64(3)}},
		{"extra args are strings", "%d", []string{"1", "2"}, []interface{}{int64(1), "2"}},
		{"no verbs", "plain", []string{"x"}, []interface{}{"x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := printfArgs(tt.format, tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := printfArgs("%f", []string{"x"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestUnescape(t *testing.T) {
	assert.Equal(t, "a\nb\tc\x1b[0m", unescape(`a\nb\tc\e[0m`))
	assert.Equal(t, `x\n`, unescape(`x\\n`))
	assert.Equal(t, "plain", unescape("plain"))
}

func TestBarCmd(t *testing.T) {
	testutil.Isolate(t)
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"percent with config track", []string{"bar", "--percent", "50", "--width", "4"}, "██░░ 50%\n"},
		{"value on scale", []string{"bar", "--value", "2.5", "--max", "5", "-w", "4", "--track", "dot"}, "██··\n"},
		{"config width", []string{"bar", "--value", "100"}, "████████████████████\n"},
		{"wider than format buffer", []string{"bar", "--value", "100", "-w", "400", "--fill", ""},
			strings.Repeat("█", 400) + "\n"},
		{"wide with fill tags", []string{"bar", "--value", "100", "-w", "400"},
			strings.Repeat("█", 400) + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, append([]string{"--color=never"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestBarCmdColored(t *testing.T) {
	testutil.Isolate(t)
	out, err := execute(t, "--color=always", "bar", "--percent", "100", "-w", "2", "--fill", "red")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[31m██\x1b[0m 100%\n", out)
}

func TestBarCmdWide(t *testing.T) {
	testutil.Isolate(t)

	out, err := execute(t, "--color=always", "bar", "--value", "100", "-w", "400", "--fill", "green")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[32m"+strings.Repeat("█", 400)+"\x1b[0m\n", out)

	out, err = execute(t, "--color=always", "bar", "--value", "100", "-w", "5000", "--fill", "green")
	require.NoError(t, err)
	assert.True(t, utf8.ValidString(out))
	assert.True(t, strings.HasSuffix(out, "█\x1b[0m\n"), "bar cut at a whole cell with its reset and newline")
	assert.Less(t, strings.Count(out, "█"), 5000)
}

func TestBarCmdErrors(t *testing.T) {
	testutil.Isolate(t)
	tests := []struct {
		name string
		args []string
		code errors.ErrorCode
	}{
		{"no value", []string{"bar"}, errors.ErrInvalidInput},
		{"unknown fill", []string{"bar", "--value", "1", "--fill", "nope"}, errors.ErrUnknownColor},
		{"effect is not a fill", []string{"bar", "--value", "1", "--fill", "rainbow"}, errors.ErrUnknownColor},
		{"unknown track", []string{"bar", "--value", "1", "--track", "zigzag"}, errors.ErrUnknownTrack},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
}

func TestBannerCmd(t *testing.T) {
	testutil.Isolate(t)
	out, err := execute(t, "--color=never", "banner", "hi")
	require.NoError(t, err)
	assert.Equal(t, "╔════╗\n║ hi ║\n╚════╝\n", out)

	out, err = execute(t, "--color=never", "banner", "-w", "5", "--align", "right", "a", "bc")
	require.NoError(t, err)
	assert.Equal(t, "╔═══════╗\n║     a ║\n║    bc ║\n╚═══════╝\n", out)

	_, err = execute(t, "banner", "--align", "middle", "x")
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownAlign))
}

func TestBannerCmdBoxFromConfig(t *testing.T) {
	testutil.Isolate(t)
	t.Setenv("ANSIPRINT_BOX__STYLE", "rounded")
	out, err := execute(t, "--color=never", "banner", "hi")
	require.NoError(t, err)
	assert.Equal(t, "╭────╮\n│ hi │\n╰────╯\n", out)
}

func TestWindowCmd(t *testing.T) {
	testutil.Isolate(t)
	out, err := execute(t, "--color=never", "window", "--title", "Hi", "-w", "4", "ok", "toolong")
	require.NoError(t, err)
	expected := "╔══════╗\n" +
		"║  Hi  ║\n" +
		"╠══════╣\n" +
		"║ ok   ║\n" +
		"║ tool ║\n" +
		"╚══════╝\n"
	assert.Equal(t, expected, out)
}

func TestWindowCmdTitleAlign(t *testing.T) {
	testutil.Isolate(t)
	tests := []struct {
		align string
		title string
	}{
		{"left", "║ Hi   ║\n"},
		{"center", "║  Hi  ║\n"},
		{"right", "║   Hi ║\n"},
	}

	for _, tt := range tests {
		t.Run(tt.align, func(t *testing.T) {
			out, err := execute(t, "--color=never", "window", "--title", "Hi",
				"--title-align", tt.align, "--align", "right", "-w", "4", "ok")
			require.NoError(t, err)
			lines := strings.SplitAfter(out, "\n")
			require.Len(t, lines, 6)
			assert.Equal(t, tt.title, lines[1])
			assert.Equal(t, "║   ok ║\n", lines[3])
		})
	}

	_, err := execute(t, "window", "--title", "Hi", "--title-align", "middle", "x")
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownAlign), "got %v", err)
}

func TestCommandLogging(t *testing.T) {
	dirs := testutil.Isolate(t)

	_, err := execute(t, "-vv", "--color=never", "print", "x")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dirs.State, "ansiprint", "ansiprint.log"))
	require.NoError(t, err)
	logged := string(data)
	assert.Contains(t, logged, "Executing command")
	assert.Contains(t, logged, `"command":"print"`)
	assert.Contains(t, logged, `"args":["x"]`)
	assert.Contains(t, logged, `"operation":"config.load"`)
	assert.Contains(t, logged, "Operation completed")
}

func TestFeatureGates(t *testing.T) {
	testutil.Isolate(t)
	tests := []struct {
		env  string
		args []string
	}{
		{"ANSIPRINT_FEATURES__BAR", []string{"bar", "--value", "1"}},
		{"ANSIPRINT_FEATURES__BANNER", []string{"banner", "x"}},
		{"ANSIPRINT_FEATURES__WINDOW", []string{"window", "x"}},
		{"ANSIPRINT_FEATURES__WINDOW", []string{"demo", "emoji"}},
	}

	for _, tt := range tests {
		t.Run(tt.args[0], func(t *testing.T) {
			t.Setenv(tt.env, "false")
			_, err := execute(t, tt.args...)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), "got %v", err)
		})
	}
}

func TestDemoCmd(t *testing.T) {
	testutil.Isolate(t)
	tests := []struct {
		args     []string
		contains []string
	}{
		{[]string{"demo"}, []string{"Standard Colors", "Bar Graphs", "Embedded System Boot Log", "System ready"}},
		{[]string{"demo", "quick-start"}, []string{"Live Readings", "All systems operational"}},
		{[]string{"demo", "emoji"}, []string{"Emoji Width Test", "rocket"}},
	}

	for _, tt := range tests {
		t.Run(tt.args[len(tt.args)-1], func(t *testing.T) {
			out, err := execute(t, append([]string{"--color=never"}, tt.args...)...)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			assert.NotContains(t, out, "\x1b[")
		})
	}

	_, err := execute(t, "demo", "tui")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestDemoShowcaseFollowsFeatures(t *testing.T) {
	testutil.Isolate(t)
	t.Setenv("ANSIPRINT_FEATURES__EXTENDED_COLORS", "false")
	t.Setenv("ANSIPRINT_FEATURES__BAR", "false")
	out, err := execute(t, "--color=never", "demo")
	require.NoError(t, err)
	assert.NotContains(t, out, "Extended Colors")
	assert.NotContains(t, out, "Bar Graphs")
	assert.Contains(t, out, "Bright Colors")
}

func TestListCmd(t *testing.T) {
	testutil.Isolate(t)
	out, err := execute(t, "--color=never", "list", "colors", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "red"`)
	assert.NotContains(t, out, `"emoji"`)

	out, err = execute(t, "--color=never", "list", "emoji", "-f", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "name: rocket")

	_, err = execute(t, "list", "fonts")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestConfigCmd(t *testing.T) {
	testutil.Isolate(t)
	out, err := execute(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "[output]")
	assert.Contains(t, out, "buffer_size = 1024")

	out, err = execute(t, "config", "--path")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(xdg.ConfigHome, "ansiprint", "config.toml")+"\n", out)
}

func TestGuideCmd(t *testing.T) {
	testutil.Isolate(t)
	out, err := execute(t, "--color=never", "guide")
	require.NoError(t, err)
	assert.NotEmpty(t, out)

	out, err = execute(t, "--color=never", "guide", "effects")
	require.NoError(t, err)
	assert.Contains(t, out, "rainbow")

	_, err = execute(t, "guide", "nonsense")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestVersionCmd(t *testing.T) {
	testutil.Isolate(t)
	out, err := execute(t, "--color=never", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "ansiprint version dev\n")
	assert.Contains(t, out, "commit: unknown")
}

func TestRootConfigErrors(t *testing.T) {
	testutil.Isolate(t)
	tests := []struct {
		name string
		args []string
		code errors.ErrorCode
	}{
		{"bad color mode", []string{"--color=sometimes", "print", "x"}, errors.ErrConfigValid},
		{"unknown default fg", []string{"--fg=chartreuse", "print", "x"}, errors.ErrConfigValid},
		{"missing config file", []string{"--config=/does/not/exist.toml", "print", "x"}, errors.ErrConfigLoad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
}

func TestNoColorEnv(t *testing.T) {
	testutil.Isolate(t)
	t.Setenv("NO_COLOR", "1")

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--color=always", "print", "[red]x[/]"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "\x1b[31mx\x1b[0m\n", out.String(), "always overrides NO_COLOR")
}
