package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Render inline markup as ANSI terminal output"
	MsgPrintShort      = "Print markup arguments separated by spaces"
	MsgPrintfShort     = "Format arguments and print the result as markup"
	MsgBarShort        = "Print a horizontal bar graph"
	MsgBannerShort     = "Print lines inside a box"
	MsgWindowShort     = "Print lines inside a window with an optional title"
	MsgDemoShort       = "Show the markup features"
	MsgListShort       = "List colors, styles and emoji shortcodes"
	MsgConfigShort     = "Print the effective configuration"
	MsgGuideShort      = "Show the markup guide"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate the man page"

	// Version output
	MsgVersionFormat = "[bold]ansiprint[/] version %s\n"
	MsgCommitFormat  = "  commit: %s\n"
	MsgBuiltFormat   = "  built:  %s\n"

	// Error messages
	MsgErrFeatureOff  = "%s is disabled by configuration (features.%s = false)"
	MsgErrUnknownDemo = "unknown demo %q (available: %s)"
	MsgErrArgNumber   = "argument %d (%q) is not a number for %%%c"
	MsgErrBarValue    = "one of --value or --percent is required"
	MsgErrBarColor    = "unknown bar color %q"
	MsgErrFlush       = "failed to write output"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig     = "Config file (default $XDG_CONFIG_HOME/ansiprint/config.toml)"
	MsgFlagColor      = "Color output: auto, always or never"
	MsgFlagFG         = "Default foreground color restored by [/]"
	MsgFlagBG         = "Default background color restored by [/]"
	MsgFlagNoNewline  = "Do not print the trailing newline"
	MsgFlagValue      = "Value to draw"
	MsgFlagMin        = "Bottom of the scale"
	MsgFlagMax        = "Top of the scale"
	MsgFlagWidth      = "Width in cells"
	MsgFlagBoxWidth   = "Inner width in cells, 0 to fit the widest line"
	MsgFlagFill       = "Color of the filled part"
	MsgFlagBorder     = "Border color"
	MsgFlagTrack      = "Track glyph: blank, light, medium, heavy, dot or line"
	MsgFlagPercent    = "Draw a percentage (0-100) followed by its value"
	MsgFlagAlign      = "Alignment: left, center or right"
	MsgFlagTitle      = "Window title (plain text)"
	MsgFlagTitleAlign = "Title alignment: left, center or right"
	MsgFlagFormat     = "Output format: table, json, yaml or toml"
	MsgFlagPath       = "Print the config file location instead"
	MsgFlagWrap       = "Wrap column, 0 for the default"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/print-example.txt
	msgPrintExampleRaw string
	MsgPrintExample    = strings.TrimRight(msgPrintExampleRaw, "\n")

	//go:embed msgs/printf-long.txt
	msgPrintfLongRaw string
	MsgPrintfLong    = strings.TrimSpace(msgPrintfLongRaw)

	//go:embed msgs/printf-example.txt
	msgPrintfExampleRaw string
	MsgPrintfExample    = strings.TrimRight(msgPrintfExampleRaw, "\n")

	//go:embed msgs/bar-example.txt
	msgBarExampleRaw string
	MsgBarExample    = strings.TrimRight(msgBarExampleRaw, "\n")

	//go:embed msgs/banner-example.txt
	msgBannerExampleRaw string
	MsgBannerExample    = strings.TrimRight(msgBannerExampleRaw, "\n")

	//go:embed msgs/window-example.txt
	msgWindowExampleRaw string
	MsgWindowExample    = strings.TrimRight(msgWindowExampleRaw, "\n")

	//go:embed msgs/demo-long.txt
	msgDemoLongRaw string
	MsgDemoLong    = strings.TrimSpace(msgDemoLongRaw)

	//go:embed msgs/list-example.txt
	msgListExampleRaw string
	MsgListExample    = strings.TrimRight(msgListExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
