package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/ansiprint/internal/version"
	"github.com/arthur-debert/ansiprint/pkg/banner"
	"github.com/arthur-debert/ansiprint/pkg/bar"
	"github.com/arthur-debert/ansiprint/pkg/errors"
	"github.com/arthur-debert/ansiprint/pkg/markup"
)

var demos = map[string]func(*demo) error{
	"showcase":    (*demo).showcase,
	"quick-start": (*demo).quickStart,
	"emoji":       (*demo).emoji,
}

func demoNames() []string {
	names := make([]string, 0, len(demos))
	for name := range demos {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "demo [showcase|quick-start|emoji]",
		Short:     MsgDemoShort,
		Long:      MsgDemoLong,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: demoNames(),
		GroupID:   "render",
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			name := "showcase"
			if len(args) == 1 {
				name = args[0]
			}
			fn, ok := demos[name]
			if !ok {
				return errors.Newf(errors.ErrInvalidInput, MsgErrUnknownDemo, name,
					strings.Join(demoNames(), ", ")).WithDetail("demo", name)
			}
			p := a.printer()
			d := &demo{app: a, r: a.renderer, p: p, bars: bar.New(a.renderer.Attrs())}
			return fn(d)
		}),
	}
}

type demo struct {
	*app
	r    *markup.Renderer
	p    *banner.Printer
	bars *bar.Composer
}

func (d *demo) showcase() error {
	f := d.r.Features()
	r := d.r

	r.Puts("[bold underline]ansiprint demo[/]\n")
	r.Puts("[dim]Colored text and emoji for terminals, consoles and serial lines[/]\n\n")

	r.Puts("[bold]Standard Colors[/]\n")
	r.Puts("  [black]black[/] [red]red[/] [green]green[/] [yellow]yellow[/]" +
		" [blue]blue[/] [magenta]magenta[/] [cyan]cyan[/] [white]white[/]\n\n")

	if f.ExtendedColors {
		r.Puts("[bold]Extended Colors[/]\n")
		r.Puts("  [orange]orange[/] [pink]pink[/] [purple]purple[/] [brown]brown[/]" +
			" [teal]teal[/] [lime]lime[/] [navy]navy[/] [olive]olive[/]" +
			" [maroon]maroon[/] [aqua]aqua[/] [silver]silver[/] [gray]gray[/]\n\n")
	}
	if f.BrightColors {
		r.Puts("[bold]Bright Colors[/]\n")
		r.Puts("  [bright_red]bright_red[/] [bright_green]bright_green[/]" +
			" [bright_yellow]bright_yellow[/] [bright_blue]bright_blue[/]" +
			" [bright_magenta]bright_magenta[/] [bright_cyan]bright_cyan[/]\n\n")
	}
	if f.Styles {
		r.Puts("[bold]Text Styles[/]\n")
		r.Puts("  [bold]bold[/] [dim]dim[/] [italic]italic[/]" +
			" [underline]underline[/] [invert]invert[/]" +
			" [strikethrough]strikethrough[/]\n\n")
	}

	r.Puts("[bold]Foreground on Background[/]\n")
	r.Puts("  [white on red] FAULT [/] [black on yellow] WARN [/]" +
		" [white on green] OK [/] [white on blue] INFO [/]\n\n")

	r.Puts("[bold]Numeric 256-Color[/]\n")
	r.Puts("  [fg:196]fg:196[/] [fg:208]fg:208[/] [fg:226]fg:226[/]" +
		" [fg:46]fg:46[/] [fg:51]fg:51[/] [fg:93]fg:93[/]\n\n")

	if f.Gradients {
		r.Puts("[bold]Rainbow & Gradient[/]\n")
		r.Puts("  [bold][rainbow]System initialization complete[/rainbow][/]\n")
		r.Puts("  [gradient red blue]Gradient: red to blue[/gradient]\n\n")
	}

	if f.Emoji {
		r.Puts("[bold]Emoji Shortcodes[/]\n")
		r.Puts("  :check: check  :cross: cross  :warning: warning" +
			"  :fire: fire  :rocket: rocket  :gear: gear\n")
		r.Puts("  :star: star  :zap: zap  :bug: bug" +
			"  :wrench: wrench  :bell: bell  :sparkles: sparkles\n")
		if f.ExtendedEmoji {
			r.Puts("  :red_box: :orange_box: :yellow_box: :green_box:" +
				" :blue_box: :purple_box: :brown_box: :white_box: :black_box: boxes\n")
		}
		r.Puts("\n")
	}

	if f.Unicode {
		r.Puts("[bold]Unicode Codepoints[/]\n")
		r.Puts("  :U-2714: U-2714  :U-2620: U-2620  :U-2764: U-2764" +
			"  :U-1F525: U-1F525  :U-1F680: U-1F680\n\n")
	}

	if d.cfg.Features.Banner {
		if err := d.banners(); err != nil {
			return err
		}
	}
	if d.cfg.Features.Window {
		if err := d.windows(); err != nil {
			return err
		}
	}
	if d.cfg.Features.Bar {
		if err := d.barGraphs(); err != nil {
			return err
		}
	}
	return d.bootLog()
}

func (d *demo) banners() error {
	d.r.Puts("[bold]Banners[/]\n")
	if err := d.p.Banner("red", 0, banner.AlignLeft,
		"FAULT: Over voltage on rail %s (%.1fV)", "VDD_3V3", 3.6); err != nil {
		return err
	}
	if err := d.p.Banner("green", 0, banner.AlignLeft,
		"Self-test passed -- %d/%d checks OK", 17, 17); err != nil {
		return err
	}
	if err := d.p.Banner("cyan", 40, banner.AlignCenter,
		"Firmware v%d.%d.%d\nBuild: %s\nStatus: %s",
		2, 4, 1, version.Date, "Ready"); err != nil {
		return err
	}
	if err := d.p.Banner("yellow", 0, banner.AlignRight,
		"ADC Channels\n  CH0: %5.2fV\n  CH1: %5.2fV\n  CH2: %5.2fV\n  CH3: %5.2fV",
		3.29, 1.81, 0.42, 2.50); err != nil {
		return err
	}
	d.r.Puts("\n")
	return nil
}

func (d *demo) windows() error {
	d.r.Puts("[bold]Windows[/]\n")

	w := d.p.Window("cyan", 40, banner.AlignCenter, "Sensor Readings")
	lines := []struct {
		format string
		value  float64
	}{
		{"[green]Temperature: %5.1f C[/]", 23.4},
		{"[yellow]Humidity:    %5.1f %%[/]", 61.2},
		{"[red]Pressure:    %5.1f hPa[/]", 1013.2},
	}
	for _, l := range lines {
		if err := w.Line(banner.AlignLeft, l.format, l.value); err != nil {
			return err
		}
	}
	w.End()

	w = d.p.Window("yellow", 30, banner.AlignLeft, "")
	if err := w.Line(banner.AlignCenter, "No title window"); err != nil {
		return err
	}
	if err := w.Line(banner.AlignCenter, "Width = %d", w.Width()); err != nil {
		return err
	}
	w.End()
	d.r.Puts("\n")
	return nil
}

func (d *demo) barGraphs() error {
	d.r.Puts("[bold]Bar Graphs[/]\n")
	samples := []struct {
		track bar.Track
		color string
		load  int
	}{
		{bar.TrackLight, "green", 73},
		{bar.TrackMedium, "cyan", 45},
		{bar.TrackHeavy, "yellow", 40},
		{bar.TrackDot, "blue", 18},
		{bar.TrackLine, "red", 60},
		{bar.TrackBlank, "magenta", 15},
	}
	buf := make([]byte, 128)
	for _, s := range samples {
		graph := d.bars.RenderPercent(buf, s.color, 20, s.track, s.load)
		if err := d.r.Print("  %-6s %s\n", s.track, graph); err != nil {
			return err
		}
	}
	d.r.Puts("\n")
	return nil
}

func (d *demo) bootLog() error {
	r := d.r
	steps := []struct {
		format string
		args   []interface{}
		tail   string
	}{
		{"[dim]%s[/] [bold cyan]BOOT[/]  Hardware rev %d.%d  CPU @ %d MHz\n",
			[]interface{}{"[[00:00.001]]", 3, 2, 168}, ""},
		{"[dim]%s[/] :gear:  [cyan]Peripheral init[/] ",
			[]interface{}{"[[00:00.010]]"}, "[white on green] OK [/]\n"},
		{"[dim]%s[/] :gear:  [cyan]CAN bus[/] ",
			[]interface{}{"[[00:00.030]]"}, "[black on yellow] WARN [/]  no peers detected\n"},
		{"[dim]%s[/] :gear:  [cyan]USB OTG[/] ",
			[]interface{}{"[[00:00.032]]"}, "[white on red] FAULT [/]  [red]VBUS not present[/]\n\n"},
		{"[dim]%s[/] [bold]TASK[/]  Starting scheduler (%d tasks)\n",
			[]interface{}{"[[00:00.050]]", 3}, ""},
		{"[dim]%s[/] [bold]TASK[/]  [green]:check: sensor_read[/]   prio=%d  stk=%d\n",
			[]interface{}{"[[00:00.051]]", 3, 512}, ""},
		{"[dim]%s[/] [bold]TASK[/]  [red]:cross: data_logger[/]   prio=%d  stk=%d",
			[]interface{}{"[[00:00.054]]", 5, 256}, "  [red]stack overflow[/]\n"},
		{"[dim]%s[/] [bold]TASK[/]  [green]:check: watchdog[/]      prio=%d  stk=%d\n\n",
			[]interface{}{"[[00:00.055]]", 1, 128}, ""},
		{"[dim]%s[/] :check: [bold green]System ready[/]  uptime %d ms  free heap %d bytes\n",
			[]interface{}{"[[00:00.060]]", 60, 45312}, ""},
	}

	r.Puts("[bold underline]Embedded System Boot Log[/]\n\n")
	for _, s := range steps {
		if err := r.Print(s.format, s.args...); err != nil {
			return err
		}
		if s.tail != "" {
			r.Puts(s.tail)
		}
	}
	return nil
}

func (d *demo) quickStart() error {
	if err := d.requireFeature("banner", d.cfg.Features.Banner); err != nil {
		return err
	}
	if err := d.requireFeature("window", d.cfg.Features.Window); err != nil {
		return err
	}
	if err := d.requireFeature("bar", d.cfg.Features.Bar); err != nil {
		return err
	}

	if err := d.p.Banner("cyan", 50, banner.AlignCenter,
		":rocket: Sensor Gateway %s\nBuild: %s  :gear: %d cores",
		version.Version, version.Date, 4); err != nil {
		return err
	}
	d.r.Puts("\n")

	buf := make([]byte, 128)
	w := d.p.Window("green", 50, banner.AlignLeft, "Live Readings")
	if err := w.Line(banner.AlignLeft, ":zap: Voltage  %s %5.2f V",
		d.bars.Render(buf, "green", 20, bar.TrackLight, 3.29, 0, 5), 3.29); err != nil {
		return err
	}
	if err := w.Line(banner.AlignLeft, ":fire: Temp     %s %5.1f C",
		d.bars.Render(buf, "yellow", 20, bar.TrackLight, 42.7, 0, 100), 42.7); err != nil {
		return err
	}
	if err := w.Line(banner.AlignLeft, ":warning: Load     %s",
		d.bars.RenderPercent(buf, "red", 20, bar.TrackLight, 87)); err != nil {
		return err
	}
	w.End()
	d.r.Puts("\n")

	d.r.Puts(":check: [green]Network[/]   :check: [green]Storage[/]   :cross: [red]GPS Lock[/]\n")
	d.r.Puts("[bold][rainbow]All systems operational[/rainbow][/]\n")
	return nil
}

// emoji prints every shortcode with its name so misaligned borders show
// which glyphs a terminal draws at an unexpected width.
func (d *demo) emoji() error {
	if err := d.requireFeature("window", d.cfg.Features.Window); err != nil {
		return err
	}
	table := d.r.Emoji()
	if table == nil {
		return d.requireFeature("emoji", false)
	}

	w := d.p.Window("cyan", 24, banner.AlignCenter, "Emoji Width Test")
	for _, e := range table.All() {
		if err := w.Line(banner.AlignLeft, "%s", fmt.Sprintf(":%s: %-14s", e.Name, e.Name)); err != nil {
			return err
		}
	}
	w.End()
	return nil
}
