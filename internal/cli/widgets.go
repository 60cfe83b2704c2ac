package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/ansiprint/pkg/banner"
	"github.com/arthur-debert/ansiprint/pkg/bar"
	"github.com/arthur-debert/ansiprint/pkg/errors"
)

// barBufferSize bounds the bar markup. Wider bars are cut by the composer
// at a whole cell, keeping the closing tag.
const barBufferSize = 4096

func newBarCmd(a *app) *cobra.Command {
	var (
		value, min, max float64
		width, percent  int
		color, track    string
	)

	cmd := &cobra.Command{
		Use:     "bar",
		Short:   MsgBarShort,
		Example: MsgBarExample,
		Args:    cobra.NoArgs,
		GroupID: "render",
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			if err := a.requireFeature("bar", a.cfg.Features.Bar); err != nil {
				return err
			}
			flags := cmd.Flags()
			if !flags.Changed("value") && !flags.Changed("percent") {
				return errors.New(errors.ErrInvalidInput, MsgErrBarValue)
			}
			if color != "" && !a.renderer.Attrs().LookupString(color).IsColor() {
				return errors.Newf(errors.ErrUnknownColor, MsgErrBarColor, color).
					WithDetail("color", color)
			}

			t := a.cfg.Bar.Track
			if flags.Changed("track") {
				var err error
				if t, err = bar.ParseTrack(track); err != nil {
					return err
				}
			}
			if !flags.Changed("width") {
				width = a.cfg.Bar.Width
			}

			c := bar.New(a.renderer.Attrs())
			buf := make([]byte, barBufferSize)
			var out []byte
			if flags.Changed("percent") {
				out = c.RenderPercent(buf, color, width, t, percent)
			} else {
				out = c.Render(buf, color, width, t, value, min, max)
			}
			// The bar is already cut to fit, so it skips the format buffer.
			a.renderer.Emit(out)
			a.renderer.RawByte('\n')
			a.renderer.Flush()
			return nil
		}),
	}

	f := cmd.Flags()
	f.Float64Var(&value, "value", 0, MsgFlagValue)
	f.Float64Var(&min, "min", 0, MsgFlagMin)
	f.Float64Var(&max, "max", 100, MsgFlagMax)
	f.IntVarP(&width, "width", "w", 20, MsgFlagWidth)
	f.IntVarP(&percent, "percent", "p", 0, MsgFlagPercent)
	f.StringVarP(&color, "fill", "f", "green", MsgFlagFill)
	f.StringVarP(&track, "track", "t", "light", MsgFlagTrack)
	return cmd
}

func newBannerCmd(a *app) *cobra.Command {
	var (
		color, align string
		width        int
	)

	cmd := &cobra.Command{
		Use:     "banner <line>...",
		Short:   MsgBannerShort,
		Example: MsgBannerExample,
		Args:    cobra.MinimumNArgs(1),
		GroupID: "render",
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			if err := a.requireFeature("banner", a.cfg.Features.Banner); err != nil {
				return err
			}
			al, err := banner.ParseAlign(align)
			if err != nil {
				return err
			}
			p := a.printer()
			return p.Banner(color, width, al, "%s", strings.Join(args, "\n"))
		}),
	}

	f := cmd.Flags()
	f.StringVarP(&color, "border", "b", "cyan", MsgFlagBorder)
	f.StringVarP(&align, "align", "a", "left", MsgFlagAlign)
	f.IntVarP(&width, "width", "w", 0, MsgFlagBoxWidth)
	return cmd
}

func newWindowCmd(a *app) *cobra.Command {
	var (
		color, align, titleAlign, title string
		width                           int
	)

	cmd := &cobra.Command{
		Use:     "window <line>...",
		Short:   MsgWindowShort,
		Example: MsgWindowExample,
		Args:    cobra.ArbitraryArgs,
		GroupID: "render",
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			if err := a.requireFeature("window", a.cfg.Features.Window); err != nil {
				return err
			}
			al, err := banner.ParseAlign(align)
			if err != nil {
				return err
			}
			tal, err := banner.ParseAlign(titleAlign)
			if err != nil {
				return err
			}
			p := a.printer()

			w := p.Window(color, width, tal, title)
			for _, line := range args {
				if err := w.Line(al, "%s", line); err != nil {
					return err
				}
			}
			w.End()
			return nil
		}),
	}

	f := cmd.Flags()
	f.StringVarP(&color, "border", "b", "cyan", MsgFlagBorder)
	f.StringVarP(&align, "align", "a", "left", MsgFlagAlign)
	f.StringVar(&title, "title", "", MsgFlagTitle)
	f.StringVar(&titleAlign, "title-align", "center", MsgFlagTitleAlign)
	f.IntVarP(&width, "width", "w", 40, MsgFlagWidth)
	return cmd
}
