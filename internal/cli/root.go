// Package cli builds the ansiprint command tree.
package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/ansiprint/internal/version"
	"github.com/arthur-debert/ansiprint/pkg/banner"
	"github.com/arthur-debert/ansiprint/pkg/config"
	"github.com/arthur-debert/ansiprint/pkg/errors"
	"github.com/arthur-debert/ansiprint/pkg/logging"
	"github.com/arthur-debert/ansiprint/pkg/markup"
	"github.com/arthur-debert/ansiprint/pkg/terminal"
)

type rootFlags struct {
	verbosity  int
	configPath string
	color      string
	fg         string
	bg         string
}

// app is what every command works with once flags are parsed: the loaded
// configuration and a renderer writing to the command's output.
type app struct {
	cfg      *config.Config
	renderer *markup.Renderer
	out      *bufio.Writer
	restore  func() error
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		flags rootFlags
		a     app
	)

	rootCmd := &cobra.Command{
		Use:     "ansiprint",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(flags.verbosity)
			logging.LogCommand(cmd.Name(), args)
			return a.setup(cmd, &flags)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&flags.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.StringVar(&flags.configPath, "config", "", MsgFlagConfig)
	pf.StringVar(&flags.color, "color", "auto", MsgFlagColor)
	pf.StringVar(&flags.fg, "fg", "", MsgFlagFG)
	pf.StringVar(&flags.bg, "bg", "", MsgFlagBG)

	rootCmd.AddGroup(
		&cobra.Group{ID: "render", Title: "Rendering:"},
		&cobra.Group{ID: "info", Title: "Information:"},
	)

	rootCmd.AddCommand(
		newPrintCmd(&a),
		newPrintfCmd(&a),
		newBarCmd(&a),
		newBannerCmd(&a),
		newWindowCmd(&a),
		newDemoCmd(&a),
		newListCmd(&a),
		newConfigCmd(&a),
		newGuideCmd(&a),
		newVersionCmd(&a),
		newCompletionCmd(),
		newManCmd(),
	)

	return rootCmd
}

// setup loads configuration with the changed root flags layered on top,
// then builds the renderer around the command's output.
func (a *app) setup(cmd *cobra.Command, flags *rootFlags) error {
	overrides := map[string]interface{}{}
	set := cmd.Flags()
	if set.Changed("color") {
		overrides["output.color"] = flags.color
	}
	if set.Changed("fg") {
		overrides["output.default_fg"] = flags.fg
	}
	if set.Changed("bg") {
		overrides["output.default_bg"] = flags.bg
	}

	cfg, err := config.Load(config.Options{Path: flags.configPath, Overrides: overrides})
	if err != nil {
		return err
	}
	mode := cfg.Output.Color

	r := markup.New(cfg.Markup())
	out := bufio.NewWriter(cmd.OutOrStdout())
	put, flush := markup.WriterOutput(out)
	r.Init(put, flush, make([]byte, cfg.Output.BufferSize))

	a.restore = func() error { return nil }
	if f, ok := cmd.OutOrStdout().(*os.File); ok {
		restore, err := terminal.Enable(r, f, mode)
		if err != nil {
			log.Warn().Err(err).Msg("terminal setup failed, colors may not display")
		}
		a.restore = restore
	} else {
		terminal.Probe{NoColor: os.Getenv("NO_COLOR") != ""}.Apply(r, mode)
	}

	if err := r.SetDefaultFG(cfg.Output.DefaultFG); err != nil {
		return err
	}
	if err := r.SetDefaultBG(cfg.Output.DefaultBG); err != nil {
		return err
	}

	a.cfg = cfg
	a.renderer = r
	a.out = out
	return nil
}

// run wraps a command body so output is flushed and the console restored
// whether or not the body fails.
func (a *app) run(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := fn(cmd, args)
		if cerr := a.close(); err == nil {
			err = cerr
		}
		return err
	}
}

func (a *app) close() error {
	if a.out == nil {
		return nil
	}
	flushErr := a.out.Flush()
	restoreErr := a.restore()
	if flushErr != nil {
		return errors.Wrap(flushErr, errors.ErrOutputWrite, MsgErrFlush)
	}
	return restoreErr
}

// requireFeature refuses a widget command switched off in configuration.
func (a *app) requireFeature(name string, on bool) error {
	if on {
		return nil
	}
	return errors.Newf(errors.ErrInvalidInput, MsgErrFeatureOff, name, name).
		WithDetail("feature", name)
}

func (a *app) printer() *banner.Printer {
	return banner.New(a.renderer, a.cfg.Box.Style)
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "info",
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			if err := a.renderer.Print(MsgVersionFormat, version.Version); err != nil {
				return err
			}
			fmt.Fprintf(a.out, MsgCommitFormat, version.Commit)
			fmt.Fprintf(a.out, MsgBuiltFormat, version.Date)
			return nil
		}),
	}
}
