package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/ansiprint/internal/version"
	"github.com/arthur-debert/ansiprint/pkg/catalog"
	"github.com/arthur-debert/ansiprint/pkg/config"
	"github.com/arthur-debert/ansiprint/pkg/guide"
)

func newListCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:       "list [all|colors|styles|emoji]",
		Short:     MsgListShort,
		Example:   MsgListExample,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"all", "colors", "styles", "emoji"},
		GroupID:   "info",
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			section := catalog.SectionAll
			if len(args) == 1 {
				s, err := catalog.ParseSection(args[0])
				if err != nil {
					return err
				}
				section = s
			}
			f, err := catalog.ParseFormat(format)
			if err != nil {
				return err
			}
			return catalog.Build(a.renderer).
				Section(section).
				Render(a.out, f, a.renderer.Enabled())
		}),
	}
	cmd.Flags().StringVarP(&format, "format", "f", "table", MsgFlagFormat)
	return cmd
}

func newConfigCmd(a *app) *cobra.Command {
	var showPath bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Args:    cobra.NoArgs,
		GroupID: "info",
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			if showPath {
				fmt.Fprintln(a.out, config.DefaultPath())
				return nil
			}
			out, err := a.cfg.TOML()
			if err != nil {
				return err
			}
			_, err = a.out.Write(out)
			return err
		}),
	}
	cmd.Flags().BoolVar(&showPath, "path", false, MsgFlagPath)
	return cmd
}

func newGuideCmd(a *app) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:       "guide [topic]",
		Short:     MsgGuideShort,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: guide.Topics(),
		GroupID:   "info",
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			topic := guide.DefaultTopic
			if len(args) == 1 {
				topic = args[0]
			}
			gr := &guide.Renderer{Style: "notty", Width: width}
			if a.renderer.Enabled() {
				gr.Style = "auto"
			}
			text, err := gr.Render(topic)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(a.out, text)
			return err
		}),
	}
	cmd.Flags().IntVarP(&width, "width", "w", 0, MsgFlagWrap)
	return cmd
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "info",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			switch args[0] {
			case "bash":
				err = cmd.Root().GenBashCompletionV2(cmd.OutOrStdout(), true)
			case "zsh":
				err = cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				err = cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				err = cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			if err != nil {
				log.Error().Err(err).Str("shell", args[0]).Msg("Failed to generate completion")
			}
			return err
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "man",
		Short:   MsgManShort,
		Args:    cobra.NoArgs,
		Hidden:  true,
		GroupID: "info",
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "ANSIPRINT",
				Section: "1",
				Source:  "ansiprint " + version.Version,
				Manual:  "ansiprint manual",
			}
			return doc.GenMan(cmd.Root(), header, cmd.OutOrStdout())
		},
	}
}
