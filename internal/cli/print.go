package cli

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/ansiprint/pkg/errors"
)

func newPrintCmd(a *app) *cobra.Command {
	var noNewline bool

	cmd := &cobra.Command{
		Use:     "print <markup>...",
		Short:   MsgPrintShort,
		Example: MsgPrintExample,
		Args:    cobra.MinimumNArgs(1),
		GroupID: "render",
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			r := a.renderer
			for i, arg := range args {
				if i > 0 {
					r.RawByte(' ')
				}
				r.Puts(arg)
			}
			if !noNewline {
				r.RawByte('\n')
			}
			r.Flush()
			return nil
		}),
	}
	cmd.Flags().BoolVarP(&noNewline, "no-newline", "n", false, MsgFlagNoNewline)
	return cmd
}

func newPrintfCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "printf <format> [args...]",
		Short:   MsgPrintfShort,
		Long:    MsgPrintfLong,
		Example: MsgPrintfExample,
		Args:    cobra.MinimumNArgs(1),
		GroupID: "render",
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			values, err := printfArgs(unescape(args[0]), args[1:])
			if err != nil {
				return err
			}
			return a.renderer.Print(unescape(args[0]), values...)
		}),
	}
}

// printfArgs converts each argument to the type its verb in format
// expects. Arguments beyond the last verb are passed as strings.
func printfArgs(format string, args []string) ([]interface{}, error) {
	values := make([]interface{}, 0, len(args))
	next := 0
	for i := 0; i < len(format) && next < len(args); i++ {
		if format[i] != '%' {
			continue
		}
		i++
		for i < len(format) && strings.IndexByte("+-# 0123456789.", format[i]) >= 0 {
			i++
		}
		if i >= len(format) {
			break
		}
		verb := format[i]
		if verb == '%' {
			continue
		}
		v, err := convertArg(verb, args[next], next+1)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
		next++
	}
	for ; next < len(args); next++ {
		values = append(values, args[next])
	}
	return values, nil
}

func convertArg(verb byte, arg string, pos int) (interface{}, error) {
	switch verb {
	case 'c':
		if utf8.RuneCountInString(arg) == 1 {
			r, _ := utf8.DecodeRuneInString(arg)
			return r, nil
		}
		fallthrough
	case 'd', 'x', 'X', 'o', 'O', 'b', 'U':
		n, err := strconv.ParseInt(arg, 0, 64)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, MsgErrArgNumber, pos, arg, verb)
		}
		return n, nil
	case 'e', 'E', 'f', 'F', 'g', 'G':
		f, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, MsgErrArgNumber, pos, arg, verb)
		}
		return f, nil
	}
	return arg, nil
}

// unescape expands the backslash sequences shells leave alone in quoted
// strings: \n, \t, \\ and \e for ESC.
func unescape(s string) string {
	if strings.IndexByte(s, '\\') < 0 {
		return s
	}
	return strings.NewReplacer(`\n`, "\n", `\t`, "\t", `\e`, "\x1b", `\\`, `\`).Replace(s)
}
