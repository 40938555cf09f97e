package cli

import (
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/kbukum/reddish/str"
	"github.com/kbukum/reddish/validation"
)

func stringCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "string",
		Short: "Change case, pad and truncate text",
		Long: `Change case, pad and truncate text.

Text that starts with '-' must follow "--" so it is not read as flags:

  reddish string kebab -- -_fOO_-BaR_-`,
	}

	for _, conv := range []struct {
		use, short string
		fn         func(string) string
	}{
		{"camel", "Convert snake_case to CamelCase", str.CamelCase},
		{"capitalize", "Uppercase the first letter and lowercase the rest", str.Capitalize},
		{"title", "Alias of capitalize", str.TitleCase},
		{"kebab", "Convert to kebab-case", str.KebabCase},
		{"snake", "Convert camelCase to snake_case", str.SnakeCase},
	} {
		c.AddCommand(&cobra.Command{
			Use:   conv.use + " <text>",
			Short: conv.short,
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				return a.print(conv.fn(args[0]))
			},
		})
	}

	c.AddCommand(stringPadCmd(a), stringTruncateCmd(a))
	return c
}

func stringPadCmd(a *app) *cobra.Command {
	var (
		n    int
		char string
		end  bool
	)

	cmd := &cobra.Command{
		Use:   "pad <text>",
		Short: "Add n pad characters to both ends, or only the end with --end",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			v := validation.New().
				Min("count", n, 0).
				Custom(utf8.RuneCountInString(char) == 1, "char", "must be a single character")
			if err := v.Error(); err != nil {
				return err
			}

			r, _ := utf8.DecodeRuneInString(char)
			if end {
				return a.print(str.PadEndWith(args[0], n, r))
			}
			return a.print(str.PadWith(args[0], n, r))
		},
	}

	cmd.Flags().IntVarP(&n, "count", "n", 1, "pad characters per side")
	cmd.Flags().StringVar(&char, "char", " ", "pad character")
	cmd.Flags().BoolVar(&end, "end", false, "pad only the end")
	return cmd
}

func stringTruncateCmd(a *app) *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "truncate <text>",
		Short: "Drop the last n characters",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := validation.New().Min("count", n, 0).Error(); err != nil {
				return err
			}
			return a.print(str.Truncate(args[0], n))
		},
	}

	cmd.Flags().IntVarP(&n, "count", "n", 1, "characters to drop")
	return cmd
}
