package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/kbukum/reddish/array"
	"github.com/kbukum/reddish/logger"
	"github.com/kbukum/reddish/str"
	"github.com/kbukum/reddish/validation"
)

// caseConverters are the conversions "array map --case" accepts.
var caseConverters = map[string]func(string) string{
	"camel":      str.CamelCase,
	"capitalize": str.Capitalize,
	"kebab":      str.KebabCase,
	"snake":      str.SnakeCase,
}

func arrayCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "array",
		Short: "Combine, search and transform lists of items",
	}
	c.AddCommand(
		arrayConcatCmd(a),
		arrayDifferenceCmd(a),
		arrayIndexCmd(a),
		arrayJoinCmd(a),
		arrayContainsCmd(a),
		arrayFilterCmd(a),
		arrayMapCmd(a),
	)
	return c
}

func arrayConcatCmd(a *app) *cobra.Command {
	var with []string

	cmd := &cobra.Command{
		Use:   "concat <item>...",
		Short: "Append the --with items to the arguments",
		RunE: func(_ *cobra.Command, args []string) error {
			return a.print(array.Concat(args, with))
		},
	}
	cmd.Flags().StringSliceVar(&with, "with", nil, "items to append")
	return cmd
}

func arrayDifferenceCmd(a *app) *cobra.Command {
	var values []string

	cmd := &cobra.Command{
		Use:   "difference <item>...",
		Short: "Collapse repeated neighbours, then remove the --values items",
		RunE: func(_ *cobra.Command, args []string) error {
			return a.print(array.Difference(args, values))
		},
	}
	cmd.Flags().StringSliceVar(&values, "values", nil, "items to remove")
	return cmd
}

func arrayIndexCmd(a *app) *cobra.Command {
	var (
		of   string
		last bool
	)

	cmd := &cobra.Command{
		Use:   "index <item>...",
		Short: "Print the zero-based position of --of, or -1",
		RunE: func(_ *cobra.Command, args []string) error {
			if err := validation.Required("of", of); err != nil {
				return err
			}
			eq := func(s string) bool { return s == of }
			idx := array.FindIndex(args, eq)
			if last {
				idx = array.FindLastIndex(args, eq)
			}
			logger.Get("array").Debug("searched items", logger.Fields("items", len(args), "index", idx))
			return a.print(idx)
		},
	}
	cmd.Flags().StringVar(&of, "of", "", "item to look for")
	cmd.Flags().BoolVar(&last, "last", false, "find the last occurrence")
	return cmd
}

func arrayJoinCmd(a *app) *cobra.Command {
	var sep string

	cmd := &cobra.Command{
		Use:   "join <item>...",
		Short: "Join the arguments with --sep",
		RunE: func(_ *cobra.Command, args []string) error {
			return a.print(array.Join(args, sep))
		},
	}
	cmd.Flags().StringVar(&sep, "sep", ",", "separator")
	return cmd
}

func arrayContainsCmd(a *app) *cobra.Command {
	var value string

	cmd := &cobra.Command{
		Use:   "contains <item>...",
		Short: "Report whether --value is among the arguments",
		RunE: func(_ *cobra.Command, args []string) error {
			return a.print(array.Contains(args, value))
		},
	}
	cmd.Flags().StringVar(&value, "value", "", "item to look for")
	return cmd
}

func arrayFilterCmd(a *app) *cobra.Command {
	var prefix string

	cmd := &cobra.Command{
		Use:   "filter <item>...",
		Short: "Keep the arguments starting with --prefix",
		RunE: func(_ *cobra.Command, args []string) error {
			return a.print(array.Filter(args, func(s string) bool {
				return strings.HasPrefix(s, prefix)
			}))
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", "", "required prefix")
	return cmd
}

func arrayMapCmd(a *app) *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "map <item>...",
		Short: "Convert the case of every argument",
		RunE: func(_ *cobra.Command, args []string) error {
			conv, ok := caseConverters[to]
			if !ok {
				return validation.New().
					OneOf("case", to, []string{"camel", "capitalize", "kebab", "snake"}).
					Custom(to != "", "case", "is required").
					Error()
			}
			return a.print(array.Map(args, conv))
		},
	}
	cmd.Flags().StringVar(&to, "case", "snake", "camel, capitalize, kebab or snake")
	return cmd
}
