package cli

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/kbukum/reddish/collection"
	"github.com/kbukum/reddish/validation"
)

// keyFuncs are the grouping keys "--by" accepts.
var keyFuncs = map[string]func(string) string{
	"value": func(s string) string { return s },
	"length": func(s string) string {
		return strconv.Itoa(utf8.RuneCountInString(s))
	},
	"first": func(s string) string {
		r, size := utf8.DecodeRuneInString(s)
		if size == 0 {
			return ""
		}
		return string(r)
	},
}

func keyFunc(by string) (func(string) string, error) {
	fn, ok := keyFuncs[by]
	if !ok {
		return nil, validation.New().
			OneOf("by", by, []string{"value", "length", "first"}).
			Custom(by != "", "by", "is required").
			Error()
	}
	return fn, nil
}

func collectionCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "collection",
		Short: "Chunk, group, deduplicate and pair lists of items",
	}
	c.AddCommand(
		collectionChunkCmd(a),
		collectionFlattenCmd(a),
		collectionGroupCmd(a),
		collectionUniqueCmd(a),
		collectionPartitionCmd(a),
		collectionZipCmd(a),
		collectionCountCmd(a),
	)
	return c
}

func collectionChunkCmd(a *app) *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "chunk <item>...",
		Short: "Split the arguments into groups of --size",
		RunE: func(_ *cobra.Command, args []string) error {
			if err := validation.New().Min("size", size, 1).Error(); err != nil {
				return err
			}
			return a.print(collection.Chunk(args, size))
		},
	}
	cmd.Flags().IntVar(&size, "size", 2, "items per chunk")
	return cmd
}

func collectionFlattenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "flatten <group>...",
		Short: "Flatten comma-separated groups into one list",
		RunE: func(_ *cobra.Command, args []string) error {
			nested := lo.Map(args, func(g string, _ int) []string {
				if g == "" {
					return nil
				}
				return strings.Split(g, ",")
			})
			return a.print(collection.Flatten(nested))
		},
	}
}

func collectionGroupCmd(a *app) *cobra.Command {
	var by string

	cmd := &cobra.Command{
		Use:   "group <item>...",
		Short: "Group the arguments by --by (value, length or first)",
		RunE: func(_ *cobra.Command, args []string) error {
			fn, err := keyFunc(by)
			if err != nil {
				return err
			}
			return a.print(collection.GroupBy(args, fn))
		},
	}
	cmd.Flags().StringVar(&by, "by", "length", "grouping key: value, length or first")
	return cmd
}

func collectionUniqueCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unique <item>...",
		Short: "Drop repeated arguments, keeping first occurrences",
		RunE: func(_ *cobra.Command, args []string) error {
			return a.print(collection.Unique(args))
		},
	}
}

func collectionPartitionCmd(a *app) *cobra.Command {
	var prefix string

	cmd := &cobra.Command{
		Use:   "partition <item>...",
		Short: "Split the arguments by whether they start with --prefix",
		RunE: func(_ *cobra.Command, args []string) error {
			matched, rest := collection.Partition(args, func(s string) bool {
				return strings.HasPrefix(s, prefix)
			})
			return a.print(map[string][]string{"matched": matched, "rest": rest})
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", "", "prefix that selects matched items")
	return cmd
}

func collectionZipCmd(a *app) *cobra.Command {
	var with []string

	cmd := &cobra.Command{
		Use:   "zip <item>...",
		Short: "Pair the arguments with --with items, stopping at the shorter list",
		RunE: func(_ *cobra.Command, args []string) error {
			pairs := collection.Zip(args, with)
			return a.print(lo.Map(pairs, func(p collection.Pair[string, string], _ int) []string {
				return []string{p.A, p.B}
			}))
		},
	}
	cmd.Flags().StringSliceVar(&with, "with", nil, "items to pair with")
	return cmd
}

func collectionCountCmd(a *app) *cobra.Command {
	var by string

	cmd := &cobra.Command{
		Use:   "count <item>...",
		Short: "Count the arguments per --by key (value, length or first)",
		RunE: func(_ *cobra.Command, args []string) error {
			fn, err := keyFunc(by)
			if err != nil {
				return err
			}
			return a.print(collection.CountBy(args, fn))
		},
	}
	cmd.Flags().StringVar(&by, "by", "value", "counting key: value, length or first")
	return cmd
}
