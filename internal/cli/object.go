package cli

import (
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kbukum/reddish/errors"
	"github.com/kbukum/reddish/object"
)

// parseEntries reads key=value arguments. Later keys win.
func parseEntries(args []string) (map[string]string, error) {
	m := make(map[string]string, len(args))
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok || k == "" {
			return nil, errors.InvalidFormat("entry", "key=value").WithDetail("got", arg)
		}
		m[k] = v
	}
	return m, nil
}

func objectCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "object",
		Short: "Inspect and reshape key=value maps",
	}
	c.AddCommand(
		objectKeysCmd(a),
		objectValuesCmd(a),
		objectEntriesCmd(a),
		objectHasCmd(a),
		objectPickCmd(a, "pick", "Keep only the --keys entries", object.Pick[string, string]),
		objectPickCmd(a, "omit", "Drop the --keys entries", object.Omit[string, string]),
		objectMergeCmd(a),
	)
	return c
}

func objectKeysCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "keys <key=value>...",
		Short: "List the keys, sorted",
		RunE: func(_ *cobra.Command, args []string) error {
			m, err := parseEntries(args)
			if err != nil {
				return err
			}
			keys := object.Keys(m)
			slices.Sort(keys)
			return a.print(keys)
		},
	}
}

func objectValuesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "values <key=value>...",
		Short: "List the values, sorted",
		RunE: func(_ *cobra.Command, args []string) error {
			m, err := parseEntries(args)
			if err != nil {
				return err
			}
			values := object.Values(m)
			slices.Sort(values)
			return a.print(values)
		},
	}
}

func objectEntriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "entries <key=value>...",
		Short: "List key and value pairs, sorted by key",
		RunE: func(_ *cobra.Command, args []string) error {
			m, err := parseEntries(args)
			if err != nil {
				return err
			}
			entries := object.Entries(m)
			slices.SortFunc(entries, func(x, y object.Entry[string, string]) int {
				return strings.Compare(x.Key, y.Key)
			})
			rows := make([][]string, len(entries))
			for i, e := range entries {
				rows[i] = []string{e.Key, e.Value}
			}
			return a.print(rows)
		},
	}
}

func objectHasCmd(a *app) *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "has <key=value>...",
		Short: "Report whether --key is present",
		RunE: func(_ *cobra.Command, args []string) error {
			m, err := parseEntries(args)
			if err != nil {
				return err
			}
			return a.print(object.HasKey(m, key))
		},
	}
	cmd.Flags().StringVar(&key, "key", "", "key to look for")
	return cmd
}

func objectPickCmd(a *app, use, short string, fn func(map[string]string, []string) map[string]string) *cobra.Command {
	var keys []string

	cmd := &cobra.Command{
		Use:   use + " <key=value>...",
		Short: short,
		RunE: func(_ *cobra.Command, args []string) error {
			m, err := parseEntries(args)
			if err != nil {
				return err
			}
			return a.print(fn(m, keys))
		},
	}
	cmd.Flags().StringSliceVar(&keys, "keys", nil, "keys to select")
	return cmd
}

func objectMergeCmd(a *app) *cobra.Command {
	var with []string

	cmd := &cobra.Command{
		Use:   "merge <key=value>...",
		Short: "Merge the --with entries over the arguments",
		RunE: func(_ *cobra.Command, args []string) error {
			base, err := parseEntries(args)
			if err != nil {
				return err
			}
			over, err := parseEntries(with)
			if err != nil {
				return err
			}
			return a.print(object.Merge(base, over))
		},
	}
	cmd.Flags().StringSliceVar(&with, "with", nil, "key=value entries that take precedence")
	return cmd
}
