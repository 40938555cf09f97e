package cli

import (
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kbukum/reddish/errors"
	"github.com/kbukum/reddish/random"
	"github.com/kbukum/reddish/validation"
)

const (
	maxStringLength = 1 << 16
	maxUUIDs        = 10000
)

func randomCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "random",
		Short: "Draw random numbers, items, strings and UUIDs",
	}
	c.AddCommand(
		randomIntCmd(a),
		randomFloatCmd(a),
		randomBoolCmd(a),
		randomChoiceCmd(a),
		randomShuffleCmd(a),
		randomSampleCmd(a),
		randomStringCmd(a),
		randomUUIDCmd(a),
	)
	return c
}

func randomIntCmd(a *app) *cobra.Command {
	var minVal, maxVal int

	cmd := &cobra.Command{
		Use:   "int",
		Short: "Print an integer in [min, max]",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := validation.New().Ordered("min", minVal, maxVal).Error(); err != nil {
				return err
			}
			return a.print(random.Int(minVal, maxVal))
		},
	}
	cmd.Flags().IntVar(&minVal, "min", 0, "lower bound, inclusive")
	cmd.Flags().IntVar(&maxVal, "max", 100, "upper bound, inclusive")
	return cmd
}

func randomFloatCmd(a *app) *cobra.Command {
	var minVal, maxVal float64

	cmd := &cobra.Command{
		Use:   "float",
		Short: "Print a float in [min, max)",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := validation.New().Custom(minVal < maxVal, "min", "must be less than max").Error(); err != nil {
				return err
			}
			return a.print(random.Float(minVal, maxVal))
		},
	}
	cmd.Flags().Float64Var(&minVal, "min", 0, "lower bound, inclusive")
	cmd.Flags().Float64Var(&maxVal, "max", 1, "upper bound, exclusive")
	return cmd
}

func randomBoolCmd(a *app) *cobra.Command {
	var p float64

	cmd := &cobra.Command{
		Use:   "bool",
		Short: "Print true with the given probability",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("probability") {
				return a.print(random.Bool())
			}
			if err := validation.New().Probability("probability", p).Error(); err != nil {
				return err
			}
			return a.print(random.BoolWithProbability(p))
		},
	}
	cmd.Flags().Float64VarP(&p, "probability", "p", 0.5, "chance of true, between 0 and 1")
	return cmd
}

func randomChoiceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "choice <item>...",
		Short: "Print one of the arguments",
		RunE: func(_ *cobra.Command, args []string) error {
			item, ok := random.Choice(args)
			if !ok {
				return errors.MissingField("items")
			}
			return a.print(item)
		},
	}
}

func randomShuffleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shuffle <item>...",
		Short: "Print the arguments in random order",
		RunE: func(_ *cobra.Command, args []string) error {
			items := slices.Clone(args)
			random.Shuffle(items)
			return a.print(items)
		},
	}
}

func randomSampleCmd(a *app) *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "sample <item>...",
		Short: "Print up to --count arguments drawn without replacement",
		RunE: func(_ *cobra.Command, args []string) error {
			if err := validation.New().Min("count", n, 0).Error(); err != nil {
				return err
			}
			return a.print(random.Sample(args, n))
		},
	}
	cmd.Flags().IntVarP(&n, "count", "n", 1, "items to draw")
	return cmd
}

func randomStringCmd(a *app) *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "string",
		Short: "Print a random alphanumeric string",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := validation.New().Min("length", n, 0).Max("length", n, maxStringLength).Error(); err != nil {
				return err
			}
			return a.print(random.String(n))
		},
	}
	cmd.Flags().IntVarP(&n, "length", "l", 16, "number of characters")
	return cmd
}

func randomUUIDCmd(a *app) *cobra.Command {
	var (
		n     int
		parse string
	)

	cmd := &cobra.Command{
		Use:   "uuid",
		Short: "Print version 4 UUIDs, or validate one with --parse",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("parse") {
				id, err := random.ParseUUID("uuid", parse)
				if err != nil {
					return err
				}
				return a.print(map[string]string{
					"uuid":    id.String(),
					"version": strconv.Itoa(int(id.Version())),
					"variant": id.Variant().String(),
				})
			}
			if err := validation.New().Range("count", n, 1, maxUUIDs).Error(); err != nil {
				return err
			}
			ids := make([]string, n)
			for i := range ids {
				ids[i] = random.UUID()
			}
			return a.print(ids)
		},
	}
	cmd.Flags().IntVarP(&n, "count", "n", 1, "number of UUIDs")
	cmd.Flags().StringVar(&parse, "parse", "", "UUID to validate")
	return cmd
}
