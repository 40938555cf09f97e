package cli

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/kbukum/reddish/datetime"
	"github.com/kbukum/reddish/errors"
	"github.com/kbukum/reddish/logger"
)

// now is replaced in tests.
var now = time.Now

func parseDateArg(args []string, i int) (time.Time, error) {
	if i >= len(args) {
		return now(), nil
	}
	t, ok := datetime.ParseDate(args[i])
	if !ok {
		return time.Time{}, errors.InvalidFormat("date", "RFC 3339, YYYY-MM-DD [HH:MM:SS], DD/MM/YYYY, MM/DD/YYYY, DD-MM-YYYY or YYYY/MM/DD").
			WithDetail("got", args[i])
	}
	logger.Get("date").Debug("parsed date", logger.Fields("input", args[i], "utc", datetime.FormatDateISO(t)))
	return t, nil
}

// formatted renders t with the configured strftime pattern.
func (a *app) formatted(t time.Time) error {
	s, err := datetime.FormatDate(t, a.cfg.DateFormat)
	if err != nil {
		return err
	}
	return a.print(s)
}

func dateCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "date",
		Short: "Parse, format and shift dates; dates default to now",
	}

	simple := []struct {
		use, short string
		run        func(time.Time) error
	}{
		{"parse", "Print the date in the configured format", a.formatted},
		{"human", "Print the date as \"December 25, 2023 at  3:30 PM\"", func(t time.Time) error {
			return a.print(datetime.FormatDateHuman(t))
		}},
		{"iso", "Print the date as UTC ISO 8601", func(t time.Time) error {
			return a.print(datetime.FormatDateISO(t))
		}},
		{"ago", "Describe how long ago the date was", func(t time.Time) error {
			return a.print(datetime.TimeAgoFrom(t, now()))
		}},
		{"weekend", "Report whether the date is a Saturday or Sunday", func(t time.Time) error {
			return a.print(datetime.IsWeekend(t))
		}},
		{"start-of-week", "Print Monday 00:00 of the date's week", func(t time.Time) error {
			return a.formatted(datetime.StartOfWeek(t))
		}},
		{"end-of-month", "Print the last second of the date's month", func(t time.Time) error {
			return a.formatted(datetime.EndOfMonth(t))
		}},
	}
	for _, s := range simple {
		c.AddCommand(&cobra.Command{
			Use:   s.use + " [date]",
			Short: s.short,
			Args:  cobra.MaximumNArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				t, err := parseDateArg(args, 0)
				if err != nil {
					return err
				}
				return s.run(t)
			},
		})
	}

	c.AddCommand(
		dateFormatCmd(a),
		dateDaysBetweenCmd(a),
		dateAddDaysCmd(a),
		dateDurationCmd(a),
	)
	return c
}

func dateFormatCmd(a *app) *cobra.Command {
	var pattern string

	cmd := &cobra.Command{
		Use:   "format [date]",
		Short: "Format the date with a strftime --pattern",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			t, err := parseDateArg(args, 0)
			if err != nil {
				return err
			}
			if pattern == "" {
				pattern = a.cfg.DateFormat
			}
			s, err := datetime.FormatDate(t, pattern)
			if err != nil {
				return err
			}
			return a.print(s)
		},
	}
	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "strftime pattern (default: configured date_format)")
	return cmd
}

func dateDaysBetweenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "days-between <from> [to]",
		Short: "Print whole days from one date to another (default now)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(_ *cobra.Command, args []string) error {
			from, err := parseDateArg(args, 0)
			if err != nil {
				return err
			}
			to, err := parseDateArg(args, 1)
			if err != nil {
				return err
			}
			return a.print(datetime.DaysBetween(from, to))
		},
	}
}

func dateAddDaysCmd(a *app) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "add-days [date]",
		Short: "Shift the date by --days calendar days",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			t, err := parseDateArg(args, 0)
			if err != nil {
				return err
			}
			return a.formatted(datetime.AddDays(t, days))
		},
	}
	cmd.Flags().IntVar(&days, "days", 1, "days to add; negative moves back")
	return cmd
}

func dateDurationCmd(a *app) *cobra.Command {
	var long bool

	cmd := &cobra.Command{
		Use:   "duration <seconds>",
		Short: "Render seconds as \"1h 1m 1s\", or in words with --long",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			secs, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return errors.InvalidFormat("seconds", "non-negative integer").WithCause(err)
			}
			if long {
				return a.print(datetime.FormatDurationLong(secs))
			}
			return a.print(datetime.FormatDuration(secs))
		},
	}
	cmd.Flags().BoolVar(&long, "long", false, "spell out units")
	return cmd
}
