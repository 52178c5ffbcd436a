package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/date-price-time-calculator/internal/engine"
	"github.com/username/date-price-time-calculator/internal/report"
	"github.com/username/date-price-time-calculator/pkg/dateutil"
	"go.uber.org/zap"
)

func ageCmd() *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "age BIRTH_DATE",
		Short: "Age in years, months and days with totals and next birthday",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			birth, err := engine.ParseInstant(args[0])
			if err != nil {
				return fmt.Errorf("birth date: %w", err)
			}

			now := time.Now()
			if at != "" {
				if now, err = engine.ParseInstant(at); err != nil {
					return fmt.Errorf("--at: %w", err)
				}
			}

			logRange("age", birth, now, false)
			fmt.Fprintln(cmd.OutOrStdout(), formatter().AgeDetail(engine.Age(birth, now)))
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "Compute the age at this date instead of now")

	return cmd
}

func diffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff START END",
		Short: "Calendar difference between two dates with business days",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := parseRange(args)
			if err != nil {
				return err
			}

			logRange("diff", start, end, false)
			rep := engine.DateDifference(start, end, engine.WithCalendar(loadCalendar()))
			fmt.Fprintln(cmd.OutOrStdout(), formatter().DateDiff(rep))
			return nil
		},
	}
}

func addDaysCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "add-days DATE",
		Short: "Move a date by a number of calendar days",
		Example: "  datecalc add-days 2024-02-28 --days 2\n" +
			"  datecalc add-days 2024-03-01 --days -1",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := engine.ParseInstant(args[0])
			if err != nil {
				return fmt.Errorf("date: %w", err)
			}

			result := engine.AddDays(base, days)
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", dateutil.FormatDate(result), report.LongDate(result))
			return nil
		},
	}

	cmd.Flags().IntVarP(&days, "days", "n", 0, "Days to add (negative to subtract)")

	return cmd
}

func timeCmd() *cobra.Command {
	var op string

	cmd := &cobra.Command{
		Use:   "time A B",
		Short: "Add or subtract two H:M:S durations",
		Example: "  datecalc time 1:30 0:45 --op subtract\n" +
			"  datecalc time 23:30:00 2:00:00",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			operation, err := engine.ParseOp(op)
			if err != nil {
				return err
			}

			result := engine.CombineTimes(parseClockArg(args[0]), parseClockArg(args[1]), operation)
			fmt.Fprintf(cmd.OutOrStdout(), "Time Operation Result: %s\n", result)
			return nil
		},
	}

	cmd.Flags().StringVar(&op, "op", "add", "Operation: add or subtract")

	return cmd
}

func spanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "span START END",
		Short: "Time between two times of day, wrapping past midnight",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := engine.ParseTimeOfDay(args[0])
			if err != nil {
				return fmt.Errorf("start: %w", err)
			}
			end, err := engine.ParseTimeOfDay(args[1])
			if err != nil {
				return fmt.Errorf("end: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Time Duration: %s\n", engine.TimeOfDayDuration(start, end))
			return nil
		},
	}
}

func durationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "duration START END",
		Short: "Full duration report between two dates or datetimes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := parseRange(args)
			if err != nil {
				return err
			}

			logRange("duration", start, end, true)
			rep := engine.ComputeDuration(start, end, engine.WithCalendar(loadCalendar()))
			fmt.Fprintln(cmd.OutOrStdout(), formatter().DurationDetail(rep))
			return nil
		},
	}
}

func priceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "price RATE HOURS [MINUTES]",
		Short: "Charge an hourly rate for a duration",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			minutes := ""
			if len(args) == 3 {
				minutes = args[2]
			}

			q := engine.Price(
				engine.ParseDecimalOrZero(args[0]),
				engine.ParseIntOrZero(args[1]),
				engine.ParseIntOrZero(minutes),
			)
			fmt.Fprintln(cmd.OutOrStdout(), formatter().Price(q))
			return nil
		},
	}
}

func parseRange(args []string) (time.Time, time.Time, error) {
	start, err := engine.ParseInstant(args[0])
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("start: %w", err)
	}
	end, err := engine.ParseInstant(args[1])
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("end: %w", err)
	}
	return start, end, nil
}

// parseClockArg reads "H", "H:M" or "H:M:S"; unreadable parts count as zero
func parseClockArg(s string) engine.ClockDuration {
	parts := strings.SplitN(s, ":", 3)
	for len(parts) < 3 {
		parts = append(parts, "")
	}
	return engine.ParseClockDuration(parts[0], parts[1], parts[2])
}

// logRange notes why a range report is about to come back empty
func logRange(calc string, start, end time.Time, strict bool) {
	if err := engine.CheckRange(start, end, strict); err != nil {
		logger.Debug("Range yields an empty report",
			zap.String("calculator", calc),
			zap.Error(err))
	}
}
