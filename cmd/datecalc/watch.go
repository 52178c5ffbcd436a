package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/date-price-time-calculator/internal/engine"
	"github.com/username/date-price-time-calculator/internal/live"
	"go.uber.org/zap"
)

const clearScreen = "\033[H\033[2J"

func watchCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:       "watch age|duration DATE",
		Short:     "Refresh an age or running duration until interrupted",
		Example:   "  datecalc watch age 1990-06-15\n  datecalc watch duration 2024-01-01T09:00",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"age", "duration"},
		RunE: func(cmd *cobra.Command, args []string) error {
			since, err := engine.ParseInstant(args[1])
			if err != nil {
				return fmt.Errorf("date: %w", err)
			}

			render, err := watchRender(args[0], since, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			refresher := live.NewRefresher(cfg.Live.GetInterval(), render, logger)
			logger.Info("Watching",
				zap.String("calculator", args[0]),
				zap.Time("since", since),
				zap.Duration("interval", cfg.Live.GetInterval()))

			if timeout > 0 {
				return refresher.RunWithTimeout(timeout)
			}
			return refresher.Run(context.Background())
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Stop after this long (0 runs until interrupted)")

	return cmd
}

func watchRender(calc string, since time.Time, out io.Writer) (live.RenderFunc, error) {
	f := formatter()

	switch calc {
	case "age":
		return func(now time.Time) error {
			_, err := fmt.Fprintf(out, "%s%s\n", clearScreen, f.AgeDetail(engine.Age(since, now)))
			return err
		}, nil

	case "duration":
		cal := loadCalendar()
		return func(now time.Time) error {
			rep := engine.ComputeDuration(since, now, engine.WithCalendar(cal))
			_, err := fmt.Fprintf(out, "%s%s\n", clearScreen, f.DurationDetail(rep))
			return err
		}, nil

	default:
		return nil, fmt.Errorf("unknown calculator %q (want age or duration)", calc)
	}
}
