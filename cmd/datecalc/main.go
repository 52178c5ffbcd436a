package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/username/date-price-time-calculator/internal/calendar"
	"github.com/username/date-price-time-calculator/internal/config"
	"github.com/username/date-price-time-calculator/internal/report"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	cfg        *config.Config
	logger     = zap.NewNop()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "datecalc",
		Short:         "Date, time, duration and price calculator",
		Long:          "Calendar-aware age, date difference, clock arithmetic, duration and hourly price calculations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			loaded.ExpandEnvVars()
			cfg = loaded

			if cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger(cfg.Log.Level) // Fallback to console
				}
			} else {
				initLogger(cfg.Log.Level)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: search ., $HOME/.datecalc, /etc/datecalc)")

	rootCmd.AddCommand(
		ageCmd(),
		diffCmd(),
		addDaysCmd(),
		timeCmd(),
		spanCmd(),
		durationCmd(),
		priceCmd(),
		watchCmd(),
		serveCmd(),
	)

	return rootCmd
}

// loadCalendar builds the working-day calendar from config. A broken
// holidays file is reported and the weekend rule is used instead.
func loadCalendar() calendar.Calendar {
	cal, err := calendar.New(cfg.Calendar.HolidaysFile, logger)
	if err != nil {
		logger.Warn("Failed to load holidays file, using Monday-Friday",
			zap.String("file", cfg.Calendar.HolidaysFile),
			zap.Error(err))
		return calendar.Weekdays{}
	}
	return cal
}

func formatter() report.Formatter {
	return report.NewFormatter(cfg.Display.CurrencySymbol)
}

func parseLevel(level string) zapcore.Level {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return zapcore.InfoLevel
	}
	return zapLevel
}

func initLogger(level string) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(parseLevel(level))
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	if logFile == "" {
		return nil, fmt.Errorf("log file path is empty")
	}

	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		parseLevel(level),
	)

	return zap.New(core), nil
}
