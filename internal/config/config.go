package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	defaultAddr         = ":8080"
	defaultCurrency     = "Rs"
	defaultLiveInterval = time.Second
	defaultLogLevel     = "info"
)

// Config represents application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Display  DisplayConfig  `mapstructure:"display"`
	Live     LiveConfig     `mapstructure:"live"`
	Log      LogConfig      `mapstructure:"log"`
	Calendar CalendarConfig `mapstructure:"calendar"`
}

// ServerConfig represents the HTTP API configuration
type ServerConfig struct {
	Addr           string   `mapstructure:"addr"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// DisplayConfig represents output formatting preferences
type DisplayConfig struct {
	CurrencySymbol string `mapstructure:"currency_symbol"`
}

// LiveConfig represents the periodic refresh configuration
type LiveConfig struct {
	Interval string `mapstructure:"interval"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// CalendarConfig represents business-day calendar configuration
type CalendarConfig struct {
	HolidaysFile string `mapstructure:"holidays_file"` // Empty: Monday-Friday only
}

// Load loads configuration from file. When configPath is empty and no
// config.yaml is found on the search path, defaults and environment
// variables (DATECALC_*) still apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.datecalc")
		v.AddConfigPath("/etc/datecalc")
	}

	// Read environment variables
	v.SetEnvPrefix("datecalc")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:           defaultAddr,
			AllowedOrigins: []string{"http://localhost:5173", "http://localhost:8080"},
		},
		Display:  DisplayConfig{CurrencySymbol: defaultCurrency},
		Live:     LiveConfig{Interval: defaultLiveInterval.String()},
		Log:      LogConfig{Level: defaultLogLevel},
		Calendar: CalendarConfig{},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.allowed_origins", d.Server.AllowedOrigins)
	v.SetDefault("display.currency_symbol", d.Display.CurrencySymbol)
	v.SetDefault("live.interval", d.Live.Interval)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("calendar.holidays_file", "")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}

	if strings.TrimSpace(c.Display.CurrencySymbol) == "" {
		return fmt.Errorf("display.currency_symbol is required")
	}

	if c.Live.Interval != "" {
		d, err := time.ParseDuration(c.Live.Interval)
		if err != nil {
			return fmt.Errorf("live.interval: %w", err)
		}
		if d <= 0 {
			return fmt.Errorf("live.interval must be positive")
		}
	}

	return nil
}

// GetInterval returns the live refresh interval
func (c *LiveConfig) GetInterval() time.Duration {
	if c.Interval == "" {
		return defaultLiveInterval
	}
	duration, err := time.ParseDuration(c.Interval)
	if err != nil || duration <= 0 {
		return defaultLiveInterval
	}
	return duration
}

// ExpandEnvVars expands environment variables in file paths
func (c *Config) ExpandEnvVars() {
	c.Log.File = os.ExpandEnv(c.Log.File)
	c.Calendar.HolidaysFile = os.ExpandEnv(c.Calendar.HolidaysFile)
}
