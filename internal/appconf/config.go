package appconf

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPort            = 4000
	DefaultGtfsURL         = "https://www.soundtransit.org/GTFS-rail/40_gtfs.zip"
	DefaultRefreshInterval = 24 * time.Hour
	DefaultRateLimit       = 100
)

// Config holds all the configuration settings for the server.
type Config struct {
	Port             int           `yaml:"port" validate:"gt=0,lte=65535"`
	EnvName          string        `yaml:"env" validate:"oneof=development test production"`
	Env              Environment   `yaml:"-"`
	GtfsURL          string        `yaml:"gtfsURL" validate:"required"`
	CompactStopTimes bool          `yaml:"compactStopTimes"`
	RefreshInterval  time.Duration `yaml:"refreshInterval" validate:"gte=0"`
	LogLevel         string        `yaml:"logLevel" validate:"omitempty,oneof=debug info warn error"`
	Verbose          bool          `yaml:"verbose"`
	ApiKeys          []string      `yaml:"apiKeys" validate:"min=1,dive,required"`
	// RateLimit is the number of requests per second allowed for each API key.
	// It must be positive; a limiter at zero would reject every request.
	RateLimit int `yaml:"rateLimit" validate:"gt=0"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Port:            DefaultPort,
		EnvName:         Development.String(),
		Env:             Development,
		GtfsURL:         DefaultGtfsURL,
		RefreshInterval: DefaultRefreshInterval,
		LogLevel:        "info",
		ApiKeys:         []string{"test"},
		RateLimit:       DefaultRateLimit,
	}
}

// Load builds a Config from defaults, an optional YAML file at path, and then
// environment variables (a .env file in the working directory is read first if
// present). The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("reading .env: %w", err)
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field constraints and normalizes Env from EnvName.
func (c *Config) Validate() error {
	c.EnvName = strings.ToLower(strings.TrimSpace(c.EnvName))
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	c.Env = EnvFlagToEnvironment(c.EnvName)
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("GTFS_URL"); v != "" {
		cfg.GtfsURL = v
	}
	if v := os.Getenv("ENV"); v != "" {
		cfg.EnvName = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT: %q", v)
		}
		cfg.Port = port
	}
	if v := os.Getenv("REFRESH_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid REFRESH_INTERVAL: %q", v)
		}
		cfg.RefreshInterval = d
	}
	if v := os.Getenv("API_KEYS"); v != "" {
		cfg.ApiKeys = ParseAPIKeys(v)
	}
	if v := os.Getenv("RATE_LIMIT"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT: %q", v)
		}
		cfg.RateLimit = limit
	}
	if v := os.Getenv("COMPACT_STOP_TIMES"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid COMPACT_STOP_TIMES: %q", v)
		}
		cfg.CompactStopTimes = b
	}
	return nil
}

// ParseAPIKeys splits a comma separated key list, dropping blanks.
func ParseAPIKeys(list string) []string {
	var keys []string
	for _, key := range strings.Split(list, ",") {
		if key = strings.TrimSpace(key); key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}
