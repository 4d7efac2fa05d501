package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAddr          = ":8080"
	DefaultAllowedOrigin = "*"
	DefaultMode          = "release"
)

// Config holds the settings for the dealer process.
type Config struct {
	Addr          string `yaml:"addr"`
	AllowedOrigin string `yaml:"allowed_origin"`
	// Mode is the gin mode: debug, release or test.
	Mode    string `yaml:"mode"`
	Debug   bool   `yaml:"debug"`
	LogFile string `yaml:"log_file"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Addr:          DefaultAddr,
		AllowedOrigin: DefaultAllowedOrigin,
		Mode:          DefaultMode,
	}
}

// Load builds the configuration from defaults, the YAML file at path (if
// path is non-empty), a .env file in the working directory (if present)
// and finally the process environment.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	// Variables already set in the environment win over .env.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load .env: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("DEALER_ADDR"); ok {
		c.Addr = v
	}
	if v, ok := os.LookupEnv("DEALER_ALLOWED_ORIGIN"); ok {
		c.AllowedOrigin = v
	}
	if v, ok := os.LookupEnv("DEALER_MODE"); ok {
		c.Mode = v
	}
	if v, ok := os.LookupEnv("DEALER_LOG_FILE"); ok {
		c.LogFile = v
	}
	if v, ok := os.LookupEnv("DEALER_DEBUG"); ok {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: DEALER_DEBUG: %w", err)
		}
		c.Debug = debug
	}
	return nil
}

// Validate checks the address is set and the mode is known to gin.
func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("config: addr is required")
	}
	switch c.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("config: unknown mode %q", c.Mode)
	}
	return nil
}
