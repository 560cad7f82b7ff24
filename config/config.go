package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"lasker/meta"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config holds every tunable of the referee client.
type Config struct {
	LogLevel    string        `yaml:"log_level"`
	LogFile     string        `yaml:"log_file"`
	Model       string        `yaml:"model"`
	APIKey      string        `yaml:"api_key"`
	Endpoint    string        `yaml:"endpoint"`
	Timeout     time.Duration `yaml:"timeout"`
	MaxTurns    int           `yaml:"max_turns"`
	Seed        uint64        `yaml:"seed"`
	RecordsDir  string        `yaml:"records_dir"`
	EndSentinel string        `yaml:"end_sentinel"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel:    "info",
		Model:       meta.MODEL,
		Endpoint:    meta.ENDPOINT,
		Timeout:     meta.TIMEOUT_SECONDS * time.Second,
		MaxTurns:    meta.MAX_TURNS,
		Seed:        uint64(time.Now().UnixNano()),
		RecordsDir:  meta.RECORDS_DIR,
		EndSentinel: meta.END_SENTINEL,
	}
}

// Load layers the defaults, the YAML file at path (if any), the given .env
// files (".env" when none are given) and LASKER_* environment variables.
// Missing files are not an error.
func Load(path string, envFiles ...string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return cfg, err
		}
	}

	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("failed to load env file: %w", err)
	}
	if err := cfg.loadEnv(); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func (c *Config) loadEnv() error {
	str := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}
	str("LASKER_LOG_LEVEL", &c.LogLevel)
	str("LASKER_LOG_FILE", &c.LogFile)
	str("LASKER_MODEL", &c.Model)
	str("GEMINI_API_KEY", &c.APIKey)
	str("LASKER_API_KEY", &c.APIKey)
	str("LASKER_ENDPOINT", &c.Endpoint)
	str("LASKER_RECORDS_DIR", &c.RecordsDir)
	str("LASKER_END_SENTINEL", &c.EndSentinel)

	if v := os.Getenv("LASKER_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid LASKER_TIMEOUT: %w", err)
		}
		c.Timeout = d
	}
	if v := os.Getenv("LASKER_MAX_TURNS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid LASKER_MAX_TURNS: %w", err)
		}
		c.MaxTurns = n
	}
	if v := os.Getenv("LASKER_SEED"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid LASKER_SEED: %w", err)
		}
		c.Seed = n
	}
	return nil
}

// Validate rejects values the rest of the program cannot work with.
func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.MaxTurns <= 0 {
		return fmt.Errorf("max turns must be positive, got %d", c.MaxTurns)
	}
	if c.EndSentinel == "" {
		return errors.New("end sentinel must not be empty")
	}
	return nil
}
