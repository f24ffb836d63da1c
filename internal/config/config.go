package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/jonstaff/OneRepMax/internal/formula"
)

type Config struct {
	DB      DBConfig      `toml:"database"`
	Display DisplayConfig `toml:"display"`
}

type DBConfig struct {
	ConnectionString string `toml:"connection_string"` // The entire DB connection string.
}

type DisplayConfig struct {
	Formula   string  `toml:"formula"` // Default formula for log and chart.
	Unit      string  `toml:"unit"`
	Increment float32 `toml:"increment"` // Plate rounding for percent.
	MaxReps   int     `toml:"max_reps"`
}

// Returns the directory holding the config file and the default database.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "onerepmax"), nil
}

// Returns the path to the config file.
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func Default() (*Config, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return nil, err
	}

	return &Config{
		DB: DBConfig{
			ConnectionString: "file:" + filepath.Join(dir, "lifts.db"),
		},
		Display: DisplayConfig{
			Formula:   "epley",
			Unit:      "kg",
			Increment: 2.5,
			MaxReps:   12,
		},
	}, nil
}

// LoadConfig reads the configuration from path, or from the default location
// when path is empty. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path, err = GetConfigPath()
		if err != nil {
			return nil, err
		}
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	// A .env file in the working directory is optional.
	_ = godotenv.Load()
	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if dsn := os.Getenv("ONEREPMAX_DATABASE_URL"); dsn != "" {
		c.DB.ConnectionString = dsn
	} else if dsn := os.Getenv("TURSO_DATABASE_URL"); dsn != "" {
		c.DB.ConnectionString = withAuthToken(dsn, os.Getenv("TURSO_AUTH_TOKEN"))
	}

	// Check for a DEV_MODE environment variable.
	if os.Getenv("DEV_MODE") == "true" {
		c.DB.ConnectionString = "file:./local.db"
	}
}

func withAuthToken(dsn, token string) string {
	if token == "" {
		return dsn
	}
	u, err := url.Parse(dsn)
	if err != nil {
		return dsn
	}
	q := u.Query()
	q.Set("authToken", token)
	u.RawQuery = q.Encode()
	return u.String()
}

func (c *Config) Validate() error {
	if c.DB.ConnectionString == "" {
		return errors.New("database connection string is empty")
	}
	if _, err := formula.Lookup(c.Display.Formula); err != nil {
		return fmt.Errorf("invalid display.formula: %w", err)
	}
	if c.Display.Increment < 0 {
		return fmt.Errorf("invalid display.increment %v: must not be negative", c.Display.Increment)
	}
	if c.Display.MaxReps < 1 {
		return fmt.Errorf("invalid display.max_reps %d: must be at least 1", c.Display.MaxReps)
	}
	return nil
}
