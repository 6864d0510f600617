package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

const (
	defaultPort         = "5000"
	defaultDatabaseURL  = "fyyur.db"
	defaultMaxOpenConns = 25
	defaultMaxIdleConns = 10
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 10 * time.Second
	defaultIdleTimeout  = 120 * time.Second
)

// ConfigFileEnv names the environment variable pointing at an optional YAML config file.
const ConfigFileEnv = "FYYUR_CONFIG"

type Config struct {
	// runtime environment, "development" enables verbose SQL logging
	Env string `yaml:"env"`

	// http listener settings
	Port         string        `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`

	// database connection
	DatabaseDriver string `yaml:"database_driver"` // sqlite or postgres
	DatabaseURL    string `yaml:"database_url"`    // file path for sqlite, DSN for postgres
	MaxOpenConns   int    `yaml:"max_open_conns"`
	MaxIdleConns   int    `yaml:"max_idle_conns"`

	// origins allowed to call the DELETE endpoint from script
	AllowedOrigins []string `yaml:"allowed_origins"`

	// zap level name (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`
}

// IsDevelopment reports whether the app runs with development defaults.
func (c Config) IsDevelopment() bool {
	return c.Env == "" || c.Env == "development"
}

func defaults() Config {
	return Config{
		Env:            "development",
		Port:           defaultPort,
		ReadTimeout:    defaultReadTimeout,
		WriteTimeout:   defaultWriteTimeout,
		IdleTimeout:    defaultIdleTimeout,
		DatabaseDriver: DriverSQLite,
		DatabaseURL:    defaultDatabaseURL,
		MaxOpenConns:   defaultMaxOpenConns,
		MaxIdleConns:   defaultMaxIdleConns,
		LogLevel:       "info",
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvIntOrDefault(envVar string, defaultVal int) (int, error) {
	valStr := os.Getenv(envVar)
	if valStr == "" {
		return defaultVal, nil
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val <= 0 {
		return 0, fmt.Errorf("invalid %s '%s': must be a positive integer", envVar, valStr)
	}
	return val, nil
}

func getEnvSecondsOrDefault(envVar string, defaultVal time.Duration) (time.Duration, error) {
	secs, err := getEnvIntOrDefault(envVar, int(defaultVal/time.Second))
	if err != nil {
		return 0, err
	}
	return time.Duration(secs) * time.Second, nil
}

// loadFile overlays the YAML file at path onto cfg. A missing file is not an error
// unless the path was given explicitly.
func loadFile(cfg *Config, path string, explicit bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return nil
		}
		return fmt.Errorf("failed to read config file '%s': %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", path, err)
	}
	return nil
}

// LoadConfig builds the configuration from defaults, then the optional YAML file at
// path (or $FYYUR_CONFIG), then environment variables, which win.
func LoadConfig(path string) (Config, error) {
	cfg := defaults()

	explicit := path != ""
	if !explicit {
		path = getEnvOrDefault(ConfigFileEnv, "fyyur.yaml")
		explicit = os.Getenv(ConfigFileEnv) != ""
	}
	if err := loadFile(&cfg, path, explicit); err != nil {
		return Config{}, err
	}

	cfg.Env = getEnvOrDefault("APP_ENV", cfg.Env)
	cfg.Port = getEnvOrDefault("PORT", cfg.Port)
	cfg.DatabaseDriver = strings.ToLower(getEnvOrDefault("DB_DRIVER", cfg.DatabaseDriver))
	cfg.DatabaseURL = getEnvOrDefault("DATABASE_URL", cfg.DatabaseURL)
	cfg.LogLevel = getEnvOrDefault("LOG_LEVEL", cfg.LogLevel)

	var err error
	if cfg.MaxOpenConns, err = getEnvIntOrDefault("DB_MAX_OPEN_CONNS", cfg.MaxOpenConns); err != nil {
		return Config{}, err
	}
	if cfg.MaxIdleConns, err = getEnvIntOrDefault("DB_MAX_IDLE_CONNS", cfg.MaxIdleConns); err != nil {
		return Config{}, err
	}
	if cfg.ReadTimeout, err = getEnvSecondsOrDefault("READ_TIMEOUT_SECONDS", cfg.ReadTimeout); err != nil {
		return Config{}, err
	}
	if cfg.WriteTimeout, err = getEnvSecondsOrDefault("WRITE_TIMEOUT_SECONDS", cfg.WriteTimeout); err != nil {
		return Config{}, err
	}

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = nil
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"http://localhost:" + cfg.Port}
	}

	switch cfg.DatabaseDriver {
	case DriverSQLite, DriverPostgres:
	default:
		return Config{}, fmt.Errorf("unsupported DB_DRIVER '%s' (want %s or %s)", cfg.DatabaseDriver, DriverSQLite, DriverPostgres)
	}

	return cfg, nil
}
