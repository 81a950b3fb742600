package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

type DataSource string

const (
	SourceStatic   DataSource = "static"
	SourcePostgres DataSource = "postgres"
	SourceSQLite   DataSource = "sqlite"
)

var ErrUnknownDataSource = errors.New("unknown data source")

type Config struct {
	Http     *HTTPConfig
	Db       *DBConfig
	LogLevel string
	Locale   language.Tag
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DBConfig struct {
	Source     DataSource
	Seed       bool
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	SQLitePath string
}

// DSN renders the PostgreSQL connection string.
func (c *DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// LoadDotEnv reads the given .env files into the environment; missing files are not an error.
func LoadDotEnv(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	http, err := loadHTTPConfig()
	if err != nil {
		return nil, err
	}

	db, err := loadDBConfig()
	if err != nil {
		return nil, err
	}

	locale, err := language.Parse(getEnvOrDefault("COLLATION_LOCALE", "en"))
	if err != nil {
		return nil, fmt.Errorf("invalid COLLATION_LOCALE: %w", err)
	}

	return &Config{
		Http:     http,
		Db:       db,
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
		Locale:   locale,
	}, nil
}

func loadHTTPConfig() (*HTTPConfig, error) {
	const (
		defaultPort         = "8080"
		defaultReadTimeout  = 5 * time.Second
		defaultWriteTimeout = 10 * time.Second
		defaultIdleTimeout  = 60 * time.Second
	)

	readTimeout, err := parseDurationEnv("HTTP_READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("HTTP_WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		return nil, err
	}

	idleTimeout, err := parseDurationEnv("HTTP_IDLE_TIMEOUT", defaultIdleTimeout)
	if err != nil {
		return nil, err
	}

	return &HTTPConfig{
		Port:         getEnvOrDefault("HTTP_PORT", defaultPort),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}, nil
}

func loadDBConfig() (*DBConfig, error) {
	const (
		defaultHost       = "localhost"
		defaultPort       = "5432"
		defaultSSLMode    = "disable"
		defaultSQLitePath = "catalogue.db"
	)

	source := DataSource(getEnvOrDefault("DATA_SOURCE", string(SourceStatic)))
	switch source {
	case SourceStatic, SourcePostgres, SourceSQLite:
	default:
		return nil, fmt.Errorf("invalid DATA_SOURCE: %w %q", ErrUnknownDataSource, source)
	}

	seed, err := strconv.ParseBool(getEnvOrDefault("SEED", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEED: %w", err)
	}

	cfg := &DBConfig{
		Source:     source,
		Seed:       seed,
		Host:       getEnvOrDefault("POSTGRES_HOST", defaultHost),
		Port:       getEnvOrDefault("POSTGRES_PORT", defaultPort),
		User:       os.Getenv("POSTGRES_USER"),
		Password:   os.Getenv("POSTGRES_PASSWORD"),
		Name:       os.Getenv("POSTGRES_DB"),
		SSLMode:    getEnvOrDefault("SSL_MODE", defaultSSLMode),
		SQLitePath: getEnvOrDefault("SQLITE_PATH", defaultSQLitePath),
	}

	if source == SourcePostgres {
		if cfg.User == "" {
			return nil, fmt.Errorf("POSTGRES_USER is required")
		}
		if cfg.Name == "" {
			return nil, fmt.Errorf("POSTGRES_DB is required")
		}
	}

	return cfg, nil
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDurationEnv(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
