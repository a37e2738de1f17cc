package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"

	// DefaultPath путь к конфигу, если CONFIG_PATH не задан
	DefaultPath = "config.toml"
)

var (
	ErrReadConfig    = errors.New("config: failed to read config file")
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

type Config struct {
	Server         ServerConfig         `toml:"server"`
	Database       DatabaseConfig       `toml:"database"`
	Storage        StorageConfig        `toml:"storage"`
	Locks          LocksConfig          `toml:"locks"`
	BookingService BookingServiceConfig `toml:"booking_service"`
	Logs           LogsConfig           `toml:"logs"`
	Metrics        MetricsConfig        `toml:"metrics"`
}

type ServerConfig struct {
	HTTPPort        int      `toml:"http_port"`
	ReadTimeout     int      `toml:"read_timeout"`
	WriteTimeout    int      `toml:"write_timeout"`
	IdleTimeout     int      `toml:"idle_timeout"`
	ShutdownTimeout int      `toml:"shutdown_timeout"`
	AllowedOrigins  []string `toml:"allowed_origins"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// StorageConfig выбор хранилища: postgres или memory (с seed-файлом)
type StorageConfig struct {
	Driver   string `toml:"driver"`
	SeedPath string `toml:"seed_path"`
}

// LocksConfig таймауты ожидания блокировок ресурса
type LocksConfig struct {
	WaitTimeoutMs   int `toml:"wait_timeout_ms"`
	DBLockTimeoutMs int `toml:"db_lock_timeout_ms"`
}

func (l LocksConfig) WaitTimeout() time.Duration {
	return time.Duration(l.WaitTimeoutMs) * time.Millisecond
}

func (l LocksConfig) DBLockTimeout() time.Duration {
	return time.Duration(l.DBLockTimeoutMs) * time.Millisecond
}

type BookingServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// Load читает .env (если есть), затем TOML файл, применяет переменные окружения,
// значения по умолчанию и проверяет результат
func Load(path string) (*Config, error) {
	// .env опционален
	_ = godotenv.Load()

	if p := os.Getenv("CONFIG_PATH"); p != "" {
		path = p
	}

	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString(&c.Database.Host, "DB_HOST")
	setString(&c.Database.User, "DB_USER")
	setString(&c.Database.Password, "DB_PASSWORD")
	setString(&c.Database.DBName, "DB_NAME")
	setString(&c.BookingService.URL, "BOOKING_SERVICE_URL")
	setString(&c.Logs.Level, "LOG_LEVEL")

	if v := os.Getenv("DB_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: DB_PORT=%q: %v", ErrInvalidConfig, v, err)
		}
		c.Database.Port = port
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 15
	}

	if c.Storage.Driver == "" {
		c.Storage.Driver = DriverPostgres
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Locks.WaitTimeoutMs == 0 {
		c.Locks.WaitTimeoutMs = 2000
	}
	if c.Locks.DBLockTimeoutMs == 0 {
		c.Locks.DBLockTimeoutMs = 3000
	}

	if c.BookingService.Timeout == 0 {
		c.BookingService.Timeout = 5
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "reservation-engine"
	}
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Locks.WaitTimeoutMs < 0 || c.Locks.DBLockTimeoutMs < 0 {
		return fmt.Errorf("%w: lock timeouts must not be negative", ErrInvalidConfig)
	}

	switch c.Storage.Driver {
	case DriverPostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("%w: database.host and database.dbname are required for postgres", ErrInvalidConfig)
		}
		if c.BookingService.URL == "" {
			return fmt.Errorf("%w: booking_service.url is required for postgres", ErrInvalidConfig)
		}
	case DriverMemory:
		if c.Storage.SeedPath == "" {
			return fmt.Errorf("%w: storage.seed_path is required for memory driver", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown storage.driver %q", ErrInvalidConfig, c.Storage.Driver)
	}

	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
