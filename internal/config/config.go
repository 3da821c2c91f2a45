package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// Драйверы хранилища
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

var (
	// ErrInvalidConfig возвращается при некорректной конфигурации сервиса
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config корневая конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Storage  StorageConfig  `toml:"storage"`
	Admin    AdminConfig    `toml:"admin"`
	Booking  BookingConfig  `toml:"booking"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
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

// DSN собирает строку подключения к PostgreSQL
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StorageConfig выбор бэкенда хранилища.
// "postgres" для продакшена, "memory" для локальной разработки и тестов.
type StorageConfig struct {
	Driver string `toml:"driver"`
}

// AdminConfig учетные данные администратора и параметры сессии.
// Пароль хранится только как bcrypt-хеш.
type AdminConfig struct {
	Username        string `toml:"username"`
	PasswordHash    string `toml:"password_hash"`
	TokenSecret     string `toml:"token_secret"`
	TokenTTLMinutes int    `toml:"token_ttl_minutes"`
}

// BookingConfig параметры бронирования
type BookingConfig struct {
	// LeadTimeMinutes минимальный интервал между "сейчас" и началом слота
	LeadTimeMinutes int `toml:"lead_time_minutes"`
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 10
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 15
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = StorageDriverPostgres
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "salon-service"
	}
	if cfg.Admin.TokenTTLMinutes == 0 {
		cfg.Admin.TokenTTLMinutes = 720
	}
	if cfg.Booking.LeadTimeMinutes == 0 {
		// Исторический дефолт виджета: слот можно занять не раньше чем через 2 часа
		cfg.Booking.LeadTimeMinutes = 120
	}
}

func validate(cfg *Config) error {
	switch cfg.Storage.Driver {
	case StorageDriverPostgres, StorageDriverMemory:
	default:
		return fmt.Errorf("%w: unknown storage driver %q", ErrInvalidConfig, cfg.Storage.Driver)
	}

	if cfg.Storage.Driver == StorageDriverPostgres {
		if cfg.Database.Host == "" || cfg.Database.DBName == "" {
			return fmt.Errorf("%w: database host and dbname are required for postgres storage", ErrInvalidConfig)
		}
	}

	if cfg.Admin.Username == "" || cfg.Admin.PasswordHash == "" {
		return fmt.Errorf("%w: admin username and password_hash are required", ErrInvalidConfig)
	}
	if cfg.Admin.TokenSecret == "" {
		return fmt.Errorf("%w: admin token_secret is required", ErrInvalidConfig)
	}

	if cfg.Booking.LeadTimeMinutes < 0 {
		return fmt.Errorf("%w: booking lead_time_minutes must not be negative", ErrInvalidConfig)
	}

	return nil
}
