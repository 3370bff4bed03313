package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Stripe   StripeConfig   `toml:"stripe"`
	SendGrid SendGridConfig `toml:"sendgrid"`
	GeoIP    GeoIPConfig    `toml:"geoip"`
	Admin    AdminConfig    `toml:"admin"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
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
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения к базе данных
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StripeConfig настройки платежного провайдера
type StripeConfig struct {
	SecretKey string `toml:"secret_key"`
}

// SendGridConfig настройки почтового провайдера
type SendGridConfig struct {
	APIKey        string `toml:"api_key"`
	FromEmail     string `toml:"from_email"`
	FromName      string `toml:"from_name"`
	OperatorEmail string `toml:"operator_email"`
}

// GeoIPConfig настройки сервиса геолокации по IP
type GeoIPConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// AdminConfig настройки доступа оператора
type AdminConfig struct {
	APIKey string `toml:"api_key"`
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort == 0 {
		return fmt.Errorf("config: server.http_port is required")
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("config: database.host and database.dbname are required")
	}
	if c.Stripe.SecretKey == "" {
		return fmt.Errorf("config: stripe.secret_key is required")
	}
	if c.SendGrid.APIKey == "" || c.SendGrid.FromEmail == "" || c.SendGrid.OperatorEmail == "" {
		return fmt.Errorf("config: sendgrid.api_key, sendgrid.from_email and sendgrid.operator_email are required")
	}
	if c.Admin.APIKey == "" {
		return fmt.Errorf("config: admin.api_key is required")
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("config: metrics.path is required when metrics are enabled")
	}
	return nil
}
