package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Storage  StorageConfig
	Auth     AuthConfig
	Mail     MailConfig
}

type ServerConfig struct {
	Addr string `env:"HTTP_ADDR" envDefault:":8080"`
	// PublicBaseURL 是 QR code 內嵌連結的前綴，例如 https://events.example.com
	PublicBaseURL  string   `env:"PUBLIC_BASE_URL" envDefault:"http://127.0.0.1:8080"`
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	Debug          bool     `env:"DEBUG" envDefault:"false"`
}

type DatabaseConfig struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName   string `env:"DB_NAME" envDefault:"postgres"`
	SSLMode  string `env:"DB_SSL_MODE" envDefault:"disable"`
}

type RedisConfig struct {
	Host     string `env:"REDIS_HOST" envDefault:"localhost"`
	Port     string `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type StorageConfig struct {
	Root string `env:"STORAGE_ROOT" envDefault:"./media"`
}

type AuthConfig struct {
	JWTSecret string        `env:"JWT_SECRET,required,notEmpty"`
	TokenTTL  time.Duration `env:"JWT_TTL" envDefault:"24h"`
}

// MailConfig 為空 Host 時不寄信，改用 log notifier
type MailConfig struct {
	Host     string `env:"SMTP_HOST"`
	Port     string `env:"SMTP_PORT" envDefault:"587"`
	User     string `env:"SMTP_USER"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"DEFAULT_FROM_EMAIL" envDefault:"noreply@eventflow.local"`
}

var AppConfig *Config

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	AppConfig = cfg
	return AppConfig, nil
}

func LoadTestConfig() *Config {
	testConfig := &DatabaseConfig{
		Host:     "localhost",
		Port:     "5433", // 測試 DB 用 5433 port
		User:     "postgres",
		Password: "postgres",
		DBName:   "test_db",
		SSLMode:  "disable",
	}

	testRedisConfig := RedisConfig{
		Host:     "localhost",
		Port:     "6380", // 測試 Redis 用 6380 port
		Password: "",
		DB:       1,
	}

	return &Config{
		Server: ServerConfig{
			Addr:           ":0",
			PublicBaseURL:  "http://testserver",
			AllowedOrigins: []string{"*"},
		},
		Database: *testConfig,
		Redis:    testRedisConfig,
		Storage:  StorageConfig{Root: "media"},
		Auth: AuthConfig{
			JWTSecret: "test-secret",
			TokenTTL:  time.Hour,
		},
		Mail: MailConfig{From: "noreply@test.local"},
	}
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s timezone=%s",
		c.Host,
		c.Port,
		c.User,
		c.Password,
		c.DBName,
		c.SSLMode,
		"UTC",
	)
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}
