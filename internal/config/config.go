package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config содержит параметры сервиса, загружаемые из переменных окружения.
type Config struct {
	DBHost    string `env:"DB_HOST" envDefault:"localhost"`
	DBPort    string `env:"DB_PORT" envDefault:"5432"`
	DBUser    string `env:"DB_USER"`
	DBPass    string `env:"DB_PASS"`
	DBName    string `env:"DB_NAME"`
	APIPort   string `env:"API_PORT" envDefault:"8080"`
	JWTSecret string `env:"JWT_SECRET,required"`
}

// Load читает конфигурацию из окружения.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("не удалось загрузить конфигурацию: %w", err)
	}
	return &cfg, nil
}

// DSN собирает строку подключения к PostgreSQL.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPass, c.DBName,
	)
}
