package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	_ "github.com/joho/godotenv/autoload"
)

// HTTP holds the settings shared by both binaries.
type HTTP struct {
	Port     int    `env:"PORT" envDefault:"3000"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"LOG_FILE"`
}

// Addr returns the listen address for the HTTP server.
func (h HTTP) Addr() string {
	return fmt.Sprintf(":%d", h.Port)
}

type Database struct {
	Host            string        `env:"DB_HOST" envDefault:"localhost"`
	Port            int           `env:"DB_PORT" envDefault:"5432"`
	Username        string        `env:"DB_USERNAME" envDefault:"postgres"`
	Password        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	Name            string        `env:"DB_DATABASE" envDefault:"ecommerce_db"`
	SSLMode         string        `env:"DB_SSLMODE" envDefault:"disable"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"10"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"1h"`
	Bootstrap       bool          `env:"DB_BOOTSTRAP" envDefault:"true"`
}

// DSN builds a key/value connection string for the postgres driver.
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		d.Host, d.Username, d.Password, d.Name, d.Port, d.SSLMode)
}

type Shop struct {
	HTTP
	DB Database
}

type Todo struct {
	HTTP
	Seed         bool  `env:"TODO_SEED" envDefault:"true"`
	InitialViews int64 `env:"TODO_INITIAL_VIEWS" envDefault:"1245"`
}

// LoadShop reads the shop API configuration from the environment.
func LoadShop() (*Shop, error) {
	var cfg Shop
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse shop config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadTodo reads the todo API configuration from the environment.
func LoadTodo() (*Todo, error) {
	var cfg Todo
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse todo config: %w", err)
	}
	if err := cfg.HTTP.validate(); err != nil {
		return nil, err
	}
	if cfg.InitialViews < 0 {
		return nil, fmt.Errorf("TODO_INITIAL_VIEWS must not be negative, got %d", cfg.InitialViews)
	}
	return &cfg, nil
}

func (h HTTP) validate() error {
	if h.Port <= 0 || h.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", h.Port)
	}
	return nil
}

func (s Shop) validate() error {
	if err := s.HTTP.validate(); err != nil {
		return err
	}
	if s.DB.MaxOpenConns < 1 {
		return fmt.Errorf("DB_MAX_OPEN_CONNS must be at least 1, got %d", s.DB.MaxOpenConns)
	}
	return nil
}
