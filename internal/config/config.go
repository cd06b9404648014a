package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"famtree/internal/domain"
)

const (
	DriverPostgres = "pg"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Port       string   `env:"APP_PORT" envDefault:"8080"`
	DBDriver   string   `env:"DB_DRIVER" envDefault:"pg"`
	PGDSN      string   `env:"PG_DSN"`
	PGMaxConns int32    `env:"PG_MAX_CONNS" envDefault:"10"`
	SQLitePath string   `env:"SQLITE_PATH" envDefault:"./famtree.db"`
	CORSAllow  []string `env:"CORS_ALLOW_ORIGINS" envSeparator:","`

	CanvasWidth  float64 `env:"CANVAS_WIDTH" envDefault:"800"`
	CanvasHeight float64 `env:"CANVAS_HEIGHT" envDefault:"600"`

	DB dbParts
}

// dbParts assemble PG_DSN when it is not given directly.
type dbParts struct {
	User    string `env:"DB_USER" envDefault:"famtree"`
	Pass    string `env:"DB_PASS" envDefault:"secret"`
	Host    string `env:"DB_HOST" envDefault:"localhost"`
	Port    string `env:"DB_PORT" envDefault:"5432"`
	Name    string `env:"DB_NAME" envDefault:"famtree"`
	SSLMode string `env:"DB_SSLMODE" envDefault:"disable"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if strings.TrimSpace(cfg.PGDSN) == "" {
		p := cfg.DB
		cfg.PGDSN = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", p.User, p.Pass, p.Host, p.Port, p.Name, p.SSLMode)
	}
	cors := cfg.CORSAllow[:0]
	for _, o := range cfg.CORSAllow {
		if v := strings.TrimSpace(o); v != "" {
			cors = append(cors, v)
		}
	}
	cfg.CORSAllow = cors

	switch cfg.DBDriver {
	case DriverPostgres, DriverSQLite:
	default:
		return Config{}, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	if cfg.CanvasWidth <= 0 || cfg.CanvasHeight <= 0 {
		return Config{}, fmt.Errorf("canvas size must be positive")
	}
	return cfg, nil
}

func (c Config) Canvas() domain.Canvas {
	return domain.Canvas{Width: c.CanvasWidth, Height: c.CanvasHeight}
}
