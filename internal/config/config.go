package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

type Config struct {
	Port            string        `envconfig:"PORT" default:"8000"`
	DatabaseURL     string        `envconfig:"DATABASE_URL"`
	DatabaseName    string        `envconfig:"DATABASE_NAME"`
	LogMode         string        `envconfig:"LOG_MODE" default:"development"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	CORSOrigins     string        `envconfig:"CORS_ORIGINS" default:"*"`
	StoreTimeout    time.Duration `envconfig:"STORE_TIMEOUT" default:"3s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"15s"`
}

// Load reads an optional .env file, then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, errors.WithStack(err)
	}
	return &c, nil
}

// AllowedOrigins splits CORS_ORIGINS on commas.
func (c *Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
