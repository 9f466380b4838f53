// Package config loads the static server's settings from the environment.
package config

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/Its-donkey/portfolio-fx/logging"
)

// Config holds the portfolio server settings.
type Config struct {
	ListenAddr string `env:"PORTFOLIO_LISTEN" envDefault:"127.0.0.1:4173"`
	StaticDir  string `env:"PORTFOLIO_STATIC_DIR" envDefault:"web"`
	ResumePath string `env:"PORTFOLIO_RESUME_PATH" envDefault:"resources/resume.pdf"`
	LogLevel   string `env:"PORTFOLIO_LOG_LEVEL" envDefault:"INFO"`
}

// FromEnv loads optional .env files and parses the process environment.
// Missing .env files are ignored.
func FromEnv(files ...string) (Config, error) {
	_ = godotenv.Load(files...)
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	if _, _, err := net.SplitHostPort(c.ListenAddr); err != nil {
		errs = append(errs, fmt.Errorf("listen address %q: %w", c.ListenAddr, err))
	}
	if strings.TrimSpace(c.StaticDir) == "" {
		errs = append(errs, errors.New("static dir is required"))
	}
	if strings.HasPrefix(c.ResumePath, "/") || strings.Contains(c.ResumePath, "..") {
		errs = append(errs, fmt.Errorf("resume path %q must be relative to the static dir", c.ResumePath))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level returns the parsed log level, INFO when unset or invalid.
func (c Config) Level() logging.Level {
	l, _ := logging.ParseLevel(c.LogLevel)
	return l
}
