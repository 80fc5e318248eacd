package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// config holds the defaults for check; command-line flags override them.
type config struct {
	Format   string `env:"GOVALI_FORMAT" envDefault:"text"`
	Lang     string `env:"GOVALI_LANG" envDefault:"en"`
	FailFast bool   `env:"GOVALI_FAIL_FAST" envDefault:"false"`
	LogLevel string `env:"GOVALI_LOG_LEVEL" envDefault:"warn"`
}

// loadConfig reads the process environment, filling unset variables from envFile when it exists.
func loadConfig(envFile string) (config, error) {
	vars := env.ToMap(os.Environ())
	if envFile != "" {
		file, err := godotenv.Read(envFile)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return config{}, fmt.Errorf("read %s: %w", envFile, err)
		}
		for k, v := range file {
			if _, ok := vars[k]; !ok {
				vars[k] = v
			}
		}
	}
	var c config
	if err := env.ParseWithOptions(&c, env.Options{Environment: vars}); err != nil {
		return config{}, fmt.Errorf("parse environment: %w", err)
	}
	return c, nil
}

func (c config) validate() error {
	switch c.Format {
	case formatText, formatJSON:
	default:
		return fmt.Errorf("unknown output format %q (want text or json)", c.Format)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// newLogger builds a JSON logger on w at the configured level.
func newLogger(level string, w zapcore.WriteSyncer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), w, zap.NewAtomicLevelAt(lvl))
	return zap.New(core).Named("govali"), nil
}
