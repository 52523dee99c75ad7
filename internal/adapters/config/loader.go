// Package config provides the environment configuration loader for csscalc.
package config

import (
	"os"
	"strconv"
	"strings"

	"go.trai.ch/csscalc/internal/core/domain"
	"go.trai.ch/zerr"
)

// LookupFunc reads an environment variable, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// EnvLoader implements ports.ConfigLoader on top of environment variables.
type EnvLoader struct {
	lookup LookupFunc
}

// NewLoader creates a loader reading the process environment.
func NewLoader() *EnvLoader {
	return NewLoaderWithLookup(os.LookupEnv)
}

// NewLoaderWithLookup creates a loader reading variables through lookup.
func NewLoaderWithLookup(lookup LookupFunc) *EnvLoader {
	return &EnvLoader{lookup: lookup}
}

// Load reads the settings and fills unset values with defaults.
func (l *EnvLoader) Load() (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	outputFmt, err := l.readChoice(EnvOutput, string(cfg.Output),
		string(domain.OutputText), string(domain.OutputJSON), string(domain.OutputYAML))
	if err != nil {
		return nil, err
	}
	cfg.Output = domain.OutputFormat(outputFmt)

	logFmt, err := l.readChoice(EnvLogFormat, string(cfg.LogFormat),
		string(domain.LogPretty), string(domain.LogJSON))
	if err != nil {
		return nil, err
	}
	cfg.LogFormat = domain.LogFormat(logFmt)

	precision, err := l.readInt(EnvPrecision, cfg.Precision, 0, domain.MaxPrecision)
	if err != nil {
		return nil, err
	}
	cfg.Precision = precision

	return cfg, nil
}

func (l *EnvLoader) readChoice(key, fallback string, allowed ...string) (string, error) {
	raw, ok := l.lookup(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback, nil
	}

	value := strings.ToLower(strings.TrimSpace(raw))
	for _, a := range allowed {
		if value == a {
			return value, nil
		}
	}

	return "", zerr.With(
		zerr.With(domain.Detail(domain.ErrInvalidConfig, "variable", key), "value", raw),
		"allowed", strings.Join(allowed, "|"),
	)
}

func (l *EnvLoader) readInt(key string, fallback, lowest, highest int) (int, error) {
	raw, ok := l.lookup(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, zerr.With(
			zerr.With(domain.Detail(domain.ErrInvalidConfig, "variable", key), "value", raw),
			"expected", "integer",
		)
	}
	if parsed < lowest || parsed > highest {
		return 0, zerr.With(
			zerr.With(domain.Detail(domain.ErrInvalidConfig, "variable", key), "value", raw),
			"expected", strconv.Itoa(lowest)+".."+strconv.Itoa(highest),
		)
	}

	return parsed, nil
}
