// Package config loads runtime settings from the environment, optionally
// seeded from a dotenv file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

const (
	defaultPort       = "8080"
	defaultEnvFile    = ".env"
	defaultCORSMaxAge = 600

	// AllOrigins is the allow-list entry that admits every origin.
	AllOrigins = "*"
)

// Config holds all runtime configuration values.
type Config struct {
	Port           string
	AllowedOrigins []string
	CORSMaxAge     int // seconds
	LogLevel       zapcore.Level
}

// Load reads ENV_FILE (default .env) if present and then builds a Config
// from the process environment. Variables already set in the environment
// take precedence over the file.
func Load() (Config, error) {
	path := envStr("ENV_FILE", defaultEnvFile)
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config using getenv for lookups.
func FromEnv(getenv func(string) string) (Config, error) {
	get := func(k, d string) string {
		if v := strings.TrimSpace(getenv(k)); v != "" {
			return v
		}
		return d
	}

	cfg := Config{
		Port:           get("PORT", defaultPort),
		AllowedOrigins: ParseOrigins(getenv("ALLOWED_ORIGINS")),
	}

	maxAge, err := strconv.Atoi(get("CORS_MAX_AGE", strconv.Itoa(defaultCORSMaxAge)))
	if err != nil || maxAge < 0 {
		return Config{}, fmt.Errorf("invalid CORS_MAX_AGE %q", getenv("CORS_MAX_AGE"))
	}
	cfg.CORSMaxAge = maxAge

	lvl, err := zapcore.ParseLevel(get("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = lvl

	return cfg, nil
}

// ParseOrigins splits a comma-separated allow-list. Blank entries are
// dropped and an empty list means every origin is allowed.
func ParseOrigins(raw string) []string {
	var origins []string
	for part := range strings.SplitSeq(raw, ",") {
		if o := strings.TrimSpace(part); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{AllOrigins}
	}
	return origins
}

// Addr is the listen address derived from Port.
func (c Config) Addr() string {
	return ":" + c.Port
}

func envStr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
