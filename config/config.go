// Package config reads the service settings from an optional .env file and
// the environment.
package config

import (
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

type Config struct {
	Port       int    `validate:"gte=1,lte=65535"`
	DataSource string `validate:"required"`

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string

	CORSOrigin string  `validate:"required"`
	RateLimit  float64 `validate:"gte=0"` // requests per second, 0 disables
	RateBurst  int     `validate:"gte=0"`

	// StrictParams rejects requests with unparseable numeric parameters
	// instead of ignoring the parameter.
	StrictParams bool
	PageLimit    int `validate:"gte=1"`
	TopLimit     int `validate:"gte=1"`

	LogLevel        string        `validate:"oneof=trace debug info warn warning error fatal panic"`
	LogFormat       string        `validate:"oneof=text json"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
}

// Load reads envFiles (".env" when none are given) into the environment,
// without overriding variables that are already set, and builds the
// config. Missing env files are ignored.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, errors.Wrap(err, "failed to load env file")
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds the config from lookup, applying defaults for unset keys.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	e := &env{lookup: lookup}

	cfg := Config{
		Port:       e.int("PORT", 5000),
		DataSource: e.str("DATA_SOURCE", "serbian_schools.json"),

		AWSRegion:          e.str("AWS_REGION", ""),
		AWSAccessKeyID:     e.str("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey: e.str("AWS_SECRET_ACCESS_KEY", ""),

		CORSOrigin: e.str("CORS_ORIGIN", "*"),
		RateLimit:  e.float("RATE_LIMIT", 0),
		RateBurst:  e.int("RATE_BURST", 20),

		StrictParams: e.bool("STRICT_PARAMS", false),
		PageLimit:    e.int("PAGE_LIMIT", 50),
		TopLimit:     e.int("TOP_LIMIT", 10),

		LogLevel:        e.str("LOG_LEVEL", "info"),
		LogFormat:       e.str("LOG_FORMAT", "text"),
		ShutdownTimeout: e.duration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
	if err := e.errs.ErrorOrNil(); err != nil {
		return Config{}, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

// Addr is the listen address of the HTTP server.
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

type env struct {
	lookup func(string) (string, bool)
	errs   *multierror.Error
}

func (e *env) str(key, def string) string {
	if v, ok := e.lookup(key); ok && v != "" {
		return v
	}
	return def
}

func (e *env) int(key string, def int) int {
	v, ok := e.lookup(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		e.errs = multierror.Append(e.errs, errors.Wrapf(err, "%s", key))
		return def
	}
	return n
}

func (e *env) float(key string, def float64) float64 {
	v, ok := e.lookup(key)
	if !ok || v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		e.errs = multierror.Append(e.errs, errors.Wrapf(err, "%s", key))
		return def
	}
	return f
}

func (e *env) bool(key string, def bool) bool {
	v, ok := e.lookup(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		e.errs = multierror.Append(e.errs, errors.Wrapf(err, "%s", key))
		return def
	}
	return b
}

func (e *env) duration(key string, def time.Duration) time.Duration {
	v, ok := e.lookup(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		e.errs = multierror.Append(e.errs, errors.Wrapf(err, "%s", key))
		return def
	}
	return d
}
