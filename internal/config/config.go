// Package config holds the server and engine settings.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

// ErrInvalidConfig indicates a setting outside its allowed range.
var ErrInvalidConfig = errors.New("invalid configuration")

const (
	DefaultAddr         = ":3000"
	DefaultAllowOrigins = "http://localhost:5173"
	DefaultSearchDepth  = 4
	MaxSearchDepth      = 8
	DefaultLogLevel     = "info"
	DefaultSessionTTL   = 30 * time.Minute
)

type Config struct {
	Addr         string
	AllowOrigins string
	SearchDepth  int
	LogLevel     string
	// SessionTTL evicts games nobody has touched or watched for this long.
	// Zero keeps games forever.
	SessionTTL   time.Duration
}

// Default returns the settings used when nothing is overridden.
func Default() *Config {
	return &Config{
		Addr:         DefaultAddr,
		AllowOrigins: DefaultAllowOrigins,
		SearchDepth:  DefaultSearchDepth,
		LogLevel:     DefaultLogLevel,
		SessionTTL:   DefaultSessionTTL,
	}
}

// Load reads flags from args, falling back to CHECKERS_* environment
// variables and then to the defaults.
func Load(args []string, getenv func(string) string) (*Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	def := Default()

	depthDefault := def.SearchDepth
	if v := getenv("CHECKERS_DEPTH"); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("%w: CHECKERS_DEPTH %q: %v", ErrInvalidConfig, v, err)
		}
		depthDefault = n
	}

	ttlDefault := def.SessionTTL
	if v := getenv("CHECKERS_SESSION_TTL"); v != "" {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("%w: CHECKERS_SESSION_TTL %q: %v", ErrInvalidConfig, v, err)
		}
		ttlDefault = d
	}

	fs := flag.NewFlagSet("checkers", flag.ContinueOnError)
	cfg := &Config{}
	fs.StringVar(&cfg.Addr, "addr", envOr(getenv, "CHECKERS_ADDR", def.Addr), "listen address")
	fs.StringVar(&cfg.AllowOrigins, "origins", envOr(getenv, "CHECKERS_ORIGINS", def.AllowOrigins), "comma-separated CORS origins")
	fs.IntVar(&cfg.SearchDepth, "depth", depthDefault, "search depth of the computer player in plies")
	fs.StringVar(&cfg.LogLevel, "log-level", envOr(getenv, "CHECKERS_LOG_LEVEL", def.LogLevel), "trace | debug | info | warn | error")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", ttlDefault, "evict games idle for this long (0 disables)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("%w: empty listen address", ErrInvalidConfig)
	}
	if c.SearchDepth < 1 || c.SearchDepth > MaxSearchDepth {
		return fmt.Errorf("%w: search depth %d not in [1,%d]", ErrInvalidConfig, c.SearchDepth, MaxSearchDepth)
	}
	if c.SessionTTL < 0 {
		return fmt.Errorf("%w: negative session ttl %s", ErrInvalidConfig, c.SessionTTL)
	}
	if _, ok := ParseLogLevel(c.LogLevel); !ok {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}

// ParseLogLevel maps a level name to fiber's logger level.
func ParseLogLevel(name string) (log.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return log.LevelTrace, true
	case "debug":
		return log.LevelDebug, true
	case "info", "":
		return log.LevelInfo, true
	case "warn", "warning":
		return log.LevelWarn, true
	case "error":
		return log.LevelError, true
	}
	return log.LevelInfo, false
}

func envOr(getenv func(string) string, key, def string) string {
	if v := strings.TrimSpace(getenv(key)); v != "" {
		return v
	}
	return def
}
