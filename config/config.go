// Package config holds the settings of the geomtrace tool. Settings are read
// from a YAML file, and environment variables override the file.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/osuushi/geom2d"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type TracerConfig struct {
	MaxBounces int     `yaml:"max_bounces"`
	Nudge      float32 `yaml:"nudge"`
}

// NewTracer builds the tracer these settings describe.
func (c TracerConfig) NewTracer() geom2d.Tracer {
	return geom2d.Tracer{Nudge: c.Nudge}
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" | "json"
	File   string `yaml:"file"`   // optional, rotated
}

type RenderConfig struct {
	Scale   float64 `yaml:"scale"` // pixels per scene unit
	Output  string  `yaml:"output"`
	Preview bool    `yaml:"preview"`
}

type Config struct {
	Tracer  TracerConfig  `yaml:"tracer"`
	Logging LoggingConfig `yaml:"logging"`
	Render  RenderConfig  `yaml:"render"`
}

// Env var names used as overrides.
const (
	EnvMaxBounces  = "GEOM2D_MAX_BOUNCES"
	EnvNudge       = "GEOM2D_NUDGE"
	EnvLogLevel    = "GEOM2D_LOG_LEVEL"
	EnvLogFile     = "GEOM2D_LOG_FILE"
	EnvRenderScale = "GEOM2D_RENDER_SCALE"
)

func Defaults() Config {
	return Config{
		Tracer:  TracerConfig{MaxBounces: 16, Nudge: geom2d.DefaultNudge},
		Logging: LoggingConfig{Level: "info", Format: "text"},
		Render:  RenderConfig{Scale: 4, Output: "trace.png"},
	}
}

// Load starts from the defaults, applies the file at path if there is one,
// then the environment, and validates the result. An empty path or a missing
// file leaves the defaults in place.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, errors.Wrap(err, "read config")
		default:
			// Keys missing from the file keep their defaults
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, errors.Wrapf(err, "parse config %s", path)
			}
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// ApplyEnv overrides settings from the environment. Empty variables are
// ignored.
func (c *Config) ApplyEnv() error {
	if v := getenv(EnvMaxBounces); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "%s", EnvMaxBounces)
		}
		c.Tracer.MaxBounces = n
	}
	if v := getenv(EnvNudge); v != "" {
		f, err := strconv.ParseFloat(v, 32)
		if err != nil {
			return errors.Wrapf(err, "%s", EnvNudge)
		}
		c.Tracer.Nudge = float32(f)
	}
	if v := getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := getenv(EnvLogFile); v != "" {
		c.Logging.File = v
	}
	if v := getenv(EnvRenderScale); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.Wrapf(err, "%s", EnvRenderScale)
		}
		c.Render.Scale = f
	}
	return nil
}

func (c Config) Validate() error {
	if c.Tracer.MaxBounces < 0 {
		return errors.Errorf("tracer.max_bounces must not be negative, got %d", c.Tracer.MaxBounces)
	}
	if c.Tracer.Nudge < 0 {
		return errors.Errorf("tracer.nudge must not be negative, got %g", c.Tracer.Nudge)
	}
	if _, err := logrus.ParseLevel(c.Logging.Level); err != nil {
		return errors.Wrap(err, "logging.level")
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return errors.Errorf("logging.format must be text or json, got %q", c.Logging.Format)
	}
	if c.Render.Scale <= 0 {
		return errors.Errorf("render.scale must be positive, got %g", c.Render.Scale)
	}
	return nil
}

func getenv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
