package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/osuushi/geom2d"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "geomtrace.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultsAreValid(t *testing.T) {
	cfg := Defaults()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, geom2d.Tracer{Nudge: geom2d.DefaultNudge}, cfg.Tracer.NewTracer())
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := writeConfig(t, `
tracer:
  max_bounces: 3
logging:
  format: json
render:
  preview: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Tracer.MaxBounces)
	assert.Equal(t, float32(geom2d.DefaultNudge), cfg.Tracer.Nudge)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.Render.Preview)
	assert.Equal(t, float64(4), cfg.Render.Scale)
}

func TestLoadRejectsBadFiles(t *testing.T) {
	_, err := Load(writeConfig(t, "tracer: [not, a, map]"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "render:\n  scale: 0\n"))
	assert.EqualError(t, err, "render.scale must be positive, got 0")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvMaxBounces, "7")
	t.Setenv(EnvNudge, "0.25")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogFile, "/tmp/geomtrace.log")
	t.Setenv(EnvRenderScale, "10")

	path := writeConfig(t, "tracer:\n  max_bounces: 3\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Tracer.MaxBounces)
	assert.Equal(t, float32(0.25), cfg.Tracer.Nudge)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/tmp/geomtrace.log", cfg.Logging.File)
	assert.Equal(t, float64(10), cfg.Render.Scale)
}

func TestEnvOverrideParseErrors(t *testing.T) {
	t.Setenv(EnvMaxBounces, "lots")
	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvMaxBounces)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"negative bounces": func(c *Config) { c.Tracer.MaxBounces = -1 },
		"negative nudge":   func(c *Config) { c.Tracer.Nudge = -0.1 },
		"unknown level":    func(c *Config) { c.Logging.Level = "chatty" },
		"unknown format":   func(c *Config) { c.Logging.Format = "xml" },
		"zero scale":       func(c *Config) { c.Render.Scale = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Defaults()
			mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
