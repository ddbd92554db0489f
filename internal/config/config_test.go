package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func envMap(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestLoadFileMissingUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "pokerhands.hcl", `
log_level = "debug"
seed      = 42
color     = false

odds {
  iterations = 5000
  workers    = 3
}
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.False(t, cfg.ColorEnabled())
	assert.Equal(t, 5000, cfg.Odds.Iterations)
	assert.Equal(t, 3, cfg.Odds.Workers)
	assert.Equal(t, log.DebugLevel, cfg.Level())
}

func TestLoadFilePartialAppliesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadFile(writeFile(t, "partial.hcl", `seed = 9`))
	require.NoError(t, err)
	assert.Equal(t, int64(9), cfg.Seed)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.ColorEnabled())
	assert.Equal(t, defaultIterations, cfg.Odds.Iterations)
}

func TestLoadFileInvalid(t *testing.T) {
	t.Parallel()

	_, err := LoadFile(writeFile(t, "bad.hcl", `log_level = `))
	assert.Error(t, err)

	_, err = LoadFile(writeFile(t, "unknown.hcl", `tables = 3`))
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		env     map[string]string
		check   func(t *testing.T, cfg *Config)
		wantErr bool
	}{
		{
			name: "all variables set",
			env: map[string]string{
				EnvLogLevel:   "warn",
				EnvSeed:       "12345",
				EnvWorkers:    "2",
				EnvIterations: "777",
				EnvNoColor:    "1",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "warn", cfg.LogLevel)
				assert.Equal(t, int64(12345), cfg.Seed)
				assert.Equal(t, 2, cfg.Odds.Workers)
				assert.Equal(t, 777, cfg.Odds.Iterations)
				assert.False(t, cfg.ColorEnabled())
			},
		},
		{
			name: "empty values are ignored",
			env: map[string]string{
				EnvSeed:    "",
				EnvNoColor: "",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Zero(t, cfg.Seed)
				assert.True(t, cfg.ColorEnabled())
			},
		},
		{
			name:    "invalid seed",
			env:     map[string]string{EnvSeed: "not-a-number"},
			wantErr: true,
		},
		{
			name:    "invalid workers",
			env:     map[string]string{EnvWorkers: "many"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			err := cfg.ApplyEnv(envMap(tt.env))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadWithDotenv(t *testing.T) {
	// Not parallel: godotenv writes to the process environment.
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(EnvSeed+"=99\n"), 0o600))
	t.Setenv(EnvSeed, "")
	require.NoError(t, os.Unsetenv(EnvSeed))

	cfg, err := Load(filepath.Join(dir, "missing.hcl"), envFile)
	require.NoError(t, err)
	assert.Equal(t, int64(99), cfg.Seed)

	_, err = Load(filepath.Join(dir, "missing.hcl"), filepath.Join(dir, "no.env"))
	assert.NoError(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.LogLevel = "loud"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Odds.Iterations = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Odds.Workers = -1
	assert.Error(t, cfg.Validate())
}
