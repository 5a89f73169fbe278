package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(NewViper(""))
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 4, cfg.Solve.Workers)
	assert.Equal(t, float32(0), cfg.Solve.Width)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, "single", cfg.Preview.Border)
	assert.Equal(t, 1, cfg.Preview.Scale)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := `
log:
  level: debug
solve:
  width: 320
  height: 240
  strict: true
  workers: 8
output:
  format: json
preview:
  border: rounded
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(NewViper(path))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, float32(320), cfg.Solve.Width)
	assert.Equal(t, float32(240), cfg.Solve.Height)
	assert.True(t, cfg.Solve.Strict)
	assert.Equal(t, 8, cfg.Solve.Workers)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "rounded", cfg.Preview.Border)
}

func TestLoad_Env(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TABLELAYOUT_SOLVE_WORKERS", "2")
	t.Setenv("TABLELAYOUT_OUTPUT_FORMAT", "json")

	cfg, err := Load(NewViper(""))
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Solve.Workers)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("solve:\n  workers: 0\n"), 0o644))

	_, err := Load(NewViper(path))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Log:     LogConfig{Level: "info", Format: "console"},
			Solve:   SolveConfig{Workers: 1},
			Output:  OutputConfig{Format: "text"},
			Preview: PreviewConfig{Scale: 1},
		}
	}

	tests := map[string]struct {
		mutate  func(*Config)
		wantErr string
	}{
		"valid":          {mutate: func(*Config) {}},
		"negative width": {mutate: func(c *Config) { c.Solve.Width = -1 }, wantErr: "negative"},
		"infinite width": {mutate: func(c *Config) { c.Solve.Width = float32(math.Inf(1)) }, wantErr: "finite"},
		"NaN height":     {mutate: func(c *Config) { c.Solve.Height = float32(math.NaN()) }, wantErr: "finite"},
		"no workers":     {mutate: func(c *Config) { c.Solve.Workers = 0 }, wantErr: "solve.workers"},
		"bad output":     {mutate: func(c *Config) { c.Output.Format = "xml" }, wantErr: "output.format"},
		"bad log format": {mutate: func(c *Config) { c.Log.Format = "logfmt" }, wantErr: "log.format"},
		"zero scale":     {mutate: func(c *Config) { c.Preview.Scale = 0 }, wantErr: "preview.scale"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
