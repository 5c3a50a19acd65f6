package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := load(t.TempDir(), envMap(nil), "")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoad_Layering(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	user := filepath.Join(t.TempDir(), "tada", "config.toml")
	writeFile(t, user, "theme = \"neon\"\nlog_level = \"debug\"\nfile = \"user.json\"\n")
	writeFile(t, filepath.Join(dir, ".tada.toml"), "file = \"project.json\"\n")

	cfg, err := load(dir, envMap(map[string]string{"TADA_LOG_LEVEL": "error"}), user)
	require.NoError(t, err)
	assert.Equal(t, "project.json", cfg.File)
	assert.Equal(t, "neon", cfg.Theme)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.False(t, cfg.NoColor)
}

func TestLoad_Env(t *testing.T) {
	t.Parallel()

	cfg, err := load(t.TempDir(), envMap(map[string]string{
		"TADA_FILE":  "/tmp/x.json",
		"TADA_THEME": "mono",
		"NO_COLOR":   "1",
	}), "")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.json", cfg.File)
	assert.Equal(t, "mono", cfg.Theme)
	assert.True(t, cfg.NoColor)
}

func TestLoad_Malformed(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".tada.toml"), "theme = \n")

	_, err := load(dir, envMap(nil), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".tada.toml")
}

func TestUserConfigFile_XDG(t *testing.T) {
	t.Parallel()

	got := userConfigFile(envMap(map[string]string{"XDG_CONFIG_HOME": "/xdg"}))
	assert.Equal(t, filepath.Join("/xdg", "tada", "config.toml"), got)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "theme case-insensitive", mutate: func(c *Config) { c.Theme = "Neon" }},
		{name: "empty file", mutate: func(c *Config) { c.File = " " }, wantErr: "file"},
		{name: "unknown theme", mutate: func(c *Config) { c.Theme = "solarized" }, wantErr: "theme"},
		{name: "bad level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: "log_level"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
