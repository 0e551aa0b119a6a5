package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `{
		"port": 8080,
		"database_url": "postgres://localhost/talent",
		"min_score": 40,
		"limit": 25,
		"log_json": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "postgres://localhost/talent", cfg.DatabaseURL)
	assert.Equal(t, 40, cfg.MinScore)
	assert.Equal(t, 25, cfg.Limit)
	assert.True(t, cfg.LogJSON)
	assert.False(t, cfg.Debug)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := writeConfigFile(t, `{not json`)
	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "empty config is valid", cfg: Config{}},
		{name: "typical config", cfg: Config{Port: 8080, MinScore: 55, Limit: 20, PassMark: 60}},
		{name: "port too large", cfg: Config{Port: 70000}, wantErr: true},
		{name: "negative min score", cfg: Config{MinScore: -1}, wantErr: true},
		{name: "min score over 100", cfg: Config{MinScore: 101}, wantErr: true},
		{name: "negative limit", cfg: Config{Limit: -5}, wantErr: true},
		{name: "pass mark over 100", cfg: Config{PassMark: 120}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Port: 9000, MinScore: 70}
	defaults := Config{
		Port:        8080,
		DatabaseURL: "postgres://localhost/talent",
		MinScore:    40,
		Limit:       20,
		PassMark:    60,
		Debug:       true,
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, 9000, merged.Port, "explicit values win")
	assert.Equal(t, 70, merged.MinScore)
	assert.Equal(t, "postgres://localhost/talent", merged.DatabaseURL)
	assert.Equal(t, 20, merged.Limit)
	assert.Equal(t, 60.0, merged.PassMark)
	assert.True(t, merged.Debug)
}
