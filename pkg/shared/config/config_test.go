package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := `logger:
  level: debug
  json_format: true
spfx:
  package_manager: yarn
  output: md
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.True(t, GetBoolValue(cfg, "Logger.JSONFormat", false))
	assert.True(t, GetBoolValue(cfg, "Logger.DisableTime", true))
	assert.Equal(t, "yarn", cfg.SPFx.PackageManager)
	assert.Equal(t, "md", cfg.SPFx.Output)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestLoadConfigMissingDefaultFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("O365_CONFIG", "")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name       string
		cfg        *Config
		env        map[string]string
		wantErr    string
		wantPM     string
		wantOutput string
	}{
		{
			name:       "defaults",
			cfg:        &Config{},
			wantPM:     "npm",
			wantOutput: "text",
		},
		{
			name:       "environment overrides file values",
			cfg:        &Config{SPFx: SPFx{PackageManager: "yarn", Output: "json"}},
			env:        map[string]string{"O365_SPFX_PACKAGE_MANAGER": "PNPM", "O365_SPFX_OUTPUT": "md"},
			wantPM:     "pnpm",
			wantOutput: "md",
		},
		{
			name:    "unknown log level",
			cfg:     &Config{Logger: Logger{Level: "verbose"}},
			wantErr: `YAML global config: logger directive is invalid: unknown log level "verbose", expected one of trace, debug, info, warn, error`,
		},
		{
			name:    "nil config",
			wantErr: "YAML global config: configuration object is nil",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("O365_LOG_LEVEL", "")
			t.Setenv("O365_SPFX_PACKAGE_MANAGER", "")
			t.Setenv("O365_SPFX_OUTPUT", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			err := ValidateConfig(tt.cfg)
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPM, tt.cfg.SPFx.PackageManager)
			assert.Equal(t, tt.wantOutput, tt.cfg.SPFx.Output)
		})
	}
}

func TestSetThen(t *testing.T) {
	assert.Equal(t, "npm", SetThen("", "npm"))
	assert.Equal(t, "yarn", SetThen("yarn", "npm"))
	assert.Equal(t, 3, SetThen(0, 3))
}
