package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, int32(8193), cfg.HTTP.Port)
	assert.Equal(t, DefaultDatabasePath, cfg.Database.Path)
	assert.Equal(t, "generic", cfg.Themes.Default)
	assert.Equal(t, []string{"generic", "bulma"}, cfg.Themes.Available)
	assert.False(t, cfg.Session.CSRFEnabled)
}

func TestNewConfig_AvailableTemplatesFromEnv(t *testing.T) {
	t.Setenv("AVAILABLE_TEMPLATES", "generic, bulma , ui_toolkit")

	cfg := NewConfig()

	assert.Equal(t, []string{"generic", "bulma", "ui_toolkit"}, cfg.Themes.Available)
}

func TestValidate_DefaultInAllowList(t *testing.T) {
	cfg := NewConfig()

	require.NoError(t, cfg.Validate())
}

func TestValidate_DefaultNotInAllowList(t *testing.T) {
	cfg := NewConfig()
	cfg.Themes.Default = "missing"

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestValidate_EmptyAllowList(t *testing.T) {
	cfg := NewConfig()
	cfg.Themes.Available = nil

	assert.Error(t, cfg.Validate())
}
