package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfigDefaults(t *testing.T) {
	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "financas.json", cfg.Data.File)
	assert.Equal(t, "categories.yaml", cfg.Data.CategoriesFile)
	assert.Equal(t, ",", cfg.Export.Delimiter)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	t.Setenv("LEDGER_DATA_FILE", "custom.json")
	t.Setenv("LEDGER_LOG_LEVEL", "debug")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "custom.json", cfg.Data.File)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestInitializeConfigRejectsInvalidLogLevel(t *testing.T) {
	t.Setenv("LEDGER_LOG_LEVEL", "chatty")

	_, err := InitializeConfig()
	assert.Error(t, err)
}

func TestInitializeConfigRejectsInvalidLogFormat(t *testing.T) {
	t.Setenv("LEDGER_LOG_FORMAT", "xml")

	_, err := InitializeConfig()
	assert.Error(t, err)
}

func TestInitializeConfigRejectsInvalidDelimiter(t *testing.T) {
	t.Setenv("LEDGER_EXPORT_DELIMITER", ";;")

	_, err := InitializeConfig()
	assert.Error(t, err)
}

func TestValidateConfigEmptyDataFile(t *testing.T) {
	var cfg Config
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Data.File = ""
	cfg.Export.Delimiter = ","

	assert.Error(t, validateConfig(&cfg))
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	var cfg Config
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(&cfg)
	assert.Equal(t, "debug", logger.GetLevel().String())
}
