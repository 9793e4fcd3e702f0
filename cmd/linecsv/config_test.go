package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
	assert.Equal(t, -1, cfg.Parser.FieldsPerRecord)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "linecsv.yaml")
	content := `
logger:
  level: debug
  stdout: true
parser:
  strictQuoteNewline: true
  continueOnError: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.True(t, cfg.Logger.Stdout)
	assert.True(t, cfg.Parser.StrictQuoteNewline)
	assert.True(t, cfg.Parser.ContinueOnError)
	assert.Equal(t, -1, cfg.Parser.FieldsPerRecord, "unset keys keep their defaults")
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorContains(t, err, "absent.yaml")
}
