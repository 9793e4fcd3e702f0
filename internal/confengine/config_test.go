package confengine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type parserSection struct {
	StrictQuoteNewline bool `config:"strictQuoteNewline"`
	FieldsPerRecord    int  `config:"fieldsPerRecord"`
}

const content = `
parser:
  strictQuoteNewline: true
  fieldsPerRecord: 3
logger:
  level: debug
`

func TestLoadContent(t *testing.T) {
	cfg, err := LoadContent([]byte(content))
	require.NoError(t, err)

	assert.True(t, cfg.Has("parser"))
	assert.True(t, cfg.Has("logger.level"))
	assert.False(t, cfg.Has("missing"))

	var p parserSection
	require.NoError(t, cfg.UnpackChild("parser", &p))
	assert.Equal(t, parserSection{StrictQuoteNewline: true, FieldsPerRecord: 3}, p)
}

func TestUnpackChildMissingKeepsDefaults(t *testing.T) {
	cfg, err := LoadContent([]byte("logger:\n  level: info\n"))
	require.NoError(t, err)

	p := parserSection{FieldsPerRecord: -1}
	require.NoError(t, cfg.UnpackChild("parser", &p))
	assert.Equal(t, -1, p.FieldsPerRecord)
}

func TestLoadConfigPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "linecsv.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfigPath(path)
	require.NoError(t, err)

	var p parserSection
	require.NoError(t, cfg.UnpackChild("parser", &p))
	assert.Equal(t, 3, p.FieldsPerRecord)

	_, err = LoadConfigPath(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
