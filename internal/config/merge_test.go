package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/retrograde/internal/config"
)

// writeOverlay is a test helper that writes YAML content to a temp file
// and returns its path.
func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestMergeYAML_FieldOverride(t *testing.T) {
	target := config.New()
	overlay := writeOverlay(t, `
status:
  timeout: 3s
output:
  default_format: json
`)

	require.NoError(t, config.MergeYAML(target, overlay))

	assert.Equal(t, 3*time.Second, target.Status.Timeout)
	assert.Equal(t, "json", target.Output.DefaultFormat)

	// Fields the file does not mention keep their values.
	assert.Equal(t, config.DefaultEndpoint, target.Status.Endpoint)
	assert.Equal(t, config.DefaultLocale, target.Status.Locale)
	assert.True(t, target.Output.Decorations)
	assert.Equal(t, config.DefaultLogLevel, target.Logging.Level)
}

func TestMergeYAML_UnknownKeysIgnored(t *testing.T) {
	target := config.New()
	overlay := writeOverlay(t, `
plugins:
  kubecost: {}
logging:
  level: debug
`)

	require.NoError(t, config.MergeYAML(target, overlay))
	assert.Equal(t, "debug", target.Logging.Level)
}

func TestMergeYAML_EmptyFile(t *testing.T) {
	target := config.New()
	overlay := writeOverlay(t, "# nothing here\n")

	require.NoError(t, config.MergeYAML(target, overlay))
	assert.Equal(t, config.New(), target)
}

func TestMergeYAML_InvalidYAML(t *testing.T) {
	target := config.New()
	overlay := writeOverlay(t, "status: [unterminated")

	err := config.MergeYAML(target, overlay)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config YAML")
}

func TestMergeYAML_BadSectionType(t *testing.T) {
	target := config.New()
	overlay := writeOverlay(t, `
status:
  timeout: forever
`)

	err := config.MergeYAML(target, overlay)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `applying config section "status"`)
}

func TestMergeYAML_NilTarget(t *testing.T) {
	require.Error(t, config.MergeYAML(nil, "unused.yaml"))
}

func TestMergeYAML_MissingFile(t *testing.T) {
	err := config.MergeYAML(config.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
