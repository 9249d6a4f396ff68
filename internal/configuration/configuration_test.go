package configuration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInitializesMissingConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	config, err := Parse(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", config.APIHost)
	assert.Equal(t, 0, config.RequestTimeout)
	require.NotNil(t, config.Files)
	assert.Equal(t, "other", config.Files.DefaultCategory)

	// The default file must now exist on disk.
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestParseMergesDefaultsIntoPartialConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"api_host": "https://assistant.internal"}`), 0644))

	config, err := Parse(path)
	require.NoError(t, err)

	assert.Equal(t, "https://assistant.internal", config.APIHost)
	require.NotNil(t, config.Files)
	assert.Equal(t, "other", config.Files.DefaultCategory)
}

func TestParseRejectsMalformedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))

	_, err := Parse(path)
	assert.Error(t, err)
}
