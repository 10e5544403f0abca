package rfconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "rframe.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadOverlaysOnlyDefinedKeys(t *testing.T) {
	path := writeTempConfig(t, `
ring_capacity = 8192
log_level = "debug"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, 8192, cfg.RingCapacity)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, Default().MaxPayload, cfg.MaxPayload)
	require.Equal(t, Default().MetricsAddr, cfg.MetricsAddr)
}

func TestLoadRejectsNonPowerOfTwoRingCapacity(t *testing.T) {
	path := writeTempConfig(t, `ring_capacity = 100`)
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadRejectsUnknownLogLevel(t *testing.T) {
	path := writeTempConfig(t, `log_level = "verbose"`)
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.Error(t, err)
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}
