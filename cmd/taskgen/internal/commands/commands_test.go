package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("", "", 0)
	require.NoError(t, err)
	require.Equal(t, int64(42), cfg.Seed)
	require.Equal(t, "output/taskgen.sqlite", cfg.OutputPath)
}

func TestLoadConfigOverrides(t *testing.T) {
	cfg, err := loadConfig("", "/tmp/other.sqlite", 99)
	require.NoError(t, err)
	require.Equal(t, int64(99), cfg.Seed)
	require.Equal(t, "/tmp/other.sqlite", cfg.OutputPath)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 5\nmin_users: 10\nmax_users: 20\n"), 0o600))

	cfg, err := loadConfig(path, "", 0)
	require.NoError(t, err)
	require.Equal(t, int64(5), cfg.Seed)
	require.Equal(t, 10, cfg.MinUsers)

	// Flags beat the file.
	cfg, err = loadConfig(path, "", 7)
	require.NoError(t, err)
	require.Equal(t, int64(7), cfg.Seed)
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("min_users: 100\nmax_users: 10\n"), 0o600))

	_, err := loadConfig(path, "", 0)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid configuration")
}
