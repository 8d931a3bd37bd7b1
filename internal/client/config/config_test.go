package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func setArgs(t *testing.T, args ...string) {
	t.Helper()
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = append([]string{"cli"}, args...)
}

func TestLoadConfig_Defaults(t *testing.T) {
	setArgs(t)

	cfg := LoadConfig()
	require.Equal(t, "taskvault.db", cfg.DatabasePath)
	require.False(t, cfg.InMemory)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	setArgs(t, "-d", "elsewhere.db", "-m")

	cfg := LoadConfig()
	require.Equal(t, "elsewhere.db", cfg.DatabasePath)
	require.True(t, cfg.InMemory)
}

func TestLoadConfig_JsonOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"database_path":"from_json.db","in_memory":true}`), 0o600))
	setArgs(t, "-c", path)

	cfg := LoadConfig()
	require.Equal(t, "from_json.db", cfg.DatabasePath)
	require.True(t, cfg.InMemory)
}

func TestLoadConfig_FlagsBeatJson(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"database_path":"from_json.db"}`), 0o600))
	setArgs(t, "-c", path, "-d", "from_flag.db")

	cfg := LoadConfig()
	require.Equal(t, "from_flag.db", cfg.DatabasePath)
}
