package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("AILFRED_PATH", root)
	t.Setenv("AILFRED_DATA_FILE", "")
	t.Setenv("AILFRED_LOG_LEVEL", "")
	t.Setenv("NO_COLOR", "")
	require.NoError(t, os.Unsetenv("NO_COLOR"))
	return root
}

func TestPaths(t *testing.T) {
	root := isolate(t)

	assert.Equal(t, root, RootPath())
	assert.Equal(t, filepath.Join(root, "config.yaml"), ConfigPath())
	assert.Equal(t, filepath.Join(root, "data", "tasks.txt"), DataFilePath())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	root := isolate(t)

	cfg, err := Load(filepath.Join(root, "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DataFilePath(), cfg.DataFile)
	assert.Equal(t, filepath.Join(root, "data", "tasks.txt"), cfg.DataFile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.ColorEnabled())
	assert.Equal(t, "> ", cfg.PromptText())
	assert.Empty(t, cfg.DateLayouts)
}

func TestLoad_File(t *testing.T) {
	root := isolate(t)
	path := filepath.Join(root, "config.yaml")
	content := `
data_file: /tmp/elsewhere/tasks.txt
log_level: debug
color: false
prompt: ""
date_layouts:
  - 02/01/2006
  - Jan 2, 2006
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/elsewhere/tasks.txt", cfg.DataFile)
	assert.False(t, cfg.ColorEnabled())
	assert.Equal(t, "", cfg.PromptText())
	assert.Equal(t, []string{"02/01/2006", "Jan 2, 2006"}, cfg.DateLayouts)

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	root := isolate(t)
	path := filepath.Join(root, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_file: from-file.txt\nlog_level: error\n"), 0o644))

	t.Setenv("AILFRED_DATA_FILE", "from-env.txt")
	t.Setenv("AILFRED_LOG_LEVEL", "warn")
	t.Setenv("NO_COLOR", "1")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env.txt", cfg.DataFile)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.ColorEnabled())
}

func TestLoad_Malformed(t *testing.T) {
	root := isolate(t)
	path := filepath.Join(root, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_file: [unterminated\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_UnknownLogLevel(t *testing.T) {
	root := isolate(t)
	path := filepath.Join(root, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: loud\n"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "loud")
}
