package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig_PartialOverridesDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "sort:\n  delay: 250ms\n  count: 30\n"))
	require.NoError(t, err)

	want := DefaultConfig()
	want.Sort.Delay = 250 * time.Millisecond
	want.Sort.Count = 30
	assert.Equal(t, want, cfg)
}

func TestLoadConfig_EmptyFile(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"unknown key", "colour: blue\n", "failed to parse"},
		{"bad format", "format: xml\n", "invalid format"},
		{"bad algorithm", "sort:\n  algorithm: heap\n", "unknown algorithm"},
		{"inverted range", "sort:\n  min: 9\n  max: 1\n", "exceeds"},
		{"negative delay", "sort:\n  delay: -1s\n", "delay"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRootCommand_BadConfigIsCommandError(t *testing.T) {
	_, _, err := execute(t, testEnv(nil), "--config", filepath.Join(t.TempDir(), "nope.yaml"), "deque")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
