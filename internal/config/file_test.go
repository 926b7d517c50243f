package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/video-merger/internal/merge"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile_Full(t *testing.T) {
	t.Setenv("MERGE_HOST", "merge.internal:9000")
	path := writeConfig(t, `
[merge]
endpoint = "http://${MERGE_HOST}/api/videos/merge"
resolution = "Full HD"
output_dir = "/srv/out"

[log]
level = "debug"
format = "json"
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "http://merge.internal:9000/api/videos/merge", cfg.Merge.Endpoint)
	assert.Equal(t, "1920x1080", cfg.Merge.Resolution)
	assert.Equal(t, "/srv/out", cfg.Merge.OutputDir)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadFile_AppliesDefaults(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, "[merge]\noutput_dir = \"/tmp/x\"\n"))
	require.NoError(t, err)
	assert.Equal(t, merge.DefaultEndpoint, cfg.Merge.Endpoint)
	assert.Equal(t, "640x480", cfg.Merge.Resolution)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadFile_MissingDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadFile("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoadFile_MissingExplicitPath(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestLoadFile_InvalidTOML(t *testing.T) {
	_, err := LoadFile(writeConfig(t, "[merge\nendpoint ="))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestLoadFile_UnknownResolution(t *testing.T) {
	_, err := LoadFile(writeConfig(t, "[merge]\nresolution = \"4k\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown preset")
}

func TestSubstituteEnvVars_LeavesUnknown(t *testing.T) {
	assert.Equal(t, "${VIDEO_MERGE_UNSET_VAR}", substituteEnvVars("${VIDEO_MERGE_UNSET_VAR}"))
}

func TestDefaultPath_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, filepath.Join("/xdg", "video-merge", "config.toml"), DefaultPath())
}
