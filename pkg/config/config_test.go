package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stencilgraph/stencilgraph/pkg/config"
)

func TestDefaultMatchesSpecifiedConstants(t *testing.T) {
	cfg := config.Default()
	require.Equal(t, 0.5, cfg.Matcher.CrossingLength)
	require.Equal(t, 0.25, cfg.Matcher.CrossingHeight)
	require.Equal(t, "solid", cfg.Matcher.DefaultStrokeStyle)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoadOverlaysOntoDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stencilgraph.toml")
	require.NoError(t, os.WriteFile(path, []byte("[matcher]\ncrossing_length = 0.75\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 0.75, cfg.Matcher.CrossingLength)
	require.Equal(t, 0.25, cfg.Matcher.CrossingHeight, "unset fields keep the default")
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
