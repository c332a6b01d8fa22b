package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_LoadConfig(t *testing.T) {
	t.Run("empty path yields defaults", func(t *testing.T) {
		cfg, err := LoadConfig("")
		require.NoError(t, err)

		require.Equal(t, 9.9, cfg.Screen.LimitUpThreshold)
		require.Equal(t, 10, cfg.Screen.TopN)
		require.Equal(t, 5, cfg.Screen.VolumeWindow)
		require.Equal(t, 2.0, cfg.Screen.VolumeMultiple)
		require.Equal(t, "8080", cfg.Server.Port)
		require.Equal(t, "screener.db", cfg.Database.Path)
		require.Equal(t, "Asia/Taipei", cfg.Schedule.Timezone)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
source:
  fileId: FILE123
screen:
  limitUpThreshold: 9.5
  volumeWindow: 20
server:
  port: "9000"
`), 0o644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		require.Equal(t, "FILE123", cfg.Source.FileID)
		require.Equal(t, 9.5, cfg.Screen.LimitUpThreshold)
		require.Equal(t, 20, cfg.Screen.VolumeWindow)
		require.Equal(t, "9000", cfg.Server.Port)
		// untouched values keep their defaults
		require.Equal(t, 10, cfg.Screen.TopN)
	})

	t.Run("rejects windows outside 5/10/20", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("screen:\n  volumeWindow: 7\n"), 0o644))

		_, err := LoadConfig(path)
		require.Error(t, err)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})
}
