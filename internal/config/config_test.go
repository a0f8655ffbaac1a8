package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hive.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.Equal(t, 5, cfg.Board.Radius)
	require.Equal(t, 35.0, cfg.Display.HexSize)
	require.Equal(t, 900, cfg.Display.WindowWidth)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, uint64(1), cfg.SelfPlay.Seed)
	require.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
board:
  radius: 4
display:
  hex_size: 28
debug: true
selfplay:
  games: 3
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 4, cfg.Board.Radius)
	require.Equal(t, 28.0, cfg.Display.HexSize)
	require.Equal(t, 900, cfg.Display.WindowHeight, "default kept")
	require.Equal(t, 3, cfg.SelfPlay.Games)
	require.Equal(t, 200, cfg.SelfPlay.MaxTurns)

	lvl, err := cfg.LogLevel()
	require.NoError(t, err)
	require.Equal(t, zerolog.DebugLevel, lvl)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad yaml", "board: [", "failed to parse"},
		{"small board", "board:\n  radius: 2\n", "board.radius"},
		{"bad level", "log:\n  level: loud\n", "log.level"},
		{"negative games", "selfplay:\n  games: -1\n", "selfplay"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.ErrorContains(t, err, tt.want)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "failed to read")
}

func TestLogger(t *testing.T) {
	prev := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(prev)

	var buf bytes.Buffer
	cfg := Default()
	l, err := cfg.Logger(&buf)
	require.NoError(t, err)
	l.Debug().Msg("hidden")
	l.Info().Str("hex", "0,0").Msg("shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
	require.Contains(t, buf.String(), "hex=")

	cfg.Log.Level = "nope"
	_, err = cfg.Logger(&buf)
	require.Error(t, err)
}
