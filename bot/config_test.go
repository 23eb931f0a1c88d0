package bot_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ninekoh/atarigo/bot"
	"github.com/ninekoh/atarigo/internal/group"
)

func TestNewBotFromFileAcceptsOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "overrides.toml")
	require.NoError(t, os.WriteFile(path, []byte("mcts_visits = 3\ncan_resign = true\n"), 0o644))

	b, err := bot.NewBotFromFile(path, bot.EASY, group.Black)
	require.NoError(t, err)
	defer b.Destroy()
	require.NotNil(t, b)
}

func TestNewBotFromFileMissingFile(t *testing.T) {
	_, err := bot.NewBotFromFile(filepath.Join(t.TempDir(), "missing.toml"), bot.EASY, group.Black)
	require.Error(t, err)
}
