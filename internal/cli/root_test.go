package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	// keep the developer's own config out of the tests
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_DIRS", t.TempDir())
	xdg.Reload()

	out := &bytes.Buffer{}
	root := Root()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(input))
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})

	err := root.Execute()

	return out.String(), err
}

func TestReplayCommand(t *testing.T) {
	t.Run("Prints the final frame", func(t *testing.T) {
		output, err := execute(t, "", "replay", "--no-color", "0", "4", "1", "3", "2")

		require.NoError(t, err)
		assert.Contains(t, output, "[X]|[X]|[X]")
		assert.Contains(t, output, "Winner: X")
	})

	t.Run("Jump flag", func(t *testing.T) {
		output, err := execute(t, "", "replay", "--no-color", "0", "4", "1", "--jump", "0")

		require.NoError(t, err)
		assert.Contains(t, output, "  > You are at move #0\n")
		assert.Contains(t, output, "  3: Go to move #3\n")
	})

	t.Run("Negative jump", func(t *testing.T) {
		_, err := execute(t, "", "replay", "--no-color", "0", "4", "--jump", "-5")

		assert.ErrorContains(t, err, "out of history range")
	})

	t.Run("Not a number", func(t *testing.T) {
		_, err := execute(t, "", "replay", "a")

		assert.ErrorContains(t, err, `cell "a" is not a number`)
	})

	t.Run("Config file from flag", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("display:\n  order: descending\n  no-color: true\n"), 0o600))

		output, err := execute(t, "", "replay", "--config", path, "4")

		require.NoError(t, err)
		assert.Contains(t, output, "[Descending order]\n  > You are at move #1 (1, 1)\n  0: Go to game start\n")
	})
}

func TestPlayCommand(t *testing.T) {
	t.Run("Root runs an interactive game", func(t *testing.T) {
		output, err := execute(t, "4\nquit\n", "--no-color")

		require.NoError(t, err)
		assert.Contains(t, output, "Next player: O")
	})

	t.Run("Play subcommand", func(t *testing.T) {
		output, err := execute(t, "jump 0\nq\n", "play", "--no-color")

		require.NoError(t, err)
		assert.Contains(t, output, "  > You are at move #0\n")
	})

	t.Run("Unknown log level in config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("log-level: loud\n"), 0o600))

		_, err := execute(t, "", "play", "--config", path)

		assert.Error(t, err)
	})
}

func TestVersionCommand(t *testing.T) {
	t.Run("Prints the version", func(t *testing.T) {
		output, err := execute(t, "", "version")

		require.NoError(t, err)
		assert.Equal(t, version+"\n", output)
	})

	t.Run("Flag and subcommand agree", func(t *testing.T) {
		output, err := execute(t, "", "--version")

		require.NoError(t, err)
		assert.Equal(t, version+"\n", output)
	})
}
