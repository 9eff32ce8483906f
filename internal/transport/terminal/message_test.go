package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMessage(t *testing.T) {
	t.Run("Bare number plays a cell", func(t *testing.T) {
		message, err := parseMessage(" 4 ")

		require.NoError(t, err)
		assert.Equal(t, &Message{Action: actionPlay, Args: []string{"4"}}, message)
	})

	t.Run("Aliases resolve to actions", func(t *testing.T) {
		cases := map[string]string{
			"j 2":    actionJump,
			"JUMP 2": actionJump,
			"o":      actionOrder,
			"?":      actionHelp,
			"exit":   actionQuit,
			"board":  actionBoard,
		}

		for line, action := range cases {
			message, err := parseMessage(line)

			require.NoError(t, err)
			assert.Equal(t, action, message.Action, line)
		}
	})

	t.Run("Oversized or negative number still plays a cell", func(t *testing.T) {
		for _, line := range []string{"99999999999999999999", "-3"} {
			message, err := parseMessage(line)

			require.NoError(t, err)
			assert.Equal(t, actionPlay, message.Action, line)
		}
	})

	t.Run("Words with digits are actions", func(t *testing.T) {
		for _, line := range []string{"4x", "-", "x4"} {
			message, err := parseMessage(line)

			require.NoError(t, err)
			assert.Equal(t, line, message.Action)
		}
	})

	t.Run("Empty line", func(t *testing.T) {
		_, err := parseMessage("   ")

		assert.ErrorIs(t, err, ErrEmptyMessage)
	})
}

func TestMessage_intArg(t *testing.T) {
	t.Run("Missing", func(t *testing.T) {
		_, err := (&Message{Action: actionJump}).intArg()

		assert.ErrorIs(t, err, ErrMissingArgument)
	})

	t.Run("Not a number", func(t *testing.T) {
		_, err := (&Message{Action: actionJump, Args: []string{"two"}}).intArg()

		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("Number", func(t *testing.T) {
		value, err := (&Message{Action: actionJump, Args: []string{"7"}}).intArg()

		require.NoError(t, err)
		assert.Equal(t, 7, value)
	})
}
