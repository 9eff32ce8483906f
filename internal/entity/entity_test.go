package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard(t *testing.T) {
	t.Run("With returns a changed copy", func(t *testing.T) {
		// Given: an empty board
		var board Board

		// When: placing X on cell 4
		next := board.With(4, X)

		// Then: only the copy changes
		assert.Equal(t, X, next[4])
		assert.True(t, board[4].IsEmpty())
	})

	t.Run("IsFull", func(t *testing.T) {
		full := Board{X, O, X, X, O, O, O, X, X}
		almost := full.With(8, Empty)

		assert.True(t, full.IsFull())
		assert.False(t, almost.IsFull())
		assert.False(t, Board{}.IsFull())
	})

	t.Run("IsValidCell", func(t *testing.T) {
		assert.True(t, IsValidCell(0))
		assert.True(t, IsValidCell(8))
		assert.False(t, IsValidCell(-1))
		assert.False(t, IsValidCell(9))
	})
}

func TestLine_Contains(t *testing.T) {
	line := &Line{2, 4, 6}

	assert.True(t, line.Contains(4))
	assert.False(t, line.Contains(5))

	var none *Line
	assert.False(t, none.Contains(0))
}

func TestSymbolForMove(t *testing.T) {
	assert.Equal(t, X, SymbolForMove(0))
	assert.Equal(t, O, SymbolForMove(1))
	assert.Equal(t, X, SymbolForMove(8))
	assert.Equal(t, "X", X.String())
	assert.Equal(t, "O", O.String())
	assert.Equal(t, "", Empty.String())
}

func TestNewMoveDescriptor(t *testing.T) {
	t.Run("Game start has no changed cell", func(t *testing.T) {
		descriptor := NewMoveDescriptor(0, NewInitialEntry(), 0)

		assert.Equal(t, "Go to game start", descriptor.Label)
		assert.Nil(t, descriptor.ChangedCell)
		assert.True(t, descriptor.IsCurrent)
		assert.Equal(t, "You are at move #0", descriptor.Text())
	})

	t.Run("Later move", func(t *testing.T) {
		// Given: the third move changed cell 7
		entry := NewHistoryEntry(Board{}.With(7, X), 7)

		// When: describing it while viewing another move
		descriptor := NewMoveDescriptor(3, entry, 1)

		// Then: the label links to it and the changed cell is (7%3, 7/3)
		assert.Equal(t, "Go to move #3", descriptor.Text())
		require.NotNil(t, descriptor.ChangedCell)
		assert.Equal(t, Location{X: 1, Y: 2}, *descriptor.ChangedCell)
		assert.Equal(t, "You are at move #3 (1, 2)", descriptor.CurrentLabel())
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Winner: O", Status{Kind: StatusWinner, Symbol: O}.String())
	assert.Equal(t, "Draw", Status{Kind: StatusDraw}.String())
	assert.Equal(t, "Next player: X", Status{Kind: StatusInProgress, Symbol: X}.String())
	assert.True(t, Status{Kind: StatusDraw}.IsFinished())
	assert.False(t, Status{Kind: StatusInProgress}.IsFinished())
}

func TestDisplayOrder(t *testing.T) {
	t.Run("Toggle and labels", func(t *testing.T) {
		assert.Equal(t, Descending, Ascending.Toggle())
		assert.Equal(t, Ascending, Descending.Toggle())
		assert.Equal(t, "Ascending order", Ascending.Label())
		assert.Equal(t, "Descending order", Descending.Label())
	})

	t.Run("Parse", func(t *testing.T) {
		order, err := ParseDisplayOrder("desc")
		require.NoError(t, err)
		assert.Equal(t, Descending, order)

		order, err = ParseDisplayOrder("")
		require.NoError(t, err)
		assert.Equal(t, Ascending, order)

		_, err = ParseDisplayOrder("sideways")
		assert.ErrorIs(t, err, ErrUnknownDisplayOrder)
	})
}
