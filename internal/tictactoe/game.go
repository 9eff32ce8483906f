package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
)

// Game owns the board history, the pointer to the viewed snapshot and the
// move list order. It is not safe for concurrent use.
type Game struct {
	history     []entity.HistoryEntry
	currentMove int
	order       entity.DisplayOrder
}

func NewGame() *Game {
	return &Game{
		history: []entity.HistoryEntry{entity.NewInitialEntry()},
	}
}

// PlayMove places the symbol of the player to move at cell. Any snapshots after
// the viewed one are discarded before the new one is appended.
func (that *Game) PlayMove(cell int) error {
	if !entity.IsValidCell(cell) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	board := that.CurrentBoard()

	if Evaluate(board).HasWinner() {
		return apperror.ErrGameFinished
	}

	if !board[cell].IsEmpty() {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	next := board.With(cell, entity.SymbolForMove(that.currentMove))

	history := make([]entity.HistoryEntry, that.currentMove+1, that.currentMove+2)
	copy(history, that.history[:that.currentMove+1])

	that.history = append(history, entity.NewHistoryEntry(next, cell))
	that.currentMove = len(that.history) - 1

	return nil
}

// JumpTo moves the view to a recorded snapshot without touching the history.
func (that *Game) JumpTo(move int) error {
	if move < 0 || move >= len(that.history) {
		return fmt.Errorf("%w: move %d of %d", apperror.ErrMoveOutOfRange, move, len(that.history))
	}

	that.currentMove = move

	return nil
}

func (that *Game) ToggleDisplayOrder() {
	that.order = that.order.Toggle()
}

func (that *Game) SetDisplayOrder(order entity.DisplayOrder) {
	that.order = order
}

func (that *Game) DisplayOrder() entity.DisplayOrder {
	return that.order
}

func (that *Game) Status() entity.Status {
	board := that.CurrentBoard()

	if result := Evaluate(board); result.HasWinner() {
		return entity.Status{Kind: entity.StatusWinner, Symbol: result.Winner}
	}

	if board.IsFull() {
		return entity.Status{Kind: entity.StatusDraw}
	}

	return entity.Status{Kind: entity.StatusInProgress, Symbol: entity.SymbolForMove(that.currentMove)}
}

func (that *Game) Result() entity.Result {
	return Evaluate(that.CurrentBoard())
}

func (that *Game) CurrentBoard() entity.Board {
	return that.history[that.currentMove].Board
}

func (that *Game) CurrentMove() int {
	return that.currentMove
}

func (that *Game) Len() int {
	return len(that.history)
}

func (that *Game) History() []entity.HistoryEntry {
	history := make([]entity.HistoryEntry, len(that.history))
	copy(history, that.history)

	return history
}

func (that *Game) MoveDescriptor(move int) (entity.MoveDescriptor, error) {
	if move < 0 || move >= len(that.history) {
		return entity.MoveDescriptor{}, fmt.Errorf("%w: move %d of %d", apperror.ErrMoveOutOfRange, move, len(that.history))
	}

	return entity.NewMoveDescriptor(move, that.history[move], that.currentMove), nil
}

// Moves lists a descriptor for every snapshot in the current display order.
func (that *Game) Moves() []entity.MoveDescriptor {
	moves := make([]entity.MoveDescriptor, 0, len(that.history))

	for i := range that.history {
		move := i
		if that.order == entity.Descending {
			move = len(that.history) - 1 - i
		}

		moves = append(moves, entity.NewMoveDescriptor(move, that.history[move], that.currentMove))
	}

	return moves
}
