package usecase

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
)

type game interface {
	PlayMove(cell int) error
	JumpTo(move int) error
	ToggleDisplayOrder()

	Status() entity.Status
	Result() entity.Result
	CurrentBoard() entity.Board
	CurrentMove() int
	DisplayOrder() entity.DisplayOrder
	Moves() []entity.MoveDescriptor
}

// View is everything the presentation layer needs to draw one frame.
type View struct {
	Board       entity.Board
	WinningLine *entity.Line
	Status      entity.Status
	StatusText  string
	CurrentMove int
	Order       entity.DisplayOrder
	Moves       []entity.MoveDescriptor
}

// Session is a logged facade over a single game.
type Session struct {
	logger *slog.Logger
	game   game
}

func NewSession(logger *slog.Logger, order entity.DisplayOrder) *Session {
	state := tictactoe.NewGame()
	state.SetDisplayOrder(order)

	return &Session{
		logger: logger.With("component", "session"),
		game:   state,
	}
}

// PlayMove returns the new frame. A rejected move leaves the frame as it was
// and is reported through the error.
func (that *Session) PlayMove(cell int) (View, error) {
	log := that.logger.With("method", "PlayMove", "cell", cell, "move", that.game.CurrentMove())

	if err := that.game.PlayMove(cell); err != nil {
		if apperror.IsRejected(err) {
			log.Debug("move rejected", "error", err)
		} else {
			log.Error("failed to play move", "error", err)
		}

		return that.View(), fmt.Errorf("failed to play move: %w", err)
	}

	view := that.View()
	log.Info("move played", "status", view.Status.Kind.String())

	return view, nil
}

func (that *Session) JumpTo(move int) (View, error) {
	log := that.logger.With("method", "JumpTo", "move", move)

	if err := that.game.JumpTo(move); err != nil {
		log.Warn("jump out of range", "error", err)
		return that.View(), fmt.Errorf("failed to jump: %w", err)
	}

	log.Info("jumped to move")

	return that.View(), nil
}

func (that *Session) ToggleDisplayOrder() View {
	that.game.ToggleDisplayOrder()

	that.logger.Debug("display order toggled", "order", that.game.DisplayOrder().String())

	return that.View()
}

func (that *Session) View() View {
	status := that.game.Status()

	return View{
		Board:       that.game.CurrentBoard(),
		WinningLine: that.game.Result().Line,
		Status:      status,
		StatusText:  status.String(),
		CurrentMove: that.game.CurrentMove(),
		Order:       that.game.DisplayOrder(),
		Moves:       that.game.Moves(),
	}
}
