package terminal

import (
	"bufio"
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
)

var helpText = heredoc.Doc(`
	Commands:
	  <cell>, play <cell>   place the next mark on cell 0-8
	  jump <move>           view the board after the given move
	  order                 switch the move list between ascending and descending
	  moves                 show the move list
	  board                 show the board, status and moves
	  help                  show this help
	  quit                  leave the game

	Playing from an earlier move discards the moves after it.
`)

func (that *Server) handlePlay(msg *Message, bufw *bufio.Writer) error {
	cell, err := msg.intArg()
	if err != nil {
		return that.sendError(bufw, err)
	}

	view, err := that.session.PlayMove(cell)
	if apperror.IsRejected(err) {
		return that.sendError(bufw, fmt.Errorf("move rejected: %w", rejectionReason(err)))
	}

	if err != nil {
		return fmt.Errorf("failed to play move: %w", err)
	}

	return that.send(bufw, that.renderer.Frame(view))
}

func (that *Server) handleJump(msg *Message, bufw *bufio.Writer) error {
	move, err := msg.intArg()
	if err != nil {
		return that.sendError(bufw, err)
	}

	view, err := that.session.JumpTo(move)
	if apperror.IsOutOfRange(err) {
		return that.sendError(bufw, fmt.Errorf("no such move: %d", move))
	}

	if err != nil {
		return fmt.Errorf("failed to jump: %w", err)
	}

	return that.send(bufw, that.renderer.Frame(view))
}

func (that *Server) handleOrder(_ *Message, bufw *bufio.Writer) error {
	view := that.session.ToggleDisplayOrder()

	return that.send(bufw, that.renderer.Moves(view))
}

func (that *Server) handleMoves(_ *Message, bufw *bufio.Writer) error {
	return that.send(bufw, that.renderer.Moves(that.session.View()))
}

func (that *Server) handleBoard(_ *Message, bufw *bufio.Writer) error {
	return that.send(bufw, that.renderer.Frame(that.session.View()))
}

func (that *Server) handleHelp(_ *Message, bufw *bufio.Writer) error {
	return that.send(bufw, helpText)
}

func (that *Server) handleQuit(_ *Message, bufw *bufio.Writer) error {
	if err := that.send(bufw, "bye\n"); err != nil {
		return err
	}

	return errQuit
}

func rejectionReason(err error) error {
	for _, reason := range []error{apperror.ErrGameFinished, apperror.ErrCellOccupied, apperror.ErrInvalidCell} {
		if errors.Is(err, reason) {
			return reason
		}
	}

	return err
}
