package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-history/internal/usecase"
)

var errQuit = errors.New("quit requested")

type session interface {
	PlayMove(cell int) (usecase.View, error)
	JumpTo(move int) (usecase.View, error)
	ToggleDisplayOrder() usecase.View
	View() usecase.View
}

type Server struct {
	logger   *slog.Logger
	session  session
	renderer *Renderer
	prompt   string

	handlers map[string]func(message *Message, writer *bufio.Writer) error
}

func New(logger *slog.Logger, session session, renderer *Renderer, prompt string) *Server {
	server := &Server{
		logger:   logger.With("component", "terminal"),
		session:  session,
		renderer: renderer,
		prompt:   prompt,

		handlers: make(map[string]func(*Message, *bufio.Writer) error),
	}

	server.handlers[actionPlay] = server.handlePlay
	server.handlers[actionJump] = server.handleJump
	server.handlers[actionOrder] = server.handleOrder
	server.handlers[actionMoves] = server.handleMoves
	server.handlers[actionBoard] = server.handleBoard
	server.handlers[actionHelp] = server.handleHelp
	server.handlers[actionQuit] = server.handleQuit

	return server
}

// Start - runs the command loop until input ends, "quit" is typed or ctx is canceled.
func (that *Server) Start(ctx context.Context, reader io.Reader, writer io.Writer) error {
	bufw := bufio.NewWriter(writer)

	if err := that.send(bufw, that.renderer.Frame(that.session.View())); err != nil {
		return err
	}

	lines, readErr := readLines(ctx, reader)

	for {
		if err := that.send(bufw, that.prompt); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			that.logger.Info("context canceled, leaving the game")
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
				return that.send(bufw, "\n")
			}

			if err := that.handleLine(line, bufw); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}
				return err
			}
		}
	}
}

// readLines feeds input lines to the command loop so the loop can return on ctx
// cancellation. The reader goroutine itself may stay blocked in Scan until the
// next read returns.
func readLines(ctx context.Context, reader io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errCh := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(reader)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				errCh <- nil
				return
			}
		}

		errCh <- scanner.Err()
	}()

	return lines, errCh
}

// handleLine - dispatches one input line; only write failures and quit are returned.
func (that *Server) handleLine(line string, bufw *bufio.Writer) error {
	log := that.logger.With("method", "handleLine")

	message, err := parseMessage(line)
	if err != nil {
		return nil
	}

	handler, ok := that.handlers[message.Action]
	if !ok {
		log.Debug("unknown action", "action", message.Action)
		return that.sendError(bufw, fmt.Errorf("%w: %q, type \"help\"", ErrUnknownAction, message.Action))
	}

	return handler(message, bufw)
}

func (that *Server) send(bufw *bufio.Writer, text string) error {
	if _, err := bufw.WriteString(text); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if err := bufw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}

func (that *Server) sendError(bufw *bufio.Writer, err error) error {
	return that.send(bufw, that.renderer.Notice(err)+"\n")
}
