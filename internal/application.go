package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-history/internal/config"
	"github.com/rocketscienceinc/tictactoe-history/internal/transport/terminal"
	"github.com/rocketscienceinc/tictactoe-history/internal/usecase"
)

// RunApp - runs an interactive game on the given input and output until the player quits.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	session, err := newSession(logger, conf)
	if err != nil {
		return err
	}

	renderer := terminal.NewRenderer(out, conf.Display.NoColor)
	server := terminal.New(logger, session, renderer, conf.Prompt)

	log.Info("Starting game")

	if err = server.Start(ctx, in, out); err != nil {
		return fmt.Errorf("terminal session failed: %w", err)
	}

	log.Info("Game closed")

	return nil
}

// Replay - plays cells in order, optionally jumps to a move, and prints the final frame.
// A nil jump keeps the view on the last move.
func Replay(logger *slog.Logger, conf *config.Config, cells []int, jump *int, out io.Writer) error {
	session, err := newSession(logger, conf)
	if err != nil {
		return err
	}

	view := session.View()

	for i, cell := range cells {
		if view, err = session.PlayMove(cell); err != nil {
			return fmt.Errorf("move %d (cell %d): %w", i+1, cell, err)
		}
	}

	if jump != nil {
		if view, err = session.JumpTo(*jump); err != nil {
			return fmt.Errorf("failed to replay: %w", err)
		}
	}

	renderer := terminal.NewRenderer(out, conf.Display.NoColor)
	if _, err = io.WriteString(out, renderer.Frame(view)); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}

	return nil
}

func newSession(logger *slog.Logger, conf *config.Config) (*usecase.Session, error) {
	order, err := conf.Display.DisplayOrder()
	if err != nil {
		return nil, fmt.Errorf("could not start session: %w", err)
	}

	return usecase.NewSession(logger, order), nil
}
