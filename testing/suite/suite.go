package suite

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
	"github.com/rocketscienceinc/tictactoe-history/internal/transport/terminal"
	"github.com/rocketscienceinc/tictactoe-history/internal/usecase"
)

const maxWaitDuration = 5 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger
	Logs   *bytes.Buffer

	Session  *usecase.Session
	Renderer *terminal.Renderer
	Output   *bytes.Buffer
}

// New builds a fresh session with an uncolored renderer writing to Output.
// Logs are captured as JSON lines in Logs.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	output := &bytes.Buffer{}

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Logs:   logs,

		Session:  usecase.NewSession(logger, entity.Ascending),
		Renderer: terminal.NewRenderer(output, true),
		Output:   output,
	}
}

// Server wires the suite's session and renderer into a terminal server.
func (that *Suite) Server() *terminal.Server {
	return terminal.New(that.Logger, that.Session, that.Renderer, "> ")
}
