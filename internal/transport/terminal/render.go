package terminal

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
	"github.com/rocketscienceinc/tictactoe-history/internal/usecase"
)

const (
	colorWinning = "2"
	colorX       = "4"
	colorO       = "1"
	colorNotice  = "3"

	rowSeparator = "---+---+---"
)

// Renderer draws frames of a session. Winning cells are always bracketed so the
// line stays visible without colors.
type Renderer struct {
	output *termenv.Output
}

func NewRenderer(writer io.Writer, plain bool) *Renderer {
	output := termenv.NewOutput(writer)
	if plain {
		output = termenv.NewOutput(writer, termenv.WithProfile(termenv.Ascii))
	}

	return &Renderer{output: output}
}

func (that *Renderer) Frame(view usecase.View) string {
	var builder strings.Builder

	builder.WriteString(that.Board(view))
	builder.WriteString("\n")
	builder.WriteString(that.Status(view))
	builder.WriteString("\n\n")
	builder.WriteString(that.Moves(view))

	return builder.String()
}

func (that *Renderer) Board(view usecase.View) string {
	rows := make([]string, 0, entity.BoardSide)

	for row := 0; row < entity.BoardSide; row++ {
		cells := make([]string, 0, entity.BoardSide)
		for col := 0; col < entity.BoardSide; col++ {
			index := row*entity.BoardSide + col
			cells = append(cells, that.cell(index, view.Board[index], view.WinningLine.Contains(index)))
		}
		rows = append(rows, strings.Join(cells, "|"))
	}

	return strings.Join(rows, "\n"+rowSeparator+"\n") + "\n"
}

func (that *Renderer) cell(index int, cell entity.Cell, winning bool) string {
	if cell.IsEmpty() {
		return " " + that.output.String(strconv.Itoa(index)).Faint().String() + " "
	}

	if winning {
		return that.output.String("[" + cell.String() + "]").Foreground(that.output.Color(colorWinning)).Bold().String()
	}

	color := colorX
	if cell == entity.O {
		color = colorO
	}

	return " " + that.output.String(cell.String()).Foreground(that.output.Color(color)).String() + " "
}

func (that *Renderer) Status(view usecase.View) string {
	if view.Status.IsFinished() {
		return that.output.String(view.StatusText).Bold().String()
	}

	return view.StatusText
}

// Moves lists the history in the view's order; the viewed entry shows where
// the player is instead of a jump label.
func (that *Renderer) Moves(view usecase.View) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "[%s]\n", view.Order.Label())

	for _, descriptor := range view.Moves {
		if descriptor.IsCurrent {
			fmt.Fprintf(&builder, "  > %s\n", that.output.String(descriptor.Text()).Bold().String())
			continue
		}

		fmt.Fprintf(&builder, "  %d: %s\n", descriptor.Move, descriptor.Label)
	}

	return builder.String()
}

func (that *Renderer) Notice(err error) string {
	return that.output.String("! " + err.Error()).Foreground(that.output.Color(colorNotice)).String()
}
