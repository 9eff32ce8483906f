package entity

const (
	StatusInProgress StatusKind = iota
	StatusWinner
	StatusDraw
)

type StatusKind int

func (that StatusKind) String() string {
	switch that {
	case StatusWinner:
		return "winner"
	case StatusDraw:
		return "draw"
	default:
		return "in_progress"
	}
}

// Status is the derived state of the viewed board. Symbol is the winner for
// StatusWinner and the next player for StatusInProgress.
type Status struct {
	Kind   StatusKind
	Symbol Cell
}

func (that Status) IsFinished() bool {
	return that.Kind != StatusInProgress
}

func (that Status) String() string {
	switch that.Kind {
	case StatusWinner:
		return "Winner: " + that.Symbol.String()
	case StatusDraw:
		return "Draw"
	default:
		return "Next player: " + that.Symbol.String()
	}
}

// Result is the outcome of evaluating a board against the winning lines.
type Result struct {
	Winner Cell
	Line   *Line
}

func (that Result) HasWinner() bool {
	return that.Line != nil
}
