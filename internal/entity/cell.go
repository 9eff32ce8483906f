package entity

const (
	Empty Cell = iota
	X
	O
)

// Cell is the content of one square of the board.
type Cell int

func (that Cell) String() string {
	switch that {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return ""
	}
}

func (that Cell) IsEmpty() bool {
	return that == Empty
}

// SymbolForMove returns the mark placed by the player to move at the given history index.
func SymbolForMove(move int) Cell {
	if move%2 == 0 {
		return X
	}
	return O
}
