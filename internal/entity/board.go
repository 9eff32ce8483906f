package entity

const (
	BoardSide = 3
	BoardSize = BoardSide * BoardSide
)

// Board is a flat 3x3 grid, row = index/3 and column = index%3.
type Board [BoardSize]Cell

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell.IsEmpty() {
			return false
		}
	}

	return true
}

func (that Board) With(index int, cell Cell) Board {
	that[index] = cell
	return that
}

func IsValidCell(index int) bool {
	return index >= 0 && index < BoardSize
}

// Line is a winning triple of board indices.
type Line [3]int

func (that *Line) Contains(index int) bool {
	if that == nil {
		return false
	}

	for _, cell := range that {
		if cell == index {
			return true
		}
	}

	return false
}
