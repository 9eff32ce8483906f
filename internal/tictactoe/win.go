package tictactoe

import "github.com/rocketscienceinc/tictactoe-history/internal/entity"

// WinCombos are checked in order: rows, columns, then both diagonals.
var WinCombos = [8]entity.Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Evaluate returns the first completed line of the board and its owner.
// A board with no completed line yields an empty result, full or not.
func Evaluate(board entity.Board) entity.Result {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if !a.IsEmpty() && a == b && b == c {
			line := combo
			return entity.Result{Winner: a, Line: &line}
		}
	}

	return entity.Result{Winner: entity.Empty}
}
