package entity

import (
	"errors"
	"fmt"
)

var ErrUnknownDisplayOrder = errors.New("unknown display order")

// HistoryEntry is one board snapshot and the cell changed to produce it.
type HistoryEntry struct {
	Board        Board
	ChangedIndex *int
}

func NewInitialEntry() HistoryEntry {
	return HistoryEntry{}
}

func NewHistoryEntry(board Board, changedIndex int) HistoryEntry {
	return HistoryEntry{
		Board:        board,
		ChangedIndex: &changedIndex,
	}
}

// Location is the coordinate pair of a changed cell: X = index%3, Y = index/3.
type Location struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewLocation(index int) Location {
	return Location{
		X: index % BoardSide,
		Y: index / BoardSide,
	}
}

func (that Location) String() string {
	return fmt.Sprintf("(%d, %d)", that.X, that.Y)
}

type DisplayOrder int

const (
	Ascending DisplayOrder = iota
	Descending
)

func (that DisplayOrder) Toggle() DisplayOrder {
	if that == Ascending {
		return Descending
	}
	return Ascending
}

func (that DisplayOrder) String() string {
	if that == Descending {
		return "descending"
	}
	return "ascending"
}

// Label is the text of the order toggle button.
func (that DisplayOrder) Label() string {
	if that == Descending {
		return "Descending order"
	}
	return "Ascending order"
}

func ParseDisplayOrder(value string) (DisplayOrder, error) {
	switch value {
	case "", "ascending", "asc":
		return Ascending, nil
	case "descending", "desc":
		return Descending, nil
	default:
		return Ascending, fmt.Errorf("%w: %q", ErrUnknownDisplayOrder, value)
	}
}
