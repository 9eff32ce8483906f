package entity

import "fmt"

// MoveDescriptor describes one entry of the move list.
type MoveDescriptor struct {
	Move        int
	Label       string
	IsCurrent   bool
	ChangedCell *Location
}

func NewMoveDescriptor(move int, entry HistoryEntry, currentMove int) MoveDescriptor {
	descriptor := MoveDescriptor{
		Move:      move,
		Label:     "Go to game start",
		IsCurrent: move == currentMove,
	}

	if move > 0 {
		descriptor.Label = fmt.Sprintf("Go to move #%d", move)
	}

	if move > 0 && entry.ChangedIndex != nil {
		location := NewLocation(*entry.ChangedIndex)
		descriptor.ChangedCell = &location
	}

	return descriptor
}

// CurrentLabel replaces the jump label for the move being viewed.
func (that MoveDescriptor) CurrentLabel() string {
	if that.ChangedCell == nil {
		return fmt.Sprintf("You are at move #%d", that.Move)
	}

	return fmt.Sprintf("You are at move #%d %s", that.Move, that.ChangedCell)
}

func (that MoveDescriptor) Text() string {
	if that.IsCurrent {
		return that.CurrentLabel()
	}
	return that.Label
}
