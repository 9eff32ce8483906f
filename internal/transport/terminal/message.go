package terminal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	actionPlay  = "play"
	actionJump  = "jump"
	actionOrder = "order"
	actionMoves = "moves"
	actionBoard = "board"
	actionHelp  = "help"
	actionQuit  = "quit"
)

var (
	ErrEmptyMessage    = errors.New("empty message")
	ErrUnknownAction   = errors.New("unknown action")
	ErrMissingArgument = errors.New("missing argument")
	ErrInvalidArgument = errors.New("argument is not a number")
)

var aliases = map[string]string{
	"p":    actionPlay,
	"j":    actionJump,
	"o":    actionOrder,
	"m":    actionMoves,
	"b":    actionBoard,
	"h":    actionHelp,
	"?":    actionHelp,
	"q":    actionQuit,
	"exit": actionQuit,
}

// Message is one command typed by the player.
type Message struct {
	Action string
	Args   []string
}

// parseMessage - a bare number is shorthand for "play <number>".
func parseMessage(line string) (*Message, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return nil, ErrEmptyMessage
	}

	if isNumber(fields[0]) {
		return &Message{Action: actionPlay, Args: fields}, nil
	}

	action := fields[0]
	if canonical, ok := aliases[action]; ok {
		action = canonical
	}

	return &Message{Action: action, Args: fields[1:]}, nil
}

func isNumber(token string) bool {
	digits := strings.TrimPrefix(token, "-")
	return digits != "" && strings.Trim(digits, "0123456789") == ""
}

func (that *Message) intArg() (int, error) {
	if len(that.Args) == 0 {
		return 0, fmt.Errorf("%w: %s needs a number", ErrMissingArgument, that.Action)
	}

	value, err := strconv.Atoi(that.Args[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidArgument, that.Args[0])
	}

	return value, nil
}
