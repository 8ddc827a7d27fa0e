package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMove      = errors.New("invalid move")
	ErrActionOutOfRange = errors.New("action out of range")
	ErrInvalidSFEN      = errors.New("invalid SFEN")
)

// InvalidMoveError reports a move that cannot be applied to a state.
type InvalidMoveError struct {
	Move   Move
	Reason string
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("invalid move %s: %s", e.Move, e.Reason)
}

func (e *InvalidMoveError) Unwrap() error {
	return ErrInvalidMove
}

func invalidMove(m Move, format string, args ...any) error {
	return &InvalidMoveError{Move: m, Reason: fmt.Sprintf(format, args...)}
}
