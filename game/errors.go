package game

import "errors"

var (
	ErrOccupiedCell      = errors.New("cell is occupied")
	ErrEmptyCell         = errors.New("cell is empty")
	ErrPieceNotAvailable = errors.New("piece is not available")
	ErrIllegalPhase      = errors.New("action not allowed in current phase")
	ErrInvalidOperation  = errors.New("invalid operation")
	// ErrNoLegalMoveFound is fatal: a player exhausted every retry.
	ErrNoLegalMoveFound = errors.New("no legal move found")
)
