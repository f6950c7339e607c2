package apperror

import "errors"

var (
	ErrGameFinished  = errors.New("game is already finished")
	ErrNotYourTurn   = errors.New("it's not your turn")
	ErrCellOccupied  = errors.New("cell is already occupied")
	ErrNoLegalMoves  = errors.New("no legal moves")
	ErrIllegalMove   = errors.New("move is not legal in this position")
	ErrUnknownEngine = errors.New("unknown engine")
	ErrUnknownPolicy = errors.New("unknown evaluation policy")

	ErrInvalidDepth             = errors.New("search depth must be positive")
	ErrInvalidIterations        = errors.New("iteration count must be positive")
	ErrInvalidExplorationWeight = errors.New("exploration weight must not be negative")
)
