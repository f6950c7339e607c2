package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/uttt-engine/internal/apperror"
)

// Mark - the content of a single cell.
type Mark byte

const (
	Empty Mark = '.'
	X     Mark = 'X'
	O     Mark = 'O'
)

const (
	// Cells is the number of cells on the whole board.
	Cells = 81
	// Boxes is the number of sub-boards.
	Boxes = 9
	// BoxCells is the number of cells in one sub-board.
	BoxCells = 9

	// NoMove marks the start of a game, when every open cell is playable.
	NoMove = -1
)

var (
	ErrInvalidCell     = errors.New("invalid cell index")
	ErrInvalidMark     = errors.New("invalid mark")
	ErrInvalidNotation = errors.New("invalid board notation")
)

// Board - the 81 cells, laid out box by box: index i lives in box i/9 at position i%9.
type Board [Cells]Mark

// NewBoard - returns a board with every cell empty.
func NewBoard() Board {
	var b Board
	for i := range b {
		b[i] = Empty
	}

	return b
}

// Opponent - returns the other player's mark.
func Opponent(mark Mark) Mark {
	switch mark {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// IsPlayer - reports whether the mark belongs to one of the two players.
func (that Mark) IsPlayer() bool {
	return that == X || that == O
}

func (that Mark) String() string {
	return string(that)
}

func (that Mark) MarshalText() ([]byte, error) {
	return []byte{byte(that)}, nil
}

func (that *Mark) UnmarshalText(text []byte) error {
	if len(text) != 1 {
		return fmt.Errorf("%w: %q", ErrInvalidMark, text)
	}

	switch mark := Mark(text[0]); mark {
	case Empty, X, O:
		*that = mark
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMark, text)
	}

	return nil
}

// PlaceMark - returns a copy of the board with the cell set to mark.
// The original board is never modified.
func PlaceMark(b Board, cell int, mark Mark) (Board, error) {
	if cell < 0 || cell >= Cells {
		return b, fmt.Errorf("%w: cell %d", ErrInvalidCell, cell)
	}

	if !mark.IsPlayer() {
		return b, fmt.Errorf("%w: %q", ErrInvalidMark, byte(mark))
	}

	if b[cell] != Empty {
		return b, fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	b[cell] = mark

	return b, nil
}

// Box - returns the nine cells of the sub-board.
func (that Board) Box(box int) [BoxCells]Mark {
	var cells [BoxCells]Mark
	copy(cells[:], that[box*BoxCells:(box+1)*BoxCells])

	return cells
}

// IsEmpty - reports whether no mark has been placed yet.
func (that Board) IsEmpty() bool {
	for _, cell := range that {
		if cell != Empty {
			return false
		}
	}

	return true
}

// Count - returns how many cells hold the mark.
func (that Board) Count(mark Mark) int {
	n := 0
	for _, cell := range that {
		if cell == mark {
			n++
		}
	}

	return n
}

// LegalMoves - computes the macro outcome and returns the legal moves after lastMove.
func (that Board) LegalMoves(lastMove int) []int {
	return LegalMoves(that, MacroOutcome(that), lastMove)
}

// Status - returns the terminal status of the board.
func (that Board) Status() Status {
	return TerminalStatus(MacroOutcome(that))
}
