package entity

import (
	"fmt"
)

// CellIndex - maps a 1-based (row, col) on the 9x9 grid to a cell index.
func CellIndex(row, col int) (int, error) {
	if row < 1 || row > 9 || col < 1 || col > 9 {
		return NoMove, fmt.Errorf("%w: row %d col %d", ErrInvalidCell, row, col)
	}

	r, c := row-1, col-1

	return (r/3)*27 + (r%3)*3 + (c/3)*9 + c%3, nil
}

// RowCol - the inverse of CellIndex.
func RowCol(cell int) (int, int, error) {
	if cell < 0 || cell >= Cells {
		return 0, 0, fmt.Errorf("%w: cell %d", ErrInvalidCell, cell)
	}

	box, pos := cell/BoxCells, cell%BoxCells

	return (box/3)*3 + pos/3 + 1, (box%3)*3 + pos%3 + 1, nil
}

// String - the 81 cell symbols in index order.
func (that Board) String() string {
	return string(that[:])
}

func (that Board) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Board) UnmarshalText(text []byte) error {
	b, err := ParseBoard(string(text))
	if err != nil {
		return err
	}

	*that = b

	return nil
}

// ParseBoard - reads a board written by Board.String.
func ParseBoard(s string) (Board, error) {
	var b Board

	if len(s) != Cells {
		return b, fmt.Errorf("%w: expected %d symbols, got %d", ErrInvalidNotation, Cells, len(s))
	}

	for i := range len(s) {
		switch mark := Mark(s[i]); mark {
		case Empty, X, O:
			b[i] = mark
		default:
			return b, fmt.Errorf("%w: symbol %q at %d", ErrInvalidNotation, s[i], i)
		}
	}

	return b, nil
}
