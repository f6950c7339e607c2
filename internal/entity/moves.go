package entity

// NextBox - returns the sub-board the opponent is sent to by a move.
func NextBox(move int) int {
	return move % BoxCells
}

// LegalMoves - returns the playable cells in ascending order.
//
// The opponent is confined to the box named by lastMove%9 unless there is no last move,
// that box is already decided, or it has no empty cell left; in those cases every empty
// cell of every undecided box is playable. An empty result means no box is open.
func LegalMoves(b Board, macro Macro, lastMove int) []int {
	if lastMove >= 0 && lastMove < Cells {
		target := NextBox(lastMove)
		if !macro[target].IsDecided() {
			moves := emptyCellsOf(b, target, nil)
			if len(moves) > 0 {
				return moves
			}
		}
	}

	moves := make([]int, 0, Cells)
	for box := range macro {
		if macro[box].IsDecided() {
			continue
		}

		moves = emptyCellsOf(b, box, moves)
	}

	return moves
}

func emptyCellsOf(b Board, box int, moves []int) []int {
	if moves == nil {
		moves = make([]int, 0, BoxCells)
	}

	start := box * BoxCells
	for cell := start; cell < start+BoxCells; cell++ {
		if b[cell] == Empty {
			moves = append(moves, cell)
		}
	}

	return moves
}
