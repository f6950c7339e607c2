package entity

// Outcome - the state of one sub-board as seen from the macro board.
type Outcome byte

const (
	Undecided Outcome = '.'
	XWon      Outcome = 'X'
	OWon      Outcome = 'O'
	Drawn     Outcome = 'D'
)

// Macro - the nine sub-board outcomes, indexed by box.
type Macro [Boxes]Outcome

// Status - the state of the whole match.
type Status string

const (
	InProgress Status = "in-progress"
	XWins      Status = "x-wins"
	OWins      Status = "o-wins"
	Draw       Status = "draw"
)

// WinCombos - the eight lines of a 3x3 board: diagonals, then columns, then rows.
var WinCombos = [8][3]int{
	{0, 4, 8},
	{2, 4, 6},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
}

// OutcomeOf - converts a player's mark to the outcome of a box they won.
func OutcomeOf(mark Mark) Outcome {
	switch mark {
	case X:
		return XWon
	case O:
		return OWon
	default:
		return Undecided
	}
}

// Winner - returns the mark that owns the outcome, or Empty.
func (that Outcome) Winner() Mark {
	switch that {
	case XWon:
		return X
	case OWon:
		return O
	default:
		return Empty
	}
}

// IsDecided - reports whether the box can no longer be played.
func (that Outcome) IsDecided() bool {
	return that != Undecided
}

func (that Outcome) String() string {
	return string(that)
}

// SubBoardOutcome - evaluates one sub-board.
func SubBoardOutcome(b Board, box int) Outcome {
	cells := b.Box(box)

	for _, combo := range WinCombos {
		a := cells[combo[0]]
		if a != Empty && a == cells[combo[1]] && a == cells[combo[2]] {
			return OutcomeOf(a)
		}
	}

	for _, cell := range cells {
		if cell == Empty {
			return Undecided
		}
	}

	return Drawn
}

// MacroOutcome - evaluates every sub-board.
func MacroOutcome(b Board) Macro {
	var macro Macro
	for box := range macro {
		macro[box] = SubBoardOutcome(b, box)
	}

	return macro
}

// TerminalStatus - applies the line rule to the macro board. Drawn boxes block lines for both players.
func TerminalStatus(macro Macro) Status {
	for _, combo := range WinCombos {
		a := macro[combo[0]]
		if (a == XWon || a == OWon) && a == macro[combo[1]] && a == macro[combo[2]] {
			return StatusOf(a.Winner())
		}
	}

	for _, outcome := range macro {
		if outcome == Undecided {
			return InProgress
		}
	}

	return Draw
}

// StatusOf - returns the winning status for the mark.
func StatusOf(winner Mark) Status {
	switch winner {
	case X:
		return XWins
	case O:
		return OWins
	default:
		return Draw
	}
}

// Winner - returns the mark that won the match, or Empty while in progress or drawn.
func (that Status) Winner() Mark {
	switch that {
	case XWins:
		return X
	case OWins:
		return O
	default:
		return Empty
	}
}

// IsTerminal - reports whether the match is over.
func (that Status) IsTerminal() bool {
	return that != InProgress
}
