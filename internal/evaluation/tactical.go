package evaluation

import "github.com/rocketscienceinc/uttt-engine/internal/entity"

// Tactical scale for a single line, by (player marks, opponent marks).
const (
	lostLine       = -50000 // 0, 3
	threatLine     = -10000 // 0, 2
	contestedTwo   = 2500   // 2, 1
	openTwo        = 5000   // 2, 0
	forcedBlock    = 7500   // 1, 2
	wonLine        = 10000  // 3, 0
	contestedPair  = 1      // 1, 1
	chainThreshold = contestedTwo
)

// Tactical - looks at the box the last move was played in and the box the opponent is sent to.
// The forced box only counts when the current box already scores at least chainThreshold.
type Tactical struct{}

func (Tactical) Name() string {
	return TacticalName
}

func (that Tactical) Score(b entity.Board, macro entity.Macro, lastMove int, player entity.Mark) int {
	replies := entity.LegalMoves(b, macro, lastMove)
	if len(replies) == 0 {
		return terminalScore(macro, player)
	}

	currentBox := 0
	if lastMove >= 0 {
		currentBox = lastMove / entity.BoxCells
	}

	current := that.scoreBox(b.Box(currentBox), player)
	if current < chainThreshold {
		return current
	}

	return current + that.scoreBox(b.Box(replies[0]/entity.BoxCells), player)
}

func (Tactical) scoreBox(cells [entity.BoxCells]entity.Mark, player entity.Mark) int {
	opponent := entity.Opponent(player)
	score := 0

	for _, combo := range entity.WinCombos {
		mine, theirs := 0, 0
		for _, i := range combo {
			switch cells[i] {
			case player:
				mine++
			case opponent:
				theirs++
			}
		}

		score += tacticalLine(mine, theirs)
	}

	return score
}

func tacticalLine(mine, theirs int) int {
	switch {
	case theirs == 3:
		return lostLine
	case mine == 3:
		return wonLine
	case mine == 0 && theirs == 2:
		return threatLine
	case mine == 2 && theirs == 1:
		return contestedTwo
	case mine == 2 && theirs == 0:
		return openTwo
	case mine == 1 && theirs == 2:
		return forcedBlock
	case mine == 1 && theirs == 1:
		return contestedPair
	default:
		return 0
	}
}
