package evaluation

import "github.com/rocketscienceinc/uttt-engine/internal/entity"

// LinePattern - scores every line by how close each player is to completing it.
type LinePattern struct{}

func (LinePattern) Name() string {
	return LinePatternName
}

func (that LinePattern) Score(b entity.Board, macro entity.Macro, _ int, player entity.Mark) int {
	score := that.scoreBox(macroCells(macro), player) * macroWeight

	for box := range entity.Boxes {
		score += that.scoreBox(b.Box(box), player)
	}

	return score
}

// scoreBox - a completed line ends the box's evaluation for either side.
func (LinePattern) scoreBox(cells [entity.BoxCells]entity.Mark, player entity.Mark) int {
	opponent := entity.Opponent(player)
	score := 0

	for _, combo := range entity.WinCombos {
		mine, theirs, empty := 0, 0, 0
		for _, i := range combo {
			switch cells[i] {
			case player:
				mine++
			case opponent:
				theirs++
			case entity.Empty:
				empty++
			}
		}

		switch {
		case mine == 3:
			return score + 100
		case mine == 2 && empty == 1:
			score += 10
		case mine == 1 && empty == 2:
			score++
		case theirs == 3:
			return score - 100
		case theirs == 2 && empty == 1:
			score -= 10
		case theirs == 1 && empty == 2:
			score--
		}
	}

	return score
}
