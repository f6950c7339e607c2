package evaluation

import "github.com/rocketscienceinc/uttt-engine/internal/entity"

// positionWeights - center 76², corners 76, edges 1.
var positionWeights = [entity.BoxCells]int{
	76, 1, 76,
	1, 76 * 76, 1,
	76, 1, 76,
}

// Positional - rewards holding the center and corners of each box and of the macro board.
type Positional struct{}

func (Positional) Name() string {
	return PositionalName
}

func (that Positional) Score(b entity.Board, macro entity.Macro, _ int, player entity.Mark) int {
	score := that.scoreBox(macroCells(macro), player) * macroWeight

	for box := range entity.Boxes {
		score += that.scoreBox(b.Box(box), player)
	}

	return score
}

func (Positional) scoreBox(cells [entity.BoxCells]entity.Mark, player entity.Mark) int {
	opponent := entity.Opponent(player)
	score := 0

	for i, cell := range cells {
		switch cell {
		case player:
			score += positionWeights[i]
		case opponent:
			score -= positionWeights[i]
		}
	}

	return score
}
