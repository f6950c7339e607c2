package search

import (
	"github.com/rocketscienceinc/uttt-engine/internal/entity"
	"github.com/rocketscienceinc/uttt-engine/internal/evaluation"
)

// Minimax - picks player's move with alpha-beta minimax down to depth plies.
func Minimax(b entity.Board, lastMove int, player entity.Mark, policy evaluation.Policy, depth int, opts ...Option) (Result, error) {
	s, ctx := newSearcher(policy, player, false, opts)

	return s.run(ctx, b, lastMove, depth)
}
