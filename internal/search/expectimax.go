package search

import (
	"github.com/rocketscienceinc/uttt-engine/internal/entity"
	"github.com/rocketscienceinc/uttt-engine/internal/evaluation"
)

// Expectimax - like Minimax, but every opponent ply is the mean over its legal replies.
func Expectimax(b entity.Board, lastMove int, player entity.Mark, policy evaluation.Policy, depth int, opts ...Option) (Result, error) {
	s, ctx := newSearcher(policy, player, true, opts)

	return s.run(ctx, b, lastMove, depth)
}
