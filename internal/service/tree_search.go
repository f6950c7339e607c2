package service

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/uttt-engine/internal/apperror"
	"github.com/rocketscienceinc/uttt-engine/internal/config"
	"github.com/rocketscienceinc/uttt-engine/internal/entity"
	"github.com/rocketscienceinc/uttt-engine/internal/evaluation"
	"github.com/rocketscienceinc/uttt-engine/internal/search"
)

type treeSearchEngine struct {
	policy evaluation.Policy
	depth  int
	expect bool
}

func newTreeSearchEngine(conf config.Engine, expect bool) (*treeSearchEngine, error) {
	policy, err := evaluation.Lookup(conf.Policy)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s engine: %w", conf.Kind, err)
	}

	if conf.Depth <= 0 {
		return nil, fmt.Errorf("failed to build %s engine: %w: %d", conf.Kind, apperror.ErrInvalidDepth, conf.Depth)
	}

	return &treeSearchEngine{
		policy: policy,
		depth:  conf.Depth,
		expect: expect,
	}, nil
}

func (that *treeSearchEngine) Name() string {
	kind := config.KindMinimax
	if that.expect {
		kind = config.KindExpectimax
	}

	return fmt.Sprintf("%s(%s,%d)", kind, that.policy.Name(), that.depth)
}

func (that *treeSearchEngine) ChooseMove(ctx context.Context, b entity.Board, lastMove int, player entity.Mark) (int, error) {
	solve := search.Minimax
	if that.expect {
		solve = search.Expectimax
	}

	result, err := solve(b, lastMove, player, that.policy, that.depth, search.WithContext(ctx))
	if err != nil {
		return entity.NoMove, fmt.Errorf("%s failed to choose a move: %w", that.Name(), err)
	}

	return result.Move, nil
}
