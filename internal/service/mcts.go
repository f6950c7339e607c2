package service

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/uttt-engine/internal/config"
	"github.com/rocketscienceinc/uttt-engine/internal/entity"
	"github.com/rocketscienceinc/uttt-engine/internal/mcts"
)

type mctsEngine struct {
	search *mcts.Search
	name   string
}

func newMCTSEngine(conf config.Engine) (*mctsEngine, error) {
	perspective, err := mcts.ParsePerspective(conf.Backprop)
	if err != nil {
		return nil, fmt.Errorf("failed to build mcts engine: %w", err)
	}

	s := mcts.New(
		mcts.WithIterations(conf.Iterations),
		mcts.WithExplorationWeight(conf.ExplorationWeight),
		mcts.WithSeed(conf.Seed),
		mcts.WithPerspective(perspective),
	)

	if err = s.Validate(); err != nil {
		return nil, fmt.Errorf("failed to build mcts engine: %w", err)
	}

	return &mctsEngine{
		search: s,
		name:   fmt.Sprintf("mcts(%d,%g,%s)", conf.Iterations, conf.ExplorationWeight, perspective),
	}, nil
}

func (that *mctsEngine) Name() string {
	return that.name
}

func (that *mctsEngine) ChooseMove(ctx context.Context, b entity.Board, lastMove int, player entity.Mark) (int, error) {
	result, err := that.search.Solve(ctx, b, lastMove, player)
	if err != nil {
		return entity.NoMove, fmt.Errorf("%s failed to choose a move: %w", that.name, err)
	}

	return result.Move, nil
}
