package service

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/uttt-engine/internal/apperror"
	"github.com/rocketscienceinc/uttt-engine/internal/entity"
	"golang.org/x/exp/rand"
)

// randomEngine - plays a uniformly random legal move. Useful as a baseline opponent.
type randomEngine struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandomEngine(seed uint64) Engine {
	return &randomEngine{
		rng: rand.New(rand.NewSource(seed)),
	}
}

func (that *randomEngine) Name() string {
	return "random"
}

func (that *randomEngine) ChooseMove(ctx context.Context, b entity.Board, lastMove int, player entity.Mark) (int, error) {
	if err := ctx.Err(); err != nil {
		return entity.NoMove, err
	}

	if !player.IsPlayer() {
		return entity.NoMove, entity.ErrInvalidMark
	}

	if b.Status().IsTerminal() {
		return entity.NoMove, apperror.ErrGameFinished
	}

	moves := b.LegalMoves(lastMove)
	if len(moves) == 0 {
		return entity.NoMove, apperror.ErrNoLegalMoves
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	return moves[that.rng.Intn(len(moves))], nil
}
