// Package search implements depth-limited adversarial search over the board.
package search

import (
	"context"
	"fmt"
	"math"

	"github.com/rocketscienceinc/uttt-engine/internal/apperror"
	"github.com/rocketscienceinc/uttt-engine/internal/entity"
	"github.com/rocketscienceinc/uttt-engine/internal/evaluation"
)

const (
	negInf = math.MinInt
	posInf = math.MaxInt
)

// Result - the move picked at the root and the value backing it.
type Result struct {
	Move  int
	Score int
	Nodes int
}

type Option func(*options)

type options struct {
	ctx     context.Context
	pruning bool
}

// WithoutPruning - disables alpha-beta cutoffs; the chosen move is the same, only slower.
func WithoutPruning() Option {
	return func(o *options) {
		o.pruning = false
	}
}

// WithContext - stops the search between root moves once ctx is done.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		o.ctx = ctx
	}
}

// searcher - one root call. All values are from the root player's point of view.
type searcher struct {
	policy  evaluation.Policy
	root    entity.Mark
	pruning bool
	expect  bool
	nodes   int
}

func newSearcher(policy evaluation.Policy, player entity.Mark, expect bool, opts []Option) (*searcher, context.Context) {
	o := options{ctx: context.Background(), pruning: true}
	for _, opt := range opts {
		opt(&o)
	}

	return &searcher{
		policy:  policy,
		root:    player,
		pruning: o.pruning && !expect,
		expect:  expect,
	}, o.ctx
}

// run - iterates the root moves in ascending order; the first best move wins ties.
func (that *searcher) run(ctx context.Context, b entity.Board, lastMove, depth int) (Result, error) {
	if depth <= 0 {
		return Result{}, fmt.Errorf("%w: %d", apperror.ErrInvalidDepth, depth)
	}

	if that.policy == nil {
		return Result{}, fmt.Errorf("%w: nil", apperror.ErrUnknownPolicy)
	}

	if !that.root.IsPlayer() {
		return Result{}, fmt.Errorf("%w: %q", entity.ErrInvalidMark, byte(that.root))
	}

	macro := entity.MacroOutcome(b)
	if entity.TerminalStatus(macro).IsTerminal() {
		return Result{}, apperror.ErrGameFinished
	}

	moves := entity.LegalMoves(b, macro, lastMove)
	if len(moves) == 0 {
		return Result{}, apperror.ErrNoLegalMoves
	}

	best := Result{Move: moves[0], Score: negInf}
	alpha := negInf

	for _, move := range moves {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("search interrupted: %w", err)
		}

		next, err := entity.PlaceMark(b, move, that.root)
		if err != nil {
			return Result{}, fmt.Errorf("failed to play root move: %w", err)
		}

		value := that.value(next, move, entity.Opponent(that.root), depth-1, alpha, posInf)
		if value > best.Score {
			best.Move, best.Score = move, value
		}

		if that.pruning && value > alpha {
			alpha = value
		}
	}

	best.Nodes = that.nodes

	return best, nil
}

func (that *searcher) value(b entity.Board, lastMove int, toMove entity.Mark, depth, alpha, beta int) int {
	that.nodes++

	macro := entity.MacroOutcome(b)
	switch entity.TerminalStatus(macro) {
	case entity.InProgress:
	case entity.Draw:
		return 0
	case entity.StatusOf(that.root):
		return evaluation.WinScore
	default:
		return -evaluation.WinScore
	}

	moves := entity.LegalMoves(b, macro, lastMove)
	if len(moves) == 0 {
		return 0
	}

	if depth <= 0 {
		return that.policy.Score(b, macro, lastMove, that.root)
	}

	switch {
	case toMove == that.root:
		return that.maxValue(b, moves, toMove, depth, alpha, beta)
	case that.expect:
		return that.chanceValue(b, moves, toMove, depth)
	default:
		return that.minValue(b, moves, toMove, depth, alpha, beta)
	}
}

func (that *searcher) maxValue(b entity.Board, moves []int, toMove entity.Mark, depth, alpha, beta int) int {
	best := negInf
	for _, move := range moves {
		next := b
		next[move] = toMove
		value := that.value(next, move, entity.Opponent(toMove), depth-1, alpha, beta)

		best = max(best, value)
		if !that.pruning {
			continue
		}

		alpha = max(alpha, value)
		if alpha >= beta {
			break
		}
	}

	return best
}

func (that *searcher) minValue(b entity.Board, moves []int, toMove entity.Mark, depth, alpha, beta int) int {
	best := posInf
	for _, move := range moves {
		next := b
		next[move] = toMove
		value := that.value(next, move, entity.Opponent(toMove), depth-1, alpha, beta)

		best = min(best, value)
		if !that.pruning {
			continue
		}

		beta = min(beta, value)
		if alpha >= beta {
			break
		}
	}

	return best
}

// chanceValue - the opponent is assumed to pick uniformly among its replies.
func (that *searcher) chanceValue(b entity.Board, moves []int, toMove entity.Mark, depth int) int {
	sum := 0
	for _, move := range moves {
		next := b
		next[move] = toMove
		sum += that.value(next, move, entity.Opponent(toMove), depth-1, negInf, posInf)
	}

	return sum / len(moves)
}
