// Package service turns engine settings into move choosers the match driver can call.
package service

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/uttt-engine/internal/apperror"
	"github.com/rocketscienceinc/uttt-engine/internal/config"
	"github.com/rocketscienceinc/uttt-engine/internal/entity"
)

// Engine - picks a move for player in the position reached by lastMove.
type Engine interface {
	Name() string
	ChooseMove(ctx context.Context, b entity.Board, lastMove int, player entity.Mark) (int, error)
}

// New - builds the engine described by conf, rejecting settings it could never search with.
func New(conf config.Engine) (Engine, error) {
	switch conf.Kind {
	case config.KindMinimax:
		return newTreeSearchEngine(conf, false)
	case config.KindExpectimax:
		return newTreeSearchEngine(conf, true)
	case config.KindMCTS:
		return newMCTSEngine(conf)
	case config.KindRandom:
		return NewRandomEngine(conf.Seed), nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownEngine, conf.Kind)
	}
}
