package usecase

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/uttt-engine/internal/config"
	"github.com/rocketscienceinc/uttt-engine/internal/entity"
	"github.com/rocketscienceinc/uttt-engine/internal/service"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"
)

var ErrEngineFailed = errors.New("engine failed")

type statsRepo interface {
	SaveMatch(ctx context.Context, result *entity.MatchResult) error
	RecordResult(ctx context.Context, result *entity.MatchResult) error
	GetStandings(ctx context.Context, playerX, playerO string) (*entity.Standings, error)
}

// EngineFactory - builds an engine from its settings; service.New in production.
type EngineFactory func(conf config.Engine) (service.Engine, error)

// MatchSummary - every game of a match in the order it was scheduled.
type MatchSummary struct {
	Seed      uint64
	Results   []*entity.MatchResult
	Standings entity.Standings
}

type MatchManager struct {
	logger    *slog.Logger
	statsRepo statsRepo
	newEngine EngineFactory
}

// NewMatchManager - statsRepo may be nil, in which case nothing is persisted.
func NewMatchManager(logger *slog.Logger, statsRepo statsRepo, newEngine EngineFactory) *MatchManager {
	return &MatchManager{
		logger:    logger.With("component", "match"),
		statsRepo: statsRepo,
		newEngine: newEngine,
	}
}

// PlayGame - alternates the two engines from the empty board until the game ends.
func (that *MatchManager) PlayGame(ctx context.Context, id string, playerX, playerO service.Engine) (*entity.MatchResult, error) {
	game := entity.NewGame(id)
	started := time.Now()

	for !game.IsFinished() {
		engine := playerX
		if game.Turn == entity.O {
			engine = playerO
		}

		move, err := engine.ChooseMove(ctx, game.Board, game.LastMove, game.Turn)
		if err != nil {
			return nil, fmt.Errorf("%w: %s as %s in game %s: %w", ErrEngineFailed, engine.Name(), game.Turn, id, err)
		}

		if err = game.MakeTurn(game.Turn, move); err != nil {
			return nil, fmt.Errorf("%w: %s played %d in game %s: %w", ErrEngineFailed, engine.Name(), move, id, err)
		}

		that.logger.Debug("move played",
			slog.String("game", id),
			slog.String("engine", engine.Name()),
			slog.Int("cell", move),
		)
	}

	return &entity.MatchResult{
		ID:       id,
		PlayerX:  playerX.Name(),
		PlayerO:  playerO.Name(),
		Status:   game.Status,
		Winner:   game.Winner,
		Moves:    len(game.Moves),
		LastMove: game.LastMove,
		Board:    game.Board,
		Duration: time.Since(started),
	}, nil
}

// RunMatch - plays conf.Games games, at most conf.Parallel at a time. Game i seeds both engines
// with seed+i, so a match is reproducible whatever the parallelism.
func (that *MatchManager) RunMatch(ctx context.Context, conf config.Match) (*MatchSummary, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	seed := conf.Seed
	if seed == 0 {
		seed = frand.Uint64n(1<<63) + 1
	}

	log := that.logger.With(slog.Uint64("seed", seed))
	log.Info("match started",
		slog.Int("games", conf.Games),
		slog.Int("parallel", conf.Parallel),
	)

	results := make([]*entity.MatchResult, conf.Games)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(conf.Parallel)

	for i := range conf.Games {
		gameSeed := seed + uint64(i)

		g.Go(func() error {
			playerX, err := that.newEngine(conf.PlayerX.WithSeed(gameSeed))
			if err != nil {
				return fmt.Errorf("failed to build player X: %w", err)
			}

			playerO, err := that.newEngine(conf.PlayerO.WithSeed(gameSeed))
			if err != nil {
				return fmt.Errorf("failed to build player O: %w", err)
			}

			result, err := that.PlayGame(gctx, newMatchID(), playerX, playerO)
			if err != nil {
				return err
			}

			if err = that.store(gctx, result); err != nil {
				return err
			}

			log.Info("game finished",
				slog.String("game", result.ID),
				slog.String("status", string(result.Status)),
				slog.Int("moves", result.Moves),
				slog.Duration("duration", result.Duration),
			)

			results[i] = result

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("match aborted: %w", err)
	}

	summary := &MatchSummary{
		Seed:      seed,
		Results:   results,
		Standings: tally(results),
	}

	log.Info("match finished",
		slog.String("player_x", summary.Standings.PlayerX),
		slog.String("player_o", summary.Standings.PlayerO),
		slog.Int64("x_wins", summary.Standings.XWins),
		slog.Int64("o_wins", summary.Standings.OWins),
		slog.Int64("draws", summary.Standings.Draws),
	)

	return summary, nil
}

// Standings - the stored all-time standings of a pairing, or nil when nothing is persisted.
func (that *MatchManager) Standings(ctx context.Context, playerX, playerO string) (*entity.Standings, error) {
	if that.statsRepo == nil {
		return nil, nil //nolint: nilnil // no storage configured
	}

	standings, err := that.statsRepo.GetStandings(ctx, playerX, playerO)
	if err != nil {
		return nil, fmt.Errorf("failed get standings: %w", err)
	}

	return standings, nil
}

func (that *MatchManager) store(ctx context.Context, result *entity.MatchResult) error {
	if that.statsRepo == nil {
		return nil
	}

	if err := that.statsRepo.SaveMatch(ctx, result); err != nil {
		return fmt.Errorf("failed save match: %w", err)
	}

	if err := that.statsRepo.RecordResult(ctx, result); err != nil {
		return fmt.Errorf("failed record result: %w", err)
	}

	return nil
}

func tally(results []*entity.MatchResult) entity.Standings {
	var standings entity.Standings
	for _, result := range results {
		standings.PlayerX, standings.PlayerO = result.PlayerX, result.PlayerO

		switch result.Status {
		case entity.XWins:
			standings.XWins++
		case entity.OWins:
			standings.OWins++
		case entity.Draw:
			standings.Draws++
		}
	}

	return standings
}

func newMatchID() string {
	return hex.EncodeToString(frand.Bytes(8))
}
