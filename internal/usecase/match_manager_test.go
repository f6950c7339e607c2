package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/uttt-engine/internal/apperror"
	"github.com/rocketscienceinc/uttt-engine/internal/config"
	"github.com/rocketscienceinc/uttt-engine/internal/entity"
	"github.com/rocketscienceinc/uttt-engine/internal/service"
	mockedUseCase "github.com/rocketscienceinc/uttt-engine/mocks/usecase"
)

var (
	errRedisDown  = errors.New("redis down")
	errOutOfIdeas = errors.New("out of ideas")
)

// scriptedEngine - plays a fixed move or fails.
type scriptedEngine struct {
	move int
	err  error
}

func (that scriptedEngine) Name() string {
	return "scripted"
}

func (that scriptedEngine) ChooseMove(context.Context, entity.Board, int, entity.Mark) (int, error) {
	return that.move, that.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func randomMatch(games, parallel int, seed uint64) config.Match {
	return config.Match{
		Games:    games,
		Parallel: parallel,
		Seed:     seed,
		PlayerX:  config.Engine{Kind: config.KindRandom},
		PlayerO:  config.Engine{Kind: config.KindRandom},
	}
}

func TestMatchManager_PlayGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Plays until the game is decided", func(t *testing.T) {
		// Given: two random engines
		manager := NewMatchManager(discardLogger(), nil, service.New)

		// When: playing a game
		result, err := manager.PlayGame(ctx, "g1", service.NewRandomEngine(1), service.NewRandomEngine(2))

		// Then: the game ended and the result matches the final board
		require.NoError(t, err)
		assert.True(t, result.Status.IsTerminal())
		assert.Equal(t, result.Status, result.Board.Status())
		assert.Equal(t, result.Status.Winner(), result.Winner)
		assert.Equal(t, result.Moves, result.Board.Count(entity.X)+result.Board.Count(entity.O))
		assert.Equal(t, "random", result.PlayerX)
	})

	t.Run("Engine error stops the game", func(t *testing.T) {
		manager := NewMatchManager(discardLogger(), nil, service.New)

		_, err := manager.PlayGame(ctx, "g1", scriptedEngine{err: errOutOfIdeas}, service.NewRandomEngine(1))

		require.ErrorIs(t, err, ErrEngineFailed)
		require.ErrorIs(t, err, errOutOfIdeas)
	})

	t.Run("Illegal move stops the game", func(t *testing.T) {
		// Given: O always answers in box 0 while X sends it to box 4
		manager := NewMatchManager(discardLogger(), nil, service.New)

		// When: playing
		_, err := manager.PlayGame(ctx, "g1", scriptedEngine{move: 40}, scriptedEngine{move: 0})

		// Then: the illegal reply is reported
		require.ErrorIs(t, err, ErrEngineFailed)
		require.ErrorIs(t, err, apperror.ErrIllegalMove)
	})
}

func TestMatchManager_RunMatch(t *testing.T) {
	ctx := context.Background()

	t.Run("Plays every game without storage", func(t *testing.T) {
		manager := NewMatchManager(discardLogger(), nil, service.New)

		summary, err := manager.RunMatch(ctx, randomMatch(6, 3, 5))

		require.NoError(t, err)
		assert.Equal(t, uint64(5), summary.Seed)
		require.Len(t, summary.Results, 6)
		for _, result := range summary.Results {
			require.NotNil(t, result)
			assert.True(t, result.Status.IsTerminal())
		}
		assert.Equal(t, int64(6), summary.Standings.Games())
		assert.Equal(t, "random", summary.Standings.PlayerX)
	})

	t.Run("Same seed gives the same games at any parallelism", func(t *testing.T) {
		manager := NewMatchManager(discardLogger(), nil, service.New)

		sequential, err := manager.RunMatch(ctx, randomMatch(4, 1, 77))
		require.NoError(t, err)

		parallel, err := manager.RunMatch(ctx, randomMatch(4, 4, 77))
		require.NoError(t, err)

		for i := range sequential.Results {
			assert.Equal(t, sequential.Results[i].Board, parallel.Results[i].Board, "game %d", i)
		}
		assert.Equal(t, sequential.Standings, parallel.Standings)
	})

	t.Run("Zero seed draws a fresh one", func(t *testing.T) {
		manager := NewMatchManager(discardLogger(), nil, service.New)

		summary, err := manager.RunMatch(ctx, randomMatch(1, 1, 0))

		require.NoError(t, err)
		assert.NotZero(t, summary.Seed)
	})

	t.Run("Stores every game", func(t *testing.T) {
		// Given: a stats repository that accepts everything
		mockStatsRepo := mockedUseCase.NewMockstatsRepo(t)
		manager := NewMatchManager(discardLogger(), mockStatsRepo, service.New)

		mockStatsRepo.EXPECT().
			SaveMatch(mock.Anything, mock.AnythingOfType("*entity.MatchResult")).
			Return(nil).
			Times(3)
		mockStatsRepo.EXPECT().
			RecordResult(mock.Anything, mock.AnythingOfType("*entity.MatchResult")).
			Return(nil).
			Times(3)

		// When: running three games
		_, err := manager.RunMatch(ctx, randomMatch(3, 2, 9))

		// Then: each game is saved and counted once
		require.NoError(t, err)
	})

	t.Run("Storage failure aborts the match", func(t *testing.T) {
		// Given: a stats repository that is down
		mockStatsRepo := mockedUseCase.NewMockstatsRepo(t)
		manager := NewMatchManager(discardLogger(), mockStatsRepo, service.New)

		mockStatsRepo.EXPECT().
			SaveMatch(mock.Anything, mock.AnythingOfType("*entity.MatchResult")).
			Return(errRedisDown).
			Once()

		// When: running the games one at a time
		summary, err := manager.RunMatch(ctx, randomMatch(3, 1, 9))

		// Then: the first failure ends the match
		require.ErrorIs(t, err, errRedisDown)
		assert.Nil(t, summary)
	})

	t.Run("Invalid match settings", func(t *testing.T) {
		manager := NewMatchManager(discardLogger(), nil, service.New)

		_, err := manager.RunMatch(ctx, randomMatch(0, 1, 1))

		require.ErrorIs(t, err, config.ErrInvalidMatch)
	})

	t.Run("Unknown engine", func(t *testing.T) {
		manager := NewMatchManager(discardLogger(), nil, service.New)
		conf := randomMatch(1, 1, 1)
		conf.PlayerO.Kind = "alphazero"

		_, err := manager.RunMatch(ctx, conf)

		require.ErrorIs(t, err, apperror.ErrUnknownEngine)
	})
}

func TestMatchManager_Standings(t *testing.T) {
	ctx := context.Background()

	t.Run("Nothing stored without a repository", func(t *testing.T) {
		manager := NewMatchManager(discardLogger(), nil, service.New)

		standings, err := manager.Standings(ctx, "random", "random")

		require.NoError(t, err)
		assert.Nil(t, standings)
	})

	t.Run("Reads the repository", func(t *testing.T) {
		mockStatsRepo := mockedUseCase.NewMockstatsRepo(t)
		manager := NewMatchManager(discardLogger(), mockStatsRepo, service.New)

		stored := &entity.Standings{PlayerX: "a", PlayerO: "b", XWins: 2}
		mockStatsRepo.EXPECT().
			GetStandings(mock.Anything, "a", "b").
			Return(stored, nil).
			Once()

		standings, err := manager.Standings(ctx, "a", "b")

		require.NoError(t, err)
		assert.Equal(t, stored, standings)
	})

	t.Run("Repository error", func(t *testing.T) {
		mockStatsRepo := mockedUseCase.NewMockstatsRepo(t)
		manager := NewMatchManager(discardLogger(), mockStatsRepo, service.New)

		mockStatsRepo.EXPECT().
			GetStandings(mock.Anything, "a", "b").
			Return((*entity.Standings)(nil), errRedisDown).
			Once()

		_, err := manager.Standings(ctx, "a", "b")

		require.ErrorIs(t, err, errRedisDown)
	})
}
