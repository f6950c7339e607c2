package repository

import (
	"testing"
	"time"

	"github.com/rocketscienceinc/uttt-engine/internal/entity"
	"github.com/rocketscienceinc/uttt-engine/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	playerX = "minimax(line-pattern,3)"
	playerO = "mcts(500,0.2,root)"
)

func matchResult(id string, status entity.Status) *entity.MatchResult {
	b, _ := entity.PlaceMark(entity.NewBoard(), 40, entity.X)

	return &entity.MatchResult{
		ID:       id,
		PlayerX:  playerX,
		PlayerO:  playerO,
		Status:   status,
		Winner:   status.Winner(),
		Moves:    57,
		LastMove: 40,
		Board:    b,
		Duration: 1500 * time.Millisecond,
	}
}

func TestStatsRepository_SaveMatch(t *testing.T) {
	t.Run("SaveMatch_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		statsRepo := NewStatsRepository(st.Storage, time.Hour)

		// Given: a finished match
		result := matchResult("123", entity.XWins)

		// When: SaveMatch is called
		err := statsRepo.SaveMatch(ctx, result)

		// Then: it is stored with the configured expiry
		require.NoError(t, err)

		ttl, err := st.Storage.TTL(ctx, matchKey("123")).Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))
		assert.LessOrEqual(t, ttl, time.Hour)
	})
}

func TestStatsRepository_GetMatch(t *testing.T) {
	t.Run("GetMatch_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		statsRepo := NewStatsRepository(st.Storage, time.Hour)

		// Given: a stored match
		result := matchResult("123", entity.OWins)
		require.NoError(t, statsRepo.SaveMatch(ctx, result))

		// When: GetMatch is called with its ID
		retrieved, err := statsRepo.GetMatch(ctx, result.ID)

		// Then: the retrieved match equals the saved one
		require.NoError(t, err)
		assert.Equal(t, result, retrieved)
	})

	t.Run("GetMatch_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		statsRepo := NewStatsRepository(st.Storage, time.Hour)

		// When: GetMatch is called with a non-existent ID
		retrieved, err := statsRepo.GetMatch(ctx, "9999999")

		// Then: an ErrMatchNotFound error should be returned
		require.ErrorIs(t, err, ErrMatchNotFound)
		assert.Empty(t, retrieved.ID)
	})
}

func TestStatsRepository_Standings(t *testing.T) {
	t.Run("RecordResult_Counts", func(t *testing.T) {
		ctx, st := suite.New(t)

		statsRepo := NewStatsRepository(st.Storage, time.Hour)

		// Given: three X wins, one O win and two draws
		for i, status := range []entity.Status{
			entity.XWins, entity.Draw, entity.XWins, entity.OWins, entity.Draw, entity.XWins,
		} {
			require.NoError(t, statsRepo.RecordResult(ctx, matchResult(string(rune('a'+i)), status)))
		}

		// When: GetStandings is called for the pairing
		standings, err := statsRepo.GetStandings(ctx, playerX, playerO)

		// Then: every outcome is counted
		require.NoError(t, err)
		assert.Equal(t, &entity.Standings{
			PlayerX: playerX,
			PlayerO: playerO,
			XWins:   3,
			OWins:   1,
			Draws:   2,
		}, standings)
		assert.Equal(t, int64(6), standings.Games())
	})

	t.Run("GetStandings_Empty", func(t *testing.T) {
		ctx, st := suite.New(t)

		statsRepo := NewStatsRepository(st.Storage, time.Hour)

		// When: the pairing never played
		standings, err := statsRepo.GetStandings(ctx, playerO, playerX)

		// Then: zero standings come back
		require.NoError(t, err)
		assert.Equal(t, int64(0), standings.Games())
	})

	t.Run("RecordResult_InProgress", func(t *testing.T) {
		ctx, st := suite.New(t)

		statsRepo := NewStatsRepository(st.Storage, time.Hour)

		err := statsRepo.RecordResult(ctx, matchResult("123", entity.InProgress))

		require.Error(t, err)
	})
}
