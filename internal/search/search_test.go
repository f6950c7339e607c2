package search

import (
	"context"
	"testing"

	"github.com/rocketscienceinc/uttt-engine/internal/apperror"
	"github.com/rocketscienceinc/uttt-engine/internal/entity"
	"github.com/rocketscienceinc/uttt-engine/internal/evaluation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// tablePolicy - scores a leaf by the move that led to it.
type tablePolicy map[int]int

func (tablePolicy) Name() string {
	return "table"
}

func (that tablePolicy) Score(_ entity.Board, _ entity.Macro, lastMove int, _ entity.Mark) int {
	return that[lastMove]
}

func boardWith(t *testing.T, boxes map[int]string) entity.Board {
	t.Helper()

	b := entity.NewBoard()
	for box, cells := range boxes {
		require.Len(t, cells, entity.BoxCells)
		for i := range entity.BoxCells {
			b[box*entity.BoxCells+i] = entity.Mark(cells[i])
		}
	}

	return b
}

// randomPosition - plays random legal moves from the empty board.
func randomPosition(t *testing.T, seed uint64, plies int) (entity.Board, int, entity.Mark) {
	t.Helper()

	rng := rand.New(rand.NewSource(seed))
	game := entity.NewGame("test")

	for range plies {
		moves := game.LegalMoves()
		if len(moves) == 0 {
			break
		}

		mark := game.Turn
		require.NoError(t, game.MakeTurn(mark, moves[rng.Intn(len(moves))]))

		if game.IsFinished() {
			t.Fatalf("seed %d finished after %d moves", seed, len(game.Moves))
		}
	}

	return game.Board, game.LastMove, game.Turn
}

func policies(t *testing.T) []evaluation.Policy {
	t.Helper()

	list := make([]evaluation.Policy, 0, 3)
	for _, name := range evaluation.Names() {
		policy, err := evaluation.Lookup(name)
		require.NoError(t, err)

		list = append(list, policy)
	}

	return list
}

func TestMinimax_Validation(t *testing.T) {
	policy := evaluation.LinePattern{}

	t.Run("Rejects a non-positive depth", func(t *testing.T) {
		for _, depth := range []int{0, -3} {
			_, err := Minimax(entity.NewBoard(), entity.NoMove, entity.X, policy, depth)
			require.ErrorIs(t, err, apperror.ErrInvalidDepth)

			_, err = Expectimax(entity.NewBoard(), entity.NoMove, entity.X, policy, depth)
			require.ErrorIs(t, err, apperror.ErrInvalidDepth)
		}
	})

	t.Run("Rejects a finished game", func(t *testing.T) {
		b := boardWith(t, map[int]string{0: "XXX......", 4: "XXX......", 8: "XXX......"})

		_, err := Minimax(b, 80, entity.O, policy, 2)

		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Rejects a missing policy", func(t *testing.T) {
		_, err := Minimax(entity.NewBoard(), entity.NoMove, entity.X, nil, 2)

		require.ErrorIs(t, err, apperror.ErrUnknownPolicy)
	})

	t.Run("Rejects an empty mark", func(t *testing.T) {
		_, err := Minimax(entity.NewBoard(), entity.NoMove, entity.Empty, policy, 2)

		require.ErrorIs(t, err, entity.ErrInvalidMark)
	})

	t.Run("Stops when the context is done", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := Minimax(entity.NewBoard(), entity.NoMove, entity.X, policy, 1, WithContext(ctx))

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestMinimax_CompletesBox(t *testing.T) {
	// Given: X has two in the top row of box 4 and must play there
	b := boardWith(t, map[int]string{4: "XX......."})

	for _, policy := range []evaluation.Policy{evaluation.LinePattern{}, evaluation.Positional{}} {
		t.Run(policy.Name(), func(t *testing.T) {
			// When: searching one ply deep
			result, err := Minimax(b, 4, entity.X, policy, 1)

			// Then: X closes the row
			require.NoError(t, err)
			assert.Equal(t, 38, result.Move)
		})
	}
}

func TestMinimax_WinsMatch(t *testing.T) {
	// Given: X owns boxes 0 and 1 and has two in a row in box 2
	b := boardWith(t, map[int]string{0: "XXX......", 1: "XXX......", 2: "XX......."})

	for _, policy := range policies(t) {
		for depth := 1; depth <= 3; depth++ {
			// When: X is sent to box 2
			result, err := Minimax(b, 2, entity.X, policy, depth)

			// Then: X takes the match
			require.NoError(t, err)
			assert.Equal(t, 20, result.Move, "%s depth %d", policy.Name(), depth)
			assert.Equal(t, evaluation.WinScore, result.Score)

			result, err = Expectimax(b, 2, entity.X, policy, depth)
			require.NoError(t, err)
			assert.Equal(t, 20, result.Move, "%s depth %d", policy.Name(), depth)
		}
	}
}

func TestMinimax_AvoidsHandingOverTheMatch(t *testing.T) {
	// Given: O owns boxes 0 and 1 and threatens box 2, while X must play in box 4.
	// Cells 36 and 37 free O's next move and 38 sends O straight to box 2.
	b := boardWith(t, map[int]string{0: "OOO......", 1: "OOO......", 2: "OO......."})

	for _, policy := range policies(t) {
		// When: X searches two plies deep
		result, err := Minimax(b, 4, entity.X, policy, 2)

		// Then: X keeps O away from box 2
		require.NoError(t, err)
		assert.NotContains(t, []int{36, 37, 38}, result.Move, policy.Name())
		assert.Greater(t, result.Score, -evaluation.WinScore, policy.Name())
	}
}

func TestMinimax_FirstBestMoveWins(t *testing.T) {
	// Given: a policy that rates everything the same
	flat := tablePolicy{}

	// When: searching the empty board
	result, err := Minimax(entity.NewBoard(), entity.NoMove, entity.X, flat, 2)

	// Then: the lowest index is kept
	require.NoError(t, err)
	assert.Equal(t, 0, result.Move)
	assert.Equal(t, 0, result.Score)
}

func TestSearch_PruningKeepsTheMove(t *testing.T) {
	for seed := uint64(1); seed <= 6; seed++ {
		b, lastMove, player := randomPosition(t, seed, 12+int(seed))

		for _, policy := range policies(t) {
			for depth := 1; depth <= 3; depth++ {
				// When: searching with and without cutoffs
				pruned, err := Minimax(b, lastMove, player, policy, depth)
				require.NoError(t, err)

				full, err := Minimax(b, lastMove, player, policy, depth, WithoutPruning())
				require.NoError(t, err)

				// Then: move and value agree, and pruning never visits more nodes
				assert.Equal(t, full.Move, pruned.Move, "seed %d %s depth %d", seed, policy.Name(), depth)
				assert.Equal(t, full.Score, pruned.Score, "seed %d %s depth %d", seed, policy.Name(), depth)
				assert.LessOrEqual(t, pruned.Nodes, full.Nodes)
			}
		}
	}
}

func TestExpectimax_AveragesReplies(t *testing.T) {
	// Given: X is sent to box 1 with cells 12 and 14 open.
	// 12 sends O to box 3 (replies 27 and 35), 14 sends O to box 5 (reply 46 only).
	b := boardWith(t, map[int]string{
		1: "XOX.O.OXO",
		3: ".OXXOOOX.",
		5: "X.XOOXXXO",
	})
	leaves := tablePolicy{27: 0, 35: 100, 46: 30}

	t.Run("Minimax assumes the worst reply", func(t *testing.T) {
		result, err := Minimax(b, 10, entity.X, leaves, 2)

		require.NoError(t, err)
		assert.Equal(t, 14, result.Move)
		assert.Equal(t, 30, result.Score)
	})

	t.Run("Expectimax uses the mean reply", func(t *testing.T) {
		result, err := Expectimax(b, 10, entity.X, leaves, 2)

		require.NoError(t, err)
		assert.Equal(t, 12, result.Move)
		assert.Equal(t, 50, result.Score)
	})

	t.Run("Mean uses integer division", func(t *testing.T) {
		result, err := Expectimax(b, 10, entity.X, tablePolicy{27: 1, 35: 2, 46: 0}, 2)

		require.NoError(t, err)
		assert.Equal(t, 12, result.Move)
		assert.Equal(t, 1, result.Score)
	})
}
