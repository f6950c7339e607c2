// Package mcts implements Monte Carlo Tree Search with UCB1 selection and random rollouts.
package mcts

import (
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/rocketscienceinc/uttt-engine/internal/apperror"
	"github.com/rocketscienceinc/uttt-engine/internal/entity"
	"golang.org/x/exp/rand"
)

// OpeningMove is played on the empty board without searching: the center of the center box.
const OpeningMove = 40

// Search - holds the configuration only, so one Search may serve any number of Solve calls.
type Search struct {
	iterations        int
	explorationWeight float64
	seed              uint64
	perspective       Perspective
}

type Result struct {
	Move       int
	Iterations int
	Nodes      int
	WinRate    float64
	Tree       *Tree
}

func New(opts ...Option) *Search {
	s := &Search{
		iterations:        DefaultIterations,
		explorationWeight: DefaultExplorationWeight,
		seed:              1,
		perspective:       RootPerspective,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Validate - reports a configuration Solve would refuse.
func (that *Search) Validate() error {
	if that.iterations <= 0 {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidIterations, that.iterations)
	}

	if that.explorationWeight < 0 || math.IsNaN(that.explorationWeight) {
		return fmt.Errorf("%w: %v", apperror.ErrInvalidExplorationWeight, that.explorationWeight)
	}

	return nil
}

// Solve - runs the configured number of iterations from the position and returns the root
// child with the best wins/visits ratio. The same seed always yields the same result.
func (that *Search) Solve(ctx context.Context, b entity.Board, lastMove int, player entity.Mark) (Result, error) {
	if err := that.Validate(); err != nil {
		return Result{}, err
	}

	if !player.IsPlayer() {
		return Result{}, fmt.Errorf("%w: %q", entity.ErrInvalidMark, byte(player))
	}

	if b.IsEmpty() {
		return Result{Move: OpeningMove}, nil
	}

	macro := entity.MacroOutcome(b)
	if entity.TerminalStatus(macro).IsTerminal() {
		return Result{}, apperror.ErrGameFinished
	}

	if len(entity.LegalMoves(b, macro, lastMove)) == 0 {
		return Result{}, apperror.ErrNoLegalMoves
	}

	rng := rand.New(rand.NewSource(that.seed))

	tree := newTree(b, lastMove, entity.Opponent(player))
	tree.expandAll(rootIndex)

	for i := range that.iterations {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("search interrupted after %d iterations: %w", i, err)
		}

		leaf := that.selectLeaf(tree)
		node := that.expand(tree, leaf, rng)
		winner := rollout(tree.Node(node), rng)
		that.backpropagate(tree, node, winner, player)
	}

	best := that.bestChild(tree)

	return Result{
		Move:       best.Move,
		Iterations: that.iterations,
		Nodes:      tree.Len(),
		WinRate:    best.WinRate(),
		Tree:       tree,
	}, nil
}

// selectLeaf - descends through fully expanded nodes by UCB1, counting a visit on every node it passes.
func (that *Search) selectLeaf(tree *Tree) int32 {
	current := rootIndex
	for {
		n := tree.Node(current)
		n.Visits++

		if len(n.Children) == 0 || !n.IsFullyExpanded() {
			return current
		}

		current = that.bestUCB(tree, n)
	}
}

// bestUCB - winRate + w*sqrt(2 ln(parentVisits) / childVisits); the first child wins ties.
func (that *Search) bestUCB(tree *Tree, parent *Node) int32 {
	logVisits := math.Log(float64(parent.Visits))

	best, bestValue := parent.Children[0], math.Inf(-1)
	for _, c := range parent.Children {
		child := tree.Node(c)
		value := child.WinRate() + that.explorationWeight*math.Sqrt(2*logVisits/float64(child.Visits))

		if value > bestValue {
			best, bestValue = c, value
		}
	}

	return best
}

// expand - attaches one random untried move as a new child, or returns the leaf itself when it has none.
func (that *Search) expand(tree *Tree, leaf int32, rng *rand.Rand) int32 {
	n := tree.Node(leaf)
	if n.IsFullyExpanded() {
		return leaf
	}

	k := rng.Intn(len(n.untried))
	move := n.untried[k]
	n.untried = slices.Delete(n.untried, k, k+1)

	return tree.addChild(leaf, move)
}

// rollout - plays random legal moves until the match ends; returns the winner, or Empty for a draw.
func rollout(n *Node, rng *rand.Rand) entity.Mark {
	b, lastMove, toMove := n.Board, n.Move, entity.Opponent(n.Mover)

	for {
		macro := entity.MacroOutcome(b)
		if status := entity.TerminalStatus(macro); status.IsTerminal() {
			return status.Winner()
		}

		moves := entity.LegalMoves(b, macro, lastMove)
		if len(moves) == 0 {
			return entity.Empty
		}

		move := moves[rng.Intn(len(moves))]
		b[move] = toMove
		lastMove, toMove = move, entity.Opponent(toMove)
	}
}

// backpropagate - walks from the node up to, but not including, the root.
func (that *Search) backpropagate(tree *Tree, from int32, winner, player entity.Mark) {
	for i := from; i != rootIndex; {
		n := tree.Node(i)

		side := player
		if that.perspective == MoverPerspective {
			side = n.Mover
		}

		n.Wins += reward(winner, side)
		n.Visits++

		i = n.Parent
	}
}

func reward(winner, side entity.Mark) int {
	switch winner {
	case side:
		return 1
	case entity.Empty:
		return 0
	default:
		return -1
	}
}

func (that *Search) bestChild(tree *Tree) *Node {
	root := tree.Root()

	best := tree.Node(root.Children[0])
	for _, c := range root.Children[1:] {
		if child := tree.Node(c); child.WinRate() > best.WinRate() {
			best = child
		}
	}

	return best
}
