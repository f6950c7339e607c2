package mcts

import (
	"github.com/rocketscienceinc/uttt-engine/internal/entity"
)

const (
	rootIndex int32 = 0
	noParent  int32 = -1
)

// Node - one visited position. Nodes live in the Tree's arena and refer to each other by index;
// Parent is only used to walk back up during backpropagation.
type Node struct {
	Board    entity.Board
	Move     int
	Mover    entity.Mark
	Parent   int32
	Children []int32
	Visits   int
	Wins     int

	// untried holds the legal moves that have no child yet, in ascending order.
	untried []int
}

// WinRate - wins per visit; visits start at one so this is always defined.
func (that *Node) WinRate() float64 {
	return float64(that.Wins) / float64(that.Visits)
}

// IsFullyExpanded - every legal move from the node has a child.
func (that *Node) IsFullyExpanded() bool {
	return len(that.untried) == 0
}

// Tree - the arena of nodes built by one Solve call; the root is at index 0.
type Tree struct {
	nodes []Node
}

func newTree(b entity.Board, lastMove int, mover entity.Mark) *Tree {
	tree := &Tree{nodes: make([]Node, 0, 1024)}
	tree.nodes = append(tree.nodes, newNode(b, lastMove, mover, noParent))

	return tree
}

func newNode(b entity.Board, move int, mover entity.Mark, parent int32) Node {
	n := Node{
		Board:  b,
		Move:   move,
		Mover:  mover,
		Parent: parent,
		Visits: 1,
	}

	macro := entity.MacroOutcome(b)
	if !entity.TerminalStatus(macro).IsTerminal() {
		n.untried = entity.LegalMoves(b, macro, move)
	}

	return n
}

// Root - the node the search started from.
func (that *Tree) Root() *Node {
	return &that.nodes[rootIndex]
}

// Node - the node stored at index i.
func (that *Tree) Node(i int32) *Node {
	return &that.nodes[i]
}

// Len - the number of nodes in the tree.
func (that *Tree) Len() int {
	return len(that.nodes)
}

// addChild - attaches the position after move to parent, unless a child with the same board exists.
func (that *Tree) addChild(parent int32, move int) int32 {
	p := &that.nodes[parent]
	mover := entity.Opponent(p.Mover)

	b := p.Board
	b[move] = mover

	for _, c := range p.Children {
		if that.nodes[c].Board == b {
			return c
		}
	}

	index := int32(len(that.nodes))
	that.nodes = append(that.nodes, newNode(b, move, mover, parent))

	// the append may have moved the arena
	p = &that.nodes[parent]
	p.Children = append(p.Children, index)

	return index
}

// expandAll - gives every untried move of the node a child, in move order.
func (that *Tree) expandAll(i int32) {
	moves := that.nodes[i].untried
	that.nodes[i].untried = nil

	for _, move := range moves {
		that.addChild(i, move)
	}
}
