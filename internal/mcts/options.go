package mcts

import (
	"errors"
	"fmt"
)

var ErrUnknownPerspective = errors.New("unknown backpropagation perspective")

// Perspective - whose result a node's win tally counts.
type Perspective int

const (
	// RootPerspective credits every node from the searching player's side.
	RootPerspective Perspective = iota
	// MoverPerspective credits each node from the side of the player who moved into it.
	MoverPerspective
)

func (that Perspective) String() string {
	switch that {
	case RootPerspective:
		return "root"
	case MoverPerspective:
		return "mover"
	default:
		return "unknown"
	}
}

// ParsePerspective - resolves "root" or "mover".
func ParsePerspective(s string) (Perspective, error) {
	switch s {
	case "root":
		return RootPerspective, nil
	case "mover":
		return MoverPerspective, nil
	default:
		return RootPerspective, fmt.Errorf("%w: %q", ErrUnknownPerspective, s)
	}
}

const (
	DefaultIterations        = 250
	DefaultExplorationWeight = 0.2
)

type Option func(*Search)

func WithIterations(n int) Option {
	return func(s *Search) {
		s.iterations = n
	}
}

func WithExplorationWeight(w float64) Option {
	return func(s *Search) {
		s.explorationWeight = w
	}
}

func WithSeed(seed uint64) Option {
	return func(s *Search) {
		s.seed = seed
	}
}

func WithPerspective(p Perspective) Option {
	return func(s *Search) {
		s.perspective = p
	}
}
