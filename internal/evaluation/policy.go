// Package evaluation holds the static scoring functions used at the search horizon.
package evaluation

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/uttt-engine/internal/apperror"
	"github.com/rocketscienceinc/uttt-engine/internal/entity"
)

const (
	// WinScore is the value of a won match; no heuristic score reaches it in practice.
	WinScore = 100000

	// macroWeight scales the macro board above any single box.
	macroWeight = 200

	// drawnCell stands for a drawn box when the macro board is scored like a 3x3 board.
	drawnCell entity.Mark = 'D'
)

const (
	LinePatternName = "line-pattern"
	PositionalName  = "positional"
	TacticalName    = "tactical"
)

// Policy - scores a position from player's point of view.
type Policy interface {
	Name() string
	Score(b entity.Board, macro entity.Macro, lastMove int, player entity.Mark) int
}

var registry = map[string]Policy{
	LinePatternName: LinePattern{},
	PositionalName:  Positional{},
	TacticalName:    Tactical{},
}

// Lookup - returns the policy registered under name.
func Lookup(name string) (Policy, error) {
	policy, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownPolicy, name)
	}

	return policy, nil
}

// Names - the registered policy names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// macroCells - the macro board as a 3x3 board of marks.
func macroCells(macro entity.Macro) [entity.Boxes]entity.Mark {
	var cells [entity.Boxes]entity.Mark
	for box, outcome := range macro {
		switch outcome {
		case entity.Drawn:
			cells[box] = drawnCell
		case entity.Undecided:
			cells[box] = entity.Empty
		default:
			cells[box] = outcome.Winner()
		}
	}

	return cells
}

// terminalScore - ±WinScore for a finished match, 0 for a draw or a running game.
func terminalScore(macro entity.Macro, player entity.Mark) int {
	switch entity.TerminalStatus(macro).Winner() {
	case player:
		return WinScore
	case entity.Opponent(player):
		return -WinScore
	default:
		return 0
	}
}
