package entity

import (
	"fmt"
	"slices"
	"time"

	"github.com/rocketscienceinc/uttt-engine/internal/apperror"
)

// Game - one match as tracked by the driver.
type Game struct {
	ID       string `json:"id"`
	Board    Board  `json:"board"`
	LastMove int    `json:"last_move"`
	Turn     Mark   `json:"turn"`
	Status   Status `json:"status"`
	Winner   Mark   `json:"winner"`
	Moves    []int  `json:"moves,omitempty"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:       id,
		Board:    NewBoard(),
		LastMove: NoMove,
		Turn:     X,
		Status:   InProgress,
		Winner:   Empty,
	}
}

// LegalMoves - the moves available to the player on turn.
func (that *Game) LegalMoves() []int {
	return that.Board.LegalMoves(that.LastMove)
}

// MakeTurn - validates and applies a move, then hands the turn over.
func (that *Game) MakeTurn(mark Mark, cell int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	next, err := PlaceMark(that.Board, cell, mark)
	if err != nil {
		return err
	}

	if !slices.Contains(that.LegalMoves(), cell) {
		return fmt.Errorf("%w: cell %d after %d", apperror.ErrIllegalMove, cell, that.LastMove)
	}

	that.Board = next
	that.LastMove = cell
	that.Moves = append(that.Moves, cell)
	that.Turn = Opponent(mark)

	that.UpdateGameState()

	return nil
}

// UpdateGameState - recomputes the status; a position without legal moves is scored as a draw.
func (that *Game) UpdateGameState() {
	status := that.Board.Status()
	if status == InProgress && len(that.LegalMoves()) == 0 {
		status = Draw
	}

	that.Status = status
	that.Winner = status.Winner()

	if status.IsTerminal() {
		that.Turn = Empty
	}
}

func (that *Game) IsFinished() bool {
	return that.Status.IsTerminal()
}

// MatchResult - the summary of a finished game between two engines.
type MatchResult struct {
	ID       string        `json:"id"`
	PlayerX  string        `json:"player_x"`
	PlayerO  string        `json:"player_o"`
	Status   Status        `json:"status"`
	Winner   Mark          `json:"winner"`
	Moves    int           `json:"moves"`
	LastMove int           `json:"last_move"`
	Board    Board         `json:"board"`
	Duration time.Duration `json:"duration"`
}

// Standings - aggregated results for one pairing of engines.
type Standings struct {
	PlayerX string `json:"player_x"`
	PlayerO string `json:"player_o"`
	XWins   int64  `json:"x_wins"`
	OWins   int64  `json:"o_wins"`
	Draws   int64  `json:"draws"`
}

// Games - the number of games the standings were built from.
func (that Standings) Games() int64 {
	return that.XWins + that.OWins + that.Draws
}
