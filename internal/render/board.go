// Package render draws boards and standings for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/uttt-engine/internal/entity"
)

const (
	colorX = "9"  // bright red
	colorO = "12" // bright blue
	colorD = "8"  // grey
)

const boxSeparator = "------+-------+------"

type Renderer struct {
	out *termenv.Output
}

// New - colors follow the terminal behind w; pass termenv.WithProfile to force a profile.
func New(w io.Writer, opts ...termenv.OutputOption) *Renderer {
	return &Renderer{out: termenv.NewOutput(w, opts...)}
}

// Board - writes the 9x9 grid, one box per 3x3 block, with lastMove in bold.
func (that *Renderer) Board(b entity.Board, lastMove int) error {
	var sb strings.Builder

	for row := range 9 {
		if row > 0 && row%3 == 0 {
			sb.WriteString(boxSeparator + "\n")
		}

		for col := range 9 {
			switch {
			case col == 0:
			case col%3 == 0:
				sb.WriteString(" | ")
			default:
				sb.WriteString(" ")
			}

			cell, err := entity.CellIndex(row+1, col+1)
			if err != nil {
				return err
			}

			sb.WriteString(that.mark(b[cell], cell == lastMove))
		}

		sb.WriteString("\n")
	}

	if _, err := io.WriteString(that.out, sb.String()); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	return nil
}

// Macro - writes the 3x3 summary of decided boxes.
func (that *Renderer) Macro(macro entity.Macro) error {
	var sb strings.Builder

	for box, outcome := range macro {
		symbol := outcome.String()
		switch outcome {
		case entity.XWon:
			symbol = that.mark(entity.X, false)
		case entity.OWon:
			symbol = that.mark(entity.O, false)
		case entity.Drawn:
			symbol = that.out.String(symbol).Foreground(that.out.Color(colorD)).String()
		}

		sb.WriteString(symbol)
		if box%3 == 2 {
			sb.WriteString("\n")
		} else {
			sb.WriteString(" ")
		}
	}

	if _, err := io.WriteString(that.out, sb.String()); err != nil {
		return fmt.Errorf("failed to write macro board: %w", err)
	}

	return nil
}

// Standings - one line per pairing.
func (that *Renderer) Standings(standings entity.Standings) error {
	_, err := fmt.Fprintf(that.out, "%s (X) vs %s (O): %s %d, %s %d, draws %d of %d\n",
		standings.PlayerX, standings.PlayerO,
		that.mark(entity.X, false), standings.XWins,
		that.mark(entity.O, false), standings.OWins,
		standings.Draws, standings.Games(),
	)
	if err != nil {
		return fmt.Errorf("failed to write standings: %w", err)
	}

	return nil
}

func (that *Renderer) mark(m entity.Mark, last bool) string {
	style := that.out.String(m.String())

	switch m {
	case entity.X:
		style = style.Foreground(that.out.Color(colorX))
	case entity.O:
		style = style.Foreground(that.out.Color(colorO))
	}

	if last {
		style = style.Bold().Underline()
	}

	return style.String()
}
