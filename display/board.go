// Package display renders positions for the terminal.
package display

import (
	"fmt"
	"shogi/game"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	blackStyle = lipgloss.NewStyle().Bold(true)
	whiteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	emptyStyle = lipgloss.NewStyle().Faint(true)
)

const files = " 9  8  7  6  5  4  3  2  1"

// Board draws s from black's side: white's hand on top, the board with file
// numbers and rank letters, then black's hand and the side to move.
func Board(s *game.GameState) string {
	board := s.BlackBoard()

	var rows []string
	rows = append(rows, files)
	for r := 0; r < game.BoardSize; r++ {
		var sb strings.Builder
		for f := 0; f < game.BoardSize; f++ {
			sb.WriteString(cell(board[r][f]))
		}
		sb.WriteString(" " + string(rune('a'+r)))
		rows = append(rows, sb.String())
	}

	header := titleStyle.Render(fmt.Sprintf("move %d  %s to play", s.MoveNumber, s.Player()))
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		Hand(s.Hand(game.White), game.White),
		boxStyle.Render(strings.Join(rows, "\n")),
		Hand(s.Hand(game.Black), game.Black),
	)
}

func cell(p game.Piece) string {
	text := p.SFEN()
	switch p.Owner() {
	case game.Black:
		return blackStyle.Render(fmt.Sprintf("%3s", text))
	case game.White:
		return whiteStyle.Render(fmt.Sprintf("%3s", text))
	}
	return emptyStyle.Render("  .")
}

// Hand lists the pieces in hand as "black hand: rook pawn x2".
func Hand(h game.Hand, owner game.Player) string {
	var parts []string
	for _, t := range game.HandTypes {
		switch n := h.Count(t); {
		case n == 1:
			parts = append(parts, t.String())
		case n > 1:
			parts = append(parts, fmt.Sprintf("%s x%d", t, n))
		}
	}
	if len(parts) == 0 {
		parts = append(parts, "-")
	}
	return fmt.Sprintf("%s hand: %s", owner, strings.Join(parts, " "))
}

// Moves lists moves one per line, numbered from 1.
func Moves(moves []game.Move) string {
	var sb strings.Builder
	for i, m := range moves {
		fmt.Fprintf(&sb, "%3d. %s\n", i+1, m)
	}
	return sb.String()
}
