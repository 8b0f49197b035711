package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
)

// Render - writes the board, status line and move list.
func Render(out io.Writer, view tictactoe.View) error {
	var sb strings.Builder

	winning := make(map[int]bool, 3)
	if view.WinningLine != nil {
		for _, cell := range view.WinningLine {
			winning[cell] = true
		}
	}

	for row := range 3 {
		if row > 0 {
			sb.WriteString("---+---+---\n")
		}

		cells := make([]string, 0, 3)
		for col := range 3 {
			cells = append(cells, renderCell(view.Board, row*3+col, winning))
		}

		sb.WriteString(strings.Join(cells, "|"))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(view.Status)
	sb.WriteString("\n")

	for _, move := range view.Moves {
		marker := "  "
		if move.Current {
			marker = "* "
		}

		fmt.Fprintf(&sb, "%s%d. %s", marker, move.Step, move.Label)
		if move.Position != "" {
			sb.WriteString(" " + move.Position)
		}

		sb.WriteString("\n")
	}

	if _, err := io.WriteString(out, sb.String()); err != nil {
		return fmt.Errorf("failed to render game: %w", err)
	}

	return nil
}

// renderCell - empty cells show their index, winning cells are bracketed.
func renderCell(board tictactoe.Board, cell int, winning map[int]bool) string {
	mark := board[cell]
	if mark == tictactoe.EmptyCell {
		mark = strconv.Itoa(cell)
	}

	if winning[cell] {
		return "[" + mark + "]"
	}

	return " " + mark + " "
}
