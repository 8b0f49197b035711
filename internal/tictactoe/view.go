package tictactoe

import (
	"fmt"
	"slices"
)

// MoveEntry is one line of the move list.
type MoveEntry struct {
	Step     int    `json:"step"`
	Label    string `json:"label"`
	Position string `json:"position"`
	Current  bool   `json:"current"`
}

// View is everything a presentation layer needs to draw the game.
type View struct {
	Board           Board       `json:"board"`
	WinningLine     *Line       `json:"winning_line"`
	Status          string      `json:"status"`
	Outcome         string      `json:"outcome"`
	NextMark        string      `json:"next_mark"`
	CurrentStep     int         `json:"current_step"`
	ReversedDisplay bool        `json:"reversed_display"`
	Moves           []MoveEntry `json:"moves"`
}

// View - projects the history into render input.
func (that History) View() View {
	view := View{
		Board:           that.Current(),
		Status:          that.StatusMessage(),
		Outcome:         that.Outcome(),
		NextMark:        that.NextMark(),
		CurrentStep:     that.CurrentStep,
		ReversedDisplay: that.ReversedDisplay,
		Moves:           that.Moves(),
	}

	if _, line, won := that.Winner(); won {
		view.WinningLine = &line
	}

	return view
}

// Moves - returns the move list in display order.
func (that History) Moves() []MoveEntry {
	moves := make([]MoveEntry, 0, len(that.Snapshots))

	for step := range that.Snapshots {
		entry := MoveEntry{
			Step:    step,
			Label:   "Go to game start",
			Current: step == that.CurrentStep,
		}

		if step > 0 {
			entry.Label = fmt.Sprintf("Go to move #%d", step)
			entry.Position = position(that.Snapshots[step-1], that.Snapshots[step])
		}

		moves = append(moves, entry)
	}

	if that.ReversedDisplay {
		slices.Reverse(moves)
	}

	return moves
}

// position - formats the changed cell as "(col, row)".
func position(prev, next Board) string {
	cell, ok := LastChangedCell(prev, next)
	if !ok {
		return ""
	}

	return fmt.Sprintf("(%d, %d)", cell%3, cell/3)
}
