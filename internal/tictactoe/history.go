package tictactoe

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
)

const (
	OutcomeOngoing = "ongoing"
	OutcomeWon     = "won"
	OutcomeDraw    = "draw"
)

// History is the append-only list of board snapshots with a pointer to the active one.
// Every operation returns a new History and leaves the receiver untouched.
type History struct {
	Snapshots       []Board `json:"snapshots"`
	CurrentStep     int     `json:"current_step"`
	ReversedDisplay bool    `json:"reversed_display"`
}

// NewHistory - creates a history holding only the empty board.
func NewHistory() History {
	return History{
		Snapshots: []Board{{}},
	}
}

// Current - returns the snapshot at the current step.
func (that History) Current() Board {
	return that.Snapshots[that.CurrentStep]
}

// NextMark - returns the mark of the player about to move.
func (that History) NextMark() string {
	return markForStep(that.CurrentStep)
}

// Len - returns the number of stored snapshots.
func (that History) Len() int {
	return len(that.Snapshots)
}

// PlayMove - places the next mark on cell, discarding any snapshots after the current step.
func (that History) PlayMove(cell int) (History, error) {
	if cell < 0 || cell >= BoardSize {
		return that, fmt.Errorf("%w: %w: cell %d", apperror.ErrInvalidMove, apperror.ErrInvalidCell, cell)
	}

	current := that.Current()

	if _, won := DetectWin(current); won {
		return that, fmt.Errorf("%w: %w", apperror.ErrInvalidMove, apperror.ErrGameFinished)
	}

	if current[cell] != EmptyCell {
		return that, fmt.Errorf("%w: %w: cell %d", apperror.ErrInvalidMove, apperror.ErrCellOccupied, cell)
	}

	next := current
	next[cell] = that.NextMark()

	// clipping forces append to copy, so older History values keep their own future branch
	snapshots := slices.Clip(that.Snapshots[:that.CurrentStep+1])
	snapshots = append(snapshots, next)

	return History{
		Snapshots:       snapshots,
		CurrentStep:     len(snapshots) - 1,
		ReversedDisplay: that.ReversedDisplay,
	}, nil
}

// JumpTo - makes step the current one without touching the snapshots.
func (that History) JumpTo(step int) (History, error) {
	if step < 0 || step >= len(that.Snapshots) {
		return that, fmt.Errorf("%w: step %d of %d", apperror.ErrInvalidStep, step, len(that.Snapshots))
	}

	that.CurrentStep = step

	return that, nil
}

// ToggleDisplayOrder - flips the order the move list is shown in.
func (that History) ToggleDisplayOrder() History {
	that.ReversedDisplay = !that.ReversedDisplay

	return that
}

// Winner - returns the mark on the winning line of the current snapshot.
func (that History) Winner() (string, Line, bool) {
	current := that.Current()

	line, won := DetectWin(current)
	if !won {
		return "", Line{}, false
	}

	return current[line[0]], line, true
}

// Outcome - reports whether the game at the current step is ongoing, won or drawn.
func (that History) Outcome() string {
	if _, _, won := that.Winner(); won {
		return OutcomeWon
	}

	if that.CurrentStep == BoardSize {
		return OutcomeDraw
	}

	return OutcomeOngoing
}

// StatusMessage - returns the status line shown above the move list.
func (that History) StatusMessage() string {
	if winner, _, won := that.Winner(); won {
		return "Winner: " + winner
	}

	if that.CurrentStep == BoardSize {
		return "Draw"
	}

	return "Next player: " + that.NextMark()
}
