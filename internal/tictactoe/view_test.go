package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_Moves(t *testing.T) {
	t.Run("Labels and positions", func(t *testing.T) {
		// Given: X on 0, O on 4, X on 5
		history := play(t, NewHistory(), 0, 4, 5)

		// When: building the move list
		moves := history.Moves()

		// Then: every step is annotated with (col, row)
		expected := []MoveEntry{
			{Step: 0, Label: "Go to game start", Position: ""},
			{Step: 1, Label: "Go to move #1", Position: "(0, 0)"},
			{Step: 2, Label: "Go to move #2", Position: "(1, 1)"},
			{Step: 3, Label: "Go to move #3", Position: "(2, 1)", Current: true},
		}
		assert.Equal(t, expected, moves)
	})

	t.Run("Reversed order keeps step numbers", func(t *testing.T) {
		// Given: two moves and a reversed display
		history := play(t, NewHistory(), 0, 4).ToggleDisplayOrder()

		// When: building the move list
		moves := history.Moves()

		// Then: entries come newest first but still point at the same snapshots
		require.Len(t, moves, 3)
		assert.Equal(t, 2, moves[0].Step)
		assert.Equal(t, "(1, 1)", moves[0].Position)
		assert.Equal(t, 0, moves[2].Step)
	})

	t.Run("Current marker follows jumps", func(t *testing.T) {
		// Given: a jump back to step 1
		history, err := play(t, NewHistory(), 0, 4).JumpTo(1)
		require.NoError(t, err)

		// Then: step 1 is marked current
		for _, move := range history.Moves() {
			assert.Equal(t, move.Step == 1, move.Current)
		}
	})
}

func TestHistory_View(t *testing.T) {
	t.Run("Ongoing game has no winning line", func(t *testing.T) {
		// Given: one move
		history := play(t, NewHistory(), 0)

		// When: projecting the view
		view := history.View()

		// Then: render data reflects the current step
		assert.Nil(t, view.WinningLine)
		assert.Equal(t, "Next player: O", view.Status)
		assert.Equal(t, PlayerO, view.NextMark)
		assert.Equal(t, 1, view.CurrentStep)
		assert.Equal(t, OutcomeOngoing, view.Outcome)
		assert.Len(t, view.Moves, 2)
	})

	t.Run("Won game carries the line", func(t *testing.T) {
		// Given: X wins on the anti-diagonal
		history := play(t, NewHistory(), 2, 0, 4, 1, 6)

		// When: projecting the view
		view := history.View()

		// Then: the line is set for highlighting
		require.NotNil(t, view.WinningLine)
		assert.Equal(t, Line{2, 4, 6}, *view.WinningLine)
		assert.Equal(t, "Winner: X", view.Status)
	})
}
