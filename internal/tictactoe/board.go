package tictactoe

const (
	PlayerX = "X"
	PlayerO = "O"

	EmptyCell = ""

	BoardSize = 9
)

// Board is a 3x3 grid in row-major order: row = index/3, column = index%3.
type Board [BoardSize]string

// Line holds the three cell indices of a completed row, column or diagonal.
type Line [3]int

// winCombos lists every line of the board in the order DetectWin checks them.
var winCombos = [8]Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// DetectWin - returns the first completed line of the board, if any.
func DetectWin(board Board) (Line, bool) {
	for _, combo := range winCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return combo, true
		}
	}

	return Line{}, false
}

// LastChangedCell - returns the first cell that is empty in prev and filled in next.
func LastChangedCell(prev, next Board) (int, bool) {
	for i := range next {
		if prev[i] == EmptyCell && next[i] != EmptyCell {
			return i, true
		}
	}

	return -1, false
}

// IsFull reports whether no empty cell remains.
func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

func markForStep(step int) string {
	if step%2 == 0 {
		return PlayerX
	}
	return PlayerO
}
