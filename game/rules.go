package game

import "fmt"

// WindowLength is the number of aligned pieces needed to win.
const WindowLength = 4

// Window is a run of WindowLength consecutive cells along one line direction.
type Window [WindowLength]Cell

func (w Window) count(cell Cell) int {
	n := 0
	for _, c := range w {
		if c == cell {
			n++
		}
	}
	return n
}

// ValidMoves lists the non-full columns from left to right. The order drives
// move exploration and therefore tie-breaks in search.
func ValidMoves(b *Board) []int {
	moves := make([]int, 0, b.cols)
	for col := 0; col < b.cols; col++ {
		if b.At(0, col) == Empty {
			moves = append(moves, col)
		}
	}
	return moves
}

// Play drops a piece for player into col and returns the resulting board.
// The input board is left unchanged.
func Play(b *Board, col int, player Player) (*Board, error) {
	if !player.IsValid() {
		return nil, fmt.Errorf("%w: unknown player %d", ErrInvalidMove, player)
	}
	if col < 0 || col >= b.cols {
		return nil, fmt.Errorf("%w: column %d out of range [0, %d)", ErrInvalidMove, col, b.cols)
	}
	if b.At(0, col) != Empty {
		return nil, fmt.Errorf("%w: column %d is full", ErrInvalidMove, col)
	}

	next := b.Copy()
	next.set(b.rows-1-b.Height(col), col, player.Cell())
	return next, nil
}

// MustPlay is like Play but panics on an invalid move. It is meant for callers
// that only pass columns returned by ValidMoves.
func MustPlay(b *Board, col int, player Player) *Board {
	next, err := Play(b, col, player)
	if err != nil {
		panic(err)
	}
	return next
}

// HasWon reports whether player owns every cell of at least one window.
func HasWon(b *Board, player Player) bool {
	won := false
	forEachWindow(b, func(w Window) bool {
		won = w.count(player.Cell()) == WindowLength
		return !won
	})
	return won
}

// IsTerminal reports whether the game is over: the board is full or a player has won.
func IsTerminal(b *Board) bool {
	return len(ValidMoves(b)) == 0 || HasWon(b, Player1) || HasWon(b, Player2)
}

// Winner returns the player owning a complete window, or NoPlayer.
func Winner(b *Board) Player {
	for _, player := range []Player{Player1, Player2} {
		if HasWon(b, player) {
			return player
		}
	}
	return NoPlayer
}

// forEachWindow visits every window exactly once: rows, columns, down-right
// diagonals, then up-right diagonals. Iteration stops when visit returns false.
func forEachWindow(b *Board, visit func(Window) bool) {
	directions := [][2]int{
		{0, 1},  // horizontal
		{1, 0},  // vertical
		{1, 1},  // diagonal \
		{-1, 1}, // diagonal /
	}

	for _, dir := range directions {
		dRow, dCol := dir[0], dir[1]

		// Rows where a window can start without leaving the board
		rowStart, rowEnd := 0, b.rows
		if dRow > 0 {
			rowEnd = b.rows - (WindowLength - 1)
		} else if dRow < 0 {
			rowStart = WindowLength - 1
		}
		colEnd := b.cols - (WindowLength-1)*dCol

		for row := rowStart; row < rowEnd; row++ {
			for col := 0; col < colEnd; col++ {
				var w Window
				for i := range w {
					w[i] = b.At(row+i*dRow, col+i*dCol)
				}
				if !visit(w) {
					return
				}
			}
		}
	}
}
