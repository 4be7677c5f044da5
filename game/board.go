package game

import (
	"fmt"
	"strings"
)

// Board is a rows x cols Connect Four grid. Row 0 is the top row, pieces settle
// towards row rows-1. A Board is treated as immutable once built: Play returns
// a new copy instead of changing the receiver.
type Board struct {
	rows  int
	cols  int
	cells []Cell // row-major
}

// NewBoard returns an empty board.
func NewBoard(rows, cols int) *Board {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("board dimensions must be positive, got %dx%d", rows, cols))
	}
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
}

// ParseBoard builds a board from one line per row, top row first. Empty cells
// are '.', Player1 is 'X' or '1' and Player2 is 'O' or '2'.
func ParseBoard(lines ...string) (*Board, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, fmt.Errorf("%w: no cells", ErrInvalidBoard)
	}

	b := NewBoard(len(lines), len(lines[0]))
	for row, line := range lines {
		if len(line) != b.cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrInvalidBoard, row, len(line), b.cols)
		}
		for col := 0; col < b.cols; col++ {
			switch line[col] {
			case '.':
			case 'X', '1':
				b.set(row, col, Player1.Cell())
			case 'O', '2':
				b.set(row, col, Player2.Cell())
			default:
				return nil, fmt.Errorf("%w: unknown symbol %q at row %d column %d", ErrInvalidBoard, line[col], row, col)
			}
		}
	}

	// Occupied cells must be stacked from the bottom of each column
	for col := 0; col < b.cols; col++ {
		for row := b.rows - b.Height(col); row < b.rows; row++ {
			if b.At(row, col) == Empty {
				return nil, fmt.Errorf("%w: floating piece in column %d", ErrInvalidBoard, col)
			}
		}
	}

	return b, nil
}

func (b *Board) Rows() int {
	return b.rows
}

func (b *Board) Cols() int {
	return b.cols
}

func (b *Board) At(row, col int) Cell {
	return b.cells[row*b.cols+col]
}

func (b *Board) set(row, col int, cell Cell) {
	b.cells[row*b.cols+col] = cell
}

// Height counts the occupied cells of a column.
func (b *Board) Height(col int) int {
	height := 0
	for row := 0; row < b.rows; row++ {
		if b.At(row, col) != Empty {
			height++
		}
	}
	return height
}

func (b *Board) Copy() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		rows:  b.rows,
		cols:  b.cols,
		cells: cells,
	}
}

func (b *Board) Equal(other *Board) bool {
	if b.rows != other.rows || b.cols != other.cols {
		return false
	}
	for i, cell := range b.cells {
		if other.cells[i] != cell {
			return false
		}
	}
	return true
}

// String renders the board in the format accepted by ParseBoard.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < b.cols; col++ {
			sb.WriteByte(b.At(row, col).symbol())
		}
	}
	return sb.String()
}
