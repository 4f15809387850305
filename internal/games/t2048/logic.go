package t2048

import "fmt"

// Empty is the value of a cell without a tile.
const Empty = 0

// Board is a grid of tile values addressed as board[row][col].
// Empty cells hold 0, every other cell holds a power of two.
type Board [][]int

// Pos is a zero-based cell address.
type Pos struct {
	Row, Col int
}

// NewBoard returns an all-empty board with the given dimensions.
func NewBoard(rows, cols int) Board {
	b := make(Board, rows)
	for r := range b {
		b[r] = make([]int, cols)
	}
	return b
}

// Rows returns the number of rows.
func (b Board) Rows() int {
	return len(b)
}

// Cols returns the number of columns (0 for a board without rows).
func (b Board) Cols() int {
	if len(b) == 0 {
		return 0
	}
	return len(b[0])
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	out := make(Board, len(b))
	for r, row := range b {
		out[r] = append([]int(nil), row...)
	}
	return out
}

// Equal reports whether both boards have the same shape and cells.
func (b Board) Equal(other Board) bool {
	if len(b) != len(other) {
		return false
	}
	for r := range b {
		if len(b[r]) != len(other[r]) {
			return false
		}
		for c := range b[r] {
			if b[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

// Validate checks that the board is rectangular and every cell is empty or a power of two.
func (b Board) Validate() error {
	cols := b.Cols()
	for r, row := range b {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidBoard, r, len(row), cols)
		}
		for c, v := range row {
			if v != Empty && !IsTileValue(v) {
				return fmt.Errorf("%w: cell (%d,%d) holds %d", ErrInvalidBoard, r, c, v)
			}
		}
	}
	return nil
}

// IsTileValue reports whether v is a valid non-empty tile (a power of two >= 2).
func IsTileValue(v int) bool {
	return v >= 2 && v&(v-1) == 0
}

// ReduceRow compacts a row toward index 0 and merges equal neighbours.
// Scanning runs left to right and each tile merges at most once, so
// [2,2,2] becomes [4,2,0]. Returns the new row and the sum of merged values.
// The input row is not modified.
func ReduceRow(row []int) ([]int, int) {
	tiles := make([]int, 0, len(row))
	for _, v := range row {
		if v != Empty {
			tiles = append(tiles, v)
		}
	}

	result := make([]int, len(row))
	score := 0
	writePos := 0
	for i := 0; i < len(tiles); i++ {
		if i+1 < len(tiles) && tiles[i] == tiles[i+1] {
			merged := tiles[i] * 2
			result[writePos] = merged
			score += merged
			i++ // skip the consumed partner
		} else {
			result[writePos] = tiles[i]
		}
		writePos++
	}

	return result, score
}

// ReduceLeft applies ReduceRow to every row and sums the row scores.
func ReduceLeft(board Board) (Board, int) {
	out := make(Board, len(board))
	total := 0
	for r, row := range board {
		reduced, score := ReduceRow(row)
		out[r] = reduced
		total += score
	}
	return out, total
}

// Reverse returns a new board with each row's cells in reverse order.
func Reverse(board Board) Board {
	out := make(Board, len(board))
	for r, row := range board {
		n := len(row)
		out[r] = make([]int, n)
		for c := range row {
			out[r][c] = row[n-1-c]
		}
	}
	return out
}

// Transpose returns a new board with rows and columns swapped.
func Transpose(board Board) Board {
	rows, cols := board.Rows(), board.Cols()
	out := NewBoard(cols, rows)
	for r := range rows {
		for c := range cols {
			out[c][r] = board[r][c]
		}
	}
	return out
}

// EmptyCells returns the addresses of all empty cells in row-major order.
func (b Board) EmptyCells() []Pos {
	var cells []Pos
	for r, row := range b {
		for c, v := range row {
			if v == Empty {
				cells = append(cells, Pos{Row: r, Col: c})
			}
		}
	}
	return cells
}

// HasEmptyCell returns true if there's at least one empty cell.
func (b Board) HasEmptyCell() bool {
	for _, row := range b {
		for _, v := range row {
			if v == Empty {
				return true
			}
		}
	}
	return false
}

// MaxTile returns the maximum tile value on the board.
func (b Board) MaxTile() int {
	maxVal := 0
	for _, row := range b {
		for _, v := range row {
			if v > maxVal {
				maxVal = v
			}
		}
	}
	return maxVal
}
