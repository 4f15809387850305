package t2048

import (
	"fmt"
	"strings"
)

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every valid direction.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// ParseDirection converts a direction name ("up", "down", "left", "right")
// or its first letter to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return DirUp, nil
	case "down", "d":
		return DirDown, nil
	case "left", "l":
		return DirLeft, nil
	case "right", "r":
		return DirRight, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}

// MoveLeft slides all tiles left and merges.
func MoveLeft(board Board) (Board, int) {
	return ReduceLeft(board)
}

// MoveRight slides all tiles right and merges.
func MoveRight(board Board) (Board, int) {
	reduced, score := ReduceLeft(Reverse(board))
	return Reverse(reduced), score
}

// MoveUp slides all tiles up and merges.
func MoveUp(board Board) (Board, int) {
	reduced, score := ReduceLeft(Transpose(board))
	return Transpose(reduced), score
}

// MoveDown slides all tiles down and merges.
// The order transpose, reverse, reduce, reverse, transpose matters.
func MoveDown(board Board) (Board, int) {
	reduced, score := ReduceLeft(Reverse(Transpose(board)))
	return Transpose(Reverse(reduced)), score
}

// Move performs a move in the given direction.
// Returns the new board and the score gained. The input board is not modified;
// callers compare the result with Board.Equal to learn whether anything moved.
func Move(board Board, dir Direction) (Board, int, error) {
	switch dir {
	case DirLeft:
		b, s := MoveLeft(board)
		return b, s, nil
	case DirRight:
		b, s := MoveRight(board)
		return b, s, nil
	case DirUp:
		b, s := MoveUp(board)
		return b, s, nil
	case DirDown:
		b, s := MoveDown(board)
		return b, s, nil
	default:
		return nil, 0, fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
	}
}

// CanMove reports whether any direction would change the board.
func CanMove(board Board) bool {
	if board.HasEmptyCell() {
		return true
	}
	for _, dir := range Directions {
		next, _, err := Move(board, dir)
		if err == nil && !next.Equal(board) {
			return true
		}
	}
	return false
}
