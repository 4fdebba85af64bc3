package domain

import (
	"errors"
	"fmt"
)

// ErrClueCell is returned when a write targets a cell fixed by the puzzle.
var ErrClueCell = errors.New("cannot overwrite a clue cell")

// ShapeError reports construction input whose dimensions do not describe a
// 9x9 board. Construction fails fast; no partially built board is returned.
type ShapeError struct {
	What string
	Want int
	Got  int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("bad shape for %s: want %d, got %d", e.What, e.Want, e.Got)
}

// OutOfRangeError reports a coordinate or digit outside its valid domain.
type OutOfRangeError struct {
	What  string
	Value int
	Min   int
	Max   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s %d out of range %d..%d", e.What, e.Value, e.Min, e.Max)
}

// ContradictionError reports that removing a candidate emptied a cell's
// candidate set: the puzzle has no solution along the current assignment.
// Backtracking callers act on this; the substrate only surfaces it.
type ContradictionError struct {
	Cell  Cell
	Digit uint8
}

func (e *ContradictionError) Error() string {
	return fmt.Sprintf("no candidates left at %v after removing %d", e.Cell, e.Digit)
}
