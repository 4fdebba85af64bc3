// Package domain models a 9x9 sudoku board and the bookkeeping a
// constraint-based solver needs: cell entries with a clue mask, per-cell
// candidate sets, and a uniform house abstraction over rows, columns and
// squares so elimination rules can be written once.
package domain

import "fmt"

// Unknown is the entry of a cell that has not been solved yet.
const Unknown uint8 = 0

// Cell is a 1-based board coordinate; Row and Col are in 1..9.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// Validate reports whether the cell lies on the board.
func (c Cell) Validate() error {
	if c.Row < 1 || c.Row > 9 {
		return &OutOfRangeError{What: "row", Value: c.Row, Min: 1, Max: 9}
	}
	if c.Col < 1 || c.Col > 9 {
		return &OutOfRangeError{What: "column", Value: c.Col, Min: 1, Max: 9}
	}
	return nil
}

// Board is the puzzle's ground truth: a 9x9 grid of entries, each 1..9 or
// Unknown, and a parallel mask of which entries are fixed clues. The mask is
// immutable after construction; entries of non-clue cells may be written as
// cells are solved.
type Board struct {
	entries [9][9]uint8
	mask    [9][9]bool
}

// NewBoard constructs a board from row-major sequences of 81 entries and 81
// clue flags.
func NewBoard(values []uint8, givens []bool) (*Board, error) {
	if len(values) != 81 {
		return nil, &ShapeError{What: "values", Want: 81, Got: len(values)}
	}
	if len(givens) != 81 {
		return nil, &ShapeError{What: "givens", Want: 81, Got: len(givens)}
	}
	b := &Board{}
	for ij, v := range values {
		if v != Unknown && (v < 1 || v > 9) {
			return nil, &OutOfRangeError{What: "entry", Value: int(v), Min: 1, Max: 9}
		}
		if givens[ij] && v == Unknown {
			return nil, fmt.Errorf("clue cell at position %d has no entry", ij)
		}
		b.entries[ij/9][ij%9] = v
		b.mask[ij/9][ij%9] = givens[ij]
	}
	return b, nil
}

// NewBoardFromGrid constructs a board from 9x9 grids of entries and clue flags.
func NewBoardFromGrid(values [][]uint8, givens [][]bool) (*Board, error) {
	if len(values) != 9 {
		return nil, &ShapeError{What: "value rows", Want: 9, Got: len(values)}
	}
	if len(givens) != 9 {
		return nil, &ShapeError{What: "given rows", Want: 9, Got: len(givens)}
	}
	flatValues := make([]uint8, 0, 81)
	flatGivens := make([]bool, 0, 81)
	for i := 0; i < 9; i++ {
		if len(values[i]) != 9 {
			return nil, &ShapeError{What: "value columns", Want: 9, Got: len(values[i])}
		}
		if len(givens[i]) != 9 {
			return nil, &ShapeError{What: "given columns", Want: 9, Got: len(givens[i])}
		}
		flatValues = append(flatValues, values[i]...)
		flatGivens = append(flatGivens, givens[i]...)
	}
	return NewBoard(flatValues, flatGivens)
}

// ParseBoard constructs a board from two 81-character strings: digits '0'..'9'
// ('0' meaning Unknown) and clue flags '0'/'1' ('1' meaning clue), both
// row-major. This is the wire form puzzles arrive in from websudoku.com.
func ParseBoard(digits, mask string) (*Board, error) {
	if len(digits) != 81 {
		return nil, &ShapeError{What: "digits", Want: 81, Got: len(digits)}
	}
	if len(mask) != 81 {
		return nil, &ShapeError{What: "mask", Want: 81, Got: len(mask)}
	}
	values := make([]uint8, 81)
	givens := make([]bool, 81)
	for i := 0; i < 81; i++ {
		d := digits[i]
		if d < '0' || d > '9' {
			return nil, fmt.Errorf("bad digit %q at position %d", d, i)
		}
		values[i] = d - '0'
		switch mask[i] {
		case '1':
			givens[i] = true
		case '0':
			givens[i] = false
		default:
			return nil, fmt.Errorf("bad mask flag %q at position %d", mask[i], i)
		}
	}
	return NewBoard(values, givens)
}

// Get returns the entry at (i, j), 1-based.
func (b *Board) Get(i, j int) (uint8, error) {
	if err := (Cell{Row: i, Col: j}).Validate(); err != nil {
		return 0, err
	}
	return b.entries[i-1][j-1], nil
}

// IsClue reports whether the cell at (i, j) is fixed by the puzzle.
func (b *Board) IsClue(i, j int) (bool, error) {
	if err := (Cell{Row: i, Col: j}).Validate(); err != nil {
		return false, err
	}
	return b.mask[i-1][j-1], nil
}

// Set writes an entry at (i, j). Clue cells are immutable; writing one
// returns ErrClueCell.
func (b *Board) Set(i, j int, v uint8) error {
	if err := (Cell{Row: i, Col: j}).Validate(); err != nil {
		return err
	}
	if v != Unknown && (v < 1 || v > 9) {
		return &OutOfRangeError{What: "entry", Value: int(v), Min: 1, Max: 9}
	}
	if b.mask[i-1][j-1] {
		return fmt.Errorf("set (%d,%d): %w", i, j, ErrClueCell)
	}
	b.entries[i-1][j-1] = v
	return nil
}

// House returns the 9 entries of a house in its canonical cell order.
func (b *Board) House(h House) [9]uint8 {
	var out [9]uint8
	for n, c := range h.Cells() {
		out[n] = b.entries[c.Row-1][c.Col-1]
	}
	return out
}

// Clone returns an independent copy. Search branches that mutate entries in
// parallel must each work on their own clone.
func (b *Board) Clone() *Board {
	dup := *b
	return &dup
}
