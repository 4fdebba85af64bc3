package domain

import "fmt"

// HouseKind tags the three kinds of constraint groups.
type HouseKind uint8

const (
	Row HouseKind = iota
	Column
	Square
)

func (k HouseKind) String() string {
	switch k {
	case Row:
		return "row"
	case Column:
		return "column"
	case Square:
		return "square"
	}
	return fmt.Sprintf("HouseKind(%d)", uint8(k))
}

// House identifies one of the 27 constraint groups: a row, a column, or a
// 3x3 square. For Row and Column, Ix is the 1-based row or column index.
// For Square, Ix and Jx are the box coordinates, each in 1..3; the box's
// top-left cell is (3*Ix-2, 3*Jx-2).
type House struct {
	Kind HouseKind
	Ix   int
	Jx   int
}

func RowHouse(ix int) House    { return House{Kind: Row, Ix: ix} }
func ColumnHouse(jx int) House { return House{Kind: Column, Ix: jx} }

func SquareHouse(bi, bj int) House {
	return House{Kind: Square, Ix: bi, Jx: bj}
}

func (h House) String() string {
	if h.Kind == Square {
		return fmt.Sprintf("square(%d,%d)", h.Ix, h.Jx)
	}
	return fmt.Sprintf("%s(%d)", h.Kind, h.Ix)
}

// Validate reports whether the house's coordinates are in domain.
func (h House) Validate() error {
	switch h.Kind {
	case Row:
		if h.Ix < 1 || h.Ix > 9 {
			return &OutOfRangeError{What: "row", Value: h.Ix, Min: 1, Max: 9}
		}
	case Column:
		if h.Ix < 1 || h.Ix > 9 {
			return &OutOfRangeError{What: "column", Value: h.Ix, Min: 1, Max: 9}
		}
	case Square:
		if h.Ix < 1 || h.Ix > 3 {
			return &OutOfRangeError{What: "box row", Value: h.Ix, Min: 1, Max: 3}
		}
		if h.Jx < 1 || h.Jx > 3 {
			return &OutOfRangeError{What: "box column", Value: h.Jx, Min: 1, Max: 3}
		}
	default:
		return fmt.Errorf("unknown house kind %d", h.Kind)
	}
	return nil
}

// Cells returns the house's 9 cells in canonical order: ascending column for
// a row, ascending row for a column, and row-major within the box for a
// square. A fresh array is returned on every call.
func (h House) Cells() [9]Cell {
	var cells [9]Cell
	switch h.Kind {
	case Row:
		for j := 1; j <= 9; j++ {
			cells[j-1] = Cell{Row: h.Ix, Col: j}
		}
	case Column:
		for i := 1; i <= 9; i++ {
			cells[i-1] = Cell{Row: i, Col: h.Ix}
		}
	case Square:
		top, left := 3*h.Ix-2, 3*h.Jx-2
		for k1 := 0; k1 < 3; k1++ {
			for k2 := 0; k2 < 3; k2++ {
				cells[3*k1+k2] = Cell{Row: top + k1, Col: left + k2}
			}
		}
	}
	return cells
}

// Contains reports whether the house covers the cell.
func (h House) Contains(c Cell) bool {
	for _, hc := range h.Cells() {
		if hc == c {
			return true
		}
	}
	return false
}

// HouseOf returns the house of the given kind containing the cell.
func HouseOf(c Cell, k HouseKind) (House, error) {
	if err := c.Validate(); err != nil {
		return House{}, err
	}
	switch k {
	case Row:
		return RowHouse(c.Row), nil
	case Column:
		return ColumnHouse(c.Col), nil
	case Square:
		return SquareHouse((c.Row-1)/3+1, (c.Col-1)/3+1), nil
	}
	return House{}, fmt.Errorf("unknown house kind %d", k)
}

// AllHouses enumerates the 27 houses: 9 rows, 9 columns, 9 squares.
func AllHouses() [27]House {
	var out [27]House
	for i := 1; i <= 9; i++ {
		out[i-1] = RowHouse(i)
		out[8+i] = ColumnHouse(i)
	}
	n := 18
	for bi := 1; bi <= 3; bi++ {
		for bj := 1; bj <= 3; bj++ {
			out[n] = SquareHouse(bi, bj)
			n++
		}
	}
	return out
}

// Conflicts returns the cells whose entry duplicates an earlier entry in any
// house. A clean board returns nil.
func Conflicts(b *Board) []Cell {
	var conf []Cell
	for _, h := range AllHouses() {
		seen := 0
		for _, c := range h.Cells() {
			v := b.entries[c.Row-1][c.Col-1]
			if v == Unknown {
				continue
			}
			bit := 1 << v
			if seen&bit != 0 {
				conf = append(conf, c)
			}
			seen |= bit
		}
	}
	return conf
}
