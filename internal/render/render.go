// Package render formats boards as fixed-width ASCII grids. Display only;
// nothing here carries solving-relevant invariants.
package render

import (
	"strings"

	"github.com/madrury/sudoku-solver/internal/domain"
)

const separator = "-------------"

// Board renders the clue view of a board: each row is 13 characters wide
// with '|' before columns 1, 4, 7 and after column 9, a 13-dash separator
// before rows 1, 4, 7 and after row 9, and each cell printed as its digit
// where the clue mask is set, a space otherwise.
func Board(b *domain.Board) string {
	return grid(func(i, j int) byte {
		clue, _ := b.IsClue(i, j)
		if !clue {
			return ' '
		}
		v, _ := b.Get(i, j)
		return '0' + v
	})
}

// Marks renders the cells still holding digit as a candidate, one '*' per
// marked cell in the same frame as Board.
func Marks(m *domain.MarkedBoard, digit uint8) string {
	return grid(func(i, j int) byte {
		s, _ := m.Marks(domain.Cell{Row: i, Col: j})
		if s.Has(digit) {
			return '*'
		}
		return ' '
	})
}

func grid(cell func(i, j int) byte) string {
	var sb strings.Builder
	for i := 1; i <= 9; i++ {
		if i%3 == 1 {
			sb.WriteString(separator)
			sb.WriteByte('\n')
		}
		for j := 1; j <= 9; j++ {
			if j%3 == 1 {
				sb.WriteByte('|')
			}
			sb.WriteByte(cell(i, j))
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(separator)
	sb.WriteByte('\n')
	return sb.String()
}
