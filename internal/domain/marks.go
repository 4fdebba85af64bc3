package domain

import (
	"math/bits"
	"strings"
)

// Candidates is a set of digits 1..9 not yet ruled out for a cell, stored as
// a bitset with bit d set for digit d.
type Candidates uint16

const (
	// NoCandidates is the empty set.
	NoCandidates Candidates = 0
	// AllCandidates holds every digit 1..9.
	AllCandidates Candidates = 0x3fe
)

// CandidatesOf builds a set from the given digits. Digits outside 1..9 are
// ignored.
func CandidatesOf(digits ...uint8) Candidates {
	var s Candidates
	for _, d := range digits {
		s = s.Add(d)
	}
	return s
}

func (s Candidates) Has(d uint8) bool {
	return d >= 1 && d <= 9 && s&(1<<d) != 0
}

func (s Candidates) Add(d uint8) Candidates {
	if d < 1 || d > 9 {
		return s
	}
	return s | 1<<d
}

func (s Candidates) Remove(d uint8) Candidates {
	if d < 1 || d > 9 {
		return s
	}
	return s &^ (1 << d)
}

func (s Candidates) Count() int {
	return bits.OnesCount16(uint16(s & AllCandidates))
}

// Sole returns the single remaining digit if exactly one candidate is left.
func (s Candidates) Sole() (uint8, bool) {
	if s.Count() != 1 {
		return 0, false
	}
	return uint8(bits.TrailingZeros16(uint16(s & AllCandidates))), true
}

// Digits lists the candidates in ascending order.
func (s Candidates) Digits() []uint8 {
	out := make([]uint8, 0, s.Count())
	for d := uint8(1); d <= 9; d++ {
		if s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

func (s Candidates) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for n, d := range s.Digits() {
		if n > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte('0' + d)
	}
	b.WriteByte('}')
	return b.String()
}

// Move records a digit placement discovered while narrowing candidates.
type Move struct {
	Cell  Cell  `json:"cell"`
	Digit uint8 `json:"digit"`
}

// MarkedBoard tracks the candidate set of every cell plus an append-only log
// of moves discovered as candidates are removed. One MarkedBoard accompanies
// each Board under analysis; neither references the other.
type MarkedBoard struct {
	marks [9][9]Candidates
	found []Move
}

// NewMarkedBoard constructs a marked board with every cell's candidate set
// equal to initial. The initialization policy is the caller's: NoCandidates
// for boards to be filled by Markup, AllCandidates for untouched puzzles.
func NewMarkedBoard(initial Candidates) *MarkedBoard {
	m := &MarkedBoard{}
	for i := range m.marks {
		for j := range m.marks[i] {
			m.marks[i][j] = initial
		}
	}
	return m
}

// NewMarkedBoardFromGrid constructs a marked board from a 9x9 candidate grid.
func NewMarkedBoardFromGrid(grid [][]Candidates) (*MarkedBoard, error) {
	if len(grid) != 9 {
		return nil, &ShapeError{What: "mark rows", Want: 9, Got: len(grid)}
	}
	m := &MarkedBoard{}
	for i, row := range grid {
		if len(row) != 9 {
			return nil, &ShapeError{What: "mark columns", Want: 9, Got: len(row)}
		}
		copy(m.marks[i][:], row)
	}
	return m, nil
}

// Marks returns the candidate set at c.
func (m *MarkedBoard) Marks(c Cell) (Candidates, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}
	return m.marks[c.Row-1][c.Col-1], nil
}

// SetMarks replaces the candidate set at c.
func (m *MarkedBoard) SetMarks(c Cell, s Candidates) error {
	if err := c.Validate(); err != nil {
		return err
	}
	m.marks[c.Row-1][c.Col-1] = s
	return nil
}

// Mark removes digit d from the candidates at c. Removing a digit that is
// not present is a no-op and logs nothing. When a removal leaves exactly one
// candidate, the cell and its remaining digit are appended to the found-move
// log; when it leaves none, the removal stands and a ContradictionError is
// returned.
func (m *MarkedBoard) Mark(c Cell, d uint8) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if d < 1 || d > 9 {
		return &OutOfRangeError{What: "digit", Value: int(d), Min: 1, Max: 9}
	}
	s, _ := m.Marks(c)
	if !s.Has(d) {
		return nil
	}
	s = s.Remove(d)
	m.marks[c.Row-1][c.Col-1] = s
	switch s.Count() {
	case 0:
		return &ContradictionError{Cell: c, Digit: d}
	case 1:
		last, _ := s.Sole()
		m.found = append(m.found, Move{Cell: c, Digit: last})
	}
	return nil
}

// FoundMoves returns the discovered moves in discovery order. The slice is a
// copy; the log itself is append-only.
func (m *MarkedBoard) FoundMoves() []Move {
	out := make([]Move, len(m.found))
	copy(out, m.found)
	return out
}

// House returns the 9 candidate sets of a house in its canonical cell order.
func (m *MarkedBoard) House(h House) [9]Candidates {
	var out [9]Candidates
	for n, c := range h.Cells() {
		out[n] = m.marks[c.Row-1][c.Col-1]
	}
	return out
}

// Markup derives the candidate grid from a board's current entries: every
// unsolved cell gets all digits absent from its row, column and square.
// Cells with a known entry are left untouched. The derivation is idempotent.
func (m *MarkedBoard) Markup(b *Board) {
	for i := 1; i <= 9; i++ {
		for j := 1; j <= 9; j++ {
			if b.entries[i-1][j-1] != Unknown {
				continue
			}
			s := AllCandidates
			c := Cell{Row: i, Col: j}
			for _, k := range []HouseKind{Row, Column, Square} {
				h, _ := HouseOf(c, k)
				for _, v := range b.House(h) {
					if v != Unknown {
						s = s.Remove(v)
					}
				}
			}
			m.marks[i-1][j-1] = s
		}
	}
}

// Clone returns an independent copy. Parallel search branches must not share
// a MarkedBoard; clone per branch instead.
func (m *MarkedBoard) Clone() *MarkedBoard {
	dup := &MarkedBoard{marks: m.marks}
	dup.found = make([]Move, len(m.found))
	copy(dup.found, m.found)
	return dup
}
