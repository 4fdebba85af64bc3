package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/madrury/sudoku-solver/internal/domain"
	"github.com/madrury/sudoku-solver/internal/ports"
)

type stubFetcher struct {
	puzzle *ports.SourcePuzzle
	err    error
	level  int
}

func (s *stubFetcher) Fetch(ctx context.Context, level int) (*ports.SourcePuzzle, error) {
	s.level = level
	return s.puzzle, s.err
}

func TestMarkupUsesEmptyInitialSets(t *testing.T) {
	digits := "123456780" + strings.Repeat("0", 72)
	mask := "111111110" + strings.Repeat("0", 72)
	svc := &Service{}
	b, err := svc.Parse(digits, mask)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	m := svc.Markup(b)
	// Solved cells come out with empty candidate sets.
	if s, _ := m.Marks(domain.Cell{Row: 1, Col: 1}); s != domain.NoCandidates {
		t.Errorf("solved cell candidates = %v, want none", s)
	}
	if s, _ := m.Marks(domain.Cell{Row: 1, Col: 9}); s != domain.CandidatesOf(9) {
		t.Errorf("open cell candidates = %v, want {9}", s)
	}
}

func TestRenderMarksValidatesDigit(t *testing.T) {
	svc := &Service{}
	m := domain.NewMarkedBoard(domain.AllCandidates)
	for _, d := range []uint8{0, 10} {
		var rng *domain.OutOfRangeError
		if _, err := svc.RenderMarks(m, d); !errors.As(err, &rng) {
			t.Errorf("RenderMarks(%d) = %v, want OutOfRangeError", d, err)
		}
	}
	out, err := svc.RenderMarks(m, 5)
	if err != nil {
		t.Fatalf("RenderMarks failed: %v", err)
	}
	if !strings.Contains(out, "|***|***|***|") {
		t.Errorf("all cells hold 5, got:\n%s", out)
	}
}

func TestFetchDelegates(t *testing.T) {
	f := &stubFetcher{puzzle: &ports.SourcePuzzle{ID: "7"}}
	svc := NewService(f)
	p, err := svc.Fetch(context.Background(), 3)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if p.ID != "7" || f.level != 3 {
		t.Errorf("Fetch delegated badly: puzzle %+v, level %d", p, f.level)
	}
}

func TestFetchWithoutFetcher(t *testing.T) {
	if _, err := (&Service{}).Fetch(context.Background(), 1); err == nil {
		t.Fatal("Fetch without a fetcher succeeded, want error")
	}
}
