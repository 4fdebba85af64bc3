package usecase

import (
	"context"
	"errors"

	"github.com/madrury/sudoku-solver/internal/domain"
	"github.com/madrury/sudoku-solver/internal/ports"
	"github.com/madrury/sudoku-solver/internal/render"
)

// Service is the facade the CLI and HTTP adapter drive: parsing boards from
// wire form, deriving candidate markings, rendering, and fetching puzzles
// from a configured source.
type Service struct {
	Fetcher ports.Fetcher
}

func NewService(f ports.Fetcher) *Service { return &Service{Fetcher: f} }

var errNotConfigured = errors.New("usecase dependency not configured")

// Parse builds a board from 81-character digit and clue-mask strings.
func (u *Service) Parse(digits, mask string) (*domain.Board, error) {
	return domain.ParseBoard(digits, mask)
}

// Markup derives the full candidate grid for a board's unsolved cells.
func (u *Service) Markup(b *domain.Board) *domain.MarkedBoard {
	m := domain.NewMarkedBoard(domain.NoCandidates)
	m.Markup(b)
	return m
}

// Render returns the ASCII clue view of a board.
func (u *Service) Render(b *domain.Board) string {
	return render.Board(b)
}

// RenderMarks returns the star grid of cells still holding digit.
func (u *Service) RenderMarks(m *domain.MarkedBoard, digit uint8) (string, error) {
	if digit < 1 || digit > 9 {
		return "", &domain.OutOfRangeError{What: "digit", Value: int(digit), Min: 1, Max: 9}
	}
	return render.Marks(m, digit), nil
}

// Fetch retrieves one puzzle from the configured source.
func (u *Service) Fetch(ctx context.Context, level int) (*ports.SourcePuzzle, error) {
	if u.Fetcher == nil {
		return nil, errNotConfigured
	}
	return u.Fetcher.Fetch(ctx, level)
}
