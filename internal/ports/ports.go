package ports

import "context"

// SourcePuzzle is a puzzle as delivered by an external source, still in wire
// form: 81 digit characters and 81 clue-mask characters ('1' = clue), both
// row-major, plus source metadata.
type SourcePuzzle struct {
	Digits string `json:"puzzle"`
	Mask   string `json:"mask"`
	Level  int    `json:"level"`
	ID     string `json:"id"`
}

// Fetcher retrieves puzzles from an external source at a difficulty level
// in 1..4.
type Fetcher interface {
	Fetch(ctx context.Context, level int) (*SourcePuzzle, error)
}
