package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	httpadapter "github.com/madrury/sudoku-solver/internal/adapters/http"
	"github.com/madrury/sudoku-solver/internal/config"
	"github.com/madrury/sudoku-solver/internal/domain"
	"github.com/madrury/sudoku-solver/internal/ports"
	"github.com/madrury/sudoku-solver/internal/usecase"
	"github.com/madrury/sudoku-solver/internal/websudoku"
)

func newService(cfg config.Config) *usecase.Service {
	return usecase.NewService(websudoku.NewClient(cfg.SourceURL, cfg.UserAgent))
}

func newServeCmd(cfg config.Config, logger zerolog.Logger) *cobra.Command {
	addr := cfg.Addr
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the board analysis JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			gin.SetMode(gin.ReleaseMode)
			e := gin.New()
			e.Use(httpadapter.RequestLogger(logger), gin.Recovery())
			httpadapter.New(newService(cfg), logger).Register(e)

			srv := &http.Server{
				Addr:              addr,
				Handler:           e,
				ReadHeaderTimeout: 5 * time.Second,
			}
			logger.Info().Str("addr", addr).Str("source", cfg.SourceURL).Msg("listening")
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", addr, "listen address")
	return cmd
}

func newRenderCmd() *cobra.Command {
	var digits, mask string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the clue view of a board",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := domain.ParseBoard(digits, mask)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), (&usecase.Service{}).Render(b))
			return err
		},
	}
	cmd.Flags().StringVar(&digits, "puzzle", "", "81 digit characters, row-major ('0' = unknown)")
	cmd.Flags().StringVar(&mask, "mask", "", "81 clue flags, row-major ('1' = clue)")
	_ = cmd.MarkFlagRequired("puzzle")
	_ = cmd.MarkFlagRequired("mask")
	return cmd
}

func newMarkupCmd() *cobra.Command {
	var digits, mask string
	var digit uint8
	cmd := &cobra.Command{
		Use:   "markup",
		Short: "Derive candidate markings for a board",
		Long: "Derives the candidate grid for every unsolved cell. With --digit the\n" +
			"cells still holding that candidate are printed as a star grid; without\n" +
			"it the full grid and any discovered moves are printed as JSON.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := &usecase.Service{}
			b, err := domain.ParseBoard(digits, mask)
			if err != nil {
				return err
			}
			m := svc.Markup(b)
			if digit != 0 {
				out, err := svc.RenderMarks(m, digit)
				if err != nil {
					return err
				}
				_, err = fmt.Fprint(cmd.OutOrStdout(), out)
				return err
			}
			marks := make([][][]uint8, 9)
			for i := 1; i <= 9; i++ {
				marks[i-1] = make([][]uint8, 9)
				for j := 1; j <= 9; j++ {
					s, _ := m.Marks(domain.Cell{Row: i, Col: j})
					marks[i-1][j-1] = s.Digits()
				}
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{
				"marks": marks,
				"moves": m.FoundMoves(),
			})
		},
	}
	cmd.Flags().StringVar(&digits, "puzzle", "", "81 digit characters, row-major ('0' = unknown)")
	cmd.Flags().StringVar(&mask, "mask", "", "81 clue flags, row-major ('1' = clue)")
	cmd.Flags().Uint8Var(&digit, "digit", 0, "print the star grid for one digit instead of JSON")
	_ = cmd.MarkFlagRequired("puzzle")
	_ = cmd.MarkFlagRequired("mask")
	return cmd
}

// newFetchCmd scrapes n puzzles at a difficulty level and writes them to
// stdout as JSON, pausing between requests to stay polite to the source.
func newFetchCmd(cfg config.Config, logger zerolog.Logger) *cobra.Command {
	var level, count int
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch puzzles from the configured source",
		RunE: func(cmd *cobra.Command, args []string) error {
			if level < 1 || level > 4 {
				return fmt.Errorf("level %d out of range 1..4", level)
			}
			svc := newService(cfg)
			puzzles := make([]*ports.SourcePuzzle, 0, count)
			for i := 0; i < count; i++ {
				if i > 0 {
					logger.Debug().Dur("delay", cfg.FetchDelay).Msg("pausing between fetches")
					select {
					case <-time.After(cfg.FetchDelay):
					case <-cmd.Context().Done():
						return cmd.Context().Err()
					}
				}
				p, err := svc.Fetch(cmd.Context(), level)
				if err != nil {
					return err
				}
				logger.Info().Str("id", p.ID).Int("level", p.Level).Msg("fetched puzzle")
				puzzles = append(puzzles, p)
			}
			return json.NewEncoder(cmd.OutOrStdout()).Encode(puzzles)
		},
	}
	cmd.Flags().IntVar(&level, "level", 1, "difficulty level 1..4")
	cmd.Flags().IntVar(&count, "count", 1, "number of puzzles to fetch")
	return cmd
}
