package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/madrury/sudoku-solver/internal/config"
)

func main() {
	cfg := config.Load()
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(cfg.ZerologLevel()).
		With().Timestamp().Logger()

	root := &cobra.Command{
		Use:           "sudoku",
		Short:         "Sudoku board analysis tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newServeCmd(cfg, logger),
		newRenderCmd(),
		newMarkupCmd(),
		newFetchCmd(cfg, logger),
	)
	if err := root.Execute(); err != nil {
		logger.Fatal().Err(err).Msg("command failed")
	}
}
