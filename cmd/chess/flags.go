// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Game options
	startFEN = flag.String("fen", "", "Start the interactive game from this FEN position")
	noBoard  = flag.Bool("noboard", false, "Don't print the board after each move")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("J", false, "Output in JSON format")

	// Batch mode
	statusFile = flag.String("status", "", "Evaluate the FEN positions in this file (one per line) and exit")
	workers    = flag.Int("workers", 1, "Number of worker goroutines for -status")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress duplicate positions in -status mode")
	exactDuplicates    = flag.Bool("exact", false, "Duplicates must also match the move clocks")
	duplicateFile      = flag.String("d", "", "Output duplicate positions to this file")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum remembered positions (0 = unlimited)")

	// Status filters
	checkmateFilter = flag.Bool("checkmate", false, "Only output checkmated positions")
	stalemateFilter = flag.Bool("stalemate", false, "Only output stalemated positions")
	drawFilter      = flag.Bool("draw", false, "Only output drawn positions")
	checkFilter     = flag.Bool("check", false, "Only output positions with the side to move in check")
	ongoingFilter   = flag.Bool("ongoing", false, "Only output positions where play continues")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	verbosity = flag.Int("v", 1, "Verbosity: 0 silent, 1 results, 2 running commentary")

	// Other options
	quiet   = flag.Bool("q", false, "Silent mode (no statistics)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyGameFlags(cfg)
	applyOutputFlags(cfg)
	applyBatchFlags(cfg)
	applyDuplicateFlags(cfg)
	applyFilterFlags(cfg)
}

func applyGameFlags(cfg *config.Config) {
	cfg.StartFEN = *startFEN
	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
}

func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.ShowBoard = !*noBoard
}

func applyBatchFlags(cfg *config.Config) {
	cfg.StatusFile = *statusFile
	cfg.Workers = *workers
}

func applyDuplicateFlags(cfg *config.Config) {
	cfg.Duplicate.Suppress = *suppressDuplicates || *duplicateFile != ""
	cfg.Duplicate.ExactMatch = *exactDuplicates
	cfg.Duplicate.Capacity = *duplicateCapacity
}

func applyFilterFlags(cfg *config.Config) {
	cfg.Filter.MatchCheckmate = *checkmateFilter
	cfg.Filter.MatchStalemate = *stalemateFilter
	cfg.Filter.MatchDraw = *drawFilter
	cfg.Filter.MatchCheck = *checkFilter
	cfg.Filter.MatchOngoing = *ongoingFilter
}
