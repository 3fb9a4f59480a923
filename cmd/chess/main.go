// chess plays a game of chess on the terminal, or reports the status of a
// file of FEN positions with -status.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/lgbarn/chessrules-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	switch {
	case *help:
		usage()
		return
	case *version:
		fmt.Printf("chessrules-go version %s\n", programVersion)
		return
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	openFiles(cfg)

	if err := cfg.Validate(); err != nil {
		fatalf(2, "Error: %v\n", err)
	}

	if !cfg.BatchMode() {
		if err := runInteractive(os.Stdin, cfg); err != nil {
			fatalf(1, "Error reading input: %v\n", err)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	in, err := os.Open(cfg.StatusFile) //nolint:gosec // G304: path comes from the command line
	if err != nil {
		fatalf(1, "Error opening file %s: %v\n", cfg.StatusFile, err)
	}
	defer in.Close() //nolint:errcheck // read-only

	stats, err := runBatch(ctx, in, cfg)
	if err != nil {
		fatalf(1, "Error: %v\n", err)
	}
	if cfg.Verbosity > 0 {
		reportStatistics(cfg.LogFile, stats, cfg.Duplicate.Suppress)
	}
}

// openFiles creates the files named by -l, -o and -d and points cfg at them.
func openFiles(cfg *config.Config) {
	if f := create(*logFile, "log"); f != nil {
		cfg.SetLog(f)
	}
	if f := create(*outputFile, "output"); f != nil {
		cfg.SetOutput(f)
	}
	if f := create(*duplicateFile, "duplicate"); f != nil {
		cfg.Duplicate.DuplicateFile = f
	}
}

// create returns nil for an empty path and exits if the file cannot be made.
func create(path, what string) *os.File {
	if path == "" {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		fatalf(1, "Error creating %s file %s: %v\n", what, path, err)
	}
	return f
}

func fatalf(code int, format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(code)
}

func usage() {
	w := flag.CommandLine.Output()
	fmt.Fprintf(w, "Usage: chess [options]\n\n")
	fmt.Fprintf(w, "Play chess on the terminal, or evaluate a file of FEN positions.\n\n")
	fmt.Fprintf(w, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(w, "\nIn-game commands:\n")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-12s %s\n", c.key, c.description)
	}
	fmt.Fprintf(w, "\nMoves are entered as two squares, e.g. \"e2 e4\" or \"e2e4\".\n")
}
