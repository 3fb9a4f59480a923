package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// batchStats summarises a batch run.
type batchStats struct {
	Total      int
	Output     int
	Duplicates int
	Errors     int
}

// readPositions reads one FEN per line. Blank lines and lines starting
// with '#' are skipped. Indexes count positions from 1.
func readPositions(r io.Reader) ([]worker.WorkItem, error) {
	var items []worker.WorkItem
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		items = append(items, worker.WorkItem{FEN: line, Index: len(items) + 1})
	}
	return items, scanner.Err()
}

// newResultWriter picks the writer for the configured output format.
func newResultWriter(cfg *config.Config, w io.Writer) output.ResultWriter {
	if cfg.Output.JSONFormat {
		return output.NewJSONWriter(w)
	}
	return output.NewTextWriter(w)
}

// runBatch evaluates every position in r and writes the ones that pass the
// filter, in input order. Workers register each position under its input
// index; once all are done the lowest index of a position is the one kept,
// whatever the number of workers.
func runBatch(ctx context.Context, r io.Reader, cfg *config.Config) (batchStats, error) {
	var stats batchStats

	items, err := readPositions(r)
	if err != nil {
		return stats, fmt.Errorf("reading positions: %w", err)
	}
	stats.Total = len(items)

	eval := worker.Evaluate(nil)
	var detector *hashing.SharedDetector
	if cfg.Duplicate.Suppress {
		detector = hashing.NewSharedDetector(cfg.Duplicate.ExactMatch, cfg.Duplicate.Capacity)
		eval = worker.Evaluate(detector)
	}

	pool := worker.NewPoolWithOptions(eval, worker.WithWorkers(cfg.Workers))
	results := worker.Run(ctx, pool, items)
	if detector != nil {
		stats.Duplicates = worker.MarkDuplicates(results, detector)
	}

	out := newResultWriter(cfg, cfg.OutputFile)
	var dups output.ResultWriter
	if cfg.Duplicate.DuplicateFile != nil {
		dups = newResultWriter(cfg, cfg.Duplicate.DuplicateFile)
	}

	for _, res := range results {
		if res.Error != nil {
			stats.Errors++
			if cfg.Verbosity > 1 {
				fmt.Fprintf(cfg.LogFile, "position %d: %v\n", res.Index, res.Error)
			}
			if err := out.WritePosition(errorJSON(res)); err != nil {
				return stats, err
			}
			continue
		}

		pj := output.PositionToJSON(res.Board)
		pj.Index = res.Index

		if res.Duplicate {
			if dups != nil {
				if err := dups.WritePosition(pj); err != nil {
					return stats, err
				}
			}
			continue
		}

		if !cfg.Filter.Matches(res.Board.Metadata().Status, pj.InCheck) {
			continue
		}
		if err := out.WritePosition(pj); err != nil {
			return stats, err
		}
		stats.Output++
	}

	if dups != nil {
		if err := dups.Close(); err != nil {
			return stats, err
		}
	}
	if err := out.Close(); err != nil {
		return stats, err
	}
	return stats, ctx.Err()
}

func errorJSON(res worker.ProcessResult) *output.PositionJSON {
	return &output.PositionJSON{
		Index:      res.Index,
		FEN:        res.FEN,
		Status:     "Error",
		LegalMoves: []string{},
		Error:      res.Error.Error(),
	}
}

// reportStatistics prints the final statistics to the log.
func reportStatistics(w io.Writer, stats batchStats, suppressing bool) {
	if suppressing {
		fmt.Fprintf(w, "%d position(s) output, %d duplicate(s), %d error(s) out of %d.\n",
			stats.Output, stats.Duplicates, stats.Errors, stats.Total)
		return
	}
	fmt.Fprintf(w, "%d position(s) output, %d error(s) out of %d.\n",
		stats.Output, stats.Errors, stats.Total)
}
