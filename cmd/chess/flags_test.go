package main

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/config"
)

// saveRestoreBool sets a bool flag pointer and returns a func restoring it.
// Usage: defer saveRestoreBool(noBoard, true)()
func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyGameFlags(t *testing.T) {
	t.Run("fen and verbosity copied", func(t *testing.T) {
		defer saveRestoreString(startFEN, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")()
		defer saveRestoreInt(verbosity, 2)()
		defer saveRestoreBool(quiet, false)()
		cfg := config.NewConfig()
		applyGameFlags(cfg)
		if cfg.StartFEN != "4k3/8/8/8/8/8/8/4K3 w - - 0 1" {
			t.Errorf("StartFEN = %q", cfg.StartFEN)
		}
		if cfg.Verbosity != 2 {
			t.Errorf("Verbosity = %d; want 2", cfg.Verbosity)
		}
	})

	t.Run("quiet wins over verbosity", func(t *testing.T) {
		defer saveRestoreInt(verbosity, 2)()
		defer saveRestoreBool(quiet, true)()
		cfg := config.NewConfig()
		applyGameFlags(cfg)
		if cfg.Verbosity != 0 {
			t.Errorf("Verbosity = %d; want 0", cfg.Verbosity)
		}
	})
}

func TestApplyOutputFlags(t *testing.T) {
	defer saveRestoreBool(jsonOutput, true)()
	defer saveRestoreBool(noBoard, true)()
	cfg := config.NewConfig()
	applyOutputFlags(cfg)
	if !cfg.Output.JSONFormat {
		t.Error("JSONFormat should be true")
	}
	if cfg.Output.ShowBoard {
		t.Error("ShowBoard should be false with -noboard")
	}
}

func TestApplyBatchFlags(t *testing.T) {
	defer saveRestoreString(statusFile, "positions.txt")()
	defer saveRestoreInt(workers, 4)()
	cfg := config.NewConfig()
	applyBatchFlags(cfg)
	if !cfg.BatchMode() {
		t.Error("BatchMode should be true with -status")
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d; want 4", cfg.Workers)
	}
}

func TestApplyDuplicateFlags(t *testing.T) {
	tests := []struct {
		name         string
		suppress     bool
		dupFile      string
		wantSuppress bool
	}{
		{"off by default", false, "", false},
		{"-D enables", true, "", true},
		{"-d implies suppression", false, "dups.txt", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreBool(suppressDuplicates, tt.suppress)()
			defer saveRestoreString(duplicateFile, tt.dupFile)()
			defer saveRestoreBool(exactDuplicates, true)()
			defer saveRestoreInt(duplicateCapacity, 50)()
			cfg := config.NewConfig()
			applyDuplicateFlags(cfg)
			if cfg.Duplicate.Suppress != tt.wantSuppress {
				t.Errorf("Suppress = %v; want %v", cfg.Duplicate.Suppress, tt.wantSuppress)
			}
			if !cfg.Duplicate.ExactMatch {
				t.Error("ExactMatch should be true")
			}
			if cfg.Duplicate.Capacity != 50 {
				t.Errorf("Capacity = %d; want 50", cfg.Duplicate.Capacity)
			}
		})
	}
}

func TestApplyFilterFlags(t *testing.T) {
	defer saveRestoreBool(checkmateFilter, true)()
	defer saveRestoreBool(drawFilter, true)()
	cfg := config.NewConfig()
	applyFilterFlags(cfg)
	if !cfg.Filter.MatchCheckmate || !cfg.Filter.MatchDraw {
		t.Error("checkmate and draw filters should be set")
	}
	if cfg.Filter.MatchStalemate || cfg.Filter.MatchCheck || cfg.Filter.MatchOngoing {
		t.Error("unset filters should stay false")
	}
}
