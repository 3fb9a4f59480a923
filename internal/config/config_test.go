package config

import (
	"bytes"
	"os"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// TestNewConfig_Defaults verifies Config has sensible defaults
func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d, want 1", cfg.Verbosity)
	}
	if cfg.Workers != 1 {
		t.Errorf("Workers = %d, want 1", cfg.Workers)
	}
	if cfg.StartFEN != "" {
		t.Errorf("StartFEN = %q, want empty", cfg.StartFEN)
	}
	if cfg.BatchMode() {
		t.Error("BatchMode should be false by default")
	}
	if cfg.OutputFile != os.Stdout {
		t.Error("OutputFile should default to stdout")
	}
	if cfg.LogFile != os.Stderr {
		t.Error("LogFile should default to stderr")
	}
	if cfg.Output.JSONFormat {
		t.Error("Output.JSONFormat should be false by default")
	}
	if !cfg.Output.ShowBoard {
		t.Error("Output.ShowBoard should be true by default")
	}
	if cfg.Duplicate.Suppress {
		t.Error("Duplicate.Suppress should be false by default")
	}
	if cfg.Duplicate.Capacity != 0 {
		t.Errorf("Duplicate.Capacity = %d, want 0", cfg.Duplicate.Capacity)
	}
	if cfg.Filter.Active() {
		t.Error("no filter should be active by default")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"start position", func(c *Config) { c.StartFEN = "4k3/8/8/8/8/8/8/4K3 w - - 0 1" }, false},
		{"many workers", func(c *Config) { c.Workers = 8 }, false},
		{"zero workers", func(c *Config) { c.Workers = 0 }, true},
		{"verbosity too high", func(c *Config) { c.Verbosity = 3 }, true},
		{"negative verbosity", func(c *Config) { c.Verbosity = -1 }, true},
		{"bad start position", func(c *Config) { c.StartFEN = "not a fen" }, true},
		{"negative capacity", func(c *Config) { c.Duplicate.Capacity = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfig_Validate_KeepsFENCause(t *testing.T) {
	cfg := NewConfig()
	cfg.StartFEN = "8/8/8/8/8/8/8/8 w - - 0 1"

	err := cfg.Validate()
	if !errors.Is(err, errors.ErrInvalidFEN) {
		t.Errorf("Validate() error = %v, want it to wrap ErrInvalidFEN", err)
	}
}

func TestFilterConfig_Matches(t *testing.T) {
	tests := []struct {
		name    string
		filter  FilterConfig
		status  chess.GameStatus
		inCheck bool
		want    bool
	}{
		{"inactive passes all", FilterConfig{}, chess.Ongoing, false, true},
		{"checkmate white", FilterConfig{MatchCheckmate: true}, chess.WhiteWon, true, true},
		{"checkmate black", FilterConfig{MatchCheckmate: true}, chess.BlackWon, true, true},
		{"checkmate rejects stalemate", FilterConfig{MatchCheckmate: true}, chess.Stalemate, false, false},
		{"stalemate", FilterConfig{MatchStalemate: true}, chess.Stalemate, false, true},
		{"draw includes stalemate", FilterConfig{MatchDraw: true}, chess.Stalemate, false, true},
		{"draw includes repetition", FilterConfig{MatchDraw: true}, chess.ThreefoldRepetition, false, true},
		{"draw rejects a win", FilterConfig{MatchDraw: true}, chess.WhiteWon, true, false},
		{"check", FilterConfig{MatchCheck: true}, chess.Ongoing, true, true},
		{"check rejects quiet", FilterConfig{MatchCheck: true}, chess.Ongoing, false, false},
		{"ongoing", FilterConfig{MatchOngoing: true}, chess.Ongoing, false, true},
		{"any of several", FilterConfig{MatchStalemate: true, MatchCheck: true}, chess.BlackWon, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Matches(tt.status, tt.inCheck); got != tt.want {
				t.Errorf("Matches(%v, %v) = %v, want %v", tt.status, tt.inCheck, got, tt.want)
			}
		})
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	out := &bytes.Buffer{}
	log := &bytes.Buffer{}

	cfg.SetOutput(out)
	cfg.SetLog(log)

	if cfg.OutputFile != out {
		t.Error("SetOutput did not set OutputFile")
	}
	if cfg.LogFile != log {
		t.Error("SetLog did not set LogFile")
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	out := &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithStatusFile("positions.txt").
		WithWorkers(4).
		WithJSONOutput(true).
		WithBoard(false).
		WithDuplicateSuppression(true).
		WithExactMatch(true).
		WithDuplicateCapacity(100).
		WithCheckmateFilter(true).
		WithOutput(out).
		WithVerbosity(2).
		Build()

	if !cfg.BatchMode() {
		t.Error("BatchMode should be true")
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Workers)
	}
	if !cfg.Output.JSONFormat {
		t.Error("Output.JSONFormat should be true")
	}
	if cfg.Output.ShowBoard {
		t.Error("Output.ShowBoard should be false")
	}
	if !cfg.Duplicate.Suppress || !cfg.Duplicate.ExactMatch {
		t.Error("duplicate suppression with exact match should be enabled")
	}
	if cfg.Duplicate.Capacity != 100 {
		t.Errorf("Duplicate.Capacity = %d, want 100", cfg.Duplicate.Capacity)
	}
	if !cfg.Filter.MatchCheckmate {
		t.Error("Filter.MatchCheckmate should be true")
	}
	if cfg.OutputFile != out {
		t.Error("WithOutput did not set OutputFile")
	}
	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d, want 2", cfg.Verbosity)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}
