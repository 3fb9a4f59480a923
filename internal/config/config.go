// Package config provides configuration for the chess command.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=results, 2=running commentary

	// Position to start the interactive game from; empty means the standard
	// starting position.
	StartFEN string

	// Batch mode: file with one FEN per line. Empty means interactive play.
	StatusFile string
	Workers    int

	Output    *OutputConfig
	Duplicate *DuplicateConfig
	Filter    *FilterConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Workers:    1,
		Output:     NewOutputConfig(),
		Duplicate:  NewDuplicateConfig(),
		Filter:     NewFilterConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the stream results are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the stream commentary is written to.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// BatchMode reports whether positions are read from a file rather than
// played interactively.
func (c *Config) BatchMode() bool {
	return c.StatusFile != ""
}

// Validate checks the configuration for values the program cannot run with.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity %d out of range 0-2: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.StartFEN != "" {
		if _, err := engine.NewBoardFromFEN(c.StartFEN); err != nil {
			return fmt.Errorf("start position: %w: %w", errors.ErrInvalidConfig, err)
		}
	}
	if c.Duplicate != nil {
		if err := c.Duplicate.Validate(); err != nil {
			return err
		}
	}
	return nil
}
