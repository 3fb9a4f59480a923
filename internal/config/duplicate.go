package config

import (
	"fmt"
	"io"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// DuplicateConfig holds settings for duplicate position detection in batch
// mode.
type DuplicateConfig struct {
	// Suppress enables duplicate suppression
	Suppress bool

	// ExactMatch also compares the halfmove clock and fullmove number
	ExactMatch bool

	// Capacity caps the number of remembered positions; 0 means unlimited
	Capacity int

	// DuplicateFile receives the suppressed lines, if set
	DuplicateFile io.Writer
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{}
}

// Validate checks that the duplicate configuration is valid.
func (d *DuplicateConfig) Validate() error {
	if d.Capacity < 0 {
		return fmt.Errorf("duplicate capacity %d is negative: %w", d.Capacity, errors.ErrInvalidConfig)
	}
	return nil
}
