package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithStartFEN sets the interactive starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithStatusFile switches to batch mode over the given file.
func (b *ConfigBuilder) WithStatusFile(path string) *ConfigBuilder {
	b.cfg.StatusFile = path
	return b
}

// WithWorkers sets the number of batch workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithBoard controls whether the board is printed after each move.
func (b *ConfigBuilder) WithBoard(show bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = show
	return b
}

// WithDuplicateSuppression enables duplicate suppression.
func (b *ConfigBuilder) WithDuplicateSuppression(enabled bool) *ConfigBuilder {
	b.cfg.Duplicate.Suppress = enabled
	return b
}

// WithExactMatch makes duplicate detection compare the clocks too.
func (b *ConfigBuilder) WithExactMatch(enabled bool) *ConfigBuilder {
	b.cfg.Duplicate.ExactMatch = enabled
	return b
}

// WithDuplicateCapacity caps the remembered positions.
func (b *ConfigBuilder) WithDuplicateCapacity(n int) *ConfigBuilder {
	b.cfg.Duplicate.Capacity = n
	return b
}

// WithCheckmateFilter enables checkmate-only filtering.
func (b *ConfigBuilder) WithCheckmateFilter(enabled bool) *ConfigBuilder {
	b.cfg.Filter.MatchCheckmate = enabled
	return b
}

// WithStalemateFilter enables stalemate filtering.
func (b *ConfigBuilder) WithStalemateFilter(enabled bool) *ConfigBuilder {
	b.cfg.Filter.MatchStalemate = enabled
	return b
}

// WithDrawFilter enables filtering on drawn outcomes.
func (b *ConfigBuilder) WithDrawFilter(enabled bool) *ConfigBuilder {
	b.cfg.Filter.MatchDraw = enabled
	return b
}

// WithCheckFilter enables filtering on positions with the side to move in
// check.
func (b *ConfigBuilder) WithCheckFilter(enabled bool) *ConfigBuilder {
	b.cfg.Filter.MatchCheck = enabled
	return b
}

// WithOngoingFilter enables filtering on unfinished positions.
func (b *ConfigBuilder) WithOngoingFilter(enabled bool) *ConfigBuilder {
	b.cfg.Filter.MatchOngoing = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
