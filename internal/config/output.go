package config

// OutputConfig controls how positions are presented.
type OutputConfig struct {
	JSONFormat bool // JSON snapshots and rows instead of text
	ShowBoard  bool // redraw the board after each accepted move
}

// NewOutputConfig returns the interactive defaults: text, board shown.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{ShowBoard: true}
}
