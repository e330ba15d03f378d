package config

import (
	"fmt"

	"github.com/lgbarn/fenmove-go/internal/errors"
)

// MaxPerftDepth bounds PerftDepth. Pseudo-legal trees grow faster than
// legal ones, and depth 8 from the start is already billions of nodes.
const MaxPerftDepth = 10

// AnalysisConfig holds settings for what is computed per position.
type AnalysisConfig struct {
	// PerftDepth enables a node count to this depth when positive.
	PerftDepth int

	// Divide reports the node count below each root move.
	Divide bool

	// Threads is the number of goroutines a single perft may use.
	Threads int
}

// NewAnalysisConfig creates an AnalysisConfig with default values.
func NewAnalysisConfig() *AnalysisConfig {
	return &AnalysisConfig{Threads: 1}
}

// Perft reports whether a node count was requested.
func (a *AnalysisConfig) Perft() bool {
	return a.PerftDepth > 0
}

// Validate checks that the analysis configuration is valid.
func (a *AnalysisConfig) Validate() error {
	if a.PerftDepth < 0 || a.PerftDepth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d outside 0..%d: %w", a.PerftDepth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if a.Threads < 1 {
		return fmt.Errorf("threads must be at least 1, got %d: %w", a.Threads, errors.ErrInvalidConfig)
	}
	if a.Divide && a.PerftDepth == 0 {
		return fmt.Errorf("divide needs a perft depth: %w", errors.ErrInvalidConfig)
	}
	return nil
}
