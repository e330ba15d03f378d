package config

// AnnotationConfig holds settings for extra per-position annotations.
type AnnotationConfig struct {
	AddHash  bool // Zobrist hash of the position
	AddCount bool // piece counts per side
}

// NewAnnotationConfig creates an AnnotationConfig with default values.
// All boolean fields default to false (Go zero value).
func NewAnnotationConfig() *AnnotationConfig {
	return &AnnotationConfig{}
}
