package config

// DuplicateConfig holds settings for repeated positions in the input.
type DuplicateConfig struct {
	// Suppress drops positions that repeat an earlier one
	Suppress bool
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{}
}
