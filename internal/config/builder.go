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

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithBoard enables board diagrams in text output.
func (b *ConfigBuilder) WithBoard(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = enabled
	return b
}

// WithNoMoves hides move lists.
func (b *ConfigBuilder) WithNoMoves(enabled bool) *ConfigBuilder {
	b.cfg.Output.NoMoves = enabled
	return b
}

// WithPerft requests a node count to depth, optionally divided by root move.
func (b *ConfigBuilder) WithPerft(depth int, divide bool) *ConfigBuilder {
	b.cfg.Analysis.PerftDepth = depth
	b.cfg.Analysis.Divide = divide
	return b
}

// WithThreads sets the goroutines used by one perft.
func (b *ConfigBuilder) WithThreads(n int) *ConfigBuilder {
	b.cfg.Analysis.Threads = n
	return b
}

// WithWorkers sets the number of positions analysed in parallel.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithCache enables the position store in dir.
func (b *ConfigBuilder) WithCache(dir string) *ConfigBuilder {
	b.cfg.CacheDir = dir
	return b
}

// WithDuplicateSuppression enables duplicate suppression.
func (b *ConfigBuilder) WithDuplicateSuppression(enabled bool) *ConfigBuilder {
	b.cfg.Duplicate.Suppress = enabled
	return b
}

// WithHash adds Zobrist hashes to the output.
func (b *ConfigBuilder) WithHash(enabled bool) *ConfigBuilder {
	b.cfg.Annotation.AddHash = enabled
	return b
}

// WithPieceCounts adds piece counts to the output.
func (b *ConfigBuilder) WithPieceCounts(enabled bool) *ConfigBuilder {
	b.cfg.Annotation.AddCount = enabled
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
