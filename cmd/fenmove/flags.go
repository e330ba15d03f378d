// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"

	"github.com/lgbarn/fenmove-go/internal/config"
)

var (
	// Input options
	fenString = flag.String("fen", "", "Analyse this single FEN string")
	fenFile   = flag.String("f", "", "File of FEN strings, one per line (# starts a comment)")
	moveList  = flag.String("moves", "", "Comma-separated long algebraic moves applied to every position first")

	// Analysis options
	perftDepth = flag.Int("perft", 0, "Count pseudo-legal leaf nodes to depth N")
	divide     = flag.Bool("divide", false, "With -perft, report the count below each root move")
	threads    = flag.Int("threads", 1, "Goroutines used by a single perft")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	showBoard    = flag.Bool("board", false, "Draw each position in text output")
	noMoves      = flag.Bool("nomoves", false, "Don't list the moves, only count them")

	// Annotations
	addHash   = flag.Bool("hash", false, "Add the Zobrist hash of each position")
	addCounts = flag.Bool("counts", false, "Add piece counts for each side")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress positions already seen in the input")

	// Caching
	cacheDir = flag.String("cache", "", "Directory of the position cache (default: no cache)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbosity = flag.Int("v", 1, "Verbosity: 0=nothing, 1=summary, 2=running commentary")

	// Other options
	quiet   = flag.Bool("q", false, "Quiet mode (same as -v 0)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers = flag.Int("workers", 0, "Number of worker goroutines (0 = auto-detect based on CPU cores)")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyOutputFlags(cfg)
	applyAnalysisFlags(cfg)
	applyAnnotationFlags(cfg)

	cfg.Duplicate.Suppress = *suppressDuplicates
	cfg.CacheDir = *cacheDir
	cfg.InputFile = *fenFile
	cfg.OutputFilename = *outputFile

	cfg.Workers = *workers
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
}

// applyOutputFlags configures output formatting.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.ShowBoard = *showBoard
	cfg.Output.NoMoves = *noMoves
}

// applyAnalysisFlags configures perft settings.
func applyAnalysisFlags(cfg *config.Config) {
	cfg.Analysis.PerftDepth = *perftDepth
	cfg.Analysis.Divide = *divide
	cfg.Analysis.Threads = *threads
}

// applyAnnotationFlags configures per-position annotations.
func applyAnnotationFlags(cfg *config.Config) {
	cfg.Annotation.AddHash = *addHash
	cfg.Annotation.AddCount = *addCounts
}
