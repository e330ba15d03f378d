// fenmove reads chess positions in FEN and reports their pseudo-legal moves
// and, optionally, pseudo-legal perft node counts.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lgbarn/fenmove-go/internal/config"
	"github.com/lgbarn/fenmove-go/internal/hashing"
	"github.com/lgbarn/fenmove-go/internal/store"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("fenmove version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	if err := setupLogFile(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := setupOutputFile(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	sources := inputSources(*fenString, cfg.InputFile, flag.Args())
	code := run(ctx, cfg, sources, splitMoveList(*moveList))
	stop()
	os.Exit(code)
}

// run analyses every position from sources and returns the exit status:
// 0 on success, 1 if any position failed or the run could not complete,
// including when ctx is cancelled.
func run(ctx context.Context, cfg *config.Config, sources []source, extraMoves []string) int {
	st, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return 1
	}
	if st != nil {
		defer st.Close() //nolint:errcheck // cleanup on exit
	}

	items, err := collectPositions(ctx, sources, extraMoves)
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return 1
	}
	cfg.Logf(2, "Read %d position(s) from %d source(s)\n", len(items), len(sources))

	analyser := NewAnalyser(ctx, cfg, st)
	s, err := processPositions(ctx, items, analyser, hashing.NewDuplicateDetector(), cfg)
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return 1
	}

	reportStatistics(cfg, s)
	if s.failed > 0 {
		return 1
	}
	return 0
}

// openStore opens the position cache named by cfg, if any.
func openStore(cfg *config.Config) (*store.Store, error) {
	if cfg.CacheDir == "" {
		return nil, nil
	}
	st, err := store.Open(cfg.CacheDir)
	if err != nil {
		return nil, err
	}
	if n, err := st.Count(); err == nil {
		cfg.Logf(2, "Using position cache %s (%d record(s))\n", cfg.CacheDir, n)
	}
	return st, nil
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) error {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			return fmt.Errorf("creating log file %s: %w", *logFile, err)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			return fmt.Errorf("opening log file %s: %w", *appendLog, err)
		}
		cfg.LogFile = file
	}
	return nil
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) error {
	if cfg.OutputFilename == "" {
		return nil
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(cfg.OutputFilename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(cfg.OutputFilename)
	}

	if err != nil {
		return fmt.Errorf("creating output file %s: %w", cfg.OutputFilename, err)
	}
	cfg.OutputFile = file
	return nil
}

// reportStatistics prints the final statistics to the log.
func reportStatistics(cfg *config.Config, s summary) {
	cfg.Logf(1, "%d position(s) output, %d failed, %d duplicate(s), %d cached, out of %d.\n",
		s.written, s.failed, s.duplicates, s.cached, s.positions)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: fenmove [options] [fen-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Lists pseudo-legal moves and perft counts for chess positions in FEN.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nInput lines:\n")
	fmt.Fprintf(os.Stderr, "  <fen>                     a position\n")
	fmt.Fprintf(os.Stderr, "  <fen> moves e2e4 e7e5     a position after the listed moves\n")
	fmt.Fprintf(os.Stderr, "  # comment                 ignored, as are blank lines\n")
}
