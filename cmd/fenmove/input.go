package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/fenmove-go/internal/worker"
)

// fenFieldCount is the number of fields in a FEN record. A line may carry
// more only as "<fen> moves <move>...".
const fenFieldCount = 6

// source is one place FEN lines are read from.
type source struct {
	name string
	open func() (io.ReadCloser, error)
}

// stringSource serves text held in memory.
func stringSource(name, text string) source {
	return source{
		name: name,
		open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(text)), nil
		},
	}
}

// fileSource serves a file, or standard input for "-".
func fileSource(path string) source {
	if path == "-" {
		return source{
			name: "stdin",
			open: func() (io.ReadCloser, error) { return io.NopCloser(os.Stdin), nil },
		}
	}
	return source{
		name: path,
		open: func() (io.ReadCloser, error) {
			return os.Open(path) //nolint:gosec // G304: CLI tool opens user-specified files
		},
	}
}

// inputSources lists the inputs in processing order: the -fen string, the
// -f file, then the remaining arguments. With none of them, stdin is read.
func inputSources(fen, file string, args []string) []source {
	var sources []source
	if fen != "" {
		sources = append(sources, stringSource("-fen", fen))
	}
	if file != "" {
		sources = append(sources, fileSource(file))
	}
	for _, arg := range args {
		sources = append(sources, fileSource(arg))
	}
	if len(sources) == 0 {
		sources = append(sources, fileSource("-"))
	}
	return sources
}

// parseLine splits an input line into a FEN and the moves that follow a
// "moves" keyword. Blank lines and # comments report ok == false.
func parseLine(line string) (fen string, moves []string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", nil, false
	}
	fields := strings.Fields(line)
	if len(fields) > fenFieldCount && fields[fenFieldCount] == "moves" {
		return strings.Join(fields[:fenFieldCount], " "), fields[fenFieldCount+1:], true
	}
	return line, nil, true
}

// splitMoveList splits the comma-separated -moves value.
func splitMoveList(s string) []string {
	var moves []string
	for _, m := range strings.Split(s, ",") {
		if m = strings.TrimSpace(m); m != "" {
			moves = append(moves, m)
		}
	}
	return moves
}

// readPositions reads one work item per FEN line. extra is appended to
// the moves of every item.
func readPositions(r io.Reader, name string, extra []string) ([]worker.WorkItem, error) {
	var items []worker.WorkItem
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fen, moves, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		if len(extra) > 0 {
			moves = append(moves[:len(moves):len(moves)], extra...)
		}
		items = append(items, worker.WorkItem{
			FEN:    fen,
			Moves:  moves,
			Source: name,
			Line:   lineNo,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return items, nil
}

// collectPositions reads all sources concurrently and returns their items
// in source order, numbered from 0.
func collectPositions(ctx context.Context, sources []source, extra []string) ([]worker.WorkItem, error) {
	perSource := make([][]worker.WorkItem, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rc, err := src.open()
			if err != nil {
				return fmt.Errorf("opening %s: %w", src.name, err)
			}
			defer rc.Close()

			items, err := readPositions(rc, src.name, extra)
			if err != nil {
				return err
			}
			perSource[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var items []worker.WorkItem
	for _, batch := range perSource {
		for _, item := range batch {
			item.Index = len(items)
			items = append(items, item)
		}
	}
	return items, nil
}
