// Package output writes position analysis results as text or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/fenmove-go/internal/chess"
	"github.com/lgbarn/fenmove-go/internal/config"
	"github.com/lgbarn/fenmove-go/internal/hashing"
	"github.com/lgbarn/fenmove-go/internal/worker"
)

// maxLineLength is where move lists wrap in text output.
const maxLineLength = 80

// LineWriter handles space separated output with line length control.
type LineWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewLineWriter creates a new line writer.
func NewLineWriter(w io.Writer, maxLineLength int) *LineWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &LineWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a word, preceded by a space or a line break as needed.
func (o *LineWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine ends the current line if anything was written on it.
func (o *LineWriter) NewLine() {
	if o.lineLength > 0 {
		fmt.Fprintln(o.w)
	}
	o.lineLength = 0
	o.needsSpace = false
}

// OutputResult writes one result as a block of tag lines, an optional
// diagram, the move list and the divide counts, followed by a blank line.
func OutputResult(w io.Writer, r worker.ProcessResult, cfg *config.Config) {
	writeTag(w, "Position", fmt.Sprint(r.Index+1))
	if r.Error != nil {
		writeTag(w, "Input", inputText(r))
		writeTag(w, "Error", r.Error.Error())
		fmt.Fprintln(w)
		return
	}

	writeTag(w, "FEN", r.FEN)
	if cfg.Annotation.AddHash && r.Board != nil {
		writeTag(w, "Hash", fmt.Sprintf("%016x", hashing.Zobrist(r.Board)))
	}
	if cfg.Annotation.AddCount && r.Board != nil {
		writeTag(w, "Pieces", pieceCounts(r.Board))
	}
	writeTag(w, "Moves", fmt.Sprint(len(r.Moves)))
	if r.Depth > 0 {
		writeTag(w, "Perft", fmt.Sprintf("%d %d", r.Depth, r.Nodes))
	}
	if r.Cached {
		writeTag(w, "Cached", "true")
	}
	if r.Duplicate {
		writeTag(w, "Duplicate", "true")
	}

	if cfg.Output.ShowBoard && r.Board != nil {
		fmt.Fprintln(w)
		fmt.Fprint(w, r.Board.String())
	}

	if !cfg.Output.NoMoves && len(r.Moves) > 0 {
		fmt.Fprintln(w)
		lw := NewLineWriter(w, maxLineLength)
		for _, m := range r.Moves {
			lw.Write(m.String())
		}
		lw.NewLine()
	}

	if len(r.Divide) > 0 {
		fmt.Fprintln(w)
		for _, e := range r.Divide {
			fmt.Fprintf(w, "%s: %d\n", e.Move, e.Nodes)
		}
	}
	fmt.Fprintln(w)
}

func writeTag(w io.Writer, name, value string) {
	fmt.Fprintf(w, "[%s \"%s\"]\n", name, escapeTagValue(value))
}

// escapeTagValue escapes backslashes and quotes in tag values.
func escapeTagValue(s string) string {
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' || s[i] == '"' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

// pieceCounts formats the material of both sides as "K1 Q1 P3 / k1 r1".
func pieceCounts(board *chess.Board) string {
	order := [...]chess.Piece{chess.King, chess.Queen, chess.Rook, chess.Bishop, chess.Knight, chess.Pawn}
	side := func(colour chess.Colour) string {
		parts := make([]string, 0, len(order))
		for _, p := range order {
			if n := board.Count(p, colour); n > 0 {
				parts = append(parts, fmt.Sprintf("%c%d", chess.MakeColouredPiece(colour, p).Symbol(), n))
			}
		}
		return strings.Join(parts, " ")
	}
	return side(chess.White) + " / " + side(chess.Black)
}

// inputText rebuilds the input line of a failed result, moves included.
func inputText(r worker.ProcessResult) string {
	if len(r.InputMoves) == 0 {
		return r.FEN
	}
	return r.FEN + " moves " + strings.Join(r.InputMoves, " ")
}
