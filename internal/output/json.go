package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/fenmove-go/internal/config"
	"github.com/lgbarn/fenmove-go/internal/hashing"
	"github.com/lgbarn/fenmove-go/internal/worker"
)

// JSONPosition represents one analysed position in JSON format.
type JSONPosition struct {
	Index      int        `json:"index"`
	FEN        string     `json:"fen"`
	InputMoves []string   `json:"inputMoves,omitempty"`
	Hash       string     `json:"hash,omitempty"`
	Pieces     string     `json:"pieces,omitempty"`
	MoveCount  int        `json:"moveCount"`
	Moves      []string   `json:"moves,omitempty"`
	Perft      *JSONPerft `json:"perft,omitempty"`
	Cached     bool       `json:"cached,omitempty"`
	Duplicate  bool       `json:"duplicate,omitempty"`
	Error      string     `json:"error,omitempty"`
}

// JSONPerft is a node count, optionally split by root move.
type JSONPerft struct {
	Depth  int          `json:"depth"`
	Nodes  uint64       `json:"nodes"`
	Divide []JSONDivide `json:"divide,omitempty"`
}

// JSONDivide is the node count below one root move.
type JSONDivide struct {
	Move  string `json:"move"`
	Nodes uint64 `json:"nodes"`
}

// JSONOutput holds multiple positions for array output.
type JSONOutput struct {
	Positions []*JSONPosition `json:"positions"`
}

// ResultToJSON converts an analysis result to JSON form.
func ResultToJSON(r worker.ProcessResult, cfg *config.Config) *JSONPosition {
	jp := &JSONPosition{
		Index: r.Index + 1,
		FEN:   r.FEN,
	}
	if r.Error != nil {
		jp.InputMoves = r.InputMoves
		jp.Error = r.Error.Error()
		return jp
	}

	jp.MoveCount = len(r.Moves)
	if !cfg.Output.NoMoves {
		jp.Moves = make([]string, len(r.Moves))
		for i, m := range r.Moves {
			jp.Moves[i] = m.String()
		}
	}
	if r.Board != nil {
		if cfg.Annotation.AddHash {
			jp.Hash = fmt.Sprintf("%016x", hashing.Zobrist(r.Board))
		}
		if cfg.Annotation.AddCount {
			jp.Pieces = pieceCounts(r.Board)
		}
	}
	if r.Depth > 0 {
		jp.Perft = &JSONPerft{Depth: r.Depth, Nodes: r.Nodes}
		for _, e := range r.Divide {
			jp.Perft.Divide = append(jp.Perft.Divide, JSONDivide{Move: e.Move.String(), Nodes: e.Nodes})
		}
	}
	jp.Cached = r.Cached
	jp.Duplicate = r.Duplicate
	return jp
}

// WriteJSON writes all results as one indented JSON document.
func WriteJSON(w io.Writer, results []worker.ProcessResult, cfg *config.Config) error {
	out := &JSONOutput{Positions: make([]*JSONPosition, 0, len(results))}
	for _, r := range results {
		out.Positions = append(out.Positions, ResultToJSON(r, cfg))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// WriteText writes every result in text form.
func WriteText(w io.Writer, results []worker.ProcessResult, cfg *config.Config) {
	for _, r := range results {
		OutputResult(w, r, cfg)
	}
}
