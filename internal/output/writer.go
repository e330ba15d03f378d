package output

import (
	"io"

	"github.com/lgbarn/fenmove-go/internal/config"
	"github.com/lgbarn/fenmove-go/internal/worker"
)

// ResultWriter is the interface for writing analysis results.
type ResultWriter interface {
	// WriteResult writes or buffers a single result.
	WriteResult(r worker.ProcessResult) error

	// Flush writes any buffered data to the underlying writer.
	Flush() error

	// Close flushes the writer. For JSON this writes the whole document.
	Close() error
}

// NewWriter returns the writer selected by cfg.
func NewWriter(w io.Writer, cfg *config.Config) ResultWriter {
	if cfg.Output.JSONFormat {
		return NewJSONWriter(w, cfg)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes each result as soon as it arrives.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WriteResult writes a result in text form.
func (tw *TextWriter) WriteResult(r worker.ProcessResult) error {
	OutputResult(tw.w, r, tw.cfg)
	return nil
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter buffers results and writes them as one document on Flush.
type JSONWriter struct {
	w       io.Writer
	cfg     *config.Config
	results []worker.ProcessResult
	written bool
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{w: w, cfg: cfg}
}

// WriteResult buffers a result.
func (jw *JSONWriter) WriteResult(r worker.ProcessResult) error {
	jw.results = append(jw.results, r)
	return nil
}

// Flush writes the buffered results. The first Flush always produces a
// document, with an empty positions array if nothing was written.
func (jw *JSONWriter) Flush() error {
	if jw.written && len(jw.results) == 0 {
		return nil
	}
	jw.written = true
	err := WriteJSON(jw.w, jw.results, jw.cfg)
	jw.results = jw.results[:0]
	return err
}

// Close flushes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
