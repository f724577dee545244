package report

import (
	"io"

	"github.com/nao1215/urlstatus/internal/model"
)

// Writer defines the interface for report output.
type Writer interface {
	// WriteHeader writes whatever precedes the first result.
	WriteHeader() error

	// WriteResult writes one status line.
	WriteResult(result *model.CheckResult) error
}

// MultiWriter writes to multiple Writers in order.
// This is used to print a result on the terminal and append it to the
// report file with a single call.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// WriteHeader writes the header to all configured Writers.
// Stops on first error encountered.
func (m *MultiWriter) WriteHeader() error {
	for _, w := range m.writers {
		if err := w.WriteHeader(); err != nil {
			return err
		}
	}
	return nil
}

// WriteResult writes the result to all configured Writers.
// Stops on first error encountered.
func (m *MultiWriter) WriteResult(result *model.CheckResult) error {
	for _, w := range m.writers {
		if err := w.WriteResult(result); err != nil {
			return err
		}
	}
	return nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// writeLine writes s followed by a newline in a single call.
func (b baseWriter) writeLine(s string) error {
	_, err := io.WriteString(b.output, s+"\n")
	return err
}
