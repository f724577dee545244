package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/nao1215/urlstatus/internal/model"
)

// FileWriter writes the report file: a header, a separator and one
// status line per result.
type FileWriter struct {
	baseWriter

	// closer closes the underlying file. Nil when the writer does not own it.
	closer io.Closer
}

// NewFileWriter creates a FileWriter that outputs to the given writer.
// The caller keeps ownership of output.
func NewFileWriter(output io.Writer) *FileWriter {
	return &FileWriter{
		baseWriter: newBaseWriter(output),
	}
}

// CreateFileWriter creates or truncates the report file at path and returns
// a FileWriter that owns it. Parent directories are created if needed.
// The caller must call Close.
func CreateFileWriter(path string) (*FileWriter, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create report directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644) //nolint:gosec // the report holds public URLs only
	if err != nil {
		return nil, fmt.Errorf("failed to create report file: %w", err)
	}

	return &FileWriter{
		baseWriter: newBaseWriter(f),
		closer:     f,
	}, nil
}

// WriteHeader writes the column header and the separator line.
func (w *FileWriter) WriteHeader() error {
	if err := w.writeLine(model.HeaderLine()); err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}
	if err := w.writeLine(model.SeparatorLine()); err != nil {
		return fmt.Errorf("failed to write report separator: %w", err)
	}
	return nil
}

// WriteResult appends the status line.
func (w *FileWriter) WriteResult(result *model.CheckResult) error {
	if err := w.writeLine(result.Line()); err != nil {
		return fmt.Errorf("failed to write result for %s: %w", result.URL, err)
	}
	return nil
}

// Close closes the report file if the writer owns it.
func (w *FileWriter) Close() error {
	if w.closer == nil {
		return nil
	}
	return w.closer.Close()
}
