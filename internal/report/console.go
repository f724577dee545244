package report

import (
	"io"

	"github.com/nao1215/urlstatus/internal/model"
)

// ConsoleWriter prints status lines without header or separator.
type ConsoleWriter struct {
	baseWriter
}

// NewConsoleWriter creates a ConsoleWriter that outputs to the given writer.
func NewConsoleWriter(output io.Writer) *ConsoleWriter {
	return &ConsoleWriter{
		baseWriter: newBaseWriter(output),
	}
}

// WriteHeader is a no-op: console output starts with the first result.
func (w *ConsoleWriter) WriteHeader() error {
	return nil
}

// WriteResult prints the status line.
func (w *ConsoleWriter) WriteResult(result *model.CheckResult) error {
	return w.writeLine(result.Line())
}
