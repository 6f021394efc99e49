package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/custodia-labs/repofolio/internal/core/domain"
	"github.com/custodia-labs/repofolio/internal/core/ports/driven"
	"github.com/custodia-labs/repofolio/internal/logger"
)

// Indent is the indentation used for every document.
const Indent = "  "

// Ensure sinks implement the interface.
var (
	_ driven.PortfolioSink = (*ConsoleSink)(nil)
	_ driven.PortfolioSink = (*FileSink)(nil)
)

// encode renders v as indented JSON followed by a newline.
func encode(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", Indent)
	if err != nil {
		return nil, fmt.Errorf("%w: encode document: %v", domain.ErrWrite, err)
	}
	return append(data, '\n'), nil
}

// ConsoleSink writes the document to a writer, normally stdout.
type ConsoleSink struct {
	w io.Writer
}

// NewConsoleSink creates a sink writing to w. A nil w selects os.Stdout.
func NewConsoleSink(w io.Writer) *ConsoleSink {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleSink{w: w}
}

// Write serialises v and writes it in one call.
func (s *ConsoleSink) Write(v any) error {
	data, err := encode(v)
	if err != nil {
		return err
	}
	if _, err := s.w.Write(data); err != nil {
		return fmt.Errorf("%w: console: %v", domain.ErrWrite, err)
	}
	return nil
}

// FileSink writes the document to a named file, replacing any previous content.
type FileSink struct {
	path string
}

// NewFileSink creates a sink writing to path. An empty path selects portfolio.json.
func NewFileSink(path string) *FileSink {
	if path == "" {
		path = "portfolio.json"
	}
	return &FileSink{path: path}
}

// Path returns the destination file.
func (s *FileSink) Path() string {
	return s.path
}

// Write serialises v to a temporary file in the destination directory and
// renames it into place, so a failed write never leaves a truncated document.
func (s *FileSink) Write(v any) error {
	data, err := encode(v)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrWrite, s.path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %v", domain.ErrWrite, s.path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %v", domain.ErrWrite, s.path, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %v", domain.ErrWrite, s.path, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %v", domain.ErrWrite, s.path, err)
	}

	logger.Info("wrote %d bytes to %s", len(data), s.path)
	return nil
}
