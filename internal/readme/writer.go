package readme

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Writer writes the assembled README into a project.
type Writer interface {
	Write(ctx context.Context, projectRoot string, in Input) error
}

// fileWriter is the concrete implementation of Writer.
type fileWriter struct {
	logger *slog.Logger
}

// NewWriter creates a Writer. A nil logger discards output.
func NewWriter(logger *slog.Logger) Writer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &fileWriter{logger: logger}
}

// Write assembles the README and writes it to projectRoot/README.md.
func (w *fileWriter) Write(ctx context.Context, projectRoot string, in Input) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	content, err := Assemble(in)
	if err != nil {
		return fmt.Errorf("assemble README: %w", err)
	}

	path := filepath.Join(filepath.Clean(projectRoot), FileName)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", FileName, err)
	}

	w.logger.Debug("README written", "path", path, "bytes", len(content))
	return nil
}
