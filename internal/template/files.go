package template

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileWriter writes embedded templates into a project root.
type FileWriter interface {
	// Copy writes the named template verbatim to destRel under projectRoot.
	Copy(ctx context.Context, projectRoot, name, destRel string) error

	// Render renders the named template with data and writes it to destRel.
	Render(ctx context.Context, projectRoot, name, destRel string, data any) error
}

// fileWriter is the concrete implementation of FileWriter.
type fileWriter struct {
	fsys     fs.FS
	renderer Renderer
}

// NewFileWriter creates a FileWriter backed by the given filesystem.
// In production the fs.FS comes from EmbeddedTemplates; in tests use testing/fstest.MapFS.
func NewFileWriter(fsys fs.FS) FileWriter {
	return &fileWriter{fsys: fsys, renderer: NewRenderer(fsys)}
}

// Copy writes the named template verbatim.
func (w *fileWriter) Copy(ctx context.Context, projectRoot, name, destRel string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	content, err := fs.ReadFile(w.fsys, name)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	return writeProjectFile(projectRoot, destRel, content)
}

// Render renders the named template and writes the result.
func (w *fileWriter) Render(ctx context.Context, projectRoot, name, destRel string, data any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	content, err := w.renderer.Render(name, data)
	if err != nil {
		return fmt.Errorf("render %q: %w", name, err)
	}
	return writeProjectFile(projectRoot, destRel, content)
}

// writeProjectFile writes content to destRel under projectRoot, creating
// parent directories on demand.
func writeProjectFile(projectRoot, destRel string, content []byte) error {
	projectRoot = filepath.Clean(projectRoot)
	if err := validateDeployPath(projectRoot, destRel); err != nil {
		return err
	}

	destPath := filepath.Join(projectRoot, filepath.FromSlash(destRel))
	destDir := filepath.Dir(destPath)
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("mkdir %q: %w", destDir, err)
	}

	perm := fs.FileMode(0o644)
	if strings.HasSuffix(destRel, ".sh") {
		perm = 0o755
	}
	if err := os.WriteFile(destPath, content, perm); err != nil {
		return fmt.Errorf("write %q: %w", destPath, err)
	}
	return nil
}

// validateDeployPath ensures a destination path does not escape projectRoot.
func validateDeployPath(projectRoot, relPath string) error {
	cleaned := filepath.Clean(filepath.FromSlash(relPath))

	if filepath.IsAbs(cleaned) {
		return fmt.Errorf("%w: absolute path %q", ErrPathTraversal, relPath)
	}

	if strings.HasPrefix(cleaned, "..") || strings.Contains(cleaned, string(filepath.Separator)+"..") {
		return fmt.Errorf("%w: parent reference in %q", ErrPathTraversal, relPath)
	}

	absProjectRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return fmt.Errorf("resolve project root: %w", err)
	}

	absPath := filepath.Join(absProjectRoot, cleaned)
	if !strings.HasPrefix(absPath, absProjectRoot+string(filepath.Separator)) && absPath != absProjectRoot {
		return fmt.Errorf("%w: %q escapes project root", ErrPathTraversal, relPath)
	}

	return nil
}
