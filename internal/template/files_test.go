package template

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"editorconfig.txt": &fstest.MapFile{Data: []byte("root = true\n")},
		"golang/doc.go.tmpl": &fstest.MapFile{
			Data: []byte("// Package {{.PackageName}} does things.\npackage {{.PackageName}}\n"),
		},
		"run.sh": &fstest.MapFile{Data: []byte("#!/bin/sh\n")},
	}
}

func TestFileWriterCopy(t *testing.T) {
	root := t.TempDir()
	w := NewFileWriter(testFS())

	if err := w.Copy(context.Background(), root, "editorconfig.txt", ".editorconfig"); err != nil {
		t.Fatalf("Copy error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, ".editorconfig"))
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if string(data) != "root = true\n" {
		t.Errorf("content = %q, want verbatim copy", string(data))
	}
}

func TestFileWriterCopyExecutable(t *testing.T) {
	root := t.TempDir()
	w := NewFileWriter(testFS())

	if err := w.Copy(context.Background(), root, "run.sh", "scripts/run.sh"); err != nil {
		t.Fatalf("Copy error: %v", err)
	}
	info, err := os.Stat(filepath.Join(root, "scripts", "run.sh"))
	if err != nil {
		t.Fatalf("Stat error: %v", err)
	}
	if info.Mode().Perm()&0o100 == 0 {
		t.Errorf("shell script should be executable, mode = %v", info.Mode())
	}
}

func TestFileWriterRender(t *testing.T) {
	root := t.TempDir()
	w := NewFileWriter(testFS())

	err := w.Render(context.Background(), root, "golang/doc.go.tmpl", "doc.go", map[string]string{"PackageName": "demo"})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(root, "doc.go"))
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	want := "// Package demo does things.\npackage demo\n"
	if string(data) != want {
		t.Errorf("content = %q, want %q", string(data), want)
	}
}

func TestFileWriterErrors(t *testing.T) {
	root := t.TempDir()
	w := NewFileWriter(testFS())

	t.Run("missing_template", func(t *testing.T) {
		err := w.Copy(context.Background(), root, "nope.txt", "nope.txt")
		if !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("expected ErrTemplateNotFound, got: %v", err)
		}
	})

	t.Run("path_traversal", func(t *testing.T) {
		err := w.Copy(context.Background(), root, "editorconfig.txt", "../escape")
		if !errors.Is(err, ErrPathTraversal) {
			t.Errorf("expected ErrPathTraversal, got: %v", err)
		}
	})

	t.Run("absolute_destination", func(t *testing.T) {
		err := w.Copy(context.Background(), root, "editorconfig.txt", filepath.Join(root, "abs"))
		if !errors.Is(err, ErrPathTraversal) {
			t.Errorf("expected ErrPathTraversal, got: %v", err)
		}
	})

	t.Run("cancelled_context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := w.Copy(ctx, root, "editorconfig.txt", ".editorconfig")
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got: %v", err)
		}
	})
}
