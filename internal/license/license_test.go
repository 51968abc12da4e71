package license

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/modu-ai/scaffold/internal/template"
	"github.com/modu-ai/scaffold/pkg/models"
)

func newTestScaffolder(t *testing.T) Scaffolder {
	t.Helper()
	fsys, err := template.EmbeddedTemplates()
	if err != nil {
		t.Fatalf("EmbeddedTemplates() error: %v", err)
	}
	return NewScaffolder(fsys, template.NewFileWriter(fsys), nil)
}

func TestScaffold_WritesLicense(t *testing.T) {
	dir := t.TempDir()

	result, err := newTestScaffolder(t).Scaffold(context.Background(), Options{
		ProjectRoot: dir,
		License:     "MIT",
		Copyright:   models.Copyright{Year: "2026", Holder: "Acme Corp"},
	})
	if err != nil {
		t.Fatalf("Scaffold() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("read LICENSE: %v", err)
	}
	if !strings.Contains(string(data), "Copyright (c) 2026 Acme Corp") {
		t.Errorf("LICENSE missing copyright line:\n%s", data)
	}

	badge := result.Badges.Consumer
	if badge == nil {
		t.Fatal("expected a consumer badge")
	}
	if badge.Img != "https://img.shields.io/badge/license-MIT-blue.svg" || badge.Link != FileName {
		t.Errorf("badge = %+v", badge)
	}
}

func TestScaffold_Unlicensed(t *testing.T) {
	dir := t.TempDir()

	result, err := newTestScaffolder(t).Scaffold(context.Background(), Options{ProjectRoot: dir})
	if err != nil {
		t.Fatalf("Scaffold() error: %v", err)
	}
	if result.Badges.Consumer != nil {
		t.Errorf("unlicensed project got badge %+v", result.Badges.Consumer)
	}
	if _, err := os.Stat(filepath.Join(dir, FileName)); !os.IsNotExist(err) {
		t.Error("unlicensed project must not get a LICENSE file")
	}
}

func TestScaffold_UnknownLicense(t *testing.T) {
	_, err := newTestScaffolder(t).Scaffold(context.Background(), Options{
		ProjectRoot: t.TempDir(),
		License:     "WTFPL",
	})
	if !errors.Is(err, ErrUnknownLicense) {
		t.Errorf("Scaffold() error = %v, want ErrUnknownLicense", err)
	}
}

func TestBadge(t *testing.T) {
	tests := []struct {
		name    string
		license string
		vcs     *models.VcsContext
		wantImg string
	}{
		{
			name:    "no vcs",
			license: "MIT",
			wantImg: "https://img.shields.io/badge/license-MIT-blue.svg",
		},
		{
			name:    "github",
			license: "MIT",
			vcs:     &models.VcsContext{Host: "github", Owner: "acme", Name: "demo"},
			wantImg: "https://img.shields.io/github/license/acme/demo.svg",
		},
		{
			name:    "other host",
			license: "ISC",
			vcs:     &models.VcsContext{Host: "Other", Owner: "acme", Name: "demo"},
			wantImg: "https://img.shields.io/badge/license-ISC-blue.svg",
		},
		{
			name:    "dash in identifier",
			license: "BSD-3-Clause",
			wantImg: "https://img.shields.io/badge/license-BSD--3--Clause-blue.svg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Badge(tt.license, tt.vcs)
			if b.Img != tt.wantImg {
				t.Errorf("Img = %q, want %q", b.Img, tt.wantImg)
			}
			if b.Text != tt.license+" license" {
				t.Errorf("Text = %q", b.Text)
			}
		})
	}
}
