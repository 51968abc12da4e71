// Package license writes the project's LICENSE file and describes the
// badge advertising it.
package license

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/url"
	"strings"

	"github.com/modu-ai/scaffold/internal/template"
	"github.com/modu-ai/scaffold/pkg/models"
)

// FileName is the license file written into the project root.
const FileName = "LICENSE"

// GitHubHost is the VCS host whose repositories get a dynamic license badge.
const GitHubHost = "github"

// ErrUnknownLicense indicates no template exists for the chosen license.
var ErrUnknownLicense = errors.New("unknown license")

// Options holds the inputs of Scaffolder.Scaffold.
type Options struct {
	ProjectRoot string
	License     string // SPDX identifier; empty for unlicensed projects.
	Copyright   models.Copyright
	Vcs         *models.VcsContext // nil when version control was declined.
}

// Scaffolder writes license files.
type Scaffolder interface {
	Scaffold(ctx context.Context, opts Options) (*models.LicenseResult, error)
}

// scaffolder renders license templates through a template.FileWriter.
type scaffolder struct {
	files  template.FileWriter
	fsys   fs.FS
	logger *slog.Logger
}

// NewScaffolder creates a Scaffolder. fsys must contain the license
// templates that files renders from. A nil logger discards output.
func NewScaffolder(fsys fs.FS, files template.FileWriter, logger *slog.Logger) Scaffolder {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &scaffolder{files: files, fsys: fsys, logger: logger}
}

// Scaffold writes LICENSE for opts.License and returns its consumer
// badge. Unlicensed projects get neither a file nor a badge.
func (s *scaffolder) Scaffold(ctx context.Context, opts Options) (*models.LicenseResult, error) {
	if opts.License == "" {
		s.logger.Debug("project is unlicensed")
		return &models.LicenseResult{}, nil
	}

	name := template.LicenseTemplate(opts.License)
	if _, err := fs.Stat(s.fsys, name); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLicense, opts.License)
	}

	if err := s.files.Render(ctx, opts.ProjectRoot, name, FileName, opts.Copyright); err != nil {
		return nil, fmt.Errorf("write %s: %w", FileName, err)
	}

	s.logger.Debug("license written", "license", opts.License, "holder", opts.Copyright.Holder)
	badge := Badge(opts.License, opts.Vcs)
	return &models.LicenseResult{Badges: models.LicenseBadges{Consumer: &badge}}, nil
}

// Badge returns the consumer badge for license. GitHub repositories get
// a badge read from the repository; everything else a static one.
func Badge(license string, vcs *models.VcsContext) models.Badge {
	b := models.Badge{
		Text: license + " license",
		Link: FileName,
	}
	if vcs != nil && vcs.Host == GitHubHost && vcs.Owner != "" && vcs.Name != "" {
		b.Img = fmt.Sprintf("https://img.shields.io/github/license/%s/%s.svg",
			url.PathEscape(vcs.Owner), url.PathEscape(vcs.Name))
		return b
	}
	b.Img = fmt.Sprintf("https://img.shields.io/badge/license-%s-blue.svg", shieldsEscape(license))
	return b
}

// shieldsEscaper escapes a static shields.io badge segment, where "-"
// separates fields and "_" stands for a space.
var shieldsEscaper = strings.NewReplacer("-", "--", "_", "__", " ", "_")

func shieldsEscape(s string) string {
	return url.PathEscape(shieldsEscaper.Replace(s))
}
