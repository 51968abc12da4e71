// Package golang is the built-in language plugin for Go modules.
package golang

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode"

	"github.com/modu-ai/scaffold/internal/template"
	"github.com/modu-ai/scaffold/pkg/models"
	"github.com/modu-ai/scaffold/pkg/plugin"
)

// Name is the key the plugin is registered under.
const Name = "go"

// GoVersion is written to the go directive of new modules.
const GoVersion = "1.26"

// QuestionModulePath asks for the module path of the new module.
const QuestionModulePath models.Question = "GO_MODULE_PATH"

// Files written by the plugin, relative to the project root.
const (
	ModFile      = "go.mod"
	DocFile      = "doc.go"
	WorkflowFile = ".github/workflows/ci.yml"
)

const githubHost = "github"

var _ plugin.LanguagePlugin = (*Plugin)(nil)

// Plugin scaffolds a Go module.
type Plugin struct {
	files  template.FileWriter
	logger *slog.Logger
}

// New creates the Go plugin. A nil logger discards output.
func New(files template.FileWriter, logger *slog.Logger) *Plugin {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Plugin{files: files, logger: logger}
}

// modData is the template data of go.mod.
type modData struct {
	ModulePath string
	GoVersion  string
}

// docData is the template data of doc.go.
type docData struct {
	PackageName string
	Summary     string
}

// Scaffold writes go.mod and a package doc file, plus a CI workflow for
// GitHub-hosted projects, and describes the README contributions.
func (p *Plugin) Scaffold(ctx context.Context, pc plugin.ProjectContext) (*models.LanguageResult, error) {
	modulePath, err := pc.Asker.Input(ctx, QuestionModulePath, "What is the module path?", DefaultModulePath(pc.ProjectName, pc.Vcs))
	if err != nil {
		return nil, err
	}
	if modulePath == "" {
		modulePath = DefaultModulePath(pc.ProjectName, pc.Vcs)
	}

	if err := p.files.Render(ctx, pc.ProjectRoot, template.GoModule, ModFile, modData{
		ModulePath: modulePath,
		GoVersion:  GoVersion,
	}); err != nil {
		return nil, fmt.Errorf("write %s: %w", ModFile, err)
	}

	if err := p.files.Render(ctx, pc.ProjectRoot, template.GoDoc, DocFile, docData{
		PackageName: PackageName(modulePath),
		Summary:     "is the root package of " + modulePath + ".",
	}); err != nil {
		return nil, fmt.Errorf("write %s: %w", DocFile, err)
	}

	github := pc.Vcs != nil && pc.Vcs.Host == githubHost
	if github {
		if err := p.files.Copy(ctx, pc.ProjectRoot, template.GoWorkflow, WorkflowFile); err != nil {
			return nil, fmt.Errorf("write %s: %w", WorkflowFile, err)
		}
	}

	p.logger.Debug("go module scaffolded", "module", modulePath, "workflow", github)
	return p.result(modulePath, pc, github), nil
}

func (p *Plugin) result(modulePath string, pc plugin.ProjectContext, github bool) *models.LanguageResult {
	result := &models.LanguageResult{
		NextSteps: []models.Task{{
			Summary:     "Add the first package",
			Description: "Run `go mod tidy` after importing dependencies",
		}},
		Documentation: &models.Documentation{
			Usage:        fmt.Sprintf("```sh\ngo get %s\n```", modulePath),
			Contributing: "```sh\ngo test ./...\n```",
		},
		Badges: &models.Badges{},
		VcsIgnore: &models.VcsIgnore{
			Directories: []string{"/vendor/"},
			Files:       []string{"*.test", "coverage.out"},
		},
		VerificationCommand: "go vet ./...",
	}

	if pc.Visibility == models.VisibilityPublic {
		docs := "https://pkg.go.dev/" + modulePath
		result.Badges.Consumer = models.NewBadgeGroup(models.BadgeEntry{
			Label: "go-reference",
			Badge: models.Badge{
				Text: "Go Reference",
				Link: docs,
				Img:  "https://pkg.go.dev/badge/" + modulePath + ".svg",
			},
		})
		result.ProjectDetails = &models.ProjectDetails{Homepage: docs}
	}

	if github {
		workflow := fmt.Sprintf("https://github.com/%s/%s/actions/workflows/ci.yml", pc.Vcs.Owner, pc.Vcs.Name)
		result.Badges.Status = models.NewBadgeGroup(models.BadgeEntry{
			Label: "ci",
			Badge: models.Badge{Text: "CI", Link: workflow, Img: workflow + "/badge.svg"},
		})
	}

	return result
}

// DefaultModulePath suggests a module path: the repository path for
// GitHub-hosted projects, otherwise the project name.
func DefaultModulePath(projectName string, vcs *models.VcsContext) string {
	if vcs != nil && vcs.Host == githubHost && vcs.Owner != "" && vcs.Name != "" {
		return "github.com/" + vcs.Owner + "/" + vcs.Name
	}
	return projectName
}

// PackageName derives a package name from the last element of a module
// path: lower-cased, with characters invalid in identifiers dropped.
// A major version suffix such as "/v2" is skipped.
func PackageName(modulePath string) string {
	elems := strings.Split(strings.Trim(modulePath, "/"), "/")
	last := elems[len(elems)-1]
	if len(elems) > 1 && isMajorVersion(last) {
		last = elems[len(elems)-2]
	}

	var b strings.Builder
	for _, r := range strings.ToLower(last) {
		if r == '_' || unicode.IsLetter(r) || (unicode.IsDigit(r) && b.Len() > 0) {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "main"
	}
	return b.String()
}

func isMajorVersion(s string) bool {
	rest, ok := strings.CutPrefix(s, "v")
	if !ok || rest == "" {
		return false
	}
	for _, r := range rest {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
