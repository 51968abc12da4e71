// Package dependabot is the built-in dependency updater plugin that
// configures GitHub Dependabot version updates.
package dependabot

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/modu-ai/scaffold/pkg/models"
	"github.com/modu-ai/scaffold/pkg/plugin"
)

// Name is the key the plugin is registered under.
const Name = "dependabot"

// ConfigFile is the Dependabot configuration path, relative to the project root.
const ConfigFile = ".github/dependabot.yml"

const githubHost = "github"

// ecosystems maps project types to Dependabot package ecosystems.
var ecosystems = map[string]string{
	"go":         "gomod",
	"node":       "npm",
	"javascript": "npm",
	"python":     "pip",
	"ruby":       "bundler",
	"rust":       "cargo",
}

// Config is the subset of dependabot.yml the plugin writes.
type Config struct {
	Version int      `yaml:"version"`
	Updates []Update `yaml:"updates"`
}

// Update configures updates for one package ecosystem.
type Update struct {
	PackageEcosystem string   `yaml:"package-ecosystem"`
	Directory        string   `yaml:"directory"`
	Schedule         Schedule `yaml:"schedule"`
}

// Schedule sets how often Dependabot checks for updates.
type Schedule struct {
	Interval string `yaml:"interval"`
}

var _ plugin.DependencyUpdater = (*Updater)(nil)

// Updater writes the Dependabot configuration.
type Updater struct {
	logger *slog.Logger
}

// New creates the Dependabot updater. A nil logger discards output.
func New(logger *slog.Logger) *Updater {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Updater{logger: logger}
}

// Scaffold writes .github/dependabot.yml covering the project's package
// ecosystem and, for GitHub repositories, its workflows.
func (u *Updater) Scaffold(ctx context.Context, uc plugin.UpdaterContext) (*models.UpdaterResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	github := uc.Vcs.Host == githubHost
	cfg := BuildConfig(uc.ProjectType, github)
	if len(cfg.Updates) == 0 {
		u.logger.Info("no ecosystem to update", "project_type", uc.ProjectType)
		return &models.UpdaterResult{}, nil
	}

	if err := writeConfig(uc.ProjectRoot, cfg); err != nil {
		return nil, err
	}
	u.logger.Debug("dependabot configured", "updates", len(cfg.Updates))

	result := &models.UpdaterResult{}
	if github {
		result.Badges = &models.Badges{
			Status: models.NewBadgeGroup(models.BadgeEntry{
				Label: Name,
				Badge: models.Badge{
					Text: "Dependabot",
					Link: fmt.Sprintf("https://github.com/%s/%s/network/updates", uc.Vcs.Owner, uc.Vcs.Name),
					Img:  "https://img.shields.io/badge/dependabot-enabled-025e8c?logo=dependabot",
				},
			}),
		}
		result.NextSteps = []models.Task{{
			Summary:     "Enable Dependabot security updates",
			Description: "Turn them on under the repository's Code security settings",
		}}
	}
	return result, nil
}

// BuildConfig returns the Dependabot configuration for a project type.
func BuildConfig(projectType string, githubActions bool) Config {
	cfg := Config{Version: 2}
	if eco, ok := ecosystems[projectType]; ok {
		cfg.Updates = append(cfg.Updates, weekly(eco))
	}
	if githubActions {
		cfg.Updates = append(cfg.Updates, weekly("github-actions"))
	}
	return cfg
}

func weekly(ecosystem string) Update {
	return Update{PackageEcosystem: ecosystem, Directory: "/", Schedule: Schedule{Interval: "weekly"}}
}

func writeConfig(projectRoot string, cfg Config) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encode %s: %w", ConfigFile, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode %s: %w", ConfigFile, err)
	}

	path := filepath.Join(projectRoot, filepath.FromSlash(ConfigFile))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir %q: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", ConfigFile, err)
	}
	return nil
}
