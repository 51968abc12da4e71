package config

import (
	"github.com/modu-ai/scaffold/pkg/models"
	"github.com/modu-ai/scaffold/pkg/plugin"
)

// Options is the configuration a scaffold run is started with.
// Library callers build it directly; the CLI assembles it from built-in
// plugins and a FileConfig.
type Options struct {
	Languages          map[string]plugin.LanguagePlugin
	Overrides          Overrides
	VcsHosts           map[string]plugin.VcsHostPlugin
	Decisions          models.Decisions
	DependencyUpdaters map[string]plugin.DependencyUpdater
}

// Overrides holds values offered as defaults to the matching prompts.
type Overrides struct {
	CopyrightHolder string `yaml:"copyrightHolder"`
}

// FileConfig is the on-disk shape of a scaffold configuration file.
//
//	decisions:
//	  PROJECT_NAME: demo
//	  VISIBILITY: Public
//	overrides:
//	  copyrightHolder: Jane Doe
type FileConfig struct {
	Decisions map[string]string `yaml:"decisions"`
	Overrides Overrides         `yaml:"overrides"`
}

// DecisionMap converts the file decisions into question-keyed answers.
func (f *FileConfig) DecisionMap() map[models.Question]string {
	if f == nil || len(f.Decisions) == 0 {
		return nil
	}
	out := make(map[models.Question]string, len(f.Decisions))
	for k, v := range f.Decisions {
		out[models.Question(k)] = v
	}
	return out
}
