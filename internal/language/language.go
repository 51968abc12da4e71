// Package language dispatches scaffolding to the language plugin chosen
// for a project.
package language

import (
	"context"
	"fmt"

	"github.com/modu-ai/scaffold/pkg/models"
	"github.com/modu-ai/scaffold/pkg/plugin"
)

// Scaffold runs the plugin registered under chosen. A choice with no
// registered plugin, such as "Other", yields a nil result: the project
// simply gets no language-specific contribution.
func Scaffold(ctx context.Context, languages map[string]plugin.LanguagePlugin, chosen string, pc plugin.ProjectContext) (*models.LanguageResult, error) {
	p, ok := languages[chosen]
	if !ok || p == nil {
		return nil, nil
	}

	result, err := p.Scaffold(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("scaffold %s project: %w", chosen, err)
	}
	return result, nil
}
