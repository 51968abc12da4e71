// Package updater dispatches dependency-update configuration to the
// updater chosen for a project.
package updater

import (
	"context"
	"fmt"

	"github.com/modu-ai/scaffold/pkg/models"
	"github.com/modu-ai/scaffold/pkg/plugin"
)

// Scaffold runs the updater registered under chosen. An unregistered
// choice yields a nil result.
func Scaffold(ctx context.Context, updaters map[string]plugin.DependencyUpdater, chosen string, uc plugin.UpdaterContext) (*models.UpdaterResult, error) {
	u, ok := updaters[chosen]
	if !ok || u == nil {
		return nil, nil
	}

	result, err := u.Scaffold(ctx, uc)
	if err != nil {
		return nil, fmt.Errorf("configure %s: %w", chosen, err)
	}
	return result, nil
}
