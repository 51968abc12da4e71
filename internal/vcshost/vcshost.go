// Package vcshost dispatches repository hosting to the VCS host plugin
// chosen for a project.
package vcshost

import (
	"context"
	"fmt"

	"github.com/modu-ai/scaffold/pkg/models"
	"github.com/modu-ai/scaffold/pkg/plugin"
)

// Scaffold runs the plugin registered under hc.Host. A host with no
// registered plugin yields a nil result.
func Scaffold(ctx context.Context, hosts map[string]plugin.VcsHostPlugin, hc plugin.HostContext) (*models.VcsHostResult, error) {
	p, ok := hosts[hc.Host]
	if !ok || p == nil {
		return nil, nil
	}

	result, err := p.Scaffold(ctx, hc)
	if err != nil {
		return nil, fmt.Errorf("scaffold %s repository: %w", hc.Host, err)
	}
	return result, nil
}
