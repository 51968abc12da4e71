package updater

import (
	"context"
	"errors"
	"testing"

	"github.com/modu-ai/scaffold/pkg/models"
	"github.com/modu-ai/scaffold/pkg/plugin"
)

func TestScaffold(t *testing.T) {
	errBoom := errors.New("boom")
	updaters := map[string]plugin.DependencyUpdater{
		"renovate": &plugin.UpdaterFuncs{
			ScaffoldFunc: func(_ context.Context, uc plugin.UpdaterContext) (*models.UpdaterResult, error) {
				return &models.UpdaterResult{NextSteps: []models.Task{{Summary: uc.ProjectType}}}, nil
			},
		},
		"broken": &plugin.UpdaterFuncs{
			ScaffoldFunc: func(context.Context, plugin.UpdaterContext) (*models.UpdaterResult, error) {
				return nil, errBoom
			},
		},
	}
	ctx := context.Background()

	got, err := Scaffold(ctx, updaters, "renovate", plugin.UpdaterContext{ProjectType: "go"})
	if err != nil {
		t.Fatalf("Scaffold(renovate) error: %v", err)
	}
	if len(got.NextSteps) != 1 || got.NextSteps[0].Summary != "go" {
		t.Errorf("Scaffold(renovate) = %+v", got)
	}

	if got, err := Scaffold(ctx, updaters, "", plugin.UpdaterContext{}); got != nil || err != nil {
		t.Errorf("Scaffold(\"\") = %+v, %v; want nil, nil", got, err)
	}

	if _, err := Scaffold(ctx, updaters, "broken", plugin.UpdaterContext{}); !errors.Is(err, errBoom) {
		t.Errorf("Scaffold(broken) error = %v, want wrapped errBoom", err)
	}
}
