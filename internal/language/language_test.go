package language

import (
	"context"
	"errors"
	"testing"

	"github.com/modu-ai/scaffold/pkg/models"
	"github.com/modu-ai/scaffold/pkg/plugin"
)

func TestScaffold(t *testing.T) {
	errBoom := errors.New("boom")
	calls := 0
	languages := map[string]plugin.LanguagePlugin{
		"node": plugin.LanguageFunc(func(_ context.Context, pc plugin.ProjectContext) (*models.LanguageResult, error) {
			calls++
			return &models.LanguageResult{VerificationCommand: "npm test", NextSteps: []models.Task{{Summary: pc.ProjectName}}}, nil
		}),
		"broken": plugin.LanguageFunc(func(context.Context, plugin.ProjectContext) (*models.LanguageResult, error) {
			return nil, errBoom
		}),
	}
	ctx := context.Background()
	pc := plugin.ProjectContext{ProjectName: "demo"}

	got, err := Scaffold(ctx, languages, "node", pc)
	if err != nil {
		t.Fatalf("Scaffold(node) error: %v", err)
	}
	if got.VerificationCommand != "npm test" || got.NextSteps[0].Summary != "demo" || calls != 1 {
		t.Errorf("Scaffold(node) = %+v, calls = %d", got, calls)
	}

	for _, chosen := range []string{"Other", "", "rust"} {
		got, err := Scaffold(ctx, languages, chosen, pc)
		if err != nil || got != nil {
			t.Errorf("Scaffold(%q) = %+v, %v; want nil, nil", chosen, got, err)
		}
	}

	if _, err := Scaffold(ctx, languages, "broken", pc); !errors.Is(err, errBoom) {
		t.Errorf("Scaffold(broken) error = %v, want wrapped errBoom", err)
	}
}
