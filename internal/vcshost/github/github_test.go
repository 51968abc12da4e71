package github

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/modu-ai/scaffold/internal/prompt"
	"github.com/modu-ai/scaffold/pkg/models"
	"github.com/modu-ai/scaffold/pkg/plugin"
)

// mockGH records gh invocations and answers from a table keyed by the
// first two arguments.
type mockGH struct {
	calls   [][]string
	outputs map[string]string
	errs    map[string]error
}

func (m *mockGH) exec(_ context.Context, _ string, args ...string) (string, error) {
	m.calls = append(m.calls, args)
	key := strings.Join(args[:min(2, len(args))], " ")
	if err, ok := m.errs[key]; ok {
		return "", err
	}
	return m.outputs[key], nil
}

func (m *mockGH) called(prefix ...string) int {
	n := 0
	for _, c := range m.calls {
		if len(c) >= len(prefix) && slices.Equal(c[:len(prefix)], prefix) {
			n++
		}
	}
	return n
}

func asker(decisions map[models.Question]string) (models.Decisions, plugin.Asker) {
	d := models.NewDecisions(decisions)
	return d, prompt.NewDecisionAsker(d, prompt.Headless{}, nil)
}

func TestPrompt_DefaultsToLogin(t *testing.T) {
	gh := &mockGH{outputs: map[string]string{"api user": "octocat\n"}}
	d, a := asker(nil)

	answers, err := newHostWithExec(gh.exec).Prompt(context.Background(), plugin.HostPromptContext{
		ProjectName: "demo", Decisions: d, Asker: a,
	})
	if err != nil {
		t.Fatalf("Prompt() error: %v", err)
	}
	if answers.Owner != "octocat" || answers.Name != "demo" {
		t.Errorf("Prompt() = %+v", answers)
	}
}

func TestPrompt_NoLoginNoDecision(t *testing.T) {
	gh := &mockGH{errs: map[string]error{"api user": ErrGHNotFound}}
	d, a := asker(nil)

	_, err := newHostWithExec(gh.exec).Prompt(context.Background(), plugin.HostPromptContext{
		ProjectName: "demo", Decisions: d, Asker: a,
	})
	if !errors.Is(err, ErrOwnerRequired) {
		t.Errorf("Prompt() error = %v, want ErrOwnerRequired", err)
	}
}

func TestScaffold_WithoutCreation(t *testing.T) {
	gh := &mockGH{}
	d, a := asker(nil)

	result, err := newHostWithExec(gh.exec).Scaffold(context.Background(), plugin.HostContext{
		VcsContext: models.VcsContext{Host: Name, Owner: "acme", Name: "demo"},
		Visibility: models.VisibilityPrivate,
		Decisions:  d,
		Asker:      a,
	})
	if err != nil {
		t.Fatalf("Scaffold() error: %v", err)
	}
	if result.Origin.SSHURL != "git@github.com:acme/demo.git" {
		t.Errorf("Origin = %+v", result.Origin)
	}
	if len(gh.calls) != 0 {
		t.Errorf("gh called %v without creation", gh.calls)
	}
	if len(result.NextSteps) != 1 || !strings.Contains(result.NextSteps[0].Description, "--private") {
		t.Errorf("NextSteps = %+v", result.NextSteps)
	}
}

func TestScaffold_CreatesRepositoryAndIssues(t *testing.T) {
	gh := &mockGH{}
	d, a := asker(map[models.Question]string{QuestionCreateRepo: "yes"})

	result, err := newHostWithExec(gh.exec).Scaffold(context.Background(), plugin.HostContext{
		VcsContext:  models.VcsContext{Host: Name, Owner: "acme", Name: "demo"},
		Visibility:  models.VisibilityPublic,
		Description: "A demo",
		Homepage:    "https://pkg.go.dev/github.com/acme/demo",
		NextSteps:   []models.Task{{Summary: "Add the first package"}, {Summary: "Enable CI", Description: "details"}},
		Decisions:   d,
		Asker:       a,
	})
	if err != nil {
		t.Fatalf("Scaffold() error: %v", err)
	}

	if gh.called("repo", "create", "acme/demo", "--public", "--description", "A demo", "--homepage", "https://pkg.go.dev/github.com/acme/demo") != 1 {
		t.Errorf("repo create not called as expected: %v", gh.calls)
	}
	if n := gh.called("issue", "create"); n != 2 {
		t.Errorf("issue create calls = %d, want 2", n)
	}
	if len(result.NextSteps) != 0 {
		t.Errorf("NextSteps = %+v, want none after creation", result.NextSteps)
	}
}

func TestScaffold_NotAuthenticated(t *testing.T) {
	gh := &mockGH{errs: map[string]error{"auth status": errors.New("exit status 1")}}
	d, a := asker(map[models.Question]string{QuestionCreateRepo: "true"})

	_, err := newHostWithExec(gh.exec).Scaffold(context.Background(), plugin.HostContext{
		VcsContext: models.VcsContext{Host: Name, Owner: "acme", Name: "demo"},
		Decisions:  d,
		Asker:      a,
	})
	if !errors.Is(err, ErrGHNotAuthenticated) {
		t.Errorf("Scaffold() error = %v, want ErrGHNotAuthenticated", err)
	}
	if gh.called("repo", "create") != 0 {
		t.Error("repo create must not run when gh is not authenticated")
	}
}
