package git

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/modu-ai/scaffold/internal/prompt"
	"github.com/modu-ai/scaffold/pkg/models"
	"github.com/modu-ai/scaffold/pkg/plugin"
)

// mockHost is a VcsHostPlugin whose prompt returns fixed answers.
type mockHost struct {
	answers     plugin.HostAnswers
	promptCalls int
}

func (m *mockHost) Scaffold(context.Context, plugin.HostContext) (*models.VcsHostResult, error) {
	return nil, nil
}

func (m *mockHost) Prompt(_ context.Context, pc plugin.HostPromptContext) (*plugin.HostAnswers, error) {
	m.promptCalls++
	a := m.answers
	if a.Name == "" {
		a.Name = pc.ProjectName
	}
	return &a, nil
}

func initOptions(dir string, hosts map[string]plugin.VcsHostPlugin, decisions map[models.Question]string) InitOptions {
	d := models.NewDecisions(decisions)
	return InitOptions{
		GitRepo:     true,
		ProjectRoot: dir,
		ProjectName: "demo",
		Visibility:  models.VisibilityPublic,
		Hosts:       hosts,
		Decisions:   d,
		Asker:       prompt.NewDecisionAsker(d, prompt.Headless{}, nil),
	}
}

func TestInitialize_Declined(t *testing.T) {
	dir := t.TempDir()
	opts := initOptions(dir, nil, nil)
	opts.GitRepo = false

	vcs, err := NewInitializer(nil).Initialize(context.Background(), opts)
	if err != nil {
		t.Fatalf("Initialize() error: %v", err)
	}
	if vcs != nil {
		t.Errorf("Initialize() = %+v, want nil", vcs)
	}
	if _, err := os.Stat(filepath.Join(dir, ".git")); !os.IsNotExist(err) {
		t.Error("declined version control must not create .git")
	}
}

func TestInitialize_KnownHost(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()
	host := &mockHost{answers: plugin.HostAnswers{Owner: "acme"}}

	vcs, err := NewInitializer(nil).Initialize(context.Background(),
		initOptions(dir, map[string]plugin.VcsHostPlugin{"github": host}, nil))
	if err != nil {
		t.Fatalf("Initialize() error: %v", err)
	}

	want := models.VcsContext{Host: "github", Owner: "acme", Name: "demo"}
	if *vcs != want {
		t.Errorf("Initialize() = %+v, want %+v", *vcs, want)
	}
	if host.promptCalls != 1 {
		t.Errorf("host prompt calls = %d, want 1", host.promptCalls)
	}
	if !isRepository(context.Background(), dir) {
		t.Error("project root should be a git repository")
	}
	head, err := execGit(context.Background(), dir, "symbolic-ref", "--short", "HEAD")
	if err != nil || head != "main" {
		t.Errorf("HEAD = %q, %v; want main", head, err)
	}
}

func TestInitialize_OtherHost(t *testing.T) {
	requireGit(t)
	dir := initTestRepo(t)
	host := &mockHost{answers: plugin.HostAnswers{Owner: "acme"}}

	vcs, err := NewInitializer(nil).Initialize(context.Background(),
		initOptions(dir, map[string]plugin.VcsHostPlugin{"github": host}, map[models.Question]string{
			models.QuestionRepoHost:  OtherHost,
			models.QuestionRepoOwner: "someone",
		}))
	if err != nil {
		t.Fatalf("Initialize() error: %v", err)
	}

	want := models.VcsContext{Host: OtherHost, Owner: "someone", Name: "demo"}
	if *vcs != want {
		t.Errorf("Initialize() = %+v, want %+v", *vcs, want)
	}
	if host.promptCalls != 0 {
		t.Errorf("host prompt calls = %d, want 0", host.promptCalls)
	}
}

func TestInitialize_OwnerRequired(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()

	_, err := NewInitializer(nil).Initialize(context.Background(), initOptions(dir, nil, nil))
	if !errors.Is(err, ErrOwnerRequired) {
		t.Errorf("Initialize() error = %v, want ErrOwnerRequired", err)
	}
}

func TestAvailableHosts(t *testing.T) {
	hosts := map[string]plugin.VcsHostPlugin{
		"gitlab":   &mockHost{},
		"github":   &plugin.VcsHostFuncs{Public: true, Private: true},
		"codeberg": &plugin.VcsHostFuncs{Public: true},
	}

	tests := []struct {
		visibility models.Visibility
		want       []string
	}{
		{visibility: models.VisibilityPublic, want: []string{"codeberg", "github", "gitlab"}},
		{visibility: models.VisibilityPrivate, want: []string{"github", "gitlab"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.visibility), func(t *testing.T) {
			if got := availableHosts(hosts, tt.visibility); !slices.Equal(got, tt.want) {
				t.Errorf("availableHosts() = %v, want %v", got, tt.want)
			}
		})
	}
}
