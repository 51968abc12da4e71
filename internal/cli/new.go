package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/modu-ai/scaffold/internal/core/project"
	"github.com/modu-ai/scaffold/internal/prompt"
	"github.com/modu-ai/scaffold/internal/ui"
	"github.com/modu-ai/scaffold/pkg/models"
)

// ErrInvalidDecision indicates a --decision flag not of the form KEY=VALUE.
var ErrInvalidDecision = errors.New("invalid decision")

var newCmd = &cobra.Command{
	Use:   "new [directory]",
	Short: "Scaffold a new project",
	Long: `Scaffold a new project into a directory.

Usage patterns:
  scaffold new <directory>   Create the directory and scaffold inside it
  scaffold new               Scaffold into the current directory

Examples:
  scaffold new demo
  scaffold new --decision PROJECT_NAME=demo --decision VISIBILITY=Private
  scaffold new --config scaffold.yaml --non-interactive`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNew,
}

func init() {
	addNewFlags(newCmd)
}

func addNewFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", "", "YAML file with decisions and overrides")
	cmd.Flags().StringArrayP("decision", "d", nil, "Pre-answer a question as KEY=VALUE (repeatable)")
	cmd.Flags().Bool("non-interactive", false, "Never prompt; unanswered questions take their defaults")
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// @MX:ANCHOR: [AUTO] runNew is the CLI entry point of a scaffold run
// @MX:REASON: [AUTO] fan_in=2, called from new.go init() and new_test.go
// runNew resolves the project directory, collects pre-supplied decisions
// from --config and --decision, and runs the orchestrator.
func runNew(cmd *cobra.Command, args []string) error {
	decisionFlags, err := cmd.Flags().GetStringArray("decision")
	if err != nil {
		return err
	}
	decisions, err := parseDecisions(decisionFlags)
	if err != nil {
		return err
	}

	file, err := loadFileConfig(getStringFlag(cmd, "config"))
	if err != nil {
		return err
	}

	root, err := projectDir(args)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := newLogger(cmd.ErrOrStderr(), verbose)

	hm := ui.NewHeadlessManager()
	if getBoolFlag(cmd, "non-interactive") {
		hm.ForceHeadless(true)
	}

	deps, err := NewDependencies(hm, logger)
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := deps.Scaffolder(root).Scaffold(ctx, deps.Options(file, decisions))
	if err != nil {
		if errors.Is(err, prompt.ErrCancelled) {
			_, _ = fmt.Fprintln(cmd.OutOrStderr(), "Scaffolding cancelled.")
			return nil
		}
		return describeFailure(err)
	}

	vcs := "none"
	if result.Vcs != nil {
		vcs = fmt.Sprintf("%s (%s/%s)", result.Vcs.Host, result.Vcs.Owner, result.Vcs.Name)
	}
	details := renderKeyValueLines([]kvPair{
		{"Project", result.ProjectName},
		{"Directory", result.ProjectRoot},
		{"Language", result.Language},
		{"Repository", vcs},
	})
	_, _ = fmt.Fprintln(cmd.OutOrStdout())
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderSuccessCard("Project scaffolded", details))
	return nil
}

// describeFailure prefixes err with the phase that failed, if known.
func describeFailure(err error) error {
	var se *project.StepError
	if errors.As(err, &se) {
		return fmt.Errorf("%s scaffolding failed during %s: %w", symError(), se.Step, se.Err)
	}
	return fmt.Errorf("%s scaffolding failed: %w", symError(), err)
}

// parseDecisions converts KEY=VALUE flags into question answers. A later
// flag for the same key wins.
func parseDecisions(flags []string) (map[models.Question]string, error) {
	if len(flags) == 0 {
		return nil, nil
	}
	out := make(map[models.Question]string, len(flags))
	for _, f := range flags {
		key, value, ok := strings.Cut(f, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("%w %q: want KEY=VALUE", ErrInvalidDecision, f)
		}
		out[models.Question(key)] = value
	}
	return out, nil
}

// projectDir resolves the directory to scaffold into. A positional
// argument names a directory that is created if needed; without one the
// current directory is used.
func projectDir(args []string) (string, error) {
	if len(args) == 0 || args[0] == "." {
		return "", nil
	}
	abs, err := filepath.Abs(args[0])
	if err != nil {
		return "", fmt.Errorf("resolve project path %q: %w", args[0], err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return "", fmt.Errorf("create project directory %q: %w", args[0], err)
	}
	return abs, nil
}
