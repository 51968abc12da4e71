package prompt

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"github.com/modu-ai/scaffold/pkg/models"
	"github.com/modu-ai/scaffold/pkg/plugin"
)

// OtherChoice is appended to the project type options for projects no
// language plugin covers.
const OtherChoice = "Other"

// DefaultLicense is preselected when it is among the offered licenses.
const DefaultLicense = "MIT"

// Questioner runs the scaffolder's own question flows.
type Questioner struct {
	prompter Prompter
	licenses []string
	now      func() time.Time
	logger   *slog.Logger
}

// NewQuestioner creates a Questioner offering licenses as license choices.
// A nil logger discards output.
func NewQuestioner(prompter Prompter, licenses []string, logger *slog.Logger) *Questioner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Questioner{
		prompter: prompter,
		licenses: slices.Clone(licenses),
		now:      time.Now,
		logger:   logger,
	}
}

// Asker returns a plugin.Asker bound to decisions, for handing to plugins.
func (q *Questioner) Asker(decisions models.Decisions) plugin.Asker {
	return q.asker(decisions)
}

func (q *Questioner) asker(decisions models.Decisions) *DecisionAsker {
	return NewDecisionAsker(decisions, q.prompter, q.logger)
}

// BaseDetails asks the questions every project needs.
//
// The project name defaults to the base name of projectRoot. Private
// projects are first asked whether they stay unlicensed; licensed projects
// are then asked for a license and copyright details, with copyrightHolder
// offered as the default holder.
func (q *Questioner) BaseDetails(ctx context.Context, projectRoot, copyrightHolder string, decisions models.Decisions) (*models.BaseAnswers, error) {
	ask := q.asker(decisions)
	answers := &models.BaseAnswers{}

	name, err := ask.input(ctx, models.QuestionProjectName, "What is the name of this project?", filepath.Base(projectRoot), true)
	if err != nil {
		return nil, err
	}
	answers.ProjectName = name

	if answers.Description, err = ask.Input(ctx, models.QuestionDescription, "How should this project be described?", ""); err != nil {
		return nil, err
	}

	visibility, err := ask.Select(ctx, models.QuestionVisibility, "Should this project be public or private?",
		visibilityOptions(), string(models.VisibilityPublic))
	if err != nil {
		return nil, err
	}
	answers.Visibility = models.Visibility(visibility)

	unlicensed := false
	if answers.Visibility == models.VisibilityPrivate {
		if unlicensed, err = ask.Confirm(ctx, models.QuestionUnlicensed, "Since this is a private project, should it remain unlicensed?", true); err != nil {
			return nil, err
		}
	}

	if !unlicensed {
		if err := q.askLicense(ctx, ask, copyrightHolder, answers); err != nil {
			return nil, err
		}
	}

	if answers.GitRepo, err = ask.Confirm(ctx, models.QuestionGitRepo, "Should a git repository be initialized?", true); err != nil {
		return nil, err
	}

	q.logger.Debug("base details resolved",
		"project", answers.ProjectName, "visibility", answers.Visibility, "license", answers.License, "git", answers.GitRepo)
	return answers, nil
}

func (q *Questioner) askLicense(ctx context.Context, ask *DecisionAsker, copyrightHolder string, answers *models.BaseAnswers) error {
	def := ""
	if slices.Contains(q.licenses, DefaultLicense) {
		def = DefaultLicense
	} else if len(q.licenses) > 0 {
		def = q.licenses[0]
	}

	license, err := ask.Select(ctx, models.QuestionLicense, "How should this project be licensed?", q.licenses, def)
	if err != nil {
		return err
	}
	answers.License = license

	year := strconv.Itoa(q.now().Year())
	if answers.CopyrightYear, err = ask.input(ctx, models.QuestionCopyrightYear, "What is the copyright year?", year, true); err != nil {
		return err
	}
	if answers.CopyrightHolder, err = ask.input(ctx, models.QuestionCopyrightHolder, "Who is the copyright holder?", copyrightHolder, true); err != nil {
		return err
	}
	return nil
}

// LanguageDetails asks which language plugin applies. The options are the
// sorted plugin names followed by OtherChoice.
func (q *Questioner) LanguageDetails(ctx context.Context, languages []string, decisions models.Decisions) (*models.LanguageAnswers, error) {
	options := append(slices.Sorted(slices.Values(languages)), OtherChoice)

	choice, err := q.asker(decisions).Select(ctx, models.QuestionProjectType, "What type of project is this?", options, options[0])
	if err != nil {
		return nil, err
	}
	return &models.LanguageAnswers{Language: choice}, nil
}

// DependencyUpdater asks which dependency updater to configure among the
// sorted names. It returns "" without asking when names is empty.
func (q *Questioner) DependencyUpdater(ctx context.Context, names []string, decisions models.Decisions) (string, error) {
	if len(names) == 0 {
		return "", nil
	}
	options := slices.Sorted(slices.Values(names))
	return q.asker(decisions).Select(ctx, models.QuestionDependencyUpdater, "Which dependency updater should be configured?", options, options[0])
}

func visibilityOptions() []string {
	vs := models.ValidVisibilities()
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = string(v)
	}
	return out
}
