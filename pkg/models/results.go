package models

// BaseAnswers holds the answers every project needs, regardless of language.
type BaseAnswers struct {
	ProjectName     string
	License         string // SPDX identifier; empty when the project stays unlicensed.
	Visibility      Visibility
	Description     string
	GitRepo         bool // Whether a git repository should be initialized.
	CopyrightYear   string
	CopyrightHolder string
}

// Copyright returns the copyright details collected with the base answers.
func (a *BaseAnswers) Copyright() Copyright {
	return Copyright{Year: a.CopyrightYear, Holder: a.CopyrightHolder}
}

// Copyright identifies the year and holder printed in a license.
type Copyright struct {
	Year   string
	Holder string
}

// LanguageAnswers holds the language chosen for the project.
// An empty Language means no language plugin applies.
type LanguageAnswers struct {
	Language string
}

// Task is a user-facing follow-up surfaced at the end of a run.
type Task struct {
	Summary     string `yaml:"summary" json:"summary"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Documentation holds README section text contributed by a language plugin.
// Empty strings mean the section has no body.
type Documentation struct {
	Toc          string
	Usage        string
	Contributing string
}

// VcsIgnore lists paths the language wants excluded from version control.
type VcsIgnore struct {
	Directories []string
	Files       []string
}

// ProjectDetails holds language-derived metadata used by the VCS host.
type ProjectDetails struct {
	Homepage string
}

// LanguageResult is the partial result of a language plugin.
// Every field is optional; nil or empty means "no contribution".
type LanguageResult struct {
	NextSteps           []Task
	Documentation       *Documentation
	Badges              *Badges
	VcsIgnore           *VcsIgnore
	VerificationCommand string
	ProjectDetails      *ProjectDetails
}

// Homepage returns the project homepage, or "" when none was contributed.
func (r *LanguageResult) Homepage() string {
	if r == nil || r.ProjectDetails == nil {
		return ""
	}
	return r.ProjectDetails.Homepage
}

// LicenseBadges holds the badges a license can contribute.
type LicenseBadges struct {
	Consumer *Badge
}

// LicenseResult is the partial result of the license scaffolder.
type LicenseResult struct {
	Badges LicenseBadges
}

// VcsContext describes the local repository and where it will be hosted.
// A nil *VcsContext means the user declined version control.
type VcsContext struct {
	Host  string // Name of the chosen VCS host plugin, or "Other".
	Owner string
	Name  string
}

// Origin describes the remote a local repository should track.
type Origin struct {
	SSHURL string
}

// VcsHostResult is the partial result of a VCS host plugin.
type VcsHostResult struct {
	NextSteps []Task
	Origin    *Origin
}

// GitResult is the partial result of the git scaffolder.
type GitResult struct {
	NextSteps []Task
}

// UpdaterResult is the partial result of a dependency updater.
type UpdaterResult struct {
	Badges    *Badges
	NextSteps []Task
}
