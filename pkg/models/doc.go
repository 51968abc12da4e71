// Package models provides shared data models and types for the scaffolder.
//
// This package contains the answers collected from the user, the decision
// store consulted before any prompt, and the partial results contributed by
// every scaffolding collaborator. None of the types here perform I/O.
//
// # Visibility
//
// A project is either public or private. Use [Visibility] and its constants:
//
//	v := models.VisibilityPublic
//	if v.IsValid() {
//	    fmt.Println("Valid visibility:", v)
//	}
//
// # Decisions
//
// [Decisions] is an immutable lookup of pre-supplied answers keyed by
// [Question]. It is passed explicitly into every prompting call:
//
//	d := models.NewDecisions(map[models.Question]string{
//	    models.QuestionProjectName: "demo",
//	})
//	name, ok := d.Lookup(models.QuestionProjectName) // "demo", true
//
// # Badges
//
// Badges are grouped into status, consumer and contribution groups. A
// [BadgeGroup] keeps insertion order, which is also display order, and
// rejects duplicate labels with [ErrBadgeCollision].
//
// # Partial Results
//
// Collaborators return optional partial results:
//   - [LanguageResult]: documentation, badges, ignore rules, next steps
//   - [LicenseResult]: the license consumer badge
//   - [VcsHostResult]: the remote origin and host next steps
//   - [GitResult]: next steps after local repository setup
//   - [UpdaterResult]: dependency-updater badges and next steps
//
// A nil pointer always means "no contribution", never "empty default".
package models
