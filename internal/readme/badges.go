package readme

import (
	"fmt"

	"github.com/modu-ai/scaffold/pkg/models"
)

// Labels of the badges the scaffolder itself contributes.
const (
	LicenseBadgeLabel = "license"
	PRsBadgeLabel     = "PRs"
)

// PRsWelcomeBadge is added to the contribution group of public projects.
var PRsWelcomeBadge = models.Badge{
	Text: "PRs Welcome",
	Link: "http://makeapullrequest.com",
	Img:  "https://img.shields.io/badge/PRs-welcome-brightgreen.svg",
}

// MergeBadges builds the three README badge groups.
//
// Collaborator badges come first, in the order of in.Contributed, each
// keeping its own insertion order. The scaffolder's own badges follow: the
// license badge in the consumer group and, for public projects only, the
// PRs Welcome badge in the contribution group. A label supplied twice is
// reported as models.ErrBadgeCollision.
func MergeBadges(in Input) (*models.Badges, error) {
	merged := &models.Badges{
		Status:       &models.BadgeGroup{},
		Consumer:     &models.BadgeGroup{},
		Contribution: &models.BadgeGroup{},
	}

	for i, contributed := range in.Contributed {
		for _, name := range models.BadgeGroupNames() {
			if err := merged.Group(name).Merge(contributed.Group(name)); err != nil {
				return nil, fmt.Errorf("merge %s badges from contributor %d: %w", name, i, err)
			}
		}
	}

	if in.LicenseBadge != nil {
		if err := merged.Consumer.Add(LicenseBadgeLabel, *in.LicenseBadge); err != nil {
			return nil, fmt.Errorf("add license badge: %w", err)
		}
	}

	if in.Visibility == models.VisibilityPublic {
		if err := merged.Contribution.Add(PRsBadgeLabel, PRsWelcomeBadge); err != nil {
			return nil, fmt.Errorf("add PRs badge: %w", err)
		}
	}

	return merged, nil
}
