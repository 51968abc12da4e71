// Package readme assembles the project README from the project answers and
// the documentation and badges contributed by collaborators.
//
// The document has a fixed shape: a level-1 title, the description, the
// status badge zone, then "Table of Contents", "Usage" and "Contributing"
// sections. Badge zones are delimited by HTML comment markers so they can be
// regenerated independently (see ReplaceZone). Badge images and links are
// written as reference-style markdown with the definitions collected at the
// end of the document.
package readme

import (
	"fmt"
	"strings"

	"github.com/modu-ai/scaffold/pkg/models"
)

// FileName is the README file written into the project root.
const FileName = "README.md"

// Section headings.
const (
	HeadingTOC          = "Table of Contents"
	HeadingUsage        = "Usage"
	HeadingContributing = "Contributing"
)

// Input holds everything the README is assembled from.
type Input struct {
	ProjectName   string
	Description   string
	Visibility    models.Visibility
	Documentation *models.Documentation // nil when no language contributed documentation.

	// Contributed holds collaborator badge groups in merge order.
	// Nil entries are skipped.
	Contributed []*models.Badges

	// LicenseBadge is the license's consumer badge, if any.
	LicenseBadge *models.Badge
}

// definition is a reference-style link definition.
type definition struct {
	label string
	url   string
}

// @MX:ANCHOR: [AUTO] Assemble produces the README body; the same input always yields the same bytes.
// @MX:REASON: [AUTO] fan_in=3, called from Writer.Write, the orchestrator tests and the readme tests
// Assemble builds the README markdown for in.
// Sections with no documentation text keep their heading and have no body.
func Assemble(in Input) ([]byte, error) {
	badges, err := MergeBadges(in)
	if err != nil {
		return nil, err
	}

	var doc []byte
	doc = append(doc, skeleton(in)...)

	var defs []definition
	for _, group := range models.BadgeGroupNames() {
		body, groupDefs := renderGroup(badges.Group(group))
		doc, err = ReplaceZone(doc, group, body)
		if err != nil {
			return nil, fmt.Errorf("fill %s zone: %w", group, err)
		}
		defs = append(defs, groupDefs...)
	}

	defs, err = dedupeDefinitions(defs)
	if err != nil {
		return nil, err
	}
	if len(defs) > 0 {
		var b strings.Builder
		b.WriteString("\n")
		for _, d := range defs {
			fmt.Fprintf(&b, "[%s]: %s\n", d.label, formatDestination(d.url))
		}
		doc = append(doc, b.String()...)
	}

	return doc, nil
}

// skeleton renders the document with every badge zone empty.
func skeleton(in Input) string {
	var doc models.Documentation
	if in.Documentation != nil {
		doc = *in.Documentation
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", in.ProjectName)
	writeParagraph(&b, in.Description)
	b.WriteString(emptyZone(models.BadgeGroupStatus) + "\n\n")

	fmt.Fprintf(&b, "## %s\n\n", HeadingTOC)
	writeParagraph(&b, doc.Toc)

	fmt.Fprintf(&b, "## %s\n\n", HeadingUsage)
	b.WriteString(emptyZone(models.BadgeGroupConsumer) + "\n\n")
	writeParagraph(&b, doc.Usage)

	fmt.Fprintf(&b, "## %s\n\n", HeadingContributing)
	b.WriteString(emptyZone(models.BadgeGroupContribution) + "\n\n")
	writeParagraph(&b, doc.Contributing)

	return strings.TrimRight(b.String(), "\n") + "\n"
}

// writeParagraph writes text followed by a blank line; empty text writes nothing.
func writeParagraph(b *strings.Builder, text string) {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return
	}
	b.WriteString(text)
	b.WriteString("\n\n")
}

// renderGroup renders the badges of a group, one per line, and returns the
// reference definitions they need.
func renderGroup(g *models.BadgeGroup) (string, []definition) {
	var lines []string
	var defs []definition

	for _, e := range g.Entries() {
		imgLabel := e.Label + "-badge"
		image := fmt.Sprintf("![%s][%s]", escapeText(e.Badge.Text), imgLabel)

		if e.Badge.Link != "" {
			linkLabel := e.Label + "-link"
			lines = append(lines, fmt.Sprintf("[%s][%s]", image, linkLabel))
			defs = append(defs, definition{label: linkLabel, url: e.Badge.Link})
		} else {
			lines = append(lines, image)
		}
		defs = append(defs, definition{label: imgLabel, url: e.Badge.Img})
	}

	return strings.Join(lines, "\n"), defs
}

// dedupeDefinitions drops repeated identical definitions and rejects labels
// that would resolve to two different URLs. Labels match case-insensitively,
// as in CommonMark.
func dedupeDefinitions(defs []definition) ([]definition, error) {
	seen := make(map[string]string, len(defs))
	out := defs[:0:0]
	for _, d := range defs {
		key := strings.ToLower(d.label)
		if url, ok := seen[key]; ok {
			if url != d.url {
				return nil, fmt.Errorf("%w: reference %q", models.ErrBadgeCollision, d.label)
			}
			continue
		}
		seen[key] = d.url
		out = append(out, d)
	}
	return out, nil
}

// escapeText escapes characters that would end an image's alt text early.
func escapeText(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `[`, `\[`, `]`, `\]`)
	return r.Replace(s)
}

// formatDestination wraps URLs that contain spaces in angle brackets.
func formatDestination(url string) string {
	if strings.ContainsAny(url, " \t") {
		return "<" + url + ">"
	}
	return url
}
