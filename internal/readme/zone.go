package readme

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/modu-ai/scaffold/pkg/models"
)

// ErrZoneNotFound indicates a document lacks the start or end marker of a badge zone.
var ErrZoneNotFound = errors.New("readme: badge zone not found")

// ZoneName returns the marker name of a badge group's zone, e.g. "status-badges".
func ZoneName(group models.BadgeGroupName) string {
	return string(group) + "-badges"
}

func zoneStart(group models.BadgeGroupName) string {
	return "<!--" + ZoneName(group) + " start -->"
}

func zoneEnd(group models.BadgeGroupName) string {
	return "<!--" + ZoneName(group) + " end -->"
}

// emptyZone renders a zone with no content.
func emptyZone(group models.BadgeGroupName) string {
	return zoneStart(group) + "\n\n" + zoneEnd(group)
}

// ReplaceZone replaces the content between the start and end markers of
// group's zone with body. Everything outside the zone is preserved byte for
// byte, so a zone can be regenerated without disturbing surrounding prose.
func ReplaceZone(doc []byte, group models.BadgeGroupName, body string) ([]byte, error) {
	start := []byte(zoneStart(group))
	end := []byte(zoneEnd(group))

	startIdx := bytes.Index(doc, start)
	if startIdx < 0 {
		return nil, fmt.Errorf("%w: missing %s", ErrZoneNotFound, start)
	}
	contentIdx := startIdx + len(start)
	endRel := bytes.Index(doc[contentIdx:], end)
	if endRel < 0 {
		return nil, fmt.Errorf("%w: missing %s", ErrZoneNotFound, end)
	}
	endIdx := contentIdx + endRel

	var inner string
	if body == "" {
		inner = "\n\n"
	} else {
		inner = "\n\n" + body + "\n\n"
	}

	out := make([]byte, 0, len(doc)+len(inner))
	out = append(out, doc[:contentIdx]...)
	out = append(out, inner...)
	out = append(out, doc[endIdx:]...)
	return out, nil
}
