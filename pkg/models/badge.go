package models

import (
	"errors"
	"fmt"
	"slices"
)

// ErrBadgeCollision indicates two contributors supplied a badge under the same label.
var ErrBadgeCollision = errors.New("badge label already defined")

// BadgeGroupName identifies one of the three README badge groups.
type BadgeGroupName string

const (
	BadgeGroupStatus       BadgeGroupName = "status"
	BadgeGroupConsumer     BadgeGroupName = "consumer"
	BadgeGroupContribution BadgeGroupName = "contribution"
)

// BadgeGroupNames returns the badge groups in document order.
func BadgeGroupNames() []BadgeGroupName {
	return []BadgeGroupName{BadgeGroupStatus, BadgeGroupConsumer, BadgeGroupContribution}
}

// Badge is a small status image, optionally wrapped in a link.
type Badge struct {
	Text string `yaml:"text" json:"text"`           // Alt text of the image.
	Link string `yaml:"link,omitempty" json:"link"` // Optional link target.
	Img  string `yaml:"img" json:"img"`             // Image URL.
}

// BadgeGroup is an ordered set of badges keyed by label.
// Insertion order is display order. The zero value is an empty group.
type BadgeGroup struct {
	keys   []string
	badges map[string]Badge
}

// NewBadgeGroup creates a group from label/badge pairs in the given order.
// It panics on a duplicate label; use Add for untrusted input.
func NewBadgeGroup(entries ...BadgeEntry) *BadgeGroup {
	g := &BadgeGroup{}
	for _, e := range entries {
		if err := g.Add(e.Label, e.Badge); err != nil {
			panic(err)
		}
	}
	return g
}

// BadgeEntry pairs a badge with its label for ordered construction.
type BadgeEntry struct {
	Label string
	Badge Badge
}

// Add appends a badge under label. It returns ErrBadgeCollision if the
// label is already present.
func (g *BadgeGroup) Add(label string, b Badge) error {
	if _, exists := g.badges[label]; exists {
		return fmt.Errorf("%w: %q", ErrBadgeCollision, label)
	}
	if g.badges == nil {
		g.badges = make(map[string]Badge)
	}
	g.keys = append(g.keys, label)
	g.badges[label] = b
	return nil
}

// Get returns the badge stored under label.
func (g *BadgeGroup) Get(label string) (Badge, bool) {
	if g == nil {
		return Badge{}, false
	}
	b, ok := g.badges[label]
	return b, ok
}

// Labels returns the labels in insertion order.
func (g *BadgeGroup) Labels() []string {
	if g == nil {
		return nil
	}
	return slices.Clone(g.keys)
}

// Len returns the number of badges in the group.
func (g *BadgeGroup) Len() int {
	if g == nil {
		return 0
	}
	return len(g.keys)
}

// Entries returns the badges with their labels in insertion order.
func (g *BadgeGroup) Entries() []BadgeEntry {
	if g == nil {
		return nil
	}
	entries := make([]BadgeEntry, 0, len(g.keys))
	for _, k := range g.keys {
		entries = append(entries, BadgeEntry{Label: k, Badge: g.badges[k]})
	}
	return entries
}

// Merge appends every badge of other after the badges already in g,
// preserving other's order. The first colliding label aborts the merge
// with ErrBadgeCollision and leaves g unchanged.
func (g *BadgeGroup) Merge(other *BadgeGroup) error {
	for _, label := range other.Labels() {
		if _, exists := g.badges[label]; exists {
			return fmt.Errorf("%w: %q", ErrBadgeCollision, label)
		}
	}
	for _, e := range other.Entries() {
		if err := g.Add(e.Label, e.Badge); err != nil {
			return err
		}
	}
	return nil
}

// Badges holds the three badge groups a collaborator may contribute to.
// Any group may be nil.
type Badges struct {
	Status       *BadgeGroup
	Consumer     *BadgeGroup
	Contribution *BadgeGroup
}

// Group returns the group with the given name.
func (b *Badges) Group(name BadgeGroupName) *BadgeGroup {
	if b == nil {
		return nil
	}
	switch name {
	case BadgeGroupStatus:
		return b.Status
	case BadgeGroupConsumer:
		return b.Consumer
	case BadgeGroupContribution:
		return b.Contribution
	}
	return nil
}
