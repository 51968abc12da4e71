package models

// Visibility defines whether the scaffolded project is public or private.
type Visibility string

const (
	// VisibilityPublic marks a project open to outside contributions.
	VisibilityPublic Visibility = "Public"

	// VisibilityPrivate marks a project restricted to its owners.
	VisibilityPrivate Visibility = "Private"
)

// ValidVisibilities returns all valid visibility values in prompt order.
func ValidVisibilities() []Visibility {
	return []Visibility{VisibilityPublic, VisibilityPrivate}
}

// IsValid checks if the visibility is a valid value.
func (v Visibility) IsValid() bool {
	switch v {
	case VisibilityPublic, VisibilityPrivate:
		return true
	}
	return false
}
