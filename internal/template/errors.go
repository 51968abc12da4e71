// Package template renders and copies the embedded project templates:
// license texts, language skeleton files and static dotfiles.
package template

import "errors"

// Sentinel errors for template operations.
var (
	// ErrTemplateNotFound indicates the named template does not exist.
	ErrTemplateNotFound = errors.New("template: not found")

	// ErrMissingTemplateKey indicates the template referenced a key the data lacks.
	ErrMissingTemplateKey = errors.New("template: missing key")

	// ErrUnexpandedToken indicates a dynamic token survived rendering.
	ErrUnexpandedToken = errors.New("template: unexpanded token in output")

	// ErrPathTraversal indicates a destination escapes the project root.
	ErrPathTraversal = errors.New("template: path escapes project root")
)
