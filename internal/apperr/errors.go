package apperr

import "errors"

var (
	// ErrStructure marks a malformed document: a node that has no valid
	// container to attach to.
	ErrStructure = errors.New("document structure error")

	// ErrPlaceholder marks a template whose placeholders cannot be
	// resolved in the current context.
	ErrPlaceholder = errors.New("unresolved placeholders")
)
