package content

import (
	"fmt"
)

// ===============================
// Domain Errors
// ===============================

// NotFoundError signals that a required document of the given entity type
// does not exist. It carries the entity type so callers can report what
// was being looked up.
type NotFoundError struct {
	Entity string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

func ErrNotFound(entity string) error {
	return NotFoundError{Entity: entity}
}

// MultipleResultsError signals that a singleton lookup matched more than
// one published document. The zero-result and many-result cases are kept
// distinct so misconfigured content is not reported as missing content.
type MultipleResultsError struct {
	Entity string
	Count  int64
}

func (e MultipleResultsError) Error() string {
	return fmt.Sprintf("expected a single %s document, found %d", e.Entity, e.Count)
}

// EmptySectionsError is raised when a page has no authored sections.
// Missing authoring data is a configuration fault, not a renderable state.
type EmptySectionsError struct {
	PageTitle string
}

func (e EmptySectionsError) Error() string {
	return fmt.Sprintf("page %q has no sections", e.PageTitle)
}
