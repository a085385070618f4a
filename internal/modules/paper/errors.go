package paper

import "errors"

var (
	ErrPaperNotFound    = errors.New("paper not found")
	ErrInvalidDomain    = errors.New("unknown research domain")
	ErrInvalidType      = errors.New("unknown publication type")
	ErrAuthorCount      = errors.New("papers must list between 1 and 6 authors")
	ErrInvalidAuthors   = errors.New("author entries are invalid")
	ErrNotResubmittable = errors.New("paper is not awaiting revision")
	ErrVersionConflict  = errors.New("paper was modified concurrently")
)
