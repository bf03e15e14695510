package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for common failures.
var (
	ErrInvalidContent   = errors.New("invalid portfolio content")
	ErrDuplicateProject = errors.New("duplicate project id")
	ErrUnknownSection   = errors.New("unknown section")
)
