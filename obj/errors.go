package obj

import "errors"

var (
	// ErrTypeMismatch is returned when a geometric operation receives a
	// vector that is not a real point (NaN or infinite component).
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrInvalidArgument is returned when an actor or level query receives
	// an argument it cannot work with, such as a nil actor.
	ErrInvalidArgument = errors.New("invalid argument")
)
