package timetable

import "errors"

var (
	// ErrInvalidArgument reports input the engine cannot work with, such as a
	// time string that does not parse even after normalisation.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrPreconditionViolation reports a call whose caller-side precondition
	// does not hold, e.g. comparing fewer than two students.
	ErrPreconditionViolation = errors.New("precondition violation")
)
