package nems

import "errors"

// Domain errors for configuration assembly.
var (
	// ErrUnknownRole indicates a connection or lookup referenced a role
	// with no registered entry.
	ErrUnknownRole = errors.New("nemsgen: role not registered")

	// ErrInvalid indicates structurally invalid input (bad petlist bounds,
	// non-positive interval, empty system at assembly time).
	ErrInvalid = errors.New("nemsgen: invalid configuration")

	// ErrExists indicates an output path already exists and overwrite was
	// not requested.
	ErrExists = errors.New("nemsgen: file already exists")
)
