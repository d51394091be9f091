package game

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidRotation is returned for a rotation with an unknown axis or direction.
	ErrInvalidRotation = errors.New("game: invalid rotation")
	// ErrAlreadyStarted is returned by Start outside the Idle state.
	ErrAlreadyStarted = errors.New("game: already started")
	// ErrInvalidConfig wraps every configuration problem.
	ErrInvalidConfig = errors.New("game: invalid config")
)

// UnknownKeysError lists keys in a config file that do not map to any field.
type UnknownKeysError []string

func (e UnknownKeysError) Error() string {
	return "unknown config keys: [" + strings.Join(e, ", ") + "]"
}

func (e UnknownKeysError) Unwrap() error {
	return ErrInvalidConfig
}
