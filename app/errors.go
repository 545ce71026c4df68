package app

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrStartupFailure matches every error returned by New.
	ErrStartupFailure = errors.New("startup failure")
	ErrDestroyed      = errors.New("application already destroyed")
)

// StartupError names the construction step that failed.
type StartupError struct {
	Step string
	Err  error
}

func (e *StartupError) Error() string {
	return fmt.Sprintf("startup failed at %s: %v", e.Step, e.Err)
}

func (e *StartupError) Unwrap() error {
	return e.Err
}

func (e *StartupError) Is(target error) bool {
	return target == ErrStartupFailure
}
