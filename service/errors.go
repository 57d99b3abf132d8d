package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrUnknownCalc      = errors.New("unknown calculator")
	ErrEmptyMessage     = errors.New("empty message")
	ErrAPIKeyMissing    = errors.New("api key missing")
	ErrCompletionFailed = errors.New("completion failed")
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidInput}, args...)...)
}
