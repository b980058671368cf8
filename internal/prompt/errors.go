package prompt

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C) or declined
	// to submit.
	ErrAborted = errors.New("prompt: aborted")
	// ErrTooManyAttempts is returned when the form still fails validation
	// after the configured number of rounds.
	ErrTooManyAttempts = errors.New("prompt: too many invalid attempts")
)
