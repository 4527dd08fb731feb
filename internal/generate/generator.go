package generate

import (
	"context"
	"errors"
)

// ErrGeneration is the single outcome every external-call failure mode
// normalizes to: network error, non-2xx status, malformed payload shape,
// or an inner payload that is not a valid task array. Callers match it
// with errors.Is and show a generic retryable message; local task state
// is left untouched.
var ErrGeneration = errors.New("task generation failed")

// Request describes one generation call.
type Request struct {
	FocusAreas    []string
	Difficulty    string
	TimeAvailable string
	Arc           string
	AvatarName    string
}

// Generator produces daily task titles. The core never sees a vendor's
// request/response shape, only this interface.
type Generator interface {
	GenerateTasks(ctx context.Context, req Request) ([]string, error)
}
