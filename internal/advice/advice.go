// Package advice wraps the external generative model that answers
// financial questions for the AI assistant screen.
package advice

import (
	"context"
	"errors"
)

// Advisor produces a short piece of financial advice for a free-text prompt.
type Advisor interface {
	Advise(ctx context.Context, prompt string) (string, error)
}

var (
	ErrUpstream      = errors.New("the advice service could not answer your request")
	ErrNotConfigured = errors.New("the advice service is not configured")
)

// promptSuffix is appended to every prompt before it is sent upstream. It
// pins the tone and length of the answers independently of what users type.
const promptSuffix = ". Ensure the response is respectful and recognizes gender inequity and barriers for females regarding financial literacy. 100 words or less"
