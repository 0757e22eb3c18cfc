package backends

import (
	"context"
	"fmt"
)

// Request carries an assembled prompt to a backend.
type Request struct {
	Prompt    string
	MaxTokens int
}

// Response is the opaque review text returned by a backend. The core does
// not interpret it.
type Response struct {
	ReviewText string
	TokensUsed int
}

// Submitter is the backend abstraction interface.
type Submitter interface {
	SubmitPrompt(ctx context.Context, req Request) (Response, error)
	Name() string
}

// UnsupportedProviderError indicates an unknown provider name was requested.
type UnsupportedProviderError struct {
	Name string
}

func (e *UnsupportedProviderError) Error() string {
	return fmt.Sprintf("unsupported provider: %s", e.Name)
}

// AuthError indicates the backend rejected our credentials.
type AuthError struct {
	Backend string
	Message string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s authentication error: %s", e.Backend, e.Message)
}

// IsAuthError checks if an error is an authentication error.
func IsAuthError(err error) bool {
	_, ok := err.(*AuthError)
	return ok
}

// UnavailableError indicates the backend could not produce a review. The
// prompt artifact is already safe on disk when this surfaces; submission is
// not retried.
type UnavailableError struct {
	Backend string
	Err     error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("%s backend unavailable: %v", e.Backend, e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// New creates a backend by provider name.
func New(provider, model string) (Submitter, error) {
	switch provider {
	case "claude", "anthropic":
		return NewClaude(model)
	case "gpt", "openai":
		return NewGPT(model)
	case "copilot":
		return NewCopilot(model)
	case "placeholder":
		return NewPlaceholder(), nil
	default:
		return nil, &UnsupportedProviderError{Name: provider}
	}
}
