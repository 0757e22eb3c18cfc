package backends

import "context"

const placeholderReview = `(placeholder backend — no AI review was performed)

The assembled prompt was accepted. Configure a real provider with
"precis config set provider claude|gpt|copilot" to receive a review.`

// Placeholder implements the Submitter interface without calling any
// external service. It accepts every prompt and returns a stub review, so
// the rest of the pipeline can be exercised without credentials.
type Placeholder struct{}

// NewPlaceholder creates a new placeholder backend.
func NewPlaceholder() *Placeholder { return &Placeholder{} }

func (p *Placeholder) Name() string { return "placeholder" }

func (p *Placeholder) SubmitPrompt(ctx context.Context, req Request) (Response, error) {
	return Response{ReviewText: placeholderReview}, nil
}
