package backends

import (
	"context"
	"net/http"
	"os"
	"time"
)

const defaultCopilotURL = "https://models.github.ai/inference/chat/completions"

// Copilot implements the Submitter interface via the GitHub Models
// inference endpoint, which speaks the OpenAI chat completions dialect.
type Copilot struct {
	token   string
	model   string
	baseURL string
	client  *http.Client
}

// NewCopilot creates a new Copilot backend.
func NewCopilot(model string) (*Copilot, error) {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		return nil, &AuthError{Backend: "copilot", Message: "GITHUB_TOKEN environment variable is not set"}
	}
	baseURL := os.Getenv("PRECIS_COPILOT_BASE_URL")
	if baseURL == "" {
		baseURL = defaultCopilotURL
	}
	return &Copilot{
		token:   token,
		model:   model,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 120 * time.Second},
	}, nil
}

func (c *Copilot) Name() string { return "copilot" }

func (c *Copilot) SubmitPrompt(ctx context.Context, req Request) (Response, error) {
	return submitChatCompletion(ctx, c.client, c.baseURL, c.token, c.model, c.Name(), req)
}
