package backends

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const (
	defaultClaudeURL = "https://api.anthropic.com/v1/messages"
	claudeAPIVersion = "2023-06-01"
)

// Claude implements the Submitter interface for Anthropic's API.
type Claude struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewClaude creates a new Claude backend.
func NewClaude(model string) (*Claude, error) {
	key := os.Getenv("ANTHROPIC_API_KEY")
	if key == "" {
		return nil, &AuthError{Backend: "claude", Message: "ANTHROPIC_API_KEY environment variable is not set"}
	}
	baseURL := os.Getenv("PRECIS_CLAUDE_BASE_URL")
	if baseURL == "" {
		baseURL = defaultClaudeURL
	}
	return &Claude{
		apiKey:  key,
		model:   model,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 120 * time.Second},
	}, nil
}

func (c *Claude) Name() string { return "claude" }

func (c *Claude) SubmitPrompt(ctx context.Context, req Request) (Response, error) {
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = 8192
	}

	body := claudeRequest{
		Model:     c.model,
		MaxTokens: maxTokens,
		Messages: []claudeMessage{
			{Role: "user", Content: req.Prompt},
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return Response{}, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return Response{}, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("anthropic-version", claudeAPIVersion)

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return Response{}, &UnavailableError{Backend: c.Name(), Err: err}
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return Response{}, &UnavailableError{Backend: c.Name(), Err: err}
	}

	if httpResp.StatusCode == 401 || httpResp.StatusCode == 403 {
		return Response{}, &AuthError{Backend: c.Name(), Message: string(respBody)}
	}
	if httpResp.StatusCode != 200 {
		return Response{}, &UnavailableError{
			Backend: c.Name(),
			Err:     fmt.Errorf("API error (status %d): %s", httpResp.StatusCode, string(respBody)),
		}
	}

	var result claudeResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return Response{}, &UnavailableError{Backend: c.Name(), Err: fmt.Errorf("parsing response: %w", err)}
	}

	var content string
	for _, block := range result.Content {
		if block.Type == "text" {
			content += block.Text
		}
	}

	return Response{
		ReviewText: content,
		TokensUsed: result.Usage.InputTokens + result.Usage.OutputTokens,
	}, nil
}

type claudeRequest struct {
	Model     string          `json:"model"`
	MaxTokens int             `json:"max_tokens"`
	Messages  []claudeMessage `json:"messages"`
}

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type claudeResponse struct {
	Content []claudeBlock `json:"content"`
	Usage   claudeUsage   `json:"usage"`
}

type claudeBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type claudeUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}
