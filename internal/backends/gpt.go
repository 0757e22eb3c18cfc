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

const defaultGPTURL = "https://api.openai.com/v1/chat/completions"

// GPT implements the Submitter interface for OpenAI's API.
type GPT struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewGPT creates a new GPT backend.
func NewGPT(model string) (*GPT, error) {
	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		return nil, &AuthError{Backend: "gpt", Message: "OPENAI_API_KEY environment variable is not set"}
	}
	baseURL := os.Getenv("PRECIS_OPENAI_BASE_URL")
	if baseURL == "" {
		baseURL = defaultGPTURL
	}
	return &GPT{
		apiKey:  key,
		model:   model,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 120 * time.Second},
	}, nil
}

func (g *GPT) Name() string { return "gpt" }

func (g *GPT) SubmitPrompt(ctx context.Context, req Request) (Response, error) {
	return submitChatCompletion(ctx, g.client, g.baseURL, g.apiKey, g.model, g.Name(), req)
}

// submitChatCompletion posts a prompt to an OpenAI-compatible chat
// completions endpoint. Shared by the gpt and copilot backends.
func submitChatCompletion(ctx context.Context, client *http.Client, baseURL, apiKey, model, name string, req Request) (Response, error) {
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = 8192
	}

	body := chatRequest{
		Model:     model,
		MaxTokens: maxTokens,
		Messages: []chatMessage{
			{Role: "user", Content: req.Prompt},
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return Response{}, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", baseURL, bytes.NewReader(payload))
	if err != nil {
		return Response{}, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+apiKey)

	httpResp, err := client.Do(httpReq)
	if err != nil {
		return Response{}, &UnavailableError{Backend: name, Err: err}
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return Response{}, &UnavailableError{Backend: name, Err: err}
	}

	if httpResp.StatusCode == 401 || httpResp.StatusCode == 403 {
		return Response{}, &AuthError{Backend: name, Message: string(respBody)}
	}
	if httpResp.StatusCode != 200 {
		return Response{}, &UnavailableError{
			Backend: name,
			Err:     fmt.Errorf("API error (status %d): %s", httpResp.StatusCode, string(respBody)),
		}
	}

	var result chatResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return Response{}, &UnavailableError{Backend: name, Err: fmt.Errorf("parsing response: %w", err)}
	}

	if len(result.Choices) == 0 {
		return Response{}, &UnavailableError{Backend: name, Err: fmt.Errorf("no choices in response")}
	}

	return Response{
		ReviewText: result.Choices[0].Message.Content,
		TokensUsed: result.Usage.TotalTokens,
	}, nil
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
	Usage   chatUsage    `json:"usage"`
}

type chatChoice struct {
	Message chatMessage `json:"message"`
}

type chatUsage struct {
	TotalTokens int `json:"total_tokens"`
}
