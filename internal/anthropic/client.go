package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/MikeSquared-Agency/wisdom/internal/llm"
)

const (
	defaultAPIURL    = "https://api.anthropic.com/v1/messages"
	defaultMaxTokens = 1024
)

type Client struct {
	apiKey string
	model  string
	apiURL string
	client *http.Client
}

func NewClient(apiKey, model string) *Client {
	return &Client{
		apiKey: apiKey,
		model:  model,
		apiURL: defaultAPIURL,
		client: &http.Client{Timeout: 120 * time.Second},
	}
}

// SetTestTransport points the client at a test server.
func (c *Client) SetTestTransport(baseURL string) {
	c.apiURL = strings.TrimRight(baseURL, "/") + "/v1/messages"
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type request struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	System      string    `json:"system,omitempty"`
	Temperature *float32  `json:"temperature,omitempty"`
	Messages    []message `json:"messages"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

type response struct {
	ID         string         `json:"id"`
	Model      string         `json:"model"`
	Content    []contentBlock `json:"content"`
	StopReason string         `json:"stop_reason"`
	Usage      struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

type errorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Invoke sends the conversation to the Messages API. System messages are
// joined, in order, into the top-level system prompt since the API does not
// accept them inline. The reply's content blocks become a llm.PartList.
func (c *Client) Invoke(ctx context.Context, params llm.Params) (*llm.Result, error) {
	reqBody := c.buildRequest(params)

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api call: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error.Type != "" {
			return nil, fmt.Errorf("api error %d: %s: %s", resp.StatusCode, errResp.Error.Type, errResp.Error.Message)
		}
		return nil, fmt.Errorf("api error %d: %s", resp.StatusCode, string(respBody))
	}

	var apiResp response
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	if len(apiResp.Content) == 0 {
		return nil, fmt.Errorf("empty response content")
	}

	parts := make(llm.PartList, 0, len(apiResp.Content))
	for _, block := range apiResp.Content {
		parts = append(parts, llm.Part{Type: block.Type, Text: block.Text})
	}

	return &llm.Result{
		ID:    apiResp.ID,
		Model: apiResp.Model,
		Choices: []llm.Choice{{
			Message:      llm.ChoiceMessage{Role: llm.RoleAssistant, Content: parts},
			FinishReason: apiResp.StopReason,
		}},
	}, nil
}

func (c *Client) buildRequest(params llm.Params) request {
	var system []string
	var messages []message
	for _, m := range params.Messages {
		if m.Role == llm.RoleSystem {
			system = append(system, m.Content)
			continue
		}
		messages = append(messages, message{Role: m.Role, Content: m.Content})
	}

	opts := params.Options
	if opts.ResponseFormat == llm.ResponseFormatJSON {
		system = append(system, "Respond with a single valid JSON object and nothing else.")
	}

	req := request{
		Model:     c.model,
		MaxTokens: defaultMaxTokens,
		System:    strings.Join(system, "\n\n"),
		Messages:  messages,
	}
	if opts.Model != "" {
		req.Model = opts.Model
	}
	if opts.MaxTokens > 0 {
		req.MaxTokens = opts.MaxTokens
	}
	if opts.Temperature > 0 {
		t := opts.Temperature
		req.Temperature = &t
	}
	return req
}
