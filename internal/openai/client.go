// Package openai adapts any OpenAI-compatible chat completion endpoint to
// llm.Invoker.
package openai

import (
	"context"
	"fmt"

	oai "github.com/sashabaranov/go-openai"

	"github.com/MikeSquared-Agency/wisdom/internal/llm"
)

const defaultBaseURL = "https://api.openai.com/v1"

type Client struct {
	client *oai.Client
	model  string
}

// NewClient builds a client for apiKey. An empty baseURL uses the public
// OpenAI endpoint.
func NewClient(apiKey, baseURL, model string) *Client {
	cfg := oai.DefaultConfig(apiKey)
	if baseURL != "" && baseURL != defaultBaseURL {
		cfg.BaseURL = baseURL
	}
	return &Client{
		client: oai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// Invoke performs one chat completion. Replies carrying plain content map to
// llm.PlainText; multi-part or tool-call-only replies map to llm.PartList.
func (c *Client) Invoke(ctx context.Context, params llm.Params) (*llm.Result, error) {
	resp, err := c.client.CreateChatCompletion(ctx, c.buildRequest(params))
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("chat completion returned no choices")
	}

	result := &llm.Result{
		ID:      resp.ID,
		Model:   resp.Model,
		Choices: make([]llm.Choice, 0, len(resp.Choices)),
	}
	for _, ch := range resp.Choices {
		result.Choices = append(result.Choices, llm.Choice{
			Message: llm.ChoiceMessage{
				Role:    ch.Message.Role,
				Content: toContent(ch.Message),
			},
			FinishReason: string(ch.FinishReason),
		})
	}
	return result, nil
}

func (c *Client) buildRequest(params llm.Params) oai.ChatCompletionRequest {
	messages := make([]oai.ChatCompletionMessage, 0, len(params.Messages))
	for _, m := range params.Messages {
		messages = append(messages, oai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	opts := params.Options
	req := oai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   opts.MaxTokens,
		Temperature: opts.Temperature,
	}
	if opts.Model != "" {
		req.Model = opts.Model
	}
	if opts.ResponseFormat == llm.ResponseFormatJSON {
		req.ResponseFormat = &oai.ChatCompletionResponseFormat{
			Type: oai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}
	return req
}

func toContent(m oai.ChatCompletionMessage) llm.Content {
	if len(m.MultiContent) > 0 {
		parts := make(llm.PartList, 0, len(m.MultiContent))
		for _, p := range m.MultiContent {
			parts = append(parts, llm.Part{Type: string(p.Type), Text: p.Text})
		}
		return parts
	}
	if m.Content == "" && len(m.ToolCalls) > 0 {
		parts := make(llm.PartList, 0, len(m.ToolCalls))
		for _, tc := range m.ToolCalls {
			parts = append(parts, llm.Part{Type: string(tc.Type)})
		}
		return parts
	}
	return llm.PlainText(m.Content)
}
