// Package llm defines the provider-agnostic chat completion shapes shared by
// the LLM adapters and everything that consumes their output.
package llm

import (
	"context"
	"strings"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// PartTypeText marks a content part that carries plain text.
const PartTypeText = "text"

// ResponseFormatJSON asks the provider for a JSON object reply.
const ResponseFormatJSON = "json_object"

// Content is either PlainText or PartList.
type Content interface {
	isContent()
}

// PlainText is content returned as a single string.
type PlainText string

// Part is one typed element of a PartList. Only text parts carry Text;
// other types (tool_use, image_url, ...) are opaque here.
type Part struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// PartList is content returned as an ordered list of typed parts.
type PartList []Part

func (PlainText) isContent() {}
func (PartList) isContent()  {}

// Message is a single role-tagged chat entry.
type Message struct {
	Role    string
	Content string
}

// Options are passed through to the provider untouched.
type Options struct {
	Model          string
	MaxTokens      int
	Temperature    float32
	ResponseFormat string
}

// Params is the full input of one invocation.
type Params struct {
	Messages []Message
	Options  Options
}

// ChoiceMessage is the assistant message of a single choice.
type ChoiceMessage struct {
	Role    string
	Content Content
}

type Choice struct {
	Message      ChoiceMessage
	FinishReason string
}

// Result is what an Invoker returns.
type Result struct {
	ID      string
	Model   string
	Choices []Choice
}

// Text extracts plain text from the first choice.
func (r *Result) Text() (string, bool) {
	if r == nil || len(r.Choices) == 0 {
		return "", false
	}
	return Text(r.Choices[0].Message.Content)
}

// Text extracts the textual payload of c. A PartList yields its text parts
// joined by newlines; a list without text parts, or nil content, has no text.
func Text(c Content) (string, bool) {
	switch v := c.(type) {
	case PlainText:
		return string(v), true
	case PartList:
		var texts []string
		for _, p := range v {
			if p.Type == PartTypeText {
				texts = append(texts, p.Text)
			}
		}
		if len(texts) == 0 {
			return "", false
		}
		return strings.Join(texts, "\n"), true
	default:
		return "", false
	}
}

// Invoker performs a single chat completion.
type Invoker interface {
	Invoke(ctx context.Context, params Params) (*Result, error)
}

// InvokerFunc adapts a function to the Invoker interface.
type InvokerFunc func(ctx context.Context, params Params) (*Result, error)

func (f InvokerFunc) Invoke(ctx context.Context, params Params) (*Result, error) {
	return f(ctx, params)
}

// TextResult builds a single-choice result holding plain text.
func TextResult(text string) *Result {
	return &Result{Choices: []Choice{{
		Message:      ChoiceMessage{Role: RoleAssistant, Content: PlainText(text)},
		FinishReason: "stop",
	}}}
}
