package llm

import (
	"context"
	"testing"
)

func TestText(t *testing.T) {
	tests := []struct {
		name    string
		content Content
		want    string
		ok      bool
	}{
		{name: "plain text", content: PlainText("hello"), want: "hello", ok: true},
		{name: "empty plain text", content: PlainText(""), want: "", ok: true},
		{
			name: "text parts joined",
			content: PartList{
				{Type: "text", Text: "first"},
				{Type: "image_url"},
				{Type: "text", Text: "second"},
			},
			want: "first\nsecond",
			ok:   true,
		},
		{name: "tool call only", content: PartList{{Type: "tool_use"}}, ok: false},
		{name: "empty part list", content: PartList{}, ok: false},
		{name: "nil content", content: nil, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Text(tt.content)
			if ok != tt.ok {
				t.Fatalf("Text() ok = %v, want %v", ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResultText(t *testing.T) {
	var nilResult *Result
	if _, ok := nilResult.Text(); ok {
		t.Error("expected no text from nil result")
	}
	if _, ok := (&Result{}).Text(); ok {
		t.Error("expected no text from result without choices")
	}

	text, ok := TextResult("wisdom").Text()
	if !ok || text != "wisdom" {
		t.Errorf("expected 'wisdom', got %q (ok=%v)", text, ok)
	}
}

func TestInvokerFunc(t *testing.T) {
	var got Params
	inv := InvokerFunc(func(_ context.Context, p Params) (*Result, error) {
		got = p
		return TextResult("ok"), nil
	})

	params := Params{Messages: []Message{{Role: RoleUser, Content: "hi"}}}
	if _, err := inv.Invoke(context.Background(), params); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Messages) != 1 || got.Messages[0].Content != "hi" {
		t.Errorf("unexpected params passed through: %+v", got)
	}
}
