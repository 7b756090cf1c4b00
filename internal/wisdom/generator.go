// Package wisdom turns gratitude journal entries into commentary from the
// four masters.
package wisdom

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/wisdom/internal/guard"
	"github.com/MikeSquared-Agency/wisdom/internal/llm"
	"github.com/MikeSquared-Agency/wisdom/internal/masters"
)

var (
	ErrEmptyEntry    = errors.New("entry answer is empty")
	ErrUnknownMaster = errors.New("unknown master")
	ErrNoText        = errors.New("reply contained no text")
)

const (
	reflectMaxTokens  = 1500
	followupMaxTokens = 400
)

type Generator struct {
	guard   *guard.Guard
	retries int
	logger  *slog.Logger
	now     func() time.Time
}

// New returns a Generator issuing at most retries corrective calls per
// request when the model answers in the wrong language.
func New(g *guard.Guard, retries int, logger *slog.Logger) *Generator {
	return &Generator{guard: g, retries: retries, logger: logger, now: time.Now}
}

// Reflect asks the masters to comment on entry.
func (g *Generator) Reflect(ctx context.Context, entry Entry) (*Reflection, error) {
	if strings.TrimSpace(entry.Answer) == "" {
		return nil, ErrEmptyEntry
	}
	lang := guard.ParseLanguage(entry.Language)

	instruction := languageInstructionEnglish
	if lang == guard.Chinese {
		instruction = languageInstructionChinese
	}
	params := llm.Params{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: fmt.Sprintf(reflectSystemPrompt, instruction)},
			{Role: llm.RoleUser, Content: fmt.Sprintf(reflectUserPrompt, entry.Question, entry.Answer)},
		},
		Options: llm.Options{ResponseFormat: llm.ResponseFormatJSON, MaxTokens: reflectMaxTokens},
	}

	g.logger.Info("generating reflection",
		"entry_id", entry.ID,
		"language", lang,
		"answer_len", len(entry.Answer),
	)

	result, err := g.guard.Invoke(ctx, params, lang, g.retries)
	if err != nil {
		return nil, fmt.Errorf("llm reflection: %w", err)
	}

	raw, ok := result.Text()
	if !ok {
		return nil, ErrNoText
	}

	var reply llmReply
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &reply); err != nil {
		g.logger.Error("failed to parse reflection response", "error", err, "raw", raw)
		return nil, fmt.Errorf("parse reflection: %w", err)
	}

	commentary := g.canonicalize(reply.Masters, lang)
	if len(commentary) == 0 {
		return nil, fmt.Errorf("parse reflection: no recognised masters in reply")
	}

	g.logger.Info("reflection complete",
		"entry_id", entry.ID,
		"masters", len(commentary),
	)

	return &Reflection{
		ID:        uuid.New(),
		EntryID:   entry.ID,
		Language:  lang,
		Masters:   commentary,
		CreatedAt: g.now().UTC(),
	}, nil
}

// canonicalize normalizes master IDs, drops unknown or duplicate masters and
// fills in missing display names.
func (g *Generator) canonicalize(raw []masters.Commentary, lang guard.Language) []masters.Commentary {
	seen := make(map[string]bool)
	out := make([]masters.Commentary, 0, len(raw))
	for _, c := range masters.NormalizeRecords(raw) {
		m, ok := masters.Lookup(c.ID)
		if !ok {
			g.logger.Warn("dropping commentary from unknown master", "id", c.ID)
			continue
		}
		if seen[c.ID] || strings.TrimSpace(c.Content) == "" {
			continue
		}
		seen[c.ID] = true
		if c.Name == "" {
			c.Name = m.DisplayName(lang == guard.Chinese)
		}
		out = append(out, c)
	}
	return out
}

// Followup continues a conversation with a single master.
func (g *Generator) Followup(ctx context.Context, req FollowupRequest) (string, error) {
	m, ok := masters.Lookup(masters.NormalizeID(req.MasterID))
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMaster, req.MasterID)
	}
	if strings.TrimSpace(req.Question) == "" {
		return "", ErrEmptyEntry
	}
	lang := guard.ParseLanguage(req.Language)

	instruction := followupLanguageEnglish
	if lang == guard.Chinese {
		instruction = followupLanguageChinese
	}
	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: fmt.Sprintf(followupSystemPrompt, m.Name, instruction)},
	}
	for _, t := range req.History {
		role := llm.RoleUser
		if t.Role == llm.RoleAssistant {
			role = llm.RoleAssistant
		}
		messages = append(messages, llm.Message{Role: role, Content: t.Content})
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: req.Question})

	g.logger.Info("master followup",
		"master", m.ID,
		"language", lang,
		"history", len(req.History),
	)

	result, err := g.guard.Invoke(ctx, llm.Params{
		Messages: messages,
		Options:  llm.Options{MaxTokens: followupMaxTokens},
	}, lang, g.retries)
	if err != nil {
		return "", fmt.Errorf("llm followup: %w", err)
	}

	text, ok := result.Text()
	if !ok {
		return "", ErrNoText
	}
	return strings.TrimSpace(text), nil
}

// stripCodeFence removes a surrounding ```json fence some models add even
// in JSON mode.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
