package wisdom

import (
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/wisdom/internal/guard"
	"github.com/MikeSquared-Agency/wisdom/internal/masters"
)

// Entry is one answered daily gratitude prompt.
type Entry struct {
	ID       string `json:"entry_id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Language string `json:"language"` // locale tag, e.g. "en", "zh-CN"
}

// Reflection is the masters' commentary on an entry.
type Reflection struct {
	ID        uuid.UUID            `json:"id"`
	EntryID   string               `json:"entry_id"`
	Language  guard.Language       `json:"language"`
	Masters   []masters.Commentary `json:"masters"`
	Fallback  bool                 `json:"fallback"`
	CreatedAt time.Time            `json:"created_at"`
}

// Turn is a prior exchange in a follow-up conversation with one master.
type Turn struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// FollowupRequest asks a single master to continue the conversation.
type FollowupRequest struct {
	MasterID string `json:"master_id"`
	History  []Turn `json:"history"`
	Question string `json:"question"`
	Language string `json:"language"`
}

// llmReply is the JSON shape the model is asked to produce.
type llmReply struct {
	Masters []masters.Commentary `json:"masters"`
}
