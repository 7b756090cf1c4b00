package hermes

import (
	"time"

	"github.com/MikeSquared-Agency/wisdom/internal/wisdom"
)

// SubjectWisdomGenerated is published after every reflection, including
// placeholder ones.
const SubjectWisdomGenerated = "gratitude.wisdom.generated"

// WisdomGenerated is consumed by the streak and achievement services.
type WisdomGenerated struct {
	ReflectionID string   `json:"reflection_id"`
	EntryID      string   `json:"entry_id"`
	Language     string   `json:"language"`
	MasterIDs    []string `json:"master_ids"`
	Fallback     bool     `json:"fallback"`
	Timestamp    string   `json:"timestamp"`
}

func NewWisdomGenerated(ref *wisdom.Reflection) WisdomGenerated {
	ids := make([]string, 0, len(ref.Masters))
	for _, c := range ref.Masters {
		ids = append(ids, c.ID)
	}
	return WisdomGenerated{
		ReflectionID: ref.ID.String(),
		EntryID:      ref.EntryID,
		Language:     string(ref.Language),
		MasterIDs:    ids,
		Fallback:     ref.Fallback,
		Timestamp:    ref.CreatedAt.UTC().Format(time.RFC3339),
	}
}
