package hermes

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/wisdom/internal/guard"
	"github.com/MikeSquared-Agency/wisdom/internal/masters"
	"github.com/MikeSquared-Agency/wisdom/internal/wisdom"
)

func TestNewWisdomGenerated(t *testing.T) {
	id := uuid.New()
	ref := &wisdom.Reflection{
		ID:       id,
		EntryID:  "entry-42",
		Language: guard.Chinese,
		Masters: []masters.Commentary{
			{ID: masters.Buddha, Content: "..."},
			{ID: masters.Jesus, Content: "..."},
		},
		Fallback:  true,
		CreatedAt: time.Date(2026, 3, 1, 8, 30, 0, 0, time.UTC),
	}

	evt := NewWisdomGenerated(ref)

	if evt.ReflectionID != id.String() {
		t.Errorf("expected reflection_id %s, got %s", id, evt.ReflectionID)
	}
	if evt.Language != "zh" {
		t.Errorf("expected language zh, got %q", evt.Language)
	}
	if len(evt.MasterIDs) != 2 || evt.MasterIDs[0] != "buddha" || evt.MasterIDs[1] != "jesus" {
		t.Errorf("unexpected master ids: %v", evt.MasterIDs)
	}
	if !evt.Fallback {
		t.Error("expected fallback flag to carry over")
	}
	if evt.Timestamp != "2026-03-01T08:30:00Z" {
		t.Errorf("unexpected timestamp %q", evt.Timestamp)
	}
}

func TestWisdomGeneratedPayload(t *testing.T) {
	evt := WisdomGenerated{
		ReflectionID: "r-1",
		EntryID:      "e-1",
		Language:     "en",
		MasterIDs:    []string{"laozi"},
	}

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	for _, key := range []string{"reflection_id", "entry_id", "language", "master_ids", "fallback", "timestamp"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("expected key %q in payload", key)
		}
	}
}

func TestSubjectWisdomGeneratedConstant(t *testing.T) {
	if SubjectWisdomGenerated != "gratitude.wisdom.generated" {
		t.Errorf("unexpected subject %q", SubjectWisdomGenerated)
	}
}
