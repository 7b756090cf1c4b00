package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/wisdom/internal/guard"
	"github.com/MikeSquared-Agency/wisdom/internal/hermes"
	"github.com/MikeSquared-Agency/wisdom/internal/masters"
	"github.com/MikeSquared-Agency/wisdom/internal/store"
	"github.com/MikeSquared-Agency/wisdom/internal/wisdom"
)

// createReflection handles POST /api/v1/wisdom. When the model fails the
// response still succeeds with placeholder commentary marked as fallback.
func (s *Server) createReflection(w http.ResponseWriter, r *http.Request) {
	var entry wisdom.Entry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	ref, err := s.deps.Reflector.Reflect(r.Context(), entry)
	switch {
	case errors.Is(err, wisdom.ErrEmptyEntry):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		s.logger.Warn("reflection failed, serving placeholder", "entry_id", entry.ID, "error", err)
		ref = wisdom.Placeholder(entry.ID, guard.ParseLanguage(entry.Language))
	}

	if s.deps.Store != nil {
		if err := s.deps.Store.SaveReflection(r.Context(), ref); err != nil {
			s.logger.Error("failed to persist reflection", "reflection_id", ref.ID, "error", err)
		}
	}
	if s.deps.Events != nil {
		if err := s.deps.Events.Publish(hermes.SubjectWisdomGenerated, hermes.NewWisdomGenerated(ref)); err != nil {
			s.logger.Warn("failed to publish wisdom event", "reflection_id", ref.ID, "error", err)
		}
	}

	writeJSON(w, http.StatusOK, ref)
}

// getReflection handles GET /api/v1/wisdom/{id}.
func (s *Server) getReflection(w http.ResponseWriter, r *http.Request) {
	if s.deps.Store == nil {
		writeError(w, http.StatusNotFound, "persistence disabled")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid reflection id")
		return
	}

	ref, err := s.deps.Store.GetReflection(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "reflection not found")
		return
	}
	if err != nil {
		s.logger.Error("failed to load reflection", "reflection_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load reflection")
		return
	}
	writeJSON(w, http.StatusOK, ref)
}

type followupResponse struct {
	MasterID string `json:"master_id"`
	Reply    string `json:"reply"`
}

// followup handles POST /api/v1/wisdom/followup.
func (s *Server) followup(w http.ResponseWriter, r *http.Request) {
	var req wisdom.FollowupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	reply, err := s.deps.Reflector.Followup(r.Context(), req)
	switch {
	case errors.Is(err, wisdom.ErrUnknownMaster), errors.Is(err, wisdom.ErrEmptyEntry):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		s.logger.Error("followup failed", "master", req.MasterID, "error", err)
		writeError(w, http.StatusBadGateway, "the master is unavailable, try again later")
		return
	}

	writeJSON(w, http.StatusOK, followupResponse{
		MasterID: masters.NormalizeID(req.MasterID),
		Reply:    reply,
	})
}

func (s *Server) listMasters(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"masters": masters.All()})
}

type normalizeRequest struct {
	IDs []string `json:"ids"`
}

type normalizeResponse struct {
	IDs       []string `json:"ids"`
	Canonical []bool   `json:"canonical"`
}

// normalizeMasters handles POST /api/v1/masters/normalize for clients that
// still hold model-produced identifiers.
func (s *Server) normalizeMasters(w http.ResponseWriter, r *http.Request) {
	var req normalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	resp := normalizeResponse{
		IDs:       make([]string, len(req.IDs)),
		Canonical: make([]bool, len(req.IDs)),
	}
	for i, raw := range req.IDs {
		resp.IDs[i] = masters.NormalizeID(raw)
		resp.Canonical[i] = masters.IsCanonical(resp.IDs[i])
	}
	writeJSON(w, http.StatusOK, resp)
}
