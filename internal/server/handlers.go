package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jfelix/resume-matcher/internal/schemas"
	"github.com/jfelix/resume-matcher/internal/types"
)

// ProfileRequest is the request body for POST /profiles. Entities lets the
// caller supply pre-recognized entities instead of the AI signal.
type ProfileRequest struct {
	ResumeText string                   `json:"resume_text"`
	Entities   *types.ExtractedEntities `json:"entities,omitempty"`
}

// ProfileResponse is the response for POST /profiles.
type ProfileResponse struct {
	Profile *types.StructuredProfile `json:"profile"`
	// ExternalSignals reports whether AI entity recognition contributed
	// to the profile. False means pattern extraction alone was used.
	ExternalSignals bool `json:"external_signals"`
}

// MatchRequest is the request body for POST /matches. Exactly one of
// ProfileID (stored profile) or Profile (inline) identifies the candidate.
type MatchRequest struct {
	ProfileID string                   `json:"profile_id,omitempty"`
	Profile   *types.StructuredProfile `json:"profile,omitempty"`
	Job       json.RawMessage          `json:"job"`
}

// handleCreateProfile structures raw resume text into a profile.
func (s *Server) handleCreateProfile(w http.ResponseWriter, r *http.Request) {
	var req ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.ResumeText == "" {
		s.errorResponse(w, http.StatusBadRequest, "resume_text is required")
		return
	}

	external := req.Entities
	externalUsed := external != nil
	if external == nil && s.signals != nil {
		entities, err := s.signals.Entities(r.Context(), req.ResumeText)
		if err != nil {
			// Degrade to pattern extraction alone rather than failing
			// the request.
			s.logger.Warn("external entity recognition unavailable", zap.Error(err))
		} else {
			external = entities
			externalUsed = true
		}
	}

	prof, err := s.builder.StructureDocument(r.Context(), req.ResumeText, external)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if s.store != nil {
		if err := s.store.SaveProfile(r.Context(), prof); err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Failed to save profile: "+err.Error())
			return
		}
	}

	s.jsonResponse(w, http.StatusCreated, ProfileResponse{
		Profile:         prof,
		ExternalSignals: externalUsed,
	})
}

// handleGetProfile loads a stored profile by ID.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	prof, err := s.store.GetProfile(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if prof == nil {
		s.errorResponse(w, http.StatusNotFound, "Profile not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, prof)
}

// handleCreateMatch scores a profile against a job requirement.
func (s *Server) handleCreateMatch(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if len(req.Job) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "job is required")
		return
	}
	if (req.ProfileID == "") == (req.Profile == nil) {
		s.errorResponse(w, http.StatusBadRequest, "Exactly one of profile_id or profile is required")
		return
	}

	if err := schemas.ValidateJobRequirement(req.Job); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	var job types.JobRequirement
	if err := json.Unmarshal(req.Job, &job); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job: "+err.Error())
		return
	}

	prof := req.Profile
	if req.ProfileID != "" {
		if !s.requireStore(w) {
			return
		}
		id, err := uuid.Parse(req.ProfileID)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid profile_id")
			return
		}
		prof, err = s.store.GetProfile(r.Context(), id)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}
		if prof == nil {
			s.errorResponse(w, http.StatusNotFound, "Profile not found")
			return
		}
	}

	result, err := s.scorer.Score(prof, &job)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	// Inline profiles are persisted alongside the match so the match row
	// has a profile to reference.
	if s.store != nil {
		if req.Profile != nil {
			if prof.ID == "" {
				prof.ID = uuid.NewString()
				result.ProfileID = prof.ID
			}
			if err := s.store.SaveProfile(r.Context(), prof); err != nil {
				s.errorResponse(w, http.StatusInternalServerError, "Failed to save profile: "+err.Error())
				return
			}
		}
		if err := s.store.SaveMatch(r.Context(), result); err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Failed to save match: "+err.Error())
			return
		}
	}

	s.jsonResponse(w, http.StatusCreated, result)
}

// handleGetMatch loads a stored match result by ID.
func (s *Server) handleGetMatch(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	result, err := s.store.GetMatch(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if result == nil {
		s.errorResponse(w, http.StatusNotFound, "Match not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleListMatches returns a profile's match results, newest first.
func (s *Server) handleListMatches(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	results, err := s.store.MatchesForProfile(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"profile_id": id.String(),
		"matches":    results,
		"count":      len(results),
	})
}

// requireStore rejects the request when no database is configured.
func (s *Server) requireStore(w http.ResponseWriter) bool {
	if s.store == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Persistence is not configured")
		return false
	}
	return true
}

// pathUUID parses a UUID path segment, writing a 400 on failure.
func (s *Server) pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid "+name)
		return uuid.UUID{}, false
	}
	return id, true
}
