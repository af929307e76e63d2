package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"tabprof/adapters/ingest"
	"tabprof/domain/core"
	"tabprof/domain/schema"
	apperrors "tabprof/internal/errors"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleCreateProfile accepts a multipart CSV upload under "file" with an
// optional comma-separated "targets" field, builds the profile, persists it
// when a repository is configured, and returns the stored document.
func (s *Server) handleCreateProfile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.config.MaxUploadBytes); err != nil {
		s.writeError(w, http.StatusBadRequest, apperrors.InvalidInput("expected multipart form upload"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, apperrors.InvalidInput("missing file field"))
		return
	}
	defer file.Close()

	var targets []string
	if raw := strings.TrimSpace(r.FormValue("targets")); raw != "" {
		targets = strings.Split(raw, ",")
		for i := range targets {
			targets[i] = strings.TrimSpace(targets[i])
		}
	}

	df, err := ingest.ReadCSV(file)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	descriptor, err := schema.BuildDatasetDescriptor(df, targets)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if core.IsInputError(err) {
			status = http.StatusBadRequest
		}
		s.writeError(w, status, err)
		return
	}

	profile := schema.NewProfile(header.Filename, descriptor)
	if s.repo != nil {
		if err := s.repo.Save(r.Context(), profile); err != nil {
			s.writeError(w, http.StatusInternalServerError, err)
			return
		}
	}

	s.writeJSON(w, http.StatusCreated, profile)
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	if s.repo == nil {
		s.writeError(w, http.StatusNotImplemented, apperrors.New(apperrors.CodeDatabaseError, "profile storage not configured"))
		return
	}
	id, err := core.ParseProfileID(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, apperrors.InvalidInput(err.Error()))
		return
	}
	profile, err := s.repo.GetByID(r.Context(), id)
	if err != nil {
		status := http.StatusInternalServerError
		if apperrors.GetCode(err) == apperrors.CodeNotFound {
			status = http.StatusNotFound
		}
		s.writeError(w, status, err)
		return
	}
	s.writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	if s.repo == nil {
		s.writeError(w, http.StatusNotImplemented, apperrors.New(apperrors.CodeDatabaseError, "profile storage not configured"))
		return
	}
	limit := queryInt(r, "limit", 20)
	offset := queryInt(r, "offset", 0)
	profiles, err := s.repo.List(r.Context(), limit, offset)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	if profiles == nil {
		profiles = []*schema.Profile{}
	}
	s.writeJSON(w, http.StatusOK, profiles)
}

func queryInt(r *http.Request, key string, fallback int) int {
	if raw := r.URL.Query().Get(key); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			return n
		}
	}
	return fallback
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Error("[API] failed to encode response: %v", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.log.Warn("[API] request failed: %v", err)
	s.writeJSON(w, status, map[string]string{
		"error": err.Error(),
		"code":  apperrors.GetCode(err),
	})
}
