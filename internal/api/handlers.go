// SPDX-License-Identifier: MIT

package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ManuGH/seqconf/internal/config"
	seqlog "github.com/ManuGH/seqconf/internal/log"
)

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReadyz reports ready once the held document resolves cleanly, so a
// daemon with a broken on-disk config is taken out of rotation.
func (s *Server) handleReadyz(w http.ResponseWriter, _ *http.Request) {
	if _, err := s.holder.Resolve(""); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// handleConfig returns the resolved configuration for the requested
// profile (?profile=NAME), or the bare defaults when none is given.
func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	profile := r.URL.Query().Get("profile")

	res, err := s.holder.Resolve(profile)
	if err != nil {
		switch {
		case errors.Is(err, config.ErrUnknownProfile):
			recordResolve("unknown_profile")
			writeError(w, http.StatusNotFound, err)
		case errors.Is(err, config.ErrUnknownTool), errors.Is(err, config.ErrInvalidValue):
			recordResolve("invalid")
			writeError(w, http.StatusBadRequest, err)
		default:
			recordResolve("error")
			writeError(w, http.StatusInternalServerError, err)
		}
		s.logger.Warn().
			Err(err).
			Str(seqlog.FieldProfile, profile).
			Str(seqlog.FieldEvent, "api.resolve_failed").
			Msg("profile resolution failed")
		return
	}

	recordResolve("ok")
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleProfiles(w http.ResponseWriter, _ *http.Request) {
	doc := s.holder.Get()
	writeJSON(w, http.StatusOK, map[string][]string{
		"profiles": config.ProfileNames(doc),
	})
}

func (s *Server) handleTools(w http.ResponseWriter, _ *http.Request) {
	doc := s.holder.Get()
	writeJSON(w, http.StatusOK, map[string]map[string]string{
		"program": doc.Program,
	})
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	err := s.holder.Reload(r.Context())
	recordReload(err)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "reloaded"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
