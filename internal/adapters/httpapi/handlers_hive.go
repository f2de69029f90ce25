package httpapi

import (
	"fmt"
	"net/http"

	"github.com/example/hive/internal/ports/primary"
)

// handleListHives returns every hive with its section count.
func (s *Server) handleListHives(w http.ResponseWriter, r *http.Request) {
	hives, err := s.hives.ListHives(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, hives)
}

func (s *Server) handleGetHive(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondProblem(w, r, http.StatusBadRequest, err.Error())
		return
	}

	hive, err := s.hives.GetHive(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, hive)
}

func (s *Server) handleListHiveSections(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondProblem(w, r, http.StatusBadRequest, err.Error())
		return
	}

	sections, err := s.hives.ListHiveSections(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, sections)
}

// handleCreateHive responds 201 with a Location header on success.
func (s *Server) handleCreateHive(w http.ResponseWriter, r *http.Request) {
	var req primary.UpdateHiveRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondProblem(w, r, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if errs := validateHiveRequest(req); len(errs) > 0 {
		respondValidationProblem(w, r, errs)
		return
	}

	hive, err := s.hives.CreateHive(r.Context(), req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/hives/%d", hive.ID))
	respondJSON(w, http.StatusCreated, hive)
}

func (s *Server) handleUpdateHive(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondProblem(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var req primary.UpdateHiveRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondProblem(w, r, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if errs := validateHiveRequest(req); len(errs) > 0 {
		respondValidationProblem(w, r, errs)
		return
	}

	hive, err := s.hives.UpdateHive(r.Context(), id, req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, hive)
}

func (s *Server) handleSetHiveStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondProblem(w, r, http.StatusBadRequest, err.Error())
		return
	}
	deleted, err := pathDeleted(r)
	if err != nil {
		respondProblem(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.hives.SetHiveStatus(r.Context(), id, deleted); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleDeleteHive purges a soft-deleted hive.
func (s *Server) handleDeleteHive(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondProblem(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.hives.DeleteHive(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
