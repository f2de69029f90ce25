package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/example/hive/internal/ports/primary"
)

// handleListSections returns all sections, or those of one hive when the
// hiveId query parameter is set.
func (s *Server) handleListSections(w http.ResponseWriter, r *http.Request) {
	var (
		sections []*primary.SectionListItem
		err      error
	)

	if raw := r.URL.Query().Get("hiveId"); raw != "" {
		hiveID, convErr := strconv.Atoi(raw)
		if convErr != nil {
			respondProblem(w, r, http.StatusBadRequest, fmt.Sprintf("invalid hiveId %q", raw))
			return
		}
		sections, err = s.sections.ListSectionsByHive(r.Context(), hiveID)
	} else {
		sections, err = s.sections.ListSections(r.Context())
	}
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, sections)
}

func (s *Server) handleGetSection(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondProblem(w, r, http.StatusBadRequest, err.Error())
		return
	}

	section, err := s.sections.GetSection(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, section)
}

func (s *Server) handleCreateSection(w http.ResponseWriter, r *http.Request) {
	var req primary.UpdateSectionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondProblem(w, r, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if errs := validateSectionRequest(req, true); len(errs) > 0 {
		respondValidationProblem(w, r, errs)
		return
	}

	section, err := s.sections.CreateSection(r.Context(), req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/sections/%d", section.ID))
	respondJSON(w, http.StatusCreated, section)
}

func (s *Server) handleUpdateSection(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondProblem(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var req primary.UpdateSectionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondProblem(w, r, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if errs := validateSectionRequest(req, false); len(errs) > 0 {
		respondValidationProblem(w, r, errs)
		return
	}

	section, err := s.sections.UpdateSection(r.Context(), id, req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, section)
}

func (s *Server) handleSetSectionStatus(w http.ResponseWriter, r *http.Request) {
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

	if err := s.sections.SetSectionStatus(r.Context(), id, deleted); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteSection(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondProblem(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.sections.DeleteSection(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
