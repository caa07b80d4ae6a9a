package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/yusuke/career-tracker/internal/db"
	"github.com/yusuke/career-tracker/internal/server/middleware"
	"github.com/yusuke/career-tracker/internal/stats"
	"github.com/yusuke/career-tracker/internal/types"
)

// ---------------------------------------------------------------------
// Project Handlers
// ---------------------------------------------------------------------

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	projects, err := s.store.ListProjects(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"projects": projects,
		"count":    len(projects),
	})
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req db.Project
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.UserID = userID

	if req.ProjectName == "" || req.Company == "" {
		s.errorResponse(w, http.StatusBadRequest, "ProjectName and Company are required")
		return
	}
	if req.ContractTier == "" {
		req.ContractTier = db.TierDirect
	}
	if !db.ValidTier(req.ContractTier) {
		s.errorResponse(w, http.StatusBadRequest, "Invalid contract tier: "+req.ContractTier)
		return
	}
	if req.MonthlyRate < 0 {
		s.errorResponse(w, http.StatusBadRequest, "MonthlyRate must be non-negative")
		return
	}
	// The intermediary list length is dictated by the contract tier.
	req.IntermediaryCompanies = db.NormalizeIntermediaries(req.ContractTier, req.IntermediaryCompanies)

	id, err := s.store.CreateProject(r.Context(), &req)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.statsCache.Invalidate(r.Context(), userID)
	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	projectID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	project, err := s.store.GetProject(r.Context(), userID, projectID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if project == nil {
		s.errorResponse(w, http.StatusNotFound, "Project not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, project)
}

func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	projectID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	var req db.Project
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.ID = projectID
	req.UserID = userID

	if req.ContractTier == "" {
		req.ContractTier = db.TierDirect
	}
	if !db.ValidTier(req.ContractTier) {
		s.errorResponse(w, http.StatusBadRequest, "Invalid contract tier: "+req.ContractTier)
		return
	}
	req.IntermediaryCompanies = db.NormalizeIntermediaries(req.ContractTier, req.IntermediaryCompanies)

	if err := s.store.UpdateProject(r.Context(), &req); err != nil {
		if err.Error() == "project not found: "+projectID.String() {
			s.errorResponse(w, http.StatusNotFound, "Project not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.statsCache.Invalidate(r.Context(), userID)
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	projectID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	// Cascades to the project's diary entries.
	if err := s.store.DeleteProject(r.Context(), userID, projectID); err != nil {
		if err.Error() == "project not found: "+projectID.String() {
			s.errorResponse(w, http.StatusNotFound, "Project not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.statsCache.Invalidate(r.Context(), userID)
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleFilteredProjects runs the filter/search engine over the owner's
// projects and returns the active/past partition.
func (s *Server) handleFilteredProjects(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	projects, err := s.store.ListProjects(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	q := r.URL.Query()
	filter := stats.Filter{
		Keyword: q.Get("keyword"),
		Skill:   q.Get("skill"),
		Phase:   q.Get("phase"),
		From:    q.Get("from"),
		To:      q.Get("to"),
	}

	active, past := stats.Apply(projects, filter, time.Now())
	s.jsonResponse(w, http.StatusOK, types.FilteredProjectsResponse{
		Active: active,
		Past:   past,
	})
}
