package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/yusuke/career-tracker/internal/db"
	"github.com/yusuke/career-tracker/internal/server/middleware"
)

// ---------------------------------------------------------------------
// Diary Entry Handlers
// ---------------------------------------------------------------------

func (s *Server) handleListEntries(w http.ResponseWriter, r *http.Request) {
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

	entries, err := s.store.ListEntries(r.Context(), userID, projectID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"entries": entries,
		"count":   len(entries),
	})
}

func (s *Server) handleCreateEntry(w http.ResponseWriter, r *http.Request) {
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

	// The parent project must belong to the caller.
	project, err := s.store.GetProject(r.Context(), userID, projectID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if project == nil {
		s.errorResponse(w, http.StatusNotFound, "Project not found")
		return
	}

	var req db.Entry
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.ProjectID = projectID
	req.UserID = userID

	if req.Title == "" {
		s.errorResponse(w, http.StatusBadRequest, "Title is required")
		return
	}

	id, err := s.store.CreateEntry(r.Context(), &req)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.statsCache.Invalidate(r.Context(), userID)
	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (s *Server) handleUpdateEntry(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	entryID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid entry ID")
		return
	}

	var req db.Entry
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.ID = entryID
	req.UserID = userID

	if err := s.store.UpdateEntry(r.Context(), &req); err != nil {
		if err.Error() == "entry not found: "+entryID.String() {
			s.errorResponse(w, http.StatusNotFound, "Entry not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.statsCache.Invalidate(r.Context(), userID)
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (s *Server) handleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	entryID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid entry ID")
		return
	}

	if err := s.store.DeleteEntry(r.Context(), userID, entryID); err != nil {
		if err.Error() == "entry not found: "+entryID.String() {
			s.errorResponse(w, http.StatusNotFound, "Entry not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.statsCache.Invalidate(r.Context(), userID)
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
