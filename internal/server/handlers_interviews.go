package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/yusuke/career-tracker/internal/db"
	"github.com/yusuke/career-tracker/internal/server/middleware"
)

// ---------------------------------------------------------------------
// Interview Log Handlers
// ---------------------------------------------------------------------

func (s *Server) handleListInterviewLogs(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	logs, err := s.store.ListInterviewLogs(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"interview_logs": logs,
		"count":          len(logs),
	})
}

func (s *Server) handleCreateInterviewLog(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req db.InterviewLog
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.UserID = userID

	if req.Company == "" {
		s.errorResponse(w, http.StatusBadRequest, "Company is required")
		return
	}
	if req.Result == "" {
		req.Result = db.ResultPending
	}
	if !db.ValidResult(req.Result) {
		s.errorResponse(w, http.StatusBadRequest, "Invalid result: "+req.Result)
		return
	}
	if req.InterestLevel < 1 || req.InterestLevel > 5 {
		s.errorResponse(w, http.StatusBadRequest, "InterestLevel must be between 1 and 5")
		return
	}

	id, err := s.store.CreateInterviewLog(r.Context(), &req)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (s *Server) handleUpdateInterviewLog(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	logID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid interview log ID")
		return
	}

	var req db.InterviewLog
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.ID = logID
	req.UserID = userID

	if req.Result != "" && !db.ValidResult(req.Result) {
		s.errorResponse(w, http.StatusBadRequest, "Invalid result: "+req.Result)
		return
	}
	if req.InterestLevel < 1 || req.InterestLevel > 5 {
		s.errorResponse(w, http.StatusBadRequest, "InterestLevel must be between 1 and 5")
		return
	}

	if err := s.store.UpdateInterviewLog(r.Context(), &req); err != nil {
		if err.Error() == "interview log not found: "+logID.String() {
			s.errorResponse(w, http.StatusNotFound, "Interview log not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (s *Server) handleDeleteInterviewLog(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	logID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid interview log ID")
		return
	}

	if err := s.store.DeleteInterviewLog(r.Context(), userID, logID); err != nil {
		if err.Error() == "interview log not found: "+logID.String() {
			s.errorResponse(w, http.StatusNotFound, "Interview log not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
