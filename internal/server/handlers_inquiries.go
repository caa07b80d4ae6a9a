package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/yusuke/career-tracker/internal/db"
	"github.com/yusuke/career-tracker/internal/server/middleware"
	"github.com/yusuke/career-tracker/internal/types"
)

// ---------------------------------------------------------------------
// Contact Inquiry Handlers
// ---------------------------------------------------------------------

func (s *Server) handleListInquiries(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	inquiries, err := s.store.ListInquiries(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"inquiries": inquiries,
		"count":     len(inquiries),
	})
}

func (s *Server) handleCreateInquiry(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.CreateInquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	// The submitter's registered email is recorded alongside whatever
	// contact email they typed into the form.
	user, err := s.store.GetUser(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if user == nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	inquiry := db.ContactInquiry{
		UserID:    userID,
		UserEmail: user.Email,
		Name:      req.Name,
		Email:     req.Email,
		Company:   req.Company,
		Message:   req.Message,
	}

	id, err := s.store.CreateInquiry(r.Context(), &inquiry)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (s *Server) handleUpdateInquiry(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	inquiryID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid inquiry ID")
		return
	}

	var req types.UpdateInquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	inquiry := db.ContactInquiry{
		ID:         inquiryID,
		UserID:     userID,
		Status:     req.Status,
		AdminNote:  req.AdminNote,
		AdminReply: req.AdminReply,
	}

	if err := s.store.UpdateInquiry(r.Context(), &inquiry); err != nil {
		if err.Error() == "inquiry not found: "+inquiryID.String() {
			s.errorResponse(w, http.StatusNotFound, "Inquiry not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "updated"})
}
