package types

import (
	"github.com/go-playground/validator/v10"

	"github.com/yusuke/career-tracker/internal/db"
)

// CreateInquiryRequest represents a contact inquiry submission.
type CreateInquiryRequest struct {
	Name    string `json:"name" validate:"required,min=1"`
	Email   string `json:"email" validate:"required,email"`
	Company string `json:"company,omitempty"`
	Message string `json:"message" validate:"required,min=1"`
}

// UpdateInquiryRequest updates an inquiry's triage state.
type UpdateInquiryRequest struct {
	Status     string `json:"status" validate:"required,oneof=new in_progress resolved"`
	AdminNote  string `json:"admin_note,omitempty"`
	AdminReply string `json:"admin_reply,omitempty"`
}

// Validate validates the CreateInquiryRequest using the validator.
func (r *CreateInquiryRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdateInquiryRequest using the validator.
func (r *UpdateInquiryRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// FilteredProjectsResponse is the active/past partition returned by the
// project search endpoint.
type FilteredProjectsResponse struct {
	Active []db.Project `json:"active"`
	Past   []db.Project `json:"past"`
}
