package db

import (
	"time"

	"github.com/google/uuid"
)

// Interview result values
const (
	ResultPending = "pending"
	ResultPassed  = "passed"
	ResultFailed  = "failed"
	ResultOther   = "other"
)

// ValidResult reports whether result is a known interview result value.
func ValidResult(result string) bool {
	switch result {
	case ResultPending, ResultPassed, ResultFailed, ResultOther:
		return true
	}
	return false
}

// InterviewLog represents a client interview (面談) record
type InterviewLog struct {
	ID                uuid.UUID `json:"id"`
	UserID            uuid.UUID `json:"user_id"`
	InterviewDate     *Date     `json:"interview_date,omitempty"`
	Company           string    `json:"company"`
	Position          string    `json:"position,omitempty"`
	DiscussionSummary string    `json:"discussion_summary,omitempty"`
	Result            string    `json:"result"`
	InterestLevel     int       `json:"interest_level"` // 1-5
	QuestionsAsked    string    `json:"questions_asked,omitempty"`
	JobSummary        string    `json:"job_summary,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Contact inquiry status values
const (
	InquiryNew        = "new"
	InquiryInProgress = "in_progress"
	InquiryResolved   = "resolved"
)

// ValidInquiryStatus reports whether status is a known inquiry status value.
func ValidInquiryStatus(status string) bool {
	switch status {
	case InquiryNew, InquiryInProgress, InquiryResolved:
		return true
	}
	return false
}

// ContactInquiry represents a support inquiry submitted by a logged-in user
type ContactInquiry struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	UserEmail  string    `json:"user_email"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Company    string    `json:"company,omitempty"`
	Message    string    `json:"message"`
	Status     string    `json:"status"`
	AdminNote  string    `json:"admin_note,omitempty"`
	AdminReply string    `json:"admin_reply,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
