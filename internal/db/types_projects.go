package db

import (
	"time"

	"github.com/google/uuid"
)

// Contract tier values describe how many companies sit between the engineer
// and the end client (商流).
const (
	TierDirect = "direct"
	TierFirst  = "1st"
	TierSecond = "2nd"
	TierThird  = "3rd"
	TierFourth = "4th+"
)

// IntermediaryCount returns the number of intermediary companies implied by a
// contract tier. Unknown tiers count as direct.
func IntermediaryCount(tier string) int {
	switch tier {
	case TierFirst:
		return 1
	case TierSecond:
		return 2
	case TierThird:
		return 3
	case TierFourth:
		return 4
	default:
		return 0
	}
}

// NormalizeIntermediaries pads or truncates companies so its length matches
// the tier's intermediary count. Missing slots become empty strings.
func NormalizeIntermediaries(tier string, companies StringArray) StringArray {
	out := make(StringArray, IntermediaryCount(tier))
	copy(out, companies)
	return out
}

// ValidTier reports whether tier is a known contract tier value.
func ValidTier(tier string) bool {
	switch tier {
	case TierDirect, TierFirst, TierSecond, TierThird, TierFourth:
		return true
	}
	return false
}

// Project represents one engagement (案件) in a user's history
type Project struct {
	ID                    uuid.UUID      `json:"id"`
	UserID                uuid.UUID      `json:"user_id"`
	ProjectName           string         `json:"project_name"`
	Company               string         `json:"company"`
	StartDate             *Date          `json:"start_date,omitempty"`
	EndDate               *Date          `json:"end_date,omitempty"` // nil means ongoing
	Role                  string         `json:"role,omitempty"`
	Skills                StringArray    `json:"skills"` // JSONB array, insertion order kept
	Phases                StringArray    `json:"phases"` // JSONB array
	ContractTier          string         `json:"contract_tier"`
	IntermediaryCompanies StringArray    `json:"intermediary_companies"` // JSONB array, ordered
	MonthlyRate           int            `json:"monthly_rate"`           // 万円
	RateHistory           RateChangeList `json:"rate_history"`           // JSONB array
	Description           string         `json:"description,omitempty"`
	WorkedHours           int            `json:"worked_hours"` // legacy field
	CreatedAt             time.Time      `json:"created_at"`
	UpdatedAt             time.Time      `json:"updated_at"`
}

// Entry represents a work diary entry belonging to one project
type Entry struct {
	ID          uuid.UUID   `json:"id"`
	ProjectID   uuid.UUID   `json:"project_id"`
	UserID      uuid.UUID   `json:"user_id"`
	Date        *Date       `json:"date,omitempty"`
	Title       string      `json:"title"`
	Content     string      `json:"content,omitempty"`
	Tags        StringArray `json:"tags"`
	WorkedHours int         `json:"worked_hours"` // legacy numeric variant
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
