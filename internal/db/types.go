package db

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/yusuke/career-tracker/internal/dates"
)

// Date is a custom type for handling SQL DATE (YYYY-MM-DD)
type Date struct {
	time.Time
}

// Scan implements the Scanner interface
func (d *Date) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	t, ok := value.(time.Time)
	if !ok {
		return errors.New("failed to scan Date")
	}
	d.Time = t
	return nil
}

// Value implements the Valuer interface
func (d *Date) Value() (driver.Value, error) {
	if d == nil {
		return nil, nil
	}
	return d.Time, nil
}

// MarshalJSON implements json.Marshaler
func (d *Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format("2006-01-02"))
}

// UnmarshalJSON implements json.Unmarshaler. Separator variants like
// "2024/1/5" and "2024.01.05" are accepted and normalized.
func (d *Date) UnmarshalJSON(data []byte) error {
	str := string(data)
	if str == "null" || str == `""` {
		return nil
	}
	// Trim quotes
	if len(str) > 2 && str[0] == '"' && str[len(str)-1] == '"' {
		str = str[1 : len(str)-1]
	}
	t, ok := dates.ParseDateInput(str)
	if !ok {
		return errors.New("invalid date: " + str)
	}
	d.Time = t
	return nil
}

// NewDate wraps a time.Time in a Date
func NewDate(t time.Time) *Date {
	return &Date{Time: t}
}

// StringArray handles JSONB string arrays
type StringArray []string

// Scan implements the Scanner interface for StringArray
func (a *StringArray) Scan(src interface{}) error {
	if src == nil {
		*a = []string{}
		return nil
	}
	source, ok := src.([]byte)
	if !ok {
		return errors.New("type assertion .([]byte) failed")
	}
	return json.Unmarshal(source, a)
}

// Value implements the Valuer interface for StringArray
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a)
}

// RateChange is one revision in a project's rate history
type RateChange struct {
	Date string `json:"date"`
	Rate int    `json:"rate"`
	Note string `json:"note,omitempty"`
}

// RateChangeList handles JSONB rate history arrays
type RateChangeList []RateChange

// Scan implements the Scanner interface for RateChangeList
func (l *RateChangeList) Scan(src interface{}) error {
	if src == nil {
		*l = RateChangeList{}
		return nil
	}
	source, ok := src.([]byte)
	if !ok {
		return errors.New("type assertion .([]byte) failed")
	}
	return json.Unmarshal(source, l)
}

// Value implements the Valuer interface for RateChangeList
func (l RateChangeList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l)
}
