package stats

import (
	"strings"
	"time"

	"github.com/yusuke/career-tracker/internal/db"
	"github.com/yusuke/career-tracker/internal/dates"
)

// Filter holds search criteria for the project list. Empty values match
// everything, so the zero Filter is a no-op.
type Filter struct {
	Keyword string
	Skill   string
	Phase   string
	From    string // date-range lower bound, free-form date string
	To      string // date-range upper bound, free-form date string
}

// IsActiveAt reports whether p counts as active at the given instant: no end
// date, or an end date not yet passed (inclusive of today).
func IsActiveAt(p *db.Project, now time.Time) bool {
	if p.EndDate == nil || p.EndDate.IsZero() {
		return true
	}
	// Compare at day granularity so a project ending today is still active.
	end := p.EndDate.Time
	return !end.Before(time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, end.Location()))
}

// IsActive reports whether p counts as active right now. It is re-evaluated
// on every call, so the active/past split can shift across a day boundary.
func IsActive(p *db.Project) bool {
	return IsActiveAt(p, time.Now())
}

// dateBounds holds the parsed form of a filter's From/To strings, computed
// once per filter application rather than once per project.
type dateBounds struct {
	from, to       time.Time
	hasFrom, hasTo bool
}

func (f Filter) bounds() dateBounds {
	var b dateBounds
	b.from, b.hasFrom = dates.ParseDateInput(f.From)
	b.to, b.hasTo = dates.ParseDateInput(f.To)
	return b
}

// Matches reports whether p passes every criterion in f at the given instant.
func (f Filter) Matches(p *db.Project, now time.Time) bool {
	return f.matches(p, now, f.bounds())
}

func (f Filter) matches(p *db.Project, now time.Time, b dateBounds) bool {
	return f.matchKeyword(p) && f.matchSkill(p) && f.matchPhase(p) && matchDateRange(p, now, b)
}

// Apply filters projects by f and partitions the result into active and past,
// each sublist keeping the input's relative order.
func Apply(projects []db.Project, f Filter, now time.Time) (active, past []db.Project) {
	active = []db.Project{}
	past = []db.Project{}
	bounds := f.bounds()
	for i := range projects {
		p := &projects[i]
		if !f.matches(p, now, bounds) {
			continue
		}
		if IsActiveAt(p, now) {
			active = append(active, *p)
		} else {
			past = append(past, *p)
		}
	}
	return active, past
}

// matchKeyword does a case-insensitive substring test against the project's
// searchable text. Blank keywords match everything.
func (f Filter) matchKeyword(p *db.Project) bool {
	keyword := strings.TrimSpace(f.Keyword)
	if keyword == "" {
		return true
	}
	fields := []string{p.ProjectName, p.Company, p.Role, p.Description}
	fields = append(fields, p.Skills...)
	fields = append(fields, p.Phases...)
	haystack := strings.ToLower(strings.Join(fields, " "))
	return strings.Contains(haystack, strings.ToLower(keyword))
}

func (f Filter) matchSkill(p *db.Project) bool {
	if f.Skill == "" {
		return true
	}
	for _, s := range p.Skills {
		if s == f.Skill {
			return true
		}
	}
	return false
}

func (f Filter) matchPhase(p *db.Project) bool {
	if f.Phase == "" {
		return true
	}
	for _, ph := range p.Phases {
		if ph == f.Phase {
			return true
		}
	}
	return false
}

// matchDateRange passes projects whose interval [startDate, endDate-or-far-
// future] intersects [from, to]. Bounds that are absent or unparseable are
// unbounded. A project with no start date fails whenever either bound is set.
func matchDateRange(p *db.Project, now time.Time, b dateBounds) bool {
	if !b.hasFrom && !b.hasTo {
		return true
	}

	if p.StartDate == nil || p.StartDate.IsZero() {
		return false
	}
	start := p.StartDate.Time

	end := now.AddDate(100, 0, 0) // far future for ongoing projects
	if p.EndDate != nil && !p.EndDate.IsZero() {
		end = p.EndDate.Time
	}

	if b.hasFrom && end.Before(b.from) {
		return false
	}
	if b.hasTo && start.After(b.to) {
		return false
	}
	return true
}
