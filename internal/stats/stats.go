// Package stats computes dashboard statistics and filtered views over a
// user's already-loaded projects and diary entries. Everything here is a pure
// function: no I/O, no hidden state, inputs are never mutated.
package stats

import (
	"sort"
	"time"

	"github.com/yusuke/career-tracker/internal/db"
)

// recentLimit caps the recent-entries and recent-projects dashboard lists.
const recentLimit = 5

// Stats is the summary consumed by the dashboard view.
type Stats struct {
	TotalProjects         int            `json:"total_projects"`
	ActiveCount           int            `json:"active_count"`
	TotalEntries          int            `json:"total_entries"`
	SkillCounts           map[string]int `json:"skill_counts"`
	TechExperienceMonths  map[string]int `json:"tech_experience_months"`
	PhaseExperienceMonths map[string]int `json:"phase_experience_months"`
	RecentEntries         []db.Entry     `json:"recent_entries"`
	RecentProjects        []db.Project   `json:"recent_projects"`
}

// MonthsBetween counts whole month boundaries crossed between a and b,
// clamped at zero. Day-of-month is ignored: finishing on the 1st counts the
// same as finishing on the last day of a month.
func MonthsBetween(a, b time.Time) int {
	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if months < 0 {
		return 0
	}
	return months
}

// projectMonths returns the engagement length of p in months, anchored at now
// for ongoing projects. A project with no start date contributes 0.
func projectMonths(p *db.Project, now time.Time) int {
	if p.StartDate == nil || p.StartDate.IsZero() {
		return 0
	}
	end := now
	if p.EndDate != nil && !p.EndDate.IsZero() {
		end = p.EndDate.Time
	}
	return MonthsBetween(p.StartDate.Time, end)
}

// Compute aggregates projects and entries into dashboard statistics. The now
// argument anchors "today" for active checks and open-ended durations, so the
// result is deterministic given identical inputs.
func Compute(projects []db.Project, entries []db.Entry, now time.Time) Stats {
	s := Stats{
		TotalProjects:         len(projects),
		TotalEntries:          len(entries),
		SkillCounts:           make(map[string]int),
		TechExperienceMonths:  make(map[string]int),
		PhaseExperienceMonths: make(map[string]int),
	}

	for i := range projects {
		p := &projects[i]
		if IsActiveAt(p, now) {
			s.ActiveCount++
		}

		months := projectMonths(p, now)
		for _, skill := range p.Skills {
			s.SkillCounts[skill]++
			s.TechExperienceMonths[skill] += months
		}
		for _, phase := range p.Phases {
			s.PhaseExperienceMonths[phase] += months
		}
	}

	s.RecentEntries = recentEntries(entries)
	s.RecentProjects = recentProjects(projects)
	return s
}

// recentEntries returns the entries with the greatest createdAt timestamps,
// descending. Entries lacking a timestamp sort as the oldest.
func recentEntries(entries []db.Entry) []db.Entry {
	sorted := make([]db.Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > recentLimit {
		sorted = sorted[:recentLimit]
	}
	return sorted
}

// recentProjects returns the first projects in store order, without re-sorting.
func recentProjects(projects []db.Project) []db.Project {
	n := len(projects)
	if n > recentLimit {
		n = recentLimit
	}
	recent := make([]db.Project, n)
	copy(recent, projects[:n])
	return recent
}
