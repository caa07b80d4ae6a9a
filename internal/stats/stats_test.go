package stats

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yusuke/career-tracker/internal/db"
)

func date(y int, m time.Month, d int) *db.Date {
	return db.NewDate(time.Date(y, m, d, 0, 0, 0, 0, time.Local))
}

func TestMonthsBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want int
	}{
		{
			"same instant",
			time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			0,
		},
		{
			"day of month ignored",
			time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			2,
		},
		{
			"across year boundary",
			time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC),
			3,
		},
		{
			"exactly one year",
			time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 7, 31, 0, 0, 0, 0, time.UTC),
			12,
		},
		{
			"negative span clamps to zero",
			time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MonthsBetween(tt.a, tt.b))
			// Determinism: same inputs, same answer.
			assert.Equal(t, MonthsBetween(tt.a, tt.b), MonthsBetween(tt.a, tt.b))
		})
	}
}

func TestComputeCounts(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.Local)
	projects := []db.Project{
		{
			ID:          uuid.New(),
			ProjectName: "EC基盤リプレイス",
			Skills:      db.StringArray{"React"},
			Phases:      db.StringArray{"詳細設計", "実装"},
			StartDate:   date(2023, 1, 1),
			EndDate:     date(2023, 7, 1),
		},
		{
			ID:          uuid.New(),
			ProjectName: "決済API開発",
			Skills:      db.StringArray{"React", "Node"},
			Phases:      db.StringArray{"実装"},
			StartDate:   date(2023, 7, 1),
			// no end date: ongoing
		},
	}
	entries := []db.Entry{
		{ID: uuid.New(), Title: "初日", CreatedAt: now.Add(-48 * time.Hour)},
		{ID: uuid.New(), Title: "リリース対応", CreatedAt: now.Add(-24 * time.Hour)},
	}

	s := Compute(projects, entries, now)

	assert.Equal(t, 2, s.TotalProjects)
	assert.Equal(t, 1, s.ActiveCount)
	assert.Equal(t, 2, s.TotalEntries)

	assert.Equal(t, 2, s.SkillCounts["React"])
	assert.Equal(t, 1, s.SkillCounts["Node"])

	// Project A contributes 6 months, project B contributes 2023-07 .. now.
	bMonths := MonthsBetween(projects[1].StartDate.Time, now)
	assert.Equal(t, 6+bMonths, s.TechExperienceMonths["React"])
	assert.Equal(t, bMonths, s.TechExperienceMonths["Node"])

	assert.Equal(t, 6+bMonths, s.PhaseExperienceMonths["実装"])
	assert.Equal(t, 6, s.PhaseExperienceMonths["詳細設計"])
}

func TestComputeRecentEntries(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.Local)
	var entries []db.Entry
	for i := 0; i < 7; i++ {
		entries = append(entries, db.Entry{
			Title:     string(rune('a' + i)),
			CreatedAt: now.Add(time.Duration(i) * time.Hour),
		})
	}
	// Entry without a timestamp sorts as oldest.
	entries = append(entries, db.Entry{Title: "no-timestamp"})

	s := Compute(nil, entries, now)

	require.Len(t, s.RecentEntries, 5)
	assert.Equal(t, "g", s.RecentEntries[0].Title)
	assert.Equal(t, "f", s.RecentEntries[1].Title)
	assert.Equal(t, "c", s.RecentEntries[4].Title)
	for _, e := range s.RecentEntries {
		assert.NotEqual(t, "no-timestamp", e.Title)
	}
}

func TestComputeRecentProjectsKeepsStoreOrder(t *testing.T) {
	now := time.Now()
	var projects []db.Project
	for i := 0; i < 7; i++ {
		projects = append(projects, db.Project{ProjectName: string(rune('A' + i))})
	}

	s := Compute(projects, nil, now)

	require.Len(t, s.RecentProjects, 5)
	for i, p := range s.RecentProjects {
		assert.Equal(t, string(rune('A'+i)), p.ProjectName)
	}
}

func TestComputeMissingFields(t *testing.T) {
	now := time.Now()
	projects := []db.Project{
		{ProjectName: "スキル未入力"}, // no skills, phases, dates
		{ProjectName: "開始日なし", Skills: db.StringArray{"Go"}}, // no start date
	}

	s := Compute(projects, nil, now)

	assert.Equal(t, 2, s.TotalProjects)
	assert.Equal(t, 1, s.SkillCounts["Go"])
	// Without a start date the project contributes 0 months for its skills.
	assert.Equal(t, 0, s.TechExperienceMonths["Go"])
	assert.Empty(t, s.PhaseExperienceMonths)
}

func TestComputeIdempotent(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.Local)
	projects := []db.Project{
		{ProjectName: "A", Skills: db.StringArray{"Go", "AWS"}, StartDate: date(2022, 4, 1), EndDate: date(2023, 3, 31)},
		{ProjectName: "B", Skills: db.StringArray{"Go"}, StartDate: date(2023, 4, 1)},
	}
	entries := []db.Entry{
		{Title: "x", CreatedAt: now.Add(-time.Hour)},
	}

	first := Compute(projects, entries, now)
	second := Compute(projects, entries, now)
	assert.Equal(t, first, second)

	// Inputs are not mutated.
	assert.Equal(t, "A", projects[0].ProjectName)
	assert.Equal(t, db.StringArray{"Go", "AWS"}, projects[0].Skills)
	assert.Equal(t, "x", entries[0].Title)
}
