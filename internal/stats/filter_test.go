package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yusuke/career-tracker/internal/db"
)

func TestIsActiveAt(t *testing.T) {
	now := time.Date(2024, 6, 15, 9, 30, 0, 0, time.Local)

	t.Run("no end date is active", func(t *testing.T) {
		assert.True(t, IsActiveAt(&db.Project{}, now))
	})

	t.Run("end date yesterday is past", func(t *testing.T) {
		p := &db.Project{EndDate: date(2024, 6, 14)}
		assert.False(t, IsActiveAt(p, now))
	})

	t.Run("end date today is active", func(t *testing.T) {
		p := &db.Project{EndDate: date(2024, 6, 15)}
		assert.True(t, IsActiveAt(p, now))
	})

	t.Run("end date tomorrow is active", func(t *testing.T) {
		p := &db.Project{EndDate: date(2024, 6, 16)}
		assert.True(t, IsActiveAt(p, now))
	})
}

func testProjects() []db.Project {
	return []db.Project{
		{
			ProjectName: "ECサイト刷新",
			Company:     "株式会社アルファ",
			Role:        "バックエンドエンジニア",
			Description: "決済まわりの実装",
			Skills:      db.StringArray{"Go", "PostgreSQL"},
			Phases:      db.StringArray{"実装", "テスト"},
			StartDate:   date(2022, 4, 1),
			EndDate:     date(2023, 3, 31),
		},
		{
			ProjectName: "社内ダッシュボード",
			Company:     "Beta Inc",
			Role:        "フルスタック",
			Skills:      db.StringArray{"React", "Go"},
			Phases:      db.StringArray{"要件定義", "実装"},
			StartDate:   date(2023, 4, 1),
			// ongoing
		},
		{
			ProjectName: "レガシー保守",
			Company:     "Gamma LLC",
			Skills:      db.StringArray{"Java"},
			Phases:      db.StringArray{"保守"},
			// no start date
		},
	}
}

func TestApplyEmptyFilterReturnsEverything(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.Local)
	projects := testProjects()

	// Keyword empty, skill empty, phase empty, both bounds empty: the
	// composed filter is a no-op and only the partition applies.
	active, past := Apply(projects, Filter{}, now)

	assert.Len(t, active, 2) // ongoing + no-start-date (no end date either)
	assert.Len(t, past, 1)
	assert.Equal(t, len(projects), len(active)+len(past))

	// Relative order preserved within each partition.
	assert.Equal(t, "社内ダッシュボード", active[0].ProjectName)
	assert.Equal(t, "レガシー保守", active[1].ProjectName)
	assert.Equal(t, "ECサイト刷新", past[0].ProjectName)
}

func TestApplyKeyword(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.Local)
	projects := testProjects()

	t.Run("matches project name", func(t *testing.T) {
		active, past := Apply(projects, Filter{Keyword: "ダッシュボード"}, now)
		require.Len(t, active, 1)
		assert.Empty(t, past)
	})

	t.Run("case insensitive over company", func(t *testing.T) {
		active, past := Apply(projects, Filter{Keyword: "beta"}, now)
		require.Len(t, active, 1)
		assert.Equal(t, "Beta Inc", active[0].Company)
		assert.Empty(t, past)
	})

	t.Run("matches skill values", func(t *testing.T) {
		active, past := Apply(projects, Filter{Keyword: "postgresql"}, now)
		assert.Empty(t, active)
		require.Len(t, past, 1)
	})

	t.Run("whitespace-only matches everything", func(t *testing.T) {
		active, past := Apply(projects, Filter{Keyword: "   "}, now)
		assert.Equal(t, len(projects), len(active)+len(past))
	})

	t.Run("no match", func(t *testing.T) {
		active, past := Apply(projects, Filter{Keyword: "存在しない検索語"}, now)
		assert.Empty(t, active)
		assert.Empty(t, past)
	})
}

func TestApplySkillAndPhase(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.Local)
	projects := testProjects()

	t.Run("exact skill membership", func(t *testing.T) {
		active, past := Apply(projects, Filter{Skill: "Go"}, now)
		assert.Len(t, active, 1)
		assert.Len(t, past, 1)
	})

	t.Run("substring of a skill does not match", func(t *testing.T) {
		active, past := Apply(projects, Filter{Skill: "G"}, now)
		assert.Empty(t, active)
		assert.Empty(t, past)
	})

	t.Run("phase membership", func(t *testing.T) {
		active, past := Apply(projects, Filter{Phase: "実装"}, now)
		assert.Len(t, active, 1)
		assert.Len(t, past, 1)
	})

	t.Run("skill and phase compose", func(t *testing.T) {
		active, past := Apply(projects, Filter{Skill: "Go", Phase: "テスト"}, now)
		assert.Empty(t, active)
		require.Len(t, past, 1)
		assert.Equal(t, "ECサイト刷新", past[0].ProjectName)
	})
}

func TestApplyDateRange(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.Local)
	projects := testProjects()

	t.Run("interval intersection", func(t *testing.T) {
		// [2023-01-01, 2023-06-30] overlaps both dated projects.
		active, past := Apply(projects, Filter{From: "2023-01-01", To: "2023-06-30"}, now)
		assert.Len(t, active, 1)
		assert.Len(t, past, 1)
	})

	t.Run("range after a finished project", func(t *testing.T) {
		active, past := Apply(projects, Filter{From: "2024-01-01"}, now)
		assert.Len(t, active, 1) // ongoing project extends into the range
		assert.Empty(t, past)
	})

	t.Run("range before everything", func(t *testing.T) {
		active, past := Apply(projects, Filter{To: "2020-12-31"}, now)
		assert.Empty(t, active)
		assert.Empty(t, past)
	})

	t.Run("no start date is excluded when a bound is set", func(t *testing.T) {
		active, past := Apply(projects, Filter{From: "2000-01-01"}, now)
		for _, p := range append(active, past...) {
			assert.NotEqual(t, "レガシー保守", p.ProjectName)
		}
	})

	t.Run("slash-separated bounds accepted", func(t *testing.T) {
		active, past := Apply(projects, Filter{From: "2023/1/1", To: "2023/6/30"}, now)
		assert.Equal(t, 2, len(active)+len(past))
	})
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	now := time.Now()
	projects := testProjects()
	original := testProjects()

	Apply(projects, Filter{Keyword: "go", Skill: "Go"}, now)

	require.Equal(t, len(original), len(projects))
	for i := range projects {
		assert.Equal(t, original[i].ProjectName, projects[i].ProjectName)
	}
}
