package db

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_UnmarshalJSON_SeparatorVariants(t *testing.T) {
	want := time.Date(2024, time.January, 5, 0, 0, 0, 0, time.Local)

	for _, input := range []string{`"2024-01-05"`, `"2024/1/5"`, `"2024.01.05"`} {
		var d Date
		require.NoError(t, json.Unmarshal([]byte(input), &d), "input %s", input)
		assert.True(t, d.Time.Equal(want), "input %s parsed to %v", input, d.Time)
	}
}

func TestDate_UnmarshalJSON_Invalid(t *testing.T) {
	for _, input := range []string{`"2024/2/30"`, `"not-a-date"`, `"2024-13-01"`} {
		var d Date
		assert.Error(t, json.Unmarshal([]byte(input), &d), "input %s", input)
	}
}

func TestDate_UnmarshalJSON_NullAndEmpty(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())

	require.NoError(t, json.Unmarshal([]byte(`""`), &d))
	assert.True(t, d.IsZero())
}

func TestDate_MarshalJSON(t *testing.T) {
	d := NewDate(time.Date(2023, time.April, 1, 0, 0, 0, 0, time.Local))
	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2023-04-01"`, string(out))

	zero := &Date{}
	out, err = json.Marshal(zero)
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestIntermediaryCount(t *testing.T) {
	tests := []struct {
		tier string
		want int
	}{
		{tier: TierDirect, want: 0},
		{tier: TierFirst, want: 1},
		{tier: TierSecond, want: 2},
		{tier: TierThird, want: 3},
		{tier: TierFourth, want: 4},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IntermediaryCount(tt.tier), "tier %s", tt.tier)
	}
}

func TestNormalizeIntermediaries(t *testing.T) {
	tests := []struct {
		name      string
		tier      string
		companies StringArray
		want      StringArray
	}{
		{name: "direct clears list", tier: TierDirect, companies: StringArray{"A", "B"}, want: StringArray{}},
		{name: "exact fit unchanged", tier: TierSecond, companies: StringArray{"A", "B"}, want: StringArray{"A", "B"}},
		{name: "truncates extras", tier: TierFirst, companies: StringArray{"A", "B", "C"}, want: StringArray{"A"}},
		{name: "pads short list", tier: TierThird, companies: StringArray{"A"}, want: StringArray{"A", "", ""}},
		{name: "nil input pads", tier: TierSecond, companies: nil, want: StringArray{"", ""}},
		{name: "unknown tier counts as direct", tier: "5th", companies: StringArray{"A"}, want: StringArray{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeIntermediaries(tt.tier, tt.companies))
		})
	}
}

func TestValidTier(t *testing.T) {
	assert.True(t, ValidTier(TierDirect))
	assert.True(t, ValidTier(TierFourth))
	assert.False(t, ValidTier("5th"))
	assert.False(t, ValidTier(""))
}
