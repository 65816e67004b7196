package models

import (
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexScalars_ShapeDrift(t *testing.T) {
	var v struct {
		ID     FlexID     `json:"id"`
		Flag   FlexBool   `json:"flag"`
		Points FlexInt    `json:"points"`
		Stars  FlexFloat  `json:"stars"`
		Note   FlexString `json:"note"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"id": 42, "flag": 1, "points": "30", "stars": "4.5", "note": 7}`), &v))
	assert.Equal(t, "42", v.ID.String())
	assert.True(t, v.Flag.Bool())
	assert.Equal(t, 30, v.Points.Int())
	assert.InDelta(t, 4.5, v.Stars.Float(), 0.001)
	assert.Equal(t, "7", v.Note.String())

	require.NoError(t, json.Unmarshal([]byte(`{"id": "42", "flag": true, "points": 30, "stars": 4.5, "note": "seven"}`), &v))
	assert.Equal(t, "42", v.ID.String())
	assert.True(t, v.Flag.Bool())
	assert.Equal(t, 30, v.Points.Int())
	assert.Equal(t, "seven", v.Note.String())

	require.NoError(t, json.Unmarshal([]byte(`{"id": null, "flag": null, "points": null, "stars": null, "note": null}`), &v))
	assert.Empty(t, v.ID.String())
	assert.False(t, v.Flag.Bool())
	assert.Zero(t, v.Points.Int())
}

func TestRawTags_BothLayouts(t *testing.T) {
	var tags rawTags
	require.NoError(t, json.Unmarshal([]byte(`[{"id": 1, "name": "Web"}, {"id": 2, "name": "SNMP"}]`), &tags))
	assert.Equal(t, rawTags{"Web", "SNMP"}, tags)

	require.NoError(t, json.Unmarshal([]byte(`["Web", "SNMP"]`), &tags))
	assert.Equal(t, rawTags{"Web", "SNMP"}, tags)

	require.NoError(t, json.Unmarshal([]byte(`null`), &tags))
	assert.Nil(t, tags)
}

func TestParseAPITime_Layouts(t *testing.T) {
	for _, s := range []string{
		"2022-01-08T17:00:00.000000Z",
		"2022-01-08T17:00:00Z",
	} {
		got := ParseAPITime(s)
		require.False(t, got.IsZero(), s)
		assert.Equal(t, "2022-01-09 01:00", FormatUTC8(got), s)
	}

	// Offset-less strings read back in the zone they were written in.
	assert.Equal(t, "2022-01-09 01:00", FormatUTC8(ParseAPITime("2022-01-09 01:00")))

	assert.True(t, ParseAPITime("").IsZero())
	assert.True(t, ParseAPITime("not a date").IsZero())
}

func TestFormatUTC8_ZeroTime(t *testing.T) {
	assert.Empty(t, FormatUTC8(time.Time{}))
	assert.Empty(t, FormatUTC8Seconds(time.Time{}))
}

func TestBloodDuration(t *testing.T) {
	release := time.Date(2022, 1, 8, 17, 0, 0, 0, time.UTC)
	solve := time.Date(2022, 1, 10, 22, 59, 0, 0, time.UTC)
	assert.Equal(t, "2D 5H 59M", BloodDuration(release, solve))

	assert.Empty(t, BloodDuration(time.Time{}, solve))
	assert.Empty(t, BloodDuration(release, time.Time{}))
}

func TestDifficulty_RoundTrip(t *testing.T) {
	assert.Equal(t, 10, DifficultyNum("Very Easy"))
	assert.Equal(t, 90, DifficultyNum("Insane"))
	assert.Zero(t, DifficultyNum("Bananas"))

	assert.Equal(t, "Easy", DifficultyText(10))
	assert.Equal(t, "Easy", DifficultyText(20))
	assert.Equal(t, "Medium", DifficultyText(35))
	assert.Equal(t, "Hard", DifficultyText(60))
	assert.Equal(t, "Insane", DifficultyText(100))
	assert.Equal(t, "Unknown", DifficultyText(25))
	assert.Equal(t, "Unknown", DifficultyText(0))
}
