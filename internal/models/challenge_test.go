package models

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChallenge_FlatCreatorShape(t *testing.T) {
	payload := []byte(`{
		"id": 196,
		"name": "The Needle",
		"challenge_category_id": 7,
		"difficulty": "Easy",
		"avg_difficulty": 22,
		"stars": 3.8,
		"release_date": "2021-03-12T13:00:00.000000Z",
		"retired": 0,
		"state": "active",
		"creator_id": 9,
		"creator_name": "MrR3boot",
		"creator_avatar": "/avatars/c1.png",
		"creator2_id": 11,
		"creator2_name": "R4J",
		"first_blood_user": "xct",
		"first_blood_user_id": 13569,
		"first_blood_time": "0H 5M 59S",
		"solves": 3021,
		"points": "50"
	}`)

	var raw RawChallenge
	require.NoError(t, json.Unmarshal(payload, &raw))
	c := ParseChallenge(raw)

	assert.Equal(t, "196", c.ID)
	assert.Equal(t, "Forensics", c.Category)
	assert.Equal(t, "Easy", c.Difficulty)
	assert.Equal(t, 22, c.DifficultyNum)
	assert.Equal(t, 50, c.Points)

	// Flat creator fields populate the maker list, creator2 is both
	// appended and separately addressable.
	require.Len(t, c.Makers, 2)
	assert.Equal(t, "MrR3boot", c.Makers[0].Name)
	assert.Equal(t, "R4J", c.Makers[1].Name)
	require.NotNil(t, c.Creator2)
	assert.Equal(t, "11", c.Creator2.ID)

	// The flat blood shape keeps its opaque duration string verbatim.
	require.NotNil(t, c.FirstBlood)
	assert.Equal(t, "xct", c.FirstBlood.UserName)
	assert.Equal(t, "0H 5M 59S", c.FirstBlood.Time)

	assert.Equal(t, "https://app.hackthebox.com/challenges/196", c.URL)
}

func TestParseChallenge_NestedMakerShape(t *testing.T) {
	payload := []byte(`{
		"challenge": {
			"id": "42",
			"name": "Weak RSA",
			"category_name": "Crypto",
			"difficultyText": "Easy",
			"difficulty": 21,
			"maker": {"id": 1, "name": "Thiseas", "isRespected": 1},
			"release": "2017-04-14 18:00:00",
			"firstBlood": {
				"user": {"id": 5, "name": "eks"},
				"created_at": "2017-04-15 00:00:00"
			},
			"retired": true
		}
	}`)

	var env ChallengeEnvelope
	require.NoError(t, json.Unmarshal(payload, &env))
	c := ParseChallenge(env.Challenge)

	assert.Equal(t, "42", c.ID)
	assert.Equal(t, "Crypto", c.Category)
	assert.Equal(t, "Easy", c.Difficulty)
	assert.Equal(t, 21, c.DifficultyNum)
	assert.Equal(t, "retired", c.State)

	require.Len(t, c.Makers, 1)
	assert.Equal(t, "Thiseas", c.Makers[0].Name)
	assert.True(t, c.Makers[0].IsRespected)
	assert.Nil(t, c.Creator2)

	// The nested blood shape derives its duration from release time.
	require.NotNil(t, c.FirstBlood)
	assert.Equal(t, "0D 6H 0M", c.FirstBlood.Time)
}

func TestParseChallenge_FlatCreatorWinsOverNested(t *testing.T) {
	c := ParseChallenge(RawChallenge{
		ID:          "1",
		CreatorID:   "10",
		CreatorName: "new",
		Maker:       &rawMaker{ID: "99", Name: "old"},
	})
	require.Len(t, c.Makers, 1)
	assert.Equal(t, "new", c.Makers[0].Name)
}

func TestParseChallenge_NumericDifficultyOnly(t *testing.T) {
	payload := []byte(`{"id": 7, "name": "x", "difficulty": 55}`)
	var raw RawChallenge
	require.NoError(t, json.Unmarshal(payload, &raw))
	c := ParseChallenge(raw)

	assert.Empty(t, c.Difficulty)
	assert.Equal(t, 55, c.DifficultyNum)
}

func TestChallengeCategoryName(t *testing.T) {
	assert.Equal(t, "Reversing", ChallengeCategoryName(1, ""))
	assert.Equal(t, "Blockchain", ChallengeCategoryName(12, "whatever"))
	assert.Equal(t, "Custom", ChallengeCategoryName(99, "Custom"))
	assert.Equal(t, "Unknown", ChallengeCategoryName(0, ""))
}

func TestDecodeChallengeRows_Layouts(t *testing.T) {
	for _, body := range []string{
		`[{"id": 1, "name": "a"}]`,
		`{"data": [{"id": 1, "name": "a"}]}`,
		`{"challenges": [{"id": 1, "name": "a"}]}`,
	} {
		rows, err := DecodeChallengeRows([]byte(body))
		require.NoError(t, err, body)
		require.Len(t, rows, 1, body)
		assert.Equal(t, "a", rows[0].Name)
	}
}

func TestChallengeFromSearchItem_RoundTrip(t *testing.T) {
	row := RawChallenge{
		ID: "196", Name: "The Needle", ChallengeCatID: 7,
		Difficulty: "Easy", Stars: 3.8, State: "active",
		ReleaseDate: "2021-03-12T13:00:00Z", Solves: 3021,
		CreatorID: "9", CreatorName: "MrR3boot",
	}
	item := SearchItemFromChallengeRow(row)
	c := ChallengeFromSearchItem(item)

	assert.Equal(t, "196", c.ID)
	assert.Equal(t, "Forensics", c.Category)
	assert.Equal(t, "Easy", c.Difficulty)
	assert.Equal(t, 3021, c.Solves)
	assert.True(t, c.Active)
	require.Len(t, c.Makers, 1)
	assert.Equal(t, "MrR3boot", c.Makers[0].Name)

	// A second projection of the rebuilt record is stable.
	again := ChallengeFromSearchItem(item)
	assert.Equal(t, c.ReleaseDate, again.ReleaseDate)
}
