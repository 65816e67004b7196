package template

import (
	"testing"
	"time"

	"htbnotes/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestFill_ReplacesAllOccurrences(t *testing.T) {
	out := Fill("# {{name}}\n{{name}} is {{difficulty}}", map[string]string{
		"name":       "Pandora",
		"difficulty": "Easy",
	})
	assert.Equal(t, "# Pandora\nPandora is Easy", out)
}

func TestFill_UnknownTokensUntouched(t *testing.T) {
	out := Fill("{{name}} {{mystery}} {{}}", map[string]string{"name": "Cap"})
	assert.Equal(t, "Cap {{mystery}} {{}}", out)
}

func TestFill_EmptyValue(t *testing.T) {
	out := Fill("ip: {{ip}};", map[string]string{"ip": ""})
	assert.Equal(t, "ip: ;", out)
}

func TestStarGlyphs(t *testing.T) {
	assert.Equal(t, "", starGlyphs(0))
	assert.Equal(t, "⭐⭐⭐⭐", starGlyphs(4.2))
	assert.Equal(t, "⭐⭐⭐⭐⭐", starGlyphs(4.6))
}

func TestMachineVars_Tokens(t *testing.T) {
	now := time.Date(2024, 3, 1, 4, 0, 0, 0, time.UTC)
	m := &models.Machine{
		ID:         "620",
		Name:       "Pandora",
		OS:         "Linux",
		Difficulty: "Easy",
		Rating:     4.4,
		Release:    time.Date(2022, 1, 8, 17, 0, 0, 0, time.UTC),
		Retired:    true,
		Makers: []models.Maker{
			{ID: "1", Name: "TheCyberGeek", ProfileURL: models.ProfileURL("1")},
			{ID: "2", Name: "dmw0ng"},
		},
		UserBlood:          &models.Blood{UserName: "szymex73", UserID: "176387", Time: "0D 0H 20M"},
		FirstUserBloodTime: "2022-01-09 01:20",
		Points:             20,
		URL:                models.MachineURL("620"),
	}

	vars := MachineVars(m, now)
	assert.Equal(t, "Machine", vars["type"])
	assert.Equal(t, "⭐⭐⭐⭐", vars["stars"])
	assert.Equal(t, "  - TheCyberGeek\n  - dmw0ng", vars["author"])
	assert.Equal(t, "dmw0ng", vars["creator2Name"])
	assert.Equal(t, "2022-01-09 01:00", vars["release"])
	assert.Equal(t, "2024-03-01 12:00", vars["currentDate"])
	assert.Equal(t, "2024-03-01 12:00:00", vars["currentTime"])
	assert.Equal(t, "已退役", vars["retired"])
	assert.Equal(t, "0D 0H 20M", vars["userBloodTime"])
	assert.Equal(t, "2022-01-09 01:20", vars["firstUserBloodTime"])
	// No live instance: spawned state is unknown, not false.
	assert.Equal(t, "null", vars["playInfoIsSpawned"])
	assert.Equal(t, "https://app.hackthebox.com/machines/620", vars["url"])
}

func TestMachineVars_NoMakers(t *testing.T) {
	vars := MachineVars(&models.Machine{ID: "1", Name: "Lame"}, time.Now())
	assert.Equal(t, "  - Unknown", vars["author"])
	assert.Equal(t, "", vars["creatorName"])
	assert.Equal(t, "false", vars["isRespected"])
	assert.Equal(t, "☆☆☆☆☆", vars["stars"])
}

func TestChallengeVars_Tokens(t *testing.T) {
	c := &models.Challenge{
		ID:          "201",
		Name:        "Find The Easy Pass",
		Category:    "Reversing",
		Difficulty:  "Easy",
		Rating:      4.0,
		Stars:       4.0,
		ReleaseDate: "2017-05-11 08:00",
		Makers: []models.Maker{
			{ID: "9", Name: "Thiseas"},
			{ID: "10", Name: "luc"},
		},
		FirstBlood: &models.Blood{UserName: "adxn37", Time: "0H 5M 59S"},
		IsSolved:   true,
		Retired:    false,
		Solves:     12000,
	}

	vars := ChallengeVars(c, time.Now())
	assert.Equal(t, "Challenge", vars["type"])
	assert.Equal(t, "Thiseas, luc", vars["author"])
	assert.Equal(t, "4.0", vars["score"])
	assert.Equal(t, "4", vars["stars"])
	assert.Equal(t, "⭐⭐⭐⭐", vars["scoreStar"])
	assert.Equal(t, "0H 5M 59S", vars["firstBloodTime"])
	assert.Equal(t, "是", vars["solved"])
	assert.Equal(t, "活跃中", vars["retired"])
	assert.Equal(t, "false", vars["favorite"])
	assert.Equal(t, "https://app.hackthebox.com/challenges/201", vars["url"])
}

func TestSherlockVars_Tokens(t *testing.T) {
	s := &models.Sherlock{
		ID:          "733",
		Name:        "Meerkat",
		Category:    "SOC",
		Difficulty:  "Easy",
		Rating:      4.6,
		Stars:       5,
		ReleaseDate: "2023-11-14 01:00",
		Retired:     false,
		IsCompleted: true,
		Makers:      []models.Maker{{ID: "77", Name: "sebh24"}},
		Tags:        []string{"Network", "DFIR"},
	}

	vars := SherlockVars(s, time.Now())
	assert.Equal(t, "Sherlock", vars["type"])
	assert.Equal(t, "Forensics", vars["category"])
	assert.Equal(t, "SOC", vars["categoryName"])
	assert.Equal(t, "- [sebh24](https://app.hackthebox.com/profile/77)", vars["author"])
	assert.Equal(t, "4.6", vars["score"])
	assert.Equal(t, "⭐⭐⭐⭐⭐", vars["scoreStar"])
	assert.Equal(t, "是", vars["isOwned"])
	assert.Equal(t, "否", vars["retired"])
	assert.Equal(t, "active", vars["state"])
	assert.Equal(t, "Network, DFIR", vars["tags"])
	assert.Equal(t, "https://app.hackthebox.com/sherlocks/733", vars["url"])
}

func TestSherlockVars_CategoryDefault(t *testing.T) {
	vars := SherlockVars(&models.Sherlock{ID: "1", Retired: true}, time.Now())
	assert.Equal(t, "DFIR", vars["categoryName"])
	assert.Equal(t, "retired_free", vars["state"])
}

func TestFill_BuiltinMachineTemplate(t *testing.T) {
	m := &models.Machine{ID: "620", Name: "Pandora", OS: "Linux", Difficulty: "Easy", Rating: 4.4}
	out := Fill(BuiltinMachineTemplate, MachineVars(m, time.Now()))
	assert.Contains(t, out, `title: "Pandora"`)
	assert.Contains(t, out, "OS: Linux")
	assert.NotContains(t, out, "{{")
}
