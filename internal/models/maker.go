package models

import (
	"strings"

	json "github.com/goccy/go-json"
)

// Maker is one record author. Records carry at most two conceptual
// makers; the second is also addressable by ordinal position.
type Maker struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Avatar      string `json:"avatar"`
	IsRespected bool   `json:"isRespected"`
	ProfileURL  string `json:"profileUrl,omitempty"`
}

// Blood is a normalized first-solve record.
type Blood struct {
	UserID     string `json:"userId"`
	UserName   string `json:"userName"`
	UserAvatar string `json:"userAvatar"`
	CreatedAt  string `json:"createdAt,omitempty"`
	// Elapsed time since release, e.g. "0D 5H 59M". Treated as an
	// opaque display string; the two upstream shapes are not known to
	// share units.
	Time string `json:"time"`
}

// rawMaker is the nested maker object shape.
type rawMaker struct {
	ID          FlexID   `json:"id"`
	Name        string   `json:"name"`
	Avatar      string   `json:"avatar"`
	IsRespected FlexBool `json:"isRespected"`
	ProfileURL  string   `json:"profile_url"`
}

// rawBlood is the nested first-blood object shape.
type rawBlood struct {
	User struct {
		ID     FlexID `json:"id"`
		Name   string `json:"name"`
		Avatar string `json:"avatar"`
	} `json:"user"`
	CreatedAt       string `json:"created_at"`
	BloodDifference string `json:"blood_difference"`
}

// rawLabel is one tag entry; tags also arrive as plain strings, which
// rawTags absorbs.
type rawLabel struct {
	ID   FlexID `json:"id"`
	Name string `json:"name"`
}

// rawTags accepts either a list of {name} objects or a flat string
// list, producing the flat ordered form either way.
type rawTags []string

func (t *rawTags) UnmarshalJSON(b []byte) error {
	trimmed := strings.TrimSpace(string(b))
	if trimmed == "" || trimmed == "null" {
		*t = nil
		return nil
	}
	var labels []rawLabel
	if err := json.Unmarshal(b, &labels); err == nil {
		out := make([]string, 0, len(labels))
		for _, l := range labels {
			out = append(out, l.Name)
		}
		*t = out
		return nil
	}
	var plain []string
	if err := json.Unmarshal(b, &plain); err != nil {
		return err
	}
	*t = plain
	return nil
}
