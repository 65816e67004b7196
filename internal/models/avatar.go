package models

import "strings"

// WebBaseURL is the public web frontend all record URLs point at.
const WebBaseURL = "https://app.hackthebox.com"

// s3AvatarPrefix fronts relative avatar paths. API payloads mix fully
// qualified URLs with bare storage paths, sometimes in the same record.
const s3AvatarPrefix = "https://htb-mp-prod-public-storage.s3.eu-central-1.amazonaws.com"

// AbsoluteAvatar qualifies a relative avatar path against the public
// storage bucket. Already-absolute URLs and empty values pass through.
func AbsoluteAvatar(path string) string {
	if path == "" || strings.HasPrefix(path, "http") {
		return path
	}
	return s3AvatarPrefix + path
}

// MachineURL returns the web page for a machine id.
func MachineURL(id string) string { return WebBaseURL + "/machines/" + id }

// ChallengeURL returns the web page for a challenge id.
func ChallengeURL(id string) string { return WebBaseURL + "/challenges/" + id }

// SherlockURL returns the web page for a sherlock id.
func SherlockURL(id string) string { return WebBaseURL + "/sherlocks/" + id }

// ProfileURL returns the web page for a user profile id.
func ProfileURL(id string) string { return WebBaseURL + "/profile/" + id }

// FeedbackChart is the community difficulty vote distribution.
type FeedbackChart struct {
	Cake      int `json:"counterCake"`
	VeryEasy  int `json:"counterVeryEasy"`
	Easy      int `json:"counterEasy"`
	TooEasy   int `json:"counterTooEasy"`
	Medium    int `json:"counterMedium"`
	BitHard   int `json:"counterBitHard"`
	Hard      int `json:"counterHard"`
	TooHard   int `json:"counterTooHard"`
	ExHard    int `json:"counterExHard"`
	BrainFuck int `json:"counterBrainFuck"`
}

// PlayInfo describes a live machine instance.
type PlayInfo struct {
	IsSpawned         bool   `json:"isSpawned"`
	IsSpawning        bool   `json:"isSpawning"`
	IsActive          bool   `json:"isActive"`
	ActivePlayerCount int    `json:"activePlayerCount"`
	ExpiresAt         string `json:"expiresAt"`
}

type rawPlayInfo struct {
	IsSpawned         FlexBool `json:"isSpawned"`
	IsSpawning        FlexBool `json:"isSpawning"`
	IsActive          FlexBool `json:"isActive"`
	ActivePlayerCount FlexInt  `json:"active_player_count"`
	ExpiresAt         string   `json:"expires_at"`
}
