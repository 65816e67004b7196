package template

import (
	"strconv"
	"strings"
	"time"

	"htbnotes/internal/models"
)

// SherlockVars builds the substitution set for a sherlock note.
func SherlockVars(s *models.Sherlock, now time.Time) map[string]string {
	release := s.ReleaseDate
	if release == "" && !s.Release.IsZero() {
		release = models.FormatUTC8(s.Release)
	}

	lines := make([]string, 0, len(s.Makers))
	for _, maker := range s.Makers {
		lines = append(lines, "- ["+maker.Name+"]("+models.ProfileURL(maker.ID)+")")
	}
	author := strings.Join(lines, "\n")

	category := s.Category
	if category == "" {
		category = "DFIR"
	}

	state := s.State
	if state == "" {
		if s.Retired {
			state = "retired_free"
		} else {
			state = "active"
		}
	}

	scenario := s.Scenario
	if scenario == "" {
		scenario = s.Description
	}

	return map[string]string{
		"id":    s.ID,
		"title": s.Name,
		"name":  s.Name,
		"type":  "Sherlock",

		// Sherlocks sit under the Forensics umbrella regardless of
		// their own category name.
		"category":     "Forensics",
		"categoryId":   strconv.Itoa(s.CategoryID),
		"categoryName": category,

		"difficulty":     s.Difficulty,
		"difficultyText": s.Difficulty,

		"rating":      formatRating(s.Rating),
		"score":       strconv.FormatFloat(s.Rating, 'f', 1, 64),
		"scoreStar":   starGlyphs(float64(s.Stars)),
		"stars":       strconv.Itoa(s.Stars),
		"ratingCount": strconv.Itoa(s.RatingCount),

		"imageUrl": s.Avatar,
		"avatar":   s.Avatar,

		"currentDate": models.FormatUTC8(now),
		"currentTime": models.FormatUTC8Seconds(now),

		"releaseAt":     release,
		"releaseDate":   release,
		"datePublished": release,
		"release":       release,

		"author": author,
		"maker":  author,

		"points": strconv.Itoa(s.Points),

		"solves":        strconv.Itoa(s.Solves),
		"userOwnsCount": strconv.Itoa(s.Solves),

		"state":       state,
		"retired":     cnBool(s.Retired),
		"isOwned":     cnBool(s.IsCompleted),
		"isCompleted": cnBool(s.IsCompleted),
		"completed":   cnBool(s.IsCompleted),
		"solved":      cnBool(s.IsSolved),
		"isTodo":      cnBool(s.IsTodo),

		"progress":            strconv.Itoa(s.Progress),
		"authUserHasReviewed": cnBool(s.AuthUserHasReviewed),
		"userCanReview":       cnBool(s.UserCanReview),
		"writeupVisible":      cnBool(s.WriteupVisible),
		"showGoVip":           cnBool(s.ShowGoVip),
		"favorite":            cnBool(s.Favorite),
		"pinned":              cnBool(s.Pinned),

		"scenario":    scenario,
		"description": s.Description,

		"tags":        strings.Join(s.Tags, ", "),
		"playMethods": strings.Join(s.PlayMethods, ", "),

		"retires":           s.Retires,
		"retiresName":       "",
		"retiresDifficulty": "",
		"retiresAvatar":     "",

		"url": models.SherlockURL(s.ID),
	}
}
