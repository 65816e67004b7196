package template

import (
	"strconv"
	"strings"
	"time"

	"htbnotes/internal/models"
)

// ChallengeVars builds the substitution set for a challenge note.
func ChallengeVars(c *models.Challenge, now time.Time) map[string]string {
	release := c.ReleaseDate
	if release == "" && !c.Release.IsZero() {
		release = models.FormatUTC8(c.Release)
	}

	names := make([]string, 0, len(c.Makers))
	for _, maker := range c.Makers {
		names = append(names, maker.Name)
	}
	author := strings.Join(names, ", ")

	var maker1 models.Maker
	if len(c.Makers) > 0 {
		maker1 = c.Makers[0]
	}
	var maker2 models.Maker
	if c.Creator2 != nil {
		maker2 = *c.Creator2
	}

	var blood models.Blood
	if c.FirstBlood != nil {
		blood = *c.FirstBlood
	}

	return map[string]string{
		"id":           c.ID,
		"title":        c.Name,
		"name":         c.Name,
		"type":         "Challenge",
		"category":     c.Category,
		"categoryName": c.Category,

		"difficulty":     c.Difficulty,
		"difficultyText": c.Difficulty,
		"difficultyNum":  strconv.Itoa(c.DifficultyNum),
		"avgDifficulty":  strconv.Itoa(c.DifficultyNum),

		"rating":    formatRating(c.Rating),
		"score":     strconv.FormatFloat(c.Rating, 'f', 1, 64),
		"scoreStar": starGlyphs(c.Stars),
		"stars":     formatRating(c.Stars),

		"imageUrl": c.Avatar,
		"avatar":   c.Avatar,
		"image":    c.Avatar,

		"currentDate": models.FormatUTC8(now),
		"currentTime": models.FormatUTC8Seconds(now),

		"datePublished": release,
		"release":       release,
		"releaseDate":   release,

		"authUserSolveTime": c.AuthUserSolveTime,

		"author":         author,
		"maker":          author,
		"creatorName":    maker1.Name,
		"creatorId":      maker1.ID,
		"creatorAvatar":  maker1.Avatar,
		"isRespected":    boolStr(maker1.IsRespected),
		"creator2Name":   maker2.Name,
		"creator2Id":     maker2.ID,
		"creator2Avatar": maker2.Avatar,
		"isRespected2":   boolStr(maker2.IsRespected),

		"firstBloodUser":       blood.UserName,
		"firstBloodUserId":     blood.UserID,
		"firstBloodUserAvatar": blood.UserAvatar,
		"firstBloodTime":       blood.Time,

		"description": c.Description,

		"download": boolStr(c.HasDownload),
		"sha256":   c.SHA256,
		"fileName": c.FileName,
		"fileSize": c.FileSize,

		"docker":       boolStr(c.Docker),
		"dockerIp":     c.DockerIP,
		"dockerPort":   c.DockerPorts,
		"dockerPorts":  c.DockerPorts,
		"dockerStatus": c.DockerStatus,

		"playInfoStatus":    c.PlayStatus,
		"playInfoExpiresAt": c.PlayExpiresAt,
		"playInfoIp":        c.PlayIP,
		"playInfoPorts":     c.PlayPorts,
		"playMethods":       strings.Join(c.PlayMethods, ", "),

		"points":       strconv.Itoa(c.Points),
		"staticPoints": strconv.Itoa(c.StaticPoints),

		"solves":            strconv.Itoa(c.Solves),
		"likes":             strconv.Itoa(c.Likes),
		"dislikes":          strconv.Itoa(c.Dislikes),
		"likeByAuthUser":    boolStr(c.LikeByAuthUser),
		"dislikeByAuthUser": boolStr(c.DislikeByAuthUser),
		"reviewsCount":      strconv.Itoa(c.ReviewsCount),

		"retired":       retiredText(c.Retired),
		"retiredStatus": boolStr(c.Retired),
		"state":         c.State,
		"released":      strconv.Itoa(c.Released),
		"isCompleted":   boolStr(c.IsCompleted),
		"solved":        cnBool(c.IsSolved),
		"authUserSolve": boolStr(c.AuthUserSolve),
		"isActive":      boolStr(c.Active),
		"isTodo":        boolStr(c.IsTodo),

		// Challenges carry no favorite flag upstream.
		"favorite": "false",

		"recommended": strconv.Itoa(c.Recommended),

		"authUserHasReviewed":     boolStr(c.AuthUserHasReviewed),
		"userCanReview":           boolStr(c.UserCanReview),
		"canAccessWalkthrough":    boolStr(c.CanAccessWalkthrough),
		"hasChangelog":            boolStr(c.HasChangelog),
		"showGoVip":               boolStr(c.ShowGoVip),
		"userSubmittedDifficulty": strconv.Itoa(c.UserSubmittedDifficulty),

		"feedbackCake":      strconv.Itoa(c.Chart.Cake),
		"feedbackVeryEasy":  strconv.Itoa(c.Chart.VeryEasy),
		"feedbackEasy":      strconv.Itoa(c.Chart.Easy),
		"feedbackTooEasy":   strconv.Itoa(c.Chart.TooEasy),
		"feedbackMedium":    strconv.Itoa(c.Chart.Medium),
		"feedbackBitHard":   strconv.Itoa(c.Chart.BitHard),
		"feedbackHard":      strconv.Itoa(c.Chart.Hard),
		"feedbackTooHard":   strconv.Itoa(c.Chart.TooHard),
		"feedbackExHard":    strconv.Itoa(c.Chart.ExHard),
		"feedbackBrainFuck": strconv.Itoa(c.Chart.BrainFuck),

		"tags": strings.Join(c.Tags, ", "),
		"url":  models.ChallengeURL(c.ID),
	}
}
