package template

import (
	"strconv"
	"strings"
	"time"

	"htbnotes/internal/models"
)

// MachineVars builds the substitution set for a machine note.
func MachineVars(m *models.Machine, now time.Time) map[string]string {
	stars := starGlyphs(m.Rating)
	if stars == "" {
		stars = "☆☆☆☆☆"
	}

	release := ""
	if !m.Release.IsZero() {
		release = models.FormatUTC8(m.Release)
	}

	author := ""
	for _, maker := range m.Makers {
		if author != "" {
			author += "\n"
		}
		author += "  - " + maker.Name
	}
	if author == "" {
		author = "  - Unknown"
	}

	var maker1, maker2 models.Maker
	if len(m.Makers) > 0 {
		maker1 = m.Makers[0]
	}
	if len(m.Makers) > 1 {
		maker2 = m.Makers[1]
	}

	userBloodUser, userBloodUserID, userBloodUserAvatar, userBloodTime := bloodVars(m.UserBlood, m.FirstUserBloodTime)
	rootBloodUser, rootBloodUserID, rootBloodUserAvatar, rootBloodTime := bloodVars(m.RootBlood, m.FirstRootBloodTime)

	vars := map[string]string{
		"id":    m.ID,
		"title": m.Name,
		"name":  m.Name,
		"type":  "Machine",

		"OS":       m.OS,
		"os":       m.OS,
		"osSystem": m.OS,

		"difficulty":     m.Difficulty,
		"difficultyText": m.Difficulty,
		"difficultyNum":  strconv.Itoa(m.DifficultyNum),
		"avgDifficulty":  strconv.Itoa(m.DifficultyNum),

		"score":     formatRating(m.Rating),
		"rating":    formatRating(m.Rating),
		"scoreStar": stars,
		"stars":     stars,

		"image":    m.Avatar,
		"imageUrl": m.Avatar,
		"avatar":   m.Avatar,

		"datePublished": release,
		"release":       release,
		"releaseDate":   release,
		"currentDate":   models.FormatUTC8(now),
		"currentTime":   models.FormatUTC8Seconds(now),

		"author":             author,
		"maker":              author,
		"creatorName":        maker1.Name,
		"creatorId":          maker1.ID,
		"creatorAvatar":      maker1.Avatar,
		"creatorProfileUrl":  maker1.ProfileURL,
		"isRespected":        boolStr(maker1.IsRespected),
		"creator2Name":       maker2.Name,
		"creator2Id":         maker2.ID,
		"creator2Avatar":     maker2.Avatar,
		"creator2ProfileUrl": maker2.ProfileURL,
		"isRespected2":       boolStr(maker2.IsRespected),

		"points":       strconv.Itoa(m.Points),
		"userPoints":   strconv.Itoa(m.UserPoints),
		"rootPoints":   strconv.Itoa(m.RootPoints),
		"staticPoints": strconv.Itoa(m.StaticPoints),

		"userOwns":      strconv.Itoa(m.UserOwns),
		"rootOwns":      strconv.Itoa(m.RootOwns),
		"userOwnsCount": strconv.Itoa(m.UserOwnsCount),
		"rootOwnsCount": strconv.Itoa(m.RootOwnsCount),

		"retired":       retiredText(m.Retired),
		"retiredStatus": boolStr(m.Retired),
		"isCompleted":   boolStr(m.IsCompleted),
		"isFree":        boolStr(m.Free),
		"free":          boolStr(m.Free),
		"isActive":      boolStr(m.Active),
		"active":        boolStr(m.Active),
		"isTodo":        boolStr(m.IsTodo),
		"isSpawned":     boolStr(m.IsSpawned),

		"userBloodUser":       userBloodUser,
		"userBloodUserId":     userBloodUserID,
		"userBloodUserAvatar": userBloodUserAvatar,
		"userBloodTime":       userBloodTime,
		"firstUserBloodTime":  m.FirstUserBloodTime,
		"rootBloodUser":       rootBloodUser,
		"rootBloodUserId":     rootBloodUserID,
		"rootBloodUserAvatar": rootBloodUserAvatar,
		"rootBloodTime":       rootBloodTime,
		"firstRootBloodTime":  m.FirstRootBloodTime,

		"authUserFirstUserTime": m.AuthUserFirstUserTime,
		"authUserFirstRootTime": m.AuthUserFirstRootTime,
		"authUserInUserOwns":    boolStr(m.OwnedUser),
		"authUserInRootOwns":    boolStr(m.OwnedRoot),

		"recommended":  strconv.Itoa(m.Recommended),
		"favorite":     boolStr(m.IsFavorite),
		"ownedUser":    boolStr(m.OwnedUser),
		"ownedRoot":    boolStr(m.OwnedRoot),
		"completedAt":  "",
		"ip":           m.IP,
		"tags":         strings.Join(m.Tags, ", "),
		"synopsis":     m.Synopsis,
		"infoStatus":   m.InfoStatus,
		"seasonId":     strconv.Itoa(m.SeasonID),
		"reviewsCount": strconv.Itoa(m.ReviewsCount),
		"url":          m.URL,

		"authUserHasReviewed":        boolStr(m.AuthUserHasReviewed),
		"authUserHasSubmittedMatrix": boolStr(m.AuthUserHasSubmittedMatrix),
		"userCanReview":              boolStr(m.UserCanReview),

		"feedbackCake":      strconv.Itoa(m.Feedback.Cake),
		"feedbackVeryEasy":  strconv.Itoa(m.Feedback.VeryEasy),
		"feedbackEasy":      strconv.Itoa(m.Feedback.Easy),
		"feedbackTooEasy":   strconv.Itoa(m.Feedback.TooEasy),
		"feedbackMedium":    strconv.Itoa(m.Feedback.Medium),
		"feedbackBitHard":   strconv.Itoa(m.Feedback.BitHard),
		"feedbackHard":      strconv.Itoa(m.Feedback.Hard),
		"feedbackTooHard":   strconv.Itoa(m.Feedback.TooHard),
		"feedbackExHard":    strconv.Itoa(m.Feedback.ExHard),
		"feedbackBrainFuck": strconv.Itoa(m.Feedback.BrainFuck),

		"spFlag":               strconv.Itoa(m.SPFlag),
		"canAccessWalkthrough": boolStr(m.CanAccessWalkthrough),
		"hasChangelog":         boolStr(m.HasChangelog),
		"isGuidedEnabled":      boolStr(m.IsGuidedEnabled),
		"startMode":            m.StartMode,
		"showGoVip":            boolStr(m.ShowGoVip),
		"showGoVipServer":      boolStr(m.ShowGoVipServer),
		"ownRank":              strconv.Itoa(m.OwnRank),
		"machineMode":          m.MachineMode,
		"priceTier":            strconv.Itoa(m.PriceTier),
		"requiredSubscription": m.RequiredSubscription,
		"switchServerWarning":  m.SwitchServerWarning,
		"isSingleFlag":         boolStr(m.IsSingleFlag),

		"tierId": "",
		"isSp":   "false",
	}

	if m.Play != nil {
		vars["playInfoIsSpawned"] = boolStr(m.Play.IsSpawned)
		vars["playInfoIsSpawning"] = boolStr(m.Play.IsSpawning)
		vars["playInfoIsActive"] = boolStr(m.Play.IsActive)
		vars["playInfoActivePlayerCount"] = strconv.Itoa(m.Play.ActivePlayerCount)
		vars["playInfoExpiresAt"] = m.Play.ExpiresAt
	} else {
		vars["playInfoIsSpawned"] = "null"
		vars["playInfoIsSpawning"] = "false"
		vars["playInfoIsActive"] = "false"
		vars["playInfoActivePlayerCount"] = "0"
		vars["playInfoExpiresAt"] = ""
	}

	return vars
}

func bloodVars(blood *models.Blood, fallbackTime string) (user, id, avatar, elapsed string) {
	elapsed = fallbackTime
	if blood == nil {
		return
	}
	user, id, avatar = blood.UserName, blood.UserID, blood.UserAvatar
	if blood.Time != "" {
		elapsed = blood.Time
	}
	return
}

// formatRating prints a whole-number rating without the decimal point,
// matching how ratings render in note front matter.
func formatRating(r float64) string {
	if r == float64(int64(r)) {
		return strconv.FormatInt(int64(r), 10)
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
