package models

import (
	"strconv"
	"time"

	json "github.com/goccy/go-json"
)

// challengeCategories maps category ids to display names.
var challengeCategories = map[int]string{
	1:  "Reversing",
	2:  "Crypto",
	3:  "Stego",
	4:  "Pwn",
	5:  "Web",
	6:  "Misc",
	7:  "Forensics",
	8:  "Mobile",
	9:  "OSINT",
	10: "Hardware",
	11: "Fullpwn",
	12: "Blockchain",
}

// ChallengeCategoryName resolves a category id to its display name,
// preferring the id over the upstream-provided fallback text.
func ChallengeCategoryName(id int, fallback string) string {
	if name, ok := challengeCategories[id]; ok {
		return name
	}
	if fallback != "" {
		return fallback
	}
	return "Unknown"
}

// Challenge is the normalized challenge record.
type Challenge struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	CategoryID int    `json:"categoryId,omitempty"`

	Difficulty    string `json:"difficulty"`
	DifficultyNum int    `json:"difficultyNum"`

	Rating float64 `json:"rating"`
	Stars  float64 `json:"stars"`

	Avatar      string `json:"avatar"`
	AvatarThumb string `json:"avatarThumb,omitempty"`

	Release     time.Time `json:"release"`
	ReleaseDate string    `json:"releaseDate"`
	RetiredDate time.Time `json:"retiredDate,omitempty"`

	Retired bool   `json:"retired"`
	Active  bool   `json:"active"`
	State   string `json:"state,omitempty"`

	Makers   []Maker `json:"makers"`
	Creator2 *Maker  `json:"creator2,omitempty"`

	Tags []string `json:"tags,omitempty"`

	Points       int `json:"points"`
	StaticPoints int `json:"staticPoints"`

	IsCompleted       bool   `json:"isCompleted"`
	IsTodo            bool   `json:"isTodo"`
	IsSolved          bool   `json:"isSolved"`
	AuthUserSolve     bool   `json:"authUserSolve"`
	AuthUserSolveTime string `json:"authUserSolveTime,omitempty"`

	FirstBlood *Blood `json:"firstBlood,omitempty"`

	Solves    int `json:"solves"`
	Downloads int `json:"downloads"`

	HasDownload bool   `json:"hasDownload"`
	FileName    string `json:"fileName,omitempty"`
	FileSize    string `json:"fileSize,omitempty"`
	SHA256      string `json:"sha256,omitempty"`

	Docker       bool   `json:"docker"`
	DockerIP     string `json:"dockerIp,omitempty"`
	DockerPorts  string `json:"dockerPorts,omitempty"`
	DockerStatus string `json:"dockerStatus,omitempty"`

	PlayStatus    string   `json:"playStatus,omitempty"`
	PlayExpiresAt string   `json:"playExpiresAt,omitempty"`
	PlayIP        string   `json:"playIp,omitempty"`
	PlayPorts     string   `json:"playPorts,omitempty"`
	PlayMethods   []string `json:"playMethods,omitempty"`

	Description string `json:"description,omitempty"`
	Synopsis    string `json:"synopsis,omitempty"`

	Chart FeedbackChart `json:"chart"`

	Likes    int `json:"likes"`
	Dislikes int `json:"dislikes"`

	Recommended int `json:"recommended"`
	Released    int `json:"released"`

	LikeByAuthUser          bool `json:"likeByAuthUser"`
	DislikeByAuthUser       bool `json:"dislikeByAuthUser"`
	ReviewsCount            int  `json:"reviewsCount"`
	AuthUserHasReviewed     bool `json:"authUserHasReviewed"`
	UserCanReview           bool `json:"userCanReview"`
	CanAccessWalkthrough    bool `json:"canAccessWalkthrough"`
	HasChangelog            bool `json:"hasChangelog"`
	ShowGoVip               bool `json:"showGoVip"`
	UserSubmittedDifficulty int  `json:"userSubmittedDifficulty"`

	OwnedAt time.Time `json:"ownedAt,omitempty"`

	URL string `json:"url"`
}

// RawChallenge carries every field either challenge endpoint
// generation emits. The flat creator_*/first_blood_* fields are the
// newer shape and win over the nested maker/firstBlood objects.
type RawChallenge struct {
	ID             FlexID     `json:"id"`
	Name           string     `json:"name"`
	CategoryName   string     `json:"category_name"`
	Category       string     `json:"category"`
	CategoryID     FlexInt    `json:"category_id"`
	ChallengeCatID FlexInt    `json:"challenge_category_id"`
	Avatar         string     `json:"avatar"`
	AvatarThumb    string     `json:"avatar_thumb"`
	Difficulty     FlexString `json:"difficulty"`
	DifficultyText string     `json:"difficultyText"`
	AvgDifficulty  FlexInt    `json:"avg_difficulty"`
	Stars          FlexFloat  `json:"stars"`
	Rating         FlexFloat  `json:"rating"`
	Release        string     `json:"release"`
	ReleaseDate    string     `json:"release_date"`
	RetiredDate    string     `json:"retired_date"`
	Retired        FlexBool   `json:"retired"`
	Active         FlexBool   `json:"active"`
	State          string     `json:"state"`

	Maker *rawMaker `json:"maker"`

	CreatorID     FlexID   `json:"creator_id"`
	CreatorName   string   `json:"creator_name"`
	CreatorAvatar string   `json:"creator_avatar"`
	IsRespected   FlexBool `json:"isRespected"`

	Creator2ID     FlexID   `json:"creator2_id"`
	Creator2Name   string   `json:"creator2_name"`
	Creator2Avatar string   `json:"creator2_avatar"`
	IsRespected2   FlexBool `json:"isRespected2"`

	Labels rawTags `json:"labels"`
	Tags   rawTags `json:"tags"`

	Points       FlexInt `json:"points"`
	StaticPoints FlexInt `json:"static_points"`

	IsCompleted       FlexBool `json:"isCompleted"`
	IsTodo            FlexBool `json:"isTodo"`
	IsSolved          FlexBool `json:"isSolved"`
	AuthUserSolve     FlexBool `json:"authUserSolve"`
	AuthUserSolveTime string   `json:"authUserSolveTime"`
	OwnedAt           string   `json:"ownedAt"`

	FirstBlood *rawBlood `json:"firstBlood"`

	FirstBloodUser       string `json:"first_blood_user"`
	FirstBloodUserID     FlexID `json:"first_blood_user_id"`
	FirstBloodUserAvatar string `json:"first_blood_user_avatar"`
	FirstBloodTime       string `json:"first_blood_time"`

	Solves    FlexInt `json:"solves"`
	Downloads FlexInt `json:"downloads"`

	Download    FlexBool `json:"download"`
	HasDownload FlexBool `json:"hasDownload"`
	FileName    string   `json:"file_name"`
	FileSize    string   `json:"file_size"`
	SHA256      string   `json:"sha256"`

	Docker       FlexBool   `json:"docker"`
	DockerIP     FlexString `json:"docker_ip"`
	DockerPorts  FlexString `json:"docker_ports"`
	DockerStatus string     `json:"docker_status"`

	PlayInfo *struct {
		Status    string     `json:"status"`
		ExpiresAt string     `json:"expires_at"`
		IP        FlexString `json:"ip"`
		Ports     FlexString `json:"ports"`
	} `json:"play_info"`
	PlayMethods []string `json:"play_methods"`

	Description string `json:"description"`
	Synopsis    string `json:"synopsis"`

	DifficultyChart FeedbackChart `json:"difficulty_chart"`

	Likes    FlexInt `json:"likes"`
	Dislikes FlexInt `json:"dislikes"`

	Recommended FlexInt `json:"recommended"`
	Released    FlexInt `json:"released"`

	LikeByAuthUser      FlexBool `json:"likeByAuthUser"`
	DislikeByAuthUser   FlexBool `json:"dislikeByAuthUser"`
	ReviewsCount        FlexInt  `json:"reviews_count"`
	AuthUserHasReviewed FlexBool `json:"authUserHasReviewed"`
	UserCanReview       FlexBool `json:"user_can_review"`
	// Upstream misspells this field.
	CanAccessWalkthrough    FlexBool `json:"can_access_walkthough"`
	HasChangelog            FlexBool `json:"has_changelog"`
	ShowGoVip               FlexBool `json:"show_go_vip"`
	UserSubmittedDifficulty FlexInt  `json:"user_submitted_difficulty"`
}

// ChallengeEnvelope wraps the detail endpoint response.
type ChallengeEnvelope struct {
	Challenge RawChallenge `json:"challenge"`
}

// DecodeChallengeRows accepts the three observed list payload layouts:
// a bare array, {"data": [...]} and {"challenges": [...]}.
func DecodeChallengeRows(body []byte) ([]RawChallenge, error) {
	var bare []RawChallenge
	if err := json.Unmarshal(body, &bare); err == nil {
		return bare, nil
	}
	var wrapped struct {
		Data       []RawChallenge `json:"data"`
		Challenges []RawChallenge `json:"challenges"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, err
	}
	if wrapped.Data != nil {
		return wrapped.Data, nil
	}
	return wrapped.Challenges, nil
}

// ParseChallenge normalizes a wire challenge into the canonical form.
func ParseChallenge(raw RawChallenge) Challenge {
	categoryID := raw.ChallengeCatID.Int()
	if categoryID == 0 {
		categoryID = raw.CategoryID.Int()
	}
	fallbackName := raw.CategoryName
	if fallbackName == "" {
		fallbackName = raw.Category
	}

	releaseRaw := raw.ReleaseDate
	if releaseRaw == "" {
		releaseRaw = raw.Release
	}
	release := ParseAPITime(releaseRaw)

	c := Challenge{
		ID:         raw.ID.String(),
		Name:       raw.Name,
		Category:   ChallengeCategoryName(categoryID, fallbackName),
		CategoryID: categoryID,

		Avatar:      raw.Avatar,
		AvatarThumb: raw.AvatarThumb,

		Release:     release,
		ReleaseDate: FormatUTC8(release),
		RetiredDate: ParseAPITime(raw.RetiredDate),

		Retired: raw.Retired.Bool(),
		Active:  raw.Active.Bool() || raw.State == "active",

		Points:       raw.Points.Int(),
		StaticPoints: raw.StaticPoints.Int(),

		IsCompleted:       raw.IsCompleted.Bool(),
		IsTodo:            raw.IsTodo.Bool(),
		IsSolved:          raw.IsSolved.Bool() || raw.AuthUserSolve.Bool(),
		AuthUserSolve:     raw.AuthUserSolve.Bool(),
		AuthUserSolveTime: raw.AuthUserSolveTime,
		OwnedAt:           ParseAPITime(raw.OwnedAt),

		Solves:    raw.Solves.Int(),
		Downloads: raw.Downloads.Int(),

		HasDownload: raw.Download.Bool() || raw.HasDownload.Bool(),
		FileName:    raw.FileName,
		FileSize:    raw.FileSize,
		SHA256:      raw.SHA256,

		Docker:       raw.Docker.Bool(),
		DockerIP:     raw.DockerIP.String(),
		DockerPorts:  raw.DockerPorts.String(),
		DockerStatus: raw.DockerStatus,

		PlayMethods: raw.PlayMethods,

		Description: raw.Description,
		Synopsis:    raw.Synopsis,

		Chart: raw.DifficultyChart,

		Likes:    raw.Likes.Int(),
		Dislikes: raw.Dislikes.Int(),

		Recommended: raw.Recommended.Int(),
		Released:    raw.Released.Int(),

		LikeByAuthUser:          raw.LikeByAuthUser.Bool(),
		DislikeByAuthUser:       raw.DislikeByAuthUser.Bool(),
		ReviewsCount:            raw.ReviewsCount.Int(),
		AuthUserHasReviewed:     raw.AuthUserHasReviewed.Bool(),
		UserCanReview:           raw.UserCanReview.Bool(),
		CanAccessWalkthrough:    raw.CanAccessWalkthrough.Bool(),
		HasChangelog:            raw.HasChangelog.Bool(),
		ShowGoVip:               raw.ShowGoVip.Bool(),
		UserSubmittedDifficulty: raw.UserSubmittedDifficulty.Int(),
	}

	if c.State = raw.State; c.State == "" {
		if c.Retired {
			c.State = "retired"
		} else {
			c.State = "active"
		}
	}

	// difficulty arrives as text on list rows and as a number on some
	// detail payloads; difficultyText wins when present.
	if c.Difficulty = raw.DifficultyText; c.Difficulty == "" {
		if _, err := strconv.Atoi(raw.Difficulty.String()); err != nil {
			c.Difficulty = raw.Difficulty.String()
		}
	}
	c.DifficultyNum = raw.AvgDifficulty.Int()
	if c.DifficultyNum == 0 {
		if n, err := strconv.Atoi(raw.Difficulty.String()); err == nil {
			c.DifficultyNum = n
		}
	}

	c.Stars = raw.Stars.Float()
	if c.Rating = raw.Stars.Float(); c.Rating == 0 {
		c.Rating = raw.Rating.Float()
	}

	switch {
	case raw.CreatorName != "" || raw.CreatorID.String() != "":
		c.Makers = append(c.Makers, Maker{
			ID:          raw.CreatorID.String(),
			Name:        raw.CreatorName,
			Avatar:      raw.CreatorAvatar,
			IsRespected: raw.IsRespected.Bool(),
		})
	case raw.Maker != nil:
		c.Makers = append(c.Makers, Maker{
			ID:          raw.Maker.ID.String(),
			Name:        raw.Maker.Name,
			Avatar:      raw.Maker.Avatar,
			IsRespected: raw.Maker.IsRespected.Bool(),
		})
	}
	if raw.Creator2Name != "" || raw.Creator2ID.String() != "" {
		second := Maker{
			ID:          raw.Creator2ID.String(),
			Name:        raw.Creator2Name,
			Avatar:      raw.Creator2Avatar,
			IsRespected: raw.IsRespected2.Bool(),
		}
		c.Makers = append(c.Makers, second)
		c.Creator2 = &second
	}

	if len(raw.Labels) > 0 {
		c.Tags = raw.Labels
	} else if len(raw.Tags) > 0 {
		c.Tags = raw.Tags
	}

	switch {
	case raw.FirstBloodUser != "" || raw.FirstBloodUserID.String() != "":
		c.FirstBlood = &Blood{
			UserID:     raw.FirstBloodUserID.String(),
			UserName:   raw.FirstBloodUser,
			UserAvatar: raw.FirstBloodUserAvatar,
			Time:       raw.FirstBloodTime,
		}
	case raw.FirstBlood != nil:
		blood := raw.FirstBlood.normalize()
		blood.UserAvatar = raw.FirstBlood.User.Avatar
		if blood.Time == "" {
			blood.Time = BloodDuration(release, ParseAPITime(raw.FirstBlood.CreatedAt))
		}
		c.FirstBlood = blood
	}

	if raw.PlayInfo != nil {
		c.PlayStatus = raw.PlayInfo.Status
		c.PlayExpiresAt = FormatUTC8(ParseAPITime(raw.PlayInfo.ExpiresAt))
		c.PlayIP = raw.PlayInfo.IP.String()
		c.PlayPorts = raw.PlayInfo.Ports.String()
	}

	c.URL = ChallengeURL(c.ID)
	return c
}

// SearchItemFromChallengeRow projects a list row onto the cached form.
func SearchItemFromChallengeRow(raw RawChallenge) SearchItem {
	c := ParseChallenge(raw)
	return SearchItem{
		ID:          c.ID,
		Name:        c.Name,
		Avatar:      c.Avatar,
		Difficulty:  c.Difficulty,
		Category:    c.Category,
		CategoryID:  c.CategoryID,
		ReleaseDate: c.ReleaseDate,
		State:       c.State,
		Retired:     c.Retired,
		Owned:       c.AuthUserSolve || c.IsSolved,
		Rating:      c.Rating,
		Solves:      c.Solves,
		Points:      c.Points,
		CreatorID:   firstMakerID(c.Makers),
		CreatorName: firstMakerName(c.Makers),
	}
}

// ChallengeFromSearchItem rebuilds the displayable challenge a cached
// row can support. Detail-only fields stay empty.
func ChallengeFromSearchItem(item SearchItem) Challenge {
	release := ParseAPITime(item.ReleaseDate)
	c := Challenge{
		ID:          item.ID,
		Name:        item.Name,
		Avatar:      item.Avatar,
		Category:    ChallengeCategoryName(item.CategoryID, item.Category),
		CategoryID:  item.CategoryID,
		Difficulty:  item.Difficulty,
		Release:     release,
		ReleaseDate: FormatUTC8(release),
		State:       item.State,
		Retired:     item.Retired || item.State == "retired",
		Active:      item.State == "active",
		Rating:      item.Rating,
		Stars:       item.Rating,
		Solves:      item.Solves,
		Points:      item.Points,
		IsSolved:    item.Owned,
		IsCompleted: item.Owned,
	}
	if item.CreatorName != "" || item.CreatorID != "" {
		c.Makers = []Maker{{ID: item.CreatorID, Name: item.CreatorName}}
	}
	c.URL = ChallengeURL(c.ID)
	return c
}

func firstMakerID(makers []Maker) string {
	if len(makers) == 0 {
		return ""
	}
	return makers[0].ID
}

func firstMakerName(makers []Maker) string {
	if len(makers) == 0 {
		return ""
	}
	return makers[0].Name
}
