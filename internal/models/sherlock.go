package models

import "time"

// Sherlock is the normalized forensic exercise record.
type Sherlock struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	CategoryID int    `json:"categoryId,omitempty"`

	Difficulty    string `json:"difficulty"`
	DifficultyNum int    `json:"difficultyNum"`

	Rating      float64 `json:"rating"`
	Stars       int     `json:"stars"`
	RatingCount int     `json:"ratingCount"`

	Avatar string `json:"avatar"`

	Release     time.Time `json:"release"`
	ReleaseDate string    `json:"releaseDate"`

	State   string `json:"state"`
	Retired bool   `json:"retired"`
	Active  bool   `json:"active"`

	Makers []Maker  `json:"makers,omitempty"`
	Tags   []string `json:"tags,omitempty"`

	Points int `json:"points"`

	IsCompleted bool `json:"isCompleted"`
	IsTodo      bool `json:"isTodo"`
	IsSolved    bool `json:"isSolved"`
	Progress    int  `json:"progress"`

	Solves int `json:"solves"`

	HasDownload bool     `json:"hasDownload"`
	PlayMethods []string `json:"playMethods,omitempty"`

	Description string `json:"description,omitempty"`
	Scenario    string `json:"scenario,omitempty"`

	Favorite       bool `json:"favorite"`
	Pinned         bool `json:"pinned"`
	WriteupVisible bool `json:"writeupVisible"`

	AuthUserHasReviewed bool `json:"authUserHasReviewed"`
	UserCanReview       bool `json:"userCanReview"`
	ShowGoVip           bool `json:"showGoVip"`

	Retires string `json:"retires,omitempty"`

	URL string `json:"url"`
}

// RawSherlock is the detail endpoint payload ("data" member). The
// detail endpoint carries the description but neither makers nor
// points.
type RawSherlock struct {
	ID           FlexID    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Difficulty   string    `json:"difficulty"`
	Retired      FlexBool  `json:"retired"`
	ReleaseAt    string    `json:"release_at"`
	State        string    `json:"state"`
	CategoryID   FlexInt   `json:"category_id"`
	CategoryName string    `json:"category_name"`
	ShowGoVip    FlexBool  `json:"show_go_vip"`
	IsTodo       FlexBool  `json:"isTodo"`
	Rating       FlexFloat `json:"rating"`
	RatingCount  FlexInt   `json:"rating_count"`

	AuthUserHasReviewed FlexBool `json:"auth_user_has_reviewed"`
	UserCanReview       FlexBool `json:"user_can_review"`
	WriteupVisible      FlexBool `json:"writeup_visible"`

	Avatar        string   `json:"avatar"`
	Favorite      FlexBool `json:"favorite"`
	UserOwnsCount FlexInt  `json:"user_owns_count"`
	Tags          rawTags  `json:"tags"`
	PlayMethods   []string `json:"play_methods"`
}

// SherlockEnvelope wraps the detail endpoint response.
type SherlockEnvelope struct {
	Data RawSherlock `json:"data"`
}

// RawSherlockRow is one row of the paginated list endpoint, which
// carries the richer projection the cache is built from.
type RawSherlockRow struct {
	ID           FlexID    `json:"id"`
	Name         string    `json:"name"`
	Avatar       string    `json:"avatar"`
	Difficulty   string    `json:"difficulty"`
	CategoryName string    `json:"category_name"`
	CategoryID   FlexInt   `json:"category_id"`
	ReleaseDate  string    `json:"release_date"`
	IsOwned      FlexBool  `json:"is_owned"`
	State        string    `json:"state"`
	Rating       FlexFloat `json:"rating"`
	RatingCount  FlexInt   `json:"rating_count"`
	Solves       FlexInt   `json:"solves"`
	Progress     FlexInt   `json:"progress"`
	PlayMethods  []string  `json:"play_methods"`
}

// PageMeta is the cursor block of paginated list responses.
type PageMeta struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
}

// HasMore reports whether another page follows.
func (m PageMeta) HasMore() bool { return m.CurrentPage < m.LastPage }

// SherlockListEnvelope wraps one page of the list endpoint.
type SherlockListEnvelope struct {
	Data []RawSherlockRow `json:"data"`
	Meta PageMeta         `json:"meta"`
}

// ParseSherlock normalizes a detail payload.
func ParseSherlock(raw RawSherlock) Sherlock {
	release := ParseAPITime(raw.ReleaseAt)
	category := raw.CategoryName
	if category == "" {
		category = "DFIR"
	}
	s := Sherlock{
		ID:            raw.ID.String(),
		Name:          raw.Name,
		Category:      category,
		CategoryID:    raw.CategoryID.Int(),
		Difficulty:    raw.Difficulty,
		DifficultyNum: DifficultyNum(raw.Difficulty),
		Rating:        raw.Rating.Float(),
		Stars:         roundStars(raw.Rating.Float()),
		RatingCount:   raw.RatingCount.Int(),
		Avatar:        AbsoluteAvatar(raw.Avatar),
		Release:       release,
		ReleaseDate:   FormatUTC8(release),
		State:         raw.State,
		Retired:       raw.Retired.Bool() || raw.State == "retired_free",
		Active:        raw.State == "active",
		Tags:          raw.Tags,
		IsTodo:        raw.IsTodo.Bool(),
		Solves:        raw.UserOwnsCount.Int(),
		HasDownload:   containsString(raw.PlayMethods, "download"),
		PlayMethods:   raw.PlayMethods,
		Description:   raw.Description,
		Scenario:      raw.Description,
		Favorite:      raw.Favorite.Bool(),

		WriteupVisible:      raw.WriteupVisible.Bool(),
		AuthUserHasReviewed: raw.AuthUserHasReviewed.Bool(),
		UserCanReview:       raw.UserCanReview.Bool(),
		ShowGoVip:           raw.ShowGoVip.Bool(),
	}
	s.URL = SherlockURL(s.ID)
	return s
}

// SearchItemFromSherlockRow projects a list row onto the cached form.
func SearchItemFromSherlockRow(raw RawSherlockRow) SearchItem {
	release := ParseAPITime(raw.ReleaseDate)
	return SearchItem{
		ID:          raw.ID.String(),
		Name:        raw.Name,
		Avatar:      AbsoluteAvatar(raw.Avatar),
		Difficulty:  raw.Difficulty,
		Category:    raw.CategoryName,
		CategoryID:  raw.CategoryID.Int(),
		ReleaseDate: FormatUTC8(release),
		State:       raw.State,
		Retired:     raw.State != "active",
		Owned:       raw.IsOwned.Bool(),
		Rating:      raw.Rating.Float(),
		RatingCount: raw.RatingCount.Int(),
		Solves:      raw.Solves.Int(),
	}
}

// SherlockFromSearchItem rebuilds the displayable record a cached row
// can support. The description is filled from the detail endpoint
// afterwards when reachable.
func SherlockFromSearchItem(item SearchItem) Sherlock {
	release := ParseAPITime(item.ReleaseDate)
	category := item.Category
	if category == "" {
		category = "DFIR"
	}
	s := Sherlock{
		ID:            item.ID,
		Name:          item.Name,
		Category:      category,
		CategoryID:    item.CategoryID,
		Difficulty:    item.Difficulty,
		DifficultyNum: DifficultyNum(item.Difficulty),
		Rating:        item.Rating,
		Stars:         roundStars(item.Rating),
		RatingCount:   item.RatingCount,
		Avatar:        item.Avatar,
		Release:       release,
		ReleaseDate:   item.ReleaseDate,
		State:         item.State,
		Retired:       item.State != "active",
		Active:        item.State == "active",
		IsCompleted:   item.Owned,
		IsSolved:      item.Owned,
		Solves:        item.Solves,
		UserCanReview: true,
	}
	s.URL = SherlockURL(s.ID)
	return s
}

func roundStars(rating float64) int {
	if rating <= 0 {
		return 0
	}
	return int(rating + 0.5)
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
