package models

import "time"

// Machine is the normalized machine record all downstream consumers
// (templates, cache, note generation) work with.
type Machine struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	OS   string `json:"os"`

	Difficulty    string `json:"difficulty"`
	DifficultyNum int    `json:"difficultyNum"`

	Rating float64 `json:"rating"`

	Avatar      string `json:"avatar"`
	AvatarThumb string `json:"avatarThumb,omitempty"`

	Release     time.Time `json:"release"`
	RetiredDate time.Time `json:"retiredDate,omitempty"`

	Retired bool `json:"retired"`
	Active  bool `json:"active"`
	Free    bool `json:"free"`

	// Makers holds the primary author first, the co-author second when
	// one exists.
	Makers []Maker  `json:"makers"`
	Tags   []string `json:"tags"`

	IP string `json:"ip,omitempty"`

	Points       int `json:"points"`
	UserPoints   int `json:"userPoints"`
	RootPoints   int `json:"rootPoints"`
	StaticPoints int `json:"staticPoints"`

	IsCompleted bool `json:"isCompleted"`
	IsTodo      bool `json:"isTodo"`
	IsFavorite  bool `json:"isFavorite"`
	IsSpawned   bool `json:"isSpawned"`
	OwnedUser   bool `json:"ownedUser"`
	OwnedRoot   bool `json:"ownedRoot"`

	UserOwns      int `json:"userOwns"`
	RootOwns      int `json:"rootOwns"`
	UserOwnsCount int `json:"userOwnsCount"`
	RootOwnsCount int `json:"rootOwnsCount"`

	UserBlood          *Blood `json:"userBlood,omitempty"`
	RootBlood          *Blood `json:"rootBlood,omitempty"`
	FirstUserBloodTime string `json:"firstUserBloodTime,omitempty"`
	FirstRootBloodTime string `json:"firstRootBloodTime,omitempty"`

	AuthUserFirstUserTime string `json:"authUserFirstUserTime,omitempty"`
	AuthUserFirstRootTime string `json:"authUserFirstRootTime,omitempty"`

	Feedback FeedbackChart `json:"feedback"`
	Play     *PlayInfo     `json:"play,omitempty"`

	AuthUserHasReviewed        bool `json:"authUserHasReviewed"`
	AuthUserHasSubmittedMatrix bool `json:"authUserHasSubmittedMatrix"`
	UserCanReview              bool `json:"userCanReview"`

	Recommended          int    `json:"recommended"`
	SPFlag               int    `json:"spFlag"`
	Synopsis             string `json:"synopsis,omitempty"`
	InfoStatus           string `json:"infoStatus,omitempty"`
	SeasonID             int    `json:"seasonId,omitempty"`
	ReviewsCount         int    `json:"reviewsCount"`
	CanAccessWalkthrough bool   `json:"canAccessWalkthrough"`
	HasChangelog         bool   `json:"hasChangelog"`
	IsGuidedEnabled      bool   `json:"isGuidedEnabled"`
	StartMode            string `json:"startMode,omitempty"`
	ShowGoVip            bool   `json:"showGoVip"`
	ShowGoVipServer      bool   `json:"showGoVipServer"`
	OwnRank              int    `json:"ownRank"`
	MachineMode          string `json:"machineMode,omitempty"`
	PriceTier            int    `json:"priceTier"`
	RequiredSubscription string `json:"requiredSubscription,omitempty"`
	SwitchServerWarning  string `json:"switchServerWarning,omitempty"`
	IsSingleFlag         bool   `json:"isSingleFlag"`

	URL string `json:"url"`
}

// RawMachine is the wire form of a machine profile. Tolerant field
// types absorb the shape drift between API generations.
type RawMachine struct {
	ID             FlexID     `json:"id"`
	Name           string     `json:"name"`
	OS             string     `json:"os"`
	Avatar         string     `json:"avatar"`
	AvatarThumb    string     `json:"avatar_thumb"`
	Difficulty     FlexInt    `json:"difficulty"`
	DifficultyText string     `json:"difficultyText"`
	StaticPoints   FlexInt    `json:"static_points"`
	Points         FlexInt    `json:"points"`
	UserPoints     FlexInt    `json:"user_points"`
	RootPoints     FlexInt    `json:"root_points"`
	Stars          FlexFloat  `json:"stars"`
	Release        string     `json:"release"`
	RetiredDate    string     `json:"retired_date"`
	Active         FlexBool   `json:"active"`
	Retired        FlexBool   `json:"retired"`
	Free           FlexBool   `json:"free"`
	Maker          *rawMaker  `json:"maker"`
	Maker2         *rawMaker  `json:"maker2"`
	Labels         rawTags    `json:"labels"`
	IP             FlexString `json:"ip"`

	IsCompleted FlexBool `json:"isCompleted"`
	IsTodo      FlexBool `json:"isTodo"`
	IsFavorite  FlexBool `json:"isFavorite"`

	AuthUserInUserOwns    FlexBool `json:"authUserInUserOwns"`
	AuthUserInRootOwns    FlexBool `json:"authUserInRootOwns"`
	AuthUserFirstUserTime string   `json:"authUserFirstUserTime"`
	AuthUserFirstRootTime string   `json:"authUserFirstRootTime"`

	UserOwns      FlexInt `json:"userOwns"`
	RootOwns      FlexInt `json:"rootOwns"`
	UserOwnsCount FlexInt `json:"user_owns_count"`
	RootOwnsCount FlexInt `json:"root_owns_count"`

	UserBlood          *rawBlood `json:"userBlood"`
	RootBlood          *rawBlood `json:"rootBlood"`
	FirstUserBloodTime string    `json:"firstUserBloodTime"`
	FirstRootBloodTime string    `json:"firstRootBloodTime"`

	FeedbackForChart FeedbackChart `json:"feedbackForChart"`
	PlayInfo         *rawPlayInfo  `json:"playInfo"`

	AuthUserHasReviewed        FlexBool `json:"authUserHasReviewed"`
	AuthUserHasSubmittedMatrix FlexBool `json:"authUserHasSubmittedMatrix"`
	UserCanReview              FlexBool `json:"user_can_review"`

	Recommended          FlexInt    `json:"recommended"`
	SPFlag               FlexInt    `json:"sp_flag"`
	Synopsis             string     `json:"synopsis"`
	InfoStatus           string     `json:"info_status"`
	SeasonID             FlexInt    `json:"season_id"`
	ReviewsCount         FlexInt    `json:"reviews_count"`
	CanAccessWalkthrough FlexBool   `json:"can_access_walkthrough"`
	HasChangelog         FlexBool   `json:"has_changelog"`
	IsGuidedEnabled      FlexBool   `json:"isGuidedEnabled"`
	StartMode            string     `json:"start_mode"`
	ShowGoVip            FlexBool   `json:"show_go_vip"`
	ShowGoVipServer      FlexBool   `json:"show_go_vip_server"`
	OwnRank              FlexInt    `json:"ownRank"`
	MachineMode          FlexString `json:"machine_mode"`
	PriceTier            FlexInt    `json:"priceTier"`
	RequiredSubscription FlexString `json:"requiredSubscription"`
	SwitchServerWarning  FlexString `json:"switchServerWarning"`
	IsSingleFlag         FlexBool   `json:"isSingleFlag"`
}

// MachineEnvelope wraps the profile endpoint response.
type MachineEnvelope struct {
	Info RawMachine `json:"info"`
}

// MachineListEnvelope wraps the list endpoint response.
type MachineListEnvelope struct {
	Info []RawMachine `json:"info"`
}

func (m *rawMaker) normalize() Maker {
	return Maker{
		ID:          m.ID.String(),
		Name:        m.Name,
		Avatar:      AbsoluteAvatar(m.Avatar),
		IsRespected: m.IsRespected.Bool(),
		ProfileURL:  m.ProfileURL,
	}
}

func (b *rawBlood) normalize() *Blood {
	return &Blood{
		UserID:     b.User.ID.String(),
		UserName:   b.User.Name,
		UserAvatar: AbsoluteAvatar(b.User.Avatar),
		CreatedAt:  b.CreatedAt,
		Time:       b.BloodDifference,
	}
}

// ParseMachine normalizes a wire machine into the canonical form.
// Parsing an already-canonical record re-marshalled through RawMachine
// yields the same result.
func ParseMachine(raw RawMachine) Machine {
	m := Machine{
		ID:   raw.ID.String(),
		Name: raw.Name,
		OS:   raw.OS,

		DifficultyNum: raw.Difficulty.Int(),
		Rating:        raw.Stars.Float(),

		Avatar:      AbsoluteAvatar(raw.Avatar),
		AvatarThumb: AbsoluteAvatar(raw.AvatarThumb),

		Release:     ParseAPITime(raw.Release),
		RetiredDate: ParseAPITime(raw.RetiredDate),

		Retired: raw.Retired.Bool(),
		Active:  raw.Active.Bool(),
		Free:    raw.Free.Bool(),

		Tags: raw.Labels,
		IP:   raw.IP.String(),

		IsCompleted: raw.IsCompleted.Bool(),
		IsTodo:      raw.IsTodo.Bool(),
		IsFavorite:  raw.IsFavorite.Bool(),
		OwnedUser:   raw.AuthUserInUserOwns.Bool(),
		OwnedRoot:   raw.AuthUserInRootOwns.Bool(),

		UserOwns: raw.UserOwns.Int(),
		RootOwns: raw.RootOwns.Int(),

		FirstUserBloodTime: raw.FirstUserBloodTime,
		FirstRootBloodTime: raw.FirstRootBloodTime,

		AuthUserFirstUserTime: raw.AuthUserFirstUserTime,
		AuthUserFirstRootTime: raw.AuthUserFirstRootTime,

		Feedback: raw.FeedbackForChart,

		AuthUserHasReviewed:        raw.AuthUserHasReviewed.Bool(),
		AuthUserHasSubmittedMatrix: raw.AuthUserHasSubmittedMatrix.Bool(),
		UserCanReview:              raw.UserCanReview.Bool(),

		Recommended:          raw.Recommended.Int(),
		SPFlag:               raw.SPFlag.Int(),
		Synopsis:             raw.Synopsis,
		InfoStatus:           raw.InfoStatus,
		SeasonID:             raw.SeasonID.Int(),
		ReviewsCount:         raw.ReviewsCount.Int(),
		CanAccessWalkthrough: raw.CanAccessWalkthrough.Bool(),
		HasChangelog:         raw.HasChangelog.Bool(),
		IsGuidedEnabled:      raw.IsGuidedEnabled.Bool(),
		StartMode:            raw.StartMode,
		ShowGoVip:            raw.ShowGoVip.Bool(),
		ShowGoVipServer:      raw.ShowGoVipServer.Bool(),
		OwnRank:              raw.OwnRank.Int(),
		MachineMode:          raw.MachineMode.String(),
		PriceTier:            raw.PriceTier.Int(),
		RequiredSubscription: raw.RequiredSubscription.String(),
		SwitchServerWarning:  raw.SwitchServerWarning.String(),
		IsSingleFlag:         raw.IsSingleFlag.Bool(),
	}

	if m.Difficulty = raw.DifficultyText; m.Difficulty == "" {
		m.Difficulty = DifficultyText(raw.Difficulty.Int())
	}

	if raw.Maker != nil {
		m.Makers = append(m.Makers, raw.Maker.normalize())
	}
	if raw.Maker2 != nil {
		m.Makers = append(m.Makers, raw.Maker2.normalize())
	}

	// Flag points fall back on a fixed 40/60 split of the static score.
	static := raw.StaticPoints.Int()
	total := static
	if total == 0 {
		total = raw.Points.Int()
	}
	m.Points = total
	m.StaticPoints = total
	m.UserPoints = raw.UserPoints.Int()
	m.RootPoints = raw.RootPoints.Int()
	if m.UserPoints == 0 {
		if static > 0 {
			m.UserPoints = static * 40 / 100
		} else {
			m.UserPoints = 20
		}
	}
	if m.RootPoints == 0 {
		if static > 0 {
			m.RootPoints = static * 60 / 100
		} else {
			m.RootPoints = 30
		}
	}

	if raw.UserOwnsCount.Int() != 0 {
		m.UserOwnsCount = raw.UserOwnsCount.Int()
	} else {
		m.UserOwnsCount = m.UserOwns
	}
	if raw.RootOwnsCount.Int() != 0 {
		m.RootOwnsCount = raw.RootOwnsCount.Int()
	} else {
		m.RootOwnsCount = m.RootOwns
	}

	if raw.UserBlood != nil {
		m.UserBlood = raw.UserBlood.normalize()
	}
	if raw.RootBlood != nil {
		m.RootBlood = raw.RootBlood.normalize()
	}

	if raw.PlayInfo != nil {
		m.Play = &PlayInfo{
			IsSpawned:         raw.PlayInfo.IsSpawned.Bool(),
			IsSpawning:        raw.PlayInfo.IsSpawning.Bool(),
			IsActive:          raw.PlayInfo.IsActive.Bool(),
			ActivePlayerCount: raw.PlayInfo.ActivePlayerCount.Int(),
			ExpiresAt:         raw.PlayInfo.ExpiresAt,
		}
		m.IsSpawned = m.Play.IsSpawned
	}

	m.URL = MachineURL(m.ID)
	return m
}

// SearchItemFromMachine projects a machine onto the cached list row.
func SearchItemFromMachine(m Machine) SearchItem {
	item := SearchItem{
		ID:          m.ID,
		Name:        m.Name,
		Avatar:      m.Avatar,
		Difficulty:  m.Difficulty,
		ReleaseDate: FormatUTC8(m.Release),
		Retired:     m.Retired,
		Owned:       m.OwnedUser && m.OwnedRoot,
		Rating:      m.Rating,
		Solves:      m.UserOwnsCount,
		Points:      m.Points,
	}
	if m.Retired {
		item.State = "retired"
	} else {
		item.State = "active"
	}
	if len(m.Makers) > 0 {
		item.CreatorID = m.Makers[0].ID
		item.CreatorName = m.Makers[0].Name
	}
	return item
}
