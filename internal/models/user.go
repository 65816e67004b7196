package models

// User is the authenticated account profile.
type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	Avatar     string `json:"avatar,omitempty"`
	Rank       string `json:"rank,omitempty"`
	RankID     int    `json:"rankId,omitempty"`
	Points     int    `json:"points"`
	Respect    int    `json:"respect"`
	IsVip      bool   `json:"isVip"`
	UserOwns   int    `json:"userOwns"`
	SystemOwns int    `json:"systemOwns"`
	TeamID     int    `json:"teamId,omitempty"`
	TeamName   string `json:"teamName,omitempty"`
	Country    string `json:"country,omitempty"`
	URL        string `json:"url"`
}

// RawUser is the wire form of the account profile endpoint.
type RawUser struct {
	ID         FlexID   `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Avatar     string   `json:"avatar"`
	Rank       string   `json:"rank"`
	RankID     FlexInt  `json:"rank_id"`
	Points     FlexInt  `json:"points"`
	Respects   FlexInt  `json:"respects"`
	IsVip      FlexBool `json:"isVip"`
	UserOwns   FlexInt  `json:"user_owns"`
	SystemOwns FlexInt  `json:"system_owns"`
	TeamID     FlexInt  `json:"team_id"`
	TeamName   string   `json:"team_name"`
	Country    string   `json:"country_name"`
}

// UserEnvelope wraps the account profile response.
type UserEnvelope struct {
	Info RawUser `json:"info"`
}

// ParseUser normalizes the account profile.
func ParseUser(raw RawUser) User {
	u := User{
		ID:         raw.ID.String(),
		Name:       raw.Name,
		Email:      raw.Email,
		Avatar:     AbsoluteAvatar(raw.Avatar),
		Rank:       raw.Rank,
		RankID:     raw.RankID.Int(),
		Points:     raw.Points.Int(),
		Respect:    raw.Respects.Int(),
		IsVip:      raw.IsVip.Bool(),
		UserOwns:   raw.UserOwns.Int(),
		SystemOwns: raw.SystemOwns.Int(),
		TeamID:     raw.TeamID.Int(),
		TeamName:   raw.TeamName,
		Country:    raw.Country,
	}
	u.URL = ProfileURL(u.ID)
	return u
}
