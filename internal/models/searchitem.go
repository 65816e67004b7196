package models

import (
	"strings"

	json "github.com/goccy/go-json"
)

// SearchItem is the canonical cached list row. One shape serves all
// three record types; fields a given list endpoint does not supply
// stay at their zero value.
type SearchItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Avatar      string  `json:"avatar"`
	Difficulty  string  `json:"difficulty,omitempty"`
	Category    string  `json:"category,omitempty"`
	CategoryID  int     `json:"categoryId,omitempty"`
	ReleaseDate string  `json:"releaseDate,omitempty"`
	State       string  `json:"state,omitempty"`
	Retired     bool    `json:"retired,omitempty"`
	Owned       bool    `json:"owned,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
	RatingCount int     `json:"ratingCount,omitempty"`
	Solves      int     `json:"solves,omitempty"`
	Points      int     `json:"points,omitempty"`
	CreatorID   string  `json:"creatorId,omitempty"`
	CreatorName string  `json:"creatorName,omitempty"`
}

// Matches reports whether the item matches a free-form query:
// case-insensitive substring on the name and category, plain substring
// on the id.
func (s SearchItem) Matches(query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(s.Name), q) {
		return true
	}
	if s.ID != "" && strings.Contains(s.ID, query) {
		return true
	}
	return s.Category != "" && strings.Contains(strings.ToLower(s.Category), q)
}

// FilterItems returns the items matching query, preserving order. An
// exact name match (case-insensitive) is moved to the front so callers
// taking the first result pick it over partial matches.
func FilterItems(items []SearchItem, query string) []SearchItem {
	var out []SearchItem
	exact := -1
	for _, it := range items {
		if !it.Matches(query) {
			continue
		}
		if exact < 0 && strings.EqualFold(it.Name, query) {
			exact = len(out)
		}
		out = append(out, it)
	}
	if exact > 0 {
		hit := out[exact]
		copy(out[1:exact+1], out[:exact])
		out[0] = hit
	}
	return out
}

// rawSearchRow is one row of the global search endpoint, which names
// the title field "value".
type rawSearchRow struct {
	ID     FlexID `json:"id"`
	Value  string `json:"value"`
	Avatar string `json:"avatar"`
}

func (r rawSearchRow) item() SearchItem {
	return SearchItem{
		ID:     r.ID.String(),
		Name:   r.Value,
		Avatar: AbsoluteAvatar(r.Avatar),
	}
}

// SearchItemsFromSearchRows converts global-search rows into canonical
// items.
func SearchItemsFromSearchRows(rows []byte) ([]SearchItem, error) {
	var raw []rawSearchRow
	if err := json.Unmarshal(rows, &raw); err != nil {
		return nil, err
	}
	out := make([]SearchItem, 0, len(raw))
	for _, r := range raw {
		out = append(out, r.item())
	}
	return out, nil
}
