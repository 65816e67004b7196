package htb

import (
	"context"
	"net/url"
	"strings"

	"htbnotes/internal/models"
	"htbnotes/internal/providers"
	"htbnotes/internal/services"
	"htbnotes/internal/structures"
)

// Upstream endpoint paths. ":id" segments get substituted by BuildURL.
const (
	EndpointUserInfo             = "/user/info"
	EndpointMachineProfile       = "/machine/profile/:id"
	EndpointMachineList          = "/machine/list"
	EndpointChallengeList        = "/challenge/list"
	EndpointChallengeListRetired = "/challenge/list/retired"
	EndpointChallengeInfo        = "/challenge/info/:id"
	EndpointSherlockList         = "/sherlocks"
	EndpointSherlockInfo         = "/sherlocks/:id/info"
	EndpointSearch               = "/search/fetch"
)

// BuildURL joins the API base with an endpoint, substituting every
// ":param" segment and appending the query string when present.
func BuildURL(base, endpoint string, params map[string]string, query url.Values) string {
	path := endpoint
	for key, value := range params {
		path = strings.ReplaceAll(path, ":"+key, url.PathEscape(value))
	}
	full := strings.TrimRight(base, "/") + path
	if len(query) > 0 {
		full += "?" + query.Encode()
	}
	return full
}

// apiClient is the shared authenticated transport of the handlers.
type apiClient struct {
	conf   *structures.Config
	http   providers.HttpProviderInterface
	store  services.SettingsServiceInterface
	logger providers.Logger
}

func newAPIClient(conf *structures.Config, http providers.HttpProviderInterface, store services.SettingsServiceInterface, logger providers.Logger) *apiClient {
	return &apiClient{conf: conf, http: http, store: store, logger: logger}
}

func (a *apiClient) get(ctx context.Context, endpoint string, params map[string]string, query url.Values) ([]byte, error) {
	return a.getWithToken(ctx, a.store.Token(), endpoint, params, query)
}

func (a *apiClient) getWithToken(ctx context.Context, token, endpoint string, params map[string]string, query url.Values) ([]byte, error) {
	full := BuildURL(a.conf.API.BaseURL, endpoint, params, query)
	headers := map[string]string{}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}
	return a.http.GetJSON(ctx, full, headers)
}

// isNumericID reports whether the input selects a record by id.
func isNumericID(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// exactNameMatch returns the first item whose name equals input
// case-insensitively, or nil.
func exactNameMatch(items []models.SearchItem, input string) *models.SearchItem {
	for i := range items {
		if strings.EqualFold(items[i].Name, input) {
			return &items[i]
		}
	}
	return nil
}
