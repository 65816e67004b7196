package htb

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"htbnotes/internal/models"
	"htbnotes/internal/providers"
	"htbnotes/internal/services"
	"htbnotes/internal/structures"
	"htbnotes/internal/template"

	json "github.com/goccy/go-json"
)

type SherlockHandlerInterface interface {
	Load(ctx context.Context, input string) (models.Sherlock, error)
	Search(ctx context.Context, query string) ([]models.SearchItem, error)
	RefreshCache(ctx context.Context) (int, error)
	GenerateContent(s *models.Sherlock, targetPath string) string
}

// SherlockHandler serves sherlocks from the persisted list cache. The
// list endpoint paginates and carries the richer projection, so loads
// prefer a cached row and only consult the detail endpoint for the
// scenario description.
type SherlockHandler struct {
	api      *apiClient
	store    services.SettingsServiceInterface
	lists    services.CacheServiceInterface
	resolver *template.Resolver
	logger   providers.Logger
}

func NewSherlockHandler(conf *structures.Config, http providers.HttpProviderInterface, store services.SettingsServiceInterface, lists services.CacheServiceInterface, resolver *template.Resolver, logger providers.Logger) SherlockHandlerInterface {
	return &SherlockHandler{
		api:      newAPIClient(conf, http, store, logger),
		store:    store,
		lists:    lists,
		resolver: resolver,
		logger:   logger,
	}
}

func (h *SherlockHandler) Load(ctx context.Context, input string) (models.Sherlock, error) {
	id := input
	var cachedRow *models.SearchItem

	if !isNumericID(input) {
		items, err := h.Search(ctx, input)
		if err != nil {
			return models.Sherlock{}, err
		}
		if len(items) == 0 {
			return models.Sherlock{}, fmt.Errorf("%w: sherlock %q", providers.ErrNotFound, input)
		}
		id = items[0].ID
		cachedRow = &items[0]
	} else {
		for _, it := range h.lists.Items(models.KindSherlock) {
			if it.ID == id {
				row := it
				cachedRow = &row
				break
			}
		}
	}

	if cachedRow != nil {
		s := models.SherlockFromSearchItem(*cachedRow)
		// The list rows lack the scenario text; losing it degrades the
		// note but never fails the load.
		if detail, err := h.fetchDetail(ctx, id); err == nil {
			s.Description = detail.Description
			s.Scenario = detail.Description
		} else {
			h.logger.Warnf(providers.TypeImport, "Sherlock description fetch failed, keeping list data: %v", err)
		}
		return s, nil
	}

	return h.fetchDetail(ctx, id)
}

func (h *SherlockHandler) fetchDetail(ctx context.Context, id string) (models.Sherlock, error) {
	body, err := h.api.get(ctx, EndpointSherlockInfo, map[string]string{"id": id}, nil)
	if err != nil {
		return models.Sherlock{}, err
	}
	var env models.SherlockEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return models.Sherlock{}, fmt.Errorf("decoding sherlock detail: %w", err)
	}
	s := models.ParseSherlock(env.Data)
	h.logger.Debugf(providers.TypeImport, "Loaded sherlock %s (%s)", s.Name, s.ID)
	return s, nil
}

// Search filters the cached list. An empty cache triggers a full
// paginated fetch first.
func (h *SherlockHandler) Search(ctx context.Context, query string) ([]models.SearchItem, error) {
	if h.lists.IsEmpty(models.KindSherlock) {
		items, err := h.fetchAll(ctx)
		if err != nil {
			return nil, err
		}
		if _, err := h.lists.Merge(models.KindSherlock, items); err != nil {
			return nil, err
		}
	}
	return models.FilterItems(h.lists.Items(models.KindSherlock), query), nil
}

// RefreshCache drops the cached list and refetches every page.
func (h *SherlockHandler) RefreshCache(ctx context.Context) (int, error) {
	items, err := h.fetchAll(ctx)
	if err != nil {
		return 0, err
	}
	if err := h.lists.Replace(models.KindSherlock, items); err != nil {
		return 0, err
	}
	h.logger.Infof(providers.TypeCache, "Sherlock cache refreshed: %d rows", len(items))
	return len(items), nil
}

// fetchAll walks the paginated list endpoint until the cursor block
// reports the last page.
func (h *SherlockHandler) fetchAll(ctx context.Context) ([]models.SearchItem, error) {
	var items []models.SearchItem
	for page := 1; ; page++ {
		body, err := h.api.get(ctx, EndpointSherlockList, nil, url.Values{"page": {strconv.Itoa(page)}})
		if err != nil {
			return nil, err
		}
		var env models.SherlockListEnvelope
		if err := json.Unmarshal(body, &env); err != nil {
			return nil, fmt.Errorf("decoding sherlock list page %d: %w", page, err)
		}
		for _, row := range env.Data {
			items = append(items, models.SearchItemFromSherlockRow(row))
		}
		h.logger.Debugf(providers.TypeHttp, "Sherlock list page %d/%d: %d rows", env.Meta.CurrentPage, env.Meta.LastPage, len(env.Data))
		if len(env.Data) == 0 || !env.Meta.HasMore() {
			return items, nil
		}
	}
}

func (h *SherlockHandler) GenerateContent(s *models.Sherlock, targetPath string) string {
	cfg := h.store.TemplateConfigFor(models.KindSherlock)
	tpl := h.resolver.Resolve(cfg, models.KindSherlock, targetPath)
	return template.Fill(tpl, template.SherlockVars(s, time.Now()))
}
