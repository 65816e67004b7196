package htb

import (
	"context"
	"fmt"
	"time"

	"htbnotes/internal/models"
	"htbnotes/internal/providers"
	"htbnotes/internal/services"
	"htbnotes/internal/structures"
	"htbnotes/internal/template"

	json "github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"
)

type ChallengeHandlerInterface interface {
	Load(ctx context.Context, input string) (models.Challenge, error)
	Search(ctx context.Context, query string) ([]models.SearchItem, error)
	RefreshCache(ctx context.Context) (int, error)
	GenerateContent(c *models.Challenge, targetPath string) string
}

// ChallengeHandler searches challenges against the persisted list
// cache, filling it from the active and retired list endpoints on
// first use.
type ChallengeHandler struct {
	api      *apiClient
	store    services.SettingsServiceInterface
	lists    services.CacheServiceInterface
	memo     providers.CacheProviderInterface
	resolver *template.Resolver
	logger   providers.Logger
}

func NewChallengeHandler(conf *structures.Config, http providers.HttpProviderInterface, store services.SettingsServiceInterface, lists services.CacheServiceInterface, memo providers.CacheProviderInterface, resolver *template.Resolver, logger providers.Logger) ChallengeHandlerInterface {
	return &ChallengeHandler{
		api:      newAPIClient(conf, http, store, logger),
		store:    store,
		lists:    lists,
		memo:     memo,
		resolver: resolver,
		logger:   logger,
	}
}

func (h *ChallengeHandler) Load(ctx context.Context, input string) (models.Challenge, error) {
	id := input
	var cachedRow *models.SearchItem
	if !isNumericID(input) {
		items, err := h.Search(ctx, input)
		if err != nil {
			return models.Challenge{}, err
		}
		if len(items) == 0 {
			return models.Challenge{}, fmt.Errorf("%w: challenge %q", providers.ErrNotFound, input)
		}
		// Exact matches are already first in the filtered list.
		id = items[0].ID
		cachedRow = &items[0]
	} else {
		for _, it := range h.lists.Items(models.KindChallenge) {
			if it.ID == id {
				row := it
				cachedRow = &row
				break
			}
		}
	}

	c, err := h.fetchDetail(ctx, id)
	if err != nil {
		// The cached row still supports a basic note when the detail
		// endpoint refuses (VIP content, rate limits).
		if cachedRow != nil {
			h.logger.Warnf(providers.TypeImport, "Challenge detail fetch failed, using cached row: %v", err)
			return models.ChallengeFromSearchItem(*cachedRow), nil
		}
		return models.Challenge{}, err
	}
	return c, nil
}

func (h *ChallengeHandler) fetchDetail(ctx context.Context, id string) (models.Challenge, error) {
	key := "challenge:" + id
	body, ok := h.memo.Get(key)
	if !ok {
		var err error
		body, err = h.api.get(ctx, EndpointChallengeInfo, map[string]string{"id": id}, nil)
		if err != nil {
			return models.Challenge{}, err
		}
		h.memo.Set(key, body)
	}

	var env models.ChallengeEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return models.Challenge{}, fmt.Errorf("decoding challenge detail: %w", err)
	}
	c := models.ParseChallenge(env.Challenge)
	h.logger.Debugf(providers.TypeImport, "Loaded challenge %s (%s)", c.Name, c.ID)
	return c, nil
}

// Search filters the cached list, fetching both list endpoints when
// the cache is empty.
func (h *ChallengeHandler) Search(ctx context.Context, query string) ([]models.SearchItem, error) {
	if h.lists.IsEmpty(models.KindChallenge) {
		if _, err := h.RefreshCache(ctx); err != nil {
			return nil, err
		}
	}
	return models.FilterItems(h.lists.Items(models.KindChallenge), query), nil
}

// RefreshCache replaces the cached list with the joined active and
// retired lists, fetched concurrently.
func (h *ChallengeHandler) RefreshCache(ctx context.Context) (int, error) {
	var active, retired []models.RawChallenge

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		body, err := h.api.get(gctx, EndpointChallengeList, nil, nil)
		if err != nil {
			return err
		}
		active, err = models.DecodeChallengeRows(body)
		return err
	})
	g.Go(func() error {
		body, err := h.api.get(gctx, EndpointChallengeListRetired, nil, nil)
		if err != nil {
			return err
		}
		retired, err = models.DecodeChallengeRows(body)
		return err
	})
	if err := g.Wait(); err != nil {
		return 0, err
	}

	items := make([]models.SearchItem, 0, len(active)+len(retired))
	for _, raw := range active {
		items = append(items, models.SearchItemFromChallengeRow(raw))
	}
	for _, raw := range retired {
		items = append(items, models.SearchItemFromChallengeRow(raw))
	}
	if err := h.lists.Replace(models.KindChallenge, items); err != nil {
		return 0, err
	}
	h.logger.Infof(providers.TypeCache, "Challenge cache refreshed: %d rows", len(items))
	return len(items), nil
}

func (h *ChallengeHandler) GenerateContent(c *models.Challenge, targetPath string) string {
	cfg := h.store.TemplateConfigFor(models.KindChallenge)
	tpl := h.resolver.Resolve(cfg, models.KindChallenge, targetPath)
	return template.Fill(tpl, template.ChallengeVars(c, time.Now()))
}
