package htb

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"htbnotes/internal/models"
	"htbnotes/internal/providers"
	"htbnotes/internal/services"
	"htbnotes/internal/structures"
	"htbnotes/internal/template"

	json "github.com/goccy/go-json"
)

type MachineHandlerInterface interface {
	Load(ctx context.Context, input string) (models.Machine, error)
	Search(ctx context.Context, query string) ([]models.SearchItem, error)
	List(ctx context.Context, includeRetired bool) ([]models.Machine, error)
	RefreshCache(ctx context.Context) (int, error)
	GenerateContent(m *models.Machine, targetPath string) string
}

// MachineHandler loads machines by id or name. Name inputs go through
// the global search endpoint; id inputs hit the profile endpoint
// directly, memoized in the byte cache.
type MachineHandler struct {
	api      *apiClient
	store    services.SettingsServiceInterface
	lists    services.CacheServiceInterface
	memo     providers.CacheProviderInterface
	resolver *template.Resolver
	logger   providers.Logger
}

func NewMachineHandler(conf *structures.Config, http providers.HttpProviderInterface, store services.SettingsServiceInterface, lists services.CacheServiceInterface, memo providers.CacheProviderInterface, resolver *template.Resolver, logger providers.Logger) MachineHandlerInterface {
	return &MachineHandler{
		api:      newAPIClient(conf, http, store, logger),
		store:    store,
		lists:    lists,
		memo:     memo,
		resolver: resolver,
		logger:   logger,
	}
}

func (h *MachineHandler) Load(ctx context.Context, input string) (models.Machine, error) {
	id := input
	if !isNumericID(input) {
		items, err := h.Search(ctx, input)
		if err != nil {
			return models.Machine{}, err
		}
		if len(items) == 0 {
			return models.Machine{}, fmt.Errorf("%w: machine %q", providers.ErrNotFound, input)
		}
		// FilterItems already put an exact name match first; the raw
		// search response needs the same treatment.
		if hit := exactNameMatch(items, input); hit != nil {
			id = hit.ID
		} else {
			id = items[0].ID
		}
	}
	return h.fetchProfile(ctx, id)
}

func (h *MachineHandler) fetchProfile(ctx context.Context, id string) (models.Machine, error) {
	key := "machine:" + id
	body, ok := h.memo.Get(key)
	if !ok {
		var err error
		body, err = h.api.get(ctx, EndpointMachineProfile, map[string]string{"id": id}, nil)
		if err != nil {
			return models.Machine{}, err
		}
		h.memo.Set(key, body)
	}

	var env models.MachineEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return models.Machine{}, fmt.Errorf("decoding machine profile: %w", err)
	}
	m := models.ParseMachine(env.Info)
	h.logger.Debugf(providers.TypeImport, "Loaded machine %s (%s)", m.Name, m.ID)
	return m, nil
}

// Search queries the global search endpoint and keeps only machine
// rows. Hits land in the list cache; when the endpoint is unreachable
// the cached list answers instead.
func (h *MachineHandler) Search(ctx context.Context, query string) ([]models.SearchItem, error) {
	body, err := h.api.get(ctx, EndpointSearch, nil, url.Values{"query": {query}})
	if err != nil {
		if cached := models.FilterItems(h.lists.Items(models.KindMachine), query); len(cached) > 0 {
			h.logger.Warnf(providers.TypeImport, "Machine search unreachable, serving %d cached rows: %v", len(cached), err)
			return cached, nil
		}
		return nil, err
	}

	var envelope struct {
		Machines json.RawMessage `json:"machines"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}
	if len(envelope.Machines) == 0 {
		return nil, nil
	}
	items, err := models.SearchItemsFromSearchRows(envelope.Machines)
	if err != nil {
		return nil, fmt.Errorf("decoding search rows: %w", err)
	}
	if _, err := h.lists.Merge(models.KindMachine, items); err != nil {
		h.logger.Warnf(providers.TypeCache, "Caching machine search hits failed: %v", err)
	}
	return items, nil
}

// List fetches the full machine list, excluding retired machines
// unless asked for.
func (h *MachineHandler) List(ctx context.Context, includeRetired bool) ([]models.Machine, error) {
	body, err := h.api.get(ctx, EndpointMachineList, nil, nil)
	if err != nil {
		return nil, err
	}
	var env models.MachineListEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decoding machine list: %w", err)
	}
	machines := make([]models.Machine, 0, len(env.Info))
	for _, raw := range env.Info {
		m := models.ParseMachine(raw)
		if m.Retired && !includeRetired {
			continue
		}
		machines = append(machines, m)
	}
	return machines, nil
}

// RefreshCache replaces the cached list with the full machine list,
// retired machines included.
func (h *MachineHandler) RefreshCache(ctx context.Context) (int, error) {
	machines, err := h.List(ctx, true)
	if err != nil {
		return 0, err
	}
	items := make([]models.SearchItem, 0, len(machines))
	for _, m := range machines {
		items = append(items, models.SearchItemFromMachine(m))
	}
	if err := h.lists.Replace(models.KindMachine, items); err != nil {
		return 0, err
	}
	h.logger.Infof(providers.TypeCache, "Machine cache refreshed: %d rows", len(items))
	return len(items), nil
}

func (h *MachineHandler) GenerateContent(m *models.Machine, targetPath string) string {
	cfg := h.store.TemplateConfigFor(models.KindMachine)
	tpl := h.resolver.Resolve(cfg, models.KindMachine, targetPath)
	return template.Fill(tpl, template.MachineVars(m, time.Now()))
}
