package services

import (
	"time"

	"htbnotes/internal/models"
	"htbnotes/internal/providers"
	"htbnotes/internal/structures"
)

type CacheServiceInterface interface {
	Items(kind models.Kind) []models.SearchItem
	IsEmpty(kind models.Kind) bool
	FetchedAt(kind models.Kind) time.Time
	Merge(kind models.Kind, items []models.SearchItem) (int, error)
	Replace(kind models.Kind, items []models.SearchItem) error
}

// CacheService manages the persisted per-type list caches. Merge keeps
// whatever was cached first for a given id; Replace swaps the whole
// list. Both persist before returning.
type CacheService struct {
	store  SettingsServiceInterface
	logger providers.Logger
}

func NewCacheService(store SettingsServiceInterface, logger providers.Logger) CacheServiceInterface {
	return &CacheService{store: store, logger: logger}
}

func (c *CacheService) Items(kind models.Kind) []models.SearchItem {
	st := c.store.Get()
	return cachedListFor(&st, kind).Items
}

func (c *CacheService) IsEmpty(kind models.Kind) bool {
	return len(c.Items(kind)) == 0
}

func (c *CacheService) FetchedAt(kind models.Kind) time.Time {
	st := c.store.Get()
	millis := cachedListFor(&st, kind).FetchedAt
	if millis == 0 {
		return time.Time{}
	}
	return time.UnixMilli(millis)
}

// Merge appends items whose id is not cached yet and reports how many
// were added. Existing entries keep their first-seen data even when
// the incoming row differs.
func (c *CacheService) Merge(kind models.Kind, items []models.SearchItem) (int, error) {
	added := 0
	err := c.store.Update(func(st *structures.Settings) {
		list := cachedListFor(st, kind)
		seen := make(map[string]struct{}, len(list.Items))
		for _, it := range list.Items {
			seen[it.ID] = struct{}{}
		}
		for _, it := range items {
			if _, ok := seen[it.ID]; ok {
				continue
			}
			seen[it.ID] = struct{}{}
			list.Items = append(list.Items, it)
			added++
		}
		list.FetchedAt = time.Now().UnixMilli()
	})
	if err != nil {
		return 0, err
	}
	c.logger.Debugf(providers.TypeCache, "%s cache merged: %d new", kind, added)
	return added, nil
}

// Replace overwrites the cached list entirely, dropping entries that
// disappeared upstream.
func (c *CacheService) Replace(kind models.Kind, items []models.SearchItem) error {
	err := c.store.Update(func(st *structures.Settings) {
		list := cachedListFor(st, kind)
		list.Items = items
		list.FetchedAt = time.Now().UnixMilli()
	})
	if err != nil {
		return err
	}
	c.logger.Debugf(providers.TypeCache, "%s cache replaced: %d items", kind, len(items))
	return nil
}
