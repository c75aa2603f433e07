// registry.go provides the caching registry that resolves value lists for
// choice validation. Lists are loaded lazily from the configured Source,
// fall back to the built-in catalog, and degrade to accept-all when neither
// has the key.
package values

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Registry resolves and caches value lists by field key.
//
// The first lookup for a key loads it from the Source; concurrent first
// lookups for the same key share a single load. A key the source does not
// know falls back to the built-in catalog, and a key neither knows enters
// degraded mode: every value is accepted and the condition is logged once.
// Degraded and failed keys are retried on Reload, never per lookup.
type Registry struct {
	source   Source
	fallback Source
	logger   *slog.Logger

	mu    sync.RWMutex
	cache map[string]*entry
	group singleflight.Group
}

// entry is a resolved cache slot. A nil list means the key is degraded and
// all values are accepted.
type entry struct {
	list *ValueList
}

// NewRegistry builds a registry over source. A nil source serves the
// built-in catalog only. A nil logger uses slog.Default.
func NewRegistry(source Source, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Registry{
		source:   source,
		fallback: Builtin(),
		logger:   logger,
		cache:    make(map[string]*entry),
	}
	if r.source == nil {
		r.source = r.fallback
		r.fallback = nil
	}
	return r
}

// Values returns the list for key, or nil when the key operates in degraded
// accept-all mode. The only returned error is context cancellation.
func (r *Registry) Values(ctx context.Context, key string) (*ValueList, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	k := normalizeKey(key)

	r.mu.RLock()
	e, ok := r.cache[k]
	r.mu.RUnlock()
	if ok {
		return e.list, nil
	}

	v, err, _ := r.group.Do(k, func() (any, error) {
		e, err := r.resolve(ctx, k)
		if err != nil {
			return nil, err
		}
		r.mu.Lock()
		r.cache[k] = e
		r.mu.Unlock()
		return e, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*entry).list, nil
}

// IsValid reports whether raw is admissible for key. Degraded keys accept
// every value.
func (r *Registry) IsValid(ctx context.Context, key, raw string) bool {
	list, err := r.Values(ctx, key)
	if err != nil || list == nil {
		return true
	}
	_, ok := list.Canonical(raw)
	return ok
}

// Canonical resolves raw to its canonical spelling for key. Degraded keys
// return the trimmed input unchanged.
func (r *Registry) Canonical(ctx context.Context, key, raw string) (string, bool) {
	list, err := r.Values(ctx, key)
	if err != nil {
		return "", false
	}
	if list == nil {
		return strings.TrimSpace(raw), true
	}
	return list.Canonical(raw)
}

// Replacement returns the canonical form registered for a variant spelling
// of key. Degraded keys have no replacements.
func (r *Registry) Replacement(ctx context.Context, key, raw string) (string, bool) {
	list, err := r.Values(ctx, key)
	if err != nil || list == nil {
		return "", false
	}
	return list.Replacement(raw)
}

// Known returns the cached field keys in no particular order.
func (r *Registry) Known() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.cache))
	for k := range r.cache {
		keys = append(keys, k)
	}
	return keys
}

// Reload re-resolves every cached key against the source. A key whose
// reload fails keeps serving its previous list; a degraded key whose source
// has recovered leaves degraded mode.
func (r *Registry) Reload(ctx context.Context) error {
	for _, k := range r.Known() {
		e, err := r.resolve(ctx, k)
		if err != nil {
			return err
		}
		r.mu.Lock()
		if e.list == nil && r.cache[k] != nil && r.cache[k].list != nil {
			// Keep the last good list rather than regress to accept-all.
			r.mu.Unlock()
			continue
		}
		r.cache[k] = e
		r.mu.Unlock()
	}
	return nil
}

// resolve loads key from the source chain and maps the outcome to a cache
// entry, logging degradations. Context cancellation is returned rather than
// cached so an interrupted load does not pin the key in degraded mode.
func (r *Registry) resolve(ctx context.Context, key string) (*entry, error) {
	list, err := r.source.Load(ctx, key)
	if err == nil {
		return &entry{list: list}, nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil, err
	}
	if !errors.Is(err, ErrNotFound) {
		r.logger.Warn("value list load failed, trying built-in catalog",
			"field_key", key,
			"error", err)
	}
	if r.fallback != nil {
		if list, ferr := r.fallback.Load(ctx, key); ferr == nil {
			return &entry{list: list}, nil
		}
	}
	r.logger.Warn("no value list for field, accepting all values",
		"field_key", key)
	return &entry{list: nil}, nil
}
