package provider

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/storekit/backend/internal/domain/shared"
	"github.com/storekit/backend/internal/domain/shared/provider"
)

// Factory constructs a provider instance. Factories are registered at
// startup; the registry invokes each factory at most once.
type Factory func() (provider.Provider, error)

// CollectionProviderKeyLookup resolves the provider key a collection is
// managed by. Satisfied by collection.Repository.
type CollectionProviderKeyLookup interface {
	FindProviderKey(ctx context.Context, collectionID uuid.UUID) (string, error)
}

// Registry manages capability provider registrations. Providers are
// constructed lazily on first resolution and cached as singletons for the
// lifetime of the registry. A Registry is an explicit constructed value;
// callers hold and pass their own instance.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	instances map[string]provider.Provider
}

// NewRegistry creates a new provider registry
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		instances: make(map[string]provider.Provider),
	}
}

// Register registers a factory under a provider key
func (r *Registry) Register(key string, factory Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if key == "" {
		return fmt.Errorf("%w: provider key cannot be empty", shared.ErrInvalidInput)
	}
	if _, exists := r.factories[key]; exists {
		return fmt.Errorf("%w: provider '%s' already registered", shared.ErrAlreadyExists, key)
	}
	r.factories[key] = factory
	return nil
}

// ResolveByKey returns the provider registered under the key, constructing
// it on first resolution. Concurrent first resolutions of the same key
// yield the same instance.
func (r *Registry) ResolveByKey(key string) (provider.Provider, error) {
	r.mu.RLock()
	if p, ok := r.instances[key]; ok {
		r.mu.RUnlock()
		return p, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check: another goroutine may have constructed it between locks
	if p, ok := r.instances[key]; ok {
		return p, nil
	}

	factory, ok := r.factories[key]
	if !ok {
		return nil, fmt.Errorf("%w: provider '%s' not registered", shared.ErrNotFound, key)
	}

	p, err := factory()
	if err != nil {
		return nil, fmt.Errorf("constructing provider '%s': %w", key, err)
	}
	r.instances[key] = p
	return p, nil
}

// ProvidersForEntityType returns every provider that declares support for
// the given entity type, constructing any not yet resolved. Providers
// without the entity-support capability are skipped. Results are ordered
// by provider key.
func (r *Registry) ProvidersForEntityType(entityType string) ([]provider.Provider, error) {
	keys := r.Keys()

	var matched []provider.Provider
	for _, key := range keys {
		p, err := r.ResolveByKey(key)
		if err != nil {
			return nil, err
		}
		es, ok := p.(provider.EntitySupport)
		if !ok {
			continue
		}
		if es.Supports(entityType) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// ProviderForCollection resolves the provider managing the given collection
// by looking up the collection's provider key and resolving it. Both a
// missing collection and an unregistered key surface as ErrNotFound.
func (r *Registry) ProviderForCollection(ctx context.Context, lookup CollectionProviderKeyLookup, collectionID uuid.UUID) (provider.Provider, error) {
	key, err := lookup.FindProviderKey(ctx, collectionID)
	if err != nil {
		return nil, err
	}
	return r.ResolveByKey(key)
}

// Keys returns all registered provider keys, sorted
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.factories))
	for key := range r.factories {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// IsRegistered returns true if a factory exists for the key
func (r *Registry) IsRegistered(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.factories[key]
	return exists
}
