package registry

import (
	"sync"

	"catalog-sync/core/catalog"

	"go.uber.org/zap"
)

// Store is a resolved store: its profile and a client bound to it.
type Store struct {
	Profile Profile
	Client  catalog.Client
}

// ClientFactory creates the client for a profile.
type ClientFactory func(p Profile) catalog.Client

// HTTPClients returns a factory producing API clients.
func HTTPClients(cfg catalog.Config, logger *zap.Logger) ClientFactory {
	return func(p Profile) catalog.Client {
		return catalog.NewClient(p.Key, catalog.Credentials{
			StoreHash:   p.StoreHash,
			AccessToken: p.AccessToken,
			ClientID:    p.ClientID,
		}, cfg, logger)
	}
}

// Registry resolves store keys to clients. Profiles are fixed at construction.
type Registry struct {
	order     []string
	profiles  map[string]Profile
	newClient ClientFactory

	mu      sync.Mutex
	clients map[string]catalog.Client
}

// New creates a registry. Later profiles with a duplicate key are ignored.
func New(profiles []Profile, factory ClientFactory) *Registry {
	r := &Registry{
		profiles:  make(map[string]Profile, len(profiles)),
		newClient: factory,
		clients:   make(map[string]catalog.Client),
	}
	for _, p := range profiles {
		if _, dup := r.profiles[p.Key]; dup || p.Key == "" {
			continue
		}
		r.order = append(r.order, p.Key)
		r.profiles[p.Key] = p
	}
	return r
}

// Resolve returns the store for a key. Unknown keys and profiles with missing
// credentials yield *ConfigurationError.
func (r *Registry) Resolve(key string) (Store, error) {
	p, ok := r.profiles[key]
	if !ok {
		return Store{}, &ConfigurationError{Key: key}
	}
	if missing := p.Missing(); len(missing) > 0 {
		return Store{}, &ConfigurationError{Key: key, Missing: missing}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.clients[key]
	if !ok {
		c = r.newClient(p)
		r.clients[key] = c
	}
	return Store{Profile: p, Client: c}, nil
}

// Profiles returns every profile in configuration order.
func (r *Registry) Profiles() []Profile {
	out := make([]Profile, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, r.profiles[k])
	}
	return out
}

// Names maps every key to its display name.
func (r *Registry) Names() map[string]string {
	names := make(map[string]string, len(r.profiles))
	for k, p := range r.profiles {
		names[k] = p.Name()
	}
	return names
}

// DisplayName returns the display name of a key, or the key itself if unknown.
func (r *Registry) DisplayName(key string) string {
	if p, ok := r.profiles[key]; ok {
		return p.Name()
	}
	return key
}
