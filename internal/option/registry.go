package option

// Registry maps listbox IDs to their caches. The enclosing application owns
// the registry and hands it to controllers; there is no package-level state.
type Registry struct {
	caches map[string]*Cache
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{caches: make(map[string]*Cache)}
}

// Register associates a cache with a listbox ID, replacing any previous cache.
func (r *Registry) Register(id string, c *Cache) {
	r.caches[id] = c
}

// Lookup returns the cache for the given ID, or nil when unregistered.
func (r *Registry) Lookup(id string) *Cache {
	return r.caches[id]
}
