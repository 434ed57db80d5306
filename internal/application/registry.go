package application

import (
	"github.com/glueflow/automation-api/internal/domain"
)

// RegistryConfig carries the endpoint declarations a registry is built from.
// Tests inject custom tables here; production uses the default catalog.
type RegistryConfig struct {
	Entries []CatalogEntry
	Groups  []domain.EndpointGroup
	Legacy  map[string]string
}

// Registry is the static catalog of v2 endpoints, their groups and the
// legacy path mapping. It is fully built by the constructor and read-only
// afterwards, so concurrent lookups need no synchronization.
type Registry struct {
	entries []CatalogEntry
	byName  map[string]domain.Endpoint
	byKey   map[string]string
	groups  []domain.EndpointGroup
	legacy  map[string]string
}

// NewRegistry builds a registry over the default v2 catalog.
func NewRegistry() *Registry {
	return NewRegistryWith(RegistryConfig{
		Entries: defaultCatalog(),
		Groups:  defaultGroups(),
		Legacy:  defaultLegacyMapping(),
	})
}

// NewRegistryWith builds a registry from explicit declarations. Duplicate
// (path, method) pairs keep the first declaration; the validator reports them
// through CheckConsistency rather than this constructor failing, so a single
// bad entry cannot take the whole catalog down.
func NewRegistryWith(cfg RegistryConfig) *Registry {
	r := &Registry{
		entries: cfg.Entries,
		byName:  make(map[string]domain.Endpoint, len(cfg.Entries)),
		byKey:   make(map[string]string, len(cfg.Entries)),
		groups:  cfg.Groups,
		legacy:  cfg.Legacy,
	}
	for _, e := range cfg.Entries {
		r.byName[e.Name] = e.Endpoint
		key := e.Endpoint.Key()
		if _, exists := r.byKey[key]; !exists {
			r.byKey[key] = e.Name
		}
	}
	if r.legacy == nil {
		r.legacy = map[string]string{}
	}
	return r
}

// GetAllEndpoints returns a copy of the name -> endpoint table.
func (r *Registry) GetAllEndpoints() map[string]domain.Endpoint {
	out := make(map[string]domain.Endpoint, len(r.byName))
	for name, ep := range r.byName {
		out[name] = ep
	}
	return out
}

// Entries returns the ordered catalog declarations, including any duplicates,
// for consistency checking and documentation.
func (r *Registry) Entries() []CatalogEntry {
	out := make([]CatalogEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// EndpointByName looks up an endpoint by its registry name.
func (r *Registry) EndpointByName(name string) (domain.Endpoint, bool) {
	ep, ok := r.byName[name]
	return ep, ok
}

// FindEndpoint resolves a (path, method) pair to a registered endpoint.
// The path must match the declared template exactly.
func (r *Registry) FindEndpoint(path string, method domain.Method) (string, domain.Endpoint, bool) {
	name, ok := r.byKey[string(method)+":"+path]
	if !ok {
		return "", domain.Endpoint{}, false
	}
	return name, r.byName[name], true
}

// V2Endpoint resolves a legacy path to its v2 endpoint. Lookups are
// exact-match; unmapped paths report ok=false and the caller turns that into
// a structured error response.
func (r *Registry) V2Endpoint(legacyPath string) (string, domain.Endpoint, bool) {
	name, ok := r.legacy[legacyPath]
	if !ok {
		return "", domain.Endpoint{}, false
	}
	ep, ok := r.byName[name]
	return name, ep, ok
}

// Groups returns the documentation groups.
func (r *Registry) Groups() []domain.EndpointGroup {
	out := make([]domain.EndpointGroup, len(r.groups))
	copy(out, r.groups)
	return out
}

// LegacyMappings returns a copy of the legacy path table.
func (r *Registry) LegacyMappings() map[string]string {
	out := make(map[string]string, len(r.legacy))
	for k, v := range r.legacy {
		out[k] = v
	}
	return out
}
