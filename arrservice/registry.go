package arrservice

import (
	"fmt"
	"sort"

	"github.com/Knuckles-Team/arr-mcp/config"
)

// Registry holds all configured services.
type Registry struct {
	services map[string]*Service
}

// NewRegistry creates a registry from config. Services without a URL are
// considered unconfigured and skipped.
func NewRegistry(cfg *config.Config) *Registry {
	r := &Registry{
		services: make(map[string]*Service),
	}
	for name, svcCfg := range cfg.Services {
		if svcCfg.URL == "" {
			continue
		}
		r.services[name] = NewService(name, svcCfg)
	}
	return r
}

// Get returns a service by name.
func (r *Registry) Get(name string) (*Service, error) {
	svc, ok := r.services[name]
	if !ok {
		return nil, fmt.Errorf("service %q not configured", name)
	}
	return svc, nil
}

// Has reports whether a service is configured.
func (r *Registry) Has(name string) bool {
	_, ok := r.services[name]
	return ok
}

// List returns all configured service names sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.services))
	for name := range r.services {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
