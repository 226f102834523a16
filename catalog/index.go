package catalog

import (
	"sort"
	"strings"
)

// Summary is a compact listing entry for one tool.
type Summary struct {
	Service string `json:"service"`
	Tool    string `json:"tool"`
	Method  string `json:"method"`
	Path    string `json:"path"`
	Tag     string `json:"tag,omitempty"`
	Desc    string `json:"description,omitempty"`
}

// Index is a searchable view over the endpoint tables of the configured
// services.
type Index struct {
	entries []Summary
}

// NewIndex builds an index over the given services. Tool names are the
// registered MCP names (service-prefixed).
func NewIndex(services map[string][]Endpoint) *Index {
	idx := &Index{}
	names := make([]string, 0, len(services))
	for name := range services {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, svc := range names {
		for _, ep := range services[svc] {
			idx.entries = append(idx.entries, Summary{
				Service: svc,
				Tool:    svc + "_" + ep.Name,
				Method:  ep.Method,
				Path:    ep.Path,
				Tag:     ep.Tag,
				Desc:    ep.Desc,
			})
		}
	}
	return idx
}

// Count returns the total number of indexed tools.
func (idx *Index) Count() int {
	return len(idx.entries)
}

// CountService returns the number of tools for one service.
func (idx *Index) CountService(service string) int {
	n := 0
	for _, e := range idx.entries {
		if e.Service == service {
			n++
		}
	}
	return n
}

// Filter returns entries matching the optional service, tag, and method
// filters.
func (idx *Index) Filter(service, tag, method string) []Summary {
	method = strings.ToUpper(method)

	var results []Summary
	for _, e := range idx.entries {
		if service != "" && e.Service != service {
			continue
		}
		if tag != "" && !strings.EqualFold(e.Tag, tag) {
			continue
		}
		if method != "" && e.Method != method {
			continue
		}
		results = append(results, e)
	}
	return results
}

// Search matches the query against tool name, path, tag, and description,
// optionally limited to one service.
func (idx *Index) Search(query, service string) []Summary {
	query = strings.ToLower(query)

	var results []Summary
	for _, e := range idx.entries {
		if service != "" && e.Service != service {
			continue
		}
		if matches(query, e) {
			results = append(results, e)
		}
	}
	return results
}

func matches(query string, e Summary) bool {
	if strings.Contains(strings.ToLower(e.Tool), query) {
		return true
	}
	if strings.Contains(strings.ToLower(e.Path), query) {
		return true
	}
	if strings.Contains(strings.ToLower(e.Tag), query) {
		return true
	}
	return strings.Contains(strings.ToLower(e.Desc), query)
}
