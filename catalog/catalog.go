// Package catalog holds the endpoint tables for every proxied backend and
// turns tool arguments into concrete HTTP requests. The per-service tables
// are mechanical one-to-one renditions of the upstream REST APIs; nothing in
// here alters what goes over the wire.
package catalog

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Location says where a parameter goes on the wire.
type Location int

const (
	InQuery Location = iota
	InPath
	InBody
)

// Type is the declared parameter type, used for the tool input schema and
// for query/path formatting.
type Type int

const (
	String Type = iota
	Int
	Bool
	Number
	JSON
)

// Param describes a single tool parameter.
type Param struct {
	Name     string
	In       Location
	Type     Type
	Required bool
}

// Endpoint is one upstream REST operation exposed as a tool.
type Endpoint struct {
	Name   string
	Method string
	Path   string // upstream path incl. API prefix, may contain {placeholders}
	Tag    string
	Desc   string
	Params []Param
}

// table constructors, kept short because the generated tables use them
// thousands of times.
func q(name string, t Type) Param  { return Param{Name: name, In: InQuery, Type: t} }
func qr(name string, t Type) Param { return Param{Name: name, In: InQuery, Type: t, Required: true} }
func p(name string, t Type) Param  { return Param{Name: name, In: InPath, Type: t, Required: true} }

// body is the JSON request body parameter; the document is forwarded as-is.
var body = Param{Name: "data", In: InBody, Type: JSON, Required: true}

// Services returns the endpoint tables keyed by service name.
func Services() map[string][]Endpoint {
	return map[string][]Endpoint{
		"radarr":   radarrEndpoints,
		"sonarr":   sonarrEndpoints,
		"lidarr":   lidarrEndpoints,
		"prowlarr": prowlarrEndpoints,
		"chaptarr": chaptarrEndpoints,
	}
}

// Request is the wire form of a tool invocation, ready for
// arrservice.DoRequest.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   []byte
}

// BuildRequest validates the arguments against the endpoint's parameters and
// assembles the upstream request. It never touches the network: a missing
// required parameter fails here, before any call is made.
func (e Endpoint) BuildRequest(args map[string]any) (*Request, error) {
	for _, prm := range e.Params {
		if !prm.Required {
			continue
		}
		if v, ok := args[prm.Name]; !ok || v == nil {
			return nil, fmt.Errorf("missing required parameter %q", prm.Name)
		}
	}

	req := &Request{
		Method: e.Method,
		Path:   e.Path,
		Query:  url.Values{},
	}

	for _, prm := range e.Params {
		v, ok := args[prm.Name]
		if !ok || v == nil {
			continue
		}

		switch prm.In {
		case InPath:
			s, err := prm.format(v)
			if err != nil {
				return nil, err
			}
			req.Path = strings.ReplaceAll(req.Path, "{"+prm.Name+"}", url.PathEscape(s))

		case InQuery:
			if err := addQuery(req.Query, prm, v); err != nil {
				return nil, err
			}

		case InBody:
			b, err := encodeBody(v)
			if err != nil {
				return nil, fmt.Errorf("parameter %q: %w", prm.Name, err)
			}
			req.Body = b
		}
	}

	return req, nil
}

// addQuery appends a query parameter. Array values become repeated keys,
// matching how the upstream APIs expect multi-value parameters.
func addQuery(values url.Values, prm Param, v any) error {
	if prm.Type == JSON {
		items, err := asArray(v)
		if err != nil {
			return fmt.Errorf("parameter %q: %w", prm.Name, err)
		}
		for _, item := range items {
			s, err := prm.format(item)
			if err != nil {
				return err
			}
			values.Add(prm.Name, s)
		}
		return nil
	}

	s, err := prm.format(v)
	if err != nil {
		return err
	}
	values.Add(prm.Name, s)
	return nil
}

// asArray accepts a decoded JSON array or a string holding one.
func asArray(v any) ([]any, error) {
	switch vv := v.(type) {
	case []any:
		return vv, nil
	case string:
		var items []any
		if err := json.Unmarshal([]byte(vv), &items); err != nil {
			// a bare scalar is accepted as a single-element list
			return []any{vv}, nil
		}
		return items, nil
	default:
		return []any{v}, nil
	}
}

// encodeBody accepts either a decoded JSON value or a pre-encoded JSON
// string and returns the exact bytes to send.
func encodeBody(v any) ([]byte, error) {
	if s, ok := v.(string); ok {
		if !json.Valid([]byte(s)) {
			return nil, fmt.Errorf("invalid JSON body")
		}
		return []byte(s), nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding body: %w", err)
	}
	return b, nil
}

// format renders a scalar argument for a path or query position. JSON
// arguments arrive with numbers as float64; integers must not pick up a
// decimal point on the way through.
func (p Param) format(v any) (string, error) {
	switch vv := v.(type) {
	case string:
		return vv, nil
	case bool:
		return strconv.FormatBool(vv), nil
	case float64:
		return strconv.FormatFloat(vv, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(vv), nil
	case int64:
		return strconv.FormatInt(vv, 10), nil
	case json.Number:
		return vv.String(), nil
	default:
		return "", fmt.Errorf("parameter %q: unsupported value type %T", p.Name, v)
	}
}
