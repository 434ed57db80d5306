package domain

import (
	"fmt"
	"regexp"
	"strings"
)

type Method string

const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodDelete Method = "DELETE"
	MethodPatch  Method = "PATCH"
)

func (m Method) Valid() bool {
	switch m {
	case MethodGet, MethodPost, MethodPut, MethodDelete, MethodPatch:
		return true
	}
	return false
}

// ParseMethod normalizes a method string to a Method constant.
func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToUpper(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("%w: %s", ErrUnknownMethod, s)
	}
	return m, nil
}

// Endpoint is an immutable descriptor of one versioned API operation.
// Instances are declared once in the catalog and never mutated afterwards,
// so they can be read concurrently without locking.
type Endpoint struct {
	Path         string `json:"path"`
	Method       Method `json:"method"`
	Description  string `json:"description"`
	RequiresAuth bool   `json:"requires_auth"`
	RateLimited  bool   `json:"rate_limited"`
}

// Key identifies an endpoint by its (method, path) pair.
func (e Endpoint) Key() string {
	return fmt.Sprintf("%s:%s", e.Method, e.Path)
}

func (e Endpoint) String() string {
	return fmt.Sprintf("%s %s - %s", e.Method, e.Path, e.Description)
}

var pathParamPattern = regexp.MustCompile(`\{([^}]+)\}`)

// PathParams returns the placeholder names embedded in the path template,
// in order of appearance.
func (e Endpoint) PathParams() []string {
	matches := pathParamPattern.FindAllStringSubmatch(e.Path, -1)
	if len(matches) == 0 {
		return nil
	}
	params := make([]string, 0, len(matches))
	for _, m := range matches {
		params = append(params, m[1])
	}
	return params
}

// BasePath returns the path template with all parameter segments removed.
func (e Endpoint) BasePath() string {
	parts := strings.Split(e.Path, "/")
	kept := parts[:0]
	for _, p := range parts {
		if strings.HasPrefix(p, "{") && strings.HasSuffix(p, "}") {
			continue
		}
		kept = append(kept, p)
	}
	return strings.Join(kept, "/")
}

// EndpointGroup is a named, ordered collection of endpoint names used for
// documentation and browsing. Groups must only reference registered endpoints.
type EndpointGroup struct {
	Name      string   `json:"name"`
	Endpoints []string `json:"endpoints"`
}
