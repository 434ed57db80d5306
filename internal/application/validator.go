package application

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/glueflow/automation-api/internal/domain"
)

// ValidationResult reports convention violations for one endpoint.
type ValidationResult struct {
	IsValid      bool     `json:"is_valid"`
	EndpointName string   `json:"endpoint_name"`
	Issues       []string `json:"issues"`
	Suggestions  []string `json:"suggestions"`
}

// Validator checks the registry for structural and convention violations and
// generates documentation from it. A malformed catalog entry is always
// reported as an issue, never a panic, so one bad declaration cannot abort
// validation of the rest.
type Validator struct {
	registry *Registry
}

func NewValidator(registry *Registry) *Validator {
	return &Validator{registry: registry}
}

var validPathPattern = regexp.MustCompile(`^/api/v2/[a-z-]+(/[a-z-]+|/\{[a-z_]+\})*$`)

// ValidateEndpoint checks a single endpoint for REST compliance.
func (v *Validator) ValidateEndpoint(name string) ValidationResult {
	ep, ok := v.registry.EndpointByName(name)
	if !ok {
		return ValidationResult{
			IsValid:      false,
			EndpointName: name,
			Issues:       []string{fmt.Sprintf("endpoint %q not found in registry", name)},
			Suggestions:  []string{"check spelling or add the endpoint to the catalog"},
		}
	}

	var issues, suggestions []string

	if ep.Path == "" {
		issues = append(issues, "endpoint has an empty path")
	} else if !strings.HasPrefix(ep.Path, "/api/v2/") {
		issues = append(issues, fmt.Sprintf("path %q must start with /api/v2/", ep.Path))
	} else if !validPathPattern.MatchString(ep.Path) {
		issues = append(issues, fmt.Sprintf("path %q doesn't follow REST conventions", ep.Path))
		suggestions = append(suggestions, "use lowercase, hyphenated paths like /api/v2/resource-name")
	}

	if !ep.Method.Valid() {
		issues = append(issues, fmt.Sprintf("method %q is not a recognized HTTP verb", ep.Method))
	}

	if len(ep.Description) <= 5 {
		issues = append(issues, fmt.Sprintf("description %q is too short (must be longer than 5 characters)", ep.Description))
	}

	desc := strings.ToLower(ep.Description)
	switch ep.Method {
	case domain.MethodGet:
		if !hasAnyPrefix(desc, "get", "list", "retrieve") {
			suggestions = append(suggestions, "GET endpoints typically get, list or retrieve resources")
		}
	case domain.MethodPost:
		if !hasAnyPrefix(desc, "create", "add", "execute", "perform", "start", "stop", "set", "save", "calibrate", "prime", "purge", "jog", "move", "capture", "toggle", "change", "emergency", "user", "refresh", "test") {
			suggestions = append(suggestions, "POST endpoints typically create, execute or perform actions")
		}
	case domain.MethodPut:
		if !hasAnyPrefix(desc, "update", "replace", "set", "toggle") {
			suggestions = append(suggestions, "PUT endpoints typically update or replace resources")
		}
	case domain.MethodDelete:
		if !hasAnyPrefix(desc, "delete", "remove") {
			suggestions = append(suggestions, "DELETE endpoints should delete or remove resources")
		}
	}

	if !ep.RateLimited && ep.Method != domain.MethodGet {
		suggestions = append(suggestions, "mutation operations should typically be rate limited")
	}

	return ValidationResult{
		IsValid:      len(issues) == 0,
		EndpointName: name,
		Issues:       issues,
		Suggestions:  suggestions,
	}
}

func hasAnyPrefix(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// ValidateAllEndpoints validates every catalog entry.
func (v *Validator) ValidateAllEndpoints() map[string]ValidationResult {
	results := make(map[string]ValidationResult)
	for _, entry := range v.registry.Entries() {
		results[entry.Name] = v.ValidateEndpoint(entry.Name)
	}
	return results
}

// Consistency check categories.
const (
	CheckPathConflicts         = "path_conflicts"
	CheckNamingInconsistencies = "naming_inconsistencies"
	CheckLegacyMappingIssues   = "legacy_mapping_issues"
	CheckGroupOrganization     = "group_organization"
)

// CheckConsistency inspects the whole registry for cross-endpoint problems.
func (v *Validator) CheckConsistency() map[string][]string {
	issues := map[string][]string{
		CheckPathConflicts:         {},
		CheckNamingInconsistencies: {},
		CheckLegacyMappingIssues:   {},
		CheckGroupOrganization:     {},
	}

	entries := v.registry.Entries()

	// Duplicate (path, method) pairs across the ordered declarations.
	seen := make(map[string]string, len(entries))
	for _, entry := range entries {
		key := entry.Endpoint.Key()
		if first, dup := seen[key]; dup {
			issues[CheckPathConflicts] = append(issues[CheckPathConflicts],
				fmt.Sprintf("path conflict: %s %s used by both %s and %s",
					entry.Endpoint.Path, entry.Endpoint.Method, first, entry.Name))
			continue
		}
		seen[key] = entry.Name
	}

	// Endpoint names should share their group prefix with their path resource.
	for _, entry := range entries {
		prefix, _, found := strings.Cut(entry.Name, "_")
		if !found || entry.Endpoint.Path == "" {
			continue
		}
		segments := strings.Split(strings.Trim(entry.Endpoint.BasePath(), "/"), "/")
		if len(segments) < 3 {
			continue
		}
		resource := strings.ReplaceAll(segments[2], "-", "")
		if !strings.HasPrefix(resource, strings.ToLower(prefix)) && !strings.HasPrefix(strings.ToLower(prefix), strings.TrimSuffix(resource, "s")) {
			issues[CheckNamingInconsistencies] = append(issues[CheckNamingInconsistencies],
				fmt.Sprintf("%s is named for %q but lives under /%s/", entry.Name, strings.ToLower(prefix), segments[2]))
		}
	}

	// Every legacy mapping value must resolve to a registered endpoint.
	legacy := v.registry.LegacyMappings()
	legacyPaths := make([]string, 0, len(legacy))
	for path := range legacy {
		legacyPaths = append(legacyPaths, path)
	}
	sort.Strings(legacyPaths)
	for _, path := range legacyPaths {
		if _, ok := v.registry.EndpointByName(legacy[path]); !ok {
			issues[CheckLegacyMappingIssues] = append(issues[CheckLegacyMappingIssues],
				fmt.Sprintf("legacy path %q maps to unknown endpoint %q", path, legacy[path]))
		}
	}

	// Groups must only reference registered endpoints, and no endpoint should
	// be left out of every group.
	grouped := make(map[string]bool)
	for _, group := range v.registry.Groups() {
		for _, name := range group.Endpoints {
			grouped[name] = true
			if _, ok := v.registry.EndpointByName(name); !ok {
				issues[CheckGroupOrganization] = append(issues[CheckGroupOrganization],
					fmt.Sprintf("group %q references unknown endpoint %q", group.Name, name))
			}
		}
	}
	for _, entry := range entries {
		if !grouped[entry.Name] {
			issues[CheckGroupOrganization] = append(issues[CheckGroupOrganization],
				fmt.Sprintf("endpoint %s is not assigned to any group", entry.Name))
		}
	}

	return issues
}

// GenerateDocumentation renders a Markdown reference for the whole catalog.
func (v *Validator) GenerateDocumentation() string {
	var b strings.Builder

	b.WriteString("# Automation API v2 - Endpoint Reference\n\n")
	b.WriteString("Complete reference for all registered v2 endpoints.\n\n")

	for _, group := range v.registry.Groups() {
		fmt.Fprintf(&b, "## %s Endpoints\n\n", group.Name)
		for _, name := range group.Endpoints {
			ep, ok := v.registry.EndpointByName(name)
			if !ok {
				continue
			}
			fmt.Fprintf(&b, "### %s\n", name)
			fmt.Fprintf(&b, "- **Path**: `%s`\n", ep.Path)
			fmt.Fprintf(&b, "- **Method**: `%s`\n", ep.Method)
			fmt.Fprintf(&b, "- **Description**: %s\n", ep.Description)
			fmt.Fprintf(&b, "- **Requires Authentication**: %s\n", yesNo(ep.RequiresAuth))
			fmt.Fprintf(&b, "- **Rate Limited**: %s\n\n", yesNo(ep.RateLimited))
		}
	}

	b.WriteString("## Legacy Compatibility\n\n")
	b.WriteString("The following legacy paths are automatically translated to v2 endpoints:\n\n")

	legacy := v.registry.LegacyMappings()
	legacyPaths := make([]string, 0, len(legacy))
	for path := range legacy {
		legacyPaths = append(legacyPaths, path)
	}
	sort.Strings(legacyPaths)
	for _, path := range legacyPaths {
		if ep, ok := v.registry.EndpointByName(legacy[path]); ok {
			fmt.Fprintf(&b, "- `%s` -> `%s %s`\n", path, ep.Method, ep.Path)
		}
	}

	results := v.ValidateAllEndpoints()
	valid := 0
	for _, res := range results {
		if res.IsValid {
			valid++
		}
	}
	b.WriteString("\n## Validation Summary\n\n")
	fmt.Fprintf(&b, "- **Total Endpoints**: %d\n", len(results))
	fmt.Fprintf(&b, "- **Valid Endpoints**: %d\n", valid)
	fmt.Fprintf(&b, "- **Issues Found**: %d\n", len(results)-valid)

	return b.String()
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// ExportOpenAPISchema emits an OpenAPI 3.0 document for the catalog.
func (v *Validator) ExportOpenAPISchema() map[string]any {
	paths := map[string]any{}

	for _, entry := range v.registry.Entries() {
		ep := entry.Endpoint
		if ep.Path == "" || !ep.Method.Valid() {
			continue
		}

		operation := map[string]any{
			"summary":     ep.Description,
			"operationId": strings.ToLower(entry.Name),
			"responses": map[string]any{
				"200": map[string]any{
					"description": "Success response",
					"content": map[string]any{
						"application/json": map[string]any{
							"schema": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"success": map[string]any{"type": "boolean"},
									"message": map[string]any{"type": "string"},
									"data":    map[string]any{"type": "object"},
								},
							},
						},
					},
				},
			},
		}
		if ep.RequiresAuth {
			operation["security"] = []map[string]any{{"SessionAuth": []string{}}}
		}
		if params := ep.PathParams(); len(params) > 0 {
			var specs []map[string]any
			for _, p := range params {
				specs = append(specs, map[string]any{
					"name":     p,
					"in":       "path",
					"required": true,
					"schema":   map[string]any{"type": "string"},
				})
			}
			operation["parameters"] = specs
		}

		item, ok := paths[ep.Path].(map[string]any)
		if !ok {
			item = map[string]any{}
			paths[ep.Path] = item
		}
		item[strings.ToLower(string(ep.Method))] = operation
	}

	return map[string]any{
		"openapi": "3.0.0",
		"info": map[string]any{
			"title":       "Automation API",
			"version":     "2.0.0",
			"description": "RESTful API for the industrial automation and glue dispensing system",
		},
		"servers": []map[string]any{
			{"url": "/api/v2", "description": "API v2 base URL"},
		},
		"paths": paths,
		"components": map[string]any{
			"securitySchemes": map[string]any{
				"SessionAuth": map[string]any{
					"type": "apiKey",
					"in":   "header",
					"name": "Authorization",
				},
			},
		},
	}
}
