package permissions

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Permission lists the roles allowed on one route pattern. No roles means any
// authenticated user; Skip makes the route public.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`

	index map[string]Permission
}

func routeKey(method, path string) string {
	return method + " " + path
}

// FindPermissions looks up a chi route pattern such as "/v1/bookings/{id}".
func (r *PermissionData) FindPermissions(path, method string) Permission {
	if r.index == nil {
		r.buildIndex()
	}

	return r.index[routeKey(method, path)]
}

func (r *PermissionData) buildIndex() {
	r.index = make(map[string]Permission, len(r.Endpoints))
	for _, endpoint := range r.Endpoints {
		r.index[routeKey(endpoint.Method, endpoint.Path)] = endpoint
	}
}

// Parse decodes a permission table and rejects duplicate or malformed entries.
func Parse(raw []byte) (*PermissionData, error) {
	var data PermissionData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decoding permissions: %w", err)
	}

	seen := make(map[string]struct{}, len(data.Endpoints))

	for _, endpoint := range data.Endpoints {
		if endpoint.Path == "" || !routedMethod(endpoint.Method) {
			return nil, fmt.Errorf("invalid permission entry %q %q", endpoint.Method, endpoint.Path)
		}

		key := routeKey(endpoint.Method, endpoint.Path)
		if _, ok := seen[key]; ok {
			return nil, fmt.Errorf("duplicate permission entry %s", key)
		}

		seen[key] = struct{}{}
	}

	data.buildIndex()

	return &data, nil
}

func routedMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}

// Get loads the embedded table. A broken table denies every protected route.
func Get() *PermissionData {
	data, err := Parse(permissionsData)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(data.Endpoints)).Msg("Loaded embedded permissions")

	return data
}
