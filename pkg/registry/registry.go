package registry

import (
	"strings"

	"github.com/aretw0/camelgraph/pkg/domain"
)

// infrastructureMarkers identify framework bootstrap collaborators.
// They configure the container and carry no diagram value.
var infrastructureMarkers = []string{
	"PropertyPlaceholderConfigurer",
	"PropertiesComponent",
}

// Registry holds the symbol tables of one conversion run.
// Entries are write-once; it is not safe for concurrent use.
type Registry struct {
	endpoints     map[string]string
	collaborators map[string]string
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		endpoints:     make(map[string]string),
		collaborators: make(map[string]string),
	}
}

// RegisterEndpoint binds an endpoint identifier to its destination URI.
// It returns false if the identifier was already registered; the first value is kept.
func (r *Registry) RegisterEndpoint(id, destination string) bool {
	if _, exists := r.endpoints[id]; exists {
		return false
	}
	r.endpoints[id] = destination
	return true
}

// RegisterCollaborator binds a collaborator identifier to its implementation type.
// Infrastructure collaborators, incomplete declarations and duplicates are skipped
// and reported with false.
func (r *Registry) RegisterCollaborator(id, implementationType string) bool {
	if id == "" || implementationType == "" || IsInfrastructure(implementationType) {
		return false
	}
	if _, exists := r.collaborators[id]; exists {
		return false
	}
	r.collaborators[id] = implementationType
	return true
}

// ResolveEndpoint looks up an endpoint destination.
// Returns a *domain.LookupError if the identifier was never registered.
func (r *Registry) ResolveEndpoint(id string) (string, error) {
	dest, ok := r.endpoints[id]
	if !ok {
		return "", &domain.LookupError{Kind: domain.LookupEndpoint, ID: id}
	}
	return dest, nil
}

// ResolveCollaborator looks up a collaborator implementation type.
// Returns a *domain.LookupError if the identifier was never registered.
func (r *Registry) ResolveCollaborator(id string) (string, error) {
	impl, ok := r.collaborators[id]
	if !ok {
		return "", &domain.LookupError{Kind: domain.LookupCollaborator, ID: id}
	}
	return impl, nil
}

// Endpoints returns the number of registered endpoints.
func (r *Registry) Endpoints() int {
	return len(r.endpoints)
}

// Collaborators returns the number of registered collaborators.
func (r *Registry) Collaborators() int {
	return len(r.collaborators)
}

// IsInfrastructure reports whether an implementation type is a container bootstrap class.
func IsInfrastructure(implementationType string) bool {
	for _, marker := range infrastructureMarkers {
		if strings.Contains(implementationType, marker) {
			return true
		}
	}
	return false
}
