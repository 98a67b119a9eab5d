package registry_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/camelgraph/pkg/domain"
	"github.com/aretw0/camelgraph/pkg/registry"
)

func TestRegistry_Endpoints(t *testing.T) {
	r := registry.NewRegistry()

	assert.True(t, r.RegisterEndpoint("orders", "queue:orders"))
	assert.False(t, r.RegisterEndpoint("orders", "queue:other"), "second registration must be refused")

	dest, err := r.ResolveEndpoint("orders")
	require.NoError(t, err)
	assert.Equal(t, "queue:orders", dest)
	assert.Equal(t, 1, r.Endpoints())

	_, err = r.ResolveEndpoint("missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnresolvedReference))

	var lookupErr *domain.LookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, domain.LookupEndpoint, lookupErr.Kind)
	assert.Equal(t, "missing", lookupErr.ID)
}

func TestRegistry_Collaborators(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		impl     string
		accepted bool
	}{
		{"Plain Bean", "orderService", "com.acme.OrderService", true},
		{"Placeholder Configurer", "props", "org.springframework.beans.factory.config.PropertyPlaceholderConfigurer", false},
		{"Bridge Configurer", "bridge", "org.apache.camel.spring.spi.BridgePropertyPlaceholderConfigurer", false},
		{"Properties Component", "properties", "org.apache.camel.component.properties.PropertiesComponent", false},
		{"Missing Class", "anonymous", "", false},
		{"Missing ID", "", "com.acme.Nameless", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := registry.NewRegistry()
			assert.Equal(t, tt.accepted, r.RegisterCollaborator(tt.id, tt.impl))

			impl, err := r.ResolveCollaborator(tt.id)
			if tt.accepted {
				require.NoError(t, err)
				assert.Equal(t, tt.impl, impl)
			} else {
				assert.ErrorIs(t, err, domain.ErrUnresolvedReference)
			}
		})
	}
}
