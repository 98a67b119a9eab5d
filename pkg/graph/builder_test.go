package graph_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/camelgraph/pkg/domain"
	"github.com/aretw0/camelgraph/pkg/graph"
)

func TestBuilder_Emit(t *testing.T) {
	n := 0
	b := graph.New(graph.WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("n%d", n)
	}))

	root := b.EmitWithID("orders-route", domain.ShapePollingConsumer, "orders-route", "", 0, 3)
	fanout := b.Emit(domain.ShapeRecipientList, "multicast", root, 1, 4)
	b.Emit(domain.ShapeRectangle, "jms:a", fanout, 2, 5)
	b.Emit(domain.ShapeRectangle, "jms:b", fanout, 2, 6)

	g := b.Graph()
	require.Equal(t, 4, g.Len())
	assert.Equal(t, "orders-route", root)
	assert.Equal(t, "n1", fanout)

	for i, node := range g.Nodes {
		assert.Equal(t, i, node.Position.Row, "cursor must follow emission order")
	}

	children := g.Children(fanout)
	require.Len(t, children, 2)
	assert.Equal(t, "jms:a", children[0].Label)
	assert.Equal(t, "jms:b", children[1].Label)
	assert.Equal(t, 2, children[0].Position.Depth)

	roots := g.Roots()
	require.Len(t, roots, 1)
	assert.Equal(t, domain.ShapePollingConsumer, roots[0].Shape)
}

func TestBuilder_DefaultIdentitiesAreUnique(t *testing.T) {
	b := graph.New()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := b.Emit(domain.ShapeRectangle, "to", "", 0, 1)
		assert.NotEmpty(t, id)
		assert.False(t, seen[id], "duplicate identity %s", id)
		seen[id] = true
	}
}

func TestBuilder_GraphIsACopy(t *testing.T) {
	b := graph.New()
	b.Emit(domain.ShapeRectangle, "first", "", 0, 1)
	g := b.Graph()
	b.Emit(domain.ShapeRectangle, "second", "", 0, 2)

	assert.Equal(t, 1, g.Len())
	assert.Equal(t, 2, b.Len())
}
