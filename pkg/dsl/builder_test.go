package dsl_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/camelgraph"
	"github.com/aretw0/camelgraph/pkg/domain"
	"github.com/aretw0/camelgraph/pkg/dsl"
)

func TestBuilder_Structure(t *testing.T) {
	doc := dsl.New().
		Endpoint("orders", "jms:queue:orders").
		Route("inbound").
		From("file:inbox").
		Choice().
		When("simple", "${header.type} == 'order'").
		To("ref:orders").
		Otherwise().
		To("log:rejected").
		Build()

	require.Equal(t, "beans", doc.Tag)
	ctx := doc.FirstChild()
	require.Equal(t, "camelContext", ctx.Tag)
	require.Len(t, ctx.Children, 2)
	assert.Equal(t, "endpoint", ctx.Children[0].Tag)

	route := ctx.Children[1]
	id, _ := route.Attr(domain.AttrID)
	assert.Equal(t, "inbound", id)
	require.Len(t, route.Children, 2)

	choice := route.Children[1]
	require.Equal(t, "choice", choice.Tag)
	require.Len(t, choice.Children, 2, "When then Otherwise land on the same choice")
	assert.Equal(t, "when", choice.Children[0].Tag)
	assert.Equal(t, "otherwise", choice.Children[1].Tag)
	assert.Equal(t, "simple", choice.Children[0].FirstChild().Tag)
}

func TestBuilder_LinesFollowConstructionOrder(t *testing.T) {
	doc := dsl.New().Route("r").From("direct:a").To("mock:b").Build()

	var lines []int
	doc.Walk(func(el *domain.Element) bool {
		lines = append(lines, el.Line)
		return true
	})
	assert.Equal(t, []int{1, 2, 3, 4, 5}, lines)
}

func TestBuilder_Convert(t *testing.T) {
	doc := dsl.New().
		Endpoint("orders", "jms:queue:orders").
		Bean("store", "com.acme.OrderService").
		Route("inbound").
		From("file:inbox").
		Split("simple", "${body.items}").
		To("ref:orders").
		BeanRef("store", "save").
		End().
		WireTap("seda:audit").
		Route("").
		From("direct:second").
		To("mock:end").
		Build()

	g, err := camelgraph.New(camelgraph.WithCollaborators(true)).ConvertDocument(context.Background(), doc)
	require.NoError(t, err)

	roots := g.Roots()
	require.Len(t, roots, 2)
	assert.Equal(t, "inbound", roots[0].ID)

	children := g.Children(roots[0].ID)
	require.Len(t, children, 2)
	assert.Equal(t, domain.ShapeSplitter, children[0].Shape)
	assert.Equal(t, domain.ShapeWireTap, children[1].Shape)

	split := g.Children(children[0].ID)
	require.Len(t, split, 2)
	assert.Equal(t, "jms:queue:orders", split[0].Label)
	assert.Equal(t, "OrderService.save", split[1].Label)
}

func TestBuilder_ConvertReportsSyntheticLine(t *testing.T) {
	doc := dsl.New().
		Route("r").
		From("direct:a").
		Step("teleport", nil).
		Build()

	_, err := camelgraph.New().ConvertDocument(context.Background(), doc)
	require.Error(t, err)

	var ce *domain.ConstructError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "teleport", ce.Tag)
	assert.Equal(t, 5, ce.Line)
}

func TestStepBuilder_EndOnRouteIsNoop(t *testing.T) {
	route := dsl.New().Route("r")
	assert.Same(t, route, route.End())
}
