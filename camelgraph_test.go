package camelgraph_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/camelgraph"
	"github.com/aretw0/camelgraph/pkg/domain"
	"github.com/aretw0/camelgraph/pkg/graph"
)

const routes = `<camelContext xmlns="http://camel.apache.org/schema/spring">
  <route id="inbound">
    <from uri="direct:in"/>
    <filter>
      <simple>${header.type} == 'order'</simple>
      <to uri="seda:orders"/>
    </filter>
  </route>
</camelContext>`

func TestConverter_Convert(t *testing.T) {
	conv := camelgraph.New()

	g, err := conv.Convert(context.Background(), strings.NewReader(routes))
	require.NoError(t, err)
	require.Equal(t, 3, g.Len())

	assert.Equal(t, "inbound", g.Nodes[0].ID)
	assert.Equal(t, "${headers.type} == 'order'", g.Nodes[1].Label)
	assert.Equal(t, g.Nodes[1].ID, g.Nodes[2].ParentID)
}

func TestConverter_ConvertFile(t *testing.T) {
	conv := camelgraph.New(camelgraph.WithCollaborators(true))
	assert.True(t, conv.Collaborators())

	g, err := conv.ConvertFile(context.Background(), "internal/compiler/testdata/orders.xml")
	require.NoError(t, err)
	assert.Len(t, g.Roots(), 2)

	_, err = conv.ConvertFile(context.Background(), "testdata/does-not-exist.xml")
	assert.Error(t, err)
}

func TestConverter_Failures(t *testing.T) {
	conv := camelgraph.New()

	t.Run("Malformed Document", func(t *testing.T) {
		g, err := conv.Convert(context.Background(), strings.NewReader("<camelContext>"))
		assert.Nil(t, g)
		assert.ErrorIs(t, err, domain.ErrMalformedDocument)
	})

	t.Run("Unknown Construct", func(t *testing.T) {
		doc := strings.Replace(routes, "<filter>", "<resequence>", 1)
		doc = strings.Replace(doc, "</filter>", "</resequence>", 1)
		g, err := conv.Convert(context.Background(), strings.NewReader(doc))
		assert.Nil(t, g)
		assert.ErrorIs(t, err, domain.ErrUnknownConstruct)
	})

	t.Run("Canceled Context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := conv.Convert(ctx, strings.NewReader(routes))
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestConverter_ConcurrentUse(t *testing.T) {
	conv := camelgraph.New()

	var wg sync.WaitGroup
	results := make([]int, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			g, err := conv.Convert(context.Background(), strings.NewReader(routes))
			if err == nil {
				results[i] = g.Len()
			}
		}(i)
	}
	wg.Wait()

	for _, n := range results {
		assert.Equal(t, 3, n)
	}
}

func ExampleRender() {
	n := 0
	conv := camelgraph.New(camelgraph.WithGraphOptions(graph.WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("step%d", n)
	})))

	g, err := conv.Convert(context.Background(), strings.NewReader(routes))
	if err != nil {
		fmt.Println(err)
		return
	}

	var sb strings.Builder
	_ = camelgraph.Render(&sb, g, camelgraph.RenderOptions{Format: camelgraph.FormatMermaid})
	fmt.Print(sb.String())
	// Output:
	// graph LR
	//     inbound(["inbound"])
	//     step1{{"${headers.type} == 'order'"}}
	//     step2["seda:orders"]
	//     inbound --> step1
	//     step1 --> step2
}
