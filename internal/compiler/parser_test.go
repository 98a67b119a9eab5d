package compiler_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/camelgraph/internal/compiler"
	"github.com/aretw0/camelgraph/pkg/domain"
)

func TestParser_Parse(t *testing.T) {
	data, err := os.ReadFile("testdata/orders.xml")
	require.NoError(t, err)

	root, err := compiler.NewParser().Parse(data)
	require.NoError(t, err)

	assert.Equal(t, "beans", root.Tag)
	assert.Equal(t, domain.NamespaceBeans, root.Space)
	assert.Equal(t, 2, root.Line)

	// Comments are dropped: the first child is the placeholder bean.
	require.Len(t, root.Children, 3)
	assert.Equal(t, "bean", root.Children[0].Tag)
	assert.Equal(t, 7, root.Children[0].Line)

	ctx := root.Children[2]
	assert.Equal(t, "camelContext", ctx.Tag)
	assert.Equal(t, domain.NamespaceCamel, ctx.Space)
	id, ok := ctx.Attr("id")
	assert.True(t, ok)
	assert.Equal(t, "orders", id)
	_, hasXmlns := ctx.Attr("xmlns")
	assert.False(t, hasXmlns, "namespace declarations are not attributes")
}

func TestParser_Text(t *testing.T) {
	doc := `<setBody><simple>
  ${body}
</simple></setBody>`
	root, err := compiler.NewParser().Parse([]byte(doc))
	require.NoError(t, err)

	simple := root.FirstChild()
	require.NotNil(t, simple)
	assert.Equal(t, "\n  ${body}\n", simple.Text)
	assert.Equal(t, 1, simple.Line)
}

func TestParser_Malformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"Unclosed", "<route><from uri='a'></route>"},
		{"Empty", ""},
		{"Only Comment", "<!-- nothing -->"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := compiler.NewParser().Parse([]byte(tt.doc))
			assert.ErrorIs(t, err, domain.ErrMalformedDocument)
		})
	}
}
