package dsl

import "github.com/aretw0/camelgraph/pkg/domain"

// Builder manages the document construction. The document mirrors a Spring
// file: a beans root holding collaborator declarations and one camelContext.
type Builder struct {
	root *domain.Element
	ctx  *domain.Element
	line int
}

// New creates a builder holding an empty camelContext.
func New() *Builder {
	b := &Builder{}
	b.root = b.element(domain.NamespaceBeans, "beans", nil)
	b.ctx = b.element(domain.NamespaceCamel, "camelContext", nil)
	b.append(b.root, b.ctx)
	return b
}

// Endpoint declares a named endpoint that route steps can reference with "ref:".
func (b *Builder) Endpoint(id, uri string) *Builder {
	b.append(b.ctx, b.element(domain.NamespaceCamel, "endpoint", map[string]string{
		domain.AttrID:  id,
		domain.AttrURI: uri,
	}))
	return b
}

// Bean declares a collaborator bean with its implementation type.
func (b *Builder) Bean(id, class string) *Builder {
	b.append(b.root, b.element(domain.NamespaceBeans, "bean", map[string]string{
		domain.AttrID:    id,
		domain.AttrClass: class,
	}))
	return b
}

// Route opens a new route. An empty id leaves the route anonymous.
func (b *Builder) Route(id string) *StepBuilder {
	var attrs map[string]string
	if id != "" {
		attrs = map[string]string{domain.AttrID: id}
	}
	el := b.element(domain.NamespaceCamel, "route", attrs)
	b.append(b.ctx, el)
	return &StepBuilder{builder: b, el: el}
}

// Build returns the document root.
// The builder must not be used afterwards.
func (b *Builder) Build() *domain.Element {
	return b.root
}

func (b *Builder) element(space, tag string, attrs map[string]string) *domain.Element {
	b.line++
	return &domain.Element{Space: space, Tag: tag, Attrs: attrs, Line: b.line}
}

func (b *Builder) append(parent, child *domain.Element) {
	parent.Children = append(parent.Children, child)
}
