package dsl

import "github.com/aretw0/camelgraph/pkg/domain"

// StepBuilder provides a fluent API for adding steps to a route or to a
// nested block. Methods that open a block return the builder of that block;
// End returns to the enclosing one.
type StepBuilder struct {
	builder *Builder
	el      *domain.Element
	parent  *StepBuilder
}

// Route opens another route on the same document.
func (s *StepBuilder) Route(id string) *StepBuilder {
	return s.builder.Route(id)
}

// Build returns the document root.
func (s *StepBuilder) Build() *domain.Element {
	return s.builder.Build()
}

// From adds a source declaration.
func (s *StepBuilder) From(uri string) *StepBuilder {
	return s.Step("from", map[string]string{domain.AttrURI: uri})
}

// To adds a producer step.
func (s *StepBuilder) To(uri string) *StepBuilder {
	return s.Step("to", map[string]string{domain.AttrURI: uri})
}

// WireTap adds a wire tap to uri.
func (s *StepBuilder) WireTap(uri string) *StepBuilder {
	return s.Step("wireTap", map[string]string{domain.AttrURI: uri})
}

// BeanRef adds a step calling method on the bean registered as ref.
func (s *StepBuilder) BeanRef(ref, method string) *StepBuilder {
	attrs := map[string]string{domain.AttrRef: ref}
	if method != "" {
		attrs[domain.AttrMethod] = method
	}
	return s.Step("bean", attrs)
}

// Step adds an arbitrary leaf element.
func (s *StepBuilder) Step(tag string, attrs map[string]string) *StepBuilder {
	s.builder.append(s.el, s.builder.element(domain.NamespaceCamel, tag, attrs))
	return s
}

// Block opens an arbitrary nested element.
func (s *StepBuilder) Block(tag string, attrs map[string]string) *StepBuilder {
	el := s.builder.element(domain.NamespaceCamel, tag, attrs)
	s.builder.append(s.el, el)
	return &StepBuilder{builder: s.builder, el: el, parent: s}
}

// Guarded opens a block whose first child is the expression language(text).
func (s *StepBuilder) Guarded(tag, language, text string) *StepBuilder {
	block := s.Block(tag, nil)
	block.Expression(language, text)
	return block
}

// Expression adds an expression element with text content.
func (s *StepBuilder) Expression(language, text string) *StepBuilder {
	el := s.builder.element(domain.NamespaceCamel, language, nil)
	el.Text = text
	s.builder.append(s.el, el)
	return s
}

// Choice opens a content-based router.
func (s *StepBuilder) Choice() *StepBuilder {
	return s.Block("choice", nil)
}

// When opens a branch of the enclosing choice. Called on a branch, it
// closes that branch first.
func (s *StepBuilder) When(language, text string) *StepBuilder {
	return s.choice().Guarded("when", language, text)
}

// Otherwise opens the fallback branch of the enclosing choice.
func (s *StepBuilder) Otherwise() *StepBuilder {
	return s.choice().Block("otherwise", nil)
}

// Filter opens a filter guarded by language(text).
func (s *StepBuilder) Filter(language, text string) *StepBuilder {
	return s.Guarded("filter", language, text)
}

// Split opens a splitter driven by language(text).
func (s *StepBuilder) Split(language, text string) *StepBuilder {
	return s.Guarded("split", language, text)
}

// Multicast opens a multicast block.
func (s *StepBuilder) Multicast() *StepBuilder {
	return s.Block("multicast", nil)
}

// End closes the current block. On a route it is a no-op.
func (s *StepBuilder) End() *StepBuilder {
	if s.parent == nil {
		return s
	}
	return s.parent
}

// choice returns the nearest builder positioned on a choice element.
func (s *StepBuilder) choice() *StepBuilder {
	if s.el.Tag == "choice" {
		return s
	}
	if (s.el.Tag == "when" || s.el.Tag == "otherwise") && s.parent != nil {
		return s.parent
	}
	return s
}
