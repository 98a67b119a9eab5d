package compiler

import (
	"fmt"
	"strings"

	"github.com/aretw0/camelgraph/pkg/domain"
	"github.com/aretw0/camelgraph/pkg/expr"
)

// route walks the steps of one route. Each source declaration becomes the
// parent of the steps that follow it.
func (c *compiler) route(el *domain.Element, sc scope) error {
	rs := &routeState{index: c.routes}
	rs.id, _ = el.Attr(domain.AttrID)
	c.routes++

	base := sc.depth
	sc.route = rs
	sc.parent = ""

	for _, child := range el.Children {
		if child.Tag == tagPropertyPlaceholder {
			continue
		}
		if lookupConstruct(child.Tag) != ConstructFrom {
			if err := c.visit(child, sc); err != nil {
				return err
			}
			continue
		}

		c.logger.Debug("processing node", "tag", child.Tag, "line", child.Line)
		id, err := c.from(child, sc)
		if err != nil {
			return err
		}
		sc.parent = id
		sc.depth = base + 1
	}
	return nil
}

// structural emits one node and recurses with it as parent.
func (c *compiler) structural(el *domain.Element, sc scope, shape domain.Shape, label string) error {
	id := c.builder.Emit(shape, label, sc.parent, sc.depth, el.Line)
	return c.analyzeNode(el, sc.child(id))
}

// guarded handles structural constructs whose first child is their governing expression
// (split, filter, loop). The expression labels the node and is not recursed into.
func (c *compiler) guarded(el *domain.Element, sc scope, shape domain.Shape, prefix string) error {
	label := ""
	rest := el.Children
	if first := el.FirstChild(); first != nil && kindOf(first.Tag) == KindExpression {
		var err error
		if label, err = c.analyzeElement(first, sc); err != nil {
			return err
		}
		rest = el.Children[1:]
	}

	if label == "" {
		label = el.Tag
	} else {
		label = prefix + label
	}

	id := c.builder.Emit(shape, label, sc.parent, sc.depth, el.Line)
	return c.analyzeChildren(rest, sc.child(id))
}

func (c *compiler) aggregate(el *domain.Element, sc scope) error {
	label := el.Tag
	for _, child := range el.Children {
		if lookupConstruct(child.Tag) != ConstructCorrelationExpression {
			continue
		}
		correlation, err := c.analyzeElement(child, sc)
		if err != nil {
			return err
		}
		if correlation != "" {
			label = correlation
		}
		break
	}

	id := c.builder.Emit(domain.ShapeAggregator, label, sc.parent, sc.depth, el.Line)
	return c.analyzeNode(el, sc.child(id))
}

// from emits the root node of a route and returns its identity.
// The route id, when present, is both identity and label; otherwise the source
// URI labels the node and the route index provides the identity. Children of
// the declaration are dispatched under the new root.
func (c *compiler) from(el *domain.Element, sc scope) (string, error) {
	uri, err := c.resolveURI(el)
	if err != nil {
		return "", err
	}

	var id string
	if rs := sc.route; rs == nil {
		id = c.builder.Emit(domain.ShapePollingConsumer, expr.Sanitize(uri), sc.parent, sc.depth, el.Line)
	} else {
		label := rs.id
		if label == "" {
			label = expr.Sanitize(uri)
		}
		if rs.sources == 0 {
			rs.base = c.routeIdentity(rs)
			id = rs.base
		} else {
			id = c.claim(fmt.Sprintf("%s-%d", rs.base, rs.sources))
		}
		rs.sources++
		id = c.builder.EmitWithID(id, domain.ShapePollingConsumer, label, "", sc.depth, el.Line)
	}

	if err := c.analyzeNode(el, sc.child(id)); err != nil {
		return "", err
	}
	return id, nil
}

// routeIdentity allocates the identity of the first source of a route.
// Synthetic identities skip indexes taken by an explicit route id.
func (c *compiler) routeIdentity(rs *routeState) string {
	if rs.id != "" {
		if c.claimed[rs.id] {
			c.logger.Warn("Duplicate route id", "id", rs.id)
		}
		return c.claim(rs.id)
	}
	for i := rs.index; ; i++ {
		id := fmt.Sprintf("route%d", i)
		if !c.reserved[id] && !c.claimed[id] {
			c.claimed[id] = true
			return id
		}
	}
}

// claim records id as emitted, suffixing it until it is free.
func (c *compiler) claim(id string) string {
	candidate := id
	for n := 1; c.claimed[candidate]; n++ {
		candidate = fmt.Sprintf("%s-%d", id, n)
	}
	c.claimed[candidate] = true
	return candidate
}

// destination emits a static or dynamic destination (to, toD, wireTap).
func (c *compiler) destination(el *domain.Element, sc scope, shape domain.Shape) error {
	uri, err := c.resolveURI(el)
	if err != nil {
		return err
	}
	label := expr.Sanitize(expr.ComponentOptions(uri))
	c.builder.Emit(shape, label, sc.parent, sc.depth, el.Line)
	return nil
}

// enrich accepts either a URI attribute or an expression child.
func (c *compiler) enrich(el *domain.Element, sc scope) error {
	_, hasURI := el.Attr(domain.AttrURI)
	_, hasRef := el.Attr(domain.AttrRef)
	if hasURI || hasRef {
		return c.destination(el, sc, domain.ShapeContentEnricher)
	}

	first := el.FirstChild()
	if first == nil {
		return &domain.AttributeError{Tag: el.Tag, Attr: domain.AttrURI, Line: el.Line}
	}
	label, err := c.analyzeElement(first, sc)
	if err != nil {
		return err
	}
	c.builder.Emit(domain.ShapeContentEnricher, label, sc.parent, sc.depth, el.Line)
	return nil
}

// setBody consumes its single expression child as the node label.
func (c *compiler) setBody(el *domain.Element, sc scope) error {
	label := ""
	if first := el.FirstChild(); first != nil {
		var err error
		if label, err = c.analyzeElement(first, sc); err != nil {
			return err
		}
	}
	c.builder.Emit(domain.ShapeMessageTranslator, label, sc.parent, sc.depth, el.Line)
	return nil
}

// bean is labelled with its collaborator type in collaborator-aware mode, and skipped otherwise.
func (c *compiler) bean(el *domain.Element, sc scope) error {
	if !c.collaborators {
		c.logger.Debug("unsupported construct skipped", "tag", el.Tag, "line", el.Line)
		return nil
	}

	var label string
	if ref, ok := el.Attr(domain.AttrRef); ok && ref != "" {
		impl, err := c.resolveCollaborator(el, ref)
		if err != nil {
			return err
		}
		label = simpleName(impl)
	} else if beanType, ok := el.Attr("beanType"); ok && beanType != "" {
		label = simpleName(beanType)
	} else {
		return &domain.AttributeError{Tag: el.Tag, Attr: domain.AttrRef, Line: el.Line}
	}

	if method, ok := el.Attr(domain.AttrMethod); ok && method != "" {
		label += "." + method
	}
	c.builder.Emit(domain.ShapeRectangle, expr.Sanitize(label), sc.parent, sc.depth, el.Line)
	return nil
}

func (c *compiler) process(el *domain.Element, sc scope) error {
	if !c.collaborators {
		c.logger.Debug("unsupported construct skipped", "tag", el.Tag, "line", el.Line)
		return nil
	}

	ref, ok := el.Attr(domain.AttrRef)
	if !ok || ref == "" {
		return &domain.AttributeError{Tag: el.Tag, Attr: domain.AttrRef, Line: el.Line}
	}
	impl, err := c.resolveCollaborator(el, ref)
	if err != nil {
		return err
	}
	c.builder.Emit(domain.ShapeRectangle, "process "+simpleName(impl), sc.parent, sc.depth, el.Line)
	return nil
}

// expression computes the label of an expression element.
func (c *compiler) expression(el *domain.Element, sc scope, construct Construct) (string, error) {
	switch construct {
	case ConstructTokenize:
		token, _ := el.Attr(domain.AttrToken)
		return expr.Sanitize(fmt.Sprintf("tokenize(%s)", token)), nil

	case ConstructMethod:
		name, ok := el.Attr(domain.AttrRef)
		if !ok {
			name, _ = el.Attr(domain.AttrBean)
		}
		if method, ok := el.Attr(domain.AttrMethod); ok && method != "" {
			name += "." + method
		}
		return expr.Sanitize(name), nil

	case ConstructCorrelationExpression:
		first := el.FirstChild()
		if first == nil {
			return "", nil
		}
		return c.analyzeElement(first, sc)

	default:
		return expr.Sanitize(strings.TrimSpace(el.Text)), nil
	}
}

// resolveURI reads the destination of an element, following ref indirections.
func (c *compiler) resolveURI(el *domain.Element) (string, error) {
	if uri, ok := el.Attr(domain.AttrURI); ok && uri != "" {
		if name, isRef := strings.CutPrefix(uri, domain.RefPrefix); isRef {
			return c.resolveEndpoint(el, name)
		}
		return uri, nil
	}
	if ref, ok := el.Attr(domain.AttrRef); ok && ref != "" {
		return c.resolveEndpoint(el, ref)
	}
	return "", &domain.AttributeError{Tag: el.Tag, Attr: domain.AttrURI, Line: el.Line}
}

func (c *compiler) resolveEndpoint(el *domain.Element, name string) (string, error) {
	dest, err := c.registry.ResolveEndpoint(name)
	if err != nil {
		return "", &domain.ConstructError{Tag: el.Tag, Line: el.Line, Err: err}
	}
	return dest, nil
}

func (c *compiler) resolveCollaborator(el *domain.Element, name string) (string, error) {
	impl, err := c.registry.ResolveCollaborator(name)
	if err != nil {
		return "", &domain.ConstructError{Tag: el.Tag, Line: el.Line, Err: err}
	}
	return impl, nil
}

// simpleName strips the package from a fully qualified type name.
func simpleName(impl string) string {
	if i := strings.LastIndex(impl, "."); i >= 0 && i < len(impl)-1 {
		return impl[i+1:]
	}
	return impl
}
