package compiler

import (
	"strings"

	"github.com/aretw0/camelgraph/pkg/domain"
)

// prepass populates the symbol tables from the whole document before any route is walked,
// so references may point forward.
func (c *compiler) prepass(doc *domain.Element) error {
	var err error
	doc.Walk(func(el *domain.Element) bool {
		if err != nil {
			return false
		}
		switch {
		case el.Tag == "endpoint" && isCamel(el.Space):
			err = c.registerEndpoint(el)
		case el.Tag == "bean" && isCollaboratorDeclaration(el):
			c.registerCollaborator(el)
		case el.Tag == "route" && isCamel(el.Space):
			if id, ok := el.Attr(domain.AttrID); ok && id != "" {
				c.reserved[id] = true
			}
		}
		return true
	})
	return err
}

func (c *compiler) registerEndpoint(el *domain.Element) error {
	id, ok := el.Attr(domain.AttrID)
	if !ok || id == "" {
		return &domain.AttributeError{Tag: el.Tag, Attr: domain.AttrID, Line: el.Line}
	}
	uri, ok := el.Attr(domain.AttrURI)
	if !ok || uri == "" {
		return &domain.AttributeError{Tag: el.Tag, Attr: domain.AttrURI, Line: el.Line}
	}
	if !c.registry.RegisterEndpoint(id, uri) {
		c.logger.Warn("Duplicate endpoint definition ignored", "id", id, "line", el.Line)
	}
	return nil
}

func (c *compiler) registerCollaborator(el *domain.Element) {
	id, _ := el.Attr(domain.AttrID)
	impl, _ := el.Attr(domain.AttrClass)
	if !c.registry.RegisterCollaborator(id, impl) {
		c.logger.Debug("Collaborator skipped", "id", id, "class", impl, "line", el.Line)
	}
}

// isCollaboratorDeclaration distinguishes a container bean (id/class) from a
// route step that calls a bean (ref/method).
func isCollaboratorDeclaration(el *domain.Element) bool {
	if el.Space == domain.NamespaceBeans {
		return true
	}
	_, hasClass := el.Attr(domain.AttrClass)
	return hasClass
}

// isCamel reports whether a namespace belongs to the route DSL.
// Documents without namespaces are treated as route documents.
func isCamel(space string) bool {
	return space == "" || strings.HasPrefix(space, "http://camel.apache.org/schema/")
}
