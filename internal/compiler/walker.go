package compiler

import (
	"fmt"

	"github.com/aretw0/camelgraph/pkg/domain"
)

// scope is the traversal context handed down each recursive call.
// It is copied per call; siblings never observe each other's scope.
type scope struct {
	// parent is the identity of the nearest enclosing node, empty at a route root.
	parent string
	// depth is used for layout only.
	depth int
	route *routeState
}

// routeState is shared by the steps of one route.
type routeState struct {
	id      string
	index   int
	sources int
	// base is the identity of the first source.
	base string
}

// child returns the scope for the children of a node.
func (s scope) child(parent string) scope {
	s.parent = parent
	s.depth++
	return s
}

// analyzeNode dispatches every child of el in document order.
func (c *compiler) analyzeNode(el *domain.Element, sc scope) error {
	return c.analyzeChildren(el.Children, sc)
}

func (c *compiler) analyzeChildren(children []*domain.Element, sc scope) error {
	for _, child := range children {
		if child.Tag == tagPropertyPlaceholder {
			continue
		}
		if err := c.visit(child, sc); err != nil {
			return err
		}
	}
	return nil
}

// visit resolves the handler for one element and runs it.
func (c *compiler) visit(el *domain.Element, sc scope) error {
	c.logger.Debug("processing node", "tag", el.Tag, "line", el.Line)

	switch construct := lookupConstruct(el.Tag); construct {
	case ConstructCamelContext, ConstructRouteContext, ConstructRoutes,
		ConstructDataFormats, ConstructWhen, ConstructOtherwise, ConstructDoFinally:
		return c.analyzeNode(el, sc)

	case ConstructRoute:
		return c.route(el, sc)

	case ConstructChoice:
		return c.structural(el, sc, domain.ShapeContentBasedRouter, "choice")
	case ConstructMulticast:
		return c.structural(el, sc, domain.ShapeRecipientList, "multicast")
	case ConstructRecipientList:
		return c.structural(el, sc, domain.ShapeRecipientList, "recipient list")
	case ConstructSplit:
		return c.guarded(el, sc, domain.ShapeSplitter, "")
	case ConstructFilter:
		return c.guarded(el, sc, domain.ShapeMessageFilter, "")
	case ConstructLoop:
		return c.guarded(el, sc, domain.ShapeRectangle, "loop ")
	case ConstructAggregate:
		return c.aggregate(el, sc)

	case ConstructFrom:
		_, err := c.from(el, sc)
		return err
	case ConstructTo:
		return c.destination(el, sc, domain.ShapeRectangle)
	case ConstructToD:
		return c.destination(el, sc, domain.ShapeDynamicRouter)
	case ConstructWireTap:
		return c.destination(el, sc, domain.ShapeWireTap)
	case ConstructEnrich, ConstructPollEnrich:
		return c.enrich(el, sc)
	case ConstructSetBody, ConstructTransform:
		return c.setBody(el, sc)
	case ConstructBean:
		return c.bean(el, sc)
	case ConstructProcess:
		return c.process(el, sc)

	case ConstructSimple, ConstructConstant, ConstructGroovy, ConstructXPath,
		ConstructJSONPath, ConstructXQuery, ConstructJavaScript, ConstructSpEL,
		ConstructLanguage, ConstructTokenize, ConstructHeader, ConstructExchangeProperty,
		ConstructMethod, ConstructCorrelationExpression:
		// Expressions only carry meaning for the construct that owns them.
		return nil

	case ConstructUnsupported:
		c.logger.Debug("unsupported construct skipped", "tag", el.Tag, "line", el.Line)
		return nil

	default:
		c.logger.Error("unknown node", "tag", el.Tag, "line", el.Line)
		return &domain.ConstructError{Tag: el.Tag, Line: el.Line, Err: domain.ErrUnknownConstruct}
	}
}

// analyzeElement processes one distinguished expression child and returns its label.
func (c *compiler) analyzeElement(el *domain.Element, sc scope) (string, error) {
	c.logger.Debug("processing node", "tag", el.Tag, "line", el.Line)

	construct := lookupConstruct(el.Tag)
	switch construct.kind() {
	case KindExpression:
		return c.expression(el, sc, construct)
	case KindUnknown:
		c.logger.Error("unknown node", "tag", el.Tag, "line", el.Line)
		return "", &domain.ConstructError{Tag: el.Tag, Line: el.Line, Err: domain.ErrUnknownConstruct}
	default:
		return "", &domain.ConstructError{
			Tag:  el.Tag,
			Line: el.Line,
			Err:  fmt.Errorf("%w: expected an expression", domain.ErrUnexpectedConstruct),
		}
	}
}
