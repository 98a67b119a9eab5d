package domain

import "strings"

// Shape identifies how a graph node is drawn.
// The values are the draw.io style names of the Enterprise Integration Patterns stencil set.
type Shape string

const (
	// ShapePollingConsumer marks a route source (from).
	ShapePollingConsumer Shape = "mxgraph.eip.polling_consumer"
	// ShapeContentBasedRouter marks a branching construct (choice).
	ShapeContentBasedRouter Shape = "mxgraph.eip.content_based_router"
	// ShapeRecipientList marks a fan-out construct (multicast, recipientList).
	ShapeRecipientList Shape = "mxgraph.eip.recipient_list"
	// ShapeSplitter marks a split.
	ShapeSplitter Shape = "mxgraph.eip.splitter"
	// ShapeAggregator marks an aggregate.
	ShapeAggregator Shape = "mxgraph.eip.aggregator"
	// ShapeMessageFilter marks a filter.
	ShapeMessageFilter Shape = "mxgraph.eip.message_filter"
	// ShapeDynamicRouter marks a dynamic destination (toD).
	ShapeDynamicRouter Shape = "mxgraph.eip.dynamic_router"
	// ShapeMessageTranslator marks a body transformation (setBody, transform).
	ShapeMessageTranslator Shape = "mxgraph.eip.message_translator"
	// ShapeContentEnricher marks enrich and pollEnrich.
	ShapeContentEnricher Shape = "mxgraph.eip.content_enricher"
	// ShapeWireTap marks a side-channel tap.
	ShapeWireTap Shape = "mxgraph.eip.wire_tap"
	// ShapeRectangle is the generic shape (to, loop, bean).
	ShapeRectangle Shape = "rect"
)

// Shapes lists every Shape in a stable order.
var Shapes = []Shape{
	ShapePollingConsumer,
	ShapeContentBasedRouter,
	ShapeRecipientList,
	ShapeSplitter,
	ShapeAggregator,
	ShapeMessageFilter,
	ShapeDynamicRouter,
	ShapeMessageTranslator,
	ShapeContentEnricher,
	ShapeWireTap,
	ShapeRectangle,
}

// Name returns the short, human readable name of the shape ("wire_tap", "rect").
func (s Shape) Name() string {
	return strings.TrimPrefix(string(s), "mxgraph.eip.")
}

// ParseShape resolves a full style name or a short name into a Shape.
func ParseShape(name string) (Shape, bool) {
	for _, s := range Shapes {
		if string(s) == name || s.Name() == name {
			return s, true
		}
	}
	return "", false
}

// Position is the cosmetic layout slot of a node.
// It has no bearing on graph correctness.
type Position struct {
	Depth int `json:"depth" yaml:"depth"`
	Row   int `json:"row" yaml:"row"`
}

// Node is one emitted graph node. It is immutable once appended to a Graph.
type Node struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
	Shape Shape  `json:"shape" yaml:"shape"`

	// ParentID is empty for the root of a route.
	ParentID string `json:"parent_id,omitempty" yaml:"parent_id,omitempty"`

	Position Position `json:"position" yaml:"position"`

	// Line is the source line of the element that produced the node.
	Line int `json:"line,omitempty" yaml:"line,omitempty"`
}

// IsRoot reports whether the node starts a route.
func (n Node) IsRoot() bool {
	return n.ParentID == ""
}
