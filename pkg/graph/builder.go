package graph

import (
	"github.com/google/uuid"

	"github.com/aretw0/camelgraph/pkg/domain"
)

// IDGenerator allocates node identities.
type IDGenerator func() string

// Option configures a Builder.
type Option func(*Builder)

// WithIDGenerator replaces the random identity generator (useful for deterministic tests).
func WithIDGenerator(gen IDGenerator) Option {
	return func(b *Builder) {
		if gen != nil {
			b.newID = gen
		}
	}
}

// Builder accumulates the emitted nodes of one conversion run.
// It owns identity allocation and the layout cursor.
type Builder struct {
	nodes  []domain.Node
	newID  IDGenerator
	cursor int
}

// New creates a new graph builder.
func New(opts ...Option) *Builder {
	b := &Builder{
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Emit allocates a fresh identity, appends a node and returns the identity,
// to be used as the parent of subsequent children.
func (b *Builder) Emit(shape domain.Shape, label, parentID string, depth, line int) string {
	return b.EmitWithID(b.newID(), shape, label, parentID, depth, line)
}

// EmitWithID appends a node with a caller-derived identity.
func (b *Builder) EmitWithID(id string, shape domain.Shape, label, parentID string, depth, line int) string {
	b.nodes = append(b.nodes, domain.Node{
		ID:       id,
		Label:    label,
		Shape:    shape,
		ParentID: parentID,
		Position: domain.Position{Depth: depth, Row: b.cursor},
		Line:     line,
	})
	b.cursor++
	return id
}

// Len returns the number of emitted nodes.
func (b *Builder) Len() int {
	return len(b.nodes)
}

// Graph returns a copy of the emitted sequence.
func (b *Builder) Graph() *domain.Graph {
	nodes := make([]domain.Node, len(b.nodes))
	copy(nodes, b.nodes)
	return &domain.Graph{Nodes: nodes}
}
