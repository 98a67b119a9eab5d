package domain

// Graph is the ordered output of one conversion run.
type Graph struct {
	Nodes []Node `json:"nodes" yaml:"nodes"`
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	if g == nil {
		return 0
	}
	return len(g.Nodes)
}

// Lookup returns the node with the given identity.
func (g *Graph) Lookup(id string) (Node, bool) {
	if g == nil {
		return Node{}, false
	}
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// Roots returns the nodes without parent, in emission order.
func (g *Graph) Roots() []Node {
	var roots []Node
	if g == nil {
		return roots
	}
	for _, n := range g.Nodes {
		if n.IsRoot() {
			roots = append(roots, n)
		}
	}
	return roots
}

// Children returns the nodes whose parent is id, in emission order.
func (g *Graph) Children(id string) []Node {
	var children []Node
	if g == nil {
		return children
	}
	for _, n := range g.Nodes {
		if n.ParentID == id && id != "" {
			children = append(children, n)
		}
	}
	return children
}

// CountByShape tallies nodes per shape.
func (g *Graph) CountByShape() map[Shape]int {
	counts := make(map[Shape]int)
	if g == nil {
		return counts
	}
	for _, n := range g.Nodes {
		counts[n.Shape]++
	}
	return counts
}
