package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/camelgraph/pkg/domain"
)

// ValidateGraph checks structural integrity of a converted graph: unique
// identities, resolvable parents and every node reachable from a route root.
func ValidateGraph(g *domain.Graph) error {
	if g == nil {
		return nil
	}

	var errors []string

	seen := make(map[string]bool, g.Len())
	for _, n := range g.Nodes {
		if n.ID == "" {
			errors = append(errors, fmt.Sprintf("Node without identity at line %d", n.Line))
			continue
		}
		if seen[n.ID] {
			errors = append(errors, fmt.Sprintf("Duplicate node identity: '%s'", n.ID))
		}
		seen[n.ID] = true
	}

	for _, n := range g.Nodes {
		if !n.IsRoot() && !seen[n.ParentID] {
			errors = append(errors, fmt.Sprintf("Missing parent '%s' for node '%s'", n.ParentID, n.ID))
		}
	}

	// Crawl from the roots; whatever the walk misses is detached.
	visited := make(map[string]bool, g.Len())
	var queue []string
	for _, r := range g.Roots() {
		queue = append(queue, r.ID)
	}
	for len(queue) > 0 {
		currentID := queue[0]
		queue = queue[1:]

		if visited[currentID] {
			continue
		}
		visited[currentID] = true

		for _, child := range g.Children(currentID) {
			if !visited[child.ID] {
				queue = append(queue, child.ID)
			}
		}
	}
	for _, n := range g.Nodes {
		if n.ID != "" && !visited[n.ID] && seen[n.ParentID] {
			errors = append(errors, fmt.Sprintf("Unreachable node: '%s'", n.ID))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("found %d errors:\n- %s", len(errors), strings.Join(errors, "\n- "))
	}

	return nil
}
