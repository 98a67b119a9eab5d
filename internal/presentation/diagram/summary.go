package diagram

import (
	"fmt"
	"strings"

	"github.com/aretw0/camelgraph/pkg/domain"
)

// Summary renders a Markdown overview of a graph: the routes and a count per shape.
func Summary(title string, g *domain.Graph) string {
	var sb strings.Builder

	if title == "" {
		title = "Route graph"
	}
	fmt.Fprintf(&sb, "# %s\n\n", title)
	fmt.Fprintf(&sb, "%d nodes in %d routes.\n\n", g.Len(), len(g.Roots()))

	sb.WriteString("## Routes\n\n")
	for _, root := range g.Roots() {
		fmt.Fprintf(&sb, "- **%s** (line %d): %d steps\n", root.Label, root.Line, countDescendants(g, root.ID))
	}

	sb.WriteString("\n## Shapes\n\n")
	sb.WriteString("| Shape | Nodes |\n|---|---:|\n")
	counts := g.CountByShape()
	for _, shape := range domain.Shapes {
		if counts[shape] == 0 {
			continue
		}
		fmt.Fprintf(&sb, "| %s | %d |\n", shape.Name(), counts[shape])
	}

	return sb.String()
}

func countDescendants(g *domain.Graph, id string) int {
	total := 0
	for _, child := range g.Children(id) {
		total += 1 + countDescendants(g, child.ID)
	}
	return total
}
